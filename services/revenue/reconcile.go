package revenueService

import (
	"math"
	"sort"
)

type CourseRevenue struct {
	CourseID    uint    `json:"courseId"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	AuthorID    uint    `json:"authorId"`
	AuthorName  string  `json:"authorName"`
	Price       float64 `json:"price"`
	Enrollments int64   `json:"enrollments"`
	Revenue     float64 `json:"revenue"`
}

type AuthorBalance struct {
	AuthorID   uint    `json:"authorId"`
	AuthorName string  `json:"authorName"`
	Earnings   float64 `json:"earnings"`
	PaidOut    float64 `json:"paidOut"`
	Pending    float64 `json:"pending"`
}

type PayoutLine struct {
	ID         uint    `json:"id"`
	AuthorID   uint    `json:"authorId"`
	AuthorName string  `json:"authorName"`
	Amount     float64 `json:"amount"`
	Note       *string `json:"note"`
	Status     string  `json:"status"`
	PaidAt     string  `json:"paidAt"`
}

type Totals struct {
	PlatformRevenue float64 `json:"platformRevenue"`
	TotalPaidOut    float64 `json:"totalPaidOut"`
	TotalPending    float64 `json:"totalPending"`
}

type Report struct {
	RevenueByCourse []CourseRevenue `json:"revenueByCourse"`
	RevenueByAuthor []AuthorBalance `json:"revenueByAuthor"`
	Totals          Totals          `json:"totals"`
	RecentPayouts   []PayoutLine    `json:"recentPayouts"`
}

// Reconcile folds per-course revenue and the full payout history into
// per-author balances. Pending never goes below zero, so an overpaid
// author simply shows nothing owed.
func Reconcile(courses []CourseRevenue, payouts []PayoutLine) ([]AuthorBalance, Totals) {
	byAuthor := make(map[uint]*AuthorBalance)
	balance := func(id uint, name string) *AuthorBalance {
		b, ok := byAuthor[id]
		if !ok {
			b = &AuthorBalance{AuthorID: id, AuthorName: name}
			byAuthor[id] = b
		}
		return b
	}

	var totals Totals
	for _, c := range courses {
		balance(c.AuthorID, c.AuthorName).Earnings += c.Revenue
		totals.PlatformRevenue += c.Revenue
	}
	for _, p := range payouts {
		balance(p.AuthorID, p.AuthorName).PaidOut += p.Amount
		totals.TotalPaidOut += p.Amount
	}

	out := make([]AuthorBalance, 0, len(byAuthor))
	for _, b := range byAuthor {
		b.Pending = math.Max(0, b.Earnings-b.PaidOut)
		totals.TotalPending += b.Pending
		out = append(out, *b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Earnings != out[j].Earnings {
			return out[i].Earnings > out[j].Earnings
		}
		return out[i].AuthorID < out[j].AuthorID
	})
	return out, totals
}
