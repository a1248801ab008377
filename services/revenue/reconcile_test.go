package revenueService

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	courses := []CourseRevenue{
		{CourseID: 1, AuthorID: 10, AuthorName: "Ada", Price: 20, Enrollments: 5, Revenue: 100},
		{CourseID: 2, AuthorID: 10, AuthorName: "Ada", Price: 50, Enrollments: 1, Revenue: 50},
		{CourseID: 3, AuthorID: 20, AuthorName: "Bob", Price: 30, Enrollments: 2, Revenue: 60},
	}
	payouts := []PayoutLine{
		{AuthorID: 10, AuthorName: "Ada", Amount: 40},
		{AuthorID: 20, AuthorName: "Bob", Amount: 100},
		{AuthorID: 30, AuthorName: "Cy", Amount: 15},
	}

	balances, totals := Reconcile(courses, payouts)

	assert.Equal(t, []AuthorBalance{
		{AuthorID: 10, AuthorName: "Ada", Earnings: 150, PaidOut: 40, Pending: 110},
		{AuthorID: 20, AuthorName: "Bob", Earnings: 60, PaidOut: 100, Pending: 0},
		{AuthorID: 30, AuthorName: "Cy", Earnings: 0, PaidOut: 15, Pending: 0},
	}, balances)
	assert.Equal(t, Totals{PlatformRevenue: 210, TotalPaidOut: 155, TotalPending: 110}, totals)
}

func TestReconcileEmpty(t *testing.T) {
	balances, totals := Reconcile(nil, nil)
	assert.Empty(t, balances)
	assert.Equal(t, Totals{}, totals)
}

func TestReconcileTiesOrderByAuthor(t *testing.T) {
	balances, _ := Reconcile([]CourseRevenue{
		{AuthorID: 7, Revenue: 10},
		{AuthorID: 3, Revenue: 10},
	}, nil)
	assert.Equal(t, uint(3), balances[0].AuthorID)
	assert.Equal(t, uint(7), balances[1].AuthorID)
}
