package revenueService

import (
	"testing"

	"coursehub/apperr"
	"coursehub/models"
	"coursehub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	paid := testutil.PaidCourse(t, db, author, 25)
	testutil.Course(t, db, author, models.StatusPublished)

	// paid but unpublished courses earn nothing
	hidden := testutil.Course(t, db, author, models.StatusDraft)
	price := 99.0
	require.NoError(t, db.Model(hidden).Updates(map[string]interface{}{"is_paid": true, "price": price}).Error)

	for i := 0; i < 3; i++ {
		testutil.Enroll(t, db, testutil.User(t, db, models.RoleStudent), paid)
	}
	testutil.Enroll(t, db, testutil.User(t, db, models.RoleStudent), hidden)

	_, err := RecordPayout(db, author.ID, 30, nil)
	require.NoError(t, err)

	report, err := BuildReport(db)
	require.NoError(t, err)
	require.Len(t, report.RevenueByCourse, 1)
	assert.Equal(t, paid.ID, report.RevenueByCourse[0].CourseID)
	assert.EqualValues(t, 3, report.RevenueByCourse[0].Enrollments)
	assert.Equal(t, 75.0, report.RevenueByCourse[0].Revenue)

	require.Len(t, report.RevenueByAuthor, 1)
	assert.Equal(t, AuthorBalance{
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Earnings:   75,
		PaidOut:    30,
		Pending:    45,
	}, report.RevenueByAuthor[0])
	assert.Equal(t, Totals{PlatformRevenue: 75, TotalPaidOut: 30, TotalPending: 45}, report.Totals)
	require.Len(t, report.RecentPayouts, 1)
	assert.Equal(t, author.Name, report.RecentPayouts[0].AuthorName)
}

func TestBuildReportRepricesRetroactively(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	course := testutil.PaidCourse(t, db, author, 10)
	for i := 0; i < 2; i++ {
		testutil.Enroll(t, db, testutil.User(t, db, models.RoleStudent), course)
	}
	_, err := RecordPayout(db, author.ID, 100, nil)
	require.NoError(t, err)

	report, err := BuildReport(db)
	require.NoError(t, err)
	assert.Equal(t, Totals{PlatformRevenue: 20, TotalPaidOut: 100, TotalPending: 0}, report.Totals)

	// earnings follow the current price, not the price at enrollment time
	require.NoError(t, db.Model(course).Update("price", 40.0).Error)

	report, err = BuildReport(db)
	require.NoError(t, err)
	require.Len(t, report.RevenueByCourse, 1)
	assert.Equal(t, 80.0, report.RevenueByCourse[0].Revenue)
	require.Len(t, report.RevenueByAuthor, 1)
	assert.Equal(t, 80.0, report.RevenueByAuthor[0].Earnings)
	assert.Equal(t, 0.0, report.RevenueByAuthor[0].Pending)
	assert.Equal(t, Totals{PlatformRevenue: 80, TotalPaidOut: 100, TotalPending: 0}, report.Totals)
}

func TestRecentPayoutsAreCapped(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	for i := 0; i < recentPayoutLimit+5; i++ {
		_, err := RecordPayout(db, author.ID, 1, nil)
		require.NoError(t, err)
	}

	report, err := BuildReport(db)
	require.NoError(t, err)
	assert.Len(t, report.RecentPayouts, recentPayoutLimit)
	assert.Equal(t, float64(recentPayoutLimit+5), report.Totals.TotalPaidOut)
}

func TestRecordPayout(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)

	line, err := RecordPayout(db, author.ID, 12.5, strPtr("  March  "))
	require.NoError(t, err)
	assert.Equal(t, 12.5, line.Amount)
	assert.Equal(t, models.PayoutCompleted, line.Status)
	require.NotNil(t, line.Note)
	assert.Equal(t, "March", *line.Note)
	assert.NotEmpty(t, line.PaidAt)

	line, err = RecordPayout(db, author.ID, 1, strPtr("   "))
	require.NoError(t, err)
	assert.Nil(t, line.Note)

	_, err = RecordPayout(db, 0, -1, nil)
	require.True(t, apperr.Is(err, apperr.KindInvalid))
	assert.Len(t, apperr.As(err).Fields, 2)

	_, err = RecordPayout(db, 9999, 10, nil)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func strPtr(s string) *string { return &s }
