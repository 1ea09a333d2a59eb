package reportsvc_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollosrrj/pos/internal/service/models/order"
	"github.com/pollosrrj/pos/internal/service/models/payment"
	"github.com/pollosrrj/pos/internal/service/models/status"
	"github.com/pollosrrj/pos/internal/service/services/reportsvc"
)

// fakeReportRepo serves canned delivered orders and records deletions.
type fakeReportRepo struct {
	orders []order.Order
}

func (f *fakeReportRepo) Insert(_ context.Context, o order.Order) (order.Order, error) {
	return o, nil
}

func (f *fakeReportRepo) Update(_ context.Context, _ order.Order) error { return nil }

func (f *fakeReportRepo) UpdateStatus(_ context.Context, _ int64, _ status.Status, _ payment.Method, _ *time.Time) error {
	return nil
}

func (f *fakeReportRepo) Delete(_ context.Context, id int64) error {
	for i, o := range f.orders {
		if o.ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			break
		}
	}

	return nil
}

func (f *fakeReportRepo) DeleteByStatus(_ context.Context, _ status.Status) error { return nil }

func (f *fakeReportRepo) ByID(_ context.Context, _ int64) (order.Order, error) {
	return order.Order{}, nil
}

func (f *fakeReportRepo) ListActive(_ context.Context) ([]order.Order, error) { return nil, nil }

func (f *fakeReportRepo) ByStatus(_ context.Context, _ status.Status) ([]order.Order, error) {
	return nil, nil
}

func (f *fakeReportRepo) ReportData(_ context.Context) ([]order.Order, error) {
	out := make([]order.Order, len(f.orders))
	copy(out, f.orders)

	return out, nil
}

func paidOrder(id int64, paidAt time.Time, total float64) order.Order {
	return order.Order{
		ID:         id,
		Status:     status.StatusDelivered,
		Payment:    payment.MethodCash,
		TotalPrice: total,
		DatePaid:   &paidAt,
	}
}

func newService(repo *fakeReportRepo, now time.Time) *reportsvc.ReportService {
	return reportsvc.MustNewReportService(
		reportsvc.WithOrderRepository(repo),
		reportsvc.WithClock(func() time.Time { return now }),
	)
}

func TestRun_TodayMatchesCalendarDate(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{orders: []order.Order{
		paidOrder(1, time.Date(2026, 3, 15, 0, 30, 0, 0, time.UTC), 20),
		paidOrder(2, time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC), 30),
		paidOrder(3, time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC), 50),
	}}
	svc := newService(repo, now)

	res, err := svc.Run(context.Background(), reportsvc.Filter{Quick: reportsvc.QuickToday})
	require.NoError(t, err)

	require.Len(t, res.Orders, 2)
	assert.Equal(t, 50.0, res.Total)
}

func TestRun_WeekIsRollingCutoff(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-7 * 24 * time.Hour)
	repo := &fakeReportRepo{orders: []order.Order{
		paidOrder(1, cutoff, 10),                    // exactly on the cutoff counts
		paidOrder(2, cutoff.Add(-time.Minute), 20),  // just outside
		paidOrder(3, now.Add(-2*24*time.Hour), 40),  // inside
	}}
	svc := newService(repo, now)

	res, err := svc.Run(context.Background(), reportsvc.Filter{Quick: reportsvc.QuickWeek})
	require.NoError(t, err)

	require.Len(t, res.Orders, 2)
	assert.Equal(t, 50.0, res.Total)
}

func TestRun_ManualYearMonthDay(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{orders: []order.Order{
		paidOrder(1, time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC), 15),
		paidOrder(2, time.Date(2026, 4, 5, 10, 0, 0, 0, time.UTC), 25),
		paidOrder(3, time.Date(2026, 4, 6, 10, 0, 0, 0, time.UTC), 35),
		paidOrder(4, time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC), 45),
	}}
	svc := newService(repo, now)

	// Any month, day 5, year 2026.
	f := reportsvc.Filter{Quick: reportsvc.QuickNone, Year: "2026", Month: reportsvc.Wildcard, Day: "5"}
	res, err := svc.Run(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, res.Orders, 2)
	assert.Equal(t, 40.0, res.Total)

	// Month is zero-padded in the filter.
	f = reportsvc.Filter{Quick: reportsvc.QuickNone, Year: "2026", Month: "04", Day: reportsvc.Wildcard}
	res, err = svc.Run(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, res.Orders, 2)
	assert.Equal(t, 60.0, res.Total)
}

func TestRun_SkipsRecordsWithoutPaymentDate(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{orders: []order.Order{
		paidOrder(1, now, 20),
		{ID: 2, Status: status.StatusDelivered, TotalPrice: 99},
	}}
	svc := newService(repo, now)

	res, err := svc.Run(context.Background(), reportsvc.Filter{Quick: reportsvc.QuickToday})
	require.NoError(t, err)

	require.Len(t, res.Orders, 1)
	assert.Equal(t, 20.0, res.Total)
}

func TestDeleteMatching(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{}
	for i := int64(1); i <= 10; i++ {
		paidAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
		if i <= 3 {
			paidAt = now
		}
		repo.orders = append(repo.orders, paidOrder(i, paidAt, 10))
	}
	svc := newService(repo, now)

	f := reportsvc.Filter{Quick: reportsvc.QuickToday}
	require.NoError(t, svc.DeleteMatching(context.Background(), f))

	assert.Len(t, repo.orders, 7)

	res, err := svc.Run(context.Background(), f)
	require.NoError(t, err)
	assert.Empty(t, res.Orders)
	assert.Zero(t, res.Total)
}

func TestDefaultFilter(t *testing.T) {
	f := reportsvc.DefaultFilter()
	assert.Equal(t, reportsvc.QuickNone, f.Quick)
	assert.Equal(t, "2026", f.Year)
	assert.Equal(t, reportsvc.Wildcard, f.Month)
	assert.Equal(t, reportsvc.Wildcard, f.Day)
}
