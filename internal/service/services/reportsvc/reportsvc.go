package reportsvc

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pollosrrj/pos/internal/dal/interfaces/iorderrepo"
	"github.com/pollosrrj/pos/internal/service/models/order"
)

// Quick is a relative, approximate date-window filter. The week, month
// and year windows are 7/30/365-day cutoffs, not calendar boundaries.
type Quick string

const (
	QuickNone  Quick = "Ninguno"
	QuickToday Quick = "Hoy"
	QuickWeek  Quick = "Última Semana"
	QuickMonth Quick = "Último Mes"
	QuickYear  Quick = "Último Año"
)

// Wildcard matches any month or day in a manual filter. Year has no
// wildcard; it always constrains.
const Wildcard = "Todos"

// Filter selects delivered orders by payment date. Quick filters and the
// manual year/month/day pickers are mutually exclusive: the manual fields
// are consulted only when Quick is Ninguno.
type Filter struct {
	Quick Quick  `json:"quick"`
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

// DefaultFilter is what the report screen starts with.
func DefaultFilter() Filter {
	return Filter{Quick: QuickNone, Year: "2026", Month: Wildcard, Day: Wildcard}
}

// Matches reports whether a payment timestamp falls inside the filter
// window, evaluated against the given wall-clock now.
func (f Filter) Matches(paidAt, now time.Time) bool {
	switch f.Quick {
	case QuickToday:
		y1, m1, d1 := paidAt.Date()
		y2, m2, d2 := now.Date()

		return y1 == y2 && m1 == m2 && d1 == d2
	case QuickWeek:
		return !paidAt.Before(now.Add(-7 * 24 * time.Hour))
	case QuickMonth:
		return !paidAt.Before(now.Add(-30 * 24 * time.Hour))
	case QuickYear:
		return !paidAt.Before(now.Add(-365 * 24 * time.Hour))
	default:
		if strconv.Itoa(paidAt.Year()) != f.Year {
			return false
		}
		if f.Month != Wildcard && fmt.Sprintf("%02d", int(paidAt.Month())) != f.Month {
			return false
		}
		if f.Day != Wildcard && strconv.Itoa(paidAt.Day()) != f.Day {
			return false
		}

		return true
	}
}

// Result is one report run: the matched orders, newest payment first, and
// the sum of their totals.
type Result struct {
	Orders []order.Order `json:"orders"`
	Total  float64       `json:"total"`
}

// ReportService filters and aggregates delivered orders and performs the
// filter-scoped bulk delete.
type ReportService struct {
	orderRepo iorderrepo.IOrderRepository
	now       func() time.Time
}

// option is a function that configures the ReportService.
type option func(*ReportService)

// MustNewReportService creates a new ReportService.
func MustNewReportService(opts ...option) *ReportService {
	s := &ReportService{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	if s.orderRepo == nil {
		panic("report service requires an order repository")
	}

	return s
}

// WithOrderRepository sets the order repository for the ReportService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(repo iorderrepo.IOrderRepository) option {
	return func(s *ReportService) {
		s.orderRepo = repo
	}
}

// WithClock overrides the wall clock, for tests.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithClock(now func() time.Time) option {
	return func(s *ReportService) {
		s.now = now
	}
}

// Run evaluates the filter over all delivered orders. Records without a
// payment date are skipped entirely.
func (s *ReportService) Run(ctx context.Context, f Filter) (Result, error) {
	all, err := s.orderRepo.ReportData(ctx)
	if err != nil {
		return Result{}, err
	}

	now := s.now()
	result := Result{Orders: []order.Order{}}
	for _, o := range all {
		if o.DatePaid == nil {
			continue
		}
		if f.Matches(*o.DatePaid, now) {
			result.Orders = append(result.Orders, o)
			result.Total += o.TotalPrice
		}
	}

	return result, nil
}

// DeleteMatching deletes every order the filter matches right now. The
// filter is re-evaluated against fresh store contents, not against any
// previously rendered result.
func (s *ReportService) DeleteMatching(ctx context.Context, f Filter) error {
	all, err := s.orderRepo.ReportData(ctx)
	if err != nil {
		return err
	}

	now := s.now()
	for _, o := range all {
		if o.DatePaid == nil {
			continue
		}
		if f.Matches(*o.DatePaid, now) {
			if err := s.orderRepo.Delete(ctx, o.ID); err != nil {
				return err
			}
		}
	}

	return nil
}
