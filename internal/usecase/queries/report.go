package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"hotel-management/internal/domain/analytics"
	"hotel-management/internal/infra/pgsql"
	"hotel-management/internal/pkg/clock"
	"hotel-management/internal/pkg/config"
	"hotel-management/internal/pkg/errs"
	"hotel-management/internal/usecase/shared"
)

const (
	quickTopCount         = 3
	comprehensiveTopCount = 5
	minReportYear         = 1
	maxReportYear         = 9999
)

// DateWindow is a caller-supplied inclusive range; missing ends default
// relative to today.
type DateWindow struct {
	Start *time.Time
	End   *time.Time
}

type ReportMetadata struct {
	GeneratedAt time.Time
	StartDate   time.Time
	EndDate     time.Time
	Period      string
	TotalDays   int
}

type ComprehensiveReport struct {
	Summary            analytics.Summary
	KPIs               []analytics.KPICard
	RevenueTrend       analytics.RevenueTrend
	OccupancyTrend     analytics.OccupancyTrend
	RevenueByRoomType  []analytics.RoomTypeRevenue
	MonthlyPerformance []analytics.MonthPerformance
	TopRooms           []analytics.RoomPerformance
	TopGuests          []analytics.GuestValue
	Demographics       []analytics.CountryShare
	Metadata           ReportMetadata
}

type QuickReport struct {
	Period            Preset
	StartDate         time.Time
	EndDate           time.Time
	Summary           analytics.Summary
	KPIs              []analytics.KPICard
	RevenueByRoomType []analytics.RoomTypeRevenue
	TopRooms          []analytics.RoomPerformance
	TopGuests         []analytics.GuestValue
}

type PeriodReport struct {
	StartDate    time.Time
	EndDate      time.Time
	Summary      analytics.Summary
	RevenueTrend analytics.RevenueTrend
}

type ComparisonReport struct {
	Period1 PeriodReport
	Period2 PeriodReport
	Changes []analytics.Change
}

// ReportStore reads the raw rows behind every report on the given DBTX so
// that one report sees one snapshot.
type ReportStore interface {
	CountRooms(ctx context.Context, db pgsql.DBTX) (int, error)
	ListStays(ctx context.Context, db pgsql.DBTX, r analytics.DateRange) ([]analytics.Stay, error)
}

type ReportQueries interface {
	Summary(ctx context.Context, w DateWindow) (*analytics.Summary, error)
	KPIs(ctx context.Context, w DateWindow) ([]analytics.KPICard, error)
	RevenueTrend(ctx context.Context, w DateWindow) (*analytics.RevenueTrend, error)
	OccupancyTrend(ctx context.Context, w DateWindow) (*analytics.OccupancyTrend, error)
	RevenueByRoomType(ctx context.Context, w DateWindow) ([]analytics.RoomTypeRevenue, error)
	MonthlyPerformance(ctx context.Context, year *int) ([]analytics.MonthPerformance, error)
	TopRooms(ctx context.Context, w DateWindow, topCount *int) ([]analytics.RoomPerformance, error)
	TopGuests(ctx context.Context, w DateWindow, topCount *int) ([]analytics.GuestValue, error)
	Demographics(ctx context.Context, w DateWindow) ([]analytics.CountryShare, error)
	PaymentAnalytics(ctx context.Context, w DateWindow) (*analytics.PaymentBreakdown, error)
	BookingPatterns(ctx context.Context, w DateWindow) ([]analytics.WeekdayPattern, error)
	Comprehensive(ctx context.Context, w DateWindow) (*ComprehensiveReport, error)
	Quick(ctx context.Context, period string) (*QuickReport, error)
	Compare(ctx context.Context, first, second DateWindow) (*ComparisonReport, error)
}

type reportQueriesImpl struct {
	uow   shared.UnitOfWork
	store ReportStore
	clock clock.Clock
	cfg   config.ReportConfig
}

func NewReportQueries(uow shared.UnitOfWork, store ReportStore, clk clock.Clock, cfg config.ReportConfig) ReportQueries {
	return &reportQueriesImpl{uow: uow, store: store, clock: clk, cfg: cfg}
}

func (q *reportQueriesImpl) Summary(ctx context.Context, w DateWindow) (*analytics.Summary, error) {
	ds, err := q.datasetFor(ctx, w)
	if err != nil {
		return nil, err
	}
	s := analytics.Summarize(ds)
	return &s, nil
}

func (q *reportQueriesImpl) KPIs(ctx context.Context, w DateWindow) ([]analytics.KPICard, error) {
	r, err := q.resolve(w)
	if err != nil {
		return nil, err
	}
	ds, err := q.load(ctx, r.Union(r.Previous()))
	if err != nil {
		return nil, err
	}
	return analytics.KPICards(ds.For(r)), nil
}

func (q *reportQueriesImpl) RevenueTrend(ctx context.Context, w DateWindow) (*analytics.RevenueTrend, error) {
	ds, err := q.datasetFor(ctx, w)
	if err != nil {
		return nil, err
	}
	t := analytics.RevenueTrendOf(ds)
	return &t, nil
}

func (q *reportQueriesImpl) OccupancyTrend(ctx context.Context, w DateWindow) (*analytics.OccupancyTrend, error) {
	ds, err := q.datasetFor(ctx, w)
	if err != nil {
		return nil, err
	}
	t := analytics.OccupancyTrendOf(ds)
	return &t, nil
}

func (q *reportQueriesImpl) RevenueByRoomType(ctx context.Context, w DateWindow) ([]analytics.RoomTypeRevenue, error) {
	ds, err := q.datasetFor(ctx, w)
	if err != nil {
		return nil, err
	}
	return analytics.RevenueByRoomType(ds), nil
}

func (q *reportQueriesImpl) MonthlyPerformance(ctx context.Context, year *int) ([]analytics.MonthPerformance, error) {
	today := q.today()
	y := today.Year()
	if year != nil {
		y = *year
	}
	if y < minReportYear || y > maxReportYear {
		return nil, ErrInvalidYear
	}
	ds, err := q.load(ctx, analytics.Year(y))
	if err != nil {
		return nil, err
	}
	return analytics.MonthlyPerformance(ds, y, today), nil
}

func (q *reportQueriesImpl) TopRooms(ctx context.Context, w DateWindow, topCount *int) ([]analytics.RoomPerformance, error) {
	ds, err := q.datasetFor(ctx, w)
	if err != nil {
		return nil, err
	}
	return analytics.TopRooms(ds, q.topCount(topCount)), nil
}

func (q *reportQueriesImpl) TopGuests(ctx context.Context, w DateWindow, topCount *int) ([]analytics.GuestValue, error) {
	ds, err := q.datasetFor(ctx, w)
	if err != nil {
		return nil, err
	}
	return analytics.TopGuests(ds, q.topCount(topCount)), nil
}

func (q *reportQueriesImpl) Demographics(ctx context.Context, w DateWindow) ([]analytics.CountryShare, error) {
	ds, err := q.datasetFor(ctx, w)
	if err != nil {
		return nil, err
	}
	return analytics.Demographics(ds), nil
}

func (q *reportQueriesImpl) PaymentAnalytics(ctx context.Context, w DateWindow) (*analytics.PaymentBreakdown, error) {
	ds, err := q.datasetFor(ctx, w)
	if err != nil {
		return nil, err
	}
	p := analytics.PaymentAnalytics(ds)
	return &p, nil
}

func (q *reportQueriesImpl) BookingPatterns(ctx context.Context, w DateWindow) ([]analytics.WeekdayPattern, error) {
	ds, err := q.datasetFor(ctx, w)
	if err != nil {
		return nil, err
	}
	return analytics.BookingPatterns(ds), nil
}

// Comprehensive loads the range, its predecessor and the calendar year of its
// start in one snapshot and derives every section from it.
func (q *reportQueriesImpl) Comprehensive(ctx context.Context, w DateWindow) (*ComprehensiveReport, error) {
	r, err := q.resolve(w)
	if err != nil {
		return nil, err
	}
	year := r.Start().Year()
	all, err := q.load(ctx, r.Union(r.Previous()).Union(analytics.Year(year)))
	if err != nil {
		return nil, err
	}
	ds := all.For(r)

	return &ComprehensiveReport{
		Summary:            analytics.Summarize(ds),
		KPIs:               analytics.KPICards(ds),
		RevenueTrend:       analytics.RevenueTrendOf(ds),
		OccupancyTrend:     analytics.OccupancyTrendOf(ds),
		RevenueByRoomType:  analytics.RevenueByRoomType(ds),
		MonthlyPerformance: analytics.MonthlyPerformance(all.For(analytics.Year(year)), year, q.today()),
		TopRooms:           analytics.TopRooms(ds, comprehensiveTopCount),
		TopGuests:          analytics.TopGuests(ds, comprehensiveTopCount),
		Demographics:       analytics.Demographics(ds),
		Metadata: ReportMetadata{
			GeneratedAt: q.clock.Now(),
			StartDate:   r.Start(),
			EndDate:     r.End(),
			Period:      "custom",
			TotalDays:   r.Days(),
		},
	}, nil
}

func (q *reportQueriesImpl) Quick(ctx context.Context, period string) (*QuickReport, error) {
	preset := ParsePreset(period)
	r := preset.Range(q.today())
	all, err := q.load(ctx, r.Union(r.Previous()))
	if err != nil {
		return nil, err
	}
	ds := all.For(r)

	return &QuickReport{
		Period:            preset,
		StartDate:         r.Start(),
		EndDate:           r.End(),
		Summary:           analytics.Summarize(ds),
		KPIs:              analytics.KPICards(ds),
		RevenueByRoomType: analytics.RevenueByRoomType(ds),
		TopRooms:          analytics.TopRooms(ds, quickTopCount),
		TopGuests:         analytics.TopGuests(ds, quickTopCount),
	}, nil
}

func (q *reportQueriesImpl) Compare(ctx context.Context, first, second DateWindow) (*ComparisonReport, error) {
	r1, err := q.resolve(first)
	if err != nil {
		return nil, err
	}
	r2, err := q.resolve(second)
	if err != nil {
		return nil, err
	}

	var ds1, ds2 analytics.Dataset
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db pgsql.DBTX) error {
		var lerr error
		if ds1, lerr = q.loadOn(ctx, db, r1); lerr != nil {
			return lerr
		}
		ds2, lerr = q.loadOn(ctx, db, r2)
		return lerr
	})
	if err != nil {
		return nil, err
	}

	s1, s2 := analytics.Summarize(ds1), analytics.Summarize(ds2)
	return &ComparisonReport{
		Period1: PeriodReport{StartDate: r1.Start(), EndDate: r1.End(), Summary: s1, RevenueTrend: analytics.RevenueTrendOf(ds1)},
		Period2: PeriodReport{StartDate: r2.Start(), EndDate: r2.End(), Summary: s2, RevenueTrend: analytics.RevenueTrendOf(ds2)},
		Changes: analytics.Compare(s1, s2),
	}, nil
}

func (q *reportQueriesImpl) datasetFor(ctx context.Context, w DateWindow) (analytics.Dataset, error) {
	r, err := q.resolve(w)
	if err != nil {
		return analytics.Dataset{}, err
	}
	return q.load(ctx, r)
}

func (q *reportQueriesImpl) load(ctx context.Context, r analytics.DateRange) (analytics.Dataset, error) {
	var ds analytics.Dataset
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db pgsql.DBTX) error {
		var lerr error
		ds, lerr = q.loadOn(ctx, db, r)
		return lerr
	})
	return ds, err
}

func (q *reportQueriesImpl) loadOn(ctx context.Context, db pgsql.DBTX, r analytics.DateRange) (analytics.Dataset, error) {
	rooms, err := q.store.CountRooms(ctx, db)
	if err != nil {
		return analytics.Dataset{}, err
	}
	stays, err := q.store.ListStays(ctx, db, r)
	if err != nil {
		return analytics.Dataset{}, err
	}
	return analytics.Dataset{Range: r, TotalRooms: rooms, Stays: stays}, nil
}

func (q *reportQueriesImpl) today() time.Time {
	return clock.Date(q.clock.Now(), q.cfg.Location())
}

func (q *reportQueriesImpl) resolve(w DateWindow) (analytics.DateRange, error) {
	today := q.today()
	switch {
	case w.Start == nil && w.End == nil:
		return analytics.LastDays(today, DefaultReportDays), nil
	case w.Start == nil:
		return analytics.LastDays(*w.End, DefaultReportDays), nil
	}

	end := today
	if w.End != nil {
		end = *w.End
	}
	r, err := analytics.NewDateRange(*w.Start, end)
	if err != nil {
		return analytics.DateRange{}, errs.Mark(err, ErrInvalidReportRange)
	}
	return r, nil
}

func (q *reportQueriesImpl) topCount(n *int) int {
	if n == nil || *n <= 0 {
		return q.cfg.DefaultTopCount
	}
	return min(*n, q.cfg.MaxTopCount)
}
