package response

import (
	"time"

	"hotel-management/internal/domain/analytics"
	"hotel-management/internal/usecase/queries"

	"github.com/google/uuid"
)

type SummaryResponse struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalBookings     int     `json:"total_bookings"`
	CancellationRate  float64 `json:"cancellation_rate"`
	AverageOccupancy  float64 `json:"average_occupancy"`
	AverageDailyRate  float64 `json:"average_daily_rate"`
	RevPAR            float64 `json:"revpar"`
	TotalGuests       int     `json:"total_guests"`
	RepeatGuestRate   float64 `json:"repeat_guest_rate"`
	AverageStayLength float64 `json:"average_stay_length"`
	TotalActiveRooms  int     `json:"total_active_rooms"`
}

type KPICardResponse struct {
	Title  string  `json:"title"`
	Value  string  `json:"value"`
	Change float64 `json:"change"`
	Trend  string  `json:"trend"`
	Icon   string  `json:"icon"`
	Color  string  `json:"color"`
}

type RevenuePointResponse struct {
	Date        string  `json:"date"`
	Revenue     float64 `json:"revenue"`
	Bookings    int     `json:"bookings"`
	AverageRate float64 `json:"average_rate"`
}

type RevenueTrendResponse struct {
	Daily          []RevenuePointResponse `json:"daily_data"`
	TotalRevenue   float64                `json:"total_revenue"`
	AverageRevenue float64                `json:"average_revenue"`
	GrowthRate     float64                `json:"growth_rate"`
	Direction      string                 `json:"trend"`
}

type OccupancyPointResponse struct {
	Date           string  `json:"date"`
	OccupancyRate  float64 `json:"occupancy_rate"`
	AvailableRooms int     `json:"available_rooms"`
	OccupiedRooms  int     `json:"occupied_rooms"`
}

type OccupancyTrendResponse struct {
	Daily            []OccupancyPointResponse `json:"daily_data"`
	AverageOccupancy float64                  `json:"average_occupancy"`
	PeakOccupancy    float64                  `json:"peak_occupancy"`
	LowestOccupancy  float64                  `json:"lowest_occupancy"`
}

type RoomTypeRevenueResponse struct {
	RoomType   string  `json:"room_type"`
	Revenue    float64 `json:"revenue"`
	Bookings   int     `json:"bookings"`
	Percentage float64 `json:"percentage"`
}

type MonthPerformanceResponse struct {
	Month             string  `json:"month"`
	Year              int     `json:"year"`
	Revenue           float64 `json:"revenue"`
	Occupancy         float64 `json:"occupancy"`
	AverageDailyRate  float64 `json:"adr"`
	RevPAR            float64 `json:"revpar"`
	TotalBookings     int     `json:"total_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
}

type RoomPerformanceResponse struct {
	RoomID        uuid.UUID `json:"room_id"`
	RoomNumber    string    `json:"room_number"`
	RoomType      string    `json:"room_type"`
	Bookings      int       `json:"bookings"`
	Revenue       float64   `json:"revenue"`
	OccupancyRate float64   `json:"occupancy_rate"`
	AverageRate   float64   `json:"average_rate"`
}

type GuestValueResponse struct {
	GuestID    uuid.UUID `json:"guest_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	TotalStays int       `json:"total_stays"`
	TotalSpent float64   `json:"total_spent"`
	LastVisit  string    `json:"last_visit"`
}

type CountryShareResponse struct {
	Country    string  `json:"country"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type PaymentBreakdownResponse struct {
	TotalPaid          float64 `json:"total_paid"`
	TotalPending       float64 `json:"total_pending"`
	TotalRefunded      float64 `json:"total_refunded"`
	PaidCount          int     `json:"paid_count"`
	PendingCount       int     `json:"pending_count"`
	RefundedCount      int     `json:"refunded_count"`
	PaymentSuccessRate float64 `json:"payment_success_rate"`
}

type WeekdayPatternResponse struct {
	DayOfWeek      string  `json:"day_of_week"`
	BookingCount   int     `json:"booking_count"`
	AverageRevenue float64 `json:"average_revenue"`
}

type ChangeResponse struct {
	Metric           string  `json:"metric"`
	Difference       float64 `json:"difference"`
	PercentageChange float64 `json:"percentage_change"`
	Trend            string  `json:"trend"`
}

type ReportMetadataResponse struct {
	GeneratedAt time.Time `json:"generated_at" copier:"-"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Period      string    `json:"period"`
	TotalDays   int       `json:"total_days"`
}

type ComprehensiveReportResponse struct {
	Summary            SummaryResponse            `json:"summary"`
	KPIs               []KPICardResponse          `json:"kpis"`
	RevenueTrend       RevenueTrendResponse       `json:"revenue_trend"`
	OccupancyTrend     OccupancyTrendResponse     `json:"occupancy_trend"`
	RevenueByRoomType  []RoomTypeRevenueResponse  `json:"revenue_by_room_type"`
	MonthlyPerformance []MonthPerformanceResponse `json:"monthly_performance"`
	TopRooms           []RoomPerformanceResponse  `json:"top_performing_rooms"`
	TopGuests          []GuestValueResponse       `json:"top_guests"`
	Demographics       []CountryShareResponse     `json:"guest_demographics"`
	Metadata           ReportMetadataResponse     `json:"metadata"`
}

type QuickReportResponse struct {
	Period            string                    `json:"period"`
	StartDate         string                    `json:"start_date"`
	EndDate           string                    `json:"end_date"`
	Summary           SummaryResponse           `json:"summary"`
	KPIs              []KPICardResponse         `json:"kpis"`
	RevenueByRoomType []RoomTypeRevenueResponse `json:"revenue_by_room_type"`
	TopRooms          []RoomPerformanceResponse `json:"top_rooms"`
	TopGuests         []GuestValueResponse      `json:"top_guests"`
}

type PeriodReportResponse struct {
	StartDate    string               `json:"start_date"`
	EndDate      string               `json:"end_date"`
	Summary      SummaryResponse      `json:"summary"`
	RevenueTrend RevenueTrendResponse `json:"revenue_trend"`
}

type ComparisonReportResponse struct {
	Period1 PeriodReportResponse `json:"period1"`
	Period2 PeriodReportResponse `json:"period2"`
	Changes []ChangeResponse     `json:"changes"`
}

func FromSummary(s *analytics.Summary) (SummaryResponse, error) {
	return convert[SummaryResponse](s)
}

func FromKPIs(cards []analytics.KPICard) ([]KPICardResponse, error) {
	return nonNil(convert[[]KPICardResponse](cards))
}

func FromRevenueTrend(t *analytics.RevenueTrend) (RevenueTrendResponse, error) {
	res, err := convert[RevenueTrendResponse](t)
	orEmpty(&res.Daily)
	return res, err
}

func FromOccupancyTrend(t *analytics.OccupancyTrend) (OccupancyTrendResponse, error) {
	res, err := convert[OccupancyTrendResponse](t)
	orEmpty(&res.Daily)
	return res, err
}

func FromRoomTypeRevenue(rows []analytics.RoomTypeRevenue) ([]RoomTypeRevenueResponse, error) {
	return nonNil(convert[[]RoomTypeRevenueResponse](rows))
}

func FromMonthlyPerformance(rows []analytics.MonthPerformance) ([]MonthPerformanceResponse, error) {
	return nonNil(convert[[]MonthPerformanceResponse](rows))
}

func FromRoomPerformance(rows []analytics.RoomPerformance) ([]RoomPerformanceResponse, error) {
	return nonNil(convert[[]RoomPerformanceResponse](rows))
}

func FromGuestValues(rows []analytics.GuestValue) ([]GuestValueResponse, error) {
	return nonNil(convert[[]GuestValueResponse](rows))
}

func FromDemographics(rows []analytics.CountryShare) ([]CountryShareResponse, error) {
	return nonNil(convert[[]CountryShareResponse](rows))
}

func FromPaymentBreakdown(p *analytics.PaymentBreakdown) (PaymentBreakdownResponse, error) {
	return convert[PaymentBreakdownResponse](p)
}

func FromBookingPatterns(rows []analytics.WeekdayPattern) []WeekdayPatternResponse {
	res := make([]WeekdayPatternResponse, len(rows))
	for i, p := range rows {
		res[i] = WeekdayPatternResponse{
			DayOfWeek:      p.DayOfWeek.String(),
			BookingCount:   p.BookingCount,
			AverageRevenue: p.AverageRevenue,
		}
	}
	return res
}

func FromComprehensive(r *queries.ComprehensiveReport) (*ComprehensiveReportResponse, error) {
	res, err := convert[ComprehensiveReportResponse](r)
	if err != nil {
		return nil, err
	}
	res.Metadata.GeneratedAt = r.Metadata.GeneratedAt
	orEmpty(&res.KPIs)
	orEmpty(&res.RevenueTrend.Daily)
	orEmpty(&res.OccupancyTrend.Daily)
	orEmpty(&res.RevenueByRoomType)
	orEmpty(&res.MonthlyPerformance)
	orEmpty(&res.TopRooms)
	orEmpty(&res.TopGuests)
	orEmpty(&res.Demographics)
	return &res, nil
}

func FromQuick(r *queries.QuickReport) (*QuickReportResponse, error) {
	res, err := convert[QuickReportResponse](r)
	if err != nil {
		return nil, err
	}
	res.Period = string(r.Period)
	orEmpty(&res.KPIs)
	orEmpty(&res.RevenueByRoomType)
	orEmpty(&res.TopRooms)
	orEmpty(&res.TopGuests)
	return &res, nil
}

func FromComparison(r *queries.ComparisonReport) (*ComparisonReportResponse, error) {
	res, err := convert[ComparisonReportResponse](r)
	if err != nil {
		return nil, err
	}
	orEmpty(&res.Changes)
	orEmpty(&res.Period1.RevenueTrend.Daily)
	orEmpty(&res.Period2.RevenueTrend.Daily)
	return &res, nil
}

// empty collections render as [] rather than null
func nonNil[T any](rows []T, err error) ([]T, error) {
	orEmpty(&rows)
	return rows, err
}

func orEmpty[T any](rows *[]T) {
	if *rows == nil {
		*rows = []T{}
	}
}
