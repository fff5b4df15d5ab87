package api

import (
	"context"
	"net/http"

	"hotel-management/internal/domain/analytics"
	reqdto "hotel-management/internal/handler/dto/request"
	resdto "hotel-management/internal/handler/dto/response"
	"hotel-management/internal/handler/httperr"
	"hotel-management/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	q queries.ReportQueries
}

func NewReportHandler(q queries.ReportQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// respond runs fetch and renders its result through conv as 200.
func respond[T, R any](c *gin.Context, fetch func(ctx context.Context) (T, error), conv func(T) (R, error)) {
	data, err := fetch(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := conv(data)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func bindReportQuery(c *gin.Context) (reqdto.ReportQuery, bool) {
	var q reqdto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return q, false
	}
	return q, true
}

// @Summary Revenue and occupancy summary
// @Description Defaults to the last 30 days ending today
// @Tags reports
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.SummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}
	respond(c, func(ctx context.Context) (*analytics.Summary, error) {
		return h.q.Summary(ctx, q.Window())
	}, resdto.FromSummary)
}

// @Summary KPI cards against the preceding window
// @Tags reports
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {array} resdto.KPICardResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/kpis [get]
func (h *ReportHandler) KPIs(c *gin.Context) {
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}
	respond(c, func(ctx context.Context) ([]analytics.KPICard, error) {
		return h.q.KPIs(ctx, q.Window())
	}, resdto.FromKPIs)
}

// @Summary Daily revenue with trend direction
// @Tags reports
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.RevenueTrendResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/revenue-trend [get]
func (h *ReportHandler) RevenueTrend(c *gin.Context) {
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}
	respond(c, func(ctx context.Context) (*analytics.RevenueTrend, error) {
		return h.q.RevenueTrend(ctx, q.Window())
	}, resdto.FromRevenueTrend)
}

// @Summary Daily occupancy
// @Tags reports
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.OccupancyTrendResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/occupancy-trend [get]
func (h *ReportHandler) OccupancyTrend(c *gin.Context) {
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}
	respond(c, func(ctx context.Context) (*analytics.OccupancyTrend, error) {
		return h.q.OccupancyTrend(ctx, q.Window())
	}, resdto.FromOccupancyTrend)
}

// @Summary Paid revenue per room type
// @Tags reports
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {array} resdto.RoomTypeRevenueResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/revenue-by-room-type [get]
func (h *ReportHandler) RevenueByRoomType(c *gin.Context) {
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}
	respond(c, func(ctx context.Context) ([]analytics.RoomTypeRevenue, error) {
		return h.q.RevenueByRoomType(ctx, q.Window())
	}, resdto.FromRoomTypeRevenue)
}

// @Summary Twelve months of performance
// @Tags reports
// @Produce json
// @Param year query int false "Calendar year (default current)"
// @Success 200 {array} resdto.MonthPerformanceResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/monthly-performance [get]
func (h *ReportHandler) MonthlyPerformance(c *gin.Context) {
	var q reqdto.MonthlyPerformanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	respond(c, func(ctx context.Context) ([]analytics.MonthPerformance, error) {
		return h.q.MonthlyPerformance(ctx, q.Year)
	}, resdto.FromMonthlyPerformance)
}

// @Summary Best rooms by revenue
// @Tags reports
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Param top_count query int false "Rows to return"
// @Success 200 {array} resdto.RoomPerformanceResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/top-rooms [get]
func (h *ReportHandler) TopRooms(c *gin.Context) {
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}
	respond(c, func(ctx context.Context) ([]analytics.RoomPerformance, error) {
		return h.q.TopRooms(ctx, q.Window(), q.TopCount)
	}, resdto.FromRoomPerformance)
}

// @Summary Best guests by lifetime value
// @Tags reports
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Param top_count query int false "Rows to return"
// @Success 200 {array} resdto.GuestValueResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/top-guests [get]
func (h *ReportHandler) TopGuests(c *gin.Context) {
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}
	respond(c, func(ctx context.Context) ([]analytics.GuestValue, error) {
		return h.q.TopGuests(ctx, q.Window(), q.TopCount)
	}, resdto.FromGuestValues)
}

// @Summary Guests by country
// @Tags reports
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {array} resdto.CountryShareResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/guest-demographics [get]
func (h *ReportHandler) Demographics(c *gin.Context) {
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}
	respond(c, func(ctx context.Context) ([]analytics.CountryShare, error) {
		return h.q.Demographics(ctx, q.Window())
	}, resdto.FromDemographics)
}

// @Summary Revenue split by payment status
// @Tags reports
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.PaymentBreakdownResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/payment-analytics [get]
func (h *ReportHandler) PaymentAnalytics(c *gin.Context) {
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}
	respond(c, func(ctx context.Context) (*analytics.PaymentBreakdown, error) {
		return h.q.PaymentAnalytics(ctx, q.Window())
	}, resdto.FromPaymentBreakdown)
}

// @Summary Bookings by check-in weekday
// @Tags reports
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {array} resdto.WeekdayPatternResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/booking-patterns [get]
func (h *ReportHandler) BookingPatterns(c *gin.Context) {
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}
	respond(c, func(ctx context.Context) ([]analytics.WeekdayPattern, error) {
		return h.q.BookingPatterns(ctx, q.Window())
	}, func(rows []analytics.WeekdayPattern) ([]resdto.WeekdayPatternResponse, error) {
		return resdto.FromBookingPatterns(rows), nil
	})
}

// @Summary Every report section for one window
// @Tags reports
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.ComprehensiveReportResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/comprehensive [get]
func (h *ReportHandler) Comprehensive(c *gin.Context) {
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}
	respond(c, func(ctx context.Context) (*queries.ComprehensiveReport, error) {
		return h.q.Comprehensive(ctx, q.Window())
	}, resdto.FromComprehensive)
}

// @Summary Report for a named period
// @Description Unknown presets fall back to last30days
// @Tags reports
// @Produce json
// @Param period path string true "today, yesterday, last7days, last30days, last90days, thismonth, lastmonth or thisyear"
// @Success 200 {object} resdto.QuickReportResponse
// @Router /reports/quick/{period} [get]
func (h *ReportHandler) Quick(c *gin.Context) {
	period := c.Param("period")
	respond(c, func(ctx context.Context) (*queries.QuickReport, error) {
		return h.q.Quick(ctx, period)
	}, resdto.FromQuick)
}

// @Summary Compare two windows
// @Tags reports
// @Accept json
// @Produce json
// @Param request body reqdto.CompareReportsRequest true "Windows"
// @Success 200 {object} resdto.ComparisonReportResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/compare [post]
func (h *ReportHandler) Compare(c *gin.Context) {
	var req reqdto.CompareReportsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	first, second := req.Windows()
	respond(c, func(ctx context.Context) (*queries.ComparisonReport, error) {
		return h.q.Compare(ctx, first, second)
	}, resdto.FromComparison)
}
