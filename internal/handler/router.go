package handler

import (
	"net/http"

	"hotel-management/internal/handler/api"
	"hotel-management/internal/handler/middleware"
	"hotel-management/internal/handler/validation"
	"hotel-management/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Guest       *api.GuestHandler
	Room        *api.RoomHandler
	Reservation *api.ReservationHandler
	Report      *api.ReportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) error {
	if err := validation.Register(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.Middleware())
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NotFound)
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/", welcome)
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.GET("", apiInfo)

	addRoutes(apiGroup.Group("/guests"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.Guest.List},
		{Method: http.MethodPost, Path: "", Handler: h.Guest.Create},
		{Method: http.MethodPost, Path: "/bulk", Handler: h.Guest.BulkCreate},
		{Method: http.MethodPost, Path: "/populate", Handler: h.Guest.Populate},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Guest.Get},
		{Method: http.MethodPut, Path: "/:id", Handler: h.Guest.Update},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Guest.Delete},
	})

	addRoutes(apiGroup.Group("/rooms"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.Room.List},
		{Method: http.MethodPost, Path: "", Handler: h.Room.Create},
		{Method: http.MethodGet, Path: "/available", Handler: h.Room.ListAvailable},
		{Method: http.MethodPost, Path: "/bulk", Handler: h.Room.BulkCreate},
		{Method: http.MethodPost, Path: "/populate-floor", Handler: h.Room.PopulateFloor},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
		{Method: http.MethodPut, Path: "/:id", Handler: h.Room.Update},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.Delete},
		{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Room.Availability},
	})

	addRoutes(apiGroup.Group("/reservations"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
		{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
		{Method: http.MethodGet, Path: "/check-availability", Handler: h.Reservation.CheckAvailability},
		{Method: http.MethodPost, Path: "/bulk", Handler: h.Reservation.BulkCreate},
		{Method: http.MethodPost, Path: "/populate", Handler: h.Reservation.Populate},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
		{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Update},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete},
		{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Reservation.UpdateStatus},
		{Method: http.MethodPatch, Path: "/:id/payment-status", Handler: h.Reservation.UpdatePaymentStatus},
	})

	addRoutes(apiGroup.Group("/reports"), []route{
		{Method: http.MethodGet, Path: "/summary", Handler: h.Report.Summary},
		{Method: http.MethodGet, Path: "/kpis", Handler: h.Report.KPIs},
		{Method: http.MethodGet, Path: "/revenue-trend", Handler: h.Report.RevenueTrend},
		{Method: http.MethodGet, Path: "/occupancy-trend", Handler: h.Report.OccupancyTrend},
		{Method: http.MethodGet, Path: "/revenue-by-room-type", Handler: h.Report.RevenueByRoomType},
		{Method: http.MethodGet, Path: "/monthly-performance", Handler: h.Report.MonthlyPerformance},
		{Method: http.MethodGet, Path: "/top-rooms", Handler: h.Report.TopRooms},
		{Method: http.MethodGet, Path: "/top-guests", Handler: h.Report.TopGuests},
		{Method: http.MethodGet, Path: "/guest-demographics", Handler: h.Report.Demographics},
		{Method: http.MethodGet, Path: "/payment-analytics", Handler: h.Report.PaymentAnalytics},
		{Method: http.MethodGet, Path: "/booking-patterns", Handler: h.Report.BookingPatterns},
		{Method: http.MethodGet, Path: "/comprehensive", Handler: h.Report.Comprehensive},
		{Method: http.MethodGet, Path: "/quick/:period", Handler: h.Report.Quick},
		{Method: http.MethodPost, Path: "/compare", Handler: h.Report.Compare},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

const apiVersion = "1.0.0"

// @Summary Welcome
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router / [get]
func welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Hotel Management API",
		"version": apiVersion,
		"endpoints": gin.H{
			"guests":       "/api/guests",
			"rooms":        "/api/rooms",
			"reservations": "/api/reservations",
			"reports":      "/api/reports",
			"health":       "/health",
		},
	})
}

// @Summary API info
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api [get]
func apiInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Hotel Management API",
		"version":     apiVersion,
		"description": "Guests, rooms, reservations and revenue reporting",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
