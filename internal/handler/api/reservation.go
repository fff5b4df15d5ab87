package api

import (
	"net/http"

	reqdto "hotel-management/internal/handler/dto/request"
	resdto "hotel-management/internal/handler/dto/response"
	"hotel-management/internal/handler/httperr"
	"hotel-management/internal/usecase/commands"
	"hotel-management/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds         commands.ReservationCommands
	q            queries.ReservationQueries
	availability queries.AvailabilityQueries
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	q queries.ReservationQueries,
	availability queries.AvailabilityQueries,
) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary List reservations
// @Description Newest first, cursor paginated
// @Tags reservations
// @Produce json
// @Param room_id query string false "Room ID"
// @Param guest_id query string false "Guest ID"
// @Param status query string false "Reservation status"
// @Param payment_status query string false "Payment status"
// @Param check_in_from query string false "YYYY-MM-DD"
// @Param check_in_to query string false "YYYY-MM-DD"
// @Param limit query int false "Page size (max 200)"
// @Param after query string false "Cursor from previous page"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	views, next, err := h.q.List(c.Request.Context(), q.Filters(), q.Cursor(), queries.ValidateLimit(q.Limit))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views, next))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Create reservation
// @Description Price is nights times the room's nightly rate
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+id.String())
	h.render(c, http.StatusCreated, id)
}

// @Summary Update reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Reservation"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Change reservation status
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateStatusRequest true "Status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/status [patch]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	if err := h.cmds.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Change payment status
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdatePaymentStatusRequest true "Payment status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/payment-status [patch]
func (h *ReservationHandler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	if err := h.cmds.UpdatePaymentStatus(c.Request.Context(), id, req.PaymentStatus); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Delete reservation
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Availability of every room for a stay
// @Tags reservations
// @Produce json
// @Param check_in query string true "YYYY-MM-DD"
// @Param check_out query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.AvailabilityListResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations/check-availability [get]
func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	checkIn, checkOut := q.Dates()
	rooms, err := h.availability.ListAvailability(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(checkIn, checkOut, rooms))
}

// @Summary Bulk create reservations
// @Description Each item is checked independently, failures are reported and skipped
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.BulkCreateReservationsRequest true "Reservations"
// @Success 200 {object} resdto.BulkResultResponse[resdto.ReservationResponse]
// @Failure 400 {object} httperr.Response
// @Router /reservations/bulk [post]
func (h *ReservationHandler) BulkCreate(c *gin.Context) {
	var req reqdto.BulkCreateReservationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	result, err := h.cmds.BulkCreate(c.Request.Context(), req.ToInputs())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.renderBulk(c, result)
}

// @Summary Populate sample reservations
// @Tags reservations
// @Produce json
// @Param count query int false "Number of reservations (default 20)"
// @Param type query string false "mixed, business, vacation or weekend"
// @Param seed query int false "Random seed"
// @Success 200 {object} resdto.BulkResultResponse[resdto.ReservationResponse]
// @Failure 400 {object} httperr.Response
// @Router /reservations/populate [post]
func (h *ReservationHandler) Populate(c *gin.Context) {
	var q reqdto.PopulateReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	result, err := h.cmds.Populate(c.Request.Context(), q.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.renderBulk(c, result)
}

func (h *ReservationHandler) render(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromReservationView(view))
}

func (h *ReservationHandler) renderBulk(c *gin.Context, result *commands.BulkResult) {
	views, err := h.q.ListByIDs(c.Request.Context(), result.Created)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	created := make([]*resdto.ReservationResponse, len(views))
	for i, v := range views {
		created[i] = resdto.FromReservationView(v)
	}
	res, err := resdto.FromBulkResult("reservations", result, created)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
