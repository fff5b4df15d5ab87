package api

import (
	"net/http"

	reqdto "hotel-management/internal/handler/dto/request"
	resdto "hotel-management/internal/handler/dto/response"
	"hotel-management/internal/handler/httperr"
	"hotel-management/internal/usecase/commands"
	"hotel-management/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	cmds         commands.RoomCommands
	q            queries.RoomQueries
	availability queries.AvailabilityQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries, availability queries.AvailabilityQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary List rooms flagged available
// @Description Rooms whose manual availability flag is set, regardless of bookings
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms/available [get]
func (h *RoomHandler) ListAvailable(c *gin.Context) {
	views, err := h.q.ListAvailable(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/rooms/"+id.String())
	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary Update room
// @Description Existing reservations keep their totals
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Room"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Delete room
// @Tags rooms
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
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

// @Summary Room availability for a stay
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param check_in query string true "YYYY-MM-DD"
// @Param check_out query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.RoomAvailabilityCheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	checkIn, checkOut := q.Dates()
	check, err := h.availability.IsRoomAvailable(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityCheck(check))
}

// @Summary Bulk create rooms
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.BulkCreateRoomsRequest true "Rooms"
// @Success 200 {object} resdto.BulkResultResponse[resdto.RoomResponse]
// @Failure 400 {object} httperr.Response
// @Router /rooms/bulk [post]
func (h *RoomHandler) BulkCreate(c *gin.Context) {
	var req reqdto.BulkCreateRoomsRequest
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

// @Summary Populate a floor with sample rooms
// @Tags rooms
// @Produce json
// @Param floor query int false "Floor 1-20 (default 1)"
// @Param rooms_per_floor query int false "Rooms 1-50 (default 10)"
// @Success 200 {object} resdto.BulkResultResponse[resdto.RoomResponse]
// @Failure 400 {object} httperr.Response
// @Router /rooms/populate-floor [post]
func (h *RoomHandler) PopulateFloor(c *gin.Context) {
	var q reqdto.PopulateFloorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	result, err := h.cmds.PopulateFloor(c.Request.Context(), q.Floor, q.RoomsPerFloor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.renderBulk(c, result)
}

func (h *RoomHandler) renderBulk(c *gin.Context, result *commands.BulkResult) {
	views, err := h.q.ListByIDs(c.Request.Context(), result.Created)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBulkResult("rooms", result, resdto.FromRoomViews(views))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
