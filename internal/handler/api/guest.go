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

type GuestHandler struct {
	cmds commands.GuestCommands
	q    queries.GuestQueries
}

func NewGuestHandler(cmds commands.GuestCommands, q queries.GuestQueries) *GuestHandler {
	return &GuestHandler{cmds: cmds, q: q}
}

// @Summary List guests
// @Tags guests
// @Produce json
// @Success 200 {array} resdto.GuestResponse
// @Failure 500 {object} httperr.Response
// @Router /guests [get]
func (h *GuestHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGuestViews(views))
}

// @Summary Get guest
// @Tags guests
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /guests/{id} [get]
func (h *GuestHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGuestView(view))
}

// @Summary Create guest
// @Tags guests
// @Accept json
// @Produce json
// @Param request body reqdto.CreateGuestRequest true "Guest"
// @Success 201 {object} resdto.GuestResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /guests [post]
func (h *GuestHandler) Create(c *gin.Context) {
	var req reqdto.CreateGuestRequest
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
	c.Header("Location", "/api/guests/"+id.String())
	c.JSON(http.StatusCreated, resdto.FromGuestView(view))
}

// @Summary Update guest
// @Tags guests
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body reqdto.UpdateGuestRequest true "Guest"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /guests/{id} [put]
func (h *GuestHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateGuestRequest
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
	c.JSON(http.StatusOK, resdto.FromGuestView(view))
}

// @Summary Delete guest
// @Description Fails with 409 while the guest still has reservations
// @Tags guests
// @Param id path string true "Guest ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /guests/{id} [delete]
func (h *GuestHandler) Delete(c *gin.Context) {
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

// @Summary Bulk create guests
// @Description Creates every valid guest; duplicates and invalid rows are reported in errors
// @Tags guests
// @Accept json
// @Produce json
// @Param request body reqdto.BulkCreateGuestsRequest true "Guests"
// @Success 200 {object} resdto.BulkResultResponse[resdto.GuestResponse]
// @Failure 400 {object} httperr.Response
// @Router /guests/bulk [post]
func (h *GuestHandler) BulkCreate(c *gin.Context) {
	var req reqdto.BulkCreateGuestsRequest
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

// @Summary Populate sample guests
// @Tags guests
// @Produce json
// @Param count query int false "Number of random guests (1-100, default 10)"
// @Param kind query string false "random (default), all, premium, business or leisure"
// @Param seed query int false "Random seed"
// @Success 200 {object} resdto.BulkResultResponse[resdto.GuestResponse]
// @Failure 400 {object} httperr.Response
// @Router /guests/populate [post]
func (h *GuestHandler) Populate(c *gin.Context) {
	var q reqdto.PopulateGuestsQuery
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

func (h *GuestHandler) renderBulk(c *gin.Context, result *commands.BulkResult) {
	views, err := h.q.ListByIDs(c.Request.Context(), result.Created)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBulkResult("guests", result, resdto.FromGuestViews(views))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
