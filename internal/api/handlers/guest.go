package handlers

import (
	"net/http"

	"seating-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GuestHandler handles HTTP requests for guest operations
type GuestHandler struct {
	guestService service.GuestServiceInterface
}

// NewGuestHandler creates a new guest handler
func NewGuestHandler(guestService service.GuestServiceInterface) *GuestHandler {
	return &GuestHandler{
		guestService: guestService,
	}
}

// ListGuests handles GET /guests
// @Summary List guests
// @Description List the organizer's guests, newest first, optionally filtered by name and RSVP status
// @Tags guests
// @Produce json
// @Param q query string false "Case-insensitive substring of first or last name"
// @Param status query string false "all, no-response, accepted or declined"
// @Success 200 {array} models.Guest "Guests"
// @Failure 400 {object} ErrorResponse "Invalid status filter"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /guests [get]
func (h *GuestHandler) ListGuests(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var filter service.GuestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	guests, err := h.guestService.List(c.Request.Context(), actor, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, guests)
}

// GetGuestStats handles GET /guests/stats
// @Summary Guest statistics
// @Description Count the organizer's guests by RSVP status
// @Tags guests
// @Produce json
// @Success 200 {object} service.GuestStats "Counts"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /guests/stats [get]
func (h *GuestHandler) GetGuestStats(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	stats, err := h.guestService.Stats(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetGuest handles GET /guests/:id
// @Summary Get guest by ID
// @Tags guests
// @Produce json
// @Param id path string true "Guest ID (UUID)"
// @Success 200 {object} models.Guest "Guest"
// @Failure 400 {object} ErrorResponse "Invalid guest ID"
// @Failure 404 {object} ErrorResponse "Guest not found"
// @Security BearerAuth
// @Router /guests/{id} [get]
func (h *GuestHandler) GetGuest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "guest")
	if !ok {
		return
	}

	guest, err := h.guestService.Get(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, guest)
}

// CreateGuest handles POST /guests
// @Summary Create a guest
// @Description Add a guest. Names are trimmed and must be unique per organizer, ignoring case. The seat is given by table_id or table_number (the table's name).
// @Tags guests
// @Accept json
// @Produce json
// @Param guest body service.CreateGuestRequest true "Guest data"
// @Success 201 {object} models.Guest "Created guest"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Organizer role required"
// @Failure 404 {object} ErrorResponse "Table not found"
// @Failure 409 {object} ErrorResponse "Duplicate name or table full"
// @Security BearerAuth
// @Router /guests [post]
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req service.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	guest, err := h.guestService.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, guest)
}

// UpdateGuest handles PUT /guests/:id
// @Summary Update a guest
// @Description Partially update a guest. A nil-UUID table_id or an empty table_number unseats the guest. When version is sent it must match the stored version.
// @Tags guests
// @Accept json
// @Produce json
// @Param id path string true "Guest ID (UUID)"
// @Param guest body service.UpdateGuestRequest true "Fields to change"
// @Success 200 {object} models.Guest "Updated guest"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Organizer role required"
// @Failure 404 {object} ErrorResponse "Guest or table not found"
// @Failure 409 {object} ErrorResponse "Duplicate name, table full or stale version"
// @Security BearerAuth
// @Router /guests/{id} [put]
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "guest")
	if !ok {
		return
	}

	var req service.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	guest, err := h.guestService.Update(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, guest)
}

// DeleteGuest handles DELETE /guests/:id
// @Summary Delete a guest
// @Tags guests
// @Param id path string true "Guest ID (UUID)"
// @Success 204 "Guest deleted"
// @Failure 400 {object} ErrorResponse "Invalid guest ID"
// @Failure 403 {object} ErrorResponse "Organizer role required"
// @Failure 404 {object} ErrorResponse "Guest not found"
// @Security BearerAuth
// @Router /guests/{id} [delete]
func (h *GuestHandler) DeleteGuest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "guest")
	if !ok {
		return
	}

	if err := h.guestService.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
