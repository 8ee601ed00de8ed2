package handlers

import (
	"net/http"

	"seating-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SeatingHandler handles HTTP requests for the seating chart
type SeatingHandler struct {
	seatingService service.SeatingServiceInterface
}

// NewSeatingHandler creates a new seating handler
func NewSeatingHandler(seatingService service.SeatingServiceInterface) *SeatingHandler {
	return &SeatingHandler{
		seatingService: seatingService,
	}
}

// AssignSeatRequest seats a guest at a table
type AssignSeatRequest struct {
	GuestID uuid.UUID `json:"guest_id" binding:"required"`
	TableID uuid.UUID `json:"table_id" binding:"required"`
}

// GetChart handles GET /seating
// @Summary Seating chart
// @Description Tables with their seated guests and free seats, plus every unassigned guest
// @Tags seating
// @Produce json
// @Success 200 {object} service.SeatingChart "Seating chart"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /seating [get]
func (h *SeatingHandler) GetChart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	chart, err := h.seatingService.Chart(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, chart)
}

// AssignSeat handles POST /seating/assignments
// @Summary Seat a guest
// @Description Seat a guest at a table. A full table is rejected; seating a guest at their current table changes nothing.
// @Tags seating
// @Accept json
// @Produce json
// @Param assignment body AssignSeatRequest true "Guest and table"
// @Success 200 {object} service.SeatingChart "Updated seating chart"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Organizer role required"
// @Failure 404 {object} ErrorResponse "Guest or table not found"
// @Failure 409 {object} ErrorResponse "Table full"
// @Security BearerAuth
// @Router /seating/assignments [post]
func (h *SeatingHandler) AssignSeat(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req AssignSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	chart, err := h.seatingService.Assign(c.Request.Context(), actor, req.GuestID, req.TableID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, chart)
}

// UnassignSeat handles DELETE /seating/assignments/:guestId
// @Summary Unseat a guest
// @Tags seating
// @Produce json
// @Param guestId path string true "Guest ID (UUID)"
// @Success 200 {object} service.SeatingChart "Updated seating chart"
// @Failure 400 {object} ErrorResponse "Invalid guest ID"
// @Failure 403 {object} ErrorResponse "Organizer role required"
// @Failure 404 {object} ErrorResponse "Guest not found"
// @Security BearerAuth
// @Router /seating/assignments/{guestId} [delete]
func (h *SeatingHandler) UnassignSeat(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	guestID, ok := pathID(c, "guestId", "guest")
	if !ok {
		return
	}

	chart, err := h.seatingService.Unassign(c.Request.Context(), actor, guestID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, chart)
}
