package handlers

import (
	"net/http"

	"seating-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TableHandler handles HTTP requests for table operations
type TableHandler struct {
	tableService service.TableServiceInterface
}

// NewTableHandler creates a new table handler
func NewTableHandler(tableService service.TableServiceInterface) *TableHandler {
	return &TableHandler{
		tableService: tableService,
	}
}

// ListTables handles GET /tables
// @Summary List tables
// @Description List the organizer's tables, newest first
// @Tags tables
// @Produce json
// @Success 200 {array} models.Table "Tables"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /tables [get]
func (h *TableHandler) ListTables(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	tables, err := h.tableService.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tables)
}

// ListTablesWithGuests handles GET /tables/with-guests
// @Summary List tables with their guests
// @Tags tables
// @Produce json
// @Success 200 {array} service.TableWithGuests "Tables with seated guests and free seats"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /tables/with-guests [get]
func (h *TableHandler) ListTablesWithGuests(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	tables, err := h.tableService.WithGuests(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tables)
}

// GetTable handles GET /tables/:id
// @Summary Get table by ID
// @Tags tables
// @Produce json
// @Param id path string true "Table ID (UUID)"
// @Success 200 {object} models.Table "Table"
// @Failure 400 {object} ErrorResponse "Invalid table ID"
// @Failure 404 {object} ErrorResponse "Table not found"
// @Security BearerAuth
// @Router /tables/{id} [get]
func (h *TableHandler) GetTable(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "table")
	if !ok {
		return
	}

	table, err := h.tableService.Get(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, table)
}

// CreateTable handles POST /tables
// @Summary Create a table
// @Description Add a table. Names may hold letters, digits and spaces and are unique per organizer, ignoring case. Capacity defaults to 6 (1-20); a missing position is chosen randomly on the floor plan.
// @Tags tables
// @Accept json
// @Produce json
// @Param table body service.CreateTableRequest true "Table data"
// @Success 201 {object} models.Table "Created table"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Organizer role required"
// @Failure 409 {object} ErrorResponse "Duplicate name"
// @Security BearerAuth
// @Router /tables [post]
func (h *TableHandler) CreateTable(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req service.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	table, err := h.tableService.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, table)
}

// UpdateTable handles PUT /tables/:id
// @Summary Update a table
// @Description Partially update a table. Seated guests stay seated across renames.
// @Tags tables
// @Accept json
// @Produce json
// @Param id path string true "Table ID (UUID)"
// @Param table body service.UpdateTableRequest true "Fields to change"
// @Success 200 {object} models.Table "Updated table"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Organizer role required"
// @Failure 404 {object} ErrorResponse "Table not found"
// @Failure 409 {object} ErrorResponse "Duplicate name or stale version"
// @Security BearerAuth
// @Router /tables/{id} [put]
func (h *TableHandler) UpdateTable(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "table")
	if !ok {
		return
	}

	var req service.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	table, err := h.tableService.Update(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, table)
}

// DeleteTable handles DELETE /tables/:id
// @Summary Delete a table
// @Description Delete a table and unseat its guests in one transaction
// @Tags tables
// @Param id path string true "Table ID (UUID)"
// @Success 204 "Table deleted"
// @Failure 400 {object} ErrorResponse "Invalid table ID"
// @Failure 403 {object} ErrorResponse "Organizer role required"
// @Failure 404 {object} ErrorResponse "Table not found"
// @Security BearerAuth
// @Router /tables/{id} [delete]
func (h *TableHandler) DeleteTable(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "table")
	if !ok {
		return
	}

	if err := h.tableService.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
