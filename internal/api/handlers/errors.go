package handlers

import (
	"errors"
	"net/http"

	"seating-planner-backend/internal/auth"
	apperrors "seating-planner-backend/internal/errors"
	"seating-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty" example:"first_name"`
}

// respondError writes err with the status its type maps to. Store and
// unexpected failures keep their cause in details.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	switch status {
	case http.StatusServiceUnavailable:
		c.JSON(status, ErrorResponse{Error: "Store unavailable", Details: err.Error()})
	case http.StatusInternalServerError:
		c.JSON(status, ErrorResponse{Error: "Internal server error", Details: err.Error()})
	default:
		resp := ErrorResponse{Error: err.Error()}
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			resp.Details = verr.Field
		}
		c.JSON(status, resp)
	}
}

// requireActor returns the signed-in caller or answers 401
func requireActor(c *gin.Context) (service.Actor, bool) {
	actor, ok := auth.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return service.Actor{}, false
	}
	return actor, true
}

// pathID parses a UUID path parameter or answers 400
func pathID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + entity + " ID"})
		return uuid.Nil, false
	}
	return id, true
}
