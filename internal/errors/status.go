package errors

import (
	"errors"
	"net/http"
)

// HTTPStatus maps an application error to the status code the API answers with
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsDuplicateName(err), IsCapacityExceeded(err), IsConflict(err), errors.Is(err, ErrEmailTaken):
		return http.StatusConflict
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsNotAuthorized(err):
		return http.StatusForbidden
	case IsAuthentication(err):
		return http.StatusUnauthorized
	case IsStore(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
