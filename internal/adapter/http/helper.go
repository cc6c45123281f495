package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func notFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{Error: msg})
}

func conflict(c echo.Context, msg string) error {
	return c.JSON(http.StatusConflict, ErrorResponse{Error: msg})
}

// internalError hides the failure detail from clients in production;
// the full error still goes to the echo logger.
func internalError(c echo.Context, err error, production bool) error {
	c.Logger().Error(err)
	if production {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
