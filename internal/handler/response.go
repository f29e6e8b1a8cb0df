package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"taskman/internal/errors"
)

// Envelope is the uniform success wrapper returned by every handler.
type Envelope struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c echo.Context, status int, data interface{}, message string) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func respondList(c echo.Context, data interface{}, count int) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Count: &count, Data: data})
}

// respondError renders the error envelope. Unexpected faults are logged with
// the request id and reported generically.
func respondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Errorf("request %s: unexpected fault: %v",
			c.Response().Header().Get(echo.HeaderXRequestID), err)
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// parseID reads the :id path parameter. A non-numeric id cannot match any
// record, so callers treat a false return as not found.
func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
