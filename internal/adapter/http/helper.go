package http

import (
	"net/http"
	"strconv"

	"usermgmt-service/internal/domain/status"

	"github.com/labstack/echo/v4"
)

// ---- helpers ----
// Each returns ok=false once it has already written a 4xx response.

func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

func pathID(c echo.Context, name string) (uint64, bool, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + " path param"})
	}
	return id, true, nil
}

func queryInt(c echo.Context, name string, def int) (int, bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, true, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + " query param"})
	}
	return n, true, nil
}

func queryStatus(c echo.Context) (*status.Status, bool, error) {
	raw := c.QueryParam("status")
	if raw == "" {
		return nil, true, nil
	}
	st, err := status.Parse(raw)
	if err != nil {
		if n, convErr := strconv.Atoi(raw); convErr == nil && status.Status(n).Valid() {
			return status.Ptr(status.Status(n)), true, nil
		}
		return nil, false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status query param"})
	}
	return &st, true, nil
}
