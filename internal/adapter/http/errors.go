package http

import (
	"errors"
	"net/http"

	"usermgmt-service/internal/domain/address"
	"usermgmt-service/internal/domain/approval"
	"usermgmt-service/internal/domain/role"
	"usermgmt-service/internal/domain/user"
	"usermgmt-service/internal/domain/validation"
	ucUser "usermgmt-service/internal/usecase/user"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// respondError maps domain and usecase errors to HTTP codes.
func respondError(c echo.Context, err error) error {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: ve.Field, Message: ve.Message}},
		})
	case errors.Is(err, approval.ErrUnknownTier):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "tier", Message: err.Error()}},
		})
	case errors.Is(err, user.ErrNotFound),
		errors.Is(err, role.ErrNotFound),
		errors.Is(err, address.ErrNotFound),
		errors.Is(err, approval.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, user.ErrDuplicateEmail),
		errors.Is(err, user.ErrDuplicatePhone),
		errors.Is(err, role.ErrDuplicate),
		errors.Is(err, gorm.ErrDuplicatedKey):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, ucUser.ErrEmptyImage):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, ucUser.ErrImagesDisabled):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	}

	log.Error().Err(err).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("request failed")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
