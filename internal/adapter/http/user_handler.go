package http

import (
	"errors"
	"io"
	"net/http"

	ucUser "usermgmt-service/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{ uc *ucUser.Usecase }

func NewUserHandler(uc *ucUser.Usecase) *UserHandler { return &UserHandler{uc: uc} }

// email, phone and password formats are checked by the domain so the
// messages match the stored-record rules
type registerUserReq struct {
	Name     string `json:"name"     validate:"max=100"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type assignRolesReq struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,required"`
}

type addAddressReq struct {
	Line1    string  `json:"line1"    validate:"required,max=100"`
	Line2    *string `json:"line2"    validate:"omitempty,max=100"`
	District *string `json:"district" validate:"omitempty,max=100"`
	State    *string `json:"state"    validate:"omitempty,max=100"`
	PinCode  *string `json:"pin_code" validate:"omitempty,max=100"`
	Country  *string `json:"country"  validate:"omitempty,max=100"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	v, err := h.uc.Register(c.Request().Context(), ucUser.RegisterInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *UserHandler) List(c echo.Context) error {
	limit, ok, err := queryInt(c, "limit", 20)
	if !ok {
		return err
	}
	offset, ok, err := queryInt(c, "offset", 0)
	if !ok {
		return err
	}
	list, err := h.uc.List(c.Request().Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *UserHandler) Get(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	v, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) AssignRoles(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	var req assignRolesReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	v, err := h.uc.AssignRoles(c.Request().Context(), id, req.Roles)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *UserHandler) AddAddress(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	var req addAddressReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	v, err := h.uc.AddAddress(c.Request().Context(), id, ucUser.AddressInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

// UploadImage takes the raw image as the request body.
func (h *UserHandler) UploadImage(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	req := c.Request()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge {
			return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "image too large"})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	ct := req.Header.Get(echo.HeaderContentType)
	if ct == "" {
		ct = http.DetectContentType(body)
	}
	v, err := h.uc.UploadImage(req.Context(), id, ct, body)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}
