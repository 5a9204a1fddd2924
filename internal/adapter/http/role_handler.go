package http

import (
	"net/http"

	ucRole "usermgmt-service/internal/usecase/role"

	"github.com/labstack/echo/v4"
)

type RoleHandler struct{ uc *ucRole.Usecase }

func NewRoleHandler(uc *ucRole.Usecase) *RoleHandler { return &RoleHandler{uc: uc} }

type createRoleReq struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	v, err := h.uc.Create(c.Request().Context(), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *RoleHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
