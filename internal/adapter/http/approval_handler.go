package http

import (
	"net/http"

	"usermgmt-service/internal/domain/status"
	ucApproval "usermgmt-service/internal/usecase/approval"

	"github.com/labstack/echo/v4"
)

type ApprovalHandler struct{ uc *ucApproval.Usecase }

func NewApprovalHandler(uc *ucApproval.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

// Status fields take the integer code or the name ("APPROVED").
type createApprovalReq struct {
	ApprovalType    int            `json:"approval_type"     validate:"required,gt=0"`
	Status          *status.Status `json:"status"            validate:"omitempty,statuscode"`
	StatusByAdmin   *status.Status `json:"status_by_admin"   validate:"omitempty,statuscode"`
	StatusBySuAdmin *status.Status `json:"status_by_SuAdmin" validate:"omitempty,statuscode"`
	UserIDs         []uint64       `json:"user_ids"          validate:"omitempty,dive,gt=0"`
}

type approvalUsersReq struct {
	UserIDs []uint64 `json:"user_ids" validate:"required,min=1,dive,gt=0"`
}

type reviewReq struct {
	Tier   string        `json:"tier"   validate:"required,tier"`
	Status status.Status `json:"status" validate:"required,statuscode"`
}

func (h *ApprovalHandler) Create(c echo.Context) error {
	var req createApprovalReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	in := ucApproval.CreateInput{
		ApprovalType:    req.ApprovalType,
		StatusByAdmin:   req.StatusByAdmin,
		StatusBySuAdmin: req.StatusBySuAdmin,
		UserIDs:         req.UserIDs,
	}
	if req.Status != nil {
		in.Status = *req.Status
	}
	v, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *ApprovalHandler) List(c echo.Context) error {
	st, ok, err := queryStatus(c)
	if !ok {
		return err
	}
	list, err := h.uc.List(c.Request().Context(), st)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ApprovalHandler) Get(c echo.Context) error {
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

func (h *ApprovalHandler) AddUsers(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	var req approvalUsersReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	v, err := h.uc.AddUsers(c.Request().Context(), id, req.UserIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *ApprovalHandler) RemoveUser(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	userID, ok, err := pathID(c, "user_id")
	if !ok {
		return err
	}
	v, err := h.uc.RemoveUser(c.Request().Context(), id, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *ApprovalHandler) Review(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	var req reviewReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	v, err := h.uc.Review(c.Request().Context(), id, ucApproval.ReviewInput{Tier: req.Tier, Status: req.Status})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// ApprovedUsers answers 200 with either the user list or {"message": ...}.
func (h *ApprovalHandler) ApprovedUsers(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	m, err := h.uc.ApprovedUsers(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *ApprovalHandler) PendingUsers(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	m, err := h.uc.PendingUsers(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}
