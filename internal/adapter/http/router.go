package http

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// max accepted image upload, enforced before any middleware buffers the body
const imageBodyLimit = "5M"

type Routes struct {
	Health    *Handler
	Users     *UserHandler
	Roles     *RoleHandler
	Approvals *ApprovalHandler
}

// Register mounts every route; mw wraps the mutating ones only.
func (r Routes) Register(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	e.GET("/health", r.Health.Health)
	r.registerUsers(e, mw...)
	r.registerRoles(e, mw...)
	r.registerApprovals(e, mw...)
}

func (r Routes) registerUsers(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	e.POST("/users", r.Users.Register, mw...)
	e.GET("/users", r.Users.List)
	e.GET("/users/:id", r.Users.Get)
	e.DELETE("/users/:id", r.Users.Delete, mw...)
	e.POST("/users/:id/roles", r.Users.AssignRoles, mw...)
	e.POST("/users/:id/addresses", r.Users.AddAddress, mw...)
	e.PUT("/users/:id/image", r.Users.UploadImage, append([]echo.MiddlewareFunc{echomw.BodyLimit(imageBodyLimit)}, mw...)...)
}

func (r Routes) registerRoles(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	e.POST("/roles", r.Roles.Create, mw...)
	e.GET("/roles", r.Roles.List)
}

func (r Routes) registerApprovals(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	e.POST("/approvals", r.Approvals.Create, mw...)
	e.GET("/approvals", r.Approvals.List)
	e.GET("/approvals/:id", r.Approvals.Get)
	e.POST("/approvals/:id/users", r.Approvals.AddUsers, mw...)
	e.DELETE("/approvals/:id/users/:user_id", r.Approvals.RemoveUser, mw...)
	e.PUT("/approvals/:id/review", r.Approvals.Review, mw...)
	e.GET("/approvals/:id/approved-users", r.Approvals.ApprovedUsers)
	e.GET("/approvals/:id/pending-users", r.Approvals.PendingUsers)
}
