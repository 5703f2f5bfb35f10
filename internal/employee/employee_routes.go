package employee

import (
	"github.com/clovisdasilvaneto/clockin/internal/authz"
	"github.com/clovisdasilvaneto/clockin/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", authz.Authorize(enforcer, "employee", "read"), h.GetAll)
		employees.GET("/:id", authz.Authorize(enforcer, "employee", "read"), h.Get)
		employees.POST("", authz.Authorize(enforcer, "employee", "write"), h.Create)
		employees.PUT("", authz.Authorize(enforcer, "employee", "write"), h.Update)
		employees.DELETE("/:id", authz.Authorize(enforcer, "employee", "delete"), h.Delete)
	}
}
