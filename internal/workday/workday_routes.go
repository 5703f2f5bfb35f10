package workday

import (
	"github.com/clovisdasilvaneto/clockin/internal/authz"
	"github.com/clovisdasilvaneto/clockin/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	workdays := r.Group("/workdays")
	workdays.Use(middleware.AuthMiddleware())
	{
		workdays.GET("", authz.Authorize(enforcer, "workday", "read"), h.GetAll)
		workdays.GET("/employee/:id", authz.Authorize(enforcer, "workday", "read"), h.GetForEmployee)
	}
}
