package clockin

import (
	"github.com/clovisdasilvaneto/clockin/internal/authz"
	"github.com/clovisdasilvaneto/clockin/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer, rdb *redis.Client) {
	clockins := r.Group("/clockins")
	clockins.Use(middleware.AuthMiddleware())
	{
		clockins.GET("", authz.Authorize(enforcer, "clockin", "read"), h.GetAll)
		clockins.GET("/:id", authz.Authorize(enforcer, "clockin", "read"), h.Get)
		clockins.POST("", authz.Authorize(enforcer, "clockin", "write"), middleware.Idempotency(rdb), h.Create)
		clockins.PUT("", authz.Authorize(enforcer, "clockin", "write"), h.Update)
		clockins.DELETE("/:id", authz.Authorize(enforcer, "clockin", "delete"), h.Delete)
	}

	search := r.Group("/_search/clockins")
	search.Use(middleware.AuthMiddleware())
	{
		search.GET("", authz.Authorize(enforcer, "clockin", "read"), h.Search)
	}
}
