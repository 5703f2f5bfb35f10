package account

import (
	"github.com/clovisdasilvaneto/clockin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	social := r.Group("/social")
	{
		// sign-up is the entry point of a federated login, so it is
		// deliberately unauthenticated.
		social.POST("/signup", h.SignUp)
		social.DELETE("/connections", middleware.AuthMiddleware(), h.DeleteConnections)
	}
}
