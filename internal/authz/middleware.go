package authz

import (
	"github.com/clovisdasilvaneto/clockin/internal/shared/apperror"
	"github.com/clovisdasilvaneto/clockin/internal/shared/response"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

// Authorize allows the request when any of the caller's authorities grants
// (obj, act). Authorities are placed in the gin context by the auth
// middleware.
func Authorize(enforcer *casbin.Enforcer, obj, act string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorities := c.GetStringSlice("authorities")
		if len(authorities) == 0 {
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		for _, authority := range authorities {
			ok, err := enforcer.Enforce(authority, obj, act)
			if err == nil && ok {
				c.Next()
				return
			}
		}

		response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
		c.Abort()
	}
}
