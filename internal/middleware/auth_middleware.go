package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/clovisdasilvaneto/clockin/internal/shared/contextutil"
	"github.com/clovisdasilvaneto/clockin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token (or access_token cookie) and
// copies the user claims into the gin context: user_id, login, authorities.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			code := "INVALID_TOKEN"
			message := "Token is invalid"
			if err != nil && strings.Contains(err.Error(), "expired") {
				code = "TOKEN_EXPIRED"
				message = "Token has expired"
			}
			response.Error(c, http.StatusUnauthorized, code, message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		login, ok := claims["login"].(string)
		if !ok || login == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Login not found in token", nil)
			c.Abort()
			return
		}

		authorities := make([]string, 0, 2)
		if raw, ok := claims["authorities"].([]interface{}); ok {
			for _, a := range raw {
				if s, ok := a.(string); ok {
					authorities = append(authorities, s)
				}
			}
		}

		c.Set("user_id", userID)
		c.Set("login", login)
		c.Set("authorities", authorities)

		ctx := contextutil.WithUserLogin(c.Request.Context(), login)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
