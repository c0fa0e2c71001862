package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nuitinfo/podium-live/internal/config"
)

// AdminAuth returns a middleware gating admin routes behind the fixed
// credential pair. This mirrors the constant-string check of the admin
// view and is explicitly not a security boundary: there is no lockout,
// no rate limiting, and the defaults live in source.
func AdminAuth(cfg config.AdminConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok ||
			subtle.ConstantTimeCompare([]byte(user), []byte(cfg.Username)) != 1 ||
			subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.Password)) != 1 {
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "admin credentials required",
				},
			})
			return
		}

		c.Next()
	}
}
