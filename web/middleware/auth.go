package middleware

import (
	"strings"

	"github.com/pahanaedu/bill-ui/database/model"
	"github.com/pahanaedu/bill-ui/web/service"
	"github.com/pahanaedu/bill-ui/web/session"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// ResolvePrincipal resolves the caller's identity once per request, from the
// cookie session or from an Authorization bearer token, and stores it in the
// request context. Handlers read it back with GetPrincipal instead of
// touching ambient session state.
func ResolvePrincipal(tokenService *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := session.GetLoginUser(c); user != nil {
			c.Set(principalKey, user)
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			if user, err := tokenService.ValidateToken(token); err == nil {
				c.Set(principalKey, user)
			}
		}
		c.Next()
	}
}

// GetPrincipal returns the resolved principal for this request, or nil.
func GetPrincipal(c *gin.Context) *model.User {
	if obj, exists := c.Get(principalKey); exists {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}
