package middleware

import (
	"net/http"
	"strings"

	"github.com/pahanaedu/bill-ui/database/model"
	"github.com/pahanaedu/bill-ui/web/entity"

	"github.com/gin-gonic/gin"
)

// Access is the requirement a route rule places on the caller.
type Access int

const (
	// Public routes need no principal.
	Public Access = iota
	// Authenticated routes need a principal of any role.
	Authenticated
	// AdminOnly routes need a principal with the ADMIN role.
	AdminOnly
)

// Rule maps a method and path prefix to an access requirement. An empty
// method matches every method.
type Rule struct {
	Method string
	Prefix string
	Access Access
}

// Policy is an ordered route-to-access table. Evaluation is a plain prefix
// scan, first matching rule wins; unmatched paths fall to the fallback.
type Policy struct {
	rules    []Rule
	fallback Access
}

func NewPolicy(rules []Rule, fallback Access) *Policy {
	return &Policy{rules: rules, fallback: fallback}
}

// DefaultPolicy is the route table of the billing panel.
//
// Rule order matters: customer creation and the read-by-account route are
// carved out before the broader /api/customers admin rules.
func DefaultPolicy() *Policy {
	return NewPolicy([]Rule{
		{Method: "", Prefix: "/api/auth/", Access: Public},
		{Method: http.MethodPost, Prefix: "/api/customers", Access: Public},
		{Method: http.MethodGet, Prefix: "/api/customers/account/", Access: Authenticated},
		{Method: "", Prefix: "/api/customers", Access: AdminOnly},
		{Method: http.MethodGet, Prefix: "/admin", Access: AdminOnly},
		{Method: http.MethodGet, Prefix: "/dashboard", Access: Authenticated},
		{Method: http.MethodGet, Prefix: "/login", Access: Public},
		{Method: http.MethodGet, Prefix: "/register", Access: Public},
		{Method: http.MethodGet, Prefix: "/", Access: Public},
	}, Authenticated)
}

// Evaluate returns the access requirement for a request line.
func (p *Policy) Evaluate(method, path string) Access {
	for _, rule := range p.rules {
		if rule.Method != "" && rule.Method != method {
			continue
		}
		if rule.Prefix == "/" {
			if path == "/" {
				return rule.Access
			}
			continue
		}
		// Match whole path segments only, so /api/customersfoo never
		// falls under /api/customers.
		prefix := strings.TrimSuffix(rule.Prefix, "/")
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return rule.Access
		}
	}
	return p.fallback
}

// Enforce applies the policy to every request. The principal must already be
// resolved by ResolvePrincipal.
func Enforce(p *Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		access := p.Evaluate(c.Request.Method, c.Request.URL.Path)
		if access == Public {
			c.Next()
			return
		}

		user := GetPrincipal(c)
		if user == nil {
			abortJSON(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if access == AdminOnly && user.Role != model.RoleAdmin {
			abortJSON(c, http.StatusForbidden, "Insufficient role")
			return
		}
		c.Next()
	}
}

func abortJSON(c *gin.Context, statusCode int, msg string) {
	c.AbortWithStatusJSON(statusCode, entity.Msg{
		Success: false,
		Msg:     msg,
	})
}
