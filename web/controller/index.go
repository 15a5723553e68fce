package controller

import (
	"net/http"

	"github.com/pahanaedu/bill-ui/config"
	"github.com/pahanaedu/bill-ui/web/middleware"
	"github.com/pahanaedu/bill-ui/web/session"

	"github.com/gin-gonic/gin"
)

// IndexController serves the root and the role-gated dashboard pages. The
// real UI is static files served by the fronting web server; these endpoints
// exist so the route policy has something to gate and health checks have
// something to hit.
type IndexController struct{}

// NewIndexController creates an IndexController and registers its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/login", a.loginPage)
	g.GET("/register", a.registerPage)
	g.GET("/dashboard", a.dashboard)
	g.GET("/admin", a.admin)
}

func (a *IndexController) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    config.GetName(),
		"version": config.GetVersion(),
	})
}

func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "login"})
}

func (a *IndexController) registerPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "register"})
}

func (a *IndexController) dashboard(c *gin.Context) {
	user := middleware.GetPrincipal(c)
	c.JSON(http.StatusOK, gin.H{
		"page":         "dashboard",
		"mobileNumber": user.MobileNumber,
		"role":         user.Role,
	})
}

func (a *IndexController) admin(c *gin.Context) {
	user := middleware.GetPrincipal(c)
	c.JSON(http.StatusOK, gin.H{
		"page":         "admin",
		"mobileNumber": user.MobileNumber,
		"role":         user.Role,
	})
}
