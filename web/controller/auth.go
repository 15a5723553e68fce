// Package controller provides the HTTP handlers of the bill-ui panel.
package controller

import (
	"errors"
	"net/http"

	"github.com/pahanaedu/bill-ui/logger"
	"github.com/pahanaedu/bill-ui/web/service"
	"github.com/pahanaedu/bill-ui/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm is the credentials payload for login and token requests.
type LoginForm struct {
	MobileNumber string `json:"mobileNumber" form:"mobileNumber"`
	Password     string `json:"password" form:"password"`
}

// RegisterForm is the registration payload. Role is optional and defaults to USER.
type RegisterForm struct {
	MobileNumber string `json:"mobileNumber" form:"mobileNumber"`
	Password     string `json:"password" form:"password"`
	Role         string `json:"role" form:"role"`
}

// AuthController handles registration, login, logout and token issuance.
type AuthController struct {
	userService  service.UserService
	tokenService *service.TokenService
}

// NewAuthController creates an AuthController and registers its routes.
func NewAuthController(g *gin.RouterGroup, tokenService *service.TokenService) *AuthController {
	a := &AuthController{tokenService: tokenService}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/register", a.register)
	g.POST("/login", a.login)
	g.POST("/token", a.token)
	g.GET("/logout", a.logout)
}

// register creates a new account. Duplicate mobile numbers get 409.
func (a *AuthController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid registration data")
		return
	}

	_, err := a.userService.Register(form.MobileNumber, form.Password, form.Role)
	if errors.Is(err, service.ErrUserExists) {
		pureJsonMsg(c, http.StatusConflict, false, "User with this mobile number already exists.")
		return
	} else if err != nil {
		logger.Warning("register failed:", err)
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid registration data")
		return
	}

	logger.Infof("new account registered: %s", form.MobileNumber)
	pureJsonMsg(c, http.StatusCreated, true, "User registered successfully")
}

// login verifies credentials and establishes the cookie session.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid login data")
		return
	}

	user := a.userService.CheckUser(form.MobileNumber, form.Password)
	if user == nil {
		logger.Warningf("failed login for %q, IP: %q", form.MobileNumber, getRemoteIp(c))
		pureJsonMsg(c, http.StatusUnauthorized, false, "Invalid credentials")
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, "Login failed")
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", user.MobileNumber, getRemoteIp(c))
	pureJsonMsg(c, http.StatusOK, true, "Login successful! Role: "+user.Role)
}

// token verifies credentials and returns a bearer token for API clients.
func (a *AuthController) token(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid login data")
		return
	}

	user := a.userService.CheckUser(form.MobileNumber, form.Password)
	if user == nil {
		logger.Warningf("failed token request for %q, IP: %q", form.MobileNumber, getRemoteIp(c))
		pureJsonMsg(c, http.StatusUnauthorized, false, "Invalid credentials")
		return
	}

	token, err := a.tokenService.IssueToken(user)
	if err != nil {
		logger.Error("token issuance failed:", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, "Token issuance failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// logout clears the session.
func (a *AuthController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out", user.MobileNumber)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	pureJsonMsg(c, http.StatusOK, true, "Logged out")
}
