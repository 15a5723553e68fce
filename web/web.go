// Package web provides the web server of the bill-ui panel: routing,
// session handling, the route policy, and background job scheduling.
package web

import (
	"context"
	"io"
	"net"
	"net/http"

	"github.com/pahanaedu/bill-ui/config"
	"github.com/pahanaedu/bill-ui/logger"
	"github.com/pahanaedu/bill-ui/util/common"
	"github.com/pahanaedu/bill-ui/util/random"
	"github.com/pahanaedu/bill-ui/web/controller"
	"github.com/pahanaedu/bill-ui/web/job"
	"github.com/pahanaedu/bill-ui/web/middleware"
	"github.com/pahanaedu/bill-ui/web/service"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// Server is the bill-ui web server.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	index     *controller.IndexController
	auth      *controller.AuthController
	customers *controller.CustomerController

	tokenService *service.TokenService

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes Gin, registers middleware and controllers, and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	sessionSecret := config.GetSessionSecret()
	if sessionSecret == "" {
		sessionSecret = random.Seq(32)
		logger.Warning("BILLUI_SESSION_SECRET not set, sessions will not survive a restart")
	}
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
	})
	engine.Use(sessions.Sessions(config.GetName(), store))

	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	tokenSecret := config.GetTokenSecret()
	if tokenSecret == "" {
		tokenSecret = random.Seq(32)
		logger.Warning("BILLUI_TOKEN_SECRET not set, tokens will not survive a restart")
	}
	s.tokenService = service.NewTokenService([]byte(tokenSecret))

	engine.Use(middleware.ResolvePrincipal(s.tokenService))
	engine.Use(middleware.Enforce(middleware.DefaultPolicy()))

	g := engine.Group("/")
	s.index = controller.NewIndexController(g)
	s.auth = controller.NewAuthController(engine.Group("/api/auth"), s.tokenService)
	s.customers = controller.NewCustomerController(engine.Group("/api/customers"))

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules the background jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@every 1h", job.NewCheckpointJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), config.GetPort())
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and its cron jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
