package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	linkerHTTP "notion-progress-linker/internal/linker/delivery/http"
	"notion-progress-linker/internal/middleware"
	"notion-progress-linker/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Linker domain
	linkerHandler linkerHTTP.Handler

	// External trigger webhook
	triggerHandler interface {
		HandleRunWebhook(c *gin.Context)
	}
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	APIKey      string

	LinkerHandler linkerHTTP.Handler

	TriggerHandler interface {
		HandleRunWebhook(c *gin.Context)
	}
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             middleware.New(logger, cfg.APIKey),
		linkerHandler:  cfg.LinkerHandler,
		triggerHandler: cfg.TriggerHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
