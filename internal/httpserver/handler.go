package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	linkerHTTP "notion-progress-linker/internal/linker/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.linkerHandler != nil {
		api := srv.gin.Group("/api/v1")
		linkerHTTP.RegisterRoutes(api, srv.linkerHandler, srv.mw)
		srv.l.Infof(ctx, "linker routes registered under /api/v1")
	} else {
		srv.l.Infof(ctx, "linker handler not configured, skipping API routes")
	}

	if srv.triggerHandler != nil {
		srv.gin.POST("/webhook/run", srv.triggerHandler.HandleRunWebhook)
		srv.l.Infof(ctx, "trigger webhook route registered at POST /webhook/run")
	} else {
		srv.l.Infof(ctx, "trigger handler not configured, skipping webhook route")
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails. Shutdown drains in-flight requests for up to 10 seconds.
func (srv *HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
