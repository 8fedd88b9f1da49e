// Package server provides a generic HTTP API server built on gin, following
// the Config -> Complete -> New construction convention used across the
// project.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/hibiki-ai/docagent/internal/pkg/logger"
)

// Config holds the options for a GenericAPIServer.
type Config struct {
	Mode            string
	BindAddress     string
	BindPort        int
	Healthz         bool
	EnableProfiling bool
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Mode:        gin.ReleaseMode,
		BindAddress: "0.0.0.0",
		BindPort:    8000,
		Healthz:     true,
	}
}

// CompletedConfig is a Config whose defaults have been filled in.
type CompletedConfig struct {
	*Config
}

// Complete fills in any fields not set that are required to have valid data.
func (c *Config) Complete() CompletedConfig {
	if c.Mode == "" {
		c.Mode = gin.ReleaseMode
	}
	if c.BindAddress == "" {
		c.BindAddress = "0.0.0.0"
	}
	if c.BindPort == 0 {
		c.BindPort = 8000
	}
	return CompletedConfig{c}
}

// New returns a GenericAPIServer instance from the completed configuration.
func (c CompletedConfig) New() (*GenericAPIServer, error) {
	gin.SetMode(c.Mode)

	s := &GenericAPIServer{
		Engine:          gin.New(),
		address:         fmt.Sprintf("%s:%d", c.BindAddress, c.BindPort),
		healthz:         c.Healthz,
		enableProfiling: c.EnableProfiling,
	}

	s.Use(gin.Recovery())
	s.installAPIs()

	return s, nil
}

// GenericAPIServer wraps a gin engine with lifecycle management.
type GenericAPIServer struct {
	*gin.Engine

	address         string
	healthz         bool
	enableProfiling bool

	insecureServer *http.Server
	closeHooks     []func()
}

func (s *GenericAPIServer) installAPIs() {
	if s.healthz {
		s.GET("/healthz", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	if s.enableProfiling {
		pprof.Register(s.Engine)
	}
}

// AddCloseHook registers a function to run during shutdown, after the HTTP
// listener has stopped accepting requests.
func (s *GenericAPIServer) AddCloseHook(hook func()) {
	s.closeHooks = append(s.closeHooks, hook)
}

// Run spins up the HTTP server and blocks until SIGINT/SIGTERM, then drains
// in-flight requests and runs the registered close hooks.
func (s *GenericAPIServer) Run() error {
	s.insecureServer = &http.Server{
		Addr:    s.address,
		Handler: s.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[Server] start to listening on %s", s.address)
		if err := s.insecureServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		s.runCloseHooks()
		return err
	case sig := <-sigCh:
		logger.Info("[Server] received signal %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.insecureServer.Shutdown(ctx); err != nil {
		logger.Warn("[Server] graceful shutdown failed: %v", err)
	}
	s.runCloseHooks()

	return nil
}

// Close force-closes the listener without draining.
func (s *GenericAPIServer) Close() {
	if s.insecureServer != nil {
		_ = s.insecureServer.Close()
	}
	s.runCloseHooks()
}

func (s *GenericAPIServer) runCloseHooks() {
	for _, hook := range s.closeHooks {
		hook()
	}
	s.closeHooks = nil
}
