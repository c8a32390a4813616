// Package server exposes the telegram webhook over HTTP. The webhook contract
// is strict: auth and configuration failures are reported with real status
// codes, but once an update is accepted the response is always 200 so the
// provider never retry-storms on handler faults.
package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	tbapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/dispatcher.go -pkg mocks -skip-ensure -fmt goimports . Dispatcher

// Server represents HTTP server instance
type Server struct {
	config     ConfigProvider
	dispatcher Dispatcher
	version    string
	debug      bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Dispatcher handles a decoded telegram update. A nil dispatcher means the
// bot token is not configured and the webhook reports 500.
type Dispatcher interface {
	Handle(ctx context.Context, upd tbapi.Update) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	WebhookSecret() string
}

// New initializes a new server instance
func New(cfg ConfigProvider, dispatcher Dispatcher, version string, debug bool) *Server {
	s := &Server{
		config:     cfg,
		dispatcher: dispatcher,
		version:    version,
		debug:      debug,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("mailgram", "mailgram", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("POST /webhook", s.webhookHandler)

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
	})
}

// webhookHandler accepts a telegram update delivery. Status codes follow the
// webhook contract: 401 on secret mismatch, 500 when no bot token is
// configured, 200 with {"ok":true} for everything else including payloads the
// bot doesn't understand and handler failures.
func (s *Server) webhookHandler(w http.ResponseWriter, r *http.Request) {
	if secret := s.config.WebhookSecret(); secret != "" {
		got := r.URL.Query().Get("secret")
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			renderError(w, r, fmt.Errorf("unauthorized"), http.StatusUnauthorized)
			return
		}
	}

	if s.dispatcher == nil {
		renderError(w, r, fmt.Errorf("bot token not configured"), http.StatusInternalServerError)
		return
	}

	var upd tbapi.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		// a body we can't decode is not worth a provider redelivery, ack it
		log.Printf("[WARN] ignoring undecodable update: %v", err)
		renderJSON(w, r, http.StatusOK, rest.JSON{"ok": true})
		return
	}

	if err := s.dispatcher.Handle(r.Context(), upd); err != nil {
		log.Printf("[ERROR] update handling failed: %v", err)
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"ok": true})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := rest.JSON{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, rest.JSON{"error": errMsg})
}
