package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Youssef-Elmorali/blood-project-frontend/internal/audit"
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/config"
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/handlers"
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/login"
	appmiddleware "github.com/Youssef-Elmorali/blood-project-frontend/internal/middleware"
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/pubsub"
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/rendering"
	"github.com/Youssef-Elmorali/blood-project-frontend/web"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider
	Bus *pubsub.WatermillBridge

	loginHandler *handlers.LoginHandler
	pageHandler  *handlers.PageHandler
	navHandler   *handlers.NavigationHandler

	stopAudit context.CancelFunc
}

// Dependencies are the collaborators a Server can be built with. Nil fields
// get their production defaults.
type Dependencies struct {
	Config config.Provider
	// Authenticator receives login attempts. Defaults to the simulated
	// provider with the configured delay.
	Authenticator login.Authenticator
	Bus           *pubsub.WatermillBridge
}

// New creates a new Server instance.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, fmt.Errorf("server: config is required")
	}
	cfg := deps.Config

	bus := deps.Bus
	if bus == nil {
		bus = pubsub.NewWatermillBridge()
	}

	auth := deps.Authenticator
	if auth == nil {
		auth = login.NewSimulatedAuthenticator(cfg.GetAuthDelay())
	}

	auditCtx, stopAudit := context.WithCancel(context.Background())
	if err := audit.Subscribe(auditCtx, bus, slog.Default()); err != nil {
		stopAudit()
		return nil, fmt.Errorf("subscribe audit log: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = rendering.New()
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   !cfg.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	// Serve the embedded static assets.
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{
		E:            e,
		Cfg:          cfg,
		Bus:          bus,
		loginHandler: handlers.NewLoginHandler(audit.NewAuthenticator(auth, bus)),
		pageHandler:  handlers.NewPageHandler(),
		navHandler:   handlers.NewNavigationHandler(),
		stopAudit:    stopAudit,
	}, nil
}

// Close stops the audit subscriber and the event bus.
func (s *Server) Close() error {
	s.stopAudit()
	return s.Bus.Close()
}
