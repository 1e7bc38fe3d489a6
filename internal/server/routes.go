package server

import (
	"net/http"

	"github.com/Youssef-Elmorali/blood-project-frontend/internal/middleware"
	"github.com/Youssef-Elmorali/blood-project-frontend/web/src/templates/layouts"
	"github.com/Youssef-Elmorali/blood-project-frontend/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// validateRateFactor scales the login limit for the validation endpoint, which
// is hit on every debounced keystroke.
const validateRateFactor = 10

// Route describes one registered endpoint.
type Route struct {
	Method string
	Path   string
}

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	loginLimiter := middleware.RateLimiter(s.Cfg.GetLoginRateLimit())
	validateLimiter := middleware.RateLimiter(s.Cfg.GetLoginRateLimit() * validateRateFactor)

	for _, p := range pages.InfoPages {
		s.E.GET(p.Path, s.pageHandler.Info(p))
	}

	s.E.GET("/education", s.pageHandler.EducationGet)
	s.E.GET(pages.EducationContentURL, s.pageHandler.EducationContentGet)

	s.E.GET(pages.LoginURL, s.loginHandler.LoginGet)
	s.E.POST(pages.LoginURL, s.loginHandler.LoginPost, loginLimiter)
	s.E.POST(pages.LoginValidateURL, s.loginHandler.LoginValidate, validateLimiter)

	s.E.GET(layouts.MenuURL, s.navHandler.MenuGet)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}

// Routes lists the application routes in registration order, without the
// static file routes.
func (s *Server) Routes() []Route {
	var out []Route
	for _, r := range s.E.Routes() {
		if r.Path == "/static/*" || r.Path == "/static" {
			continue
		}
		out = append(out, Route{Method: r.Method, Path: r.Path})
	}
	return out
}
