package handlers

import (
	"net/http"

	"github.com/Youssef-Elmorali/blood-project-frontend/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// PageHandler serves the static content pages and the education page.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Info returns a handler rendering p.
func (h *PageHandler) Info(p pages.InfoPage) echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderPage(c, http.StatusOK, p.Title, pages.Info(p))
	}
}

// EducationGet renders the education page with its loading skeleton. The
// skeleton requests the real content once it is on screen.
func (h *PageHandler) EducationGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "Learn About Donation", pages.EducationSkeleton())
}

// EducationContentGet returns the education content fragment. A direct
// navigation to the URL gets the full page instead.
func (h *PageHandler) EducationContentGet(c echo.Context) error {
	if !isHTMX(c) {
		return renderPage(c, http.StatusOK, "Learn About Donation", pages.EducationContent())
	}
	return c.Render(http.StatusOK, "", pages.EducationContent())
}
