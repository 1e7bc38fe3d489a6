package handlers

import (
	"net/http"

	"github.com/Youssef-Elmorali/blood-project-frontend/internal/navigation"
	"github.com/Youssef-Elmorali/blood-project-frontend/web/src/templates/layouts"
	"github.com/labstack/echo/v4"
)

// NavigationHandler serves the header fragments.
type NavigationHandler struct{}

// NewNavigationHandler creates a new NavigationHandler.
func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// MenuGet renders the mobile drawer in the requested state (GET /nav/menu).
func (h *NavigationHandler) MenuGet(c echo.Context) error {
	var req MenuRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid menu request")
	}
	if req.Path == "" {
		req.Path = "/"
	}
	menu := navigation.Menu{}.Navigate(req.Path)
	if req.Open {
		menu = menu.Toggle()
	}
	return c.Render(http.StatusOK, "", layouts.MobileNav(menu))
}
