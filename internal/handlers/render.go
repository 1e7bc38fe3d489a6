package handlers

import (
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/view"
	"github.com/Youssef-Elmorali/blood-project-frontend/web/src/templates/layouts"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// isHTMX reports whether the request was issued by htmx rather than a full
// browser navigation.
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// renderPage wraps content in the base layout and renders it with status. The
// flash messages queued for this session are consumed.
func renderPage(c echo.Context, status int, title string, content g.Node) error {
	page := layouts.Page{
		Title: title,
		Path:  c.Request().URL.Path,
		Flash: view.GetFlashData(c),
	}
	return c.Render(status, "", layouts.Base(page, content))
}
