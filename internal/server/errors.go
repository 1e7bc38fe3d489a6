package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/Youssef-Elmorali/blood-project-frontend/internal/middleware"
	"github.com/Youssef-Elmorali/blood-project-frontend/web/src/templates/layouts"
	"github.com/Youssef-Elmorali/blood-project-frontend/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs the error handler. Errors that are not
// *echo.HTTPError are logged with a stack trace and reported as a 500.
// Browsers get the error page inside the site layout; htmx and non-HTML
// clients get the message as plain text.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		} else {
			middleware.FromContext(c.Request().Context()).Error("Unhandled error",
				"error", err,
				"method", c.Request().Method,
				"path", c.Path(),
				"stack_trace", string(debug.Stack()),
			)
		}

		var werr error
		switch {
		case c.Request().Method == http.MethodHead:
			werr = c.NoContent(code)
		case c.Request().Header.Get("HX-Request") == "true" || !wantsHTML(c.Request()):
			werr = c.String(code, msg)
		default:
			page := layouts.Page{Title: http.StatusText(code), Path: c.Request().URL.Path}
			werr = c.Render(code, "", layouts.Base(page, pages.ErrorPage(code, msg)))
		}
		if werr != nil {
			middleware.FromContext(c.Request().Context()).Error("Failed to write error response", "error", werr)
		}
	}
}

// wantsHTML reports whether the client accepts an HTML document. A request
// without an Accept header is treated as a browser.
func wantsHTML(r *http.Request) bool {
	accept := r.Header.Get(echo.HeaderAccept)
	return accept == "" || strings.Contains(accept, echo.MIMETextHTML) || strings.Contains(accept, "*/*")
}
