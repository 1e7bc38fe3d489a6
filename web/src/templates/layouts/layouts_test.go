package layouts_test

import (
	"strings"
	"testing"

	"github.com/Youssef-Elmorali/blood-project-frontend/internal/navigation"
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/rendering"
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/view"
	"github.com/Youssef-Elmorali/blood-project-frontend/web/src/templates/layouts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, node g.Node) string {
	t.Helper()
	b, err := rendering.RenderComponent(node)
	require.NoError(t, err)
	return string(b)
}

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Log In - Qatrah Hayat", layouts.CalculateTitle("Log In"))
	assert.Equal(t, "Qatrah Hayat", layouts.CalculateTitle(""))
}

func TestHeader(t *testing.T) {
	t.Run("marks exactly the current route", func(t *testing.T) {
		out := render(t, layouts.Header("/donate"))
		// Desktop link plus the mobile drawer link.
		assert.Equal(t, 2, strings.Count(out, `aria-current="page"`))
		assert.Contains(t, out, `data-scroll-threshold="20"`)
	})

	t.Run("no match for nested paths", func(t *testing.T) {
		out := render(t, layouts.Header("/donate/centres"))
		assert.NotContains(t, out, `aria-current="page"`)
	})

	t.Run("login button is active on the login page", func(t *testing.T) {
		out := render(t, layouts.Header("/login"))
		assert.Equal(t, 1, strings.Count(out, `aria-current="page"`))
	})

	t.Run("every link is present", func(t *testing.T) {
		out := render(t, layouts.Header("/"))
		for _, l := range navigation.Routes() {
			assert.Contains(t, out, `href="`+l.Href+`"`)
			assert.Contains(t, out, l.Label)
		}
	})
}

func TestMobileNav(t *testing.T) {
	closed := render(t, layouts.MobileNav(navigation.Menu{Path: "/"}))
	assert.Contains(t, closed, `aria-expanded="false"`)
	assert.Contains(t, closed, `data-open="false"`)
	assert.Contains(t, closed, "pointer-events-none")
	assert.Contains(t, closed, "open=true")

	open := render(t, layouts.MobileNav(navigation.Menu{Path: "/", Open: true}))
	assert.Contains(t, open, `aria-expanded="true"`)
	assert.Contains(t, open, `data-open="true"`)
	assert.Contains(t, open, "open=false")
	assert.NotContains(t, open, "pointer-events-none")
}

func TestBase(t *testing.T) {
	out := render(t, layouts.Base(layouts.Page{
		Title: "Donate",
		Path:  "/donate",
		Flash: view.FlashData{Success: []string{"Saved"}, Error: []string{"Oops"}},
	}, g.Text("page body")))

	assert.True(t, strings.HasPrefix(strings.ToLower(out), "<!doctype html>"))
	assert.Contains(t, out, "<title>Donate - Qatrah Hayat</title>")
	assert.Contains(t, out, "htmx.org")
	assert.Contains(t, out, "/static/js/header.js")
	assert.Contains(t, out, "page body")
	assert.Contains(t, out, `id="flash-messages"`)
	assert.Contains(t, out, "Saved")
	assert.Contains(t, out, "Oops")
	assert.Contains(t, out, "<footer")
}

func TestBase_NoFlashes(t *testing.T) {
	out := render(t, layouts.Base(layouts.Page{Path: "/"}))
	assert.NotContains(t, out, `id="flash-messages"`)
	assert.Contains(t, out, "<title>Qatrah Hayat</title>")
}
