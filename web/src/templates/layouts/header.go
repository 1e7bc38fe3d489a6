package layouts

import (
	"net/url"
	"strconv"

	"github.com/Youssef-Elmorali/blood-project-frontend/internal/navigation"
	"github.com/Youssef-Elmorali/blood-project-frontend/web/src/templates/partials"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// Header styles. header.js swaps between the top and scrolled sets once the
// page passes navigation.ScrollThreshold.
const (
	headerBaseClass     = "fixed top-0 left-0 w-full z-50 transition-all duration-300 ease-in-out backdrop-blur-md"
	headerTopClass      = "bg-white/80 py-4"
	headerScrolledClass = "bg-white/95 shadow-lg py-2"
)

// MenuURL is the endpoint serving the mobile drawer fragment.
const MenuURL = "/nav/menu"

// Header renders the fixed site header for the page at path.
func Header(path string) g.Node {
	return h.Header(
		h.ID("site-header"),
		h.Class(headerBaseClass+" "+headerTopClass),
		h.Data("scroll-threshold", strconv.Itoa(navigation.ScrollThreshold)),
		h.Data("top-class", headerTopClass),
		h.Data("scrolled-class", headerScrolledClass),
		h.Div(
			h.Class("container mx-auto px-4 md:px-6 flex items-center justify-between"),
			logo(),
			h.Nav(
				h.Class("hidden md:flex items-center gap-6"),
				h.Aria("label", "Main"),
				g.Map(navigation.Links, func(l navigation.Link) g.Node { return desktopLink(l, path) }),
			),
			h.Div(
				h.Class("flex items-center gap-4 z-50"),
				loginButton(path),
				MobileNav(navigation.Menu{Path: path}),
			),
		),
	)
}

func logo() g.Node {
	return h.A(
		h.Href("/"),
		h.Class("flex items-center gap-2 z-50"),
		h.Div(
			h.Class("w-8 h-8 bg-primary rounded-full flex items-center justify-center"),
			h.Div(h.Class("w-2 h-2 bg-white rounded-full")),
		),
		h.Span(
			h.Class("text-lg font-bold text-primary leading-tight"),
			g.Text("Qatrah"),
			h.Span(h.Class("block text-sm"), g.Text("Hayat")),
		),
	)
}

func desktopLink(l navigation.Link, path string) g.Node {
	active := navigation.IsActive(path, l.Href)
	return h.A(
		h.Href(l.Href),
		c.Classes{
			"relative text-sm font-medium text-gray-700 hover:text-primary transition-colors duration-200": true,
			"text-primary": active,
		},
		g.If(active, h.Aria("current", "page")),
		g.Text(l.Label),
		g.If(active, h.Span(h.Class("absolute -bottom-1 left-0 w-full h-0.5 bg-primary"))),
	)
}

func loginButton(path string) g.Node {
	active := navigation.IsActive(path, navigation.LoginLink.Href)
	return h.A(
		h.Href(navigation.LoginLink.Href),
		c.Classes{
			"hidden md:inline-flex items-center px-4 py-2 text-sm font-medium rounded-md border border-primary text-primary hover:bg-primary hover:text-white transition-all duration-200": true,
			"bg-primary text-white": active,
		},
		g.If(active, h.Aria("current", "page")),
		g.Text(navigation.LoginLink.Label),
	)
}

// MobileNav renders the drawer toggle and the drawer itself. It is also the
// fragment returned by MenuURL; the toggle asks for the opposite state.
func MobileNav(m navigation.Menu) g.Node {
	next := url.Values{
		"open": {strconv.FormatBool(!m.Open)},
		"path": {m.Path},
	}
	return h.Div(
		h.ID("mobile-nav"),
		h.Button(
			h.Type("button"),
			h.Class("md:hidden p-1"),
			hx.Get(MenuURL+"?"+next.Encode()),
			hx.Target("#mobile-nav"),
			hx.Swap("outerHTML"),
			h.Aria("label", "Toggle mobile menu"),
			h.Aria("expanded", strconv.FormatBool(m.Open)),
			h.Aria("controls", "mobile-menu"),
			g.If(m.Open, partials.CloseIcon()),
			g.If(!m.Open, partials.MenuIcon()),
		),
		h.Div(
			h.ID("mobile-menu"),
			h.Data("open", strconv.FormatBool(m.Open)),
			c.Classes{
				"fixed inset-0 bg-white md:hidden z-40 transition-all duration-300 ease-in-out": true,
				"opacity-100 translate-y-0":                       m.Open,
				"opacity-0 -translate-y-full pointer-events-none": !m.Open,
			},
			g.If(!m.Open, h.Aria("hidden", "true")),
			h.Div(
				h.Class("flex flex-col items-center justify-center min-h-screen gap-6 py-20 bg-white"),
				g.Map(navigation.Links, func(l navigation.Link) g.Node { return mobileLink(l, m) }),
				h.A(
					h.Href(navigation.LoginLink.Href),
					h.Class("mt-4 inline-flex items-center px-8 py-3 text-lg font-medium rounded-md bg-primary text-white hover:bg-primary/90 transition-all duration-200"),
					g.Text(navigation.LoginLink.Label),
				),
			),
		),
	)
}

func mobileLink(l navigation.Link, m navigation.Menu) g.Node {
	active := m.IsActive(l.Href)
	return h.A(
		h.Href(l.Href),
		c.Classes{
			"text-xl font-medium transition-all duration-200": true,
			"text-primary":                    active,
			"text-gray-700 hover:text-primary": !active,
		},
		g.If(active, h.Aria("current", "page")),
		g.Text(l.Label),
	)
}
