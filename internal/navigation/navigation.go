// Package navigation holds the site's route table and the small amount of
// state the header needs: which link is active and whether the mobile drawer
// is open. The scroll state lives in the browser; ScrollThreshold is handed to
// it through the header markup.
package navigation

// ScrollThreshold is the vertical offset, in CSS pixels, past which the header
// switches to its compact style. Only an offset strictly greater counts.
const ScrollThreshold = 20

// Link is a labelled route.
type Link struct {
	Href  string
	Label string
}

// Links are the primary navigation entries, in display order.
var Links = []Link{
	{Href: "/", Label: "Home"},
	{Href: "/donate", Label: "Donate"},
	{Href: "/find-blood", Label: "Find Blood"},
	{Href: "/register", Label: "Register Now"},
}

// LoginLink is rendered apart from Links as a call to action.
var LoginLink = Link{Href: "/login", Label: "Log In"}

// Routes returns every navigable route: the primary links followed by login.
func Routes() []Link {
	routes := make([]Link, 0, len(Links)+1)
	routes = append(routes, Links...)
	return append(routes, LoginLink)
}

// IsActive reports whether href is the current page. Only exact matches count;
// "/donate/history" does not activate "/donate".
func IsActive(currentPath, href string) bool {
	return currentPath == href
}

// Menu is the state of the mobile drawer for one page.
type Menu struct {
	Open bool
	Path string
}

// Toggle opens a closed menu and closes an open one.
func (m Menu) Toggle() Menu {
	m.Open = !m.Open
	return m
}

// Navigate records a route change. The drawer always closes on navigation.
func (m Menu) Navigate(path string) Menu {
	m.Path = path
	m.Open = false
	return m
}

// IsActive reports whether href is the menu's current page.
func (m Menu) IsActive(href string) bool {
	return IsActive(m.Path, href)
}
