package pages

import (
	"net/http"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ErrorPage is the body shown to a browser when a request fails.
func ErrorPage(code int, msg string) g.Node {
	if msg == "" {
		msg = http.StatusText(code)
	}
	return h.Section(
		h.ID("error"),
		h.Class("container mx-auto px-4 md:px-6 py-24 text-center"),
		h.P(h.Class("text-6xl font-bold text-primary mb-4"), g.Text(strconv.Itoa(code))),
		h.H1(h.Class("text-2xl font-semibold mb-2"), g.Text(http.StatusText(code))),
		g.If(msg != http.StatusText(code), h.P(h.Class("text-gray-600 mb-8"), g.Text(msg))),
		ctaButton(&CallToAction{Href: "/", Label: "Back to Home"}),
	)
}
