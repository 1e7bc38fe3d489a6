package layouts

import (
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/navigation"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Footer renders the site footer.
func Footer() g.Node {
	return h.Footer(
		h.Class("bg-gray-900 text-gray-300"),
		h.Div(
			h.Class("container mx-auto px-4 md:px-6 py-10 grid gap-8 md:grid-cols-3"),
			h.Div(
				h.P(h.Class("text-lg font-bold text-white"), g.Text(SiteName)),
				h.P(h.Class("mt-2 text-sm"), g.Text("Every drop is a life. Give blood, find blood, and keep your community's supply strong.")),
			),
			h.Nav(
				h.Aria("label", "Footer"),
				h.Ul(
					h.Class("space-y-2 text-sm"),
					g.Map(navigation.Routes(), func(l navigation.Link) g.Node {
						return h.Li(h.A(h.Href(l.Href), h.Class("hover:text-white"), g.Text(l.Label)))
					}),
					h.Li(h.A(h.Href("/education"), h.Class("hover:text-white"), g.Text("Learn About Donation"))),
				),
			),
			h.P(h.Class("text-sm md:text-right"), g.Text("© Qatrah Hayat. All rights reserved.")),
		),
	)
}
