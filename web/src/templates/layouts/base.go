package layouts

import (
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/view"
	"github.com/Youssef-Elmorali/blood-project-frontend/web/src/templates/partials"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// tailwindConfig teaches the Tailwind play CDN the brand colour.
const tailwindConfig = `tailwind.config = { theme: { extend: { colors: { primary: "#c81e1e" } } } }`

// Page describes one full-page render.
type Page struct {
	Title string
	Path  string // request path, used to highlight the active link
	Flash view.FlashData
}

// Base wraps page content in the document shell: head, fixed header, flash
// messages and footer.
func Base(p Page, content ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       CalculateTitle(p.Title),
		Description: "Qatrah Hayat connects blood donors with the people who need them.",
		Language:    "en",
		Head: []g.Node{
			h.Script(h.Src("https://cdn.tailwindcss.com")),
			h.Script(g.Raw(tailwindConfig)),
			h.Script(h.Src(htmxSrc), h.Defer()),
			h.Script(h.Src("/static/js/header.js"), h.Defer()),
			h.Link(h.Rel("stylesheet"), h.Href("/static/css/app.css")),
		},
		Body: []g.Node{
			h.Class("flex flex-col min-h-screen text-gray-900"),
			Header(p.Path),
			h.Main(
				h.Class("flex-1 pt-20"),
				partials.FlashMessages(p.Flash),
				g.Group(content),
			),
			Footer(),
		},
	})
}
