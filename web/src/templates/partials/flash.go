package partials

import (
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FlashMessages renders the session flashes consumed for this request.
func FlashMessages(f view.FlashData) g.Node {
	if f.Empty() {
		return nil
	}
	return h.Div(
		h.ID("flash-messages"),
		h.Class("container mx-auto px-4 md:px-6 pt-4 space-y-2"),
		g.Map(f.Success, func(msg string) g.Node {
			return h.Div(h.Class("bg-green-50 border border-green-200 text-green-700 px-4 py-3 rounded"), g.Attr("role", "status"), g.Text(msg))
		}),
		g.Map(f.Error, func(msg string) g.Node {
			return h.Div(h.Class("bg-red-50 border border-red-200 text-red-700 px-4 py-3 rounded"), g.Attr("role", "alert"), g.Text(msg))
		}),
	)
}
