package pages

import (
	"github.com/Youssef-Elmorali/blood-project-frontend/web/src/templates/partials"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// EducationContentURL serves the content that replaces the skeleton.
const EducationContentURL = "/education/content"

// Skeleton geometry, mirroring the shape of the content it stands in for.
var (
	heroSkeleton = []string{"h-10 w-64 mx-auto mb-4", "h-4 w-full mx-auto mb-2", "h-4 w-3/4 mx-auto"}
	cardSkeleton = []string{"h-12 w-12 rounded-full mb-4", "h-6 w-40 mb-2", "h-4 w-full mb-2", "h-4 w-full mb-2", "h-4 w-3/4 mb-4", "h-4 w-24"}
)

// EducationTopic is one card on the education page.
type EducationTopic struct {
	Title string
	Body  string
	Emoji string
}

// EducationTopics are the cards shown once content has loaded.
var EducationTopics = []EducationTopic{
	{
		Title: "Who Can Donate",
		Body:  "Most healthy adults between 18 and 65 who weigh at least 50 kg can give blood. A short health check on the day confirms you are ready.",
		Emoji: "🩸",
	},
	{
		Title: "The Donation Process",
		Body:  "Registration, a quick screening, about ten minutes of donating and a short rest with a snack. Plan for roughly an hour in total.",
		Emoji: "🏥",
	},
	{
		Title: "After You Donate",
		Body:  "Drink plenty of fluids, skip heavy lifting for the rest of the day and keep the plaster on for a few hours. You can give whole blood again after 56 days.",
		Emoji: "💧",
	},
}

// EducationSkeleton is rendered while education content loads. It fetches
// the real content as soon as it is on the page and swaps itself out.
func EducationSkeleton() g.Node {
	return h.Div(
		h.ID("education"),
		hx.Get(EducationContentURL),
		hx.Trigger("load"),
		hx.Swap("outerHTML"),
		h.Aria("busy", "true"),
		h.Section(
			h.Class("bg-primary/5 py-16"),
			h.Div(
				h.Class("container mx-auto px-4 md:px-6"),
				h.Div(h.Class("max-w-3xl mx-auto text-center"), partials.Skeletons(heroSkeleton)),
			),
		),
		h.Section(
			h.Class("container mx-auto px-4 md:px-6 py-16"),
			h.Div(
				h.Class("grid md:grid-cols-3 gap-8 mb-12"),
				g.Map(EducationTopics, func(EducationTopic) g.Node {
					return h.Div(h.Class("bg-white p-6 rounded-lg shadow-md"), partials.Skeletons(cardSkeleton))
				}),
			),
		),
	)
}

// EducationContent is the loaded education page body.
func EducationContent() g.Node {
	return h.Div(
		h.ID("education"),
		h.Section(
			h.Class("bg-primary/5 py-16"),
			h.Div(
				h.Class("container mx-auto px-4 md:px-6"),
				h.Div(
					h.Class("max-w-3xl mx-auto text-center"),
					h.H1(h.Class("text-4xl font-bold mb-4"), g.Text("Learn About Blood Donation")),
					h.P(h.Class("text-gray-600"), g.Text("One donation can help up to three people. Here is what to expect before, during and after you give.")),
				),
			),
		),
		h.Section(
			h.Class("container mx-auto px-4 md:px-6 py-16"),
			h.Div(
				h.Class("grid md:grid-cols-3 gap-8 mb-12"),
				g.Map(EducationTopics, educationCard),
			),
		),
	)
}

func educationCard(t EducationTopic) g.Node {
	return h.Article(
		h.Class("bg-white p-6 rounded-lg shadow-md"),
		h.Div(h.Class("h-12 w-12 rounded-full bg-primary/10 flex items-center justify-center text-2xl mb-4"), g.Text(t.Emoji)),
		h.H2(h.Class("text-xl font-semibold mb-2"), g.Text(t.Title)),
		h.P(h.Class("text-gray-600 mb-4"), g.Text(t.Body)),
		h.A(h.Href("/donate"), h.Class("text-sm text-primary font-medium hover:underline"), g.Text("Donate now")),
	)
}
