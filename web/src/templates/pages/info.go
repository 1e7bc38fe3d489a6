package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// InfoPage is a static content page reachable from the navigation.
type InfoPage struct {
	Path    string
	Title   string
	Heading string
	Lead    string
	Points  []string
	CTA     *CallToAction
}

// CallToAction is the button at the bottom of an InfoPage.
type CallToAction struct {
	Href  string
	Label string
}

// InfoPages are served at their Path.
var InfoPages = []InfoPage{
	{
		Path:    "/",
		Title:   "Home",
		Heading: "Every Drop Is a Life",
		Lead:    "Qatrah Hayat brings donors, hospitals and patients together so that safe blood is there when it is needed.",
		Points: []string{
			"Find a donation centre near you.",
			"See which blood types are in short supply.",
			"Learn what happens before, during and after a donation.",
		},
		CTA: &CallToAction{Href: "/donate", Label: "Donate Blood"},
	},
	{
		Path:    "/donate",
		Title:   "Donate",
		Heading: "Give Blood, Save Lives",
		Lead:    "A single donation takes about an hour and can help up to three patients.",
		Points: []string{
			"Eat a proper meal and drink water before you come.",
			"Bring a photo ID.",
			"Tell the staff about any medication you take.",
		},
		CTA: &CallToAction{Href: "/education", Label: "Learn About Donating"},
	},
	{
		Path:    "/find-blood",
		Title:   "Find Blood",
		Heading: "Find Blood for a Patient",
		Lead:    "Hospitals and families can ask nearby donors with a matching blood type for help.",
		Points: []string{
			"Requests are shared with compatible donors in the area.",
			"Urgent cases are shown first.",
		},
		CTA: &CallToAction{Href: "/register", Label: "Register to Request"},
	},
	{
		Path:    "/register",
		Title:   "Register",
		Heading: "Become a Registered Donor",
		Lead:    "Registered donors are contacted when their blood type is needed nearby.",
		Points: []string{
			"You must be between 18 and 65 years old.",
			"You must weigh at least 50 kg.",
		},
		CTA: &CallToAction{Href: "/login", Label: "Already registered? Log In"},
	},
	{
		Path:    "/forgot-password",
		Title:   "Forgot Password",
		Heading: "Reset Your Password",
		Lead:    "Password resets are handled by the donor support team. Contact your local donation centre with the email address you registered with.",
		CTA:     &CallToAction{Href: "/login", Label: "Back to Log In"},
	},
}

// Info renders an InfoPage body.
func Info(p InfoPage) g.Node {
	return h.Section(
		h.Class("container mx-auto px-4 md:px-6 py-16"),
		h.Div(
			h.Class("max-w-3xl mx-auto"),
			h.H1(h.Class("text-4xl font-bold mb-4"), g.Text(p.Heading)),
			h.P(h.Class("text-lg text-gray-600 mb-8"), g.Text(p.Lead)),
			g.If(len(p.Points) > 0, h.Ul(
				h.Class("list-disc pl-6 space-y-2 text-gray-700 mb-8"),
				g.Map(p.Points, func(s string) g.Node { return h.Li(g.Text(s)) }),
			)),
			g.If(p.CTA != nil, ctaButton(p.CTA)),
		),
	)
}

func ctaButton(cta *CallToAction) g.Node {
	if cta == nil {
		return nil
	}
	return h.A(
		h.Href(cta.Href),
		h.Class("inline-flex items-center px-6 py-3 rounded-md bg-primary text-white font-medium hover:bg-primary/90"),
		g.Text(cta.Label),
	)
}
