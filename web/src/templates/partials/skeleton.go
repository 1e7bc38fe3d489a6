package partials

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Skeleton is a pulsing grey bar standing in for content that is still
// loading. class sizes and positions the bar.
func Skeleton(class string) g.Node {
	return h.Div(
		h.Class("animate-pulse rounded-md bg-gray-200 "+class),
		h.Data("skeleton", ""),
		h.Aria("hidden", "true"),
	)
}

// Skeletons renders one Skeleton per class.
func Skeletons(classes []string) g.Node {
	return g.Map(classes, Skeleton)
}
