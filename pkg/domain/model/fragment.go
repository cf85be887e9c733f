package model

import "html/template"

// Fragment is a piece of HTML produced by a renderer. It is not validated.
type Fragment string

// HTML marks the fragment as trusted for html/template.
func (x Fragment) HTML() template.HTML {
	// #nosec G203 -- fragments are assembled from escaped text by our own renderers
	return template.HTML(x)
}

func (x Fragment) String() string {
	return string(x)
}
