package handlers

import (
	"github.com/gameshelf/web/internal/nav"
)

// PageData is the generic view model for pages using the shared layout.
type PageData struct {
	Title     string
	SignedIn  bool
	CSRFToken string
	Analytics Analytics

	Path string
	Nav  []nav.RenderedItem

	// Error holds a short page-level failure message; the surrounding
	// layout still renders.
	Error string

	// Optional per-page view model payloads
	Home    any
	Catalog any
	Detail  any
	Review  any
	Lists   any
	Profile any
}
