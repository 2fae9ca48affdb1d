package handlers

import (
	"github.com/companieshouse/orders-web/internal/nav"
)

// PageData is the shared view model for pages rendered on the GOV.UK layout.
type PageData struct {
	Title       string
	ServiceName string
	ServiceURL  string
	Analytics   Analytics

	Path     string
	Nav      []nav.RenderedItem
	BackHref string

	CSRFToken string
	SignedIn  bool
	UserEmail string

	// Per-page view model payload
	Page any
}
