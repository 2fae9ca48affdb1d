package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/companieshouse/orders-web/internal/mappers"
	"github.com/companieshouse/orders-web/internal/orders"
)

// OrderSummaryHandler renders a completed order with its items grouped by
// kind, matching the basket layout.
func OrderSummaryHandler(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "orderID")
	order, err := ordersClient.GetOrder(r.Context(), accessToken(r), reference)
	if errors.Is(err, orders.ErrOrderNotReady) {
		notFound(w, r)
		return
	}
	if err != nil {
		serverError(w, r, err)
		return
	}

	view, err := mappers.MapOrderSummary(order, mapperCfg)
	if err != nil {
		serverError(w, r, err)
		return
	}

	pd := basePage(r, "Order "+reference)
	pd.BackHref = "/orders"
	pd.Page = view
	renderPage(w, r, "order-summary", pd)
}

// ItemSummaryHandler renders the detail view for a single item of a
// completed order.
func ItemSummaryHandler(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "orderID")
	itemID := chi.URLParam(r, "itemID")

	order, err := ordersClient.GetOrder(r.Context(), accessToken(r), reference)
	if errors.Is(err, orders.ErrOrderNotReady) {
		notFound(w, r)
		return
	}
	if err != nil {
		serverError(w, r, err)
		return
	}

	item, ok := selectItem(order.Items, itemID)
	if !ok {
		notFound(w, r)
		return
	}

	summary, err := mappers.MapItemSummary(item, mapperCfg)
	if err != nil {
		serverError(w, r, err)
		return
	}

	pd := basePage(r, summary.Heading)
	pd.BackHref = "/orders/" + reference
	pd.Page = summary
	renderPage(w, r, "item-summary", pd)
}
