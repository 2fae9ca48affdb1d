package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/companieshouse/orders-web/internal/mappers"
	"github.com/companieshouse/orders-web/internal/orders"
)

// ConfirmationHandler renders the post-payment confirmation for one item
// of a checkout. The item is selected with the itemId query parameter and
// defaults to the first item.
func ConfirmationHandler(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "orderID")
	checkout, err := ordersClient.GetCheckout(r.Context(), accessToken(r), reference)
	if errors.Is(err, orders.ErrOrderNotReady) {
		// Payment is confirmed asynchronously; tell the user to hold on.
		pd := basePage(r, "Order processing")
		pd.Page = reference
		renderPage(w, r, "order-processing", pd)
		return
	}
	if err != nil {
		serverError(w, r, err)
		return
	}

	item, ok := selectItem(checkout.Items, r.URL.Query().Get("itemId"))
	if !ok {
		notFound(w, r)
		return
	}

	page, err := mappers.MapItem(item, checkout.DeliveryDetails, mapperCfg)
	if err != nil {
		serverError(w, r, err)
		return
	}

	pd := basePage(r, page.PageTitle)
	pd.ServiceName = page.ServiceName
	pd.ServiceURL = page.ServiceURL
	pd.Page = confirmationView{Reference: reference, Confirmation: page}
	renderPage(w, r, "confirmation", pd)
}

type confirmationView struct {
	Reference    string
	Confirmation mappers.ConfirmationPage
}

// selectItem finds the item with the given id, or the first item when no
// id was requested.
func selectItem(items []orders.Item, id string) (orders.Item, bool) {
	if id == "" {
		if len(items) == 0 {
			return orders.Item{}, false
		}
		return items[0], true
	}
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return orders.Item{}, false
}
