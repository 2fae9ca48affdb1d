package main

import (
	"net/http"

	"github.com/companieshouse/orders-web/internal/mappers"
	"github.com/companieshouse/orders-web/internal/nav"
)

// BasketHandler renders the basket page: items grouped by kind, the
// running total and, when anything needs posting, the delivery details.
func BasketHandler(w http.ResponseWriter, r *http.Request) {
	basket, err := ordersClient.GetBasket(r.Context(), accessToken(r))
	if err != nil {
		serverError(w, r, err)
		return
	}
	view, err := mappers.MapBasket(basket, mapperCfg)
	if err != nil {
		serverError(w, r, err)
		return
	}

	pd := basePage(r, "Basket")
	pd.Nav = nav.Build(r.URL.Path, view.ItemCount)
	pd.Page = view
	renderPage(w, r, "basket", pd)
}

// CheckoutRedirectHandler hands the basket off to the payment flow. When
// anything in the basket needs posting, delivery details are collected
// first.
func CheckoutRedirectHandler(w http.ResponseWriter, r *http.Request) {
	basket, err := ordersClient.GetBasket(r.Context(), accessToken(r))
	if err != nil {
		serverError(w, r, err)
		return
	}
	for _, item := range basket.Items {
		if item.Deliverable() && basket.DeliveryDetails == nil {
			http.Redirect(w, r, "/delivery-details", http.StatusFound)
			return
		}
	}
	http.Redirect(w, r, "/basket", http.StatusFound)
}

// DeliveryDetailsHandler renders the delivery details form. Submission is
// handled by the checkout service; this page only displays what is held
// against the basket.
func DeliveryDetailsHandler(w http.ResponseWriter, r *http.Request) {
	basket, err := ordersClient.GetBasket(r.Context(), accessToken(r))
	if err != nil {
		serverError(w, r, err)
		return
	}

	pd := basePage(r, "Delivery details")
	pd.BackHref = "/basket"
	pd.Page = basket.DeliveryDetails
	renderPage(w, r, "delivery-details", pd)
}
