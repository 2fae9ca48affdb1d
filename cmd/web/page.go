package main

import (
	"net/http"

	"go.uber.org/zap"

	handlersPkg "github.com/companieshouse/orders-web/internal/handlers"
	mw "github.com/companieshouse/orders-web/internal/middleware"
	"github.com/companieshouse/orders-web/internal/nav"
)

const serviceName = "Find and update company information"

// basePage assembles the layout fields shared by every rendered page.
func basePage(r *http.Request, title string) handlersPkg.PageData {
	s := mw.GetSession(r)
	pd := handlersPkg.PageData{
		Title:       title,
		ServiceName: serviceName,
		ServiceURL:  "/",
		Analytics:   handlersPkg.LoadAnalyticsFromEnv(),
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path, 0),
		CSRFToken:   s.CSRFToken,
	}
	if u := mw.UserFromContext(r.Context()); u != nil {
		pd.SignedIn = true
		pd.UserEmail = u.Email
	}
	return pd
}

// accessToken returns the orders API token for the signed-in user, empty
// for anonymous requests.
func accessToken(r *http.Request) string {
	if u := mw.UserFromContext(r.Context()); u != nil {
		return u.AccessToken
	}
	return ""
}

func serverError(w http.ResponseWriter, r *http.Request, err error) {
	if appLogger != nil {
		appLogger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	pd := basePage(r, "Sorry, there is a problem with the service")
	renderPage(w, r, "error", pd)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	pd := basePage(r, "Page not found")
	renderPage(w, r, "not-found", pd)
}
