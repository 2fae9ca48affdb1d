package main

import (
	"net/http"
)

// SignInHandler renders the sign-in prompt. The actual OAuth flow lives in
// the account service; this page only explains why the user was redirected
// and carries the return destination forward.
func SignInHandler(w http.ResponseWriter, r *http.Request) {
	pd := basePage(r, "Sign in to Companies House")
	pd.Page = r.URL.Query().Get("return_to")
	renderPage(w, r, "signin", pd)
}
