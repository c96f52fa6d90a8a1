package main

import (
	"net/http"
)

// HomeHandler renders the landing page with the trending and new release
// rails.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	vm := newPageData(r, "Home")
	vm.Home = buildHomeView(r.Context())
	renderPage(w, r, "home", vm)
}
