package main

import (
	"net/http"
)

// ProfileHandler renders the visitor's profile summary.
func ProfileHandler(w http.ResponseWriter, r *http.Request) {
	vm := newPageData(r, "Profile")
	vm.Profile = buildProfileView(r.Context(), backendSession(r))
	renderPage(w, r, "profile", vm)
}
