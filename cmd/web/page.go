package main

import (
	"net/http"

	handlersPkg "github.com/gameshelf/web/internal/handlers"
	mw "github.com/gameshelf/web/internal/middleware"
	"github.com/gameshelf/web/internal/nav"
)

// newPageData fills the layout-level fields shared by every page.
func newPageData(r *http.Request, title string) handlersPkg.PageData {
	return handlersPkg.PageData{
		Title:     title,
		SignedIn:  mw.BackendSessionFromContext(r.Context()) != "",
		CSRFToken: mw.GetSession(r).CSRFToken,
		Analytics: handlersPkg.LoadAnalyticsFromEnv(),
		Path:      r.URL.Path,
		Nav:       nav.Build(r.URL.Path),
	}
}

// backendSession returns the caller's backend session token, empty when
// signed out.
func backendSession(r *http.Request) string {
	return mw.BackendSessionFromContext(r.Context())
}
