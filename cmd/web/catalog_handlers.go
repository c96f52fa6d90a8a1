package main

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gameshelf/web/internal/api"
	mw "github.com/gameshelf/web/internal/middleware"
	"github.com/gameshelf/web/internal/search"
)

// CatalogHandler renders the browse/search page.
func CatalogHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	vm := newPageData(r, "Games")
	vm.Catalog = buildCatalogView(r.Context(), query)
	renderPage(w, r, "catalog", vm)
}

// SearchResultsFrag handles one keystroke from the search box. The
// per-visitor controller debounces input and discards updates that a newer
// keystroke has overtaken; those return 204 so the results region keeps
// whatever the newest keystroke rendered.
func SearchResultsFrag(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	ctrl := searchRegistry.For(mw.GetSession(r).ID)

	upd, err := ctrl.Keystroke(r.Context(), q)
	if err != nil {
		if errors.Is(err, search.ErrSuperseded) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		view := SearchResultsView{
			Query: strings.TrimSpace(q),
			Error: api.UserMessage(err),
		}
		renderTemplate(w, r, "frag_search_results", view)
		return
	}

	push := "/games"
	if upd.Query != "" {
		push += "?q=" + url.QueryEscape(upd.Query)
	}
	w.Header().Set("HX-Push-Url", push)
	renderTemplate(w, r, "frag_search_results", buildSearchResultsView(upd))
}
