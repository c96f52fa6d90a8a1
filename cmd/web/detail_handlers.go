package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gameshelf/web/internal/api"
)

// DetailHandler renders the game detail page. Fetch failures keep the
// surrounding layout and show the failure message in the content region.
func DetailHandler(w http.ResponseWriter, r *http.Request) {
	id := api.ID(chi.URLParam(r, "gameID"))
	vm := newPageData(r, "Game")

	view, err := buildDetailView(r.Context(), id)
	if err != nil {
		vm.Error = api.UserMessage(err)
		renderPage(w, r, "detail", vm)
		return
	}
	vm.Title = view.Game.Title
	vm.Detail = view
	renderPage(w, r, "detail", vm)
}

// QuickAddHandler saves a game to the visitor's default list and swaps in
// the outcome inline.
func QuickAddHandler(w http.ResponseWriter, r *http.Request) {
	session := backendSession(r)
	if session == "" {
		renderTemplate(w, r, "frag_quick_add", QuickAddView{Error: "Sign in to save games to a list."})
		return
	}

	id := api.ID(chi.URLParam(r, "gameID"))
	game, err := apiClient.GameByID(r.Context(), id)
	if err != nil {
		renderTemplate(w, r, "frag_quick_add", QuickAddView{Error: api.UserMessage(err)})
		return
	}

	target, err := listSvc.QuickAdd(r.Context(), session, game)
	if err != nil {
		renderTemplate(w, r, "frag_quick_add", QuickAddView{Error: api.UserMessage(err)})
		return
	}
	renderTemplate(w, r, "frag_quick_add", QuickAddView{Message: "Added to " + target.Name})
}
