package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gameshelf/web/internal/api"
	mw "github.com/gameshelf/web/internal/middleware"
)

// ListsHandler renders the "My Lists" page.
func ListsHandler(w http.ResponseWriter, r *http.Request) {
	vm := newPageData(r, "My Lists")
	vm.Lists = buildListsView(r.Context(), backendSession(r), vm.CSRFToken)
	renderPage(w, r, "lists", vm)
}

// ListCreateHandler creates a list, then refetches the collection so the
// panel reflects what the backend actually stored.
func ListCreateHandler(w http.ResponseWriter, r *http.Request) {
	session := backendSession(r)
	csrf := mw.GetSession(r).CSRFToken
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	name := r.FormValue("name")

	if session == "" {
		view := ListsView{SignedOut: true, CSRFToken: csrf}
		renderTemplate(w, r, "frag_lists", view)
		return
	}

	if err := listSvc.CreateList(r.Context(), session, name); err != nil {
		view := buildListsView(r.Context(), session, csrf)
		view.CreateError = api.UserMessage(err)
		view.Draft = name
		renderTemplate(w, r, "frag_lists", view)
		return
	}
	renderTemplate(w, r, "frag_lists", buildListsView(r.Context(), session, csrf))
}

// ListAddHandler saves a game snapshot into a specific list.
func ListAddHandler(w http.ResponseWriter, r *http.Request) {
	session := backendSession(r)
	csrf := mw.GetSession(r).CSRFToken
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if session == "" {
		view := ListsView{SignedOut: true, CSRFToken: csrf}
		renderTemplate(w, r, "frag_lists", view)
		return
	}

	listID := api.ID(chi.URLParam(r, "listID"))
	game := api.Game{
		ID:              api.ID(strings.TrimSpace(r.FormValue("game_id"))),
		Name:            r.FormValue("game_name"),
		BackgroundImage: r.FormValue("game_cover"),
	}
	if err := listSvc.AddGame(r.Context(), session, listID, game); err != nil {
		view := buildListsView(r.Context(), session, csrf)
		view.Error = api.UserMessage(err)
		renderTemplate(w, r, "frag_lists", view)
		return
	}
	renderTemplate(w, r, "frag_lists", buildListsView(r.Context(), session, csrf))
}
