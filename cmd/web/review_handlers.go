package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gameshelf/web/internal/api"
	mw "github.com/gameshelf/web/internal/middleware"
	"github.com/gameshelf/web/internal/review"
)

// ReviewHandler renders the review composer for a game. The star picker
// starts at five.
func ReviewHandler(w http.ResponseWriter, r *http.Request) {
	id := api.ID(chi.URLParam(r, "gameID"))
	vm := newPageData(r, "Write a review")

	view, err := buildReviewView(r.Context(), id)
	if err != nil {
		vm.Error = api.UserMessage(err)
		renderPage(w, r, "review", vm)
		return
	}
	view.Form.CSRFToken = vm.CSRFToken
	vm.Review = view
	renderPage(w, r, "review", vm)
}

// ReviewPublishHandler submits the composer. A body that fails validation
// re-renders the form with the draft intact and no backend call made.
func ReviewPublishHandler(w http.ResponseWriter, r *http.Request) {
	id := api.ID(chi.URLParam(r, "gameID"))
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	picker := review.PickerFrom(r.FormValue("rating"))
	body := r.FormValue("body")
	csrf := mw.GetSession(r).CSRFToken

	session := backendSession(r)
	if session == "" {
		form := reviewFormFrom(picker, id, body, "Sign in to publish reviews.", csrf)
		renderTemplate(w, r, "frag_review_form", form)
		return
	}

	if err := picker.Publish(r.Context(), apiClient, session, id, body); err != nil {
		form := reviewFormFrom(picker, id, body, api.UserMessage(err), csrf)
		renderTemplate(w, r, "frag_review_form", form)
		return
	}

	if mw.IsHTMX(r.Context()) {
		w.Header().Set("HX-Redirect", "/game/"+id.String())
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/game/"+id.String(), http.StatusSeeOther)
}
