package main

import (
	"context"

	"github.com/gameshelf/web/internal/api"
	"github.com/gameshelf/web/internal/viewmodel"
)

// HomeView aggregates the two landing page rails. Each rail fails
// independently; a backend hiccup on one does not blank the other.
type HomeView struct {
	Trending    RailView
	NewReleases RailView
}

// RailView is one horizontal strip of game cards.
type RailView struct {
	Heading string
	Cards   []viewmodel.Card
	Error   string
}

func buildHomeView(ctx context.Context) HomeView {
	view := HomeView{
		Trending:    RailView{Heading: "Trending now"},
		NewReleases: RailView{Heading: "New releases"},
	}

	if games, err := apiClient.Trending(ctx); err != nil {
		view.Trending.Error = api.UserMessage(err)
	} else {
		view.Trending.Cards = viewmodel.NewCards(games)
	}

	if games, err := apiClient.NewReleases(ctx); err != nil {
		view.NewReleases.Error = api.UserMessage(err)
	} else {
		view.NewReleases.Cards = viewmodel.NewCards(games)
	}

	return view
}
