package main

import (
	"context"

	"github.com/gameshelf/web/internal/api"
	"github.com/gameshelf/web/internal/search"
	"github.com/gameshelf/web/internal/viewmodel"
)

// CatalogView backs the full catalog page. With no query it shows the
// trending grid; with one it shows that query's results.
type CatalogView struct {
	Query   string
	Heading string
	Cards   []viewmodel.Card
	Empty   bool
	Error   string
}

// SearchResultsView backs the live results region swapped in by the
// search box.
type SearchResultsView struct {
	Query   string
	Cleared bool
	Cards   []viewmodel.Card
	Empty   bool
	Error   string
}

func buildCatalogView(ctx context.Context, query string) CatalogView {
	view := CatalogView{Query: query, Heading: "Trending now"}

	var (
		games []api.Game
		err   error
	)
	if query == "" {
		games, err = apiClient.Trending(ctx)
	} else {
		view.Heading = "Results for “" + query + "”"
		games, err = apiClient.SearchGames(ctx, query)
	}
	if err != nil {
		view.Error = api.UserMessage(err)
		return view
	}
	view.Cards = viewmodel.NewCards(games)
	view.Empty = len(view.Cards) == 0
	return view
}

func buildSearchResultsView(upd search.Update) SearchResultsView {
	view := SearchResultsView{Query: upd.Query, Cleared: upd.Cleared}
	if upd.Cleared {
		return view
	}
	view.Cards = viewmodel.NewCards(upd.Results)
	view.Empty = len(view.Cards) == 0
	return view
}
