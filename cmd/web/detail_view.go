package main

import (
	"context"

	"github.com/gameshelf/web/internal/api"
	"github.com/gameshelf/web/internal/viewmodel"
)

// DetailView backs the game detail page. The review strip fails
// independently of the header block.
type DetailView struct {
	Game         viewmodel.Detail
	Reviews      []viewmodel.ReviewEntry
	ReviewsError string
	NoReviews    bool
}

// QuickAddView is the inline outcome of a "want to play" click.
type QuickAddView struct {
	Message string
	Error   string
}

func buildDetailView(ctx context.Context, id api.ID) (DetailView, error) {
	game, err := apiClient.GameByID(ctx, id)
	if err != nil {
		return DetailView{}, err
	}
	view := DetailView{Game: viewmodel.NewDetail(game)}

	reviews, err := apiClient.ReviewsFor(ctx, id)
	if err != nil {
		view.ReviewsError = api.UserMessage(err)
		return view, nil
	}
	view.Reviews = viewmodel.NewReviewEntries(reviews)
	view.NoReviews = len(view.Reviews) == 0
	return view, nil
}
