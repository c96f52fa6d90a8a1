package main

import (
	"context"

	"github.com/gameshelf/web/internal/api"
	"github.com/gameshelf/web/internal/review"
	"github.com/gameshelf/web/internal/viewmodel"
)

// ReviewView backs the review composer page.
type ReviewView struct {
	Game viewmodel.Card
	Form ReviewFormView
}

// ReviewFormView carries the composer state across validation round trips
// so a rejected submit never loses the draft.
type ReviewFormView struct {
	GameID    string
	Stars     [5]bool
	Selected  int
	Body      string
	Error     string
	CSRFToken string
}

func buildReviewView(ctx context.Context, id api.ID) (ReviewView, error) {
	game, err := apiClient.GameByID(ctx, id)
	if err != nil {
		return ReviewView{}, err
	}
	picker := review.NewPicker()
	return ReviewView{
		Game: viewmodel.NewCard(game),
		Form: ReviewFormView{
			GameID:   game.ID.String(),
			Stars:    picker.Stars(),
			Selected: picker.Selected(),
		},
	}, nil
}

func reviewFormFrom(picker *review.Picker, gameID api.ID, body, errMsg, csrf string) ReviewFormView {
	return ReviewFormView{
		GameID:    gameID.String(),
		Stars:     picker.Stars(),
		Selected:  picker.Selected(),
		Body:      body,
		Error:     errMsg,
		CSRFToken: csrf,
	}
}
