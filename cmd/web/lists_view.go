package main

import (
	"context"
	"strconv"

	"github.com/gameshelf/web/internal/api"
)

// ListsView backs the "My Lists" page and its refreshable panel fragment.
type ListsView struct {
	SignedOut bool
	Lists     []ListPanel
	Empty     bool
	Error     string

	// CreateError and Draft carry a rejected create form back to the
	// visitor with their input intact.
	CreateError string
	Draft       string
	CSRFToken   string
}

// ListPanel is one list with its saved games.
type ListPanel struct {
	ID    string
	Name  string
	Count string
	Items []ListItemView
}

// ListItemView is a saved game snapshot inside a panel.
type ListItemView struct {
	GameID string
	Name   string
	Cover  string
	Added  string
}

func buildListsView(ctx context.Context, session, csrf string) ListsView {
	view := ListsView{CSRFToken: csrf}
	if session == "" {
		view.SignedOut = true
		return view
	}

	collection, err := listSvc.FetchLists(ctx, session)
	if err != nil {
		view.Error = api.UserMessage(err)
		return view
	}
	for _, l := range collection {
		panel := ListPanel{
			ID:    l.ID.String(),
			Name:  l.Name,
			Count: strconv.Itoa(len(l.Items)),
		}
		for _, it := range l.Items {
			panel.Items = append(panel.Items, ListItemView{
				GameID: it.GameID.String(),
				Name:   it.GameName,
				Cover:  it.GameCover,
				Added:  it.AddedAt,
			})
		}
		view.Lists = append(view.Lists, panel)
	}
	view.Empty = len(view.Lists) == 0
	return view
}
