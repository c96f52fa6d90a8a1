package main

import (
	"context"

	"github.com/gameshelf/web/internal/api"
	"github.com/gameshelf/web/internal/format"
)

const profileRecentLimit = 8

// ProfileView summarizes the visitor's shelf activity.
type ProfileView struct {
	SignedOut  bool
	ListCount  string
	SavedCount string
	Recent     []ListItemView
	Error      string
}

func buildProfileView(ctx context.Context, session string) ProfileView {
	if session == "" {
		return ProfileView{SignedOut: true}
	}

	collection, err := listSvc.FetchLists(ctx, session)
	if err != nil {
		return ProfileView{Error: api.UserMessage(err)}
	}

	var saved int64
	var recent []ListItemView
	for _, l := range collection {
		saved += int64(len(l.Items))
		for _, it := range l.Items {
			if len(recent) >= profileRecentLimit {
				break
			}
			recent = append(recent, ListItemView{
				GameID: it.GameID.String(),
				Name:   it.GameName,
				Cover:  it.GameCover,
				Added:  it.AddedAt,
			})
		}
	}
	return ProfileView{
		ListCount:  format.Count(int64(len(collection))),
		SavedCount: format.Count(saved),
		Recent:     recent,
	}
}
