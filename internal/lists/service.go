// Package lists resolves list lookups and add-to-list mutations against the
// user's named lists. Every read goes to the backend; there is no local
// cache, and a changed list is always observed by re-fetching the full
// collection.
package lists

import (
	"context"
	"errors"
	"strings"

	"github.com/gameshelf/web/internal/api"
)

// DefaultListName is the list "quick add" prefers, compared
// case-insensitively.
const DefaultListName = "Play Later"

// ErrNoLists is returned when the user owns no lists at all. It is a
// client-side precondition failure: no backend write is attempted.
var ErrNoLists = &api.ValidationError{Message: "You don't have any lists yet."}

// ErrNotFound is returned when no list matches a name lookup.
var ErrNotFound = errors.New("lists: list not found")

// Backend is the subset of the API client the service depends on.
type Backend interface {
	MyLists(ctx context.Context, session string) ([]api.List, error)
	CreateList(ctx context.Context, session, name string) error
	AddToList(ctx context.Context, session string, listID api.ID, item api.ListItem) error
}

// Service coordinates list membership operations.
type Service struct {
	backend Backend
}

// NewService wires the service to its backend.
func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

// FetchLists retrieves the user's lists fresh; one API call, no cache.
func (s *Service) FetchLists(ctx context.Context, session string) ([]api.List, error) {
	return s.backend.MyLists(ctx, session)
}

// ResolveDefault picks the list named "Play Later" (case-insensitive), and
// falls back to the first list in backend order so a quick add succeeds
// whenever the user has any list at all. ErrNoLists when the collection is
// empty.
func ResolveDefault(collection []api.List) (api.List, error) {
	if len(collection) == 0 {
		return api.List{}, ErrNoLists
	}
	if l, err := ResolveByName(collection, DefaultListName); err == nil {
		return l, nil
	}
	return collection[0], nil
}

// ResolveByName finds a list by case-insensitive exact name match. When two
// lists share a name the first match in backend order wins; that tie-break
// is defined behavior, not an error.
func ResolveByName(collection []api.List, name string) (api.List, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, l := range collection {
		if strings.ToLower(strings.TrimSpace(l.Name)) == want {
			return l, nil
		}
	}
	return api.List{}, ErrNotFound
}

// AddGame posts a list item built from the game snapshot. Whether adding
// the same game twice is deduplicated is the backend's call; this layer
// imposes nothing.
func (s *Service) AddGame(ctx context.Context, session string, listID api.ID, game api.Game) error {
	item := api.ListItem{
		GameID:    game.ID,
		GameName:  strings.TrimSpace(game.Name),
		GameCover: strings.TrimSpace(game.BackgroundImage),
	}
	return s.backend.AddToList(ctx, session, listID, item)
}

// QuickAdd resolves the default list and adds the game to it. The resolved
// list is returned so callers can name it in confirmation copy.
func (s *Service) QuickAdd(ctx context.Context, session string, game api.Game) (api.List, error) {
	collection, err := s.FetchLists(ctx, session)
	if err != nil {
		return api.List{}, err
	}
	target, err := ResolveDefault(collection)
	if err != nil {
		return api.List{}, err
	}
	if err := s.AddGame(ctx, session, target.ID, game); err != nil {
		return api.List{}, err
	}
	return target, nil
}

// CreateList posts a new named list. The backend does not return the new
// id; callers re-fetch the collection to observe it.
func (s *Service) CreateList(ctx context.Context, session, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &api.ValidationError{Message: "List name is required."}
	}
	return s.backend.CreateList(ctx, session, name)
}
