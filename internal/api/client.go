package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout    = 15 * time.Second
	sessionCookieName = "session"
	genericFailure    = "Request failed"
)

// HTTPClient matches the subset of http.Client used by Client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is the typed wrapper over the backend REST surface. It normalizes
// every call into either a decoded payload or one of the taxonomy errors
// (TransportError, RequestError). A single failed call surfaces immediately;
// there are no retries.
type Client struct {
	base *url.URL
	http HTTPClient
}

// New constructs a backend client. The HTTP client may be nil, in which case
// a default with a request timeout is used.
func New(baseURL string, client HTTPClient) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("api: base URL is required")
	}
	parsed, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("api: parse base URL: %w", err)
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{base: parsed, http: client}, nil
}

// Trending fetches the catalog listing ordered by popularity.
func (c *Client) Trending(ctx context.Context) ([]Game, error) {
	var payload gamesEnvelope
	if err := c.get(ctx, "/api/trending", nil, "", &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// NewReleases fetches the catalog listing ordered by release date.
func (c *Client) NewReleases(ctx context.Context) ([]Game, error) {
	var payload gamesEnvelope
	if err := c.get(ctx, "/api/new_releases", nil, "", &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// SearchGames runs a catalog search for the given query text.
func (c *Client) SearchGames(ctx context.Context, q string) ([]Game, error) {
	query := url.Values{"q": []string{q}}
	var payload gamesEnvelope
	if err := c.get(ctx, "/api/search", query, "", &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// GameByID fetches a single catalog record.
func (c *Client) GameByID(ctx context.Context, id ID) (Game, error) {
	var payload Game
	if err := c.get(ctx, "/api/game/"+url.PathEscape(id.String()), nil, "", &payload); err != nil {
		return Game{}, err
	}
	return payload, nil
}

// ReviewsFor fetches the reviews associated with a game, most recent first
// as delivered by the backend.
func (c *Client) ReviewsFor(ctx context.Context, id ID) ([]Review, error) {
	var payload reviewsEnvelope
	if err := c.get(ctx, "/api/reviews/"+url.PathEscape(id.String()), nil, "", &payload); err != nil {
		return nil, err
	}
	return payload.Reviews, nil
}

// PublishReview posts a review for the given game on behalf of the session
// owner. Rating and body validation is the caller's responsibility.
func (c *Client) PublishReview(ctx context.Context, session string, id ID, rating int, body string) error {
	payload := map[string]any{"rating": rating, "body": body}
	return c.post(ctx, "/api/reviews/"+url.PathEscape(id.String()), payload, session, nil)
}

// MyLists fetches the session owner's lists, list items included, in
// backend order. No local cache is kept.
func (c *Client) MyLists(ctx context.Context, session string) ([]List, error) {
	var payload listsEnvelope
	if err := c.get(ctx, "/api/my/lists", nil, session, &payload); err != nil {
		return nil, err
	}
	return payload.Lists, nil
}

// CreateList posts a new named list. The resulting id is not returned;
// callers observe the new list by re-fetching MyLists.
func (c *Client) CreateList(ctx context.Context, session, name string) error {
	payload := map[string]string{"name": name}
	return c.post(ctx, "/api/my/lists", payload, session, nil)
}

// AddToList posts a list item built from a game snapshot.
func (c *Client) AddToList(ctx context.Context, session string, listID ID, item ListItem) error {
	payload := map[string]any{
		"list_id":   listID.String(),
		"game_id":   item.GameID.String(),
		"game_name": item.GameName,
	}
	if item.GameCover != "" {
		payload["game_cover"] = item.GameCover
	}
	return c.post(ctx, "/api/my/lists/add", payload, session, nil)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, session string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return &TransportError{Err: err}
	}
	return c.do(req, session, out)
}

func (c *Client) post(ctx context.Context, path string, body any, session string, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &TransportError{Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), bytes.NewReader(payload))
	if err != nil {
		return &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, session, out)
}

// do executes the request and normalizes the outcome: transport or JSON
// parse failures become TransportError, non-2xx statuses become
// RequestError carrying the backend's "error" field when present.
func (c *Client) do(req *http.Request, session string, out any) error {
	req.Header.Set("Accept", "application/json")
	if session != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: session})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<22))
	if err != nil {
		return &TransportError{Err: err}
	}

	// The body is parsed as JSON regardless of status code.
	var raw json.RawMessage
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &raw); err != nil {
			return &TransportError{Err: fmt.Errorf("decode response: %w", err)}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := genericFailure
		var payload errorEnvelope
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &payload); err == nil && strings.TrimSpace(payload.Error) != "" {
				msg = strings.TrimSpace(payload.Error)
			}
		}
		return &RequestError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(c.base.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}
