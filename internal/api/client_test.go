package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := New(srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestTrendingDecodesResults(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/trending" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"id":3498,"name":"GTA V","released":"2013-09-17","rating":4.47}]}`))
	})

	games, err := client.Trending(context.Background())
	if err != nil {
		t.Fatalf("Trending: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if games[0].ID != "3498" {
		t.Fatalf("expected numeric id coerced to string, got %q", games[0].ID)
	}
	if !games[0].Rating.Valid || games[0].Rating.Value != 4.47 {
		t.Fatalf("expected rating 4.47, got %+v", games[0].Rating)
	}
}

func TestIDAcceptsStringAndNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want ID
	}{
		{name: "number", in: `{"id":42}`, want: "42"},
		{name: "string", in: `{"id":"slug-42"}`, want: "slug-42"},
		{name: "null", in: `{"id":null}`, want: ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var g Game
			if err := json.Unmarshal([]byte(tc.in), &g); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if g.ID != tc.want {
				t.Fatalf("expected id %q, got %q", tc.want, g.ID)
			}
		})
	}
}

func TestRatingToleratesJunk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		valid bool
		value float64
	}{
		{name: "absent", in: `{}`, valid: false},
		{name: "null", in: `{"rating":null}`, valid: false},
		{name: "non-numeric", in: `{"rating":"great"}`, valid: false},
		{name: "quoted number", in: `{"rating":"4.5"}`, valid: true, value: 4.5},
		{name: "zero", in: `{"rating":0}`, valid: true, value: 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var g Game
			if err := json.Unmarshal([]byte(tc.in), &g); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if g.Rating.Valid != tc.valid {
				t.Fatalf("expected valid=%v, got %+v", tc.valid, g.Rating)
			}
			if tc.valid && g.Rating.Value != tc.value {
				t.Fatalf("expected value %v, got %v", tc.value, g.Rating.Value)
			}
		})
	}
}

func TestRequestErrorCarriesBackendMessage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"forbidden"}`))
	})

	_, err := client.Trending(context.Background())
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Status != http.StatusForbidden || reqErr.Message != "forbidden" {
		t.Fatalf("unexpected error payload: %+v", reqErr)
	}
}

func TestRequestErrorGenericWhenBodyHasNoErrorField(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"detail":"upstream"}`))
	})

	_, err := client.Trending(context.Background())
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Message != genericFailure {
		t.Fatalf("expected generic message, got %q", reqErr.Message)
	}
}

func TestMalformedJSONIsTransportError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})

	_, err := client.Trending(context.Background())
	var transErr *TransportError
	if !errors.As(err, &transErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestMyListsForwardsSessionCookie(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("session")
		if err != nil || c.Value != "sess-token" {
			t.Errorf("expected forwarded session cookie, got %v", r.Cookies())
		}
		_, _ = w.Write([]byte(`{"lists":[{"id":1,"name":"Play Later","items":[]}]}`))
	})

	lists, err := client.MyLists(context.Background(), "sess-token")
	if err != nil {
		t.Fatalf("MyLists: %v", err)
	}
	if len(lists) != 1 || lists[0].Name != "Play Later" || lists[0].ID != "1" {
		t.Fatalf("unexpected lists: %+v", lists)
	}
}

func TestAddToListPostsSnapshot(t *testing.T) {
	t.Parallel()

	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/my/lists/add" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	item := ListItem{GameID: "3498", GameName: "GTA V", GameCover: "https://img/c.jpg"}
	if err := client.AddToList(context.Background(), "sess", "7", item); err != nil {
		t.Fatalf("AddToList: %v", err)
	}
	if got["list_id"] != "7" || got["game_id"] != "3498" || got["game_name"] != "GTA V" || got["game_cover"] != "https://img/c.jpg" {
		t.Fatalf("unexpected payload: %v", got)
	}
}

func TestPublishReviewHitsGameEndpoint(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/reviews/3498" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var payload struct {
			Rating int    `json:"rating"`
			Body   string `json:"body"`
		}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		if payload.Rating != 4 || payload.Body != "solid" {
			t.Errorf("unexpected payload: %+v", payload)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	if err := client.PublishReview(context.Background(), "sess", "3498", 4, "solid"); err != nil {
		t.Fatalf("PublishReview: %v", err)
	}
}
