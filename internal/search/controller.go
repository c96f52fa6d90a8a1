// Package search coordinates the debounced, single-flight catalog search.
//
// Each keystroke carries the full input text. At most one debounce delay is
// pending at a time: a newer keystroke cancels the pending one. A fetch
// already in flight is not cancelled; its response is discarded if a newer
// keystroke has arrived by the time it resolves. Staleness is decided by
// request order, not response-arrival order, via an explicit sequence
// counter.
package search

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gameshelf/web/internal/api"
)

// DefaultDebounce is the idle quantum before a query executes.
const DefaultDebounce = 250 * time.Millisecond

// ErrSuperseded reports that a newer keystroke replaced this attempt before
// it committed. The caller must leave the rendered results untouched.
var ErrSuperseded = errors.New("search: superseded by newer query")

// FetchFunc executes one catalog query.
type FetchFunc func(ctx context.Context, query string) ([]api.Game, error)

// Update is the outcome of a keystroke that survived to commit. A Cleared
// update empties the result view; otherwise Results replaces prior content
// in full.
type Update struct {
	Query   string
	Cleared bool
	Results []api.Game
}

// Controller owns the debounce and supersede policy for one search box.
type Controller struct {
	fetch    FetchFunc
	debounce time.Duration

	mu        sync.Mutex
	seq       uint64 // newest keystroke id
	committed uint64 // id of the last update applied to the view
	lastQuery string // last text committed to the view
	cancel    context.CancelFunc
}

// NewController builds a controller around the given fetch. A non-positive
// debounce falls back to DefaultDebounce.
func NewController(fetch FetchFunc, debounce time.Duration) *Controller {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Controller{fetch: fetch, debounce: debounce}
}

// Keystroke handles new input text and blocks through the debounce delay.
// An empty trimmed query clears immediately and schedules nothing. Calls
// cancelled by a newer keystroke return ErrSuperseded, as do fetches whose
// originating query is no longer the latest when they resolve.
func (c *Controller) Keystroke(ctx context.Context, q string) (Update, error) {
	q = strings.TrimSpace(q)

	c.mu.Lock()
	if c.cancel != nil {
		// at most one pending delay
		c.cancel()
		c.cancel = nil
	}
	c.seq++
	id := c.seq
	if q == "" {
		c.committed = id
		c.lastQuery = ""
		c.mu.Unlock()
		return Update{Cleared: true}, nil
	}
	waitCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()
	defer cancel()

	timer := time.NewTimer(c.debounce)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-waitCtx.Done():
		if err := ctx.Err(); err != nil {
			return Update{}, err
		}
		return Update{}, ErrSuperseded
	}

	c.mu.Lock()
	if id != c.seq {
		c.mu.Unlock()
		return Update{}, ErrSuperseded
	}
	c.mu.Unlock()

	// The fetch itself is not cancellable by later keystrokes; only its
	// effect is.
	results, err := c.fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if id != c.seq || id < c.committed {
		return Update{}, ErrSuperseded
	}
	c.committed = id
	c.lastQuery = q
	if err != nil {
		return Update{}, err
	}
	return Update{Query: q, Results: results}, nil
}

// LastQuery returns the last text committed to the view.
func (c *Controller) LastQuery() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastQuery
}
