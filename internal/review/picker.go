// Package review holds the star-rating picker state machine and the publish
// action for the review composer.
package review

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gameshelf/web/internal/api"
)

const (
	// MinBodyLength is the minimum trimmed review length accepted before
	// any network call is made.
	MinBodyLength = 3

	defaultSelection = 5
)

// Publisher is the subset of the API client the picker publishes through.
type Publisher interface {
	PublishReview(ctx context.Context, session string, id api.ID, rating int, body string) error
}

// Picker is the 1-5 star selection state. The initial selection is 5 stars.
type Picker struct {
	selected int
}

// NewPicker returns a picker in its initial state.
func NewPicker() *Picker {
	return &Picker{selected: defaultSelection}
}

// PickerFrom restores a picker from a serialized selection, e.g. a form
// field round-tripped through the page. Unparseable or out-of-range values
// reset to the initial state.
func PickerFrom(value string) *Picker {
	p := NewPicker()
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		p.Select(n)
	}
	return p
}

// Selected returns the current selection.
func (p *Picker) Selected() int { return p.selected }

// Select sets the selection to star i. Values outside [1,5] are ignored and
// leave the state unchanged.
func (p *Picker) Select(i int) {
	if i < 1 || i > 5 {
		return
	}
	p.selected = i
}

// Stars reports, for each of the five buttons, whether it renders filled
// (up to and including the selected index).
func (p *Picker) Stars() [5]bool {
	var out [5]bool
	for i := range out {
		out[i] = i < p.selected
	}
	return out
}

// Publish validates the body and posts the review. A trimmed body shorter
// than MinBodyLength is rejected with a ValidationError before any network
// call. Failure leaves the picker state unchanged, so publish is retryable.
func (p *Picker) Publish(ctx context.Context, pub Publisher, session string, gameID api.ID, body string) error {
	body = strings.TrimSpace(body)
	if utf8.RuneCountInString(body) < MinBodyLength {
		return &api.ValidationError{Message: "Review text must be at least 3 characters."}
	}
	return pub.PublishReview(ctx, session, gameID, p.selected, body)
}
