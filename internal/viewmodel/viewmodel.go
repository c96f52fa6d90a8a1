// Package viewmodel maps raw backend records into render-ready view models.
// Every mapper is pure and total over partially-absent input: missing fields
// degrade to placeholders, never to panics.
//
// Mappers return plain strings; contextual escaping is left to
// html/template at render time. The only pre-rendered HTML leaving this
// package is sanitized first.
package viewmodel

import (
	"bytes"
	"html/template"
	"math"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/gameshelf/web/internal/api"
	"github.com/gameshelf/web/internal/format"
)

const (
	starFilled = "★"
	starEmpty  = "☆"
)

var (
	ugcPolicy   = bluemonday.UGCPolicy()
	stripPolicy = bluemonday.StrictPolicy()
	markdown    = goldmark.New()
)

// Card is the view model for one catalog tile.
type Card struct {
	ID    string
	Title string
	Year  string
	Score string
	Image string
}

// NewCard shapes a game record for the card grid. Absent fields render as
// placeholders; a zero or absent rating is "no rating", never "0.0".
func NewCard(g api.Game) Card {
	return Card{
		ID:    g.ID.String(),
		Title: strings.TrimSpace(g.Name),
		Year:  format.Year(g.Released),
		Score: format.Score(g.Rating.Value, g.Rating.Valid),
		Image: strings.TrimSpace(g.BackgroundImage),
	}
}

// NewCards maps a result page in order.
func NewCards(games []api.Game) []Card {
	cards := make([]Card, 0, len(games))
	for _, g := range games {
		cards = append(cards, NewCard(g))
	}
	return cards
}

// Detail is the view model for the game detail page.
type Detail struct {
	Card
	Subline     string
	Description string
	Followers   string
	Backlogs    string
	Bars        []int
}

// NewDetail shapes a full game record for the detail page. The follower and
// backlog counters are presentational flourishes derived from the
// popularity counter; they carry no semantic meaning.
func NewDetail(g api.Game) Detail {
	studio := g.PrimaryDeveloper()
	if studio == "" {
		studio = "Unknown studio"
	}
	return Detail{
		Card:        NewCard(g),
		Subline:     format.Year(g.Released) + " • " + studio,
		Description: description(g),
		Followers:   format.Count(3*g.Added + 120),
		Backlogs:    format.Count(g.Added/2 + 37),
		Bars:        RatingBars(g.Rating),
	}
}

// description prefers the plain-text body and falls back to stripping the
// HTML variant.
func description(g api.Game) string {
	if raw := strings.TrimSpace(g.DescriptionRaw); raw != "" {
		return raw
	}
	return strings.TrimSpace(stripPolicy.Sanitize(g.Description))
}

// StarGlyphs renders n filled stars followed by 5-n empty ones. The caller
// must clamp n to [1,5] first; behavior outside that range is undefined.
func StarGlyphs(n int) string {
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		if i <= n {
			b.WriteString(starFilled)
		} else {
			b.WriteString(starEmpty)
		}
	}
	return b.String()
}

// RatingBars produces ten decorative bar heights in [10,90] from the rating.
// The shape is deterministic so repeated renders of the same record match.
func RatingBars(r api.Rating) []int {
	score := 0.0
	if r.Valid {
		score = r.Value
	}
	bars := make([]int, 10)
	for i := range bars {
		h := score*12 + 30*math.Sin(float64(i)*1.3)
		if h < 10 {
			h = 10
		}
		if h > 90 {
			h = 90
		}
		bars[i] = int(math.Round(h))
	}
	return bars
}

// ReviewEntry is the view model for one published review.
type ReviewEntry struct {
	Username string
	Stars    string
	Body     template.HTML
}

// NewReviewEntry shapes a review for display. The body is user-entered
// markup: it is rendered as markdown and sanitized before it is marked safe.
func NewReviewEntry(r api.Review) ReviewEntry {
	n := r.Rating
	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	return ReviewEntry{
		Username: strings.TrimSpace(r.Username),
		Stars:    StarGlyphs(n),
		Body:     RenderBody(r.Body),
	}
}

// NewReviewEntries maps reviews in delivery order.
func NewReviewEntries(reviews []api.Review) []ReviewEntry {
	out := make([]ReviewEntry, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, NewReviewEntry(r))
	}
	return out
}

// RenderBody converts free-text review markup to sanitized HTML.
func RenderBody(body string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(body))
	}
	return template.HTML(ugcPolicy.SanitizeBytes(buf.Bytes()))
}
