package viewmodel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gameshelf/web/internal/api"
)

func TestNewCardRatingPlaceholder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rating api.Rating
		want   string
	}{
		{name: "absent", rating: api.Rating{}, want: "—"},
		{name: "zero", rating: api.Rating{Value: 0, Valid: true}, want: "—"},
		{name: "present", rating: api.Rating{Value: 4.47, Valid: true}, want: "4.5"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card := NewCard(api.Game{Name: "Portal", Rating: tc.rating})
			assert.Equal(t, tc.want, card.Score)
			assert.NotEqual(t, "0.0", card.Score)
		})
	}
}

func TestNewCardYear(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2013", NewCard(api.Game{Released: "2013-09-17"}).Year)
	assert.Equal(t, "—", NewCard(api.Game{}).Year)
	assert.Equal(t, "—", NewCard(api.Game{Released: "soon"}).Year)
}

func TestStarGlyphs(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 5; n++ {
		got := StarGlyphs(n)
		runes := []rune(got)
		require.Len(t, runes, 5, "n=%d", n)
		assert.Equal(t, n, strings.Count(got, "★"), "n=%d", n)
		assert.Equal(t, 5-n, strings.Count(got, "☆"), "n=%d", n)
	}
}

func TestNewDetailSubline(t *testing.T) {
	t.Parallel()

	g := api.Game{
		Released:   "2015-05-18",
		Developers: []api.Developer{{Name: "CD Projekt Red"}, {Name: "Other"}},
	}
	assert.Equal(t, "2015 • CD Projekt Red", NewDetail(g).Subline)

	assert.Equal(t, "— • Unknown studio", NewDetail(api.Game{}).Subline)
}

func TestNewDetailDescriptionFallsBackToStrippedHTML(t *testing.T) {
	t.Parallel()

	g := api.Game{Description: "<p>An <b>epic</b> tale.<script>alert(1)</script></p>"}
	d := NewDetail(g)
	assert.Equal(t, "An epic tale.", d.Description)

	g.DescriptionRaw = "Plain text wins."
	assert.Equal(t, "Plain text wins.", NewDetail(g).Description)
}

func TestRatingBarsDeterministicAndClamped(t *testing.T) {
	t.Parallel()

	r := api.Rating{Value: 4.4, Valid: true}
	first := RatingBars(r)
	second := RatingBars(r)
	require.Len(t, first, 10)
	assert.Equal(t, first, second)
	for i, h := range first {
		assert.GreaterOrEqual(t, h, 10, "bar %d", i)
		assert.LessOrEqual(t, h, 90, "bar %d", i)
	}
}

func TestRenderBodySanitizesMarkup(t *testing.T) {
	t.Parallel()

	html := string(RenderBody("**bold** <script>alert(1)</script>"))
	assert.Contains(t, html, "<strong>bold</strong>")
	assert.NotContains(t, html, "<script>")
}

func TestNewReviewEntryClampsStars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "★☆☆☆☆", NewReviewEntry(api.Review{Rating: -3}).Stars)
	assert.Equal(t, "★★★★★", NewReviewEntry(api.Review{Rating: 12}).Stars)
}
