package api

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ID tolerates both string and integer identifiers in backend payloads and
// normalizes them to a stable string form.
type ID string

// UnmarshalJSON accepts a JSON string, number, or null.
func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*id = ""
		return nil
	}
	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(v))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Rating is a 0-5 score with tagged presence. Absent, null, and non-numeric
// payload values all decode to an invalid rating rather than an error, so
// mappers stay total over partial records.
type Rating struct {
	Value float64
	Valid bool
}

// UnmarshalJSON never fails: junk values simply leave the rating invalid.
func (r *Rating) UnmarshalJSON(b []byte) error {
	r.Value, r.Valid = 0, false
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return nil
		}
		s = strings.TrimSpace(v)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	r.Value, r.Valid = f, true
	return nil
}

// Developer is a studio credit on a game record. The first entry is the
// primary developer.
type Developer struct {
	Name string `json:"name"`
}

// Game mirrors a catalog record as delivered by the backend. Every field
// beyond the identifier may be absent.
type Game struct {
	ID              ID          `json:"id"`
	Name            string      `json:"name"`
	Released        string      `json:"released,omitempty"`
	Rating          Rating      `json:"rating,omitempty"`
	BackgroundImage string      `json:"background_image,omitempty"`
	Developers      []Developer `json:"developers,omitempty"`
	DescriptionRaw  string      `json:"description_raw,omitempty"`
	Description     string      `json:"description,omitempty"`
	Added           int64       `json:"added,omitempty"`
}

// PrimaryDeveloper returns the first studio credit, or empty when none.
func (g Game) PrimaryDeveloper() string {
	if len(g.Developers) == 0 {
		return ""
	}
	return strings.TrimSpace(g.Developers[0].Name)
}

// Review is a user review for one game. The game association is carried by
// the URL the review was fetched from, not by the record itself.
type Review struct {
	Username  string `json:"username"`
	Rating    int    `json:"rating"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ListItem is a snapshot of a game stored inside a user list.
type ListItem struct {
	GameID    ID     `json:"game_id"`
	GameName  string `json:"game_name"`
	GameCover string `json:"game_cover,omitempty"`
	AddedAt   string `json:"added_at,omitempty"`
}

// List is a user-owned, named collection of list items in backend order.
type List struct {
	ID    ID         `json:"id"`
	Name  string     `json:"name"`
	Items []ListItem `json:"items"`
}

// Response envelopes used by the backend surface.
type gamesEnvelope struct {
	Results []Game `json:"results"`
}

type reviewsEnvelope struct {
	Reviews []Review `json:"reviews"`
}

type listsEnvelope struct {
	Lists []List `json:"lists"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}
