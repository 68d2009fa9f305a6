package core

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/volatiletech/null/v8"
)

// Grade is a backend grade. Depending on the endpoint it arrives as a letter ("A", "B+")
// or as a 0-100 score (92, "92").
type Grade struct {
	Letter null.String
	Score  null.Float64
}

func (g Grade) IsZero() bool { return !g.Letter.Valid && !g.Score.Valid }

func (g *Grade) UnmarshalJSON(data []byte) error {
	*g = Grade{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var score float64
	if err := json.Unmarshal(data, &score); err == nil {
		g.Score = null.Float64From(score)
		return nil
	}
	var s string
	if json.Unmarshal(data, &s) != nil {
		return nil // other shapes are dropped rather than failing the whole record
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if score, err := strconv.ParseFloat(s, 64); err == nil {
		g.Score = null.Float64From(score)
		return nil
	}
	g.Letter = null.StringFrom(s)
	return nil
}

func (g Grade) MarshalJSON() ([]byte, error) {
	switch {
	case g.Letter.Valid:
		return json.Marshal(g.Letter.String)
	case g.Score.Valid:
		return json.Marshal(g.Score.Float64)
	}
	return []byte("null"), nil
}
