package core

import (
	"math"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"
)

func TestFirstString(t *testing.T) {
	tests := []struct {
		name string
		vals []null.String
		want string
	}{
		{name: "none", want: ""},
		{name: "all null", vals: []null.String{{}, {}}, want: ""},
		{name: "skips blanks", vals: []null.String{null.StringFrom("  "), null.StringFrom(" b ")}, want: "b"},
		{name: "first wins", vals: []null.String{null.StringFrom("a"), null.StringFrom("b")}, want: "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstString(tt.vals...))
		})
	}
	assert.Equal(t, "def", StringOr(null.StringFrom("\t"), "def"))
	assert.Equal(t, "Ethics", CleanString("  Ethics "))
	assert.Equal(t, "ethics", CleanString("  Ethics ", true))
}

func TestParseDate(t *testing.T) {
	kinshasa := time.FixedZone("", 3600)
	tests := []struct {
		in     string
		want   time.Time
		wantOk bool
	}{
		{in: "2025-08-28T09:30:00Z", want: time.Date(2025, 8, 28, 9, 30, 0, 0, time.UTC), wantOk: true},
		{in: "2025-08-28T09:30:00+01:00", want: time.Date(2025, 8, 28, 9, 30, 0, 0, kinshasa), wantOk: true},
		{in: "2025-08-28T09:30:00.123", want: time.Date(2025, 8, 28, 9, 30, 0, 123000000, time.UTC), wantOk: true},
		{in: "2025-08-28 09:30:00", want: time.Date(2025, 8, 28, 9, 30, 0, 0, time.UTC), wantOk: true},
		{in: " 2025-08-28 ", want: time.Date(2025, 8, 28, 0, 0, 0, 0, time.UTC), wantOk: true},
		{in: ""},
		{in: "28/08/2025"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.Equal(t, tt.wantOk, ok)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
			if ok {
				_, gotOff := got.Zone()
				_, wantOff := tt.want.Zone()
				assert.Equal(t, wantOff, gotOff)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{in: -5, want: 0},
		{in: 0, want: 0},
		{in: 45.5, want: 46},
		{in: 99.4, want: 99},
		{in: 140, want: 100},
		{in: math.NaN(), want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percent(tt.in), "Percent(%v)", tt.in)
	}
}

func TestValidateNullFields(t *testing.T) {
	type payload struct {
		Title null.String  `json:"title" validate:"omitempty,notblank"`
		Score null.Float64 `json:"score" validate:"omitempty,gte=0,lte=100"`
	}

	assert.NoError(t, Validate.Struct(payload{}), "absent values are skipped")
	assert.NoError(t, Validate.Struct(payload{Score: null.Float64From(70)}))

	err := Validate.Struct(payload{Score: null.Float64From(120)})
	if assert.Error(t, err) {
		assert.Contains(t, TranslateErrors(err.(validator.ValidationErrors)), "score")
	}
}
