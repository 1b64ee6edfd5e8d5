//go:build unit
// +build unit

package tariff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSearchQuery_Defaults(t *testing.T) {
	query := NewSearchQuery()

	assert.Equal(t, DefaultLimit, query.Limit)
	assert.Empty(t, query.Keyword)
}

func TestSearchQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		wantErr bool
	}{
		{"ascii keyword", "engine", false},
		{"two runes", "船外", false},
		{"single rune", "船", true},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"padded single rune", " 船 ", true},
		{"padded two runes", " 船外 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := NewSearchQuery()
			query.Keyword = tt.keyword

			err := query.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchQuery_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"within range", 50, 50},
		{"lower bound", 1, 1},
		{"upper bound", MaxLimit, MaxLimit},
		{"zero clamps to one", 0, 1},
		{"negative clamps to one", -5, 1},
		{"above max clamps", MaxLimit + 1, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := &SearchQuery{Keyword: "船外機", Limit: tt.limit}
			query.Normalize()

			assert.Equal(t, tt.want, query.Limit)
		})
	}
}
