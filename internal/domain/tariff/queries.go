package tariff

import (
	"fmt"
	"strings"
)

// Search query bounds. Keywords shorter than MinKeywordLength would match
// most of the table through the LIKE patterns.
const (
	MinKeywordLength = 2
	DefaultLimit     = 100
	MaxLimit         = 1000
)

// SearchQuery carries the parameters of a keyword search over the item
// names and classification titles.
type SearchQuery struct {
	Keyword string
	Limit   int
}

// NewSearchQuery creates a SearchQuery with default values
func NewSearchQuery() *SearchQuery {
	return &SearchQuery{
		Limit: DefaultLimit,
	}
}

// Validate checks the query parameters
func (q *SearchQuery) Validate() error {
	if len([]rune(strings.TrimSpace(q.Keyword))) < MinKeywordLength {
		return fmt.Errorf("keyword must be at least %d characters", MinKeywordLength)
	}
	return nil
}

// Normalize clamps the limit into its allowed range.
func (q *SearchQuery) Normalize() {
	if q.Limit < 1 {
		q.Limit = 1
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
}
