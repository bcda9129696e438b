package catalog

// All is the sentinel filter value matching every category or country.
const All = "All"

const (
	initialLimit   = 50
	limitIncrement = 50
)

// Query is the full filter state of one catalog view. Use NewQuery; the zero
// value lacks the sentinels and the initial reveal limit.
type Query struct {
	Search        string `json:"search"`
	Category      string `json:"category"`
	Country       string `json:"country"`
	FavoritesOnly bool   `json:"favorites_only"`
	Limit         int    `json:"limit"`
}

func NewQuery() Query {
	return Query{Category: All, Country: All, Limit: initialLimit}
}

// SetSearch replaces the free-text term and resets the reveal limit.
func (q *Query) SetSearch(term string) {
	q.Search = term
	q.Limit = initialLimit
}

// SelectCategory switches the category filter. The country list is computed
// relative to the selected category, so the country selection is cleared
// rather than risk a silently empty result set.
func (q *Query) SelectCategory(name string) {
	q.Category = name
	q.Country = All
	q.Limit = initialLimit
}

// SelectCountry switches the country filter and resets the reveal limit.
func (q *Query) SelectCountry(name string) {
	q.Country = name
	q.Limit = initialLimit
}

// SetFavoritesOnly flips the favorites filter. The reveal limit is kept.
func (q *Query) SetFavoritesOnly(enabled bool) {
	q.FavoritesOnly = enabled
}

// LoadMore grows the reveal window. The limit only ever shrinks through the
// resets above.
func (q *Query) LoadMore() {
	q.Limit += limitIncrement
}
