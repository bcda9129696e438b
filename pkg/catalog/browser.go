package catalog

import (
	"sync"

	"github.com/existtv/existtv/pkg/favorites"
	"github.com/existtv/existtv/pkg/logger"
	"github.com/existtv/existtv/pkg/m3uparser"
)

// State is one immutable snapshot of a browse session: the query, both facet
// lists, the visible window, and the matched total.
type State struct {
	Query      Query               `json:"query"`
	Categories []Facet             `json:"categories"`
	Countries  []CountryFacet      `json:"countries"`
	Channels   []m3uparser.Channel `json:"channels"`
	Matched    int                 `json:"matched"`
	HasMore    bool                `json:"has_more"`
}

// Browser owns the query state, the favorites set, and the loaded catalog
// for one viewing session. Each event runs to completion under the lock, so
// the filter engine itself stays a synchronous full recompute.
type Browser struct {
	mu      sync.Mutex
	catalog *Catalog
	query   Query
	favs    *favorites.Set
	store   favorites.Store
}

// NewBrowser loads the persisted favorites once at startup. A corrupt or
// unreadable favorites blob degrades to an empty set.
func NewBrowser(c *Catalog, store favorites.Store) *Browser {
	b := &Browser{
		catalog: c,
		query:   NewQuery(),
		favs:    favorites.NewSet(nil),
		store:   store,
	}
	if store != nil {
		ids, err := store.Load()
		if err != nil {
			logger.Warnf("Favorites unavailable, starting empty: %v", err)
		} else {
			b.favs = favorites.NewSet(ids)
		}
	}
	return b
}

// Replace swaps in a freshly parsed catalog, discarding the old channels
// wholesale. Query state survives a refetch; channel ids may not (they are
// position-dependent), which is an accepted quirk of the id scheme.
func (b *Browser) Replace(c *Catalog) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.catalog = c
}

func (b *Browser) SetSearch(term string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.query.SetSearch(term)
}

func (b *Browser) SelectCategory(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.query.SelectCategory(name)
}

func (b *Browser) SelectCountry(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.query.SelectCountry(name)
}

func (b *Browser) SetFavoritesOnly(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.query.SetFavoritesOnly(enabled)
}

func (b *Browser) LoadMore() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.query.LoadMore()
}

// ToggleFavorite flips a channel's favorite flag and writes the whole set
// back to the store before returning. Reports whether the channel is now a
// favorite.
func (b *Browser) ToggleFavorite(id string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	on := b.favs.Toggle(id)
	if b.store != nil {
		if err := b.store.Save(b.favs.IDs()); err != nil {
			return on, err
		}
	}
	return on, nil
}

func (b *Browser) IsFavorite(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.favs.Has(id)
}

func (b *Browser) Favorites() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.favs.IDs()
}

// Matches returns every channel satisfying the query, ignoring the reveal
// window. Backs exports that need the full matched list.
func (b *Browser) Matches(q Query) []m3uparser.Channel {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.catalog.Filter(q, b.favs)
}

func (b *Browser) Find(id string) (m3uparser.Channel, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.catalog.Find(id)
}

func (b *Browser) Categories() []Facet {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.catalog.CategoryFacets()
}

func (b *Browser) Countries(category string) []CountryFacet {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.catalog.CountryFacets(category)
}

func (b *Browser) Query() Query {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.query
}

// State recomputes the session snapshot from the current query.
func (b *Browser) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.evaluate(b.query)
}

// Evaluate computes a snapshot for an arbitrary query without touching the
// session state. Backs the stateless API surface.
func (b *Browser) Evaluate(q Query) State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.evaluate(q)
}

func (b *Browser) evaluate(q Query) State {
	matched := b.catalog.Filter(q, b.favs)
	visible, hasMore := Window(matched, q.Limit)
	return State{
		Query:      q,
		Categories: b.catalog.CategoryFacets(),
		Countries:  b.catalog.CountryFacets(q.Category),
		Channels:   visible,
		Matched:    len(matched),
		HasMore:    hasMore,
	}
}
