/*
Copyright © 2025 ExistTV Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

// Package catalog filters a parsed channel sequence and derives the facet
// projections that drive the filter UI. Every projection is a pure,
// order-preserving recomputation over the current inputs; the only cache is
// a memo of the last filter call, keyed on its full input tuple.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/existtv/existtv/pkg/countries"
	"github.com/existtv/existtv/pkg/favorites"
	"github.com/existtv/existtv/pkg/m3uparser"
)

// Facet is a distinct-value projection with its channel count.
type Facet struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CountryFacet adds the alpha-2 code used for flag icons; empty when the
// reference table cannot resolve the name.
type CountryFacet struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Code  string `json:"code"`
}

type filterKey struct {
	search        string
	category      string
	country       string
	favoritesOnly bool
	favRevision   uint64
}

// Catalog is an immutable, ordered channel set with derived projections.
type Catalog struct {
	channels []m3uparser.Channel

	mu      sync.Mutex
	memoOK  bool
	memoKey filterKey
	memoOut []m3uparser.Channel
}

func New(channels []m3uparser.Channel) *Catalog {
	return &Catalog{channels: channels}
}

// Channels returns the full catalog in source order.
func (c *Catalog) Channels() []m3uparser.Channel {
	return c.channels
}

func (c *Catalog) Len() int {
	return len(c.channels)
}

// Filter returns the channels matching every clause of the query, in the
// catalog's original order: a stable filter, never a sort. The result is
// memoized on the exact input tuple, including the favorites revision.
func (c *Catalog) Filter(q Query, favs *favorites.Set) []m3uparser.Channel {
	key := filterKey{
		search:        strings.ToLower(q.Search),
		category:      q.Category,
		country:       q.Country,
		favoritesOnly: q.FavoritesOnly,
		favRevision:   favs.Revision(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.memoOK && key == c.memoKey {
		return c.memoOut
	}

	matched := make([]m3uparser.Channel, 0, 64)
	for _, ch := range c.channels {
		if key.search != "" && !strings.Contains(strings.ToLower(ch.Name), key.search) {
			continue
		}
		if q.Category != All && ch.Category != q.Category {
			continue
		}
		if q.Country != All && ch.Country != q.Country {
			continue
		}
		if q.FavoritesOnly && !favs.Has(ch.ID) {
			continue
		}
		matched = append(matched, ch)
	}

	c.memoOK = true
	c.memoKey = key
	c.memoOut = matched
	return matched
}

// Find looks a channel up by id with a linear scan.
func (c *Catalog) Find(id string) (m3uparser.Channel, bool) {
	for _, ch := range c.channels {
		if ch.ID == id {
			return ch, true
		}
	}
	return m3uparser.Channel{}, false
}

// CategoryFacets enumerates the distinct categories with their counts,
// sorted alphabetically and prefixed with an "All" entry counting the whole
// catalog. Computed over the entire catalog, independent of any country
// selection.
func (c *Catalog) CategoryFacets() []Facet {
	counts := make(map[string]int)
	for _, ch := range c.channels {
		counts[ch.Category]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	facets := make([]Facet, 0, len(names)+1)
	facets = append(facets, Facet{Name: All, Count: len(c.channels)})
	for _, name := range names {
		facets = append(facets, Facet{Name: name, Count: counts[name]})
	}
	return facets
}

// CountryFacets enumerates the distinct countries within the selected
// category (or the full catalog for "All"). The "Unknown" sentinel is not a
// selectable filter value and is left out of the enumeration, but its
// channels still count toward the "All" entry.
func (c *Catalog) CountryFacets(selectedCategory string) []CountryFacet {
	narrowed := 0
	counts := make(map[string]int)
	for _, ch := range c.channels {
		if selectedCategory != All && ch.Category != selectedCategory {
			continue
		}
		narrowed++
		if ch.Country != m3uparser.UnknownCountry {
			counts[ch.Country]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	facets := make([]CountryFacet, 0, len(names)+1)
	facets = append(facets, CountryFacet{Name: All, Count: narrowed})
	for _, name := range names {
		code, _ := countries.Code(name)
		facets = append(facets, CountryFacet{Name: name, Count: counts[name], Code: code})
	}
	return facets
}

// Window exposes the first limit matched channels and reports whether more
// remain. It bounds how much is rendered at once and never changes which
// channels are considered matched.
func Window(matched []m3uparser.Channel, limit int) ([]m3uparser.Channel, bool) {
	if limit < 0 {
		limit = 0
	}
	if limit >= len(matched) {
		return matched, false
	}
	return matched[:limit], true
}
