package catalog

import (
	"testing"

	"github.com/existtv/existtv/pkg/favorites"
	"github.com/existtv/existtv/pkg/m3uparser"
)

func testChannels() []m3uparser.Channel {
	return []m3uparser.Channel{
		{ID: "1", Name: "BBC One", Category: "News", Country: "United Kingdom", URL: "http://x/1"},
		{ID: "2", Name: "BBC Two", Category: "Entertainment", Country: "United Kingdom", URL: "http://x/2"},
		{ID: "3", Name: "CNN", Category: "News", Country: "United States", URL: "http://x/3"},
		{ID: "4", Name: "RTP 1", Category: "News", Country: "Portugal", URL: "http://x/4"},
		{ID: "5", Name: "Mystery TV", Category: "Entertainment", Country: "Unknown", URL: "http://x/5"},
	}
}

func TestFilterSearch(t *testing.T) {
	c := New(testChannels())
	q := NewQuery()
	q.SetSearch("bbc")

	matched := c.Filter(q, nil)
	if len(matched) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matched))
	}
	if matched[0].Name != "BBC One" || matched[1].Name != "BBC Two" {
		t.Errorf("Unexpected matches: %v, %v", matched[0].Name, matched[1].Name)
	}
}

func TestFilterIsOrderPreserving(t *testing.T) {
	channels := testChannels()
	c := New(channels)
	q := NewQuery()
	q.SelectCategory("News")

	matched := c.Filter(q, nil)

	// The result must be a subsequence of the catalog in original order.
	pos := 0
	for _, m := range matched {
		found := false
		for ; pos < len(channels); pos++ {
			if channels[pos].ID == m.ID {
				found = true
				pos++
				break
			}
		}
		if !found {
			t.Fatalf("Channel %s out of order or missing from the source", m.ID)
		}
	}
}

func TestFilterAllClauses(t *testing.T) {
	c := New(testChannels())
	favs := favorites.NewSet([]string{"1"})

	q := NewQuery()
	q.SetSearch("bbc")
	q.SelectCategory("News")
	q.SetFavoritesOnly(true)
	// SelectCategory reset the search limit but not the term.
	q.SetSearch("bbc")

	matched := c.Filter(q, favs)
	if len(matched) != 1 || matched[0].ID != "1" {
		t.Fatalf("Expected only channel 1, got %v", matched)
	}
}

func TestFilterFavoritesOnlyEmptySet(t *testing.T) {
	c := New(testChannels())
	q := NewQuery()
	q.SetFavoritesOnly(true)

	matched := c.Filter(q, favorites.NewSet(nil))
	if len(matched) != 0 {
		t.Errorf("Expected no matches with an empty favorites set, got %d", len(matched))
	}
}

func TestFilterMemoization(t *testing.T) {
	c := New(testChannels())
	favs := favorites.NewSet(nil)
	q := NewQuery()
	q.SetSearch("bbc")

	first := c.Filter(q, favs)
	second := c.Filter(q, favs)
	if len(first) != len(second) {
		t.Fatalf("Memoized result differs: %d vs %d", len(first), len(second))
	}
	if &first[0] != &second[0] {
		t.Error("Identical input tuple should return the memoized slice")
	}

	// A favorites mutation invalidates the memo key.
	favs.Toggle("1")
	q.SetFavoritesOnly(true)
	third := c.Filter(q, favs)
	if len(third) != 1 {
		t.Errorf("Expected 1 match after favoriting, got %d", len(third))
	}
}

func TestCategoryFacets(t *testing.T) {
	c := New(testChannels())
	facets := c.CategoryFacets()

	if facets[0].Name != All || facets[0].Count != 5 {
		t.Errorf("Expected All facet with count 5, got %s/%d", facets[0].Name, facets[0].Count)
	}

	// Alphabetical after the All entry.
	if facets[1].Name != "Entertainment" || facets[2].Name != "News" {
		t.Errorf("Facets not sorted: %s, %s", facets[1].Name, facets[2].Name)
	}

	sum := 0
	for _, f := range facets[1:] {
		sum += f.Count
	}
	if sum != c.Len() {
		t.Errorf("Per-category counts sum to %d, expected %d", sum, c.Len())
	}
}

func TestCountryFacetsScopedToCategory(t *testing.T) {
	c := New(testChannels())

	news := c.CountryFacets("News")
	if news[0].Name != All || news[0].Count != 3 {
		t.Errorf("Expected All count 3 for News, got %s/%d", news[0].Name, news[0].Count)
	}
	for _, f := range news[1:] {
		if f.Name == "Unknown" {
			t.Error("Unknown must not be an enumerated country facet")
		}
	}

	all := c.CountryFacets(All)
	// The Unknown channel counts toward All but is not enumerated.
	if all[0].Count != 5 {
		t.Errorf("Expected All count 5, got %d", all[0].Count)
	}
	if len(all) != 4 {
		t.Errorf("Expected All + 3 countries, got %d facets", len(all))
	}
}

func TestCountryFacetsCarryCodes(t *testing.T) {
	c := New(testChannels())
	facets := c.CountryFacets(All)

	codes := make(map[string]string)
	for _, f := range facets[1:] {
		codes[f.Name] = f.Code
	}
	if codes["United Kingdom"] != "GB" {
		t.Errorf("Expected GB for United Kingdom, got %q", codes["United Kingdom"])
	}
	if codes["Portugal"] != "PT" {
		t.Errorf("Expected PT for Portugal, got %q", codes["Portugal"])
	}
}

func TestWindow(t *testing.T) {
	channels := testChannels()

	visible, hasMore := Window(channels, 2)
	if len(visible) != 2 || !hasMore {
		t.Errorf("Expected window of 2 with more remaining, got %d/%v", len(visible), hasMore)
	}

	visible, hasMore = Window(channels, 5)
	if len(visible) != 5 || hasMore {
		t.Errorf("Expected full window without more, got %d/%v", len(visible), hasMore)
	}

	visible, hasMore = Window(channels, 100)
	if len(visible) != 5 || hasMore {
		t.Errorf("Window must never exceed the matched length, got %d/%v", len(visible), hasMore)
	}

	visible, hasMore = Window(channels, 0)
	if len(visible) != 0 || !hasMore {
		t.Errorf("Expected empty window with more remaining, got %d/%v", len(visible), hasMore)
	}
}

func TestQueryResetCoupling(t *testing.T) {
	q := NewQuery()
	q.LoadMore()
	if q.Limit != initialLimit+limitIncrement {
		t.Fatalf("Expected limit %d, got %d", initialLimit+limitIncrement, q.Limit)
	}

	q.SetSearch("news")
	if q.Limit != initialLimit {
		t.Errorf("Search change must reset the limit, got %d", q.Limit)
	}

	q.LoadMore()
	q.SelectCountry("Portugal")
	if q.Limit != initialLimit {
		t.Errorf("Country change must reset the limit, got %d", q.Limit)
	}

	q.LoadMore()
	q.SelectCategory("News")
	if q.Limit != initialLimit {
		t.Errorf("Category change must reset the limit, got %d", q.Limit)
	}
	if q.Country != All {
		t.Errorf("Category change must reset the country to All, got %q", q.Country)
	}

	q.LoadMore()
	q.SetFavoritesOnly(true)
	if q.Limit != initialLimit+limitIncrement {
		t.Errorf("Favorites toggle must keep the limit, got %d", q.Limit)
	}
}
