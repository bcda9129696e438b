package m3uparser

import (
	"os"
	"strings"
	"testing"
)

func TestParseFixture(t *testing.T) {
	data, err := os.ReadFile("testdata/playlist.m3u")
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}

	channels := Parse(string(data), GroupByCategory)

	// Broken scheme, dangling metadata and the orphan URL are dropped.
	expectedCount := 4
	if len(channels) != expectedCount {
		t.Fatalf("Unexpected number of channels. Expected: %d, Got: %d", expectedCount, len(channels))
	}

	first := channels[0]
	if first.Name != "BBC One" {
		t.Errorf("Unexpected name. Expected: %s, Got: %s", "BBC One", first.Name)
	}
	if first.Category != "News" {
		t.Errorf("Unexpected category. Expected: %s, Got: %s", "News", first.Category)
	}
	if first.Country != "United Kingdom" {
		t.Errorf("Unexpected country. Expected: %s, Got: %s", "United Kingdom", first.Country)
	}
	if first.Logo != "http://example.com/bbc.png" {
		t.Errorf("Unexpected logo. Expected: %s, Got: %s", "http://example.com/bbc.png", first.Logo)
	}
	if first.URL != "http://example.com/bbc.m3u8" {
		t.Errorf("Unexpected URL. Expected: %s, Got: %s", "http://example.com/bbc.m3u8", first.URL)
	}

	// Quoted comma in the group title must not truncate the attribute.
	if channels[2].Category != "Sports, Extra" {
		t.Errorf("Unexpected category. Expected: %s, Got: %s", "Sports, Extra", channels[2].Category)
	}

	for i, ch := range channels {
		if ch.Name == "" {
			t.Errorf("Channel %d has an empty name", i)
		}
		if !strings.HasPrefix(ch.URL, "http") {
			t.Errorf("Channel %d has a non-HTTP URL: %s", i, ch.URL)
		}
		if ch.Category == "" || ch.Country == "" {
			t.Errorf("Channel %d is missing category or country", i)
		}
	}
}

func TestParseScenarioBBC(t *testing.T) {
	content := "#EXTINF:-1 tvg-id=\"BBC.uk\" tvg-logo=\"http://x/logo.png\" group-title=\"News\",BBC One\nhttp://stream/bbc.m3u8"

	channels := Parse(content, GroupByCategory)
	if len(channels) != 1 {
		t.Fatalf("Expected 1 channel, got %d", len(channels))
	}

	ch := channels[0]
	if ch.Name != "BBC One" {
		t.Errorf("Unexpected name. Expected: %s, Got: %s", "BBC One", ch.Name)
	}
	if ch.Category != "News" {
		t.Errorf("Unexpected category. Expected: %s, Got: %s", "News", ch.Category)
	}
	if ch.Country != "United Kingdom" {
		t.Errorf("Unexpected country. Expected: %s, Got: %s", "United Kingdom", ch.Country)
	}
	if ch.Logo != "http://x/logo.png" {
		t.Errorf("Unexpected logo. Expected: %s, Got: %s", "http://x/logo.png", ch.Logo)
	}
}

func TestParseDanglingMetadata(t *testing.T) {
	content := "#EXTINF:-1,First\n#EXTINF:-1,Second\nhttp://example.com/second.m3u8"

	channels := Parse(content, GroupByCategory)
	if len(channels) != 1 {
		t.Fatalf("Expected 1 channel, got %d", len(channels))
	}
	if channels[0].Name != "Second" {
		t.Errorf("Unexpected name. Expected: %s, Got: %s", "Second", channels[0].Name)
	}
}

func TestParseStrayURL(t *testing.T) {
	content := "http://example.com/stray.m3u8\n#EXTINF:-1,Channel\nhttp://example.com/ok.m3u8\nhttp://example.com/extra.m3u8"

	channels := Parse(content, GroupByCategory)
	if len(channels) != 1 {
		t.Fatalf("Expected 1 channel, got %d", len(channels))
	}
	if channels[0].URL != "http://example.com/ok.m3u8" {
		t.Errorf("Unexpected URL. Expected: %s, Got: %s", "http://example.com/ok.m3u8", channels[0].URL)
	}
}

func TestParseRejectsNonHTTPSchemes(t *testing.T) {
	content := "#EXTINF:-1,Channel\nrtsp://example.com/stream\n#EXTINF:-1,Other\nhttpsomething\n"

	channels := Parse(content, GroupByCategory)
	if len(channels) != 0 {
		t.Errorf("Expected no channels, got %d", len(channels))
	}
}

func TestParseCountryPrecedence(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		grouping Grouping
		want     string
	}{
		{
			"explicit attribute wins over id suffix",
			"#EXTINF:-1 tvg-id=\"Chan.uk\" tvg-country=\"Portugal\",Chan\nhttp://x/1.m3u8",
			GroupByCategory,
			"Portugal",
		},
		{
			"id suffix resolved through the reference table",
			"#EXTINF:-1 tvg-id=\"Chan.de\",Chan\nhttp://x/2.m3u8",
			GroupByCategory,
			"Germany",
		},
		{
			"id suffix before an @ segment",
			"#EXTINF:-1 tvg-id=\"Chan.fr@SD\",Chan\nhttp://x/3.m3u8",
			GroupByCategory,
			"France",
		},
		{
			"unrecognized id suffix falls back to the sentinel",
			"#EXTINF:-1 tvg-id=\"Chan.zx\",Chan\nhttp://x/4.m3u8",
			GroupByCategory,
			UnknownCountry,
		},
		{
			"group label overrides in country mode",
			"#EXTINF:-1 tvg-id=\"Chan.de\" group-title=\"Portugal\",Chan\nhttp://x/5.m3u8",
			GroupByCountry,
			"Portugal",
		},
		{
			"no metadata at all falls back to the sentinel",
			"#EXTINF:-1,Chan\nhttp://x/6.m3u8",
			GroupByCategory,
			UnknownCountry,
		},
	}

	for _, c := range cases {
		channels := Parse(c.content, c.grouping)
		if len(channels) != 1 {
			t.Errorf("%s: expected 1 channel, got %d", c.name, len(channels))
			continue
		}
		if channels[0].Country != c.want {
			t.Errorf("%s: expected country %q, got %q", c.name, c.want, channels[0].Country)
		}
	}
}

func TestParseGroupingModes(t *testing.T) {
	content := "#EXTINF:-1 group-title=\"News\",Chan\nhttp://x/1.m3u8"

	byCategory := Parse(content, GroupByCategory)
	if byCategory[0].Category != "News" {
		t.Errorf("Category mode: expected category News, got %q", byCategory[0].Category)
	}
	if byCategory[0].Country != UnknownCountry {
		t.Errorf("Category mode: expected country sentinel, got %q", byCategory[0].Country)
	}

	byCountry := Parse(content, GroupByCountry)
	if byCountry[0].Country != "News" {
		t.Errorf("Country mode: expected country News, got %q", byCountry[0].Country)
	}
	if byCountry[0].Category != DefaultCategory {
		t.Errorf("Country mode: expected category sentinel, got %q", byCountry[0].Category)
	}
}

func TestParseMissingNameUsesSentinel(t *testing.T) {
	content := "#EXTINF:-1 tvg-logo=\"http://x/l.png\"\nhttp://x/1.m3u8"

	channels := Parse(content, GroupByCategory)
	if len(channels) != 1 {
		t.Fatalf("Expected 1 channel, got %d", len(channels))
	}
	if channels[0].Name != UnknownChannelName {
		t.Errorf("Expected sentinel name %q, got %q", UnknownChannelName, channels[0].Name)
	}
}

func TestChannelIDPositionSuffix(t *testing.T) {
	content := "#EXTINF:-1,First\nhttp://example.com/same.m3u8\n#EXTINF:-1,Second\nhttp://example.com/same.m3u8"

	channels := Parse(content, GroupByCategory)
	if len(channels) != 2 {
		t.Fatalf("Expected 2 channels, got %d", len(channels))
	}
	if channels[0].ID == channels[1].ID {
		t.Errorf("Duplicate stream URLs must still get distinct ids, got %q twice", channels[0].ID)
	}
	if channels[0].ID == "" || channels[1].ID == "" {
		t.Error("Channel ids must not be empty")
	}
}

func TestParseEmptyInput(t *testing.T) {
	if channels := Parse("", GroupByCategory); len(channels) != 0 {
		t.Errorf("Expected no channels for empty input, got %d", len(channels))
	}
	if channels := Parse("garbage\n#nonsense\n", GroupByCategory); len(channels) != 0 {
		t.Errorf("Expected no channels for garbage input, got %d", len(channels))
	}
}
