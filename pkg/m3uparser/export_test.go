package m3uparser

import (
	"strings"
	"testing"
)

func TestWritePlaylist(t *testing.T) {
	channels := []Channel{
		{Name: "BBC One", Logo: "http://logo/bbc.png", Category: "News", Country: "United Kingdom", URL: "http://example.com/bbc.m3u8"},
		{Name: "RTP 1", Category: DefaultCategory, Country: "Portugal", URL: "http://example.com/rtp.m3u8"},
	}

	var sb strings.Builder
	if err := WritePlaylist(&sb, channels); err != nil {
		t.Fatalf("WritePlaylist failed: %v", err)
	}

	got := sb.String()
	want := "#EXTM3U\n" +
		"#EXTINF:-1 tvg-logo=\"http://logo/bbc.png\" group-title=\"News\",BBC One\nhttp://example.com/bbc.m3u8\n" +
		"#EXTINF:-1 tvg-logo=\"\" group-title=\"Portugal\",RTP 1\nhttp://example.com/rtp.m3u8\n"
	if got != want {
		t.Errorf("Unexpected playlist.\nExpected:\n%s\nGot:\n%s", want, got)
	}
}

func TestWritePlaylistRoundTrip(t *testing.T) {
	channels := []Channel{
		{Name: "Sport Mix", Category: "Sports, Extra", Country: UnknownCountry, URL: "http://example.com/sport.m3u8"},
	}

	var sb strings.Builder
	if err := WritePlaylist(&sb, channels); err != nil {
		t.Fatal(err)
	}

	parsed := Parse(sb.String(), GroupByCategory)
	if len(parsed) != 1 {
		t.Fatalf("Unexpected channel count after round trip. Expected: 1, Got: %d", len(parsed))
	}
	if parsed[0].Name != "Sport Mix" || parsed[0].Category != "Sports, Extra" {
		t.Errorf("Round trip lost fields: %+v", parsed[0])
	}
}
