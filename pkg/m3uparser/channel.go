package m3uparser

import (
	"encoding/base64"
	"strconv"
)

// Sentinel values used when a playlist entry carries no usable metadata.
const (
	UnknownChannelName = "Unknown Channel"
	DefaultCategory    = "Uncategorized"
	UnknownCountry     = "Unknown"
)

// Grouping selects which channel field the playlist group label populates.
// The iptv-org feed publishes one playlist grouped by category and another
// grouped by country; the group-title attribute means a different thing in
// each.
type Grouping int

const (
	GroupByCategory Grouping = iota
	GroupByCountry
)

func (g Grouping) String() string {
	if g == GroupByCountry {
		return "country"
	}
	return "category"
}

// Channel is a single normalized playlist entry. Channels are immutable once
// produced by Parse and are replaced wholesale on the next playlist fetch.
type Channel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Logo     string `json:"logo"`
	Category string `json:"category"`
	Country  string `json:"country"`
	URL      string `json:"url"`
}

// ChannelID derives a catalog identifier from a stream URL and the ordinal of
// its line in the source text. The URL alone is not unique: mirrors and
// regional simulcasts legitimately repeat the same stream address, so the
// line position is appended. The price is that IDs are only stable within one
// parse pass.
func ChannelID(url string, pos int) string {
	return base64.URLEncoding.EncodeToString([]byte(url)) + "-" + strconv.Itoa(pos)
}
