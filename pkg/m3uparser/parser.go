// Package m3uparser turns raw extended-M3U playlist text into an ordered
// sequence of normalized channels. Parsing is deliberately lenient: the
// upstream playlist is third-party data and frequently inconsistent, so
// malformed records are dropped silently rather than aborting the scan.
package m3uparser

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/existtv/existtv/pkg/countries"
)

const extinfPrefix = "#EXTINF:"

// Two-letter country suffix of a tvg-id, e.g. "BBCOne.uk" or "CNN.us@East".
var idCountrySuffix = regexp.MustCompile(`(?i)\.([a-z]{2})(?:@|$)`)

// pendingMeta is the metadata carried from an EXTINF line to the URL line
// that completes the record.
type pendingMeta struct {
	name     string
	logo     string
	category string
	country  string
}

// Parse scans extended-M3U text and returns the normalized channels in
// source order. An EXTINF line with no following URL line yields no record,
// as does a URL line with no preceding metadata. Parse never fails: the
// worst case for malformed input is fewer emitted channels.
func Parse(content string, grouping Grouping) []Channel {
	channels := make([]Channel, 0, 256)

	var pending pendingMeta
	lineNo := -1

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, extinfPrefix) {
			pending = parseMeta(line, grouping)
			continue
		}

		if strings.HasPrefix(line, "#") {
			// Comment or directive we do not care about.
			continue
		}

		// A stream URL completes the pending record. Records without
		// metadata or without an HTTP(S) scheme are dropped.
		if pending.name == "" || !hasHTTPScheme(line) {
			continue
		}

		channels = append(channels, Channel{
			ID:       ChannelID(line, lineNo),
			Name:     pending.name,
			Logo:     pending.logo,
			Category: pending.category,
			Country:  pending.country,
			URL:      line,
		})
		pending = pendingMeta{}
	}

	return channels
}

// parseMeta extracts the channel metadata from an EXTINF line.
//
// Country resolution order, first match wins: explicit tvg-country attribute,
// country code derived from the tvg-id suffix, group label when grouping by
// country, sentinel "Unknown". The group label populates exactly one field
// depending on the grouping mode; the other keeps its sentinel.
func parseMeta(line string, grouping Grouping) pendingMeta {
	// The duration token carries no attributes; scan what follows it.
	attrs := map[string]string{}
	data := line[len(extinfPrefix):]
	if i := strings.Index(data, " "); i != -1 {
		attrs = parseExtinfAttrs(data[i+1:])
	}

	meta := pendingMeta{
		name:     UnknownChannelName,
		logo:     attrs["tvg-logo"],
		category: DefaultCategory,
		country:  UnknownCountry,
	}

	if c := attrs["tvg-country"]; c != "" {
		meta.country = c
	}
	if meta.country == UnknownCountry {
		if name, ok := countryFromID(attrs["tvg-id"]); ok {
			meta.country = name
		}
	}

	group := attrs["group-title"]
	switch grouping {
	case GroupByCountry:
		if group != "" {
			meta.country = group
		}
	default:
		if group != "" {
			meta.category = group
		}
	}

	// The display name is the text after the last comma of the line.
	if idx := strings.LastIndex(line, ","); idx != -1 {
		if name := strings.TrimSpace(line[idx+1:]); name != "" {
			meta.name = name
		}
	}

	return meta
}

// countryFromID resolves the two-letter suffix of a tvg-id through the
// country reference table. Unrecognized codes resolve to nothing.
func countryFromID(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	m := idCountrySuffix.FindStringSubmatch(id)
	if m == nil {
		return "", false
	}
	return countries.Name(strings.ToUpper(m[1]))
}

func hasHTTPScheme(line string) bool {
	return strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://")
}
