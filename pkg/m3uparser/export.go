package m3uparser

import (
	"fmt"
	"io"
)

// WritePlaylist renders normalized channels back to extended-M3U form. The
// group-title carries the category, falling back to the country when the
// category is the sentinel, so a re-export of a country-grouped catalog stays
// meaningful.
func WritePlaylist(w io.Writer, channels []Channel) error {
	if _, err := io.WriteString(w, "#EXTM3U\n"); err != nil {
		return err
	}
	for _, ch := range channels {
		group := ch.Category
		if group == DefaultCategory && ch.Country != UnknownCountry {
			group = ch.Country
		}
		if _, err := fmt.Fprintf(w, "#EXTINF:-1 tvg-logo=%q group-title=%q,%s\n%s\n", ch.Logo, group, ch.Name, ch.URL); err != nil {
			return err
		}
	}
	return nil
}
