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
package iptvorg

import (
	"encoding/json"
	"fmt"

	"github.com/existtv/existtv/pkg/m3uparser"
	"github.com/existtv/existtv/pkg/upstream"
	"github.com/valyala/fasthttp"
)

// The iptv-org project publishes one playlist with group-title carrying the
// channel category and another where it carries the country.
const (
	CategoryPlaylistURL = "https://iptv-org.github.io/iptv/index.category.m3u"
	CountryPlaylistURL  = "https://iptv-org.github.io/iptv/index.country.m3u"
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

type Config struct {
	UserAgent string `json:"user_agent,omitempty"`
}

type IPTVOrgProvider struct {
	config      Config
	playlistURL string
	conn        *upstream.Connection
}

// NewIPTVOrgProvider picks the playlist variant matching the grouping mode
// the caller will parse with, so one knob controls both the fetch and the
// group-title interpretation.
func NewIPTVOrgProvider(config json.RawMessage, grouping m3uparser.Grouping) (*IPTVOrgProvider, error) {
	cfg := Config{}
	if len(config) > 0 {
		if err := json.Unmarshal(config, &cfg); err != nil {
			return nil, fmt.Errorf("iptv.org provider: invalid config: %w", err)
		}
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	uri := CategoryPlaylistURL
	if grouping == m3uparser.GroupByCountry {
		uri = CountryPlaylistURL
	}

	return &IPTVOrgProvider{
		config:      cfg,
		playlistURL: uri,
		conn:        upstream.New(map[string]string{"User-Agent": cfg.UserAgent}),
	}, nil
}

func (p *IPTVOrgProvider) Name() string {
	return "iptv.org"
}

func (p *IPTVOrgProvider) Fetch() (string, error) {
	body, status, _, err := p.conn.Get(p.playlistURL)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", p.playlistURL, err)
	}
	if status != fasthttp.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %d", p.playlistURL, status)
	}
	return string(body), nil
}
