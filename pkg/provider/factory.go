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

// Package provider resolves a configured playlist source into raw
// extended-M3U text.
package provider

import (
	"encoding/json"
	"fmt"

	"github.com/existtv/existtv/pkg/logger"
	"github.com/existtv/existtv/pkg/m3uparser"
	"github.com/existtv/existtv/pkg/provider/file"
	"github.com/existtv/existtv/pkg/provider/iptvorg"
	"github.com/existtv/existtv/pkg/provider/types"
	"github.com/existtv/existtv/pkg/provider/url"
)

// SourceConfig selects a provider and carries its provider-specific settings.
type SourceConfig struct {
	Provider string          `json:"provider"`
	Settings json.RawMessage `json:"settings,omitempty"`
}

// New resolves a provider by name. The grouping mode the caller will parse
// with is passed through so providers that serve distinct playlist variants
// (iptv.org) stay in step with the parser.
func New(name string, config json.RawMessage, grouping m3uparser.Grouping) (types.Provider, error) {
	switch name {
	case "iptv.org":
		return iptvorg.NewIPTVOrgProvider(config, grouping)
	case "file":
		return file.NewFileProvider(config)
	case "url":
		return url.NewURLProvider(config)
	default:
		return nil, fmt.Errorf("unknown playlist provider %q", name)
	}
}

// Fetch resolves the configured source and returns the raw playlist text.
func Fetch(cfg SourceConfig, grouping m3uparser.Grouping) (string, error) {
	p, err := New(cfg.Provider, cfg.Settings, grouping)
	if err != nil {
		return "", err
	}

	logger.Infof("Fetching playlist from provider %s", p.Name())
	content, err := p.Fetch()
	if err != nil {
		return "", err
	}
	logger.Infof("Fetched %d bytes from provider %s", len(content), p.Name())
	return content, nil
}
