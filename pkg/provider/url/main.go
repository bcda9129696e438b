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
package url

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/existtv/existtv/pkg/upstream"
	"github.com/valyala/fasthttp"
)

type Config struct {
	Source    string `json:"source"`
	UserAgent string `json:"user_agent,omitempty"`
}

type URLProvider struct {
	config Config
	conn   *upstream.Connection
}

func NewURLProvider(config json.RawMessage) (*URLProvider, error) {
	cfg := Config{}
	if err := json.Unmarshal(config, &cfg); err != nil {
		return nil, fmt.Errorf("url provider: invalid config: %w", err)
	}
	if !strings.HasPrefix(cfg.Source, "http://") && !strings.HasPrefix(cfg.Source, "https://") {
		return nil, fmt.Errorf("url provider: source must be an HTTP(S) URL")
	}

	headers := map[string]string{}
	if cfg.UserAgent != "" {
		headers["User-Agent"] = cfg.UserAgent
	}
	return &URLProvider{
		config: cfg,
		conn:   upstream.New(headers),
	}, nil
}

func (p *URLProvider) Name() string {
	return "url"
}

func (p *URLProvider) Fetch() (string, error) {
	body, status, _, err := p.conn.Get(p.config.Source)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", p.config.Source, err)
	}
	if status != fasthttp.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %d", p.config.Source, status)
	}
	return string(body), nil
}
