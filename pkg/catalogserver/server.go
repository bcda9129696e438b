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

// Package catalogserver exposes a parsed channel catalog over HTTP: a
// stateful browse session plus a stateless query surface.
package catalogserver

import (
	"net/http"
	"sync"

	"github.com/existtv/existtv/pkg/catalog"
	"github.com/existtv/existtv/pkg/favorites"
	"github.com/existtv/existtv/pkg/logger"
	"github.com/existtv/existtv/pkg/m3uparser"
	"github.com/existtv/existtv/pkg/provider"

	"github.com/gorilla/mux"
)

type Server struct {
	config   *ServerConfig
	browser  *catalog.Browser
	security *securityContext

	mu     sync.Mutex
	loaded bool
}

func NewServer(config *ServerConfig) (*Server, error) {
	sec, err := newSecurityContext(config.Get().Security)
	if err != nil {
		return nil, err
	}

	var store favorites.Store
	if path := config.Get().FavoritesFile; path != "" {
		store = favorites.NewFileStore(path)
	}

	return &Server{
		config:   config,
		browser:  catalog.NewBrowser(catalog.New(nil), store),
		security: sec,
	}, nil
}

// LoadChannels fetches the configured playlist, parses it and swaps the
// result into the browse session. The channel cap is applied after parsing,
// keeping the head of the playlist.
func (s *Server) LoadChannels() error {
	content, err := provider.Fetch(s.config.Get().Source, s.config.GroupingMode())
	if err != nil {
		return err
	}

	channels := m3uparser.Parse(content, s.config.GroupingMode())
	if max := s.config.GetMaxChannels(); len(channels) > max {
		logger.Warnf("Playlist has %d channels, keeping the first %d", len(channels), max)
		channels = channels[:max]
	}

	logger.Infof("Loaded %d channels", len(channels))

	s.browser.Replace(catalog.New(channels))

	s.mu.Lock()
	s.loaded = true
	s.mu.Unlock()
	return nil
}

func (s *Server) isLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *Server) Close() {
	s.security.close()
}

// Handler builds the full route table wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	// Session endpoints, one browse session per server.
	router.HandleFunc("/api/state", s.handleGetState).Methods(http.MethodGet)
	router.HandleFunc("/api/search", s.handleSearch).Methods(http.MethodPost)
	router.HandleFunc("/api/category", s.handleSelectCategory).Methods(http.MethodPost)
	router.HandleFunc("/api/country", s.handleSelectCountry).Methods(http.MethodPost)
	router.HandleFunc("/api/favorites", s.handleFavoritesOnly).Methods(http.MethodPost)
	router.HandleFunc("/api/more", s.handleLoadMore).Methods(http.MethodPost)
	router.HandleFunc("/api/channels/{id}/favorite", s.handleToggleFavorite).Methods(http.MethodPost)

	// Stateless query surface.
	router.HandleFunc("/api/channels", s.handleGetChannels).Methods(http.MethodGet)
	router.HandleFunc("/api/categories", s.handleGetCategories).Methods(http.MethodGet)
	router.HandleFunc("/api/countries", s.handleGetCountries).Methods(http.MethodGet)

	router.HandleFunc("/player", s.handleGetPlayer).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealthCheck).Methods(http.MethodGet)

	return s.security.geoip(s.security.cors(accessLog(router)))
}
