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
package catalogserver

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/existtv/existtv/pkg/catalog"
	"github.com/existtv/existtv/pkg/logger"
	"github.com/existtv/existtv/pkg/m3uparser"

	"github.com/elnormous/contenttype"
)

var channelMediaTypes = []contenttype.MediaType{
	contenttype.NewMediaType("application/json"),
	contenttype.NewMediaType("application/vnd.apple.mpegurl"),
	contenttype.NewMediaType("application/x-mpegurl"),
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("Failed to encode response: %v", err)
	}
}

// queryFromRequest maps URL parameters onto a fresh query. Absent
// parameters keep the query defaults.
func queryFromRequest(r *http.Request) catalog.Query {
	q := catalog.NewQuery()
	params := r.URL.Query()
	if term := params.Get("search"); term != "" {
		q.SetSearch(term)
	}
	if name := params.Get("category"); name != "" {
		q.SelectCategory(name)
	}
	if name := params.Get("country"); name != "" {
		q.SelectCountry(name)
	}
	if params.Get("favorites") == "true" {
		q.SetFavoritesOnly(true)
	}
	return q
}

// handleGetChannels is the stateless export: the matched list for the query
// in the URL, as JSON or as an extended-M3U playlist depending on the Accept
// header. Without a limit parameter the whole matched list is returned.
func (s *Server) handleGetChannels(w http.ResponseWriter, r *http.Request) {
	matched := s.browser.Matches(queryFromRequest(r))

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		matched, _ = catalog.Window(matched, limit)
	}

	accepted, _, err := contenttype.GetAcceptableMediaType(r, channelMediaTypes)
	if err != nil {
		http.Error(w, "Not Acceptable", http.StatusNotAcceptable)
		return
	}

	if accepted.Subtype == "json" {
		writeJSON(w, http.StatusOK, matched)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.apple.mpegurl")
	w.WriteHeader(http.StatusOK)
	if err := m3uparser.WritePlaylist(w, matched); err != nil {
		logger.Errorf("Failed to write playlist: %v", err)
	}
}

func (s *Server) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.browser.Categories())
}

// handleGetCountries scopes the country facets to the category in the URL,
// defaulting to the whole catalog.
func (s *Server) handleGetCountries(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = catalog.All
	}
	writeJSON(w, http.StatusOK, s.browser.Countries(category))
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(s.config.GetAssetsDir(), "player.html")
	content, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, "Player file not found", http.StatusNotFound)
		logger.Errorf("Player file not found at %s", path)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if !s.isLoaded() {
		http.Error(w, "Channels not loaded", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}
