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

	"github.com/existtv/existtv/pkg/logger"

	"github.com/gorilla/mux"
)

// The session endpoints mutate the server's single browse session and reply
// with the resulting snapshot, so a client never needs a follow-up read.

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.browser.State())
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Term string `json:"term"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.browser.SetSearch(req.Term)
	writeJSON(w, http.StatusOK, s.browser.State())
}

func (s *Server) handleSelectCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.browser.SelectCategory(req.Name)
	writeJSON(w, http.StatusOK, s.browser.State())
}

func (s *Server) handleSelectCountry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.browser.SelectCountry(req.Name)
	writeJSON(w, http.StatusOK, s.browser.State())
}

func (s *Server) handleFavoritesOnly(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.browser.SetFavoritesOnly(req.Enabled)
	writeJSON(w, http.StatusOK, s.browser.State())
}

func (s *Server) handleLoadMore(w http.ResponseWriter, r *http.Request) {
	s.browser.LoadMore()
	writeJSON(w, http.StatusOK, s.browser.State())
}

// handleToggleFavorite flips the flag for a known channel id. The toggle is
// persisted before the response; a failed write still reports the new state
// since the in-memory set has already changed.
func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if _, ok := s.browser.Find(id); !ok {
		http.Error(w, "Channel not found", http.StatusNotFound)
		return
	}

	on, err := s.browser.ToggleFavorite(id)
	if err != nil {
		logger.Errorf("Failed to persist favorites: %v", err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":       id,
		"favorite": on,
	})
}
