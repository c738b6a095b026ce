package web

import (
	"encoding/json"
	"foos/internal/util"
	"net/http"

	"github.com/go-chi/chi"
)

func (s *Server) createPlayer(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.error(w, util.ErrPublic("invalid JSON payload"))
		return
	}

	player, err := s.back.RegisterPlayer(payload.Username)
	if err != nil {
		s.error(w, err)
		return
	}

	s.response(w, http.StatusCreated, map[string]interface{}{
		"username": player.Name,
		"elo":      player.Rating,
	})
}

func (s *Server) getPlayer(w http.ResponseWriter, r *http.Request) {
	stats, err := s.back.GetPlayerStats(chi.URLParam(r, "username"))
	if err != nil {
		s.error(w, err)
		return
	}

	s.response(w, http.StatusOK, stats)
}
