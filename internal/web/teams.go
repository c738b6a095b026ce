package web

import (
	"net/http"

	"github.com/go-chi/chi"
)

func (s *Server) getTeam(w http.ResponseWriter, r *http.Request) {
	stats, err := s.back.GetTeamStats(
		chi.URLParam(r, "username1"),
		chi.URLParam(r, "username2"),
	)
	if err != nil {
		s.error(w, err)
		return
	}

	s.response(w, http.StatusOK, stats)
}
