package web

import (
	"foos/internal/back"
	"foos/internal/util"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
)

const defaultBoardSize = 10

func (s *Server) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	direction := back.BoardTop
	switch r.URL.Query().Get("direction") {
	case "", "top":
	case "bottom":
		direction = back.BoardBottom
	default:
		s.error(w, util.ErrPublic("direction must be top or bottom"))
		return
	}

	limit := defaultBoardSize
	if str := r.URL.Query().Get("count"); str != "" {
		n, err := strconv.Atoi(str)
		if err != nil || n <= 0 {
			s.error(w, util.ErrPublic("count must be a positive number"))
			return
		}
		limit = n
	}

	switch chi.URLParam(r, "kind") {
	case "players":
		board, err := s.back.GetPlayerBoard(direction, limit)
		if err != nil {
			s.error(w, err)
			return
		}

		s.response(w, http.StatusOK, map[string]interface{}{"players": board})
	case "teams":
		board, err := s.back.GetTeamBoard(direction, limit)
		if err != nil {
			s.error(w, err)
			return
		}

		s.response(w, http.StatusOK, map[string]interface{}{"teams": board})
	default:
		s.error(w, util.ErrPublic("kind must be players or teams"))
	}
}
