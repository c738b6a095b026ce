package web

import (
	"encoding/json"
	"fmt"
	"foos/internal/util"
	"net/http"
)

func (s *Server) recordMatch(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		WinningTeam  []string `json:"winning_team"`
		LosingTeam   []string `json:"losing_team"`
		WinningScore int      `json:"winning_score"`
		LosingScore  int      `json:"losing_score"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.error(w, util.ErrPublic("invalid JSON payload"))
		return
	}

	if len(payload.WinningTeam) != 2 || len(payload.LosingTeam) != 2 {
		s.error(w, util.ErrPublic("both teams must have exactly 2 players"))
		return
	}

	outcome, err := s.back.RecordMatch(
		[2]string{payload.WinningTeam[0], payload.WinningTeam[1]},
		[2]string{payload.LosingTeam[0], payload.LosingTeam[1]},
		payload.WinningScore, payload.LosingScore,
	)
	if err != nil {
		s.error(w, err)
		return
	}

	s.response(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"new_elo": outcome,
	})
}

func (s *Server) deleteLatestMatch(w http.ResponseWriter, _ *http.Request) {
	deleted, err := s.back.DeleteLatestMatch()
	if err != nil {
		s.error(w, err)
		return
	}

	s.response(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf(
			"Deleted game with %s and %s beating %s and %s %d-%d",
			deleted.Winners[0], deleted.Winners[1],
			deleted.Losers[0], deleted.Losers[1],
			deleted.WinningScore, deleted.LosingScore,
		),
	})
}
