package web

import (
	"database/sql"
	"encoding/json"
	"errors"
	"foos/internal/back"
	"foos/internal/util"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/", noContent)

	r.Post("/v1/player", s.createPlayer)
	r.Get("/v1/player/{username}", s.getPlayer)
	r.Get("/v1/team/{username1}/{username2}", s.getTeam)
	r.Post("/v1/match", s.recordMatch)
	r.Delete("/v1/match/latest", s.deleteLatestMatch)
	r.Get("/v1/leaderboard/{kind}", s.getLeaderboard)

	return r
}

type Server struct {
	http *http.Server
	back *back.Back
}

func NewServer(back *back.Back, listenAddr string) *Server {
	s := &Server{
		back: back,
	}

	s.http = &http.Server{
		Addr:         listenAddr,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  10 * time.Second,
		Handler:      s.setupRouter(),
	}

	return s
}

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) Serve(wg *sync.WaitGroup, done <-chan struct{}) {
	log.Println("info: starting HTTP server")
	wg.Add(1)
	defer wg.Done()

	go func() {
		err := s.http.ListenAndServe()
		if err == http.ErrServerClosed {
			log.Println("info: HTTP server closed")
			return
		}

		log.Fatalf("webserver crashed: %s", err)
	}()

	<-done
	if err := s.http.Close(); err != nil {
		log.Printf("warning: unable to close webserver: %s", err)
	}
}

func (s *Server) response(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	response, err := json.Marshal(data)
	if err != nil {
		log.Printf("error: unable to marshal response: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(code)

	if _, err := w.Write(response); err != nil {
		log.Printf("error: unable to send response: %s", err)
	}
}

// error maps the error taxonomy of the back onto status codes: public
// (validation, conflict) errors are echoed with a 400, unknown entities get
// a 404, anything else (including the multiple-teams anomaly) is a 500 with
// no details leaked.
func (s *Server) error(w http.ResponseWriter, err error) {
	log.Printf("error: %s", err)

	switch {
	case errors.Is(err, util.ErrPublic("")):
		s.response(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, sql.ErrNoRows):
		s.response(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
