// Package server wraps the Lambda-shaped handlers in a local HTTP server
// for development and smoke testing. Routes mirror the deployed API: query
// parameters, path parameters, and JSON bodies are all accepted.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gorilla/mux"

	"nfl-schedule-scraper/internal/handler"
	"nfl-schedule-scraper/internal/logger"
)

// Server serves the schedule and scores handlers over plain HTTP.
type Server struct {
	schedule *handler.Handler
	scores   *handler.ScoresHandler
	router   *mux.Router
}

// New creates a Server around the two handlers.
func New(scheduleHandler *handler.Handler, scoresHandler *handler.ScoresHandler) *Server {
	s := &Server{schedule: scheduleHandler, scores: scoresHandler}

	r := mux.NewRouter()
	r.HandleFunc("/", s.handleSchedule).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/schedule", s.handleSchedule).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/schedule/{team_slug}/{team_name_long}", s.handleSchedule).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/scores", s.handleScores).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/scores/{sport}/{game_id}", s.handleScores).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router = r

	return s
}

// Router exposes the underlying router.
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe blocks serving requests on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	logger.Info("Local schedule server listening", logger.Fields{"addr": addr})
	return srv.ListenAndServe()
}

// handleSchedule converts the HTTP request into the handler's invocation
// shape and relays the response with its status code.
func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	req := handler.Request{
		QueryStringParameters:           singleValued(r.URL.Query()),
		MultiValueQueryStringParameters: r.URL.Query(),
		PathParameters:                  mux.Vars(r),
	}
	req.Body = readBody(r)

	resp, err := s.schedule.Handle(r.Context(), req)
	relay(w, resp, err)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	req := handler.ScoresRequest{
		QueryStringParameters:           singleValued(r.URL.Query()),
		MultiValueQueryStringParameters: r.URL.Query(),
		PathParameters:                  mux.Vars(r),
	}
	req.Body = readBody(r)

	resp, err := s.scores.Handle(r.Context(), req)
	relay(w, resp, err)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func readBody(r *http.Request) string {
	if r.Body == nil {
		return ""
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return ""
	}
	return string(body)
}

// relay writes the handler's Lambda-shaped response as a plain HTTP one.
func relay(w http.ResponseWriter, resp events.APIGatewayProxyResponse, err error) {
	if err != nil {
		logger.Error("Handler returned an error", nil, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Internal server error",
			"detail":  err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	fmt.Fprint(w, resp.Body)
}

// singleValued keeps the first value of each query parameter.
func singleValued(values map[string][]string) map[string]string {
	single := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			single[k] = vs[0]
		}
	}
	return single
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload) // nolint:errcheck
}
