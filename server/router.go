package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/gridsnake/parameter"
)

// scoresQueryTimeout bounds a /scores database read
const scoresQueryTimeout = 2 * time.Second

// routes builds the router; no goroutines start until a websocket connects
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/scores", s.handleScores)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))
	r.Get("/ws", s.handleWebSocket)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":   "ok",
		"sessions": s.ActiveSessions(),
	})
}

type scoreJSON struct {
	Name       string    `json:"name"`
	Score      int       `json:"score"`
	Length     int       `json:"length"`
	Cause      string    `json:"cause"`
	Difficulty string    `json:"difficulty"`
	Cells      int       `json:"cells"`
	Seed       int64     `json:"seed"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	if s.scores == nil {
		writeError(w, "scoreboard disabled", http.StatusServiceUnavailable)
		return
	}

	n := parameter.ScoreboardTopDefault
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			writeError(w, "invalid n", http.StatusBadRequest)
			return
		}
		n = min(parsed, 100)
	}

	ctx, cancel := context.WithTimeout(r.Context(), scoresQueryTimeout)
	defer cancel()
	entries, err := s.scores.Top(ctx, n)
	if err != nil {
		s.logger.Printf("scores query failed: %v", err)
		writeError(w, "scoreboard unavailable", http.StatusInternalServerError)
		return
	}

	out := make([]scoreJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, scoreJSON{
			Name:       e.Name,
			Score:      e.Score,
			Length:     e.Length,
			Cause:      e.Cause,
			Difficulty: e.Difficulty,
			Cells:      e.Cells,
			Seed:       e.Seed,
			CreatedAt:  e.CreatedAt,
		})
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
