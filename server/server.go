// Package server hosts independent games over websocket, one per connection
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/scoreboard"
	"github.com/lixenwraith/gridsnake/settings"
)

// Config holds the host-supplied server options
type Config struct {
	Addr           string
	Settings       settings.Settings
	AllowedOrigins []string

	// TickInterval is the per-session simulation step; zero uses parameter.TickInterval
	TickInterval time.Duration
	InputRate    float64
	InputBurst   int
}

// DefaultConfig returns a config serving default settings on parameter.ServerAddrDefault
func DefaultConfig() Config {
	return Config{
		Addr:           parameter.ServerAddrDefault,
		Settings:       settings.Default(),
		AllowedOrigins: []string{"*"},
		TickInterval:   parameter.TickInterval,
		InputRate:      parameter.SessionInputRate,
		InputBurst:     parameter.SessionInputBurst,
	}
}

// Server owns the router, live sessions and metrics
type Server struct {
	cfg     Config
	scores  *scoreboard.Board
	logger  *log.Logger
	metrics *Metrics
	handler http.Handler

	mu       sync.Mutex
	sessions map[uint64]*session
	nextID   atomic.Uint64
	wg       sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

// New validates the game settings and assembles the HTTP surface
// scores may be nil, in which case finished rounds are not recorded
func New(cfg Config, scores *scoreboard.Board, logger *log.Logger) (*Server, error) {
	if err := cfg.Settings.Check(); err != nil {
		return nil, err
	}
	cfg.Settings.Normalize()
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = parameter.TickInterval
	}
	if cfg.InputRate <= 0 {
		cfg.InputRate = parameter.SessionInputRate
	}
	if cfg.InputBurst <= 0 {
		cfg.InputBurst = parameter.SessionInputBurst
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:      cfg,
		scores:   scores,
		logger:   logger,
		sessions: make(map[uint64]*session),
		ctx:      ctx,
		cancel:   cancel,
	}
	s.metrics = newMetrics(s)
	s.handler = s.routes()
	return s, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Metrics exposes the server's collectors
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// ActiveSessions returns the number of connected sessions
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// ListenAndServe serves until ctx is cancelled, then drains sessions
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("server listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.Close()
	return err
}

// Close stops every session and waits for their goroutines
func (s *Server) Close() {
	s.cancel()
	s.mu.Lock()
	for _, sess := range s.sessions {
		sess.stop()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Server) register(sess *session) {
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	s.metrics.sessionsActive.Inc()
	s.metrics.sessionsTotal.Inc()
}

func (s *Server) unregister(sess *session) {
	s.mu.Lock()
	_, ok := s.sessions[sess.id]
	delete(s.sessions, sess.id)
	s.mu.Unlock()
	if ok {
		s.metrics.sessionsActive.Dec()
	}
}

// liveStatus returns the telemetry snapshots of every session
func (s *Server) liveStatus() []map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]float64, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess.status.Snapshot())
	}
	return out
}
