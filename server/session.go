package server

import (
	"context"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/game"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/scoreboard"
	"github.com/lixenwraith/gridsnake/snapshot"
	"github.com/lixenwraith/gridsnake/status"
)

const (
	maxNameLen    = 16
	defaultName   = "anonymous"
	sendBufSize   = 8
	cmdBufSize    = 16
	recordTimeout = 2 * time.Second
)

// session is one websocket client playing its own game
// Only run touches the game; the pumps exchange bytes and commands through channels
type session struct {
	id      uint64
	srv     *Server
	conn    *websocket.Conn
	name    string
	game    *game.Game
	status  *status.Registry
	limiter *rate.Limiter

	cmds chan Command
	send chan []byte

	done     chan struct{}
	stopOnce sync.Once
}

func (s *Server) upgrader() *websocket.Upgrader {
	origins := s.cfg.AllowedOrigins
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if slices.Contains(origins, "*") {
				return true
			}
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(origins, origin)
		},
	}
}

// handleWebSocket starts a game for the connecting client
// Query: name (scoreboard name), seed (replay a known layout)
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cfg := s.cfg.Settings
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, "invalid seed", http.StatusBadRequest)
			return
		}
		cfg.Seed = seed
	}

	g, err := game.New(cfg, s.logger)
	if err != nil {
		s.logger.Printf("session game: %v", err)
		writeError(w, "game setup failed", http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader().Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		s.logger.Printf("ws upgrade: %v", err)
		return
	}

	sess := &session{
		id:      s.nextID.Add(1),
		srv:     s,
		conn:    conn,
		name:    sanitizeName(q.Get("name")),
		game:    g,
		status:  g.World().Resources.Status,
		limiter: rate.NewLimiter(rate.Limit(s.cfg.InputRate), s.cfg.InputBurst),
		cmds:    make(chan Command, cmdBufSize),
		send:    make(chan []byte, sendBufSize),
		done:    make(chan struct{}),
	}
	s.register(sess)
	s.logger.Printf("session %d opened: name=%s seed=%d remote=%s", sess.id, sess.name, g.Seed(), r.RemoteAddr)

	s.wg.Add(2)
	core.Go(sess.run)
	core.Go(sess.writePump)
	sess.readPump()
}

func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return defaultName
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		name = string([]rune(name)[:maxNameLen])
	}
	return name
}

func (sess *session) stop() {
	sess.stopOnce.Do(func() { close(sess.done) })
}

// run owns the game: applies commands, ticks, publishes snapshots
func (sess *session) run() {
	defer sess.srv.wg.Done()

	ticker := time.NewTicker(sess.srv.cfg.TickInterval)
	defer ticker.Stop()

	last := time.Now()
	wasOver := false
	sess.publish()

	for {
		select {
		case <-sess.done:
			return
		case <-sess.srv.ctx.Done():
			sess.stop()
			return
		case cmd := <-sess.cmds:
			sess.apply(cmd)
		case now := <-ticker.C:
			dt := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now
			sess.game.Tick(dt)
			sess.srv.metrics.ticks.Inc()

			st := sess.game.State()
			if st.GameOver && !wasOver {
				sess.recordRound()
			}
			wasOver = st.GameOver
			sess.publish()
		}
	}
}

func (sess *session) apply(cmd Command) {
	switch cmd.Type {
	case CommandDirection:
		d, _ := parseDirection(cmd.Direction)
		sess.game.SetDirection(d)
	case CommandPause:
		sess.game.TogglePause()
	case CommandReset:
		if err := sess.game.Reset(); err != nil {
			sess.srv.logger.Printf("session %d reset: %v", sess.id, err)
		}
	}
}

// publish encodes the current world; a slow client skips frames instead of stalling the tick
func (sess *session) publish() {
	snap := snapshot.Capture(sess.game.World())
	snap.Sounds = sess.game.World().Resources.Audio.Drain()
	data, err := snapshot.Encode(snap)
	if err != nil {
		sess.srv.logger.Printf("session %d encode: %v", sess.id, err)
		return
	}
	select {
	case sess.send <- data:
	default:
		sess.srv.metrics.framesDropped.Inc()
	}
}

// recordRound stores the finished round; called once per game over
func (sess *session) recordRound() {
	st := sess.game.State()
	sess.srv.metrics.rounds.WithLabelValues(string(st.DeathCause)).Inc()
	if sess.srv.scores == nil {
		return
	}

	length := 0
	if sn := sess.game.Snake(); sn != nil {
		length = len(sn.Cells())
	}
	cfg := sess.game.Settings()
	entry := scoreboard.Entry{
		Name:       sess.name,
		Score:      st.Score,
		Length:     length,
		Cause:      string(st.DeathCause),
		Difficulty: cfg.ObstacleDifficulty.String(),
		Cells:      cfg.CellsPerSide,
		Seed:       sess.game.Seed(),
	}

	ctx, cancel := context.WithTimeout(sess.srv.ctx, recordTimeout)
	defer cancel()
	if _, err := sess.srv.scores.Insert(ctx, entry); err != nil {
		sess.srv.logger.Printf("session %d record round: %v", sess.id, err)
	}
}

// readPump turns client frames into commands until the connection drops
func (sess *session) readPump() {
	defer func() {
		sess.srv.unregister(sess)
		sess.stop()
		sess.srv.logger.Printf("session %d closed", sess.id)
	}()

	conn := sess.conn
	conn.SetReadLimit(parameter.SessionMaxMessageBytes)
	conn.SetReadDeadline(time.Now().Add(parameter.SessionPongTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(parameter.SessionPongTimeout))
		return nil
	})

	inputs := sess.srv.metrics.inputs
	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				sess.srv.logger.Printf("session %d ws error: %v", sess.id, err)
			}
			return
		}

		cmd, err := decodeCommand(msgType, msg)
		if err != nil {
			inputs.WithLabelValues("invalid").Inc()
			continue
		}
		if !sess.limiter.Allow() {
			inputs.WithLabelValues("limited").Inc()
			continue
		}

		select {
		case sess.cmds <- cmd:
			inputs.WithLabelValues("accepted").Inc()
		case <-sess.done:
			return
		}
	}
}

// writePump is the only writer on the connection
func (sess *session) writePump() {
	ping := time.NewTicker(parameter.SessionPingInterval)
	defer func() {
		ping.Stop()
		sess.conn.Close()
		sess.srv.wg.Done()
	}()

	for {
		select {
		case <-sess.done:
			sess.conn.SetWriteDeadline(time.Now().Add(parameter.SessionWriteTimeout))
			sess.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case data := <-sess.send:
			sess.conn.SetWriteDeadline(time.Now().Add(parameter.SessionWriteTimeout))
			if err := sess.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				sess.stop()
				return
			}
		case <-ping.C:
			sess.conn.SetWriteDeadline(time.Now().Add(parameter.SessionWriteTimeout))
			if err := sess.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				sess.stop()
				return
			}
		}
	}
}
