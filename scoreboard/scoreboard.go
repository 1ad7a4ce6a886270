// Package scoreboard persists finished rounds in SQLite and serves the top scores
package scoreboard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

var ErrEmptyName = errors.New("empty player name")

// Entry is one finished round
type Entry struct {
	ID         int64
	Name       string
	Score      int
	Length     int
	Cause      string
	Difficulty string
	Cells      int
	Seed       int64
	CreatedAt  time.Time
}

// Board wraps the SQLite connection
type Board struct {
	conn *sql.DB
}

// Open opens (or creates) the database at path; ":memory:" gives a private in-memory board
func Open(path string) (*Board, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite has one writer; a single connection also keeps ":memory:" to one database
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("scoreboard pragma: %w", err)
	}

	b := &Board{conn: conn}
	if err := b.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("scoreboard migrate: %w", err)
	}
	return b, nil
}

func (b *Board) Close() error {
	return b.conn.Close()
}

func (b *Board) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		score INTEGER NOT NULL,
		length INTEGER NOT NULL DEFAULT 1,
		cause TEXT NOT NULL DEFAULT '',
		difficulty TEXT NOT NULL DEFAULT 'None',
		cells INTEGER NOT NULL DEFAULT 0,
		seed INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scores_score ON scores(score DESC, id ASC);
	`
	_, err := b.conn.Exec(schema)
	return err
}

// Insert records e and returns its id; CreatedAt defaults to now
func (b *Board) Insert(ctx context.Context, e Entry) (int64, error) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return 0, ErrEmptyName
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	res, err := b.conn.ExecContext(ctx,
		`INSERT INTO scores (name, score, length, cause, difficulty, cells, seed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		name, e.Score, e.Length, e.Cause, e.Difficulty, e.Cells, e.Seed, e.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert score: %w", err)
	}
	return res.LastInsertId()
}

// Top returns the n best rounds, earlier entries first on ties
func (b *Board) Top(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := b.conn.QueryContext(ctx,
		`SELECT id, name, score, length, cause, difficulty, cells, seed, created_at
		 FROM scores ORDER BY score DESC, id ASC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query top scores: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Length, &e.Cause, &e.Difficulty, &e.Cells, &e.Seed, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// HighScore returns the best score, zero on an empty board
func (b *Board) HighScore(ctx context.Context) (int, error) {
	var best sql.NullInt64
	if err := b.conn.QueryRowContext(ctx, `SELECT MAX(score) FROM scores`).Scan(&best); err != nil {
		return 0, fmt.Errorf("query high score: %w", err)
	}
	return int(best.Int64), nil
}

func (b *Board) Count(ctx context.Context) (int, error) {
	var n int
	err := b.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM scores`).Scan(&n)
	return n, err
}
