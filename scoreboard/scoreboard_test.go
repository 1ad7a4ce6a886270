package scoreboard

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTest(t *testing.T) *Board {
	t.Helper()
	b, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

func TestInsertAndTop(t *testing.T) {
	b := openTest(t)
	ctx := context.Background()

	for _, e := range []Entry{
		{Name: "ada", Score: 50, Length: 6, Cause: "wall"},
		{Name: "bob", Score: 120, Length: 13, Cause: "self_bite"},
		{Name: "cy", Score: 50, Length: 6, Cause: "obstacle"},
		{Name: "dee", Score: 10, Length: 2, Cause: "starvation"},
	} {
		if _, err := b.Insert(ctx, e); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	top, err := b.Top(ctx, 3)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(top))
	}
	want := []string{"bob", "ada", "cy"}
	for i, e := range top {
		if e.Name != want[i] {
			t.Errorf("Expected %s at rank %d, got %s", want[i], i+1, e.Name)
		}
	}
	if top[0].CreatedAt.IsZero() {
		t.Errorf("Expected created_at defaulted")
	}

	high, err := b.HighScore(ctx)
	if err != nil || high != 120 {
		t.Errorf("Expected high score 120, got %d (%v)", high, err)
	}
	if n, _ := b.Count(ctx); n != 4 {
		t.Errorf("Expected 4 rows, got %d", n)
	}
}

func TestEmptyBoard(t *testing.T) {
	b := openTest(t)
	ctx := context.Background()

	if high, err := b.HighScore(ctx); err != nil || high != 0 {
		t.Errorf("Expected 0 on empty board, got %d (%v)", high, err)
	}
	if top, err := b.Top(ctx, 0); err != nil || top != nil {
		t.Errorf("Expected nil for n=0, got %v (%v)", top, err)
	}
	if _, err := b.Insert(ctx, Entry{Name: "  ", Score: 5}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
}

func TestReopenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	ctx := context.Background()

	b, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := b.Insert(ctx, Entry{Name: "ada", Score: 30}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	b.Close()

	b, err = Open(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer b.Close()
	if high, _ := b.HighScore(ctx); high != 30 {
		t.Errorf("Expected persisted score 30, got %d", high)
	}
}
