package audio

import (
	"testing"

	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

func TestHeadlessPlayerDrains(t *testing.T) {
	p := NewPlayer()
	if p.Ready() {
		t.Fatalf("Expected headless player before Init")
	}

	q := &engine.AudioQueue{MusicEnabled: true}
	q.Push(parameter.SoundEat)
	q.Push(parameter.SoundDeath)
	p.Consume(q)

	if q.Len() != 0 {
		t.Errorf("Expected queue drained, got %d", q.Len())
	}
	played, dropped := p.Stats()
	if played != 0 || dropped != 2 {
		t.Errorf("Expected 0 played / 2 dropped, got %d / %d", played, dropped)
	}
	if !p.MusicOn() {
		t.Errorf("Expected music flag to follow the queue")
	}

	q.MusicEnabled = false
	p.Consume(q)
	if p.MusicOn() {
		t.Errorf("Expected music off")
	}

	// Close on a headless player is a no-op
	p.Close()
}
