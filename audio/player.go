// Package audio plays the sound queue produced by the simulation through the system speaker
package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

// Player drains an engine.AudioQueue into a beep mixer
// Without a successful Init it runs headless: sounds are drained and counted as dropped
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicOn     bool
	initialized bool

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewPlayer creates a headless player
func NewPlayer() *Player {
	return &Player{
		rate:  beep.SampleRate(parameter.AudioSampleRate),
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer; on error the player stays headless
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	drone, err := generators.SineTone(p.rate, parameter.MusicFrequency)
	if err != nil {
		speaker.Close()
		return err
	}
	p.music = &beep.Ctrl{Streamer: newVolume(drone, parameter.MusicVolume), Paused: !p.musicOn}
	p.mixer.Add(p.music)

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Consume drains q and plays its sounds; the music flag follows q.MusicEnabled
func (p *Player) Consume(q *engine.AudioQueue) {
	p.SetMusic(q.MusicEnabled)
	for _, id := range q.Drain() {
		p.Play(id)
	}
}

// Play starts one sound effect; false when headless or the id is unknown
func (p *Player) Play(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := Sound(id, p.rate)
	if !p.initialized || s == nil {
		p.dropped.Add(1)
		return false
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played.Add(1)
	return true
}

// SetMusic pauses or resumes the background drone
func (p *Player) SetMusic(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.musicOn == on {
		return
	}
	p.musicOn = on
	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = !on
	speaker.Unlock()
}

func (p *Player) MusicOn() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.musicOn
}

// Ready reports whether the speaker is open
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Stats returns played and dropped sound counts
func (p *Player) Stats() (played, dropped uint64) {
	return p.played.Load(), p.dropped.Load()
}

// Close stops all sounds and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.music = nil
	p.initialized = false
}
