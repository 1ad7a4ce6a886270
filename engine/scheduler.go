package engine

import "github.com/lixenwraith/gridsnake/event"

// Paused reports the pause flag
func (w *World) Paused() bool {
	return w.Resources.State.Paused
}

// SetPaused toggles pause; paused ticks skip Pausable systems
func (w *World) SetPaused(paused bool) {
	w.Resources.State.Paused = paused
}

// Update advances the simulation by dtMs
//
// Phases:
//  1. Dispatch events queued by hosts since the last tick
//  2. Run systems in priority order, skipping Pausable ones while paused
//  3. Dispatch events emitted by systems so outcomes apply within this tick
//
// Returns the collision outcomes recorded during the tick
func (w *World) Update(dtMs float64) []event.Outcome {
	w.DeltaMs = dtMs
	w.outcomes = w.outcomes[:0]

	w.DispatchEvents()

	paused := w.Paused()
	for _, s := range w.systems {
		if paused && IsPausable(s) {
			continue
		}
		s.Update()
	}

	w.DispatchEvents()
	w.Resources.State.Tick++

	if len(w.outcomes) == 0 {
		return nil
	}
	out := make([]event.Outcome, len(w.outcomes))
	copy(out, w.outcomes)
	return out
}
