package component

// HungerComponent is the starvation countdown, in milliseconds
// MaxMs <= 0 disables starvation for the entity
type HungerComponent struct {
	RemainingMs float64
	MaxMs       float64
}

// Ratio is the remaining fraction for hunger bars
func (h *HungerComponent) Ratio() float64 {
	if h.MaxMs <= 0 {
		return 0
	}
	return h.RemainingMs / h.MaxMs
}

// Reset refills the timer
func (h *HungerComponent) Reset() {
	h.RemainingMs = h.MaxMs
}
