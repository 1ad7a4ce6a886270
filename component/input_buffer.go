package component

import "github.com/lixenwraith/gridsnake/core"

// InputBufferCapacity bounds queued direction changes per snake
const InputBufferCapacity = 2

// InputBufferComponent queues direction requests between grid steps
// Quick double taps (up then left) within one move interval are kept in order
type InputBufferComponent struct {
	moves [InputBufferCapacity]core.Direction
	count int
}

// Push queues d unless it is invalid, a repeat, or reverses the last queued (or current) direction
// Returns false when rejected or the buffer is full
func (b *InputBufferComponent) Push(d, current core.Direction) bool {
	if !d.IsValid() || b.count >= InputBufferCapacity {
		return false
	}
	last := current
	if b.count > 0 {
		last = b.moves[b.count-1]
	}
	if d == last || d.Reverses(last) {
		return false
	}
	b.moves[b.count] = d
	b.count++
	return true
}

// Pop dequeues the oldest buffered direction
func (b *InputBufferComponent) Pop() (core.Direction, bool) {
	if b.count == 0 {
		return core.DirNone, false
	}
	d := b.moves[0]
	copy(b.moves[:], b.moves[1:b.count])
	b.count--
	b.moves[b.count] = core.DirNone
	return d, true
}

func (b *InputBufferComponent) Len() int {
	return b.count
}

func (b *InputBufferComponent) Clear() {
	*b = InputBufferComponent{}
}
