package component

import (
	"testing"

	"github.com/lixenwraith/gridsnake/core"
)

func TestInputBufferRejectsReverse(t *testing.T) {
	var b InputBufferComponent
	if b.Push(core.DirLeft, core.DirRight) {
		t.Errorf("Expected reverse of current direction to be rejected")
	}
	if !b.Push(core.DirUp, core.DirRight) {
		t.Fatalf("Expected up to be accepted")
	}
	if b.Push(core.DirDown, core.DirRight) {
		t.Errorf("Expected reverse of last buffered direction to be rejected")
	}
	if !b.Push(core.DirLeft, core.DirRight) {
		t.Errorf("Expected left after up to be accepted")
	}
}

func TestInputBufferCapacity(t *testing.T) {
	var b InputBufferComponent
	b.Push(core.DirUp, core.DirRight)
	b.Push(core.DirLeft, core.DirRight)
	if b.Push(core.DirDown, core.DirRight) {
		t.Errorf("Expected push beyond capacity %d to fail", InputBufferCapacity)
	}
	if b.Len() != InputBufferCapacity {
		t.Errorf("Expected %d buffered, got %d", InputBufferCapacity, b.Len())
	}

	d, ok := b.Pop()
	if !ok || d != core.DirUp {
		t.Errorf("Expected up first, got %v (%v)", d, ok)
	}
	d, ok = b.Pop()
	if !ok || d != core.DirLeft {
		t.Errorf("Expected left second, got %v (%v)", d, ok)
	}
	if _, ok := b.Pop(); ok {
		t.Errorf("Expected empty buffer")
	}
}

func TestMaskHas(t *testing.T) {
	m := MaskPosition | MaskVelocity | MaskSnakeBody
	if !m.Has(MaskPosition | MaskSnakeBody) {
		t.Errorf("Expected mask to contain position and body")
	}
	if m.Has(MaskEdible) {
		t.Errorf("Expected mask without edible")
	}
	if got := len(m.Names()); got != 3 {
		t.Errorf("Expected 3 names, got %d", got)
	}
}
