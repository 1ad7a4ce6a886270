// Package terminal draws world snapshots on a tcell screen and translates keys into game commands
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsnake/core"
)

// Action is what a key asks the host to do
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionPause
	ActionReset
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionPause:
		return "pause"
	case ActionReset:
		return "reset"
	case ActionQuit:
		return "quit"
	}
	return "none"
}

// Command is a translated key press; Direction is set for ActionMove
type Command struct {
	Action    Action
	Direction core.Direction
}

var runeDirections = map[rune]core.Direction{
	'w': core.DirUp, 'k': core.DirUp,
	's': core.DirDown, 'j': core.DirDown,
	'a': core.DirLeft, 'h': core.DirLeft,
	'd': core.DirRight, 'l': core.DirRight,
}

// TranslateKey maps arrows, WASD and hjkl to moves; p/space pause, r resets, q/Esc/Ctrl-C quit
func TranslateKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return Command{Action: ActionMove, Direction: core.DirUp}
	case tcell.KeyDown:
		return Command{Action: ActionMove, Direction: core.DirDown}
	case tcell.KeyLeft:
		return Command{Action: ActionMove, Direction: core.DirLeft}
	case tcell.KeyRight:
		return Command{Action: ActionMove, Direction: core.DirRight}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyRune:
	default:
		return Command{}
	}

	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if d, ok := runeDirections[r]; ok {
		return Command{Action: ActionMove, Direction: d}
	}
	switch r {
	case 'p', ' ':
		return Command{Action: ActionPause}
	case 'r':
		return Command{Action: ActionReset}
	case 'q':
		return Command{Action: ActionQuit}
	}
	return Command{}
}
