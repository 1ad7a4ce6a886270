package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/gridsnake/core"
)

// Command types accepted from clients
const (
	CommandDirection = "dir"
	CommandPause     = "pause"
	CommandReset     = "reset"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command is one client request; binary frames carry msgpack, text frames JSON
type Command struct {
	Type      string `msgpack:"t" json:"t"`
	Direction string `msgpack:"d,omitempty" json:"d,omitempty"`
}

// decodeCommand parses and validates a websocket frame
func decodeCommand(msgType int, data []byte) (Command, error) {
	var cmd Command
	var err error
	switch msgType {
	case websocket.BinaryMessage:
		err = msgpack.Unmarshal(data, &cmd)
	case websocket.TextMessage:
		err = json.Unmarshal(data, &cmd)
	default:
		return cmd, fmt.Errorf("frame type %d: %w", msgType, ErrUnknownCommand)
	}
	if err != nil {
		return cmd, fmt.Errorf("decode command: %w", err)
	}

	switch cmd.Type {
	case CommandPause, CommandReset:
		return cmd, nil
	case CommandDirection:
		if _, ok := parseDirection(cmd.Direction); !ok {
			return cmd, fmt.Errorf("direction %q: %w", cmd.Direction, ErrUnknownCommand)
		}
		return cmd, nil
	}
	return cmd, fmt.Errorf("type %q: %w", cmd.Type, ErrUnknownCommand)
}

func parseDirection(s string) (core.Direction, bool) {
	switch s {
	case "up":
		return core.DirUp, true
	case "down":
		return core.DirDown, true
	case "left":
		return core.DirLeft, true
	case "right":
		return core.DirRight, true
	}
	return core.DirNone, false
}
