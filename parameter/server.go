package parameter

import "time"

// Headless server
const (
	ServerAddrDefault = ":8080"

	// SessionInputRate is the sustained direction requests per second per session
	SessionInputRate  = 20
	SessionInputBurst = 4

	SessionWriteTimeout = 5 * time.Second
	SessionPongTimeout  = 30 * time.Second
	SessionPingInterval = 20 * time.Second

	// SessionMaxMessageBytes bounds inbound websocket frames
	SessionMaxMessageBytes = 1024

	// ScoreboardTopDefault is the number of entries served by /scores
	ScoreboardTopDefault = 10
)
