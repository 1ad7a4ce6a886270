package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Sound effect identifiers placed on the audio queue
const (
	SoundEat   = "eat"
	SoundDeath = "death"
)

// Sound effect synthesis
const (
	SoundEatFrequency   = 880.0
	SoundEatDuration    = 60 * time.Millisecond
	SoundDeathFrequency = 110.0
	SoundDeathDuration  = 400 * time.Millisecond
	SoundVolume         = 0.3

	// MusicFrequency is the background drone root note
	MusicFrequency = 55.0
	MusicVolume    = 0.05
)
