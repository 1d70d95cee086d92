package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Sound Timing
const (
	EatSoundDuration     = 90 * time.Millisecond
	ContactSoundDuration = 150 * time.Millisecond
	LoseSoundDuration    = 500 * time.Millisecond
	WinNoteDuration      = 120 * time.Millisecond
)
