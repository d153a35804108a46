// Package audio defines the fire-and-forget sound interface the simulation
// emits cues through. Playback itself lives in the platform frontends.
package audio

import (
	"github.com/charmbracelet/log"
)

//go:generate go tool mockgen -destination=./mocks/sink_mock.go -package=mocks . Sink

// Channel is a mixer channel. A new cue on a busy channel replaces the old one.
type Channel int

const (
	ChannelMusic  Channel = 0
	ChannelShots  Channel = 1
	ChannelAlerts Channel = 3
)

// SoundID names a sound asset (file stem, e.g. "gunShot" for gunShot.wav).
type SoundID string

const (
	SoundMusic SoundID = "music"
	SoundLost  SoundID = "lost"
)

// Sink plays sounds. Play must not block on playback.
type Sink interface {
	Play(ch Channel, id SoundID)
}

// Nop discards every cue.
type Nop struct{}

// Play implements Sink.
func (Nop) Play(Channel, SoundID) {}

// LogSink reports cues to a logger at debug level.
// The terminal frontend uses it since it cannot play sound.
type LogSink struct {
	Logger *log.Logger
}

// Play implements Sink.
func (s LogSink) Play(ch Channel, id SoundID) {
	l := s.Logger
	if l == nil {
		l = log.Default()
	}
	l.Debug("sound", "channel", int(ch), "id", string(id))
}

// Emitter is implemented by games that produce sound cues.
type Emitter interface {
	SetSink(s Sink)
}
