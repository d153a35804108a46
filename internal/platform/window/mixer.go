package window

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/zombie-arcade/internal/audio"
)

// SampleRate of the audio context every clip is decoded for.
const SampleRate = 48000

// LoadClips decodes every sounds/*.wav file in fsys into PCM, keyed by file
// stem. No sounds directory yields an empty set.
func LoadClips(fsys fs.FS, sampleRate int) (map[audio.SoundID][]byte, error) {
	names, err := fs.Glob(fsys, "sounds/*.wav")
	if err != nil {
		return nil, fmt.Errorf("window: list sounds: %w", err)
	}

	clips := make(map[audio.SoundID][]byte, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("window: read %s: %w", name, err)
		}
		stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("window: decode %s: %w", name, err)
		}
		pcm, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("window: decode %s: %w", name, err)
		}
		id := audio.SoundID(strings.TrimSuffix(path.Base(name), path.Ext(name)))
		clips[id] = pcm
	}
	return clips, nil
}

// Mixer plays cues on ebiten audio players, one voice per channel.
// A new cue on a busy channel cuts the previous one. The music clip, if
// present, loops on ChannelMusic.
type Mixer struct {
	ctx      *ebaudio.Context
	clips    map[audio.SoundID][]byte
	settings *SettingsManager
	logger   *log.Logger
	voices   map[audio.Channel]*ebaudio.Player
	music    *ebaudio.Player
}

// NewMixer creates a mixer. A nil context makes every cue silent.
func NewMixer(ctx *ebaudio.Context, clips map[audio.SoundID][]byte, settings *SettingsManager, logger *log.Logger) *Mixer {
	if logger == nil {
		logger = log.Default()
	}
	if settings == nil {
		settings = NewSettingsManager(nil, logger)
	}
	m := &Mixer{
		ctx:      ctx,
		clips:    clips,
		settings: settings,
		logger:   logger,
		voices:   make(map[audio.Channel]*ebaudio.Player),
	}

	if pcm, ok := clips[audio.SoundMusic]; ok && ctx != nil {
		loop := ebaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		p, err := ctx.NewPlayer(loop)
		if err != nil {
			logger.Warn("music disabled", "error", err)
		} else {
			m.music = p
		}
	}
	return m
}

// Play implements audio.Sink.
func (m *Mixer) Play(ch audio.Channel, id audio.SoundID) {
	vol := m.volume(ch)
	if vol == 0 || m.ctx == nil {
		return
	}
	pcm, ok := m.clips[id]
	if !ok {
		m.logger.Debug("sound not loaded", "id", string(id))
		return
	}

	if old := m.voices[ch]; old != nil {
		old.Pause()
		_ = old.Close()
	}
	p := m.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(vol)
	p.Play()
	m.voices[ch] = p
}

// SetMusicPlaying starts or pauses the music loop. Volume changes apply on
// the next call.
func (m *Mixer) SetMusicPlaying(on bool) {
	if m.music == nil {
		return
	}
	vol := m.volume(audio.ChannelMusic)
	m.music.SetVolume(vol)

	switch {
	case on && vol > 0 && !m.music.IsPlaying():
		m.music.Play()
	case (!on || vol == 0) && m.music.IsPlaying():
		m.music.Pause()
	}
}

// volume returns the playback volume for a channel, 0 when muted.
func (m *Mixer) volume(ch audio.Channel) float64 {
	s := m.settings.Settings()
	if ch == audio.ChannelMusic {
		if !s.MusicEnabled {
			return 0
		}
		return s.MusicVolume
	}
	if !s.SoundEnabled {
		return 0
	}
	return s.SoundVolume
}
