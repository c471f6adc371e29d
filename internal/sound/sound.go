// Package sound plays the short cue that marks every new wave.
package sound

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate = beep.SampleRate(44100)
	blipFreq   = 880
	blipLength = 80 * time.Millisecond
)

// Trigger fires a one-shot sound.
type Trigger interface {
	Play()
}

// Nop is a Trigger that does nothing.
type Nop struct{}

// Play does nothing.
func (Nop) Play() {}

// The speaker is process-wide; every Player shares one initialization.
var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	return speakerErr
}

// Player plays a WAV file on every call to Play, or a generated sine blip
// when the file is missing or unreadable. All failures are swallowed so a
// machine without an audio device still runs the game.
type Player struct {
	mu     sync.Mutex
	file   string
	logger *log.Logger
	buf    *beep.Buffer
	ready  bool
	failed bool
}

// NewPlayer creates a player for the given WAV file. An empty path always
// uses the blip.
func NewPlayer(file string, logger *log.Logger) *Player {
	return &Player{file: file, logger: logger}
}

// Play starts the sound and returns immediately.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failed {
		return
	}
	if !p.ready {
		if err := initSpeaker(); err != nil {
			p.failed = true
			p.debug("audio unavailable", "err", err)
			return
		}
		p.buf = p.load()
		p.ready = true
	}

	speaker.Play(p.buf.Streamer(0, p.buf.Len()))
}

// Close stops anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		speaker.Clear()
	}
}

func (p *Player) load() *beep.Buffer {
	if p.file != "" {
		buf, err := LoadWAV(p.file)
		if err == nil {
			return buf
		}
		p.debug("falling back to blip", "file", p.file, "err", err)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(Blip())
	return buf
}

func (p *Player) debug(msg string, kv ...interface{}) {
	if p.logger != nil {
		p.logger.Debug(msg, kv...)
	}
}

// LoadWAV decodes a WAV file into memory, resampled to the speaker rate.
func LoadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sound: open %s: %w", path, err)
	}

	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close() //nolint:errcheck
		return nil, fmt.Errorf("sound: decode %s: %w", path, err)
	}
	defer stream.Close() //nolint:errcheck

	var s beep.Streamer = stream
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, stream)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: format.NumChannels, Precision: format.Precision})
	buf.Append(s)
	return buf, nil
}

// Blip returns a short, quiet sine tone.
func Blip() beep.Streamer {
	tone, err := generators.SineTone(sampleRate, blipFreq)
	if err != nil {
		return beep.Silence(sampleRate.N(blipLength))
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(blipLength), tone),
		Base:     2,
		Volume:   -2,
	}
}
