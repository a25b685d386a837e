// Package audio plays flapper's sound cues through the system speaker.
//
// Cues come from mp3 files in the assets directory when present and from
// small synthesized tones otherwise. Every operation degrades to silence
// when the speaker is unavailable, so callers never handle audio errors.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a sound.
type Cue int

const (
	CueFlap Cue = iota
	CueGameOver
	CueEnemy
	CueMusic
)

// File returns the asset file name of the cue.
func (c Cue) File() string {
	switch c {
	case CueFlap:
		return "flap.mp3"
	case CueGameOver:
		return "gameover.mp3"
	case CueEnemy:
		return "enemy.mp3"
	case CueMusic:
		return "bg.mp3"
	default:
		return ""
	}
}

var cues = []Cue{CueFlap, CueGameOver, CueEnemy, CueMusic}

// speaker.Init may only run once per process.
var (
	speakerOnce sync.Once
	speakerErr  error
)

// Player implements game.Audio on top of a beep mixer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	buffers     map[Cue]*beep.Buffer
	music       *beep.Ctrl
	musicVol    float64
	effectsVol  float64
	initialized bool
	logger      *log.Logger
}

var _ game.Audio = (*Player)(nil)

// NewPlayer creates a player with the volumes from cfg. It stays silent
// until Init succeeds. A nil logger discards output.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:      &beep.Mixer{},
		buffers:    make(map[Cue]*beep.Buffer),
		musicVol:   cfg.MusicVolume,
		effectsVol: cfg.EffectsVolume,
		logger:     logger,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	})
	if speakerErr != nil {
		return fmt.Errorf("audio: speaker init: %w", speakerErr)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// LoadAssets decodes the cue files found in dir. Missing files are not an
// error; their cues use synthesized tones. Decode failures are joined into
// the returned error and the remaining files still load.
func (p *Player) LoadAssets(dir string) error {
	var errs []error
	for _, c := range cues {
		path := filepath.Join(dir, c.File())
		buf, err := loadMP3(path)
		if errors.Is(err, os.ErrNotExist) {
			p.logger.Debug("sound asset missing, using synthesized tone", "file", path)
			continue
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}

		p.mu.Lock()
		p.buffers[c] = buf
		p.mu.Unlock()
	}
	return errors.Join(errs...)
}

// loadMP3 decodes a whole file into memory at the speaker's sample rate.
func loadMP3(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stream, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, stream)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: format.Precision})
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", path, err)
	}
	return buf, nil
}

// Loaded reports whether the cue comes from an asset file.
func (p *Player) Loaded(c Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.buffers[c] != nil
}

// PlayFlap plays the flap cue.
func (p *Player) PlayFlap() { p.playEffect(CueFlap) }

// PlayGameOver plays the game-over cue.
func (p *Player) PlayGameOver() { p.playEffect(CueGameOver) }

// PlayEnemySpawn plays the enemy cue.
func (p *Player) PlayEnemySpawn() { p.playEffect(CueEnemy) }

// PlayLoopingMusic starts the background music. It does nothing if the
// music is already playing.
func (p *Player) PlayLoopingMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.music != nil {
		return
	}

	buf := p.buffers[CueMusic]
	if buf == nil {
		buf = synthMusic(sampleRate)
	}

	loop := beep.Loop(-1, buf.Streamer(0, buf.Len()))
	p.music = &beep.Ctrl{Streamer: newVolume(loop, p.musicVol)}
	speaker.Lock()
	p.mixer.Add(p.music)
	speaker.Unlock()
}

func (p *Player) playEffect(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s := newVolume(p.effectStreamer(c), p.effectsVol)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// effectStreamer returns a fresh streamer for the cue. Caller holds mu.
func (p *Player) effectStreamer(c Cue) beep.Streamer {
	if buf := p.buffers[c]; buf != nil {
		return buf.Streamer(0, buf.Len())
	}
	switch c {
	case CueGameOver:
		return synthGameOver(sampleRate)
	case CueEnemy:
		return synthEnemy(sampleRate)
	default:
		return synthFlap(sampleRate)
	}
}

// Close stops all sound. The speaker stays open for the process lifetime.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
		p.music = nil
	}
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// New returns a ready game.Audio for cfg: an initialized Player, or
// game.NopAudio when audio is disabled or the speaker cannot open.
// The returned close function is always safe to call.
func New(cfg config.Config, logger *log.Logger) (game.Audio, func()) {
	if !cfg.Audio.Enabled {
		return game.NopAudio{}, func() {}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := NewPlayer(cfg.Audio, logger)
	if err := p.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return game.NopAudio{}, func() {}
	}
	if err := p.LoadAssets(cfg.AssetsDir); err != nil {
		logger.Warn("some sound assets failed to load", "err", err)
	}
	return p, p.Close
}
