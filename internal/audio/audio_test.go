package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/game"
)

// drain reads a streamer to the end and returns the number of samples.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never ended")
	return 0
}

func TestPlayerSilentWithoutInit(t *testing.T) {
	p := NewPlayer(config.DefaultConfig().Audio, nil)

	assert.NotPanics(t, func() {
		p.PlayFlap()
		p.PlayGameOver()
		p.PlayEnemySpawn()
		p.PlayLoopingMusic()
		p.Close()
	})
	assert.Nil(t, p.music, "music does not start without a speaker")
}

func TestNewDisabledIsNop(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Audio.Enabled = false

	a, closeFn := New(cfg, nil)
	assert.Equal(t, game.NopAudio{}, a)
	assert.NotPanics(t, closeFn)
}

func TestLoadAssetsMissingDir(t *testing.T) {
	p := NewPlayer(config.DefaultConfig().Audio, nil)

	err := p.LoadAssets(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err, "missing files fall back to synthesized tones")
	for _, c := range cues {
		assert.False(t, p.Loaded(c), c.File())
	}
}

func TestLoadAssetsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CueFlap.File()), []byte("not an mp3"), 0o644))

	p := NewPlayer(config.DefaultConfig().Audio, nil)
	err := p.LoadAssets(dir)

	assert.Error(t, err)
	assert.False(t, p.Loaded(CueFlap))
}

func TestCueFiles(t *testing.T) {
	assert.Equal(t, "flap.mp3", CueFlap.File())
	assert.Equal(t, "gameover.mp3", CueGameOver.File())
	assert.Equal(t, "enemy.mp3", CueEnemy.File())
	assert.Equal(t, "bg.mp3", CueMusic.File())
	assert.Empty(t, Cue(42).File())
}

func TestSynthesizedCueLengths(t *testing.T) {
	rate := beep.SampleRate(1000)

	assert.Equal(t, 90, drain(t, synthFlap(rate)))
	assert.Equal(t, 780, drain(t, synthGameOver(rate)))
	assert.Equal(t, 250, drain(t, synthEnemy(rate)))

	music := synthMusic(rate)
	assert.Equal(t, 220*len(melody), music.Len())
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := newOscillator(0, 0, 100*time.Millisecond, WaveSquare, rate) // constant +1
	env := newEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, ok := env.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 100, n)

	assert.Equal(t, 0.0, buf[0][0], "attack starts silent")
	assert.Equal(t, 1.0, buf[50][0], "sustain at full level")
	assert.InDelta(t, 0.1, buf[99][0], 1e-9, "release fades out")
	assert.Equal(t, buf[50][0], buf[50][1], "mono in both channels")
}

func TestNewVolumeZeroIsSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := newVolume(newOscillator(0, 0, 10*time.Millisecond, WaveSquare, rate), 0)

	buf := make([][2]float64, 10)
	n, _ := s.Stream(buf)
	require.Equal(t, 10, n)
	for i := 0; i < n; i++ {
		assert.Zero(t, buf[i][0])
	}
}
