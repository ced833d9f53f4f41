package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestGapSize(t *testing.T) {
	obs := Default().Obstacles

	for score := 0; score <= 40; score++ {
		want := 20 - score
		if want < 2 {
			want = 2
		}
		assert.Equal(t, want, obs.GapSize(score), "score %d", score)
	}

	assert.Equal(t, 2, obs.GapSize(18))
	assert.Equal(t, 2, obs.GapSize(1000))
	assert.Equal(t, 30, obs.GapRange())
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  flap_impulse: -3.5\n"))
	require.NoError(t, err)

	assert.Equal(t, -3.5, cfg.Physics.FlapImpulse)
	assert.Equal(t, 0.5, cfg.Physics.Gravity, "unset keys keep their defaults")
	assert.Equal(t, 80, cfg.Field.Width)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"narrow floor", "obstacles:\n  min_gap_size: 1\n"},
		{"empty gap range", "obstacles:\n  gap_min: 20\n  gap_max: 20\n"},
		{"gap outside field", "field:\n  height: 24\n"},
		{"upward gravity flap", "physics:\n  flap_impulse: 2\n"},
		{"zero frame duration", "physics:\n  frame_duration_ms: 0\n"},
		{"nan frame duration", "physics:\n  frame_duration_ms: .nan\n"},
		{"infinite frame duration", "physics:\n  frame_duration_ms: .inf\n"},
		{"nan flap impulse", "physics:\n  flap_impulse: .nan\n"},
		{"negative gravity", "physics:\n  gravity: -1\n"},
		{"zero terminal velocity", "physics:\n  terminal_velocity: 0\n"},
		{"nan sprite scale", "player:\n  sprite_scale: .nan\n"},
		{"nan screen x", "player:\n  screen_x: .nan\n"},
		{"spawn above field", "player:\n  start_y: -50\n"},
		{"spawn below field", "player:\n  start_y: 46\n"},
		{"malformed", "physics: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestScreenColumnRounds(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{2.0, 2},
		{4.4, 4},
		{4.5, 5},
		{4.6, 5},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Player{ScreenX: tc.x}.ScreenColumn(), "screen_x %v", tc.x)
	}
}

func TestFrameDuration(t *testing.T) {
	d := Default().Physics.FrameDuration()
	assert.Equal(t, int64(16660), d.Microseconds())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  start_y: 20\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Player.StartY)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("obstacles:\n  min_gap_size: 0\n"), 0o600))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".flappy", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flappy.yaml"), []byte("player:\n  restart_x: 4\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Player.RestartX)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// A broken user file is skipped
	dir := filepath.Join(home, ".flappy", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flappy.yaml"), []byte("field: [\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
