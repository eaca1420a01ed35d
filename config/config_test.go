package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/ingenious/othello/board"
)

func TestDefaultConfig(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.Colour, board.Black)
	is.Equal(cfg.Depth, 5)
	is.Equal(cfg.TimeLimit, 5*time.Second)
	is.Equal(cfg.TimeOffset, 300*time.Millisecond)
	is.Equal(cfg.Workers, runtime.NumCPU())
	is.Equal(cfg.WorkerSubject, "othello.worker")
	is.Equal(cfg.NatsURL, "")
	is.True(!cfg.Debug)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"--colour", "white", "--depth", "3", "--time-limit", "2s",
		"--workers", "4", "--debug"})
	is.NoErr(err)
	is.Equal(cfg.Colour, board.White)
	is.Equal(cfg.Depth, 3)
	is.Equal(cfg.TimeLimit, 2*time.Second)
	is.Equal(cfg.Workers, 4)
	is.True(cfg.Debug)
	is.True(cfg.GetBool(ConfigDebug))
	// Untouched settings keep their defaults.
	is.Equal(cfg.TimeOffset, 300*time.Millisecond)
}

func TestLoadEnvAndFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "othello.yaml")
	err := os.WriteFile(path, []byte("depth: 7\nworkers: 2\ncolour: w\n"), 0644)
	is.NoErr(err)
	t.Setenv("OTHELLO_WORKERS", "6")
	t.Setenv("OTHELLO_TIME_OFFSET", "100ms")

	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--config", path}))
	is.Equal(cfg.Depth, 7)
	is.Equal(cfg.Colour, board.White)
	is.Equal(cfg.Workers, 6)
	is.Equal(cfg.TimeOffset, 100*time.Millisecond)

	// Flags win over everything.
	is.NoErr(cfg.Load([]string{"--config", path, "--workers", "3"}))
	is.Equal(cfg.Workers, 3)
}

func TestLoadErrors(t *testing.T) {
	cases := [][]string{
		{"--colour", "green"},
		{"--workers", "0"},
		{"--depth", "-1"},
		{"--config", "/does/not/exist.yaml"},
		{"--no-such-flag"},
	}
	for _, args := range cases {
		cfg := &Config{}
		assert.Error(t, cfg.Load(args), "args %v", args)
	}
	cfg := &Config{}
	err := cfg.Load([]string{"--colour", "green"})
	assert.True(t, errors.Is(err, ErrBadConfig))
	assert.True(t, errors.Is(err, board.ErrInvalidPlayer))
}

func TestSet(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.NoErr(cfg.Set(ConfigDepth, "2"))
	is.Equal(cfg.Depth, 2)
	is.NoErr(cfg.Set(ConfigTimeLimit, "750ms"))
	is.Equal(cfg.TimeLimit, 750*time.Millisecond)

	err := cfg.Set(ConfigWorkers, "0")
	is.True(errors.Is(err, ErrBadConfig))
	is.Equal(cfg.Workers, runtime.NumCPU())

	err = cfg.Set("lexicon", "NWL23")
	is.True(errors.Is(err, ErrBadConfig))
}

func TestYAML(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.NoErr(cfg.Set(ConfigColour, "white"))
	out, err := cfg.YAML()
	is.NoErr(err)

	var dumped map[string]any
	is.NoErr(yaml.Unmarshal([]byte(out), &dumped))
	is.Equal(dumped["colour"], "white")
	is.Equal(dumped["depth"], 5)
	is.Equal(dumped["time-limit"], "5s")
	is.Equal(dumped["worker-subject"], "othello.worker")
}

func TestSetupLoggingToFile(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "player.log")
	closer, err := cfg.SetupLogging()
	is.NoErr(err)
	is.NoErr(closer.Close())
	_, err = os.Stat(cfg.LogFile)
	is.NoErr(err)
}
