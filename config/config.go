// Package config loads process settings from flags, environment variables
// (prefixed OTHELLO_) and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ingenious/othello/board"
)

const (
	ConfigDebug         = "debug"
	ConfigLogFile       = "log-file"
	ConfigColour        = "colour"
	ConfigDepth         = "depth"
	ConfigTimeLimit     = "time-limit"
	ConfigTimeOffset    = "time-offset"
	ConfigWorkers       = "workers"
	ConfigWorkerID      = "worker-id"
	ConfigNatsURL       = "nats-url"
	ConfigWorkerSubject = "worker-subject"
	ConfigFile          = "config"
)

const EnvPrefix = "OTHELLO"

var ErrBadConfig = errors.New("bad config")

// Config is the effective configuration of a process.
type Config struct {
	Debug   bool   `yaml:"debug"`
	LogFile string `yaml:"log-file"`

	Colour     board.Colour  `yaml:"-"`
	Depth      int           `yaml:"depth"`
	TimeLimit  time.Duration `yaml:"time-limit"`
	TimeOffset time.Duration `yaml:"time-offset"`

	// Workers is the number of search units taking part in each move,
	// including the coordinator's own.
	Workers       int    `yaml:"workers"`
	WorkerID      int    `yaml:"worker-id"`
	NatsURL       string `yaml:"nats-url"`
	WorkerSubject string `yaml:"worker-subject"`

	v *viper.Viper
}

func defaults() map[string]any {
	return map[string]any{
		ConfigDebug:         false,
		ConfigLogFile:       "",
		ConfigColour:        "black",
		ConfigDepth:         5,
		ConfigTimeLimit:     5 * time.Second,
		ConfigTimeOffset:    300 * time.Millisecond,
		ConfigWorkers:       runtime.NumCPU(),
		ConfigWorkerID:      1,
		ConfigNatsURL:       "",
		ConfigWorkerSubject: "othello.worker",
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	for k, val := range defaults() {
		v.SetDefault(k, val)
	}
	return v
}

// DefaultConfig returns the built-in defaults, ignoring flags, environment
// and files.
func DefaultConfig() *Config {
	c := &Config{v: newViper()}
	if err := c.adjust(); err != nil {
		panic(err)
	}
	return c
}

// FlagSet declares every setting as a command-line flag.
func FlagSet(name string) *pflag.FlagSet {
	d := defaults()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Bool(ConfigDebug, d[ConfigDebug].(bool), "turn on debug logging")
	fs.String(ConfigLogFile, d[ConfigLogFile].(string), "write logs to this file instead of stderr")
	fs.String(ConfigColour, d[ConfigColour].(string), "colour this player plays: black or white")
	fs.Int(ConfigDepth, d[ConfigDepth].(int), "search depth below each root move")
	fs.Duration(ConfigTimeLimit, d[ConfigTimeLimit].(time.Duration), "time limit per root move; 0 for none")
	fs.Duration(ConfigTimeOffset, d[ConfigTimeOffset].(time.Duration), "safety margin kept back from the time limit")
	fs.Int(ConfigWorkers, d[ConfigWorkers].(int), "number of search workers, including the coordinator")
	fs.Int(ConfigWorkerID, d[ConfigWorkerID].(int), "id of this worker process")
	fs.String(ConfigNatsURL, d[ConfigNatsURL].(string), "NATS server for remote workers; empty searches in-process")
	fs.String(ConfigWorkerSubject, d[ConfigWorkerSubject].(string), "subject prefix remote workers listen on")
	fs.String(ConfigFile, "", "path to a YAML config file")
	return fs
}

// Load parses args and merges them over the environment, the config file
// named by --config, and the defaults, in that order of precedence.
func (c *Config) Load(args []string) error {
	fs := FlagSet("othello")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.LoadFlags(fs)
}

// LoadFlags is Load for a flag set that has already been parsed.
func (c *Config) LoadFlags(fs *pflag.FlagSet) error {
	v := newViper()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	if path := v.GetString(ConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
	}
	c.v = v
	return c.adjust()
}

func (c *Config) adjust() error {
	colour, err := board.ParseColour(c.v.GetString(ConfigColour))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	c.Colour = colour
	c.Debug = c.v.GetBool(ConfigDebug)
	c.LogFile = c.v.GetString(ConfigLogFile)
	c.Depth = c.v.GetInt(ConfigDepth)
	c.TimeLimit = c.v.GetDuration(ConfigTimeLimit)
	c.TimeOffset = c.v.GetDuration(ConfigTimeOffset)
	c.Workers = c.v.GetInt(ConfigWorkers)
	c.WorkerID = c.v.GetInt(ConfigWorkerID)
	c.NatsURL = c.v.GetString(ConfigNatsURL)
	c.WorkerSubject = c.v.GetString(ConfigWorkerSubject)

	switch {
	case c.Depth < 0:
		return fmt.Errorf("%w: depth %d", ErrBadConfig, c.Depth)
	case c.Workers < 1:
		return fmt.Errorf("%w: need at least one worker, have %d", ErrBadConfig, c.Workers)
	case c.WorkerID < 0:
		return fmt.Errorf("%w: worker id %d", ErrBadConfig, c.WorkerID)
	case c.TimeOffset < 0:
		return fmt.Errorf("%w: negative time offset", ErrBadConfig)
	}
	return nil
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// Set overrides one setting. The old value is kept if the new one does not
// validate.
func (c *Config) Set(key, value string) error {
	if _, ok := defaults()[key]; !ok {
		return fmt.Errorf("%w: unknown setting %q", ErrBadConfig, key)
	}
	old := c.v.Get(key)
	c.v.Set(key, value)
	if err := c.adjust(); err != nil {
		c.v.Set(key, old)
		if rerr := c.adjust(); rerr != nil {
			panic(rerr)
		}
		return err
	}
	return nil
}

type yamlConfig struct {
	Colour string `yaml:"colour"`
	Config `yaml:",inline"`
}

// YAML dumps the effective settings.
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(yamlConfig{Colour: c.Colour.String(), Config: *c})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
