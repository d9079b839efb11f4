// Package config holds the machine configuration and loads it from
// defaults, a TOML or YAML file, and the environment.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gitlab.com/efronlicht/enve"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/bfvm/translate"
	"github.com/ezrec/bfvm/vm"
)

var f = translate.From

var (
	ErrDataLength = errors.New(f("data length must be positive"))
	ErrExtend     = errors.New(f("extend level must not be negative"))
	ErrTickLimit  = errors.New(f("tick limit must not be negative"))
	ErrColor      = errors.New(f("color must be auto, always or never"))
	ErrFormat     = errors.New(f("unknown config file format"))
)

// Color modes of the diagnostic dump.
const (
	COLOR_AUTO   = "auto"
	COLOR_ALWAYS = "always"
	COLOR_NEVER  = "never"
)

const (
	DATA_LENGTH = 1000 // Default data region length.
	ENV_PREFIX  = "BFVM_"
)

// Config is the machine and tool configuration.
type Config struct {
	DataLength int    `toml:"data_length" yaml:"data_length"`
	Extend     int    `toml:"extend" yaml:"extend"`
	Precompute bool   `toml:"precompute" yaml:"precompute"`
	TickLimit  int    `toml:"tick_limit" yaml:"tick_limit"`
	Dump       bool   `toml:"dump" yaml:"dump"`
	Color      string `toml:"color" yaml:"color"`
	Verbose    bool   `toml:"verbose" yaml:"verbose"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		DataLength: DATA_LENGTH,
		Extend:     vm.EXTEND_NONE,
		Color:      COLOR_AUTO,
	}
}

// ErrConfig indicates which file or variable failed to load.
type ErrConfig struct {
	Source string
	Err    error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Source, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// Load merges a configuration file over cfg. Keys missing from the file
// keep their current values. The format is chosen by extension: .toml,
// .yaml or .yml.
func (cfg *Config) Load(path string) (err error) {
	defer func() {
		if err != nil {
			err = &ErrConfig{Source: path, Err: err}
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = ErrFormat
	}

	return
}

// lookupEnv parses ENV_PREFIX+key into value. An unset variable leaves
// value alone.
func lookupEnv[T any](parse func(string) (T, error), key string, value *T) (err error) {
	key = ENV_PREFIX + key
	if _, ok := os.LookupEnv(key); !ok {
		return nil
	}

	got, err := enve.Lookup(parse, key)
	if err != nil {
		return &ErrConfig{Source: "$" + key, Err: err}
	}

	*value = got
	return
}

func parseString(s string) (string, error) {
	return s, nil
}

// FromEnv merges BFVM_* environment variables over cfg.
func (cfg *Config) FromEnv() (err error) {
	return errors.Join(
		lookupEnv(strconv.Atoi, "DATA_LENGTH", &cfg.DataLength),
		lookupEnv(strconv.Atoi, "EXTEND", &cfg.Extend),
		lookupEnv(strconv.ParseBool, "PRECOMPUTE", &cfg.Precompute),
		lookupEnv(strconv.Atoi, "TICK_LIMIT", &cfg.TickLimit),
		lookupEnv(parseString, "COLOR", &cfg.Color),
	)
}

// Validate checks the configuration. A zero data length is refused here,
// since no machine can run without a data region.
func (cfg *Config) Validate() (err error) {
	var errs []error

	if cfg.DataLength <= 0 {
		errs = append(errs, ErrDataLength)
	}
	if cfg.Extend < vm.EXTEND_NONE {
		errs = append(errs, ErrExtend)
	}
	if cfg.TickLimit < 0 {
		errs = append(errs, ErrTickLimit)
	}
	switch cfg.Color {
	case COLOR_AUTO, COLOR_ALWAYS, COLOR_NEVER:
	default:
		errs = append(errs, ErrColor)
	}

	return errors.Join(errs...)
}

// Options returns the machine options.
func (cfg *Config) Options() vm.Options {
	return vm.Options{
		Extend:     cfg.Extend,
		Precompute: cfg.Precompute,
		TickLimit:  cfg.TickLimit,
	}
}
