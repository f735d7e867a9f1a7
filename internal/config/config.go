// Package config resolves and validates the generator's inputs from
// defaults, an optional TOML config file and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Defaults for the generation knobs.
const (
	DefaultMaxLengthLimit  = 2048
	DefaultLengthLimitStep = 128
)

// Options holds the validated inputs of one generation run.
type Options struct {
	OutDir          string
	MaxLengthLimit  int
	LengthLimitStep int
	Quiet           bool
}

// Default returns Options populated with the built-in defaults.
func Default() Options {
	return Options{
		MaxLengthLimit:  DefaultMaxLengthLimit,
		LengthLimitStep: DefaultLengthLimitStep,
	}
}

// File is the TOML config-file shape:
//
//	[generate]
//	out_dir = "include/boost/metaparse/v1/impl"
//	max_length_limit = 2048
//	length_limit_step = 128
type File struct {
	Generate struct {
		OutDir          string `toml:"out_dir"`
		MaxLengthLimit  int    `toml:"max_length_limit"`
		LengthLimitStep int    `toml:"length_limit_step"`
	} `toml:"generate"`
}

// LoadFile reads a config file. A missing file is an error: the file
// is only read when the user asked for one.
func LoadFile(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &f, nil
}

// ApplyFile overrides options with the values the config file sets.
func (o *Options) ApplyFile(f *File) {
	if f.Generate.OutDir != "" {
		o.OutDir = f.Generate.OutDir
	}
	if f.Generate.MaxLengthLimit != 0 {
		o.MaxLengthLimit = f.Generate.MaxLengthLimit
	}
	if f.Generate.LengthLimitStep != 0 {
		o.LengthLimitStep = f.Generate.LengthLimitStep
	}
}

// Validate rejects invalid inputs before any file I/O happens.
func (o *Options) Validate() error {
	if o.MaxLengthLimit < 1 {
		return fmt.Errorf("invalid maximum length limit %d: a positive number is expected", o.MaxLengthLimit)
	}
	if o.LengthLimitStep < 1 {
		return fmt.Errorf("invalid length limit step %d: a positive number is expected", o.LengthLimitStep)
	}
	if o.OutDir == "" {
		return errors.New("no output directory given")
	}
	info, err := os.Stat(o.OutDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("path %s not found", o.OutDir)
		}
		return fmt.Errorf("stat %s: %w", o.OutDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %s is not a directory", o.OutDir)
	}
	return nil
}
