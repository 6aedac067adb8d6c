// pdfattach - extract file attachments from PDF documents
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config holds the settings of a pdf-attach run.
//
// Settings come from command line flags.  A YAML file can supply values
// for flags which were not given explicitly.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/pdfattach/extract"
)

// Config is the configuration of a single run.
type Config struct {
	// Input is the PDF file to read.
	Input string

	// OutputDir is the directory attachments are written to.
	OutputDir string

	Interactive bool
	SafeNames   bool
	DryRun      bool
	Verbose     bool
}

// Request returns the extraction request described by cfg.
func (cfg *Config) Request() extract.Request {
	mode := extract.Batch
	if cfg.Interactive {
		mode = extract.Interactive
	}
	return extract.Request{OutputDir: cfg.OutputDir, Mode: mode}
}

// Check verifies that cfg describes a run which can be carried out.
func (cfg *Config) Check() error {
	if cfg.Input == "" {
		return errNoInput
	}
	if cfg.OutputDir == "" && !cfg.DryRun {
		return errNoOutput
	}
	return nil
}

var (
	errNoInput  = errors.New("no PDF file given")
	errNoOutput = errors.New("no output directory given (use -o=<dir>)")
)

// File is the schema of the configuration file.
type File struct {
	Output      string `yaml:"output"`
	Interactive *bool  `yaml:"interactive"`
	SafeNames   *bool  `yaml:"safeNames"`
	DryRun      *bool  `yaml:"dryRun"`
	Verbose     *bool  `yaml:"verbose"`
}

// Load reads a configuration file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc := &File{}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

// Apply copies the values from fc into cfg.  Settings whose names are
// listed in explicit were given on the command line and are left alone.
// The names are "output", "interactive", "safe-names", "dry-run" and
// "verbose".
func (fc *File) Apply(cfg *Config, explicit map[string]bool) {
	if fc.Output != "" && !explicit["output"] {
		cfg.OutputDir = fc.Output
	}
	setBool(&cfg.Interactive, fc.Interactive, explicit["interactive"])
	setBool(&cfg.SafeNames, fc.SafeNames, explicit["safe-names"])
	setBool(&cfg.DryRun, fc.DryRun, explicit["dry-run"])
	setBool(&cfg.Verbose, fc.Verbose, explicit["verbose"])
}

func setBool(dst *bool, val *bool, explicit bool) {
	if val != nil && !explicit {
		*dst = *val
	}
}
