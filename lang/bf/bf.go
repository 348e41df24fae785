// This file is part of bfvm - https://github.com/db47h/bfvm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bf provides dialect settings and helpers for running brainfuck
// programs with the github.com/db47h/bfvm/vm package.
//
// Dialects differ mostly in what happens when reading past the end of the
// input and in how large the tape may grow. These settings can be stored in a
// YAML file:
//
//	eof: zero          # unchanged | zero | minus-one
//	tape_size: 30000   # initial tape capacity
//	max_tape: 0        # maximum tape size, 0 means unbounded
package bf

import (
	"io"
	"os"

	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the dialect settings for a VM instance. The zero value selects
// the VM defaults.
type Config struct {
	EOF      string `yaml:"eof"`
	TapeSize int    `yaml:"tape_size"`
	MaxTape  int    `yaml:"max_tape"`
}

// DecodeConfig reads a YAML dialect configuration from r. Unknown keys are
// rejected.
func DecodeConfig(r io.Reader) (*Config, error) {
	var c Config
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&c); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode failed")
	}
	if _, err := c.Options(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadConfig loads a YAML dialect configuration from file fileName.
func LoadConfig(fileName string) (*Config, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "LoadConfig")
	}
	defer f.Close()
	c, err := DecodeConfig(f)
	if err != nil {
		return nil, errors.Wrapf(err, "LoadConfig %s", fileName)
	}
	return c, nil
}

// Options returns the VM options matching the configuration.
func (c *Config) Options() ([]vm.Option, error) {
	var opts []vm.Option
	if c.EOF != "" {
		p, err := vm.ParseEOFPolicy(c.EOF)
		if err != nil {
			return nil, err
		}
		opts = append(opts, vm.EOF(p))
	}
	if c.TapeSize < 0 {
		return nil, errors.Errorf("invalid tape size %d", c.TapeSize)
	}
	if c.TapeSize > 0 {
		opts = append(opts, vm.TapeSize(c.TapeSize))
	}
	if c.MaxTape < 0 {
		return nil, errors.Errorf("invalid max tape size %d", c.MaxTape)
	}
	if c.MaxTape > 0 {
		opts = append(opts, vm.MaxTapeSize(c.MaxTape))
	}
	return opts, nil
}
