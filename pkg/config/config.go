// Mediacore
// Copyright (c) 2026 The Mediacore Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Mediacore.
//
// Mediacore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mediacore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mediacore.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/mediacore/mediacore/pkg/helpers/syncutil"
)

const (
	SchemaVersion = 1
	CfgEnv        = "MEDIACORE_CFG"

	OutputText = "text"
	OutputJSON = "json"
	OutputCSV  = "csv"
	OutputYAML = "yaml"
)

var ErrSchemaMismatch = errors.New("schema version mismatch")

type Values struct {
	Search       map[string]Search `toml:"search,omitempty" validate:"dive"`
	Matcher      Matcher           `toml:"matcher"`
	Output       Output            `toml:"output"`
	Organizer    Organizer         `toml:"organizer"`
	ConfigSchema int               `toml:"config_schema"`
	DebugLogging bool              `toml:"debug_logging"`
}

type Matcher struct {
	Mode          string  `toml:"mode" validate:"omitempty,oneof=default all tv word_loose word_contains wordLoose wordContains"`
	MinSimilarity float64 `toml:"min_similarity" validate:"gte=0,lte=1"`
}

type Output struct {
	Format  string `toml:"format" validate:"oneof=text json csv yaml"`
	Workers int    `toml:"workers" validate:"gte=1,lte=64"`
}

type Organizer struct {
	TVSizeMaxMB float64 `toml:"tv_size_max_mb" validate:"gte=0"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Matcher: Matcher{
		MinSimilarity: 0.8,
	},
	Output: Output{
		Format:  OutputText,
		Workers: 4,
	},
	Organizer: Organizer{
		TVSizeMaxMB: 600,
	},
	Search: map[string]Search{
		"anime": {SizeMin: 100, SizeMax: 2000, ExcludeRaw: []string{`\b1080p\b`}},
		"movies": {
			SizeMin:    500,
			SizeMax:    3000,
			IncludeRaw: []string{`\b(br|bd|dvd|hd)rip\b`},
			ExcludeRaw: []string{`\b1080p\b`},
		},
		"music": {SizeMin: 20, SizeMax: 500},
		"tv": {
			SizeMin:    100,
			SizeMax:    2000,
			IncludeRaw: []string{`\b([hp]dtv|dsr(ip)?)\b`},
			ExcludeRaw: []string{`\b1080p\b`},
		},
	},
}

type Instance struct {
	fs       afero.Fs
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("lang", validateLanguage); err != nil {
		panic(err)
	}
	return v
}()

// NewConfig loads the config file from configDir, or from the path in
// MEDIACORE_CFG when set. A missing file is created from defaults.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(fs afero.Fs, configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		fs:       fs,
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	exists, err := afero.Exists(fs, cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if !exists {
		log.Info().Msg("saving new default config to disk")

		err := fs.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err = cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := afero.ReadFile(c.fs, c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// file values override defaults, missing keys keep them
	newVals := c.defaults
	newVals.Search = make(map[string]Search, len(c.defaults.Search))
	for k, v := range c.defaults.Search {
		newVals.Search[k] = v
	}
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return ErrSchemaMismatch
	}

	if err := validateValues(&newVals); err != nil {
		return err
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(c.fs, c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

// MatcherMode returns the configured matcher mode, "" meaning auto.
func (c *Instance) MatcherMode() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Matcher.Mode
}

func (c *Instance) MinSimilarity() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Matcher.MinSimilarity
}

func (c *Instance) OutputFormat() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Output.Format == "" {
		return OutputText
	}
	return c.vals.Output.Format
}

func (c *Instance) SetOutputFormat(format string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.vals
	next.Output.Format = format
	if err := validateValues(&next); err != nil {
		return err
	}
	c.vals.Output.Format = format
	return nil
}

func (c *Instance) Workers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return max(c.vals.Output.Workers, 1)
}

func (c *Instance) TVSizeMaxMB() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Organizer.TVSizeMaxMB
}
