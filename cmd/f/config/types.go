// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/AleutianAI/f/pkg/ident"
)

const (
	// DefaultEditor is used when neither $EDITOR nor the config file
	// names an editor.
	DefaultEditor = "vim"
)

// Config is f's on-disk configuration.
//
// Every field has a working default; a missing or empty config file is
// never an error. Fields that fail validation are individually replaced
// by their defaults rather than aborting the run, since f must keep
// working even with a broken config.
type Config struct {
	// Editor is the command used by the edit action.
	// Overridden by $EDITOR at lookup time.
	Editor string `yaml:"editor"`

	// IDChars is the identifier alphabet, an ordered set of distinct
	// characters. Changing it changes every fingerprint, so memorized
	// identifiers stop working. At least 2 distinct characters.
	IDChars string `yaml:"id_chars" validate:"omitempty,alphabet"`

	// LogDir enables file logging when set, e.g. "~/.f/logs".
	// Empty disables file logging.
	LogDir string `yaml:"log_dir,omitempty"`
}

// cfgValidate is the validator instance for config types.
// Initialized in init() with custom validators.
var cfgValidate *validator.Validate

func init() {
	cfgValidate = validator.New()
	_ = cfgValidate.RegisterValidation("alphabet", validateAlphabet)
}

// validateAlphabet checks that the field holds at least two distinct runes.
// Rune-wise, not byte-wise: a two-symbol multi-byte alphabet is valid.
func validateAlphabet(fl validator.FieldLevel) bool {
	seen := make(map[rune]bool)
	for _, r := range fl.Field().String() {
		seen[r] = true
	}
	return len(seen) >= 2
}

// Validate reports whether the config is structurally sound.
//
// A failed validation is a warning condition, not a fatal one: callers
// log it and rely on the accessor fallbacks below.
func (c *Config) Validate() error {
	return cfgValidate.Struct(c)
}

// DefaultConfig returns the configuration used on first run and as the
// fallback for invalid fields.
func DefaultConfig() Config {
	return Config{
		Editor:  DefaultEditor,
		IDChars: ident.DefaultAlphabet,
	}
}

// Alphabet returns the identifier alphabet with duplicates removed,
// keeping each rune's first occurrence. If fewer than two distinct
// runes remain, the default alphabet is returned instead.
func (c *Config) Alphabet() ident.Alphabet {
	seen := make(map[rune]bool)
	out := make([]rune, 0, len(c.IDChars))
	for _, r := range c.IDChars {
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	if len(out) < 2 {
		return ident.Alphabet(ident.DefaultAlphabet)
	}
	return ident.Alphabet(out)
}

// EditorCommand returns the editor to launch: $EDITOR if set, then the
// configured editor, then the default.
func (c *Config) EditorCommand() string {
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	if c.Editor != "" {
		return c.Editor
	}
	return DefaultEditor
}
