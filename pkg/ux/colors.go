// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode controls whether styled output is emitted.
type ColorMode string

const (
	// ColorAuto enables color when stdout is a terminal.
	ColorAuto ColorMode = "auto"

	// ColorAlways emits color even when piped, for tools that
	// post-process styled output.
	ColorAlways ColorMode = "always"

	// ColorNever emits plain text suitable for scripting and parsing.
	ColorNever ColorMode = "never"
)

var (
	currentMode ColorMode = ColorAuto
	modeMu      sync.RWMutex
)

// GetColorMode returns the current color mode.
func GetColorMode() ColorMode {
	modeMu.RLock()
	defer modeMu.RUnlock()
	return currentMode
}

// SetColorMode updates the color mode and reconfigures the renderer.
func SetColorMode(mode ColorMode) {
	modeMu.Lock()
	currentMode = mode
	modeMu.Unlock()
	applyMode(mode)
}

// ParseColorMode converts a string to a ColorMode.
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "always", "on", "force":
		return ColorAlways
	case "never", "off", "none":
		return ColorNever
	default:
		return ColorAuto
	}
}

// InitColors initializes color output from the environment.
//
// Precedence, highest first:
//
//	NO_COLOR         (any value)  -> never
//	CLICOLOR_FORCE   (not "0")    -> always
//	F_COLOR          (mode name)  -> as parsed
//	otherwise                     -> auto
//
// Call once at startup, before any styled output.
func InitColors() {
	switch {
	case os.Getenv("NO_COLOR") != "":
		SetColorMode(ColorNever)
	case os.Getenv("CLICOLOR_FORCE") != "" && os.Getenv("CLICOLOR_FORCE") != "0":
		SetColorMode(ColorAlways)
	case os.Getenv("F_COLOR") != "":
		SetColorMode(ParseColorMode(os.Getenv("F_COLOR")))
	default:
		SetColorMode(ColorAuto)
	}
}

// ColorsEnabled reports whether styled output will actually carry color,
// after mode and terminal detection are accounted for.
func ColorsEnabled() bool {
	switch GetColorMode() {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return stdoutIsTerminal()
	}
}

// stdoutIsTerminal reports whether stdout is attached to a terminal,
// including Cygwin/MSYS pseudo-terminals on Windows.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// applyMode points the lipgloss renderer at the right termenv profile.
// Sixteen ANSI colors are all f uses, so forcing ANSI is lossless.
func applyMode(mode ColorMode) {
	switch mode {
	case ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI)
	case ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		if stdoutIsTerminal() {
			lipgloss.SetColorProfile(termenv.ANSI)
		} else {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}
}
