// ============================================================================
// templa - language front end
// ============================================================================
//
// Package:     version
// Description: Central version information for the templa tools
// Author:      templa authors
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Templa is the release version of the command line tool
	Templa = "0.2.0"

	// Grammar is the version of the accepted language
	Grammar = "1.0.0"
)

// Commit is set at build time via -ldflags "-X ...version.Commit=<sha>"
var Commit = "dev"

// Info describes the running binary
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Grammar   string `json:"grammar" yaml:"grammar"`
	Commit    string `json:"commit" yaml:"commit"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Version:   Templa,
		Grammar:   Grammar,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary, e.g. "templa 0.2.0 (grammar 1.0.0, dev, go1.24.0 linux/amd64)"
func (i Info) String() string {
	return fmt.Sprintf("templa %s (grammar %s, %s, %s %s)",
		i.Version, i.Grammar, i.Commit, i.GoVersion, i.Platform)
}
