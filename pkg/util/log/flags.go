// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// Config describes how the process-wide logger is set up.
type Config struct {
	// Verbosity is the level at or below which V and VEventf are active.
	Verbosity Level `yaml:"verbosity"`
	// Redactable keeps redaction markers around unsafe values in emitted
	// entries.
	Redactable bool `yaml:"redactable"`
	// File, if set, is opened in append mode and receives all entries
	// instead of stderr.
	File string `yaml:"file"`
}

// ApplyConfig applies the given configuration and returns a function that
// restores the previous logging setup and closes any file opened here.
func ApplyConfig(config Config) (resFn func(), err error) {
	var w io.Writer = os.Stderr
	var f *os.File
	if config.File != "" {
		f, err = os.OpenFile(config.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "opening log file %q", config.File)
		}
		w = f
	}
	prevRedactable := mainLog.redactable.Load()
	restoreOutput := SetOutput(w)
	restoreVerbosity := SetVerbosity(config.Verbosity)
	SetRedactable(config.Redactable)
	return func() {
		restoreVerbosity()
		restoreOutput()
		SetRedactable(prevRedactable)
		if f != nil {
			_ = f.Close()
		}
	}, nil
}
