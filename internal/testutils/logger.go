// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package testutils contains helpers shared by tests.
package testutils

import (
	"testing"

	"github.com/cockroachdb/bstree/internal/base"
)

// Logger is a logger that writes to a testing.TB.
type Logger struct {
	T testing.TB
}

var _ base.Logger = Logger{}

// Infof implements the base.Logger interface.
func (l Logger) Infof(format string, args ...interface{}) {
	l.T.Logf(format, args...)
}

// Errorf implements the base.Logger interface.
func (l Logger) Errorf(format string, args ...interface{}) {
	l.T.Logf(format, args...)
}

// Fatalf implements the base.Logger interface.
func (l Logger) Fatalf(format string, args ...interface{}) {
	l.T.Helper()
	l.T.Fatalf(format, args...)
}
