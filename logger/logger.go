// Copyright (c) 2021 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package logger

// Logger is the logging interface used by the reporter, so that it does not
// depend on a particular glog implementation.
type Logger interface {
	// Infof logs at the info level, with format
	Infof(format string, args ...interface{})
}

// Discard is a Logger that drops everything.
var Discard Logger = discard{}

type discard struct{}

func (discard) Infof(format string, args ...interface{}) {}
