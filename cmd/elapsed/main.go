// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// The elapsed command times a fixed 70ms sleep against the monotonic clock
// and prints the result in nanoseconds. Command-line arguments are ignored.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/aristanetworks/elapsed/elapsed"

	"github.com/aristanetworks/glog"
)

func run(w io.Writer) error {
	return elapsed.New(w).Run()
}

func main() {
	// Mark flags as parsed for glog without looking at os.Args.
	flag.CommandLine.Parse(nil)
	if err := run(os.Stdout); err != nil {
		glog.Fatal(err)
	}
}
