// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package elapsed measures how long a simulated workload takes and reports
// the result in nanoseconds.
package elapsed

import (
	"fmt"
	"io"
	"time"

	"github.com/aristanetworks/elapsed/glog"
	"github.com/aristanetworks/elapsed/logger"
	"github.com/aristanetworks/elapsed/monotime"
)

// Delay is how long the simulated workload blocks.
const Delay = 70 * time.Millisecond

// Measurement holds two monotonic clock readings and the time between them.
type Measurement struct {
	Start   uint64
	End     uint64
	Elapsed time.Duration
}

// Reporter times the simulated workload and writes the result.
type Reporter struct {
	out   io.Writer
	log   logger.Logger
	now   func() uint64
	sleep func(time.Duration)
}

// New returns a Reporter that writes its result to w.
func New(w io.Writer) *Reporter {
	return &Reporter{
		out:   w,
		log:   &glog.Glog{InfoLevel: 1},
		now:   monotime.Now,
		sleep: time.Sleep,
	}
}

// Measure reads the clock, blocks for Delay, and reads the clock again.
func (r *Reporter) Measure() Measurement {
	start := r.now()
	r.sleep(Delay)
	end := r.now()
	m := Measurement{
		Start:   start,
		End:     end,
		Elapsed: time.Duration(end - start),
	}
	r.log.Infof("start=%d end=%d elapsed=%s", m.Start, m.End, m.Elapsed)
	return m
}

// Run measures the workload and writes a single result line.
func (r *Reporter) Run() error {
	m := r.Measure()
	return WriteElapsed(r.out, m.Elapsed)
}

// WriteElapsed writes d to w as "Elapsed time (ns): <d>" followed by a
// newline.
func WriteElapsed(w io.Writer, d time.Duration) error {
	if _, err := fmt.Fprintf(w, "Elapsed time (ns): %d\n", d.Nanoseconds()); err != nil {
		return fmt.Errorf("writing elapsed time: %w", err)
	}
	return nil
}
