// Copyright (C) 2016  Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package monotime_test

import (
	"testing"

	"github.com/aristanetworks/elapsed/monotime"
	"golang.org/x/sys/unix"
)

func clockMonotonic(t *testing.T) uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		t.Fatalf("clock_gettime(CLOCK_MONOTONIC): %s", err)
	}
	return uint64(ts.Nano())
}

// On Linux the runtime reads CLOCK_MONOTONIC, so Now must fall between two
// direct reads of that clock.
func TestNowIsClockMonotonic(t *testing.T) {
	for i := 0; i < 100; i++ {
		before := clockMonotonic(t)
		now := monotime.Now()
		after := clockMonotonic(t)
		if now < before || now > after {
			t.Fatalf("Now()=%d outside of CLOCK_MONOTONIC window [%d, %d]",
				now, before, after)
		}
	}
}
