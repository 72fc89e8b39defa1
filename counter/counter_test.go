// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2024 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"testing"

	"github.com/realmark/marketd/counter"
)

// test incrementing and decrementing a counter
func TestCounter(t *testing.T) {

	var c counter.Counter

	if !c.IsZero() {
		t.Errorf("counter is not zero at start: %d", c.Uint64())
	}

	for i := 0; i < 5; i += 1 {
		c.Increment()
	}

	if 5 != c.Uint64() {
		t.Errorf("counter is not 5 after incrementing: %d", c.Uint64())
	}

	c.Decrement()

	if 4 != c.Uint64() {
		t.Errorf("counter is not 4 after decrementing: %d", c.Uint64())
	}

	for i := 0; i < 4; i += 1 {
		c.Decrement()
	}

	if !c.IsZero() {
		t.Errorf("counter did not return to zero: %d", c.Uint64())
	}

	c.Decrement()

	// check against underflow, i.e. twos complement -1
	if ^uint64(0) != c.Uint64() {
		t.Errorf("counter did not underflow: %d", c.Uint64())
	}
}
