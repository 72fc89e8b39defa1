// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2024 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/realmark/marketd/background"
)

// counting process to detect start and shutdown
type counting struct {
	started  chan struct{}
	finished chan struct{}
}

func (c *counting) Run(args interface{}, shutdown <-chan struct{}) {
	c.started <- struct{}{}
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Millisecond):
		}
	}
	c.finished <- struct{}{}
}

// all processes must start and all must stop on Stop
func TestStartStop(t *testing.T) {

	const n = 3

	all := make(background.Processes, n)
	cs := make([]*counting, n)
	for i := 0; i < n; i += 1 {
		cs[i] = &counting{
			started:  make(chan struct{}, 1),
			finished: make(chan struct{}, 1),
		}
		all[i] = cs[i]
	}

	handle := background.Start(all, nil)

	for i, c := range cs {
		select {
		case <-c.started:
		case <-time.After(time.Second):
			t.Fatalf("process: %d did not start", i)
		}
	}

	handle.Stop()

	for i, c := range cs {
		select {
		case <-c.finished:
		case <-time.After(time.Second):
			t.Fatalf("process: %d did not finish", i)
		}
	}
}

// Stop on a nil handle must be a no-op
func TestStopNil(t *testing.T) {
	var handle *background.T
	handle.Stop()
}
