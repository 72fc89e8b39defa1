// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2024 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/realmark/marketd/messagebus"
)

func TestQueue(t *testing.T) {

	items := []messagebus.Message{
		{
			Command:    "c1",
			Parameters: nil,
		},
		{
			Command:    "c2",
			Parameters: nil,
		},
		{
			Command:    "c3",
			Parameters: nil,
		},
	}

	for _, item := range items {
		messagebus.Bus.TestQueue.Send(item.Command)
	}

	queue := messagebus.Bus.TestQueue.Chan()
	for _, item := range items {
		received := <-queue
		if received.Command != item.Command {
			t.Errorf("actual: %q  expected: %q", received.Command, item.Command)
		}
	}
}

// a full queue must drop rather than block
func TestQueueOverflow(t *testing.T) {

	messagebus.Bus.TestQueue.Drain()

	// the test queue holds 50 messages
	for i := 0; i < 100; i += 1 {
		messagebus.Bus.TestQueue.Send("overflow")
	}

	queue := messagebus.Bus.TestQueue.Chan()
	received := 0
loop:
	for {
		select {
		case <-queue:
			received += 1
		default:
			break loop
		}
	}
	if 50 != received {
		t.Errorf("actual: %d messages  expected: 50", received)
	}
}
