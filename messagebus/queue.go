// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// Message - message to put into a queue
type Message struct {
	Command    string   // type of the message
	Parameters [][]byte // message data
}

// Queue - a 1:1 queue
type Queue struct {
	c chan Message
}

// the possible queues
type busses struct {
	Notify    *Queue // lifecycle notifications
	TestQueue *Queue // for testing use
}

// queue sizes
const (
	notifyQueueSize = 1000
	testQueueSize   = 50
)

// Bus - all available message queues
var Bus = busses{
	Notify: &Queue{
		c: make(chan Message, notifyQueueSize),
	},
	TestQueue: &Queue{
		c: make(chan Message, testQueueSize),
	},
}

// Send - append a message to a queue
//
// drops the message if the queue is full rather than blocking the
// sending operation
func (queue *Queue) Send(command string, parameters ...[]byte) {
	select {
	case queue.c <- Message{Command: command, Parameters: parameters}:
	default:
	}
}

// Chan - channel to read from a queue
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Drain - remove all pending messages from a queue
func (queue *Queue) Drain() {
loop:
	for {
		select {
		case <-queue.c:
		default:
			break loop
		}
	}
}
