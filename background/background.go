// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2024 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

// Process - interface for a single background process
//
// Run is started as a goroutine and must return when the shutdown
// channel is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for the stop routine
type T struct {
	shutdown chan struct{}
	finished chan struct{}
	count    int
}

// Start - start up a set of background processes
//
// all with the same arg value
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
		finished: make(chan struct{}),
		count:    len(processes),
	}

	// start each background
	for _, p := range processes {
		go func(p Process) {
			p.Run(args, register.shutdown)
			register.finished <- struct{}{}
		}(p)
	}
	return register
}

// Stop - stop the set of background processes
//
// waits for all of them to terminate
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	close(t.shutdown)

	// wait for finished
	for i := 0; i < t.count; i += 1 {
		<-t.finished
	}
}
