// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2024 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - per-service call metering for the RPC handlers
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/realmark/marketd/fault"
)

// Limit - charge one unit of limiter budget, delaying the caller
// until it is available
func Limit(limiter *rate.Limiter) error {
	return wait(limiter, 1)
}

// LimitN - charge count units for a batch request
//
// an out of range count still costs the caller one unit so malformed
// requests cannot bypass the meter
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := wait(limiter, 1); nil != err {
			return err
		}
		return fault.InvalidCount
	}
	return wait(limiter, count)
}

// block until the reservation matures
func wait(limiter *rate.Limiter, count int) error {
	reservation := limiter.ReserveN(time.Now(), count)
	if !reservation.OK() {
		return fault.RateLimiting
	}
	time.Sleep(reservation.Delay())
	return nil
}
