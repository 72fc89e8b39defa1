// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/realmark/marketd/fault"
	"github.com/realmark/marketd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(1000), 10)

	err := ratelimit.Limit(limiter)
	assert.Nil(t, err, "limit error")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(1000), 10)

	err := ratelimit.LimitN(limiter, 5, 20)
	assert.Nil(t, err, "limit error")

	// zero and over-maximum counts are refused but still metered
	err = ratelimit.LimitN(limiter, 0, 20)
	assert.Equal(t, fault.InvalidCount, err, "wrong error")

	err = ratelimit.LimitN(limiter, 21, 20)
	assert.Equal(t, fault.InvalidCount, err, "wrong error")

	// a count above the burst can never be reserved
	err = ratelimit.LimitN(limiter, 15, 20)
	assert.Equal(t, fault.RateLimiting, err, "wrong error")
}
