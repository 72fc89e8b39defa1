// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/realmark/marketd/account"
)

// how often outstanding balances are re-pushed
const payoutRetryInterval = 60 * time.Second

// page size for one balance scan
const payoutRetryBatch = 100

// background process re-attempting failed payout legs
//
// credited balances stay in the balance pool until a push succeeds or
// the payee withdraws; this loop keeps pushing so a transient payer
// outage heals without operator action
type payoutRetry struct {
	log *logger.L
}

// Run - the payout retry loop
func (p *payoutRetry) Run(args interface{}, shutdown <-chan struct{}) {

	p.log = args.(*logger.L)

	timer := time.NewTimer(payoutRetryInterval)
	defer timer.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-timer.C:
			p.retryOutstanding()
			timer.Reset(payoutRetryInterval)
		}
	}

	p.log.Info("payout retry stopped")
}

// push every outstanding balance once
func (p *payoutRetry) retryOutstanding() {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return
	}

	cursor := globalData.handles.Balances.NewFetchCursor()
	for {
		elements, err := cursor.Fetch(payoutRetryBatch)
		if nil != err {
			p.log.Errorf("balance scan error: %s", err)
			return
		}
		if 0 == len(elements) {
			return
		}

		for _, e := range elements {
			owner, err := account.AccountFromBytes(e.Key)
			if nil != err {
				p.log.Criticalf("corrupt balance key: %x  error: %s", e.Key, err)
				continue
			}
			amount := balanceOf(owner)
			if 0 == amount {
				continue
			}
			if tryPay(owner, amount) {
				p.log.Infof("retried payout: %s  amount: %d", owner, amount)
			}
		}

		if len(elements) < payoutRetryBatch {
			return
		}
	}
}
