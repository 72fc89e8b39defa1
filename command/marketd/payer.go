// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/realmark/marketd/account"
)

// journalPayer - appends disbursement instructions to a journal file
//
// the journal is consumed by the external disbursement agent; a failed
// append leaves the amount credited in the balance pool so the engine
// retries later
type journalPayer struct {
	sync.Mutex
	file *os.File
}

func newJournalPayer(fileName string) (*journalPayer, error) {
	file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
	if nil != err {
		return nil, err
	}
	return &journalPayer{
		file: file,
	}, nil
}

// Pay - append one disbursement instruction
func (p *journalPayer) Pay(to *account.Account, amount uint64) error {
	p.Lock()
	defer p.Unlock()

	_, err := fmt.Fprintf(p.file, "%s pay %s %d\n",
		time.Now().UTC().Format(time.RFC3339), to, amount)
	if nil != err {
		return err
	}
	return p.file.Sync()
}

func (p *journalPayer) close() {
	p.Lock()
	defer p.Unlock()
	_ = p.file.Close()
}
