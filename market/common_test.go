// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/realmark/marketd/account"
	"github.com/realmark/marketd/authority"
	"github.com/realmark/marketd/fault"
	"github.com/realmark/marketd/market"
	"github.com/realmark/marketd/ownership"
	"github.com/realmark/marketd/ownertoken"
	"github.com/realmark/marketd/register"
	"github.com/realmark/marketd/storage"
)

const (
	testingDirName = "testing"
	databaseName   = testingDirName + "/test"
)

// deterministic test identities
var (
	adminAccount  *account.Account
	listerAccount *account.Account
	buyerAccount  *account.Account
)

func init() {
	adminAccount = makeAccount(0x01)
	listerAccount = makeAccount(0x42)
	buyerAccount = makeAccount(0x21)
}

func makeAccount(seedByte byte) *account.Account {
	seed := bytes.Repeat([]byte{seedByte}, ed25519.SeedSize)
	private := ed25519.NewKeyFromSeed(seed)
	return &account.Account{
		Test:      true,
		PublicKey: private.Public().(ed25519.PublicKey),
	}
}

// controllable payment stub
//
// per-account failure switches and a record of amounts actually paid
type testPayer struct {
	failing map[string]bool
	paid    map[string]uint64
}

func newTestPayer() *testPayer {
	return &testPayer{
		failing: make(map[string]bool),
		paid:    make(map[string]uint64),
	}
}

func (p *testPayer) Pay(to *account.Account, amount uint64) error {
	if p.failing[to.String()] {
		return fault.PayoutFailed
	}
	p.paid[to.String()] += amount
	return nil
}

func (p *testPayer) paidTo(to *account.Account) uint64 {
	return p.paid[to.String()]
}

// full engine setup on a fresh database
func setup(t *testing.T, feeBasisPoints uint64, issuer ownertoken.Issuer, payer market.Payer) {

	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = register.Initialise(storage.Pool.Assets, storage.Pool.AssetCount)
	if nil != err {
		t.Fatalf("register initialise error: %s", err)
	}

	err = ownership.Initialise(storage.Pool.OwnerList, storage.Pool.OwnerNextCount)
	if nil != err {
		t.Fatalf("ownership initialise error: %s", err)
	}

	err = ownertoken.Initialise(storage.Pool.TokenCustody)
	if nil != err {
		t.Fatalf("ownertoken initialise error: %s", err)
	}

	if nil == issuer {
		issuer = ownertoken.Get()
	}

	handles := market.Handles{
		FeeLedger:    storage.Pool.FeeLedger,
		PayoutLedger: storage.Pool.PayoutLedger,
		Balances:     storage.Pool.Balances,
	}

	err = market.Initialise(
		handles,
		adminAccount,
		authority.NewSingleAdministrator(adminAccount),
		feeBasisPoints,
		issuer,
		payer,
	)
	if nil != err {
		t.Fatalf("market initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	_ = market.Finalise()
	_ = ownertoken.Finalise()
	_ = ownership.Finalise()
	_ = register.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(testingDirName)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
