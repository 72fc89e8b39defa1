// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test helpers for the RPC services
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/realmark/marketd/account"
)

const (
	// directory for all test generated files
	TestingDirName = "testing"
	DatabaseName   = TestingDirName + "/test"
)

// deterministic test identities
func makeAccount(seedByte byte, test bool) *account.Account {
	seed := bytes.Repeat([]byte{seedByte}, ed25519.SeedSize)
	private := ed25519.NewKeyFromSeed(seed)
	return &account.Account{
		Test:      test,
		PublicKey: private.Public().(ed25519.PublicKey),
	}
}

// AdminAccount - the platform administrator for tests
func AdminAccount() *account.Account { return makeAccount(0x01, true) }

// ListerAccount - an asset owner for tests
func ListerAccount() *account.Account { return makeAccount(0x42, true) }

// BuyerAccount - a purchaser for tests
func BuyerAccount() *account.Account { return makeAccount(0x21, true) }

// LiveAccount - an account on the wrong network for tests
func LiveAccount() *account.Account { return makeAccount(0x66, false) }

// SetupTestLogger - start logging into a throwaway directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(TestingDirName, 0700)

	logging := logger.Configuration{
		Directory: TestingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove all test files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// remove all files created by test
func removeFiles() {
	err := os.RemoveAll(TestingDirName)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
