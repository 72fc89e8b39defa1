// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownertoken_test

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/realmark/marketd/account"
	"github.com/realmark/marketd/fault"
	"github.com/realmark/marketd/ownertoken"
	"github.com/realmark/marketd/ownertoken/mocks"
	"github.com/realmark/marketd/storage"
)

const (
	testingDirName = "testing"
	databaseName   = testingDirName + "/test"
)

func setup(t *testing.T) {

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

	err = ownertoken.Initialise(storage.Pool.TokenCustody)
	if nil != err {
		t.Fatalf("ownertoken initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	_ = ownertoken.Finalise()
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

func makeAccount(seedByte byte) *account.Account {
	seed := bytes.Repeat([]byte{seedByte}, ed25519.SeedSize)
	private := ed25519.NewKeyFromSeed(seed)
	return &account.Account{
		Test:      true,
		PublicKey: private.Public().(ed25519.PublicKey),
	}
}

func TestMintAndTransfer(t *testing.T) {
	setup(t)
	defer teardown(t)

	alice := makeAccount(0x42)
	bob := makeAccount(0x21)

	issuer := ownertoken.Get()

	err := issuer.Mint(alice, 0)
	assert.Nil(t, err, "mint error")

	owner, err := ownertoken.OwnerOf(0)
	assert.Nil(t, err, "owner error")
	assert.True(t, alice.Equal(owner), "wrong owner")

	err = issuer.Transfer(alice, bob, 0)
	assert.Nil(t, err, "transfer error")

	owner, err = ownertoken.OwnerOf(0)
	assert.Nil(t, err, "owner error")
	assert.True(t, bob.Equal(owner), "wrong owner")
}

func TestMintDuplicate(t *testing.T) {
	setup(t)
	defer teardown(t)

	alice := makeAccount(0x42)
	issuer := ownertoken.Get()

	err := issuer.Mint(alice, 3)
	assert.Nil(t, err, "mint error")

	err = issuer.Mint(alice, 3)
	assert.Equal(t, fault.TokenTransferFailed, err, "wrong error")
}

func TestTransferErrors(t *testing.T) {
	setup(t)
	defer teardown(t)

	alice := makeAccount(0x42)
	bob := makeAccount(0x21)
	carol := makeAccount(0x55)

	issuer := ownertoken.Get()

	err := issuer.Transfer(alice, bob, 9)
	assert.Equal(t, fault.NotACustodiedToken, err, "wrong error")

	_, err = ownertoken.OwnerOf(9)
	assert.Equal(t, fault.NotACustodiedToken, err, "wrong error")

	err = issuer.Mint(alice, 9)
	assert.Nil(t, err, "mint error")

	// carol does not hold the token
	err = issuer.Transfer(carol, bob, 9)
	assert.Equal(t, fault.NotTokenOwner, err, "wrong error")

	// the failed transfer must not move the token
	owner, err := ownertoken.OwnerOf(9)
	assert.Nil(t, err, "owner error")
	assert.True(t, alice.Equal(owner), "wrong owner")
}

func TestReceiverAcknowledgement(t *testing.T) {
	setup(t)
	defer teardown(t)

	alice := makeAccount(0x42)
	bob := makeAccount(0x21)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	issuer := ownertoken.Get()

	err := issuer.Mint(alice, 1)
	assert.Nil(t, err, "mint error")

	receiver := mocks.NewMockReceiver(ctl)
	receiver.EXPECT().TokenReceived(alice, uint64(1)).Return(false).Times(1)
	receiver.EXPECT().TokenReceived(alice, uint64(1)).Return(true).Times(1)

	err = ownertoken.RegisterReceiver(bob, receiver)
	assert.Nil(t, err, "register error")

	// first attempt refused by the receiver
	err = issuer.Transfer(alice, bob, 1)
	assert.Equal(t, fault.ReceiverNotAcknowledged, err, "wrong error")

	owner, err := ownertoken.OwnerOf(1)
	assert.Nil(t, err, "owner error")
	assert.True(t, alice.Equal(owner), "refused transfer moved the token")

	// second attempt acknowledged
	err = issuer.Transfer(alice, bob, 1)
	assert.Nil(t, err, "transfer error")

	owner, err = ownertoken.OwnerOf(1)
	assert.Nil(t, err, "owner error")
	assert.True(t, bob.Equal(owner), "wrong owner")

	// deregistration removes the handshake
	err = ownertoken.RegisterReceiver(bob, nil)
	assert.Nil(t, err, "deregister error")

	err = issuer.Mint(alice, 2)
	assert.Nil(t, err, "mint error")
	err = issuer.Transfer(alice, bob, 2)
	assert.Nil(t, err, "transfer error")
}
