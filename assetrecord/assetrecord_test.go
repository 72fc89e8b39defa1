// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/realmark/marketd/account"
	"github.com/realmark/marketd/assetrecord"
)

// deterministic test accounts
func makeAccount(seedByte byte) *account.Account {
	seed := bytes.Repeat([]byte{seedByte}, ed25519.SeedSize)
	private := ed25519.NewKeyFromSeed(seed)
	return &account.Account{
		Test:      true,
		PublicKey: private.Public().(ed25519.PublicKey),
	}
}

func TestPackUnpack(t *testing.T) {

	lister := makeAccount(0x42)
	buyer := makeAccount(0x21)

	record := &assetrecord.AssetRecord{
		Id:          7,
		URI:         "https://example.com/deeds/7",
		Name:        "Harbour View Apartment",
		Location:    "12 Quay Street",
		SalePrice:   250000,
		Properties:  []string{"freehold", "two bedrooms"},
		Lister:      lister,
		Buyer:       buyer,
		State:       assetrecord.Delivered,
		ListerShare: 243750,
		PlatformFee: 6250,
	}

	packed, err := record.Pack()
	assert.Nil(t, err, "pack error")

	unpacked, err := packed.Unpack()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, record, unpacked, "record mismatch")
}

func TestPackUnpackNoBuyer(t *testing.T) {

	record := &assetrecord.AssetRecord{
		Id:        0,
		URI:       "https://example.com/deeds/0",
		Name:      "Vacant Lot",
		Location:  "Lot 3, North Road",
		SalePrice: 1,
		Lister:    makeAccount(0x42),
		State:     assetrecord.Listed,
	}

	packed, err := record.Pack()
	assert.Nil(t, err, "pack error")

	unpacked, err := packed.Unpack()
	assert.Nil(t, err, "unpack error")
	assert.Nil(t, unpacked.Buyer, "unexpected buyer")
	assert.Equal(t, record, unpacked, "record mismatch")
}

func TestPackMissingLister(t *testing.T) {

	record := &assetrecord.AssetRecord{
		Id:   1,
		Name: "No Lister",
	}

	_, err := record.Pack()
	assert.NotNil(t, err, "pack must reject a missing lister")
}

func TestUnpackTruncated(t *testing.T) {

	record := &assetrecord.AssetRecord{
		Id:        3,
		URI:       "https://example.com/deeds/3",
		Name:      "Warehouse",
		Location:  "Dock 9",
		SalePrice: 9000,
		Lister:    makeAccount(0x42),
		State:     assetrecord.Listed,
	}

	packed, err := record.Pack()
	assert.Nil(t, err, "pack error")

	for i := 0; i < len(packed); i += 1 {
		_, err := packed[:i].Unpack()
		assert.NotNil(t, err, "truncated record %d must not unpack", i)
	}

	// trailing junk must be rejected as well
	_, err = append(packed, 0x00).Unpack()
	assert.NotNil(t, err, "record with trailing bytes must not unpack")
}

func TestStateText(t *testing.T) {

	items := []struct {
		state assetrecord.State
		text  string
	}{
		{assetrecord.Listed, "Listed"},
		{assetrecord.Sold, "Sold"},
		{assetrecord.Delivered, "Delivered"},
		{assetrecord.Settled, "Settled"},
	}

	for _, item := range items {
		assert.Equal(t, item.text, item.state.String(), "wrong text")

		marshalled, err := json.Marshal(item.state)
		assert.Nil(t, err, "marshal error")
		assert.Equal(t, `"`+item.text+`"`, string(marshalled), "wrong JSON")

		var state assetrecord.State
		err = json.Unmarshal(marshalled, &state)
		assert.Nil(t, err, "unmarshal error")
		assert.Equal(t, item.state, state, "wrong state")
	}

	assert.Equal(t, "*Unknown*", assetrecord.State(200).String(), "wrong unknown text")

	var state assetrecord.State
	err := json.Unmarshal([]byte(`"Pending"`), &state)
	assert.NotNil(t, err, "unknown state text must not unmarshal")
}

func TestStatePredicates(t *testing.T) {

	record := &assetrecord.AssetRecord{State: assetrecord.Listed}
	assert.False(t, record.IsSold(), "listed is not sold")
	assert.False(t, record.IsDelivered(), "listed is not delivered")
	assert.False(t, record.IsSettled(), "listed is not settled")

	record.State = assetrecord.Sold
	assert.True(t, record.IsSold(), "sold")
	assert.False(t, record.IsDelivered(), "sold is not delivered")

	record.State = assetrecord.Delivered
	assert.True(t, record.IsSold(), "delivered is sold")
	assert.True(t, record.IsDelivered(), "delivered")
	assert.False(t, record.IsSettled(), "delivered is not settled")

	record.State = assetrecord.Settled
	assert.True(t, record.IsSettled(), "settled")
}
