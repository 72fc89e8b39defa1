// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package assetrecord - the permanent record of a tokenized asset
//
// a record is created once by a listing and then walks the strictly
// linear lifecycle: Listed → Sold → Delivered → Settled; records are
// never deleted, they remain as audit entries
package assetrecord

import (
	"github.com/realmark/marketd/account"
	"github.com/realmark/marketd/fault"
)

// State - lifecycle state of an asset
//
// a single enumeration rather than separate sold/delivered/settled
// flags so the stages cannot drift apart
type State byte

// the lifecycle states in transition order
const (
	Listed State = iota
	Sold
	Delivered
	Settled
)

// AssetRecord - all data held for one asset
type AssetRecord struct {
	Id          uint64           `json:"id,string"`
	URI         string           `json:"uri"`
	Name        string           `json:"name"`
	Location    string           `json:"location"`
	SalePrice   uint64           `json:"salePrice"`
	Properties  []string         `json:"properties"`
	Lister      *account.Account `json:"lister"`
	Buyer       *account.Account `json:"buyer,omitempty"`
	State       State            `json:"state"`
	ListerShare uint64           `json:"listerShare"`
	PlatformFee uint64           `json:"platformFee"`
}

// internal conversion
func toString(state State) ([]byte, error) {
	switch state {
	case Listed:
		return []byte("Listed"), nil
	case Sold:
		return []byte("Sold"), nil
	case Delivered:
		return []byte("Delivered"), nil
	case Settled:
		return []byte("Settled"), nil
	default:
		return []byte{}, fault.InvalidItem
	}
}

// String - convert a state to its string symbol
func (state State) String() string {
	s, err := toString(state)
	if nil != err {
		return "*Unknown*"
	}
	return string(s)
}

// MarshalText - convert a state to text for JSON replies
func (state State) MarshalText() ([]byte, error) {
	return toString(state)
}

// UnmarshalText - convert text back to a state
func (state *State) UnmarshalText(s []byte) error {
	switch string(s) {
	case "Listed":
		*state = Listed
	case "Sold":
		*state = Sold
	case "Delivered":
		*state = Delivered
	case "Settled":
		*state = Settled
	default:
		return fault.InvalidItem
	}
	return nil
}

// IsSold - the record has a buyer
func (record *AssetRecord) IsSold() bool {
	return record.State >= Sold
}

// IsDelivered - delivery has been confirmed
func (record *AssetRecord) IsDelivered() bool {
	return record.State >= Delivered
}

// IsSettled - proceeds have been disbursed, record is terminal
func (record *AssetRecord) IsSettled() bool {
	return Settled == record.State
}
