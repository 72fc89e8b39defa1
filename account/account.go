// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - identities for listers, buyers and the
// administrator
//
// an account is an ed25519 public key; its textual form is a Base58
// string of: key variant ⧺ public key ⧺ checksum
package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/realmark/marketd/fault"
	"github.com/realmark/marketd/util"
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in the key variant starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift to get the algorithm

	// the only supported algorithm
	ed25519Algorithm = 0x01
)

// Account - the identity of a market participant
type Account struct {
	Test      bool   // true for testing and local networks
	PublicKey []byte // ed25519 public key
}

// AccountFromBase58 - convert a Base58 encoded string to an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {

	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	// parse the key variant
	keyVariant, keyVariantLength := util.FromVarint64(accountDecoded)

	// check key type
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	// compute algorithm
	keyAlgorithm := keyVariant >> algorithmShift
	if ed25519Algorithm != keyAlgorithm {
		return nil, fault.InvalidKeyType
	}

	// network selection
	isTest := 0 != keyVariant&testKeyCode

	// compute key length
	keyLength := len(accountDecoded) - keyVariantLength - checksumLength
	if ed25519.PublicKeySize != keyLength {
		return nil, fault.InvalidKeyLength
	}

	// checksum
	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	publicKey := make([]byte, keyLength)
	copy(publicKey, accountDecoded[keyVariantLength:checksumStart])

	return &Account{
		Test:      isTest,
		PublicKey: publicKey,
	}, nil
}

// AccountFromBytes - convert the storage key form back to an account
func AccountFromBytes(buffer []byte) (*Account, error) {

	keyVariant, keyVariantLength := util.FromVarint64(buffer)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}
	if ed25519Algorithm != keyVariant>>algorithmShift {
		return nil, fault.InvalidKeyType
	}
	if ed25519.PublicKeySize != len(buffer)-keyVariantLength {
		return nil, fault.InvalidKeyLength
	}

	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, buffer[keyVariantLength:])

	return &Account{
		Test:      0 != keyVariant&testKeyCode,
		PublicKey: publicKey,
	}, nil
}

// Bytes - key variant ⧺ public key, used as the owner key in the
// storage pools
func (account *Account) Bytes() []byte {
	keyVariant := uint64(ed25519Algorithm)<<algorithmShift | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append(util.ToVarint64(keyVariant), account.PublicKey...)
}

// String - base58 encoded bytes with checksum
func (account Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its text form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a text form back to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.Test = a.Test
	account.PublicKey = a.PublicKey
	return nil
}

// CheckSignature - check that a signature was made by this account
func (account *Account) CheckSignature(message []byte, signature []byte) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// IsTesting - true if the account belongs to a testing network
func (account *Account) IsTesting() bool {
	return account.Test
}

// Equal - compare two accounts
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return account == other
	}
	return account.Test == other.Test &&
		bytes.Equal(account.PublicKey, other.PublicKey)
}
