// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"github.com/realmark/marketd/account"
	"github.com/realmark/marketd/fault"
	"github.com/realmark/marketd/util"
)

// Packed - the byte form stored in the assets pool
type Packed []byte

// field size limits
const (
	maxStringLength   = 4096
	maxPropertyCount  = 100
	absentMarkerValue = 0
)

// Pack - serialise a record to its storage form
//
// layout: id ⧺ uri ⧺ name ⧺ location ⧺ salePrice ⧺ properties ⧺
// lister ⧺ state ⧺ buyer ⧺ listerShare ⧺ platformFee; strings,
// property lists and accounts are varint length prefixed; an absent
// buyer is a zero length
func (record *AssetRecord) Pack() (Packed, error) {

	if nil == record.Lister {
		return nil, fault.InvalidItem
	}
	if len(record.URI) > maxStringLength ||
		len(record.Name) > maxStringLength ||
		len(record.Location) > maxStringLength ||
		len(record.Properties) > maxPropertyCount {
		return nil, fault.InvalidItem
	}

	buffer := util.ToVarint64(record.Id)
	buffer = appendString(buffer, record.URI)
	buffer = appendString(buffer, record.Name)
	buffer = appendString(buffer, record.Location)
	buffer = append(buffer, util.ToVarint64(record.SalePrice)...)

	buffer = append(buffer, util.ToVarint64(uint64(len(record.Properties)))...)
	for _, property := range record.Properties {
		if len(property) > maxStringLength {
			return nil, fault.InvalidItem
		}
		buffer = appendString(buffer, property)
	}

	buffer = appendBytes(buffer, record.Lister.Bytes())
	buffer = append(buffer, byte(record.State))

	if nil == record.Buyer {
		buffer = append(buffer, util.ToVarint64(absentMarkerValue)...)
	} else {
		buffer = appendBytes(buffer, record.Buyer.Bytes())
	}

	buffer = append(buffer, util.ToVarint64(record.ListerShare)...)
	buffer = append(buffer, util.ToVarint64(record.PlatformFee)...)

	return Packed(buffer), nil
}

// Unpack - deserialise a storage form back to a record
func (packed Packed) Unpack() (*AssetRecord, error) {

	record := &AssetRecord{}
	buffer := []byte(packed)

	id, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.InvalidItem
	}
	record.Id = id
	buffer = buffer[n:]

	var err error
	record.URI, buffer, err = splitString(buffer)
	if nil != err {
		return nil, err
	}
	record.Name, buffer, err = splitString(buffer)
	if nil != err {
		return nil, err
	}
	record.Location, buffer, err = splitString(buffer)
	if nil != err {
		return nil, err
	}

	salePrice, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.InvalidItem
	}
	record.SalePrice = salePrice
	buffer = buffer[n:]

	propertyCount, n := util.FromVarint64(buffer)
	if 0 == n || propertyCount > maxPropertyCount {
		return nil, fault.InvalidItem
	}
	buffer = buffer[n:]
	if propertyCount > 0 {
		record.Properties = make([]string, propertyCount)
		for i := uint64(0); i < propertyCount; i += 1 {
			record.Properties[i], buffer, err = splitString(buffer)
			if nil != err {
				return nil, err
			}
		}
	}

	listerBytes, buffer, err := splitBytes(buffer)
	if nil != err {
		return nil, err
	}
	record.Lister, err = account.AccountFromBytes(listerBytes)
	if nil != err {
		return nil, err
	}

	if 0 == len(buffer) {
		return nil, fault.InvalidItem
	}
	record.State = State(buffer[0])
	if record.State > Settled {
		return nil, fault.InvalidItem
	}
	buffer = buffer[1:]

	buyerBytes, buffer, err := splitBytes(buffer)
	if nil != err {
		return nil, err
	}
	if 0 != len(buyerBytes) {
		record.Buyer, err = account.AccountFromBytes(buyerBytes)
		if nil != err {
			return nil, err
		}
	}

	listerShare, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.InvalidItem
	}
	record.ListerShare = listerShare
	buffer = buffer[n:]

	platformFee, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.InvalidItem
	}
	record.PlatformFee = platformFee
	buffer = buffer[n:]

	if 0 != len(buffer) {
		return nil, fault.InvalidItem
	}

	return record, nil
}

// append a varint length prefixed string
func appendString(buffer []byte, s string) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}

// append a varint length prefixed byte slice
func appendBytes(buffer []byte, b []byte) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(b)))...)
	return append(buffer, b...)
}

// remove a varint length prefixed string from the front of a buffer
func splitString(buffer []byte) (string, []byte, error) {
	b, rest, err := splitBytes(buffer)
	return string(b), rest, err
}

// remove a varint length prefixed byte slice from the front of a buffer
func splitBytes(buffer []byte) ([]byte, []byte, error) {
	length, n := util.FromVarint64(buffer)
	if 0 == n || length > maxStringLength {
		return nil, nil, fault.InvalidItem
	}
	buffer = buffer[n:]
	if uint64(len(buffer)) < length {
		return nil, nil, fault.InvalidItem
	}
	return buffer[:length], buffer[length:], nil
}
