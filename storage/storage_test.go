// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/realmark/marketd/storage"
)

// main pool operations
func TestPutGetDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	key := []byte("key-one")
	value := []byte("value-one")

	assert.False(t, p.Has(key), "unexpected key")

	p.Put(key, value)
	assert.True(t, p.Has(key), "missing key")
	assert.Equal(t, value, p.Get(key), "wrong value")

	p.Delete(key)
	assert.False(t, p.Has(key), "key was not deleted")
	assert.Nil(t, p.Get(key), "value was not deleted")
}

// numeric records
func TestPutNGetN(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	key := []byte("counter")

	_, found := p.GetN(key)
	assert.False(t, found, "unexpected counter")

	p.PutN(key, 42)
	n, found := p.GetN(key)
	assert.True(t, found, "missing counter")
	assert.Equal(t, uint64(42), n, "wrong counter")
}

// pools must not see each other's keys
func TestPoolIsolation(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("shared-key")

	storage.Pool.TestData.Put(key, []byte("z"))

	assert.False(t, storage.Pool.Assets.Has(key), "prefix leak")
	assert.Nil(t, storage.Pool.Assets.Get(key), "prefix leak")
}

// cursor fetch must be ordered, paged and restartable
func TestCursorFetch(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	const records = 10
	for i := 0; i < records; i += 1 {
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, uint64(i))
		p.Put(key, []byte{byte('a' + i)})
	}

	cursor := p.NewFetchCursor()

	first, err := cursor.Fetch(4)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 4, len(first), "wrong first page size")

	second, err := cursor.Fetch(100)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, records-4, len(second), "wrong second page size")

	// keys are in ascending order across both pages
	all := append(first, second...)
	for i, e := range all {
		n := binary.BigEndian.Uint64(e.Key)
		assert.Equal(t, uint64(i), n, "wrong key order")
		assert.Equal(t, []byte{byte('a' + i)}, e.Value, "wrong value")
	}

	// a fresh cursor restarts from the beginning
	restarted, err := p.NewFetchCursor().Fetch(1)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 1, len(restarted), "wrong restart page size")
	assert.Equal(t, uint64(0), binary.BigEndian.Uint64(restarted[0].Key), "wrong restart key")
}

// cursor argument errors
func TestCursorErrors(t *testing.T) {
	setup(t)
	defer teardown(t)

	cursor := storage.Pool.TestData.NewFetchCursor()
	_, err := cursor.Fetch(0)
	assert.NotNil(t, err, "zero count must error")

	cursor = nil
	_, err = cursor.Fetch(1)
	assert.NotNil(t, err, "nil cursor must error")
}

// a second initialise must be rejected
func TestDoubleInitialise(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseName, storage.ReadWrite)
	assert.NotNil(t, err, "second initialise must error")
}
