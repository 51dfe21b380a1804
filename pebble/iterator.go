// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"bytes"
	"slices"

	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
)

var (
	_ database.Iterator = (*iterator)(nil)
	_ database.Iterator = (*errIterator)(nil)
)

func (db *Database) NewIterator() database.Iterator {
	return db.newIterator(nil, nil)
}

func (db *Database) NewIteratorWithStart(start []byte) database.Iterator {
	return db.newIterator(start, nil)
}

func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	return db.newIterator(nil, prefix)
}

func (db *Database) NewIteratorWithStartAndPrefix(start, prefix []byte) database.Iterator {
	return db.newIterator(start, prefix)
}

func (db *Database) newIterator(start, prefix []byte) database.Iterator {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return &errIterator{err: database.ErrClosed}
	}
	lowerBound := prefix
	if bytes.Compare(start, prefix) > 0 {
		lowerBound = start
	}
	iter, err := db.db.NewIter(&pebble.IterOptions{
		LowerBound: lowerBound,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return &errIterator{err: err}
	}
	return &iterator{iter: iter}
}

// prefixUpperBound returns the smallest key greater than every key with
// [prefix], or nil if no bound exists.
func prefixUpperBound(prefix []byte) []byte {
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] != 0xff {
			upper := make([]byte, i+1)
			copy(upper, prefix)
			upper[i]++
			return upper
		}
	}
	return nil
}

type iterator struct {
	iter *pebble.Iterator

	initialized bool
	released    bool
	err         error

	key   []byte
	value []byte
}

func (it *iterator) Next() bool {
	if it.released {
		return false
	}
	var hasNext bool
	if !it.initialized {
		hasNext = it.iter.First()
		it.initialized = true
	} else {
		hasNext = it.iter.Next()
	}
	if hasNext {
		// pebble's buffers are only valid until the next positioning call.
		it.key = slices.Clone(it.iter.Key())
		it.value = slices.Clone(it.iter.Value())
	} else {
		it.key = nil
		it.value = nil
	}
	return hasNext
}

func (it *iterator) Error() error {
	if it.released {
		return it.err
	}
	return it.iter.Error()
}

func (it *iterator) Key() []byte {
	return it.key
}

func (it *iterator) Value() []byte {
	return it.value
}

func (it *iterator) Release() {
	if it.released {
		return
	}
	it.released = true
	it.key = nil
	it.value = nil
	it.err = it.iter.Close()
}

// errIterator yields nothing and reports a fixed error.
type errIterator struct {
	err error
}

func (it *errIterator) Next() bool {
	return false
}

func (it *errIterator) Error() error {
	return it.err
}

func (*errIterator) Key() []byte {
	return nil
}

func (*errIterator) Value() []byte {
	return nil
}

func (*errIterator) Release() {}
