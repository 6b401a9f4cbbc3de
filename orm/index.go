package orm

import (
	"bytes"
	"math"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// Indexer calculates the secondary index values for a given model. Empty
// values are not indexed.
type Indexer func(Model) ([][]byte, error)

const nativeIdxPrefix = "_x."

// nativeIndex keeps a secondary index using the database key ordering.
// Every indexed entity owns one empty valued key per index value:
//
//	_x.<len>bucket<len>index<len>value<len>entity key
type nativeIndex struct {
	bucket  string
	name    string
	indexer Indexer
}

// Update moves the references of an entity from its previous to its next
// index values.
//
// prev == nil means insert
// next == nil means delete
// both == nil is error
func (ix nativeIndex) Update(db nftswap.KVStore, key []byte, prev, next Model) error {
	if prev == nil && next == nil {
		return errors.Wrap(errors.ErrInput, "update requires at least one non-nil model")
	}

	var oldValues, newValues [][]byte
	if prev != nil {
		vals, err := ix.indexer(prev)
		if err != nil {
			return errors.Wrap(err, "indexer")
		}
		oldValues = vals
	}
	if next != nil {
		vals, err := ix.indexer(next)
		if err != nil {
			return errors.Wrap(err, "indexer")
		}
		newValues = vals
	}

	for _, v := range subtract(oldValues, newValues) {
		idxKey, err := ix.dbKey(v, key)
		if err != nil {
			return err
		}
		if err := db.Delete(idxKey); err != nil {
			return errors.Wrap(err, "db delete")
		}
	}
	for _, v := range subtract(newValues, oldValues) {
		idxKey, err := ix.dbKey(v, key)
		if err != nil {
			return err
		}
		if err := db.Set(idxKey, []byte{}); err != nil {
			return errors.Wrap(err, "db set")
		}
	}
	return nil
}

func (ix nativeIndex) dbKey(value, key []byte) ([]byte, error) {
	idxKey, err := packNativeIdxKey([][]byte{[]byte(ix.bucket), []byte(ix.name), value, key})
	if err != nil {
		return nil, errors.Wrap(err, "build index key")
	}
	return idxKey, nil
}

// Keys returns the keys of all entities indexed under value, in key order.
func (ix nativeIndex) Keys(db nftswap.ReadOnlyKVStore, value []byte) ([][]byte, error) {
	start, err := packNativeIdxKey([][]byte{[]byte(ix.bucket), []byte(ix.name), value})
	if err != nil {
		return nil, errors.Wrap(err, "build index key")
	}
	// No chunk length reaches MaxUint8, so every entity reference of
	// this value sorts before it.
	end := make([]byte, len(start)+1)
	copy(end, start)
	end[len(end)-1] = math.MaxUint8

	it, err := db.Iterator(start, end)
	if err != nil {
		return nil, errors.Wrap(err, "iterator")
	}
	defer it.Close()

	var keys [][]byte
	for it.Valid() {
		chunks, err := unpackNativeIdxKey(it.Key())
		if err != nil {
			return nil, errors.Wrap(err, "unpack native index key")
		}
		ref := chunks[len(chunks)-1]
		keys = append(keys, append([]byte(nil), ref...))
		if err := it.Next(); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// subtract returns all non empty elements of minuend that are not in
// subtrahend.
func subtract(minuend, subtrahend [][]byte) [][]byte {
	var r [][]byte
outer:
	for _, m := range minuend {
		if len(m) == 0 {
			continue
		}
		for _, s := range subtrahend {
			if bytes.Equal(m, s) {
				continue outer
			}
		}
		r = append(r, m)
	}
	return r
}

// packNativeIdxKey serializes a native index key from a set of chunks,
// each prefixed with its length as a single byte. The process can be
// reversed with unpackNativeIdxKey.
func packNativeIdxKey(chunks [][]byte) ([]byte, error) {
	size := len(nativeIdxPrefix)
	for _, b := range chunks {
		size += len(b) + 1
	}
	res := make([]byte, 0, size)
	res = append(res, nativeIdxPrefix...)
	for _, b := range chunks {
		// MaxUint8 is reserved as the search upper bound.
		if len(b) > math.MaxUint8-1 {
			return nil, errors.Wrapf(errors.ErrInput, "no chunk can be bigger than %d bytes", math.MaxUint8-1)
		}
		res = append(res, uint8(len(b)))
		res = append(res, b...)
	}
	return res, nil
}

func unpackNativeIdxKey(b []byte) ([][]byte, error) {
	if !bytes.HasPrefix(b, []byte(nativeIdxPrefix)) {
		return nil, errors.Wrap(errors.ErrInput, "not a native index key")
	}
	b = b[len(nativeIdxPrefix):]
	res := make([][]byte, 0, 4)
	for len(b) > 0 {
		size := int(b[0])
		if len(b) < 1+size {
			return nil, errors.Wrap(errors.ErrInput, "malformed chunk")
		}
		res = append(res, b[1:1+size])
		b = b[1+size:]
	}
	return res, nil
}
