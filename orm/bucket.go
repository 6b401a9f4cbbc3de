/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of model.
* It has a primary key, chosen by the caller.
* Easy queries for one and iteration over all.

Do not use so much reflection magic. Better do stuff compile-time
static, even if it is a bit of boilerplate.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString
)

// Bucket is a prefixed subspace of the DB. It stores raw values and
// knows nothing about their type.
type Bucket struct {
	name   string
	prefix []byte
}

var _ nftswap.QueryHandler = Bucket{}

// NewBucket creates a bucket to store data
func NewBucket(name string) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix
func (b Bucket) DBKey(key []byte) []byte {
	res := make([]byte, 0, len(b.prefix)+len(key))
	res = append(res, b.prefix...)
	return append(res, key...)
}

// Get returns the raw value stored under key, or nil.
func (b Bucket) Get(db nftswap.ReadOnlyKVStore, key []byte) ([]byte, error) {
	return db.Get(b.DBKey(key))
}

// Has returns true if a value is stored under key.
func (b Bucket) Has(db nftswap.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}

// Set stores the raw value under key.
func (b Bucket) Set(db nftswap.KVStore, key, value []byte) error {
	return db.Set(b.DBKey(key), value)
}

// Delete removes the value stored under key.
func (b Bucket) Delete(db nftswap.KVStore, key []byte) error {
	return db.Delete(b.DBKey(key))
}

// Iterator returns all entries of the bucket whose key starts with
// the given prefix. Returned keys are stripped of the bucket prefix.
func (b Bucket) Iterator(db nftswap.ReadOnlyKVStore, prefix []byte) ([]nftswap.Model, error) {
	start := b.DBKey(prefix)
	it, err := db.Iterator(start, prefixEnd(start))
	if err != nil {
		return nil, errors.Wrap(err, "iterator")
	}
	models, err := ConsumeIterator(it)
	if err != nil {
		return nil, err
	}
	for i := range models {
		models[i].Key = models[i].Key[len(b.prefix):]
	}
	return models, nil
}

// Register registers this Bucket for queries under "/" + name. You can
// define a name here for queries, which is different than the bucket
// name used to prefix the data.
func (b Bucket) Register(name string, r nftswap.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query handles queries from the QueryRouter.
func (b Bucket) Query(db nftswap.ReadOnlyKVStore, mod string, data []byte) ([]nftswap.Model, error) {
	switch mod {
	case nftswap.KeyQueryMod:
		value, err := b.Get(db, data)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, nil
		}
		return []nftswap.Model{nftswap.Pair(data, value)}, nil
	case nftswap.PrefixQueryMod:
		return b.Iterator(db, data)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}
