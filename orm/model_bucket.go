package orm

import (
	"fmt"
	"reflect"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// Model is impelemented by any entity that can be stored using ModelBucket.
type Model interface {
	nftswap.Persistent
	Validate() error
}

// ModelBucket is implemented by buckets that operates on Models rather than
// raw bytes.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary key. Result is loaded into given destination model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	One(db nftswap.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns true if an entity with given key exists.
	Has(db nftswap.ReadOnlyKVStore, key []byte) (bool, error)

	// Put saves given model in the database, replacing any previous
	// value.
	Put(db nftswap.KVStore, key []byte, m Model) error

	// Create saves given model only if no entity with the same key
	// exists. Otherwise ErrDuplicate is returned.
	Create(db nftswap.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db nftswap.KVStore, key []byte) error

	// Visit calls fn for every stored entity, in key order. Iteration
	// stops at the first error.
	Visit(db nftswap.ReadOnlyKVStore, fn func(key []byte, m Model) error) error

	// ByIndex returns the key and serialized value of every entity
	// indexed under value by the named index, in key order.
	ByIndex(db nftswap.ReadOnlyKVStore, indexName string, value []byte) ([]nftswap.Model, error)

	// Register the bucket for queries.
	Register(name string, r nftswap.QueryRouter)

	// RegisterIndex registers the named index for queries under
	// "/" + path. The query data is the indexed value.
	RegisterIndex(indexName, path string, r nftswap.QueryRouter)
}

// ModelBucketOption is implemented by any function that can configure
// ModelBucket during creation.
type ModelBucketOption func(mb *modelBucket)

// WithIndex configures the bucket to maintain a secondary index. Index
// names must be unique within a bucket.
func WithIndex(name string, indexer Indexer) ModelBucketOption {
	return func(mb *modelBucket) {
		if _, ok := mb.indexes[name]; ok {
			panic(fmt.Sprintf("duplicated index %q in bucket %s", name, mb.b.Name()))
		}
		mb.indexes[name] = nativeIndex{
			bucket:  mb.b.Name(),
			name:    name,
			indexer: indexer,
		}
	}
}

// NewModelBucket returns a ModelBucket instance storing models of the
// same type as the given prototype.
func NewModelBucket(name string, proto Model, opts ...ModelBucketOption) ModelBucket {
	mb := &modelBucket{
		b:       NewBucket(name),
		model:   reflect.TypeOf(proto),
		indexes: make(map[string]nativeIndex),
	}
	for _, fn := range opts {
		fn(mb)
	}
	return mb
}

type modelBucket struct {
	b       Bucket
	model   reflect.Type
	indexes map[string]nativeIndex
}

func (mb *modelBucket) One(db nftswap.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := mb.b.Get(db, key)
	if err != nil {
		return errors.Wrap(err, "cannot read from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if !reflect.TypeOf(dest).AssignableTo(mb.model) {
		return errors.Wrapf(errors.ErrType, "%s cannot be represented as %T", mb.model, dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	return nil
}

func (mb *modelBucket) Has(db nftswap.ReadOnlyKVStore, key []byte) (bool, error) {
	return mb.b.Has(db, key)
}

func (mb *modelBucket) Put(db nftswap.KVStore, key []byte, m Model) error {
	if !reflect.TypeOf(m).AssignableTo(mb.model) {
		return errors.Wrapf(errors.ErrType, "%T cannot be stored as %s", m, mb.model)
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot serialize")
	}
	prev, err := mb.load(db, key)
	if err != nil {
		return err
	}
	if err := mb.b.Set(db, key, raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return mb.updateIndexes(db, key, prev, m)
}

func (mb *modelBucket) Create(db nftswap.KVStore, key []byte, m Model) error {
	exists, err := mb.b.Has(db, key)
	if err != nil {
		return errors.Wrap(err, "cannot read from the database")
	}
	if exists {
		return errors.Wrapf(errors.ErrDuplicate, "%T already exists", m)
	}
	return mb.Put(db, key, m)
}

func (mb *modelBucket) Delete(db nftswap.KVStore, key []byte) error {
	prev, err := mb.load(db, key)
	if err != nil {
		return err
	}
	if prev == nil {
		return errors.ErrNotFound
	}
	if err := mb.b.Delete(db, key); err != nil {
		return err
	}
	return mb.updateIndexes(db, key, prev, nil)
}

// load returns the model stored under key, or nil if there is none.
func (mb *modelBucket) load(db nftswap.ReadOnlyKVStore, key []byte) (Model, error) {
	raw, err := mb.b.Get(db, key)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read from the database")
	}
	if raw == nil {
		return nil, nil
	}
	return mb.decode(raw)
}

func (mb *modelBucket) decode(raw []byte) (Model, error) {
	m := reflect.New(mb.model.Elem()).Interface().(Model)
	if err := m.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return m, nil
}

func (mb *modelBucket) updateIndexes(db nftswap.KVStore, key []byte, prev, next Model) error {
	for name, idx := range mb.indexes {
		if err := idx.Update(db, key, prev, next); err != nil {
			return errors.Wrapf(err, "index %s", name)
		}
	}
	return nil
}

func (mb *modelBucket) ByIndex(db nftswap.ReadOnlyKVStore, indexName string, value []byte) ([]nftswap.Model, error) {
	idx, ok := mb.indexes[indexName]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInput, "unknown index %q", indexName)
	}
	keys, err := idx.Keys(db, value)
	if err != nil {
		return nil, err
	}
	res := make([]nftswap.Model, 0, len(keys))
	for _, key := range keys {
		raw, err := mb.b.Get(db, key)
		if err != nil {
			return nil, errors.Wrap(err, "cannot read from the database")
		}
		if raw == nil {
			return nil, errors.Wrapf(errors.ErrState, "index %s references a missing entity", indexName)
		}
		res = append(res, nftswap.Pair(key, raw))
	}
	return res, nil
}

func (mb *modelBucket) Visit(db nftswap.ReadOnlyKVStore, fn func(key []byte, m Model) error) error {
	models, err := mb.b.Iterator(db, nil)
	if err != nil {
		return err
	}
	for _, raw := range models {
		m, err := mb.decode(raw.Value)
		if err != nil {
			return err
		}
		if err := fn(raw.Key, m); err != nil {
			return err
		}
	}
	return nil
}

func (mb *modelBucket) Register(name string, r nftswap.QueryRouter) {
	mb.b.Register(name, r)
}

func (mb *modelBucket) RegisterIndex(indexName, path string, r nftswap.QueryRouter) {
	if _, ok := mb.indexes[indexName]; !ok {
		panic(fmt.Sprintf("unknown index %q in bucket %s", indexName, mb.b.Name()))
	}
	r.Register("/"+path, indexQuery{bucket: mb, name: indexName})
}

// indexQuery serves the entities referenced by one index value.
type indexQuery struct {
	bucket *modelBucket
	name   string
}

func (q indexQuery) Query(db nftswap.ReadOnlyKVStore, mod string, data []byte) ([]nftswap.Model, error) {
	if mod != nftswap.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
	return q.bucket.ByIndex(db, q.name, data)
}

var _ ModelBucket = (*modelBucket)(nil)
