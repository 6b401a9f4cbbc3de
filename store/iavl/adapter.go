/*
Package iavl persists application state in an iavl merkle tree backed by
goleveldb. Every block is committed as a new tree version, and the root
hash is reported to tendermint as the app hash.
*/
package iavl

import (
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// DefaultCacheSize is the number of tree nodes kept in memory.
const DefaultCacheSize = 10000

// CommitStore manages a iavl committed state
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ store.CommitKVStore = CommitStore{}

// NewCommitStore creates a new store with disk backing
func NewCommitStore(dir, name string) (CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return CommitStore{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return CommitStore{iavl.NewMutableTree(db, DefaultCacheSize)}, nil
}

// NewMemCommitStore creates a store that lives only in memory.
func NewMemCommitStore() CommitStore {
	return CommitStore{iavl.NewMutableTree(dbm.NewMemDB(), DefaultCacheSize)}
}

// Get returns the value at last committed state
// returns nil iff key doesn't exist. Panics on nil key.
func (s CommitStore) Get(key []byte) ([]byte, error) {
	_, val := s.tree.GetVersioned(key, s.tree.Version())
	return val, nil
}

// Commit the next version to disk, and returns info
func (s CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk
func (s CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap gives us a savepoint to perform actions.
// Writing the cache only updates the working tree, the data is
// persisted on the next Commit.
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	working := treeStore{s.tree}
	return store.NewBTreeCacheWrap(working, working.NewBatch(), nil)
}

// treeStore exposes the working (uncommitted) tree as a KVStore.
type treeStore struct {
	tree *iavl.MutableTree
}

var _ store.KVStore = treeStore{}

// Get returns nil iff key doesn't exist. Panics on nil key.
func (t treeStore) Get(key []byte) ([]byte, error) {
	_, val := t.tree.Get(key)
	return val, nil
}

// Has checks if a key exists. Panics on nil key.
func (t treeStore) Has(key []byte) (bool, error) {
	return t.tree.Has(key), nil
}

// Set adds a new value
func (t treeStore) Set(key, value []byte) error {
	t.tree.Set(key, value)
	return nil
}

// Delete removes from the tree
func (t treeStore) Delete(key []byte) error {
	t.tree.Remove(key)
	return nil
}

// NewBatch returns a batch that writes into the working tree.
// Atomicity is given by the tree versioning.
func (t treeStore) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(t)
}

// Iterator over a domain of keys in ascending order. End is exclusive.
func (t treeStore) Iterator(start, end []byte) (store.Iterator, error) {
	return t.collect(start, end, true), nil
}

// ReverseIterator over a domain of keys in descending order. End is exclusive.
func (t treeStore) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return t.collect(start, end, false), nil
}

func (t treeStore) collect(start, end []byte, ascending bool) store.Iterator {
	var res []store.Model
	t.tree.IterateRange(start, end, ascending, func(key []byte, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	})
	return store.NewSliceIterator(res)
}
