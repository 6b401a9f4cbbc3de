package store

import "github.com/iov-one/nftswap"

// Move references for all storage types into this package
// for shorter names everywhere

type (
	ReadOnlyKVStore  = nftswap.ReadOnlyKVStore
	SetDeleter       = nftswap.SetDeleter
	KVStore          = nftswap.KVStore
	Batch            = nftswap.Batch
	Iterator         = nftswap.Iterator
	CacheableKVStore = nftswap.CacheableKVStore
	KVCacheWrap      = nftswap.KVCacheWrap
	CommitKVStore    = nftswap.CommitKVStore
	CommitID         = nftswap.CommitID
	Model            = nftswap.Model
)
