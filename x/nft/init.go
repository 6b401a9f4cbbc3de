package nft

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

const optKey = "nft"

// Initializer loads assets from the genesis file.
type Initializer struct{}

var _ nftswap.Initializer = Initializer{}

// FromGenesis creates every asset listed under the "nft" key.
func (Initializer) FromGenesis(opts nftswap.Options, kv nftswap.KVStore) error {
	var assets []Asset
	if err := opts.ReadOptions(optKey, &assets); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	bucket := NewBucket()
	for i := range assets {
		a := &assets[i]
		if err := bucket.Create(kv, a.ID, a); err != nil {
			return errors.Wrapf(err, "asset %d", i)
		}
	}
	return nil
}
