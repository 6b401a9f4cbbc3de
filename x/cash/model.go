package cash

import (
	"github.com/iov-one/nftswap/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

var _ orm.Model = (*Wallet)(nil)

// Validate always passes, every uint64 balance is valid.
func (w *Wallet) Validate() error {
	return nil
}

// NewBucket returns a bucket for storing wallets.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Wallet{})
}
