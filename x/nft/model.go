package nft

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/orm"
)

// BucketName is where we store the assets
const BucketName = "asset"

const (
	maxNameLength = 64
	maxURILength  = 256
)

var _ orm.Model = (*Asset)(nil)

// Validate ensures the asset is well formed.
func (a *Asset) Validate() error {
	if err := a.ID.Validate(); err != nil {
		return errors.Wrap(err, "id")
	}
	if err := a.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if len(a.Collection) != 0 {
		if err := a.Collection.Validate(); err != nil {
			return errors.Wrap(err, "collection")
		}
	}
	return validateMetadata(a.Name, a.URI)
}

func validateMetadata(name, uri string) error {
	if len(name) > maxNameLength {
		return errors.Wrap(errors.ErrInput, "name too long")
	}
	if len(uri) > maxURILength {
		return errors.Wrap(errors.ErrInput, "uri too long")
	}
	return nil
}

// HasCollection returns true if the asset belongs to a collection.
func (a *Asset) HasCollection() bool {
	return len(a.Collection) != 0
}

// NewBucket returns a bucket for storing assets by their ID, indexed by
// owner.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Asset{},
		orm.WithIndex(ownerIndex, idxOwner))
}

const ownerIndex = "owner"

func idxOwner(m orm.Model) ([][]byte, error) {
	a, ok := m.(*Asset)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", m)
	}
	return [][]byte{a.Owner}, nil
}

// AssetID returns the asset identifier minted by issuer under the given
// label. Clients may use it to pick IDs that do not collide.
func AssetID(issuer nftswap.Address, label string) nftswap.Address {
	return nftswap.NewCondition("nft", "asset", append(issuer.Clone(), label...)).Address()
}
