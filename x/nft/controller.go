package nft

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/orm"
	"github.com/iov-one/nftswap/x"
)

// TransferRequest instructs the custody service to move an asset.
type TransferRequest struct {
	// Asset is the ID of the asset to move.
	Asset nftswap.Address
	// Authority is the current custodian. It must own the asset and
	// must be authenticated by the request context.
	Authority nftswap.Address
	// NewOwner is the custodian after the transfer.
	NewOwner nftswap.Address
	// Collection references the collection of the asset. It is required
	// for assets that belong to a collection and forbidden otherwise.
	Collection nftswap.Address
}

// Controller is the custody service other extensions can use to move
// assets.
type Controller interface {
	// Transfer moves the asset described by the request.
	Transfer(ctx nftswap.Context, db nftswap.KVStore, req TransferRequest) error
	// Issue creates a new asset. It fails if the ID is taken.
	Issue(db nftswap.KVStore, a *Asset) error
	// Get returns the asset with given ID.
	Get(db nftswap.ReadOnlyKVStore, id nftswap.Address) (*Asset, error)
}

// BaseController implements Controller on top of a bucket.
type BaseController struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller that checks the transfer authority
// using the given authenticator.
func NewController(auth x.Authenticator) BaseController {
	return BaseController{auth: auth, bucket: NewBucket()}
}

func (c BaseController) Transfer(ctx nftswap.Context, db nftswap.KVStore, req TransferRequest) error {
	if err := req.NewOwner.Validate(); err != nil {
		return errors.Wrap(err, "new owner")
	}
	a, err := c.Get(db, req.Asset)
	if err != nil {
		return err
	}
	if !a.Owner.Equals(req.Authority) {
		return errors.Wrapf(ErrNotOwner, "asset %s", a.ID)
	}
	if !c.auth.HasAddress(ctx, req.Authority) {
		return errors.Wrap(errors.ErrUnauthorized, "custodian authority missing")
	}
	if err := verifyCollection(a, req.Collection); err != nil {
		return err
	}

	a.Owner = req.NewOwner.Clone()
	if err := c.bucket.Put(db, a.ID, a); err != nil {
		return errors.Wrap(err, "cannot save asset")
	}
	return nil
}

func verifyCollection(a *Asset, ref nftswap.Address) error {
	switch {
	case a.HasCollection() && len(ref) == 0:
		return errors.Wrapf(ErrMissingCollection, "asset %s", a.ID)
	case !a.HasCollection() && len(ref) != 0:
		return errors.Wrap(ErrCollectionMismatch, "asset does not belong to a collection")
	case a.HasCollection() && !a.Collection.Equals(ref):
		return errors.Wrapf(ErrCollectionMismatch, "want %s", a.Collection)
	}
	return nil
}

func (c BaseController) Issue(db nftswap.KVStore, a *Asset) error {
	return c.bucket.Create(db, a.ID, a)
}

func (c BaseController) Get(db nftswap.ReadOnlyKVStore, id nftswap.Address) (*Asset, error) {
	var a Asset
	if err := c.bucket.One(db, id, &a); err != nil {
		return nil, errors.Wrapf(err, "asset %s", id)
	}
	return &a, nil
}
