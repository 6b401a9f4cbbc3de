package escrow

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/x/nft"
)

// AssetCustodian moves unique assets between custodians. nft.Controller
// implements it.
type AssetCustodian interface {
	Transfer(ctx nftswap.Context, db nftswap.KVStore, req nft.TransferRequest) error
}

// CollectionRef tells the custodian whether to verify collection
// membership. It is either WithCollectionReference or
// WithoutCollectionReference.
type CollectionRef interface {
	collection() nftswap.Address
}

// WithCollectionReference requests verification against Ref.
type WithCollectionReference struct {
	Ref nftswap.Address
}

func (w WithCollectionReference) collection() nftswap.Address { return w.Ref }

// WithoutCollectionReference omits collection verification.
type WithoutCollectionReference struct{}

func (WithoutCollectionReference) collection() nftswap.Address { return nil }

// CollectionRefFrom interprets the auxiliary accounts supplied with a
// message. When at least two are present the second one references the
// collection.
func CollectionRefFrom(accounts [][]byte) CollectionRef {
	if len(accounts) >= 2 {
		return WithCollectionReference{Ref: accounts[1]}
	}
	return WithoutCollectionReference{}
}

// custodyAdapter issues one transfer request per hand-off.
type custodyAdapter struct {
	custodian AssetCustodian
}

// deposit moves the asset from the seller into the record custody.
func (c custodyAdapter) deposit(ctx nftswap.Context, db nftswap.KVStore, e *Escrow, ref CollectionRef) error {
	req := nft.TransferRequest{
		Asset:      e.Asset,
		Authority:  e.Seller,
		NewOwner:   e.Address(),
		Collection: ref.collection(),
	}
	return c.transfer(ctx, db, req)
}

// release moves the asset out of the record custody. The record proves
// its authority with the condition derived from its fields.
func (c custodyAdapter) release(ctx nftswap.Context, db nftswap.KVStore, e *Escrow, to nftswap.Address, ref CollectionRef) error {
	cond := authorityCondition(e.Asset, e.Seller, e.Nonce)
	req := nft.TransferRequest{
		Asset:      e.Asset,
		Authority:  cond.Address(),
		NewOwner:   to,
		Collection: ref.collection(),
	}
	return c.transfer(withAuthority(ctx, cond), db, req)
}

func (c custodyAdapter) transfer(ctx nftswap.Context, db nftswap.KVStore, req nft.TransferRequest) error {
	err := c.custodian.Transfer(ctx, db, req)
	switch {
	case err == nil:
		return nil
	case nft.ErrMissingCollection.Is(err):
		// Reported with the escrow code, the custody error is kept as text.
		return errors.Wrap(ErrMissingTransferAccount, err.Error())
	default:
		return errors.Wrap(err, "asset custody transfer")
	}
}
