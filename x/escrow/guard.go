package escrow

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

func checkSeller(e *Escrow, seller nftswap.Address) error {
	if !e.Seller.Equals(seller) {
		return errors.Wrapf(ErrInvalidSeller, "want %s", e.Seller)
	}
	return nil
}

func checkAsset(e *Escrow, asset nftswap.Address) error {
	if !e.Asset.Equals(asset) {
		return errors.Wrapf(ErrAssetMismatch, "want %s", e.Asset)
	}
	return nil
}

// checkBuyer passes for any buyer of an open offer.
func checkBuyer(e *Escrow, buyer nftswap.Address) error {
	if e.HasBuyer() && !e.Buyer.Equals(buyer) {
		return errors.Wrapf(ErrBuyerMismatch, "offer reserved for %s", e.Buyer)
	}
	return nil
}
