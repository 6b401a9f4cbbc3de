package escrow

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

const (
	seedLabel     = "escrow"
	conditionType = "pda"
)

func seed(asset, seller nftswap.Address) []byte {
	s := make([]byte, 0, len(seedLabel)+len(asset)+len(seller))
	s = append(s, seedLabel...)
	s = append(s, asset...)
	return append(s, seller...)
}

// RecordAddress returns the address of the escrow record for the given
// asset and seller, together with the nonce needed to prove authority
// over it.
func RecordAddress(asset, seller nftswap.Address) (nftswap.Address, uint8, error) {
	addr, nonce, ok := nftswap.FindDerivedAddress(BucketName, conditionType, seed(asset, seller))
	if !ok {
		return nil, 0, errors.Wrap(ErrEscrowBumpMissing, "no nonce yields a record address")
	}
	return addr, nonce, nil
}

// authorityCondition is the capability that lets the escrow extension
// act as the custodian of the record address. It is computed from the
// immutable record fields and is never stored.
func authorityCondition(asset, seller nftswap.Address, nonce uint8) nftswap.Condition {
	return nftswap.DerivedCondition(BucketName, conditionType, seed(asset, seller), nonce)
}

// Address returns the address of the record, computed from its fields.
func (e *Escrow) Address() nftswap.Address {
	return authorityCondition(e.Asset, e.Seller, e.Nonce).Address()
}

// verifyAddress ensures the record stored under key still proves its own
// authority.
func verifyAddress(key []byte, e *Escrow) error {
	addr := e.Address()
	if !addr.Equals(key) || nftswap.OnCurve(addr) {
		return errors.Wrapf(ErrEscrowBumpMissing, "record %s does not derive from its fields", nftswap.Address(key))
	}
	return nil
}
