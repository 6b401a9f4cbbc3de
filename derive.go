package nftswap

import (
	"filippo.io/edwards25519"
)

// DerivedCondition returns the condition that proves authority over the
// address derived from data with the given nonce. The nonce is appended
// to data.
func DerivedCondition(ext, typ string, data []byte, nonce uint8) Condition {
	seed := make([]byte, 0, len(data)+1)
	seed = append(seed, data...)
	seed = append(seed, nonce)
	return NewCondition(ext, typ, seed)
}

// FindDerivedAddress searches for the highest nonce for which the
// derived address is not a point on the ed25519 curve. Such an address
// can never be controlled by a private key, only by the extension
// that is able to present the derived condition.
//
// The last return value is false when no nonce produced a valid
// address.
func FindDerivedAddress(ext, typ string, data []byte) (Address, uint8, bool) {
	for n := 255; n >= 0; n-- {
		addr := DerivedCondition(ext, typ, data, uint8(n)).Address()
		if !OnCurve(addr) {
			return addr, uint8(n), true
		}
	}
	return nil, 0, false
}

// OnCurve returns true if the address decodes to a valid ed25519 point,
// meaning that a private key for it may exist.
func OnCurve(addr Address) bool {
	if len(addr) != 32 {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(addr)
	return err == nil
}
