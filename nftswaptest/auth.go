package nftswaptest

import (
	"context"
	"fmt"

	"github.com/iov-one/nftswap"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced addresses.
// You can use either Signer or Signers (or both) attributes to reference
// addresses. Each time all signers (regardless which attribute) are
// considered.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer nftswap.Address

	// Signers represents an authentication of multiple signers.
	Signers []nftswap.Address
}

func (a *Auth) GetAddresses(nftswap.Context) []nftswap.Address {
	if a.Signer != nil {
		return append([]nftswap.Address{a.Signer}, a.Signers...)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx nftswap.Context, addr nftswap.Address) bool {
	for _, s := range a.GetAddresses(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve addresses from the context. For
	// convenience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetAddresses(ctx nftswap.Context, signers ...nftswap.Address) nftswap.Context {
	return context.WithValue(ctx, a.Key, signers)
}

func (a *CtxAuth) GetAddresses(ctx nftswap.Context) []nftswap.Address {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	addrs, ok := val.([]nftswap.Address)
	if !ok {
		panic(fmt.Sprintf("instead of []nftswap.Address got %T", val))
	}
	return addrs
}

func (a *CtxAuth) HasAddress(ctx nftswap.Context, addr nftswap.Address) bool {
	for _, s := range a.GetAddresses(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}
