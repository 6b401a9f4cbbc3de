package escrow

import (
	"context"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/x"
)

type contextKey int // local to the escrow module

const (
	contextKeyAuthority contextKey = iota
)

// withAuthority is a private method, as only this module can act on
// behalf of an escrow record.
func withAuthority(ctx nftswap.Context, cond nftswap.Condition) nftswap.Context {
	conds := append(getAuthority(ctx), cond)
	return context.WithValue(ctx, contextKeyAuthority, conds)
}

func getAuthority(ctx nftswap.Context) []nftswap.Condition {
	val, _ := ctx.Value(contextKeyAuthority).([]nftswap.Condition)
	// copy so that appending never shares the array with a parent context
	return append([]nftswap.Condition(nil), val...)
}

// Authenticate exposes the escrow records that authorized the current
// request. Wire it into the custody service authenticator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetAddresses returns the addresses of all records acting in this
// context.
func (a Authenticate) GetAddresses(ctx nftswap.Context) []nftswap.Address {
	conds := getAuthority(ctx)
	res := make([]nftswap.Address, len(conds))
	for i, c := range conds {
		res[i] = c.Address()
	}
	return res
}

// HasAddress returns true if the record with given address authorized
// the request.
func (a Authenticate) HasAddress(ctx nftswap.Context, addr nftswap.Address) bool {
	for _, c := range getAuthority(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
