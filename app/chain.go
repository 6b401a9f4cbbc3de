package app

import (
	"reflect"

	"github.com/iov-one/nftswap"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler
type Decorators struct {
	chain []nftswap.Decorator
}

/*
ChainDecorators takes a chain of decorators,
and upon adding a final Handler (often a Router),
returns a Handler that will execute this whole stack.

	app.ChainDecorators(
		utils.NewRecovery(),
		utils.NewLogging(),
		sigs.NewDecorator(),
		utils.NewSavepoint().OnCheck().OnDeliver(),
	).WithHandler(
		app.NewRouter(),
	)
*/
func ChainDecorators(chain ...nftswap.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a new stack with the given decorators appended. Nil
// decorators are skipped, so optional layers can be passed inline.
func (d Decorators) Chain(chain ...nftswap.Decorator) Decorators {
	next := make([]nftswap.Decorator, 0, len(d.chain)+len(chain))
	next = append(next, d.chain...)
	for _, dec := range chain {
		if !isNil(dec) {
			next = append(next, dec)
		}
	}
	return Decorators{chain: next}
}

func isNil(d nftswap.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler resolves the stack and returns a concrete Handler
// that will pass through the chain of decorators before calling
// the final Handler.
func (d Decorators) WithHandler(h nftswap.Handler) nftswap.Handler {
	// the first decorator of the chain is the outermost
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step captures one step executing a decorator around a
// specific Handler.
type step struct {
	d    nftswap.Decorator
	next nftswap.Handler
}

var _ nftswap.Handler = step{}

// Check passes the handler into the decorator, implements Handler
func (s step) Check(ctx nftswap.Context, store nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	return s.d.Check(ctx, store, tx, s.next)
}

// Deliver passes the handler into the decorator, implements Handler
func (s step) Deliver(ctx nftswap.Context, store nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	return s.d.Deliver(ctx, store, tx, s.next)
}
