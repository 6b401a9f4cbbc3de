package nftswaptest

import "github.com/iov-one/nftswap"

// Decorator is a mock implementation of the nftswap.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ nftswap.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx, next nftswap.Checker) (*nftswap.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx, next nftswap.Deliverer) (*nftswap.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate returns a handler that calls the decorator with h as the next
// step.
func Decorate(h nftswap.Handler, d nftswap.Decorator) nftswap.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn nftswap.Handler
	dc nftswap.Decorator
}

var _ nftswap.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
