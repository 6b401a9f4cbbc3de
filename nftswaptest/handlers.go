package nftswaptest

import "github.com/iov-one/nftswap"

// Handler is a mock implementation of the nftswap.Handler interface.
// Each method call is counted and returns the configured result.
type Handler struct {
	checkCall   int
	CheckResult nftswap.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult nftswap.DeliverResult
	DeliverErr    error

	// Write if set is stored in the database on every call, before
	// the result is returned.
	Write *nftswap.Model
}

var _ nftswap.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	h.checkCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	res := h.CheckResult
	return &res, h.CheckErr
}

func (h *Handler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	h.deliverCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	res := h.DeliverResult
	return &res, h.DeliverErr
}

func (h *Handler) write(db nftswap.KVStore) error {
	if h.Write == nil {
		return nil
	}
	return db.Set(h.Write.Key, h.Write.Value)
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// PanicHandler panics on every call.
type PanicHandler struct {
	Msg string
}

var _ nftswap.Handler = PanicHandler{}

func (p PanicHandler) Check(nftswap.Context, nftswap.KVStore, nftswap.Tx) (*nftswap.CheckResult, error) {
	panic(p.Msg)
}

func (p PanicHandler) Deliver(nftswap.Context, nftswap.KVStore, nftswap.Tx) (*nftswap.DeliverResult, error) {
	panic(p.Msg)
}
