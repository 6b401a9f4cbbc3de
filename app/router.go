package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// isPath is the RegExp to ensure the routes make sense
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]nftswap.Handler
}

var _ nftswap.Registry = (*Router)(nil)
var _ nftswap.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]nftswap.Handler, 10),
	}
}

// Handle adds a new Handler for the given path. This function panics if a
// handler for given path is already registered.
func (r *Router) Handle(path string, h nftswap.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path. If no path
// is found, returns a noSuchPath Handler. This function always returns
// a non-nil value.
func (r *Router) Handler(path string) nftswap.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx nftswap.Context, store nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	return r.Handler(tx.MsgPath()).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx nftswap.Context, store nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	return r.Handler(tx.MsgPath()).Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrNotFound error regardless of the
// arguments provided.
type notFoundHandler string

func (path notFoundHandler) Check(nftswap.Context, nftswap.KVStore, nftswap.Tx) (*nftswap.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(nftswap.Context, nftswap.KVStore, nftswap.Tx) (*nftswap.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
