package app

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strconv"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store/iavl"
	"github.com/iov-one/nftswap/x"
	"github.com/iov-one/nftswap/x/cash"
	"github.com/iov-one/nftswap/x/escrow"
	"github.com/iov-one/nftswap/x/nft"
	"github.com/iov-one/nftswap/x/sigs"
	"github.com/iov-one/nftswap/x/utils"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is reported to tendermint in the abci Info response.
const Name = "nftswap"

// Authenticator returns the authentication used by all handlers. Only
// signatures prove identity. Escrow records prove their authority to
// the asset registry alone, see DefaultRouter.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// panics, logging and atomicity of every transaction.
func Chain() Decorators {
	return ChainDecorators(
		utils.NewRecovery(),
		utils.NewLogging(),
		sigs.NewDecorator(),
		// sequences are incremented outside of the savepoint
		utils.NewSavepoint().OnCheck().OnDeliver(),
	)
}

// DefaultRouter returns a router with the ledger, the asset registry
// and the escrow handlers registered.
func DefaultRouter(authFn x.Authenticator) *Router {
	r := NewRouter()

	bank := cash.NewController()
	assets := nft.NewController(x.ChainAuth(authFn, escrow.Authenticate{}))

	cash.RegisterRoutes(r, authFn, bank)
	nft.RegisterRoutes(r, authFn, assets)
	escrow.RegisterRoutes(r, authFn, assets, bank)
	return r
}

// QueryRouter returns a default query router, allowing access to
// wallets, signers, assets and escrow records.
func QueryRouter() nftswap.QueryRouter {
	r := nftswap.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		nft.RegisterQuery,
		escrow.RegisterQuery,
	)
	return r
}

// Initializers returns the genesis loaders of all extensions.
func Initializers() nftswap.Initializer {
	return nftswap.ChainInitializers{
		cash.Initializer{},
		nft.Initializer{},
		escrow.Initializer{},
	}
}

// Stack wires the whole transaction processing pipeline.
func Stack() nftswap.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(DefaultRouter(authFn))
}

// Application constructs the abci application over the given store.
func Application(store nftswap.CommitKVStore, logger log.Logger, debug bool) (BaseApp, error) {
	ctx := context.Background()
	sa, err := NewStoreApp(Name, store, QueryRouter(), ctx)
	if err != nil {
		return BaseApp{}, err
	}
	sa = sa.WithInit(Initializers()).WithLogger(logger)
	return NewBaseApp(sa, TxDecoder, Stack(), debug), nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	var store nftswap.CommitKVStore
	if home == "" {
		store = iavl.NewMemCommitStore()
	} else {
		s, err := iavl.NewCommitStore(filepath.Join(home, "abci"), Name)
		if err != nil {
			return nil, err
		}
		store = s
	}
	return Application(store, logger, debug)
}

// DefaultBalance is given to the genesis account when no balance is
// provided.
const DefaultBalance uint64 = 1000000

// GenInitOptions builds the app_state of a new chain. The first argument
// is the base58 address of the genesis account, the optional second one
// its balance.
func GenInitOptions(args []string) (json.RawMessage, error) {
	if len(args) == 0 {
		return nil, errors.Wrap(errors.ErrInput, "genesis account address required")
	}
	addr, err := nftswap.ParseAddress(args[0])
	if err != nil {
		return nil, errors.Wrap(err, "genesis account")
	}
	balance := DefaultBalance
	if len(args) > 1 {
		balance, err = strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInput, err.Error())
		}
	}

	state := struct {
		Cash   []cash.GenesisAccount `json:"cash"`
		Escrow escrow.Configuration  `json:"escrow"`
	}{
		Cash: []cash.GenesisAccount{{Address: addr, Balance: balance}},
	}
	return json.MarshalIndent(state, "", "  ")
}
