package escrow

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// CoinMover is an interface for moving native value between accounts.
// cash.Controller implements it.
type CoinMover interface {
	MoveCoins(db nftswap.KVStore, src, dest nftswap.Address, amount uint64) error
	Balance(db nftswap.ReadOnlyKVStore, addr nftswap.Address) (uint64, error)
}

// settle pays amount directly from payer to payee. Nothing is held by
// the escrow record.
func settle(db nftswap.KVStore, bank CoinMover, payer, payee nftswap.Address, amount uint64) error {
	if err := bank.MoveCoins(db, payer, payee, amount); err != nil {
		return errors.Wrap(err, "payment")
	}
	return nil
}

// sweep moves everything held by src to dest.
func sweep(db nftswap.KVStore, bank CoinMover, src, dest nftswap.Address) (uint64, error) {
	amount, err := bank.Balance(db, src)
	if err != nil {
		return 0, errors.Wrap(err, "balance")
	}
	if amount == 0 {
		return 0, nil
	}
	if err := bank.MoveCoins(db, src, dest, amount); err != nil {
		return 0, errors.Wrap(err, "reclaim deposit")
	}
	return amount, nil
}
