package escrow

import (
	"context"
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/nftswaptest"
	"github.com/iov-one/nftswap/store"
	"github.com/iov-one/nftswap/x"
	"github.com/iov-one/nftswap/x/cash"
	"github.com/iov-one/nftswap/x/nft"
	"github.com/iov-one/nftswap/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type router map[string]nftswap.Handler

func (r router) Handle(path string, h nftswap.Handler) { r[path] = h }

// market wires the escrow handlers to the real ledger and asset
// registry. Every operation runs behind a savepoint, so a failed
// operation leaves no write behind.
type market struct {
	t      testing.TB
	db     nftswap.CacheableKVStore
	auth   *nftswaptest.CtxAuth
	routes router
	bank   cash.BaseController
	assets nft.BaseController
}

func newMarket(t testing.TB) *market {
	auth := &nftswaptest.CtxAuth{Key: "signers"}
	bank := cash.NewController()
	assets := nft.NewController(x.ChainAuth(auth, Authenticate{}))
	routes := router{}
	RegisterRoutes(routes, auth, assets, bank)
	nft.RegisterRoutes(routes, auth, assets)
	return &market{
		t:      t,
		db:     store.MemStore(),
		auth:   auth,
		routes: routes,
		bank:   bank,
		assets: assets,
	}
}

func (m *market) handler(msg nftswap.Msg) nftswap.Handler {
	h, ok := m.routes[msg.Path()]
	require.True(m.t, ok, "no route for %s", msg.Path())
	return nftswaptest.Decorate(h, utils.NewSavepoint().OnCheck().OnDeliver())
}

func (m *market) check(signer nftswap.Address, msg nftswap.Msg) error {
	ctx := m.auth.SetAddresses(context.Background(), signer)
	_, err := m.handler(msg).Check(ctx, m.db, &nftswaptest.Tx{Msg: msg})
	return err
}

func (m *market) deliver(signer nftswap.Address, msg nftswap.Msg) (*nftswap.DeliverResult, error) {
	ctx := m.auth.SetAddresses(context.Background(), signer)
	return m.handler(msg).Deliver(ctx, m.db, &nftswaptest.Tx{Msg: msg})
}

func (m *market) mustDeliver(signer nftswap.Address, msg nftswap.Msg) *nftswap.DeliverResult {
	require.NoError(m.t, m.check(signer, msg), "check %s", msg.Path())
	res, err := m.deliver(signer, msg)
	require.NoError(m.t, err, "deliver %s", msg.Path())
	return res
}

func (m *market) issue(owner nftswap.Address, label string, collection nftswap.Address) nftswap.Address {
	id := nft.AssetID(owner, label)
	require.NoError(m.t, m.assets.Issue(m.db, &nft.Asset{ID: id, Owner: owner, Collection: collection}))
	return id
}

func (m *market) fund(addr nftswap.Address, amount uint64) {
	require.NoError(m.t, m.bank.IssueCoins(m.db, addr, amount))
}

func (m *market) balance(addr nftswap.Address) uint64 {
	b, err := m.bank.Balance(m.db, addr)
	require.NoError(m.t, err)
	return b
}

func (m *market) owner(asset nftswap.Address) nftswap.Address {
	a, err := m.assets.Get(m.db, asset)
	require.NoError(m.t, err)
	return a.Owner
}

func (m *market) escrow(key nftswap.Address) *Escrow {
	e, err := loadEscrow(m.db, NewBucket(), key)
	require.NoError(m.t, err)
	return e
}

// listed creates an escrow and deposits the asset.
func (m *market) listed(seller, asset nftswap.Address, price uint64, buyer nftswap.Address) nftswap.Address {
	res := m.mustDeliver(seller, &CreateMsg{Asset: asset, Price: price, Buyer: buyer})
	key := nftswap.Address(res.Data)
	m.mustDeliver(seller, &DepositMsg{EscrowID: key, Asset: asset, Seller: seller})
	return key
}

func requireErr(t testing.TB, want *errors.Error, got error) {
	t.Helper()
	require.Truef(t, want.Is(got), "want %q, got %+v", want, got)
}

func TestScenarioOpenOfferSale(t *testing.T) {
	m := newMarket(t)
	seller := nftswaptest.NewAddress()
	buyer := nftswaptest.NewAddress()
	asset := m.issue(seller, "open", nil)
	m.fund(buyer, 1500)

	res := m.mustDeliver(seller, &CreateMsg{Asset: asset, Price: 1000})
	key := nftswap.Address(res.Data)
	wantKey, _, err := RecordAddress(asset, seller)
	require.NoError(t, err)
	assert.Equal(t, wantKey, key)
	assert.Equal(t, StatusPending, m.escrow(key).Status)
	assert.Nil(t, m.escrow(key).Buyer)

	m.mustDeliver(seller, &DepositMsg{EscrowID: key, Asset: asset, Seller: seller})
	assert.Equal(t, key, m.owner(asset))
	assert.Equal(t, StatusDeposited, m.escrow(key).Status)

	m.mustDeliver(buyer, &BuyMsg{EscrowID: key, Asset: asset, Seller: seller, Buyer: buyer})
	assert.Equal(t, uint64(1000), m.balance(seller))
	assert.Equal(t, uint64(500), m.balance(buyer))
	assert.Equal(t, buyer, m.owner(asset))

	e := m.escrow(key)
	assert.Equal(t, StatusCompleted, e.Status)
	assert.Equal(t, buyer, e.Buyer)
	assert.Equal(t, asset, e.Asset)
	assert.Equal(t, seller, e.Seller)
	assert.Equal(t, uint64(1000), e.Price)
}

func TestScenarioTargetedOfferRejectsOtherBuyer(t *testing.T) {
	m := newMarket(t)
	seller := nftswaptest.NewAddress()
	chosen := nftswaptest.NewAddress()
	intruder := nftswaptest.NewAddress()
	asset := m.issue(seller, "targeted", nil)
	m.fund(intruder, 700)
	m.fund(chosen, 500)

	key := m.listed(seller, asset, 500, chosen)
	buy := &BuyMsg{EscrowID: key, Asset: asset, Seller: seller, Buyer: intruder}

	requireErr(t, ErrBuyerMismatch, m.check(intruder, buy))
	_, err := m.deliver(intruder, buy)
	requireErr(t, ErrBuyerMismatch, err)

	// the payment made before the buyer check was discarded
	assert.Equal(t, uint64(0), m.balance(seller))
	assert.Equal(t, uint64(700), m.balance(intruder))
	assert.Equal(t, key, m.owner(asset))
	e := m.escrow(key)
	assert.Equal(t, StatusDeposited, e.Status)
	assert.Equal(t, chosen, e.Buyer)

	m.mustDeliver(chosen, &BuyMsg{EscrowID: key, Asset: asset, Seller: seller, Buyer: chosen})
	assert.Equal(t, uint64(500), m.balance(seller))
	assert.Equal(t, chosen, m.owner(asset))
}

func TestScenarioCancel(t *testing.T) {
	m := newMarket(t)
	seller := nftswaptest.NewAddress()
	buyer := nftswaptest.NewAddress()
	asset := m.issue(seller, "cancel", nil)
	m.fund(buyer, 100)

	key := m.listed(seller, asset, 100, buyer)
	m.mustDeliver(seller, &CancelMsg{EscrowID: key, Asset: asset, Seller: seller})

	assert.Equal(t, seller, m.owner(asset))
	e := m.escrow(key)
	assert.Equal(t, StatusCancelled, e.Status)
	assert.Nil(t, e.Buyer)

	_, err := m.deliver(buyer, &BuyMsg{EscrowID: key, Asset: asset, Seller: seller, Buyer: buyer})
	requireErr(t, ErrEscrowNotFunded, err)
	assert.Equal(t, uint64(100), m.balance(buyer))
}

func TestScenarioCloseWhilePending(t *testing.T) {
	m := newMarket(t)
	seller := nftswaptest.NewAddress()
	asset := m.issue(seller, "pending", nil)

	res := m.mustDeliver(seller, &CreateMsg{Asset: asset, Price: 10})
	key := nftswap.Address(res.Data)

	closeMsg := &CloseMsg{EscrowID: key, Seller: seller}
	requireErr(t, ErrEscrowStillActive, m.check(seller, closeMsg))
	_, err := m.deliver(seller, closeMsg)
	requireErr(t, ErrEscrowStillActive, err)
	assert.Equal(t, StatusPending, m.escrow(key).Status)
}

func TestOneLiveRecordPerAssetAndSeller(t *testing.T) {
	m := newMarket(t)
	seller := nftswaptest.NewAddress()
	other := nftswaptest.NewAddress()
	buyer := nftswaptest.NewAddress()
	asset := m.issue(seller, "unique", nil)
	m.fund(buyer, 10)

	create := &CreateMsg{Asset: asset, Price: 10}
	key := nftswap.Address(m.mustDeliver(seller, create).Data)

	requireErr(t, errors.ErrDuplicate, m.check(seller, create))
	_, err := m.deliver(seller, &CreateMsg{Asset: asset, Price: 99})
	requireErr(t, errors.ErrDuplicate, err)
	assert.Equal(t, uint64(10), m.escrow(key).Price)

	// another seller derives another record
	otherKey := nftswap.Address(m.mustDeliver(other, create).Data)
	assert.NotEqual(t, key, otherKey)

	// once closed, the pair is free again
	m.mustDeliver(seller, &DepositMsg{EscrowID: key, Asset: asset, Seller: seller})
	m.mustDeliver(buyer, &BuyMsg{EscrowID: key, Asset: asset, Seller: seller, Buyer: buyer})
	m.mustDeliver(seller, &CloseMsg{EscrowID: key, Seller: seller})

	_, err = m.deliver(seller, &DepositMsg{EscrowID: key, Asset: asset, Seller: seller})
	requireErr(t, errors.ErrNotFound, err)

	again := nftswap.Address(m.mustDeliver(seller, create).Data)
	assert.Equal(t, key, again)
}

func TestStatusPreconditions(t *testing.T) {
	seller := nftswaptest.NewAddress()
	buyer := nftswaptest.NewAddress()

	type step func(m *market, key, asset nftswap.Address) (nftswap.Address, nftswap.Msg)
	deposit := func(m *market, key, asset nftswap.Address) (nftswap.Address, nftswap.Msg) {
		return seller, &DepositMsg{EscrowID: key, Asset: asset, Seller: seller}
	}
	buy := func(m *market, key, asset nftswap.Address) (nftswap.Address, nftswap.Msg) {
		return buyer, &BuyMsg{EscrowID: key, Asset: asset, Seller: seller, Buyer: buyer}
	}
	cancel := func(m *market, key, asset nftswap.Address) (nftswap.Address, nftswap.Msg) {
		return seller, &CancelMsg{EscrowID: key, Asset: asset, Seller: seller}
	}
	closeStep := func(m *market, key, asset nftswap.Address) (nftswap.Address, nftswap.Msg) {
		return seller, &CloseMsg{EscrowID: key, Seller: seller}
	}

	cases := map[string]struct {
		before  []step
		op      step
		wantErr *errors.Error
	}{
		"deposit twice":            {before: []step{deposit}, op: deposit, wantErr: ErrEscrowNotPending},
		"deposit after sale":       {before: []step{deposit, buy}, op: deposit, wantErr: ErrEscrowNotPending},
		"deposit after cancel":     {before: []step{deposit, cancel}, op: deposit, wantErr: ErrEscrowNotPending},
		"buy before deposit":       {op: buy, wantErr: ErrEscrowNotFunded},
		"buy twice":                {before: []step{deposit, buy}, op: buy, wantErr: ErrEscrowNotFunded},
		"cancel before deposit":    {op: cancel, wantErr: ErrEscrowNotFunded},
		"cancel after sale":        {before: []step{deposit, buy}, op: cancel, wantErr: ErrEscrowNotFunded},
		"cancel twice":             {before: []step{deposit, cancel}, op: cancel, wantErr: ErrEscrowNotFunded},
		"close while deposited":    {before: []step{deposit}, op: closeStep, wantErr: ErrEscrowStillActive},
		"close after closing":      {before: []step{deposit, cancel, closeStep}, op: closeStep, wantErr: errors.ErrNotFound},
		"buy after closing a sale": {before: []step{deposit, buy, closeStep}, op: buy, wantErr: errors.ErrNotFound},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			m := newMarket(t)
			asset := m.issue(seller, "asset", nil)
			m.fund(buyer, 1000)
			key := nftswap.Address(m.mustDeliver(seller, &CreateMsg{Asset: asset, Price: 100}).Data)

			for _, s := range tc.before {
				signer, msg := s(m, key, asset)
				m.mustDeliver(signer, msg)
			}

			signer, msg := tc.op(m, key, asset)
			requireErr(t, tc.wantErr, m.check(signer, msg))
			_, err := m.deliver(signer, msg)
			requireErr(t, tc.wantErr, err)
		})
	}
}

func TestIdentityChecks(t *testing.T) {
	seller := nftswaptest.NewAddress()
	buyer := nftswaptest.NewAddress()
	stranger := nftswaptest.NewAddress()

	cases := map[string]struct {
		deposited bool
		signer    func(asset, otherAsset nftswap.Address) nftswap.Address
		msg       func(key, asset, otherAsset nftswap.Address) nftswap.Msg
		wantErr   *errors.Error
	}{
		"deposit by another seller": {
			msg: func(key, asset, _ nftswap.Address) nftswap.Msg {
				return &DepositMsg{EscrowID: key, Asset: asset, Seller: stranger}
			},
			wantErr: ErrInvalidSeller,
		},
		"deposit of another asset": {
			msg: func(key, _, other nftswap.Address) nftswap.Msg {
				return &DepositMsg{EscrowID: key, Asset: other, Seller: seller}
			},
			wantErr: ErrAssetMismatch,
		},
		"deposit not signed by the seller": {
			signer: func(_, _ nftswap.Address) nftswap.Address { return stranger },
			msg: func(key, asset, _ nftswap.Address) nftswap.Msg {
				return &DepositMsg{EscrowID: key, Asset: asset, Seller: seller}
			},
			wantErr: errors.ErrUnauthorized,
		},
		"buy naming another seller": {
			deposited: true,
			signer:    func(_, _ nftswap.Address) nftswap.Address { return buyer },
			msg: func(key, asset, _ nftswap.Address) nftswap.Msg {
				return &BuyMsg{EscrowID: key, Asset: asset, Seller: stranger, Buyer: buyer}
			},
			wantErr: ErrInvalidSeller,
		},
		"buy of another asset": {
			deposited: true,
			signer:    func(_, _ nftswap.Address) nftswap.Address { return buyer },
			msg: func(key, _, other nftswap.Address) nftswap.Msg {
				return &BuyMsg{EscrowID: key, Asset: other, Seller: seller, Buyer: buyer}
			},
			wantErr: ErrAssetMismatch,
		},
		"buy not signed by the buyer": {
			deposited: true,
			signer:    func(_, _ nftswap.Address) nftswap.Address { return stranger },
			msg: func(key, asset, _ nftswap.Address) nftswap.Msg {
				return &BuyMsg{EscrowID: key, Asset: asset, Seller: seller, Buyer: buyer}
			},
			wantErr: errors.ErrUnauthorized,
		},
		"cancel by the buyer": {
			deposited: true,
			signer:    func(_, _ nftswap.Address) nftswap.Address { return buyer },
			msg: func(key, asset, _ nftswap.Address) nftswap.Msg {
				return &CancelMsg{EscrowID: key, Asset: asset, Seller: seller}
			},
			wantErr: errors.ErrUnauthorized,
		},
		"cancel naming another seller": {
			deposited: true,
			msg: func(key, asset, _ nftswap.Address) nftswap.Msg {
				return &CancelMsg{EscrowID: key, Asset: asset, Seller: stranger}
			},
			wantErr: ErrInvalidSeller,
		},
		"close naming another seller": {
			msg: func(key, _, _ nftswap.Address) nftswap.Msg {
				return &CloseMsg{EscrowID: key, Seller: stranger}
			},
			wantErr: ErrInvalidSeller,
		},
		"unknown escrow": {
			msg: func(_, asset, other nftswap.Address) nftswap.Msg {
				return &DepositMsg{EscrowID: other, Asset: asset, Seller: seller}
			},
			wantErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			m := newMarket(t)
			asset := m.issue(seller, "asset", nil)
			other := m.issue(seller, "other", nil)
			m.fund(buyer, 1000)

			var key nftswap.Address
			if tc.deposited {
				key = m.listed(seller, asset, 100, nil)
			} else {
				key = nftswap.Address(m.mustDeliver(seller, &CreateMsg{Asset: asset, Price: 100}).Data)
			}
			signer := seller
			if tc.signer != nil {
				signer = tc.signer(asset, other)
			}

			before := *m.escrow(key)
			ownerBefore := m.owner(asset)

			msg := tc.msg(key, asset, other)
			requireErr(t, tc.wantErr, m.check(signer, msg))
			_, err := m.deliver(signer, msg)
			requireErr(t, tc.wantErr, err)

			assert.Equal(t, before, *m.escrow(key))
			assert.Equal(t, ownerBefore, m.owner(asset))
			assert.Equal(t, uint64(0), m.balance(seller))
		})
	}
}

func TestOpenOfferBuyerIsFirstPurchaser(t *testing.T) {
	m := newMarket(t)
	seller := nftswaptest.NewAddress()
	first := nftswaptest.NewAddress()
	poor := nftswaptest.NewAddress()
	asset := m.issue(seller, "first", nil)
	m.fund(first, 100)
	m.fund(poor, 10)

	key := m.listed(seller, asset, 100, nil)

	// a purchase that cannot pay does not reserve the offer
	_, err := m.deliver(poor, &BuyMsg{EscrowID: key, Asset: asset, Seller: seller, Buyer: poor})
	requireErr(t, errors.ErrAmount, err)
	assert.Nil(t, m.escrow(key).Buyer)

	m.mustDeliver(first, &BuyMsg{EscrowID: key, Asset: asset, Seller: seller, Buyer: first})
	assert.Equal(t, first, m.escrow(key).Buyer)
	assert.Equal(t, first, m.owner(asset))
}

func TestEscrowCustodyIsOnlyReleasedByHandlers(t *testing.T) {
	m := newMarket(t)
	seller := nftswaptest.NewAddress()
	thief := nftswaptest.NewAddress()
	asset := m.issue(seller, "locked", nil)
	key := m.listed(seller, asset, 100, nil)

	// Neither the seller nor anybody else can move the asset directly.
	for _, signer := range []nftswap.Address{seller, thief} {
		_, err := m.deliver(signer, &nft.TransferMsg{ID: asset, Owner: key, NewOwner: thief})
		requireErr(t, errors.ErrUnauthorized, err)
	}
	_, err := m.deliver(seller, &nft.TransferMsg{ID: asset, Owner: seller, NewOwner: thief})
	requireErr(t, nft.ErrNotOwner, err)
	assert.Equal(t, key, m.owner(asset))
}

func TestCollectionAsset(t *testing.T) {
	m := newMarket(t)
	seller := nftswaptest.NewAddress()
	buyer := nftswaptest.NewAddress()
	collection := nftswaptest.SequenceAddress(42)
	asset := m.issue(seller, "member", collection)
	m.fund(buyer, 100)

	key := nftswap.Address(m.mustDeliver(seller, &CreateMsg{Asset: asset, Price: 100}).Data)

	// a single auxiliary account carries no collection reference
	deposit := &DepositMsg{EscrowID: key, Asset: asset, Seller: seller, Accounts: [][]byte{asset}}
	_, err := m.deliver(seller, deposit)
	requireErr(t, ErrMissingTransferAccount, err)
	assert.Equal(t, StatusPending, m.escrow(key).Status)

	deposit.Accounts = [][]byte{asset, collection}
	m.mustDeliver(seller, deposit)

	buy := &BuyMsg{EscrowID: key, Asset: asset, Seller: seller, Buyer: buyer, Accounts: [][]byte{asset, seller}}
	_, err = m.deliver(buyer, buy)
	requireErr(t, nft.ErrCollectionMismatch, err)
	assert.Equal(t, uint64(100), m.balance(buyer))

	buy.Accounts = [][]byte{asset, collection}
	m.mustDeliver(buyer, buy)
	assert.Equal(t, buyer, m.owner(asset))
	assert.Equal(t, uint64(100), m.balance(seller))
}

func TestRecordDeposit(t *testing.T) {
	m := newMarket(t)
	seller := nftswaptest.NewAddress()
	buyer := nftswaptest.NewAddress()
	asset := m.issue(seller, "rent", nil)
	m.fund(seller, 25)
	m.fund(buyer, 100)

	opts := nftswap.Options{"escrow": []byte(`{"record_deposit": 20}`)}
	require.NoError(t, Initializer{}.FromGenesis(opts, m.db))

	key := m.listed(seller, asset, 100, nil)
	assert.Equal(t, uint64(5), m.balance(seller))
	assert.Equal(t, uint64(20), m.balance(key))

	m.mustDeliver(buyer, &BuyMsg{EscrowID: key, Asset: asset, Seller: seller, Buyer: buyer})
	m.mustDeliver(seller, &CloseMsg{EscrowID: key, Seller: seller})
	assert.Equal(t, uint64(125), m.balance(seller))
	assert.Equal(t, uint64(0), m.balance(key))

	// a seller that cannot pay the deposit cannot create a record
	poor := nftswaptest.NewAddress()
	other := m.issue(poor, "poor", nil)
	_, err := m.deliver(poor, &CreateMsg{Asset: other, Price: 1})
	requireErr(t, errors.ErrEmpty, err)
	poorKey, _, err := RecordAddress(other, poor)
	require.NoError(t, err)
	has, err := NewBucket().Has(m.db, poorKey)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestTamperedRecordHasNoAuthority(t *testing.T) {
	m := newMarket(t)
	seller := nftswaptest.NewAddress()
	asset := m.issue(seller, "tampered", nil)
	key := m.listed(seller, asset, 100, nil)

	e := m.escrow(key)
	e.Nonce++
	require.NoError(t, NewBucket().Put(m.db, key, e))

	_, err := m.deliver(seller, &CancelMsg{EscrowID: key, Asset: asset, Seller: seller})
	requireErr(t, ErrEscrowBumpMissing, err)
	assert.Equal(t, key, m.owner(asset))
}

func TestCreateRequiresSigner(t *testing.T) {
	m := newMarket(t)
	asset := nftswaptest.SequenceAddress(1)
	ctx := context.Background()
	_, err := m.handler(&CreateMsg{}).Deliver(ctx, m.db, &nftswaptest.Tx{Msg: &CreateMsg{Asset: asset, Price: 1}})
	requireErr(t, errors.ErrUnauthorized, err)

	_, err = m.deliver(nftswaptest.NewAddress(), &CreateMsg{Asset: asset})
	requireErr(t, errors.ErrAmount, err)
}

func TestQueries(t *testing.T) {
	m := newMarket(t)
	seller := nftswaptest.NewAddress()
	a1 := m.issue(seller, "one", nil)
	a2 := m.issue(seller, "two", nil)

	listed := m.listed(seller, a1, 10, nil)
	pending := nftswap.Address(m.mustDeliver(seller, &CreateMsg{Asset: a2, Price: 20}).Data)

	qr := nftswap.NewQueryRouter()
	RegisterQuery(qr)

	models, err := qr.Handler("/escrows").Query(m.db, nftswap.KeyQueryMod, pending)
	require.NoError(t, err)
	require.Len(t, models, 1)
	var e Escrow
	require.NoError(t, e.Unmarshal(models[0].Value))
	assert.Equal(t, uint64(20), e.Price)

	models, err = qr.Handler("/escrows/status").Query(m.db, nftswap.KeyQueryMod, []byte("Deposited"))
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, []byte(listed), models[0].Key)

	models, err = qr.Handler("/escrows/status").Query(m.db, nftswap.KeyQueryMod, []byte("completed"))
	require.NoError(t, err)
	assert.Empty(t, models)

	_, err = qr.Handler("/escrows/status").Query(m.db, nftswap.KeyQueryMod, []byte("sold"))
	requireErr(t, errors.ErrInput, err)

	models, err = qr.Handler("/escrows/seller").Query(m.db, nftswap.KeyQueryMod, seller)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{string(listed), string(pending)}, queryKeys(models))

	// the status listing follows every transition
	buyer := nftswaptest.NewAddress()
	m.fund(buyer, 10)
	m.mustDeliver(buyer, &BuyMsg{EscrowID: listed, Asset: a1, Seller: seller, Buyer: buyer})

	models, err = qr.Handler("/escrows/status").Query(m.db, nftswap.KeyQueryMod, []byte("Deposited"))
	require.NoError(t, err)
	assert.Empty(t, models)
	models, err = qr.Handler("/escrows/status").Query(m.db, nftswap.KeyQueryMod, []byte("Completed"))
	require.NoError(t, err)
	assert.Equal(t, []string{string(listed)}, queryKeys(models))

	// a closed record leaves no listing behind
	m.mustDeliver(seller, &CloseMsg{EscrowID: listed, Seller: seller})
	models, err = qr.Handler("/escrows/status").Query(m.db, nftswap.KeyQueryMod, []byte("Completed"))
	require.NoError(t, err)
	assert.Empty(t, models)
	models, err = qr.Handler("/escrows/seller").Query(m.db, nftswap.KeyQueryMod, seller)
	require.NoError(t, err)
	assert.Equal(t, []string{string(pending)}, queryKeys(models))

	models, err = qr.Handler("/escrows/seller").Query(m.db, nftswap.KeyQueryMod, buyer)
	require.NoError(t, err)
	assert.Empty(t, models)
}

func queryKeys(models []nftswap.Model) []string {
	keys := make([]string, 0, len(models))
	for _, m := range models {
		keys = append(keys, string(m.Key))
	}
	return keys
}
