package nft

import (
	"context"
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/nftswaptest"
	"github.com/iov-one/nftswap/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerTransfer(t *testing.T) {
	alice := nftswaptest.NewAddress()
	bob := nftswaptest.NewAddress()
	collection := nftswaptest.SequenceAddress(7)
	plain := AssetID(alice, "plain")
	grouped := AssetID(alice, "grouped")

	cases := map[string]struct {
		signer    nftswap.Address
		req       TransferRequest
		wantErr   *errors.Error
		wantOwner nftswap.Address
	}{
		"plain asset": {
			signer:    alice,
			req:       TransferRequest{Asset: plain, Authority: alice, NewOwner: bob},
			wantOwner: bob,
		},
		"asset in a collection": {
			signer:    alice,
			req:       TransferRequest{Asset: grouped, Authority: alice, NewOwner: bob, Collection: collection},
			wantOwner: bob,
		},
		"unknown asset": {
			signer:  alice,
			req:     TransferRequest{Asset: AssetID(bob, "nope"), Authority: alice, NewOwner: bob},
			wantErr: errors.ErrNotFound,
		},
		"authority is not the owner": {
			signer:    bob,
			req:       TransferRequest{Asset: plain, Authority: bob, NewOwner: bob},
			wantErr:   ErrNotOwner,
			wantOwner: alice,
		},
		"owner did not authorize": {
			signer:    bob,
			req:       TransferRequest{Asset: plain, Authority: alice, NewOwner: bob},
			wantErr:   errors.ErrUnauthorized,
			wantOwner: alice,
		},
		"collection reference missing": {
			signer:    alice,
			req:       TransferRequest{Asset: grouped, Authority: alice, NewOwner: bob},
			wantErr:   ErrMissingCollection,
			wantOwner: alice,
		},
		"wrong collection": {
			signer:    alice,
			req:       TransferRequest{Asset: grouped, Authority: alice, NewOwner: bob, Collection: bob},
			wantErr:   ErrCollectionMismatch,
			wantOwner: alice,
		},
		"collection given for plain asset": {
			signer:    alice,
			req:       TransferRequest{Asset: plain, Authority: alice, NewOwner: bob, Collection: collection},
			wantErr:   ErrCollectionMismatch,
			wantOwner: alice,
		},
		"invalid new owner": {
			signer:    alice,
			req:       TransferRequest{Asset: plain, Authority: alice, NewOwner: []byte("short")},
			wantErr:   errors.ErrInput,
			wantOwner: alice,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(&nftswaptest.Auth{Signer: tc.signer})
			require.NoError(t, ctrl.Issue(db, &Asset{ID: plain, Owner: alice, Name: "plain"}))
			require.NoError(t, ctrl.Issue(db, &Asset{ID: grouped, Owner: alice, Collection: collection}))

			err := ctrl.Transfer(context.Background(), db, tc.req)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, tc.wantErr.Is(err), "want %q, got %+v", tc.wantErr, err)
			}

			if tc.wantOwner != nil {
				a, err := ctrl.Get(db, tc.req.Asset)
				require.NoError(t, err)
				assert.Equal(t, tc.wantOwner, a.Owner)
			}
		})
	}
}

func TestIssueDuplicate(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(&nftswaptest.Auth{})
	alice := nftswaptest.NewAddress()
	a := &Asset{ID: AssetID(alice, "x"), Owner: alice}

	require.NoError(t, ctrl.Issue(db, a))
	err := ctrl.Issue(db, a)
	assert.True(t, errors.ErrDuplicate.Is(err))

	err = ctrl.Issue(db, &Asset{ID: AssetID(alice, "y")})
	assert.True(t, errors.ErrInput.Is(err))
}
