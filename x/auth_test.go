package x_test

import (
	"context"
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/nftswaptest"
	"github.com/iov-one/nftswap/x"
	"github.com/stretchr/testify/assert"
)

func TestChainAuth(t *testing.T) {
	alice := nftswaptest.NewAddress()
	bob := nftswaptest.NewAddress()
	carol := nftswaptest.NewAddress()

	first := &nftswaptest.Auth{Signer: alice}
	second := &nftswaptest.Auth{Signers: []nftswap.Address{bob}}
	auth := x.ChainAuth(first, second)
	ctx := context.Background()

	assert.True(t, auth.HasAddress(ctx, alice))
	assert.True(t, auth.HasAddress(ctx, bob))
	assert.False(t, auth.HasAddress(ctx, carol))
	assert.Equal(t, []nftswap.Address{alice, bob}, auth.GetAddresses(ctx))
	assert.Equal(t, alice, x.MainSigner(ctx, auth))

	assert.True(t, x.HasAllAddresses(ctx, auth, []nftswap.Address{alice, bob}))
	assert.False(t, x.HasAllAddresses(ctx, auth, []nftswap.Address{alice, carol}))

	assert.Nil(t, x.MainSigner(ctx, x.ChainAuth()))
}
