package nftswap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"
)

func TestFindDerivedAddress(t *testing.T) {
	seeds := [][]byte{
		[]byte("escrow"),
		{},
		make([]byte, 64),
		[]byte("a much longer seed that spans more than a single block of input"),
	}
	for _, seed := range seeds {
		addr, nonce, ok := FindDerivedAddress("escrow", "pda", seed)
		require.True(t, ok)
		assert.False(t, OnCurve(addr))
		assert.Equal(t, DerivedCondition("escrow", "pda", seed, nonce).Address(), addr)

		// higher nonces all land on the curve
		for n := int(nonce) + 1; n <= 255; n++ {
			assert.True(t, OnCurve(DerivedCondition("escrow", "pda", seed, uint8(n)).Address()))
		}

		again, againNonce, _ := FindDerivedAddress("escrow", "pda", seed)
		assert.Equal(t, addr, again)
		assert.Equal(t, nonce, againNonce)
	}
}

func TestDerivedConditionDoesNotAlias(t *testing.T) {
	seed := make([]byte, 4, 16)
	a := DerivedCondition("escrow", "pda", seed, 1)
	b := DerivedCondition("escrow", "pda", seed, 2)
	assert.NotEqual(t, a, b)
	assert.Equal(t, byte(1), a[len(a)-1])
	assert.Len(t, seed, 4)
}

func TestOnCurve(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	assert.True(t, OnCurve(Address(pub)))

	assert.False(t, OnCurve(Address(pub[:31])))
	assert.False(t, OnCurve(nil))
}
