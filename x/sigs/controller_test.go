package sigs

import (
	"testing"

	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/nftswaptest"
	"github.com/iov-one/nftswap/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignBytes(t *testing.T) {
	bz := []byte("foobar")
	tx := newStdTx(bz)
	bz2 := []byte("blast")

	// make sure sign bytes match tx
	chainID := "test-sign-bytes"
	c1, err := BuildSignBytesTx(tx, chainID, 17)
	require.NoError(t, err)
	c1a, err := BuildSignBytes(bz, chainID, 17)
	require.NoError(t, err)
	assert.Equal(t, c1, c1a)
	assert.NotEqual(t, bz, c1)

	// make sure sign bytes change on tx, chain_id and seq
	ct, err := BuildSignBytes(bz2, chainID, 17)
	require.NoError(t, err)
	assert.NotEqual(t, c1, ct)
	c2, err := BuildSignBytes(bz, chainID+"2", 17)
	require.NoError(t, err)
	assert.NotEqual(t, c1, c2)
	c3, err := BuildSignBytes(bz, chainID, 18)
	require.NoError(t, err)
	assert.NotEqual(t, c1, c3)

	_, err = BuildSignBytes(bz, chainID, -1)
	assert.True(t, ErrInvalidSequence.Is(err))
	_, err = BuildSignBytes(bz, "bad", 1)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestVerifySignature(t *testing.T) {
	kv := store.MemStore()
	key := nftswaptest.NewKey()

	chainID := "emo-music-2345"
	bz := []byte("my special valentine")
	tx := newStdTx(bz)

	sig0, err := SignTx(key, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(key, tx, chainID, 1)
	require.NoError(t, err)
	sig2, err := SignTx(key, tx, chainID, 2)
	require.NoError(t, err)

	// ed25519 signing is deterministic
	sig2a, err := SignTx(key, tx, chainID, 2)
	require.NoError(t, err)
	assert.Equal(t, sig2, sig2a)

	// the first one must have sequence zero
	_, err = VerifySignature(kv, sig1, bz, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))

	// empty sig
	_, err = VerifySignature(kv, new(StdSignature), bz, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// wrong chain
	_, err = VerifySignature(kv, sig0, bz, "other-chain")
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// wrong bytes
	_, err = VerifySignature(kv, sig0, []byte("other"), chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	signer, err := VerifySignature(kv, sig0, bz, chainID)
	require.NoError(t, err)
	assert.Equal(t, key.Address(), signer)

	// replay is rejected
	_, err = VerifySignature(kv, sig0, bz, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))

	seq, err := NextSequence(kv, key.Address())
	require.NoError(t, err)
	assert.EqualValues(t, 1, seq)

	_, err = VerifySignature(kv, sig1, bz, chainID)
	require.NoError(t, err)
	_, err = VerifySignature(kv, sig2, bz, chainID)
	require.NoError(t, err)

	seq, err = NextSequence(kv, key.Address())
	require.NoError(t, err)
	assert.EqualValues(t, 3, seq)
}

func TestVerifyTxSignatures(t *testing.T) {
	kv := store.MemStore()
	alice := nftswaptest.NewKey()
	bob := nftswaptest.NewKey()
	chainID := "hot_summer_days"

	tx := newStdTx([]byte("payload"))
	sigA, err := SignTx(alice, tx, chainID, 0)
	require.NoError(t, err)
	sigB, err := SignTx(bob, tx, chainID, 0)
	require.NoError(t, err)

	signers, err := VerifyTxSignatures(kv, tx, chainID)
	require.NoError(t, err)
	assert.Empty(t, signers)

	tx.sigs = []*StdSignature{sigA, sigB}
	signers, err = VerifyTxSignatures(kv, tx, chainID)
	require.NoError(t, err)
	require.Len(t, signers, 2)
	assert.Equal(t, alice.Address(), signers[0])
	assert.Equal(t, bob.Address(), signers[1])
}

func TestCheckAndIncrementSequence(t *testing.T) {
	u := &UserData{Sequence: (1 << 53) - 1, Pubkey: nftswaptest.NewAddress()}
	err := u.CheckAndIncrementSequence((1 << 53) - 1)
	assert.True(t, errors.ErrOverflow.Is(err))

	u = &UserData{}
	assert.NoError(t, u.Validate())
	u.Sequence = 3
	assert.True(t, ErrInvalidSequence.Is(u.Validate()))
}
