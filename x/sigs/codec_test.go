package sigs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdSignatureCodec(t *testing.T) {
	sig := &StdSignature{Sequence: 7, Pubkey: []byte{1, 2, 3}, Signature: []byte("sig")}
	raw, err := sig.Marshal()
	require.NoError(t, err)

	var got StdSignature
	require.NoError(t, got.Unmarshal(raw))
	assert.Equal(t, *sig, got)
}
