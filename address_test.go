package nftswap_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressUnmarshalJSON(t *testing.T) {
	addr := nftswap.NewAddress([]byte("some data"))

	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr nftswap.Address
	}{
		"base58 decoding": {
			json:     `"` + base58.Encode(addr) + `"`,
			wantAddr: addr,
		},
		"hex decoding": {
			json:     `"hex:` + hex.EncodeToString(addr) + `"`,
			wantAddr: addr,
		},
		"empty string": {
			json:     `""`,
			wantAddr: nil,
		},
		"too short": {
			json:    `"hex:6865782d61646472"`,
			wantErr: errors.ErrInput,
		},
		"invalid hex": {
			json:    `"hex:zzzz"`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a nftswap.Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "got %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantAddr, a)
		})
	}
}

func TestAddressMarshalJSON(t *testing.T) {
	addr := nftswap.NewAddress([]byte("payload"))
	raw, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, `"`+addr.String()+`"`, string(raw))

	var back nftswap.Address
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, addr, back)

	raw, err = json.Marshal(nftswap.Address(nil))
	require.NoError(t, err)
	assert.Equal(t, `""`, string(raw))
}

func TestAddressHelpers(t *testing.T) {
	a := nftswap.NewAddress([]byte("a"))
	assert.Len(t, a, nftswap.AddressLength)
	assert.NoError(t, a.Validate())
	assert.Nil(t, nftswap.NewAddress(nil))

	c := a.Clone()
	assert.True(t, a.Equals(c))
	c[0]++
	assert.False(t, a.Equals(c))
	assert.Nil(t, nftswap.Address(nil).Clone())

	assert.Equal(t, "(nil)", nftswap.Address(nil).String())
	assert.True(t, errors.ErrInput.Is(nftswap.Address([]byte{1, 2}).Validate()))

	parsed, err := nftswap.ParseAddress(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, parsed)
}
