package orm

import (
	"bytes"
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parityIndexer(m Model) ([][]byte, error) {
	c, ok := m.(*counter)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", m)
	}
	if c.Count%2 == 0 {
		return [][]byte{[]byte("even")}, nil
	}
	return [][]byte{[]byte("odd")}, nil
}

// bigIndexer only indexes counters above ten.
func bigIndexer(m Model) ([][]byte, error) {
	if m.(*counter).Count > 10 {
		return [][]byte{[]byte("big")}, nil
	}
	return [][]byte{nil}, nil
}

func newIndexedBucket() ModelBucket {
	return NewModelBucket("cnts", &counter{},
		WithIndex("parity", parityIndexer),
		WithIndex("big", bigIndexer),
	)
}

func indexedKeys(t *testing.T, b ModelBucket, db nftswap.ReadOnlyKVStore, index, value string) []string {
	t.Helper()
	res, err := b.ByIndex(db, index, []byte(value))
	require.NoError(t, err)
	keys := make([]string, 0, len(res))
	for _, m := range res {
		keys = append(keys, string(m.Key))
	}
	return keys
}

func TestIndexFollowsModelChanges(t *testing.T) {
	db := store.MemStore()
	b := newIndexedBucket()

	require.NoError(t, b.Put(db, []byte("c"), &counter{Count: 2}))
	require.NoError(t, b.Put(db, []byte("a"), &counter{Count: 4}))
	require.NoError(t, b.Create(db, []byte("b"), &counter{Count: 11}))

	assert.Equal(t, []string{"a", "c"}, indexedKeys(t, b, db, "parity", "even"))
	assert.Equal(t, []string{"b"}, indexedKeys(t, b, db, "parity", "odd"))
	assert.Equal(t, []string{"b"}, indexedKeys(t, b, db, "big", "big"))

	// an update moves the reference
	require.NoError(t, b.Put(db, []byte("a"), &counter{Count: 13}))
	assert.Equal(t, []string{"c"}, indexedKeys(t, b, db, "parity", "even"))
	assert.Equal(t, []string{"a", "b"}, indexedKeys(t, b, db, "parity", "odd"))
	assert.Equal(t, []string{"a", "b"}, indexedKeys(t, b, db, "big", "big"))

	// an update keeping the value keeps a single reference
	require.NoError(t, b.Put(db, []byte("a"), &counter{Count: 15}))
	assert.Equal(t, []string{"a", "b"}, indexedKeys(t, b, db, "parity", "odd"))

	require.NoError(t, b.Delete(db, []byte("b")))
	assert.Equal(t, []string{"a"}, indexedKeys(t, b, db, "parity", "odd"))
	assert.Equal(t, []string{"a"}, indexedKeys(t, b, db, "big", "big"))

	require.NoError(t, b.Delete(db, []byte("a")))
	require.NoError(t, b.Delete(db, []byte("c")))
	assert.Empty(t, indexedKeys(t, b, db, "parity", "odd"))
	assert.Empty(t, indexedKeys(t, b, db, "parity", "even"))

	// no entity or index key is left behind
	it, err := db.Iterator(nil, nil)
	require.NoError(t, err)
	defer it.Close()
	assert.False(t, it.Valid(), "index references must be removed")
}

func TestIndexValuesDoNotOverlap(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{}, WithIndex("raw", func(m Model) ([][]byte, error) {
		raw, err := m.Marshal()
		return [][]byte{bytes.TrimLeft(raw, "\x00")}, err
	}))
	require.NoError(t, b.Put(db, []byte("one"), &counter{Count: 0x01}))
	require.NoError(t, b.Put(db, []byte("two"), &counter{Count: 0x0102}))

	res, err := b.ByIndex(db, "raw", []byte{0x01})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, []byte("one"), res[0].Key)
}

func TestIndexQuery(t *testing.T) {
	db := store.MemStore()
	b := newIndexedBucket()
	require.NoError(t, b.Put(db, []byte("a"), &counter{Count: 3}))
	require.NoError(t, b.Put(db, []byte("b"), &counter{Count: 5}))

	qr := nftswap.NewQueryRouter()
	b.RegisterIndex("parity", "counters/parity", qr)
	h := qr.Handler("/counters/parity")
	require.NotNil(t, h)

	res, err := h.Query(db, nftswap.KeyQueryMod, []byte("odd"))
	require.NoError(t, err)
	require.Len(t, res, 2)
	var c counter
	require.NoError(t, c.Unmarshal(res[1].Value))
	assert.Equal(t, uint64(5), c.Count)

	res, err = h.Query(db, nftswap.KeyQueryMod, []byte("even"))
	require.NoError(t, err)
	assert.Empty(t, res)

	_, err = h.Query(db, nftswap.PrefixQueryMod, []byte("o"))
	assert.True(t, errors.ErrInput.Is(err), "%+v", err)

	_, err = b.ByIndex(db, "color", []byte("red"))
	assert.True(t, errors.ErrInput.Is(err), "%+v", err)

	assert.Panics(t, func() { b.RegisterIndex("color", "counters/color", qr) })
}

func TestDuplicatedIndexPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewModelBucket("cnts", &counter{},
			WithIndex("parity", parityIndexer),
			WithIndex("parity", bigIndexer),
		)
	})
}

func TestNativeIndexKey(t *testing.T) {
	key, err := packNativeIdxKey([][]byte{[]byte("aaa"), nil, []byte("c")})
	require.NoError(t, err)
	assert.Equal(t, []byte("_x.\x03aaa\x00\x01c"), key)

	chunks, err := unpackNativeIdxKey(key)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("aaa"), {}, []byte("c")}, chunks)

	_, err = packNativeIdxKey([][]byte{make([]byte, 255)})
	assert.True(t, errors.ErrInput.Is(err), "%+v", err)

	_, err = unpackNativeIdxKey([]byte("cnts:a"))
	assert.True(t, errors.ErrInput.Is(err), "%+v", err)
	_, err = unpackNativeIdxKey([]byte("_x.\x05ab"))
	assert.True(t, errors.ErrInput.Is(err), "%+v", err)
}
