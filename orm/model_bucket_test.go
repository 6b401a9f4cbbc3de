package orm

import (
	"encoding/binary"
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is a minimal model used to exercise the bucket.
type counter struct {
	Count uint64
}

func (c *counter) Marshal() ([]byte, error) {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, c.Count)
	return raw, nil
}

func (c *counter) Unmarshal(raw []byte) error {
	if len(raw) != 8 {
		return errors.Wrap(errors.ErrInput, "counter")
	}
	c.Count = binary.BigEndian.Uint64(raw)
	return nil
}

func (c *counter) Validate() error {
	if c.Count == 0 {
		return errors.Wrap(errors.ErrEmpty, "count")
	}
	return nil
}

// other is a model of a different type, never accepted by the bucket.
type other struct{ counter }

func TestModelBucketPutOne(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	require.NoError(t, b.Put(db, []byte("a"), &counter{Count: 7}))

	var got counter
	require.NoError(t, b.One(db, []byte("a"), &got))
	assert.Equal(t, uint64(7), got.Count)

	err := b.One(db, []byte("missing"), &got)
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)

	err = b.Put(db, []byte("b"), &counter{})
	assert.True(t, errors.ErrEmpty.Is(err), "%+v", err)

	err = b.Put(db, []byte("c"), &other{counter{Count: 1}})
	assert.True(t, errors.ErrType.Is(err), "%+v", err)

	var o other
	err = b.One(db, []byte("a"), &o)
	assert.True(t, errors.ErrType.Is(err), "%+v", err)
}

func TestModelBucketCreate(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	require.NoError(t, b.Create(db, []byte("a"), &counter{Count: 1}))
	err := b.Create(db, []byte("a"), &counter{Count: 2})
	assert.True(t, errors.ErrDuplicate.Is(err), "%+v", err)

	var got counter
	require.NoError(t, b.One(db, []byte("a"), &got))
	assert.Equal(t, uint64(1), got.Count, "first create wins")

	require.NoError(t, b.Delete(db, []byte("a")))
	require.NoError(t, b.Create(db, []byte("a"), &counter{Count: 3}))

	err = b.Delete(db, []byte("nope"))
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)
}

func TestModelBucketVisitAndQuery(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	// a neighbour bucket must never show up
	require.NoError(t, NewBucket("cntsx").Set(db, []byte("z"), []byte("noise")))

	for i, k := range []string{"b", "a", "c"} {
		require.NoError(t, b.Put(db, []byte(k), &counter{Count: uint64(i + 1)}))
	}

	var keys []string
	var total uint64
	err := b.Visit(db, func(key []byte, m Model) error {
		keys = append(keys, string(key))
		total += m.(*counter).Count
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, uint64(6), total)

	qr := nftswap.NewQueryRouter()
	b.Register("counters", qr)
	h := qr.Handler("/counters")
	require.NotNil(t, h)

	res, err := h.Query(db, nftswap.KeyQueryMod, []byte("b"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, []byte("b"), res[0].Key)

	res, err = h.Query(db, nftswap.PrefixQueryMod, nil)
	require.NoError(t, err)
	assert.Len(t, res, 3)
}

func TestPrefixEnd(t *testing.T) {
	assert.Equal(t, []byte("ab"), prefixEnd([]byte("aa")))
	assert.Equal(t, []byte{0x01}, prefixEnd([]byte{0x00, 0xFF}))
	assert.Nil(t, prefixEnd([]byte{0xFF, 0xFF}))
}
