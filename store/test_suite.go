package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestSuite provides many methods that can be called in package-specific test code.
We just customize the store being tested (pass in constructor), the rest of the
logic is generic to the KVStore interface.

This removes duplication between btree_test.go and iavl/adapter_test.go, but
can be used for any implementation of CacheableKVStore.
*/
type TestSuite struct {
	makeBase TestStoreConstructor
}

// TestStoreConstructor builds a fresh store for every test.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{
		makeBase: constructor,
	}
}

// GetSet does basic sanity checks on our cache
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	k, v := []byte("french"), []byte("fry")
	s.AssertGetHas(t, base, k, nil, false)
	require.NoError(t, base.Set(k, v))
	s.AssertGetHas(t, base, k, v, true)

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	s.AssertGetHas(t, cache, k, v, true)

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	s.AssertGetHas(t, cache, k2, nil, false)
	require.NoError(t, cache.Set(k2, v2))
	s.AssertGetHas(t, cache, k2, v2, true)
	s.AssertGetHas(t, base, k2, nil, false)

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	s.AssertGetHas(t, base, k, v, true)
	s.AssertGetHas(t, base, k2, v2, true)

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	require.NoError(t, c2.Set(k3, v3))
	require.NoError(t, c2.Delete(k))
	s.AssertGetHas(t, c2, k, nil, false)
	c2.Discard()
	s.AssertGetHas(t, base, k, v, true)
	s.AssertGetHas(t, base, k3, nil, false)

	// and commit another
	c3 := base.CacheWrap()
	require.NoError(t, c3.Delete(k2))
	require.NoError(t, c3.Write())
	s.AssertGetHas(t, base, k, v, true)
	s.AssertGetHas(t, base, k2, nil, false)
}

// Nested makes sure a cache of a cache only reaches the base once
// both levels are written.
func (s *TestSuite) Nested(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	k, v := []byte("escrow"), []byte("deposited")
	outer := base.CacheWrap()
	inner := outer.CacheWrap()
	require.NoError(t, inner.Set(k, v))
	s.AssertGetHas(t, outer, k, nil, false)

	require.NoError(t, inner.Write())
	s.AssertGetHas(t, outer, k, v, true)
	s.AssertGetHas(t, base, k, nil, false)

	require.NoError(t, outer.Write())
	s.AssertGetHas(t, base, k, v, true)
}

// Iterate checks that iterators combine the cache with the parent,
// honour ranges and hide deleted keys.
func (s *TestSuite) Iterate(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	for _, k := range []string{"a", "c", "e"} {
		require.NoError(t, base.Set([]byte(k), []byte("base-"+k)))
	}
	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("cache-b")))
	require.NoError(t, cache.Set([]byte("c"), []byte("cache-c")))
	require.NoError(t, cache.Delete([]byte("e")))

	cases := map[string]struct {
		start, end []byte
		reverse    bool
		wantKeys   []string
		wantValues []string
	}{
		"full range": {
			wantKeys:   []string{"a", "b", "c"},
			wantValues: []string{"base-a", "cache-b", "cache-c"},
		},
		"bounded": {
			start:      []byte("b"),
			end:        []byte("c"),
			wantKeys:   []string{"b"},
			wantValues: []string{"cache-b"},
		},
		"open end": {
			start:      []byte("b"),
			wantKeys:   []string{"b", "c"},
			wantValues: []string{"cache-b", "cache-c"},
		},
		"reverse": {
			reverse:    true,
			wantKeys:   []string{"c", "b", "a"},
			wantValues: []string{"cache-c", "cache-b", "base-a"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var it Iterator
			var err error
			if tc.reverse {
				it, err = cache.ReverseIterator(tc.start, tc.end)
			} else {
				it, err = cache.Iterator(tc.start, tc.end)
			}
			require.NoError(t, err)
			defer it.Close()

			var keys, values []string
			for ; it.Valid(); require.NoError(t, it.Next()) {
				keys = append(keys, string(it.Key()))
				values = append(values, string(it.Value()))
			}
			assert.Equal(t, tc.wantKeys, keys)
			assert.Equal(t, tc.wantValues, values)
		})
	}
}

// AssertGetHas makes sure that this key returns
// the proper value for Get and Has
func (s *TestSuite) AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	require.NoError(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	require.NoError(t, err)
	assert.Equal(t, has, exists)
}
