package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/bank/errors"
)

func TestMemStoreSetGetDelete(t *testing.T) {
	kv := MemStore()

	k, v := []byte("french"), []byte("fry")

	val, err := kv.Get(k)
	require.NoError(t, err)
	assert.Nil(t, val)

	has, err := kv.Has(k)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, kv.Set(k, v))

	val, err = kv.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, val)

	has, err = kv.Has(k)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, kv.Delete(k))

	val, err = kv.Get(k)
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCacheWrapWriteCommits(t *testing.T) {
	kv := MemStore()
	require.NoError(t, kv.Set([]byte("a"), []byte("1")))

	cache := kv.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("a")))

	// the cache observes its own writes
	val, err := cache.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), val)
	val, err = cache.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, val)

	// the parent does not until Write
	val, err = kv.Get([]byte("b"))
	require.NoError(t, err)
	assert.Nil(t, val)
	val, err = kv.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), val)

	require.NoError(t, cache.Write())

	val, err = kv.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), val)
	val, err = kv.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCacheWrapDiscardRollsBack(t *testing.T) {
	kv := MemStore()
	require.NoError(t, kv.Set([]byte("stay"), []byte("here")))

	cache := kv.CacheWrap()
	require.NoError(t, cache.Set([]byte("gone"), []byte("soon")))
	require.NoError(t, cache.Delete([]byte("stay")))
	cache.Discard()

	val, err := kv.Get([]byte("stay"))
	require.NoError(t, err)
	assert.Equal(t, []byte("here"), val)
	val, err = kv.Get([]byte("gone"))
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestIteratorOverlaysCache(t *testing.T) {
	kv := MemStore()
	require.NoError(t, kv.Set([]byte("a"), []byte("1")))
	require.NoError(t, kv.Set([]byte("c"), []byte("3")))

	cache := kv.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Set([]byte("c"), []byte("33")))
	require.NoError(t, cache.Delete([]byte("a")))

	iter, err := cache.Iterator(nil, nil)
	require.NoError(t, err)
	defer iter.Release()

	k, v, err := iter.Next()
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), k)
	assert.Equal(t, []byte("2"), v)

	k, v, err = iter.Next()
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), k)
	assert.Equal(t, []byte("33"), v)

	_, _, err = iter.Next()
	assert.True(t, errors.ErrIteratorDone.Is(err))
}

func TestIteratorRange(t *testing.T) {
	kv := MemStore()
	for _, k := range []string{"a", "b", "c", "d"} {
		require.NoError(t, kv.Set([]byte(k), []byte(k)))
	}

	iter, err := kv.Iterator([]byte("b"), []byte("d"))
	require.NoError(t, err)
	defer iter.Release()

	var keys []string
	for {
		k, _, err := iter.Next()
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		require.NoError(t, err)
		keys = append(keys, string(k))
	}
	assert.Equal(t, []string{"b", "c"}, keys)
}
