package orm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/bank/errors"
	"github.com/iov-one/bank/store"
)

// counter is a test model storing a single number.
type counter struct {
	Count int64
}

var _ Model = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(c.Count))
	return bz, nil
}

func (c *counter) Unmarshal(bz []byte) error {
	if len(bz) != 8 {
		return errors.Wrapf(errors.ErrInput, "expected 8 bytes, got %d", len(bz))
	}
	c.Count = int64(binary.BigEndian.Uint64(bz))
	return nil
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrModel, "count cannot be negative")
	}
	return nil
}

func (c *counter) Copy() Model {
	return &counter{Count: c.Count}
}

func counterBucket() Bucket {
	return NewBucket("cnts", NewSimpleObj(nil, new(counter)))
}

func TestBucketSaveGetRoundtrip(t *testing.T) {
	db := store.MemStore()
	b := counterBucket()

	key := []byte("cnt1")
	obj := NewSimpleObj(key, &counter{Count: 55})
	require.NoError(t, b.Save(db, obj))

	loaded, err := b.Get(db, key)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, key, loaded.Key())
	assert.Equal(t, int64(55), loaded.Value().(*counter).Count)
}

func TestBucketGetMissing(t *testing.T) {
	db := store.MemStore()
	b := counterBucket()

	loaded, err := b.Get(db, []byte("void"))
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestBucketSaveInvalidModel(t *testing.T) {
	db := store.MemStore()
	b := counterBucket()

	obj := NewSimpleObj([]byte("bad"), &counter{Count: -2})
	err := b.Save(db, obj)
	assert.True(t, errors.ErrModel.Is(err), "%+v", err)
}

func TestBucketSaveMissingKey(t *testing.T) {
	db := store.MemStore()
	b := counterBucket()

	err := b.Save(db, NewSimpleObj(nil, &counter{Count: 1}))
	assert.True(t, errors.ErrEmpty.Is(err), "%+v", err)
}

func TestBucketDelete(t *testing.T) {
	db := store.MemStore()
	b := counterBucket()

	key := []byte("gone")
	require.NoError(t, b.Save(db, NewSimpleObj(key, &counter{Count: 9})))
	require.NoError(t, b.Delete(db, key))

	loaded, err := b.Get(db, key)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestBucketPrefixesDoNotCollide(t *testing.T) {
	db := store.MemStore()
	a := NewBucket("aaa", NewSimpleObj(nil, new(counter)))
	b := NewBucket("aab", NewSimpleObj(nil, new(counter)))

	key := []byte("k")
	require.NoError(t, a.Save(db, NewSimpleObj(key, &counter{Count: 1})))
	require.NoError(t, b.Save(db, NewSimpleObj(key, &counter{Count: 2})))

	got, err := a.Get(db, key)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Value().(*counter).Count)

	got, err = b.Get(db, key)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Value().(*counter).Count)
}
