package cash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/bank"
	"github.com/iov-one/bank/banktest"
	"github.com/iov-one/bank/errors"
	"github.com/iov-one/bank/store"
)

func getWallet(t *testing.T, kv bank.KVStore, addr bank.Address) *Wallet {
	t.Helper()
	w, err := NewBucket().Get(kv, addr)
	require.NoError(t, err)
	return w
}

func TestIssueCoins(t *testing.T) {
	kv := store.MemStore()
	addr := banktest.NewAddress()
	addr2 := banktest.NewAddress()

	controller := NewController(NewBucket())

	assert.Nil(t, getWallet(t, kv, addr))
	assert.Nil(t, getWallet(t, kv, addr2))

	// issue positive
	require.NoError(t, controller.IssueCoins(kv, addr, 500))
	w := getWallet(t, kv, addr)
	require.NotNil(t, w)
	assert.Equal(t, int64(500), w.Balance())
	assert.Nil(t, getWallet(t, kv, addr2))

	// issue negative burns
	require.NoError(t, controller.IssueCoins(kv, addr, -400))
	w = getWallet(t, kv, addr)
	assert.Equal(t, int64(100), w.Balance())

	// cannot burn below zero
	err := controller.IssueCoins(kv, addr, -200)
	assert.True(t, errors.ErrInsufficientAmount.Is(err), "%+v", err)
	w = getWallet(t, kv, addr)
	assert.Equal(t, int64(100), w.Balance())
}

func TestMoveCoins(t *testing.T) {
	kv := store.MemStore()
	addr := banktest.NewAddress()
	addr2 := banktest.NewAddress()
	addr3 := banktest.NewAddress()

	controller := NewController(NewBucket())

	// can't send from an empty wallet
	err := controller.MoveCoins(kv, addr, addr2, 300)
	assert.True(t, errors.ErrInsufficientAmount.Is(err), "%+v", err)

	// so we issue money
	require.NoError(t, controller.IssueCoins(kv, addr, 50000))

	// proper move
	require.NoError(t, controller.MoveCoins(kv, addr, addr2, 300))
	assert.Equal(t, int64(49700), getWallet(t, kv, addr).Balance())
	assert.Equal(t, int64(300), getWallet(t, kv, addr2).Balance())
	assert.Nil(t, getWallet(t, kv, addr3))

	// cannot send negative or zero
	err = controller.MoveCoins(kv, addr2, addr3, -100)
	assert.True(t, errors.ErrAmount.Is(err), "%+v", err)
	err = controller.MoveCoins(kv, addr2, addr3, 0)
	assert.True(t, errors.ErrAmount.Is(err), "%+v", err)

	// cannot send too much
	err = controller.MoveCoins(kv, addr2, addr3, 50000)
	assert.True(t, errors.ErrInsufficientAmount.Is(err), "%+v", err)
	assert.Equal(t, int64(300), getWallet(t, kv, addr2).Balance())

	// send all coins
	require.NoError(t, controller.MoveCoins(kv, addr2, addr3, 300))
	assert.Equal(t, int64(0), getWallet(t, kv, addr2).Balance())
	assert.Equal(t, int64(300), getWallet(t, kv, addr3).Balance())
}

func TestBalance(t *testing.T) {
	kv := store.MemStore()
	addr := banktest.NewAddress()

	controller := NewController(NewBucket())

	// unknown address holds zero
	val, err := controller.Balance(kv, addr)
	require.NoError(t, err)
	assert.Equal(t, int64(0), val)

	require.NoError(t, controller.IssueCoins(kv, addr, 42))
	val, err = controller.Balance(kv, addr)
	require.NoError(t, err)
	assert.Equal(t, int64(42), val)
}

func TestWalletRoundtrip(t *testing.T) {
	kv := store.MemStore()
	addr := banktest.NewAddress()
	b := NewBucket()

	w := NewWallet(addr)
	require.NoError(t, w.Add(77))
	require.NoError(t, b.Save(kv, w))

	loaded := getWallet(t, kv, addr)
	require.NotNil(t, loaded)
	assert.Equal(t, int64(77), loaded.Balance())
	assert.Equal(t, []byte(addr), loaded.Key())
}
