package bankaccount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/bank"
	"github.com/iov-one/bank/banktest"
	"github.com/iov-one/bank/store"
)

func TestAccountValidate(t *testing.T) {
	a := banktest.NewAddress()
	b := banktest.NewAddress()

	cases := map[string]struct {
		acct    Account
		wantErr bool
	}{
		"single owner": {
			acct: Account{Owners: []bank.Address{a}},
		},
		"two owners with balance": {
			acct: Account{Owners: []bank.Address{a, b}, Balance: 100},
		},
		"no owners": {
			acct:    Account{},
			wantErr: true,
		},
		"five owners": {
			acct: Account{Owners: []bank.Address{
				a, b,
				banktest.NewAddress(),
				banktest.NewAddress(),
				banktest.NewAddress(),
			}},
			wantErr: true,
		},
		"duplicate owner": {
			acct:    Account{Owners: []bank.Address{a, b, a}},
			wantErr: true,
		},
		"malformed owner": {
			acct:    Account{Owners: []bank.Address{a, {1, 2, 3}}},
			wantErr: true,
		},
		"negative balance": {
			acct:    Account{Owners: []bank.Address{a}, Balance: -1},
			wantErr: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.acct.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithdrawalRequestValidate(t *testing.T) {
	creator := banktest.NewAddress()

	good := WithdrawalRequest{Creator: creator, Amount: 10}
	assert.NoError(t, good.Validate())

	noCreator := WithdrawalRequest{Amount: 10}
	assert.Error(t, noCreator.Validate())

	zeroAmount := WithdrawalRequest{Creator: creator}
	assert.Error(t, zeroAmount.Validate())
}

func TestAccountCopyIsDeep(t *testing.T) {
	creator := banktest.NewAddress()
	acct := &Account{
		Owners:  []bank.Address{creator},
		Balance: 55,
		Requests: []*WithdrawalRequest{
			{Creator: creator, Amount: 5},
		},
	}

	cpy := acct.Copy().(*Account)
	cpy.Balance = 100
	cpy.Requests[0].Completed = true
	cpy.Requests[0].Approvals = append(cpy.Requests[0].Approvals, banktest.NewAddress())

	assert.Equal(t, int64(55), acct.Balance)
	assert.False(t, acct.Requests[0].Completed)
	assert.Len(t, acct.Requests[0].Approvals, 0)
}

func TestAccountBucket(t *testing.T) {
	kv := store.MemStore()
	bucket := NewAccountBucket()
	owner := banktest.NewAddress()

	// nothing stored yet
	acct, err := bucket.Get(kv, 0)
	require.NoError(t, err)
	assert.Nil(t, acct)

	// ids are dense and start at zero
	first, err := bucket.Create(kv, &Account{Owners: []bank.Address{owner}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), first)

	second, err := bucket.Create(kv, &Account{Owners: []bank.Address{owner}, Balance: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), second)

	loaded, err := bucket.Get(kv, second)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, int64(20), loaded.Balance)
	assert.True(t, loaded.IsOwner(owner))

	// requests survive a roundtrip
	loaded.Requests = append(loaded.Requests, &WithdrawalRequest{
		Creator:   owner,
		Amount:    7,
		Approvals: []bank.Address{banktest.NewAddress()},
	})
	require.NoError(t, bucket.Save(kv, second, loaded))

	again, err := bucket.Get(kv, second)
	require.NoError(t, err)
	require.Len(t, again.Requests, 1)
	assert.Equal(t, int64(7), again.Requests[0].Amount)
	assert.Len(t, again.Requests[0].Approvals, 1)
}

func TestUserBucket(t *testing.T) {
	kv := store.MemStore()
	bucket := NewUserBucket()
	addr := banktest.NewAddress()

	// unknown identity owns nothing
	list, err := bucket.Get(kv, addr)
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Len(t, list.AccountIDs, 0)

	list.Add([]byte{0, 0, 0, 0, 0, 0, 0, 3})
	require.NoError(t, bucket.Save(kv, addr, list))

	loaded, err := bucket.Get(kv, addr)
	require.NoError(t, err)
	require.Len(t, loaded.AccountIDs, 1)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 3}, loaded.AccountIDs[0])
}

func TestAccountAddress(t *testing.T) {
	addr := AccountAddress(0)
	require.NoError(t, addr.Validate())

	// stable and collision free per id
	assert.Equal(t, addr, AccountAddress(0))
	assert.False(t, addr.Equals(AccountAddress(1)))
}
