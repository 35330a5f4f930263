package cash

import (
	"github.com/iov-one/bank"
	"github.com/iov-one/bank/errors"
	"github.com/iov-one/bank/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

//---- Set

// Validate requires the balance to never be negative
func (s *Set) Validate() error {
	if s.Balance < 0 {
		return errors.Wrapf(errors.ErrModel, "negative balance: %d", s.Balance)
	}
	return nil
}

// Copy makes a new set with the same balance
func (s *Set) Copy() orm.Model {
	return &Set{
		Balance: s.Balance,
	}
}

//--- Wallet (Set object, value + key)

// Wallet is the actual object that we want to pass around
// in our code. It contains a balance, as well as the owner
// address. It is connected to the Bucket to easily manipulate state.
type Wallet struct {
	key   []byte
	value *Set
}

var _ orm.Object = (*Wallet)(nil)

// NewWallet creates an empty wallet with this address
func NewWallet(key bank.Address) *Wallet {
	return &Wallet{
		key:   key,
		value: new(Set),
	}
}

// Value gets the value stored in the object
func (w Wallet) Value() bank.Persistent {
	return w.value
}

// Key returns the key to store the object under
func (w Wallet) Key() []byte {
	return w.key
}

// Validate makes sure the fields aren't empty.
// And delegates to the value validator if present
func (w Wallet) Validate() error {
	if len(w.key) == 0 {
		return errors.Field("Key", errors.ErrEmpty, "missing key")
	}
	return w.value.Validate()
}

// SetKey may be used to update a wallet key
func (w *Wallet) SetKey(key []byte) {
	w.key = key
}

// Clone will make a copy of this object
func (w *Wallet) Clone() orm.Object {
	res := &Wallet{
		value: &Set{Balance: w.value.Balance},
	}
	// only copy key if non-nil
	if len(w.key) > 0 {
		res.key = append([]byte(nil), w.key...)
	}
	return res
}

// Balance returns the value held in the wallet
func (w Wallet) Balance() int64 {
	return w.value.Balance
}

// Add modifies the wallet balance by the given amount, which may be
// negative. It fails when the result would drop below zero or
// overflow.
func (w *Wallet) Add(amount int64) error {
	next := w.value.Balance + amount
	if amount > 0 && next < w.value.Balance {
		return errors.Wrap(errors.ErrOverflow, "wallet balance")
	}
	if next < 0 {
		return errors.Wrapf(errors.ErrInsufficientAmount, "wallet holds %d", w.value.Balance)
	}
	w.value.Balance = next
	return nil
}

// Subtract modifies the wallet to remove the given amount
func (w *Wallet) Subtract(amount int64) error {
	return w.Add(-amount)
}

//--- cash.Bucket - type-safe bucket

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet(nil)),
	}
}

// Get returns the wallet of given address, or nil if not yet created.
func (b Bucket) Get(db bank.ReadOnlyKVStore, key bank.Address) (*Wallet, error) {
	obj, err := b.Bucket.Get(db, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.(*Wallet), nil
}

// Save persists the state of a given wallet
func (b Bucket) Save(db bank.KVStore, wallet *Wallet) error {
	return b.Bucket.Save(db, wallet)
}

// GetOrCreate returns the wallet of given address, creating an empty
// one in memory when there is none yet. The new wallet is not
// persisted until saved.
func (b Bucket) GetOrCreate(db bank.ReadOnlyKVStore, key bank.Address) (*Wallet, error) {
	wallet, err := b.Get(db, key)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		wallet = NewWallet(key)
	}
	return wallet, nil
}
