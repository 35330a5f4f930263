package bankaccount

import (
	"github.com/iov-one/bank"
	"github.com/iov-one/bank/errors"
	"github.com/iov-one/bank/orm"
)

const (
	// BucketName is where the accounts are stored.
	BucketName = "bankacct"
	// UserBucketName is where the per-identity account lists are stored.
	UserBucketName = "bankuser"

	// MaxOwners bounds the owner set of a single account.
	MaxOwners = 4
	// MaxAccountsPerOwner bounds how many accounts one identity may
	// co-own at the same time.
	MaxAccountsPerOwner = 3
)

// Condition returns the condition guarding the funds of the account
// with the given id.
func Condition(accountID []byte) bank.Condition {
	return bank.NewCondition("bankacct", "seq", accountID)
}

// AccountAddress returns the address holding the funds of the account
// with the given id.
func AccountAddress(accountID int64) bank.Address {
	return Condition(orm.EncodeSequence(accountID)).Address()
}

//---- Account

// Validate enforces the owner set and balance limits
func (a *Account) Validate() error {
	if n := len(a.Owners); n == 0 || n > MaxOwners {
		return ErrInvalidOwners.Newf("%d owners", n)
	}
	for i, owner := range a.Owners {
		if err := owner.Validate(); err != nil {
			return errors.Field("Owners", err, "owner %d", i)
		}
		for _, prev := range a.Owners[:i] {
			if owner.Equals(prev) {
				return ErrInvalidOwners.Newf("duplicate owner %s", owner)
			}
		}
	}
	if a.Balance < 0 {
		return errors.Wrapf(errors.ErrModel, "negative balance: %d", a.Balance)
	}
	for i, r := range a.Requests {
		if err := r.Validate(); err != nil {
			return errors.Wrapf(err, "request %d", i)
		}
	}
	return nil
}

// Copy produces a deep copy of the account
func (a *Account) Copy() orm.Model {
	owners := make([]bank.Address, len(a.Owners))
	for i, o := range a.Owners {
		owners[i] = o.Clone()
	}
	var requests []*WithdrawalRequest
	if a.Requests != nil {
		requests = make([]*WithdrawalRequest, len(a.Requests))
		for i, r := range a.Requests {
			requests[i] = r.Copy().(*WithdrawalRequest)
		}
	}
	return &Account{
		Owners:   owners,
		Balance:  a.Balance,
		Requests: requests,
	}
}

// IsOwner returns true if the given address belongs to the owner set.
func (a *Account) IsOwner(addr bank.Address) bool {
	for _, owner := range a.Owners {
		if owner.Equals(addr) {
			return true
		}
	}
	return false
}

// Request returns the withdrawal request with the given id, or an
// ErrNotFound when there is none.
func (a *Account) Request(requestID int64) (*WithdrawalRequest, error) {
	if requestID < 0 || requestID >= int64(len(a.Requests)) {
		return nil, errors.Wrapf(errors.ErrNotFound, "request %d", requestID)
	}
	return a.Requests[requestID], nil
}

//---- WithdrawalRequest

// Validate requires a creator and a positive amount
func (r *WithdrawalRequest) Validate() error {
	if err := r.Creator.Validate(); err != nil {
		return errors.Field("Creator", err, "invalid creator")
	}
	if r.Amount <= 0 {
		return errors.Wrapf(errors.ErrAmount, "non-positive request: %d", r.Amount)
	}
	for i, a := range r.Approvals {
		if err := a.Validate(); err != nil {
			return errors.Field("Approvals", err, "approval %d", i)
		}
	}
	return nil
}

// Copy produces a deep copy of the request
func (r *WithdrawalRequest) Copy() orm.Model {
	var approvals []bank.Address
	if r.Approvals != nil {
		approvals = make([]bank.Address, len(r.Approvals))
		for i, a := range r.Approvals {
			approvals[i] = a.Clone()
		}
	}
	return &WithdrawalRequest{
		Creator:   r.Creator.Clone(),
		Amount:    r.Amount,
		Approvals: approvals,
		Completed: r.Completed,
	}
}

// HasApproved returns true if the given address already approved this
// request.
func (r *WithdrawalRequest) HasApproved(addr bank.Address) bool {
	for _, a := range r.Approvals {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

//---- UserAccounts

// Validate ensures all referenced ids are well formed sequence values
func (u *UserAccounts) Validate() error {
	for i, id := range u.AccountIDs {
		if len(id) != 8 {
			return errors.Field("AccountIDs", errors.ErrInput, "id %d", i)
		}
	}
	return nil
}

// Copy produces a deep copy of the account list
func (u *UserAccounts) Copy() orm.Model {
	var ids [][]byte
	if u.AccountIDs != nil {
		ids = make([][]byte, len(u.AccountIDs))
		for i, id := range u.AccountIDs {
			ids[i] = append([]byte(nil), id...)
		}
	}
	return &UserAccounts{AccountIDs: ids}
}

// Add appends an account id to the list
func (u *UserAccounts) Add(accountID []byte) {
	u.AccountIDs = append(u.AccountIDs, accountID)
}

//---- AccountBucket

// AccountBucket is a type-safe wrapper around orm.Bucket that stores
// accounts under their sequence id.
type AccountBucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewAccountBucket initializes an AccountBucket with default name
func NewAccountBucket() AccountBucket {
	b := orm.NewBucket(BucketName, orm.NewSimpleObj(nil, new(Account)))
	return AccountBucket{
		Bucket: b,
		idSeq:  b.Sequence(orm.SeqID),
	}
}

// Get returns the account with the given id, or nil if there is none.
func (b AccountBucket) Get(db bank.ReadOnlyKVStore, accountID int64) (*Account, error) {
	obj, err := b.Bucket.Get(db, orm.EncodeSequence(accountID))
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.Value().(*Account), nil
}

// Save persists the state of the account under the given id
func (b AccountBucket) Save(db bank.KVStore, accountID int64, acct *Account) error {
	obj := orm.NewSimpleObj(orm.EncodeSequence(accountID), acct)
	return b.Bucket.Save(db, obj)
}

// Create persists a new account under the next free id, which is
// returned. The first account ever created gets id 0.
func (b AccountBucket) Create(db bank.KVStore, acct *Account) (int64, error) {
	id, err := b.idSeq.NextInt(db)
	if err != nil {
		return 0, err
	}
	return id, b.Save(db, id, acct)
}

//---- UserBucket

// UserBucket is a type-safe wrapper around orm.Bucket that stores the
// list of co-owned accounts per identity.
type UserBucket struct {
	orm.Bucket
}

// NewUserBucket initializes a UserBucket with default name
func NewUserBucket() UserBucket {
	return UserBucket{
		Bucket: orm.NewBucket(UserBucketName, orm.NewSimpleObj(nil, new(UserAccounts))),
	}
}

// Get returns the account list of given address, which is empty but
// not nil when the identity owns no accounts yet.
func (b UserBucket) Get(db bank.ReadOnlyKVStore, addr bank.Address) (*UserAccounts, error) {
	obj, err := b.Bucket.Get(db, addr)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return &UserAccounts{}, nil
	}
	return obj.Value().(*UserAccounts), nil
}

// Save persists the account list of given address
func (b UserBucket) Save(db bank.KVStore, addr bank.Address, accounts *UserAccounts) error {
	obj := orm.NewSimpleObj(addr, accounts)
	return b.Bucket.Save(db, obj)
}
