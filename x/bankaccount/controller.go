package bankaccount

import (
	"github.com/iov-one/bank"
	"github.com/iov-one/bank/errors"
	"github.com/iov-one/bank/orm"
	"github.com/iov-one/bank/x/cash"
)

// QuorumPolicy decides how many approvals a withdrawal request needs
// before it can be executed, given the number of co-owners, ie. the
// owners other than the request creator.
type QuorumPolicy func(coOwners int) int

// UnanimousCoOwners requires every co-owner to approve. Requests on a
// single-owner account need no approvals at all.
func UnanimousCoOwners(coOwners int) int {
	return coOwners
}

// Controller implements the shared account operations. All value is
// backed by real coins: the balance of an account is held in the cash
// wallet of the account condition address.
//
// Every mutating operation is atomic. It works on a cache wrap of the
// given store and either commits all its writes or none.
type Controller struct {
	accounts AccountBucket
	users    UserBucket
	cash     cash.Controller
	quorum   QuorumPolicy
}

// NewController returns a controller using the given cash controller
// to move funds. A nil quorum policy defaults to UnanimousCoOwners.
func NewController(cashctrl cash.Controller, quorum QuorumPolicy) *Controller {
	if quorum == nil {
		quorum = UnanimousCoOwners
	}
	return &Controller{
		accounts: NewAccountBucket(),
		users:    NewUserBucket(),
		cash:     cashctrl,
		quorum:   quorum,
	}
}

// CreateAccount creates a new account owned by the caller together
// with the given co-owners and returns its id. Account ids are dense
// and start at 0.
//
// The owner set must hold no duplicates and at most MaxOwners entries.
// Every member must still be below MaxAccountsPerOwner, the caller
// included.
func (c *Controller) CreateAccount(db bank.CacheableKVStore, caller bank.Address, coOwners []bank.Address) (int64, error) {
	cache := db.CacheWrap()
	id, err := c.createAccount(cache, caller, coOwners)
	if err != nil {
		cache.Discard()
		return 0, err
	}
	return id, cache.Write()
}

func (c *Controller) createAccount(db bank.KVStore, caller bank.Address, coOwners []bank.Address) (int64, error) {
	owners := make([]bank.Address, 0, len(coOwners)+1)
	owners = append(owners, caller)
	owners = append(owners, coOwners...)

	acct := &Account{Owners: owners}
	if err := acct.Validate(); err != nil {
		return 0, err
	}

	// Every member must have room for one more account.
	lists := make([]*UserAccounts, len(owners))
	for i, owner := range owners {
		list, err := c.users.Get(db, owner)
		if err != nil {
			return 0, err
		}
		if len(list.AccountIDs) >= MaxAccountsPerOwner {
			return 0, ErrCapacity.Newf("owner %s has %d accounts", owner, len(list.AccountIDs))
		}
		lists[i] = list
	}

	id, err := c.accounts.Create(db, acct)
	if err != nil {
		return 0, err
	}

	for i, owner := range owners {
		lists[i].Add(orm.EncodeSequence(id))
		if err := c.users.Save(db, owner, lists[i]); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// GetAccounts returns the ids of all accounts the caller co-owns.
func (c *Controller) GetAccounts(db bank.ReadOnlyKVStore, caller bank.Address) ([]int64, error) {
	list, err := c.users.Get(db, caller)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(list.AccountIDs))
	for i, raw := range list.AccountIDs {
		ids[i] = orm.DecodeSequence(raw)
	}
	return ids, nil
}

// GetBalance returns the balance of the given account.
func (c *Controller) GetBalance(db bank.ReadOnlyKVStore, accountID int64) (int64, error) {
	acct, err := c.getAccount(db, accountID)
	if err != nil {
		return 0, err
	}
	return acct.Balance, nil
}

// Deposit moves the given amount from the caller wallet into the
// account. Only an owner may deposit.
func (c *Controller) Deposit(db bank.CacheableKVStore, caller bank.Address, accountID int64, amount int64) error {
	cache := db.CacheWrap()
	if err := c.deposit(cache, caller, accountID, amount); err != nil {
		cache.Discard()
		return err
	}
	return cache.Write()
}

func (c *Controller) deposit(db bank.KVStore, caller bank.Address, accountID int64, amount int64) error {
	if amount <= 0 {
		return errors.Wrapf(errors.ErrAmount, "non-positive deposit: %d", amount)
	}
	acct, err := c.getAccount(db, accountID)
	if err != nil {
		return err
	}
	if !acct.IsOwner(caller) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", caller)
	}

	acct.Balance += amount
	if acct.Balance < 0 {
		return errors.Wrap(errors.ErrOverflow, "account balance")
	}
	if err := c.accounts.Save(db, accountID, acct); err != nil {
		return err
	}
	return c.cash.MoveCoins(db, caller, AccountAddress(accountID), amount)
}

// RequestWithdrawal files a new withdrawal request on the account and
// returns its id. Request ids are scoped to the account, dense, and
// start at 0.
//
// Only an owner may file a request, and the amount must be covered by
// the current account balance.
func (c *Controller) RequestWithdrawal(db bank.CacheableKVStore, caller bank.Address, accountID int64, amount int64) (int64, error) {
	cache := db.CacheWrap()
	id, err := c.requestWithdrawal(cache, caller, accountID, amount)
	if err != nil {
		cache.Discard()
		return 0, err
	}
	return id, cache.Write()
}

func (c *Controller) requestWithdrawal(db bank.KVStore, caller bank.Address, accountID int64, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, errors.Wrapf(errors.ErrAmount, "non-positive withdrawal: %d", amount)
	}
	acct, err := c.getAccount(db, accountID)
	if err != nil {
		return 0, err
	}
	if !acct.IsOwner(caller) {
		return 0, errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", caller)
	}
	if amount > acct.Balance {
		return 0, errors.Wrapf(errors.ErrInsufficientAmount, "account holds %d", acct.Balance)
	}

	requestID := int64(len(acct.Requests))
	acct.Requests = append(acct.Requests, &WithdrawalRequest{
		Creator: caller,
		Amount:  amount,
	})
	return requestID, c.accounts.Save(db, accountID, acct)
}

// ApproveWithdrawal records the caller approval on a pending request.
//
// Only an owner other than the request creator may approve, and only
// once per request.
func (c *Controller) ApproveWithdrawal(db bank.CacheableKVStore, caller bank.Address, accountID int64, requestID int64) error {
	cache := db.CacheWrap()
	if err := c.approveWithdrawal(cache, caller, accountID, requestID); err != nil {
		cache.Discard()
		return err
	}
	return cache.Write()
}

func (c *Controller) approveWithdrawal(db bank.KVStore, caller bank.Address, accountID int64, requestID int64) error {
	acct, err := c.getAccount(db, accountID)
	if err != nil {
		return err
	}
	request, err := acct.Request(requestID)
	if err != nil {
		return err
	}
	if !acct.IsOwner(caller) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", caller)
	}
	if request.Completed {
		return ErrCompleted.Newf("request %d", requestID)
	}
	if request.Creator.Equals(caller) {
		return ErrSelfApproval.Newf("request %d", requestID)
	}
	if request.HasApproved(caller) {
		return errors.Wrapf(errors.ErrDuplicate, "approval by %s", caller)
	}

	request.Approvals = append(request.Approvals, caller)
	return c.accounts.Save(db, accountID, acct)
}

// GetApprovals returns the number of approvals collected on a request.
func (c *Controller) GetApprovals(db bank.ReadOnlyKVStore, accountID int64, requestID int64) (int, error) {
	acct, err := c.getAccount(db, accountID)
	if err != nil {
		return 0, err
	}
	request, err := acct.Request(requestID)
	if err != nil {
		return 0, err
	}
	return len(request.Approvals), nil
}

// Withdraw executes an approved request and pays the amount out to the
// request creator wallet.
//
// Only the creator may execute, only once, and only after the quorum
// policy is satisfied for the current owner set.
func (c *Controller) Withdraw(db bank.CacheableKVStore, caller bank.Address, accountID int64, requestID int64) error {
	cache := db.CacheWrap()
	if err := c.withdraw(cache, caller, accountID, requestID); err != nil {
		cache.Discard()
		return err
	}
	return cache.Write()
}

func (c *Controller) withdraw(db bank.KVStore, caller bank.Address, accountID int64, requestID int64) error {
	acct, err := c.getAccount(db, accountID)
	if err != nil {
		return err
	}
	request, err := acct.Request(requestID)
	if err != nil {
		return err
	}
	if !request.Creator.Equals(caller) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s did not create request %d", caller, requestID)
	}
	if request.Completed {
		return ErrCompleted.Newf("request %d", requestID)
	}
	need := c.quorum(len(acct.Owners) - 1)
	if len(request.Approvals) < need {
		return ErrQuorum.Newf("have %d of %d approvals", len(request.Approvals), need)
	}
	if request.Amount > acct.Balance {
		return errors.Wrapf(errors.ErrInsufficientAmount, "account holds %d", acct.Balance)
	}

	// Settle the account state before moving any funds out.
	request.Completed = true
	acct.Balance -= request.Amount
	if err := c.accounts.Save(db, accountID, acct); err != nil {
		return err
	}
	return c.cash.MoveCoins(db, AccountAddress(accountID), request.Creator, request.Amount)
}

func (c *Controller) getAccount(db bank.ReadOnlyKVStore, accountID int64) (*Account, error) {
	acct, err := c.accounts.Get(db, accountID)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "account %d", accountID)
	}
	return acct, nil
}
