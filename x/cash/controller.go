package cash

import (
	"github.com/iov-one/bank"
	"github.com/iov-one/bank/errors"
)

// Controller is the functionality needed by other extensions to move
// native value around. This is the minimal interface other extensions
// should compose against.
type Controller interface {
	MoveCoins(db bank.KVStore, src bank.Address, dest bank.Address, amount int64) error
	IssueCoins(db bank.KVStore, dest bank.Address, amount int64) error
	Balance(db bank.ReadOnlyKVStore, addr bank.Address) (int64, error)
}

// BaseController implements Controller on top of the wallet bucket.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db bank.KVStore, src bank.Address, dest bank.Address, amount int64) error {
	if amount <= 0 {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %d", amount)
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrInsufficientAmount, "empty wallet %s", src)
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	if err := c.bucket.Save(db, sender); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// IssueCoins attempts to add the given amount to the wallet of the
// destination address. The amount may be negative to remove value,
// but the wallet can never drop below zero.
func (c BaseController) IssueCoins(db bank.KVStore, dest bank.Address, amount int64) error {
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// Balance returns the amount held by given address. An address without
// a wallet holds zero.
func (c BaseController) Balance(db bank.ReadOnlyKVStore, addr bank.Address) (int64, error) {
	wallet, err := c.bucket.Get(db, addr)
	if err != nil {
		return 0, err
	}
	if wallet == nil {
		return 0, nil
	}
	return wallet.Balance(), nil
}
