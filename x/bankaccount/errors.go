package bankaccount

import (
	"github.com/iov-one/bank/errors"
)

var (
	// ErrInvalidOwners is returned when an account owner set is
	// malformed, eg. it contains duplicates or too many entries.
	ErrInvalidOwners = errors.Register(1100, "invalid owner set")

	// ErrCapacity is returned when an identity already co-owns the
	// maximum number of accounts.
	ErrCapacity = errors.Register(1101, "account limit reached")

	// ErrSelfApproval is returned when the creator of a withdrawal
	// request tries to approve it.
	ErrSelfApproval = errors.Register(1102, "cannot approve own request")

	// ErrCompleted is returned when operating on a withdrawal request
	// that was already executed.
	ErrCompleted = errors.Register(1103, "request already completed")

	// ErrQuorum is returned when a withdrawal request does not yet hold
	// enough approvals to be executed.
	ErrQuorum = errors.Register(1104, "missing approvals")
)
