/*
Package errors implements the error handling used across the ledger.

Each failure class is represented by a root error instance created
with Register. Runtime errors must wrap one of the registered roots
using Wrap or Wrapf, so that a caller can classify any returned error
with the root's Is method regardless of how many layers of context
were added on top:

	if errors.ErrNotFound.Is(err) {
		...
	}

Extensions register their own roots (see x/bankaccount) with codes
outside of the range reserved by this package.
*/
package errors
