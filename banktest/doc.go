// Package banktest provides helpers for testing ledger extensions,
// most importantly unique test identities. Assertion helpers live in
// the assert subpackage.
package banktest
