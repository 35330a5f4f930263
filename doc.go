/*
Package bank defines the common types shared by all packages of the
custodial ledger: addresses and the conditions they are derived from,
the key-value store interfaces every component operates against, and
the Persistent interface implemented by all stored models.

The ledger logic lives in the extensions under x/, most notably
x/bankaccount (jointly owned accounts with approval-gated withdrawals)
and x/cash (the native value wallets that deposits and withdrawals
move funds between).
*/
package bank
