/*
Package cash keeps track of native value held by addresses.

Every address owns at most one wallet with a non-negative balance.
The Controller is the value transfer primitive used by the rest of
the ledger: MoveCoins shifts a positive amount between two wallets,
IssueCoins mints into (or burns from) a wallet, and Balance reports
current holdings.
*/
package cash
