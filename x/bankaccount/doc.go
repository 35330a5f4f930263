/*
Package bankaccount implements jointly owned custodial accounts.

An account is created by one identity together with up to three
co-owners and is funded by owner deposits. Money only leaves an
account through a withdrawal request: one owner files the request,
the other owners approve it, and once enough approvals are collected
the creator executes it and is paid out.

Account funds are real coins held by the cash extension under a
condition address derived from the account id, so the sum of all
account balances is always backed one to one.
*/
package bankaccount
