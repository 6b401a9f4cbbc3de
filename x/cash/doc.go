/*
Package cash implements the native value ledger: one balance in the
chain's native unit per address.

The Controller is used by other extensions to move value as part of
their own operations, and SendMsg exposes a plain signed transfer.
*/
package cash
