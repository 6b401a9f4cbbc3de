/*
Package nftswap defines the interfaces shared by the escrow application:
identities and derived addresses, storage, transactions, handlers and
the request context.

The extensions under x/ build on these. x/escrow implements the escrow
state machine, x/nft the asset custody service it hands assets to, and
x/cash the native ledger that settles payments. The app package ties
everything into an ABCI application.
*/
package nftswap
