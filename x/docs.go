/*
Package x holds the authentication helpers shared by the extensions.

Sub-packages implement the handlers, decorators and initializers the
application is assembled from: sigs verifies signatures, cash keeps
balances, nft tracks asset ownership, escrow runs the swap and utils
provides the recovery, logging and savepoint decorators.
*/
package x
