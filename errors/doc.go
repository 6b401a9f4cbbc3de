/*
Package errors implements the error kinds used across nftswap.

Every error returned by a handler should wrap one of the root errors
declared with Register. The root error carries an ABCI code, so a client
can tell failures apart without parsing messages:

	if escrow.ErrBuyerMismatch.Is(err) {
		// someone else was promised this asset
	}

Create errors at the point of failure with ErrXyz.New("...") or
Wrap(err, "..."), so that a stack trace is attached once at the lowest
frame. Do not declare wrapped errors as package globals, the recorded
stack would be useless.

Formatting an error with %+v prints the stack trace, %s only the message.
*/
package errors
