package errors

import "fmt"

const (
	// SuccessABCICode is the result code of a processed transaction.
	SuccessABCICode = 0

	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log of a tendermint response for err.
//
// Errors that do not wrap a registered root error are internal: they all
// share code 1 and, unless debug is set, the generic "internal error" log
// so that no implementation detail reaches a client. In debug mode the
// log carries the full error including its stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	default:
		return code, err.Error()
	}
}

type coder interface {
	ABCICode() uint32
}

// abciCode walks the cause chain until it finds a registered error.
func abciCode(err error) uint32 {
	for !errIsNil(err) {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return internalABCICode
}
