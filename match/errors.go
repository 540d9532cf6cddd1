package match

import (
	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
)

var (
	// ErrInvalidOrder indicates a malformed inbound order; it is
	// returned before any engine state is mutated.
	ErrInvalidOrder = errors.New("invalid order", j.C("ERR_2f8a1c94d6b07e53"))

	// ErrInvalidState indicates a violated working order precondition,
	// eg. executing more than the remaining quantity. It is a bug in
	// the caller, not a domain outcome.
	ErrInvalidState = errors.New("invalid order state", j.C("ERR_c07b5d31e9a2684f"))
)
