// Package crerr provides the typed error taxonomy shared by every engine in
// this module: the block-cipher layer, the integer-factoring engine, and the
// discrete-log engine all report failures through the same four kinds rather
// than ad-hoc error strings.
//
// Based on: pkg/exceptions.CryptoException, generalized from a single
// message-carrying type into a Kind-tagged error so callers can use
// errors.Is/errors.As to distinguish "bad input" from "no such inverse"
// from "signature didn't verify".
package crerr

import (
	"errors"
	"fmt"
)

// Kind classifies what went wrong, independent of which engine raised it.
type Kind int

const (
	// KindInvalidArgument covers malformed input: wrong-length keys/IVs,
	// unparsable hex or decimal strings, or an operation invoked against a
	// keypair half that isn't present.
	KindInvalidArgument Kind = iota

	// KindMathNonExistence covers a modular inverse that does not exist.
	// A correctly generated keypair never triggers this; it exists to
	// surface a programming error rather than be recovered from.
	KindMathNonExistence

	// KindVerifyMismatch covers a signature that fails to verify. It is
	// kept distinct from KindInvalidArgument so a caller can tell "the
	// input was garbage" from "the input was well-formed but the signature
	// didn't check out". dlog.Verify itself reports a mismatch as false;
	// internal/abi reports it as its own StatusVerifyMismatch code.
	KindVerifyMismatch

	// KindBufferTooSmall covers an output buffer that cannot hold the
	// result. The Go core returns freshly allocated slices and never hits
	// this case; internal/abi reports a short output buffer as
	// StatusBufferTooSmall rather than through this Kind.
	KindBufferTooSmall
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindMathNonExistence:
		return "no such value"
	case KindVerifyMismatch:
		return "verification mismatch"
	case KindBufferTooSmall:
		return "buffer too small"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type returned by the aes, bigmath, rsacore,
// dlog and keyring packages when an operation fails.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// New builds an Error of the given kind.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// Newf builds an Error of the given kind with a formatted message.
func Newf(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether target is an *Error with the same Kind, so that
// callers can write errors.Is(err, crerr.New(crerr.KindInvalidArgument, "", ""))
// or, more idiomatically, compare against the sentinel-like helpers below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
