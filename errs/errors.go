// Package errs defines the error sentinels shared by the radix packages.
//
// Both the top-level radix package and the internal engine wrap these values with
// context, so callers should compare with errors.Is rather than by identity.
package errs

import "errors"

// Sort errors
var (
	ErrInvalidRange       = errors.New("radix: sort range is outside the buffer")
	ErrLengthMismatch     = errors.New("radix: keys and values have different lengths")
	ErrAllocation         = errors.New("radix: scratch allocation exceeds budget")
	ErrVerificationFailed = errors.New("radix: sorted output failed verification")
	ErrInvalidOption      = errors.New("radix: invalid option")
)

// Fixture errors
var (
	ErrInvalidFixture      = errors.New("radix: invalid fixture data")
	ErrUnsupportedVersion  = errors.New("radix: unsupported fixture version")
	ErrChecksumMismatch    = errors.New("radix: fixture checksum mismatch")
	ErrUnsupportedEncoding = errors.New("radix: unsupported key encoding")
)
