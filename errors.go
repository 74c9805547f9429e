// errors.go defines public error types for the fec package.

package fec

import "errors"

// Public error types for encoding and decoding operations.
var (
	// ErrInvalidRate indicates an unsupported rate denominator.
	// Valid rates are 2 through 6 output bits per input bit.
	ErrInvalidRate = errors.New("fec: invalid rate (must be 2-6)")

	// ErrInvalidOrder indicates an unsupported constraint length.
	// Valid constraint lengths are 2 through 15.
	ErrInvalidOrder = errors.New("fec: invalid constraint length (must be 2-15)")

	// ErrInvalidPolynomials indicates the generator polynomial slice
	// does not have exactly rate entries, or an entry does not fit in
	// order bits.
	ErrInvalidPolynomials = errors.New("fec: invalid generator polynomials")

	// ErrInvalidBitCount indicates decode was asked to consume a
	// number of encoded bits that is not a whole multiple of the
	// code's rate.
	ErrInvalidBitCount = errors.New("fec: encoded bit count is not a multiple of rate")

	// ErrShortMessage indicates the encoded stream is too short for
	// the decoder's warm-up and tail phases to both complete.
	ErrShortMessage = errors.New("fec: encoded message too short to decode")

	// ErrBufferTooSmall indicates a destination buffer smaller than
	// the sizing contract documented on Encode and Decode.
	ErrBufferTooSmall = errors.New("fec: destination buffer too small")
)
