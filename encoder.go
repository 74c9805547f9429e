package fec

import "github.com/quietmodem/gofec/internal/convolutional"

// Encoder implements a rate-1/R, constraint-length-K convolutional
// encoder.
//
// An Encoder instance reuses one internal bit reader and writer across
// Encode calls and is NOT safe for concurrent use with other methods
// on the same instance, though independent instances may run
// concurrently.
type Encoder struct {
	rate  int
	order int
	eng   *convolutional.Encoder
}

// NewEncoder builds an Encoder for the given rate (R, number of
// output bits per input bit), constraint length (K, shift-register
// width), and R generator polynomials, each a K-bit mask.
//
// Returns an error if rate is not in [2, 6], order is not in [2, 15],
// or len(polys) != rate.
func NewEncoder(rate, order int, polys []uint16) (*Encoder, error) {
	if rate < 2 || rate > 6 {
		return nil, ErrInvalidRate
	}
	if order < 2 || order > 15 {
		return nil, ErrInvalidOrder
	}
	if len(polys) != rate {
		return nil, ErrInvalidPolynomials
	}
	maxPoly := uint16(1<<uint(order)) - 1
	for _, p := range polys {
		if p > maxPoly {
			return nil, ErrInvalidPolynomials
		}
	}

	return &Encoder{
		rate:  rate,
		order: order,
		eng:   convolutional.NewEncoder(rate, order, polys),
	}, nil
}

// EncodeLen returns the number of output bits Encode produces for a
// message of msgLen bytes: rate * (8*msgLen + order + 1).
func (e *Encoder) EncodeLen(msgLen int) int {
	return e.eng.EncodeLen(msgLen)
}

// Encode runs msg through the shift register, writing R bits per
// input bit into dst followed by K+1 zero-input tail steps, and
// returns EncodeLen(len(msg)).
//
// Returns ErrBufferTooSmall unless dst has at least
// EncodeLen(len(msg))/8 + 1 bytes, the documented sizing contract.
// Encode writes exactly EncodeLen(len(msg)) bits, so this always
// leaves room for a final zero-padded partial byte. dst is not
// written on error.
func (e *Encoder) Encode(msg, dst []byte) (int, error) {
	if len(dst) < e.EncodeLen(len(msg))/8+1 {
		return 0, ErrBufferTooSmall
	}
	return e.eng.Encode(msg, dst), nil
}
