package fec

import "github.com/quietmodem/gofec/internal/convolutional"

// Decoder implements a hard-decision Viterbi decoder for a rate-1/R,
// constraint-length-K convolutional code.
//
// A Decoder instance holds its path metrics and survivor history as
// mutable internal state and is NOT safe for concurrent use; each
// goroutine decoding a stream should own its own Decoder. Independent
// Decoder instances share no state and may run concurrently.
type Decoder struct {
	rate int
	eng  *convolutional.Decoder
}

// NewDecoder builds a Decoder for the given rate, constraint length,
// and generator polynomials, matching the Encoder that produced the
// stream to be decoded.
//
// Returns an error if rate is not in [2, 6], order is not in [2, 15],
// or len(polys) != rate.
func NewDecoder(rate, order int, polys []uint16) (*Decoder, error) {
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

	return &Decoder{
		rate: rate,
		eng:  convolutional.NewDecoder(rate, order, polys),
	}, nil
}

// Decode consumes numEncodedBits hard bits from encoded and writes
// the decoded message bytes into msg, returning the number of whole
// bytes written.
//
// Returns ErrInvalidBitCount if numEncodedBits is not a multiple of
// the code's rate, ErrShortMessage if the stream is too short for the
// warm-up and tail phases to both complete (see MinEncodedBits), and
// ErrBufferTooSmall if msg cannot hold the numEncodedBits/rate
// decoded bits. msg is not written on any error.
func (d *Decoder) Decode(encoded []byte, numEncodedBits int, msg []byte) (int, error) {
	if numEncodedBits%d.rate != 0 {
		return 0, ErrInvalidBitCount
	}
	if numEncodedBits < d.MinEncodedBits() {
		return 0, ErrShortMessage
	}
	if len(msg) < numEncodedBits/d.rate/8 {
		return 0, ErrBufferTooSmall
	}
	return d.eng.Decode(encoded, numEncodedBits, msg), nil
}

// MinEncodedBits returns the smallest value of numEncodedBits for
// which Decode can produce output, given this Decoder's rate and
// constraint length.
func (d *Decoder) MinEncodedBits() int {
	return d.eng.MinDecodedBits() * d.rate
}
