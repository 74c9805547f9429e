// Package fec implements a rate-1/R, constraint-length-K convolutional
// forward-error-correction code: a streaming bit-level Encoder and a
// hard-decision Viterbi Decoder.
//
// The wire format is a packed bit stream, most-significant bit first
// within each byte (see package bitio). The Encoder drives a shift
// register of R generator polynomials, emitting R output bits per
// input bit followed by K+1 zero-input tail steps. The Decoder
// inverts this with an add-compare-select recurrence over the
// trellis's paired states, using a bounded-memory sliding history
// with periodic traceback rather than retaining the whole message.
//
// This package implements the FEC convolutional code alone: no outer
// code (Reed-Solomon, CRC), no interleaving, no puncturing, and no
// soft-decision decoding. Known codes with published generator
// polynomials are available as ready-made constructors in the
// sibling viterbi package.
//
//   - Encoder/Decoder construction validates R and K once, up front.
//   - Neither type is safe for concurrent use; independent instances
//     share no state and may run on separate goroutines freely.
//   - Decode returns ErrShortMessage rather than producing a malformed
//     result when the encoded stream is too short for the warm-up and
//     tail phases to both complete.
package fec
