// Package viterbi adapts fec's convolutional Decoder to the shape of
// a legacy block-oriented Viterbi API: a handful of constructors for
// well-known codes, and create/init/update/chainback style methods
// instead of a single streaming Decode call.
//
// Four standard codes are provided, matching widely deployed
// (rate, constraint length, generator polynomial) triples:
//
//   - Viterbi27:  R=2, K=7,  polys = {0o155, 0o117}
//   - Viterbi29:  R=2, K=9,  polys = {0o657, 0o435}
//   - Viterbi39:  R=3, K=9,  polys = {0o755, 0o633, 0o447}
//   - Viterbi615: R=6, K=15, polys = {0o42631, 0o47245, 0o56507, 0o73363, 0o77267, 0o64537}
package viterbi

import (
	"fmt"

	fec "github.com/quietmodem/gofec"
)

// Shim is a legacy-compatible wrapper around a fec.Decoder: instead
// of one Decode call consuming a whole encoded message, callers feed
// it one-bit-per-byte soft samples in blocks via UpdateBlk and drain
// decoded bytes via Chainback.
//
// Shim is NOT safe for concurrent use.
type Shim struct {
	decoder *fec.Decoder
	rate    int
	order   int

	buffer     []byte
	readIndex  int
	writeIndex int
}

func newShim(numDecodedBits, rate, order int, polys []uint16) *Shim {
	dec, err := fec.NewDecoder(rate, order, polys)
	if err != nil {
		// polys here are the package's own well-known constants;
		// a failure means the constant table itself is broken.
		panic("viterbi: invalid built-in code parameters: " + err.Error())
	}

	numDecodedBytes := numDecodedBits / 8
	if numDecodedBits%8 != 0 {
		numDecodedBytes++
	}

	return &Shim{
		decoder: dec,
		rate:    rate,
		order:   order,
		buffer:  make([]byte, numDecodedBytes+1),
	}
}

// NewViterbi27 constructs a Shim for the R=2, K=7 code with
// polynomials {0o155, 0o117}. numDecodedBits sizes the shim's
// internal decode buffer.
func NewViterbi27(numDecodedBits int) *Shim {
	return newShim(numDecodedBits, 2, 7, []uint16{0o155, 0o117})
}

// NewViterbi29 constructs a Shim for the R=2, K=9 code with
// polynomials {0o657, 0o435}.
func NewViterbi29(numDecodedBits int) *Shim {
	return newShim(numDecodedBits, 2, 9, []uint16{0o657, 0o435})
}

// NewViterbi39 constructs a Shim for the R=3, K=9 code with
// polynomials {0o755, 0o633, 0o447}.
func NewViterbi39(numDecodedBits int) *Shim {
	return newShim(numDecodedBits, 3, 9, []uint16{0o755, 0o633, 0o447})
}

// NewViterbi615 constructs a Shim for the R=6, K=15 code with
// polynomials {0o42631, 0o47245, 0o56507, 0o73363, 0o77267, 0o64537}.
func NewViterbi615(numDecodedBits int) *Shim {
	return newShim(numDecodedBits, 6, 15, []uint16{
		0o42631, 0o47245, 0o56507, 0o73363, 0o77267, 0o64537,
	})
}

// Delete releases the shim. It is a no-op retained for call-site
// compatibility with the legacy create/delete pairing; the garbage
// collector reclaims the shim once unreferenced.
func (s *Shim) Delete() {}

// Init resets the shim's read and write cursors only. It does not
// reset the underlying decoder's path metrics or survivor history —
// this reproduces a quirk of the legacy adapter this type stands in
// for, preserved for bit-for-bit compatibility with callers that
// depend on it.
func (s *Shim) Init() {
	s.readIndex = 0
	s.writeIndex = 0
}

// UpdateBlk consumes encoded, one soft-bit-like sample per byte
// (only bit 0 of each byte is read), repacks it MSB-first into hard
// bits, and decodes it in one call, appending the result to the
// shim's internal output buffer for later retrieval via Chainback.
//
// len(encoded) must equal numGroups * rate for the caller's chosen
// numGroups, matching the legacy block API's grouping. A chunk that
// would decode past the end of the shim's output buffer is cut down
// to the groups that fit before it is decoded; for codes with K >= 9
// the decoder's own buffer-size check still rejects the cut-down
// chunk. A chunk the underlying decoder rejects — too short for its
// warm-up and tail phases to both complete (numGroups < 2K-2), or
// failing that buffer check — is consumed without effect and
// reported as an error, leaving the write cursor where it was so
// Chainback never exposes bytes the decoder did not produce.
func (s *Shim) UpdateBlk(encoded []byte) error {
	remainingBytes := len(s.buffer) - s.writeIndex
	remainingBits := 8 * remainingBytes
	encodedBits := len(encoded)

	decodedLen := (len(encoded) / s.rate) - (s.order - 1)
	if decodedLen > remainingBits {
		over := decodedLen - remainingBits
		decodedLen -= over
		encodedBits -= over * s.rate
	}

	hard := make([]byte, encodedBits/8+1)
	for i := 0; i < encodedBits; i++ {
		hard[i/8] |= (encoded[i] & 1) << uint(7-i%8)
	}

	if _, err := s.decoder.Decode(hard, encodedBits, s.buffer[s.writeIndex:]); err != nil {
		return fmt.Errorf("viterbi: decode block: %w", err)
	}
	s.writeIndex += decodedLen / 8
	return nil
}

// Chainback copies up to len(decoded) bytes from the shim's internal
// output buffer into decoded, advancing the read cursor.
//
// Despite its legacy name suggesting a bit count, the amount copied
// is governed by len(decoded) in bytes — the same contract the
// adapter this type stands in for exposes as a "num_bits" parameter
// that is in fact a byte count.
func (s *Shim) Chainback(decoded []byte) {
	remainingBytes := s.writeIndex - s.readIndex
	receiveLen := len(decoded)
	if receiveLen > remainingBytes {
		receiveLen = remainingBytes
	}
	copy(decoded[:receiveLen], s.buffer[s.readIndex:s.readIndex+receiveLen])
	s.readIndex += receiveLen
}
