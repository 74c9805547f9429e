package convolutional

import "github.com/quietmodem/gofec/bitio"

// Encoder implements the rate-1/R, constraint-length-K convolutional
// encoder: a shift register driven by the incoming message bits,
// emitting R output bits per input bit, followed by K+1 tail steps
// with an implicit zero input to flush the register.
type Encoder struct {
	rate      int
	order     int
	mask      uint32
	polyTable []uint16

	r *bitio.Reader
	w *bitio.Writer
}

// NewEncoder builds the polynomial table for the given rate,
// constraint length and generator polynomials.
func NewEncoder(rate, order int, polys []uint16) *Encoder {
	return &Encoder{
		rate:      rate,
		order:     order,
		mask:      uint32(1<<uint(order)) - 1,
		polyTable: BuildPolyTable(rate, order, polys),
		r:         bitio.NewReader(nil),
		w:         bitio.NewWriter(nil),
	}
}

// EncodeLen returns the number of output bits Encode produces for a
// msgLen-byte message.
func (e *Encoder) EncodeLen(msgLen int) int {
	return e.rate * (8*msgLen + e.order + 1)
}

// Encode runs msg through the shift register and writes R bits per
// input bit into dst, followed by order+1 tail steps (one more than
// the textbook K, reproducing the source encoder's tail length
// verbatim). Returns EncodeLen(len(msg)).
func (e *Encoder) Encode(msg, dst []byte) int {
	e.r.Reset(msg)
	e.w.Reset(dst)

	var sr uint32
	for i := 0; i < 8*len(msg); i++ {
		sr = ((sr << 1) | uint32(e.r.Read(1))) & e.mask
		e.w.Write(byte(e.polyTable[sr]), e.rate)
	}

	for i := 0; i < e.order+1; i++ {
		sr = (sr << 1) & e.mask
		e.w.Write(byte(e.polyTable[sr]), e.rate)
	}

	e.w.Flush()
	return e.EncodeLen(len(msg))
}
