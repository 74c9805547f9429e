package convolutional

import "github.com/quietmodem/gofec/bitio"

// Decoder implements the hard-decision Viterbi decoder: branch-metric
// computation, add-compare-select over paired trellis states, and a
// bounded-memory sliding history with periodic traceback.
type Decoder struct {
	rate      int
	order     int
	highbit   int // 1 << (order-1); also the paired-state count S/2
	polyTable []uint16

	pair    *PairTable
	history *HistoryTable
	errors  *ErrorTable

	distances []uint16 // branch metrics, sized 2^rate

	r *bitio.Reader
	w *bitio.Writer
}

// NewDecoder builds every table a Decode call needs: the polynomial
// table, the interned pair table, the double-buffered path metrics,
// and the bounded survivor history. All are reused across Decode
// calls via Reset.
func NewDecoder(rate, order int, polys []uint16) *Decoder {
	polyTable := BuildPolyTable(rate, order, polys)
	highbit := 1 << uint(order-1)
	numStates := highbit

	maxError := rate * 255
	renormalizeInterval := 0xFFFF / maxError

	return &Decoder{
		rate:      rate,
		order:     order,
		highbit:   highbit,
		polyTable: polyTable,
		pair:      BuildPairTable(rate, polyTable),
		history:   NewHistoryTable(5*order, 15*order, renormalizeInterval, numStates, highbit),
		errors:    NewErrorTable(numStates),
		distances: make([]uint16, 1<<uint(rate)),
		r:         bitio.NewReader(nil),
		w:         bitio.NewWriter(nil),
	}
}

// MinDecodedBits is the smallest num_decoded_bits for which the
// warm-up and tail phase boundaries below are well formed: the
// warm-up and tail phases are each order-1 steps, and the inner phase
// must not be asked to run a negative number of steps.
func (d *Decoder) MinDecodedBits() int {
	return 2*d.order - 2
}

// Reset clears the path metrics and survivor history so the Decoder
// can be reused for another, unrelated message.
func (d *Decoder) Reset() {
	d.errors.Reset()
	d.history.Reset()
}

// Decode consumes numEncodedBits hard bits from encoded and writes
// decoded message bytes into msg, returning the number of whole bytes
// written. Returns -1 if numEncodedBits is not a multiple of the code
// rate, or if it is too short for the warm-up and tail phases to both
// complete.
func (d *Decoder) Decode(encoded []byte, numEncodedBits int, msg []byte) int {
	if numEncodedBits%d.rate != 0 {
		return -1
	}
	numDecodedBits := numEncodedBits / d.rate
	if numDecodedBits < d.MinDecodedBits() {
		return -1
	}

	d.Reset()

	d.r.Reset(encoded)
	d.w.Reset(msg)

	d.decodeWarmup(d.r)
	d.decodeInner(d.r, numDecodedBits, d.w)
	d.decodeTail(d.r, numDecodedBits, d.w)
	d.history.Flush(d.w)

	return d.w.Len()
}

// decodeWarmup runs the first order-1 steps, where the shift register
// has not yet filled: only the first 2^(i+1) states are reachable at
// step i, so no history is recorded and no ACS comparison is made —
// every reachable state has exactly one ancestor.
func (d *Decoder) decodeWarmup(r *bitio.Reader) {
	for i := 0; i < d.order-1; i++ {
		y := uint16(r.Read(d.rate))
		errors := d.errors.Errors
		prevErrors := d.errors.PreviousErrors

		limit := 1 << uint(i+1)
		for j := 0; j < limit; j++ {
			prevState := j >> 1
			dist := popcount16Impl(d.polyTable[j] ^ y)
			errors[j] = uint16(dist) + prevErrors[prevState]
		}
		d.errors.Swap()
	}
}

// decodeInner runs the steady-state ACS recurrence: every paired state
// p in [0, S/4) has two ancestors, p and p+S/4, each contributing one
// candidate metric to each of the two successor states 2p and 2p+1.
func (d *Decoder) decodeInner(r *bitio.Reader, numDecodedBits int, w *bitio.Writer) {
	quarterLen := d.highbit / 2
	keys := d.pair.Keys

	for step := d.order - 1; step < numDecodedBits-d.order+1; step++ {
		y := uint16(r.Read(d.rate))
		branchMetrics(d.distances, d.rate, y)
		pairDistances := d.pair.Distances(d.distances)

		errors := d.errors.Errors
		prevErrors := d.errors.PreviousErrors
		history := d.history.GetSlice()

		for p := 0; p < quarterLen; p++ {
			lowPacked := pairDistances[keys[p]]
			highPacked := pairDistances[keys[p+quarterLen]]

			lowPrev := prevErrors[p]
			highPrev := prevErrors[p+quarterLen]

			state := 2 * p

			loErr := uint16(lowPacked&0xffff) + lowPrev
			hiErr := uint16(highPacked&0xffff) + highPrev
			if loErr <= hiErr {
				errors[state] = loErr
				history[state] = 0
			} else {
				errors[state] = hiErr
				history[state] = 1
			}

			loErr = uint16(lowPacked>>16) + lowPrev
			hiErr = uint16(highPacked>>16) + highPrev
			if loErr <= hiErr {
				errors[state+1] = loErr
				history[state+1] = 0
			} else {
				errors[state+1] = hiErr
				history[state+1] = 1
			}
		}

		d.history.Process(errors, w)
		d.errors.Swap()
	}
}

// decodeTail runs the final order-1 steps, where the register is
// known to be draining toward zero: only a strided subset of states
// is reachable, doubling in sparsity each step, so the kernel reads
// poly_table directly instead of going through the pair table.
func (d *Decoder) decodeTail(r *bitio.Reader, numDecodedBits int, w *bitio.Writer) {
	highPrevOffset := d.highbit / 2

	for i := numDecodedBits - d.order + 1; i < numDecodedBits; i++ {
		y := uint16(r.Read(d.rate))
		branchMetrics(d.distances, d.rate, y)

		step := 1 << uint(d.order-(numDecodedBits-i))

		errors := d.errors.Errors
		prevErrors := d.errors.PreviousErrors
		history := d.history.GetSlice()

		prevState := 0
		for state := 0; state < d.highbit; state += step {
			lowOutput := d.polyTable[state]
			highOutput := d.polyTable[state+d.highbit]

			lowPrev := prevErrors[prevState]
			highPrev := prevErrors[prevState+highPrevOffset]

			loErr := d.distances[lowOutput] + lowPrev
			hiErr := d.distances[highOutput] + highPrev
			if loErr <= hiErr {
				errors[state] = loErr
				history[state] = 0
			} else {
				errors[state] = hiErr
				history[state] = 1
			}

			prevState += step / 2
		}

		d.history.ProcessStep(step, errors, w)
		d.errors.Swap()
	}
}
