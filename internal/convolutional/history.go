package convolutional

import "github.com/quietmodem/gofec/bitio"

// HistoryTable is the bounded-memory survivor history: a ring buffer
// of per-step survivor bits, traced back and emitted in batches once
// it fills, instead of retaining the whole message's trellis.
type HistoryTable struct {
	minTracebackLength int
	numStates          int
	highbit            int
	historyCap         int

	renormalizeInterval int
	renormalizeCounter  int

	history      []byte
	decodeBuf    []byte
	historyIndex int
	historyLen   int
}

// NewHistoryTable allocates a ring of historyCap (= minTracebackLength
// + tracebackGroupLength) trellis steps, each numStates bits wide.
// highbit is both the paired-state count and the fold bit traceback
// ORs in while walking backward.
func NewHistoryTable(minTracebackLength, tracebackGroupLength, renormalizeInterval, numStates, highbit int) *HistoryTable {
	historyCap := minTracebackLength + tracebackGroupLength
	return &HistoryTable{
		minTracebackLength:  minTracebackLength,
		numStates:           numStates,
		highbit:             highbit,
		historyCap:          historyCap,
		renormalizeInterval: renormalizeInterval,
		history:             make([]byte, historyCap*numStates),
		decodeBuf:           make([]byte, historyCap),
	}
}

// Reset zeroes the table's runtime position without touching the
// allocated ring or scratch buffers, so a Decoder can be reused
// across Decode calls without reallocating.
func (h *HistoryTable) Reset() {
	h.historyIndex = 0
	h.historyLen = 0
	h.renormalizeCounter = 0
}

// GetSlice returns the ring slot the caller should write this step's
// survivor bits into, one byte per paired state.
func (h *HistoryTable) GetSlice() []byte {
	start := h.historyIndex * h.numStates
	return h.history[start : start+h.numStates]
}

// leastErrorPath returns the paired state with the smallest path
// metric, searching every searchEvery-th state (the tail phase only
// keeps a strided subset of states live).
func (h *HistoryTable) leastErrorPath(errors []uint16, searchEvery int) int {
	best := 0
	least := errors[0]
	for state := searchEvery; state < len(errors); state += searchEvery {
		if errors[state] < least {
			least = errors[state]
			best = state
		}
	}
	return best
}

// renormalize subtracts the metric at bestState from every entry in
// errors, keeping the running path metrics from overflowing their
// 16-bit range over a long decode.
func (h *HistoryTable) renormalize(errors []uint16, bestState int) {
	min := errors[bestState]
	for i := range errors {
		errors[i] -= min
	}
}

// traceback walks the ring backward from bestPath, discarding the
// first minTraceback steps (where paths have not yet converged) and
// emitting the remaining decoded bits through w.
func (h *HistoryTable) traceback(bestPath, minTraceback int, w *bitio.Writer) {
	index := h.historyIndex
	highbit := h.highbit

	for i := 0; i < minTraceback; i++ {
		index--
		if index < 0 {
			index = h.historyCap - 1
		}
		if h.history[index*h.numStates+bestPath] != 0 {
			bestPath |= highbit
		}
		bestPath >>= 1
	}

	numDecodes := h.historyLen - minTraceback
	for i := 0; i < numDecodes; i++ {
		index--
		if index < 0 {
			index = h.historyCap - 1
		}
		bit := h.history[index*h.numStates+bestPath]
		if bit != 0 {
			bestPath |= highbit
			h.decodeBuf[i] = 1
		} else {
			h.decodeBuf[i] = 0
		}
		bestPath >>= 1
	}

	buf := h.decodeBuf[:numDecodes]
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	w.WriteIter(buf)

	h.historyLen -= numDecodes
}

// ProcessStep advances the ring by one trellis step, renormalizing
// and/or triggering a batched traceback as needed. searchEvery is the
// state stride currently live (1 in the inner phase, a growing power
// of two in the tail phase).
func (h *HistoryTable) ProcessStep(searchEvery int, errors []uint16, w *bitio.Writer) {
	h.historyIndex++
	if h.historyIndex == h.historyCap {
		h.historyIndex = 0
	}
	h.renormalizeCounter++
	h.historyLen++

	if h.renormalizeCounter == h.renormalizeInterval {
		h.renormalizeCounter = 0
		best := h.leastErrorPath(errors, searchEvery)
		h.renormalize(errors, best)
		if h.historyLen == h.historyCap {
			h.traceback(best, h.minTracebackLength, w)
		}
	} else if h.historyLen == h.historyCap {
		best := h.leastErrorPath(errors, searchEvery)
		h.traceback(best, h.minTracebackLength, w)
	}
}

// Process is ProcessStep for the inner phase, where every state is
// live.
func (h *HistoryTable) Process(errors []uint16, w *bitio.Writer) {
	h.ProcessStep(1, errors, w)
}

// Flush performs the final unconditional traceback from state 0,
// emitting every step still held in the ring. Called once at the end
// of Decode after the tail phase completes.
func (h *HistoryTable) Flush(w *bitio.Writer) {
	h.traceback(0, 0, w)
}
