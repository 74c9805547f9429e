package convolutional

// PairTable interns the per-ancestor-state output pairing the ACS
// kernel relies on: a register value i in [0, S/2) has exactly two
// possible transitions (new bit 0 or 1), whose outputs are the
// adjacent poly_table entries poly_table[2i] and poly_table[2i+1].
// Packing them into one 32-bit key and interning repeats lets the
// decoder look up both branch metrics with a single table probe.
type PairTable struct {
	// Keys[i] indexes into Outputs for ancestor state i.
	Keys []uint32
	// Outputs holds the deduplicated (hi<<rate)|lo packed register
	// outputs, one entry per distinct pairing observed while scanning
	// the polynomial table.
	Outputs []uint32

	distances []uint32
	mask      uint32
	width     uint
}

// BuildPairTable scans polyTable two entries at a time and interns
// each distinct (lo, hi) output pairing.
func BuildPairTable(rate int, polyTable []uint16) *PairTable {
	numPairs := len(polyTable) / 2
	keys := make([]uint32, numPairs)
	outputs := make([]uint32, 0, numPairs)
	seen := make(map[uint32]uint32, numPairs)

	for i := 0; i < numPairs; i++ {
		lo := uint32(polyTable[2*i])
		hi := uint32(polyTable[2*i+1])
		output := (hi << uint(rate)) | lo

		key, ok := seen[output]
		if !ok {
			key = uint32(len(outputs))
			outputs = append(outputs, output)
			seen[output] = key
		}
		keys[i] = key
	}

	return &PairTable{
		Keys:      keys,
		Outputs:   outputs,
		distances: make([]uint32, len(outputs)),
		mask:      uint32(1<<uint(rate)) - 1,
		width:     uint(rate),
	}
}

// Distances recomputes the packed pair distance for every interned
// output from the current per-symbol branch metrics and returns the
// reused result slice: low 16 bits are the bit-0 branch metric, high
// 16 bits the bit-1 branch metric.
func (p *PairTable) Distances(branch []uint16) []uint32 {
	for i, output := range p.Outputs {
		lo := output & p.mask
		hi := output >> p.width
		p.distances[i] = (uint32(branch[hi]) << 16) | uint32(branch[lo])
	}
	return p.distances
}
