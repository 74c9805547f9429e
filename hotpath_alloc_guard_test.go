package fec

import "testing"

// TestHotPathAllocsEncode guards the "no allocation in the hot path"
// requirement (all tables sized at construction): repeated
// Encode calls on pre-sized buffers must not allocate.
func TestHotPathAllocsEncode(t *testing.T) {
	enc, err := NewEncoder(2, 7, []uint16{0o161, 0o127})
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	msg := make([]byte, 64)
	dst := make([]byte, enc.EncodeLen(len(msg))/8+1)

	allocs := testing.AllocsPerRun(50, func() {
		enc.Encode(msg, dst)
	})
	if allocs != 0 {
		t.Errorf("Encode allocated %.1f times per run, want 0", allocs)
	}
}

// TestHotPathAllocsDecode guards the same property for Decode: the
// path metrics and survivor history are allocated once at
// NewDecoder and only reset, not reallocated, by subsequent calls.
func TestHotPathAllocsDecode(t *testing.T) {
	enc, err := NewEncoder(2, 7, []uint16{0o161, 0o127})
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	dec, err := NewDecoder(2, 7, []uint16{0o161, 0o127})
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}

	msg := make([]byte, 64)
	bits := enc.EncodeLen(len(msg))
	encoded := make([]byte, bits/8+1)
	enc.Encode(msg, encoded)
	decoded := make([]byte, bits/2/8+1)

	allocs := testing.AllocsPerRun(50, func() {
		dec.Decode(encoded, bits, decoded)
	})
	if allocs != 0 {
		t.Errorf("Decode allocated %.1f times per run, want 0", allocs)
	}
}
