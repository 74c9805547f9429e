package bitio

import "testing"

func TestWriterWriteFlush(t *testing.T) {
	tests := []struct {
		name string
		vals []byte
		bits []int
		want []byte
	}{
		{"single_byte_msb_first", []byte{0x01}, []int{8}, []byte{0x80}},
		{"two_nibbles", []byte{0x0f, 0x00}, []int{4, 4}, []byte{0xf0}},
		{"three_bits_then_pad", []byte{0b101}, []int{3}, []byte{0b10100000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, len(tt.want))
			w := NewWriter(buf)
			for i, v := range tt.vals {
				w.Write(v, tt.bits[i])
			}
			w.Flush()
			for i, b := range tt.want {
				if buf[i] != b {
					t.Errorf("buf[%d] = %#08b, want %#08b", i, buf[i], b)
				}
			}
		})
	}
}

func TestWriterLenExcludesPendingByte(t *testing.T) {
	buf := make([]byte, 4)
	w := NewWriter(buf)
	w.Write(0x3, 2)
	if got := w.Len(); got != 0 {
		t.Fatalf("Len() = %d before any full byte, want 0", got)
	}
	w.Write(0x3f, 6)
	if got := w.Len(); got != 1 {
		t.Fatalf("Len() = %d after one full byte, want 1", got)
	}
	w.Flush()
	if got := w.Len(); got != 1 {
		t.Fatalf("Len() after Flush() with nothing pending = %d, want 1", got)
	}
}

func TestWriterWriteIterMSBFirst(t *testing.T) {
	buf := make([]byte, 1)
	w := NewWriter(buf)
	w.WriteIter([]byte{1, 0, 1, 1, 0, 0, 1, 0})
	if buf[0] != 0b10110010 {
		t.Fatalf("buf[0] = %#08b, want %#08b", buf[0], byte(0b10110010))
	}
}
