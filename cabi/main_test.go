package main

/*
#include <stddef.h>
#include <stdint.h>
*/
import "C"

import (
	"testing"
	"unsafe"
)

// TestCreateEncodeDecodeRoundTrip drives the exported C entry points
// directly (bypassing an actual C caller) to check the handle-based
// create/encode/decode/destroy lifecycle round-trips a message.
func TestCreateEncodeDecodeRoundTrip(t *testing.T) {
	polys := []uint16{0o155, 0o117} // R=2, K=7
	handle := correct_convolutional_create(2, 7, (*C.uint16_t)(unsafe.Pointer(&polys[0])))
	if handle == nil {
		t.Fatal("correct_convolutional_create returned nil for valid parameters")
	}
	defer correct_convolutional_destroy(handle)

	msg := []byte{0x5A, 0xC3}
	bits := correct_convolutional_encode_len(handle, C.size_t(len(msg)))
	if bits == 0 {
		t.Fatal("encode_len returned 0")
	}

	encoded := make([]byte, int(bits)/8+1)
	gotBits := correct_convolutional_encode(handle, (*C.uint8_t)(unsafe.Pointer(&msg[0])), C.size_t(len(msg)), (*C.uint8_t)(unsafe.Pointer(&encoded[0])))
	if gotBits != bits {
		t.Fatalf("encode returned %d bits, want %d", gotBits, bits)
	}

	decoded := make([]byte, int(bits)/8+1)
	n := correct_convolutional_decode(handle, (*C.uint8_t)(unsafe.Pointer(&encoded[0])), C.size_t(bits), (*C.uint8_t)(unsafe.Pointer(&decoded[0])))
	if int(n) < len(msg) {
		t.Fatalf("decode returned %d bytes, want at least %d", n, len(msg))
	}
	if decoded[0] != msg[0] || decoded[1] != msg[1] {
		t.Fatalf("decoded = %x, want %x", decoded[:2], msg)
	}
}

// TestCreateRejectsInvalidRate checks an out-of-range rate yields a
// nil handle instead of a panic, matching the façade's only
// documented failure mode.
func TestCreateRejectsInvalidRate(t *testing.T) {
	polys := []uint16{0o155}
	handle := correct_convolutional_create(99, 7, (*C.uint16_t)(unsafe.Pointer(&polys[0])))
	if handle != nil {
		correct_convolutional_destroy(handle)
		t.Fatal("correct_convolutional_create accepted an out-of-range rate")
	}
}

// TestDecodeSoftIsUnimplementedStub checks the documented always-0
// placeholder behavior.
func TestDecodeSoftIsUnimplementedStub(t *testing.T) {
	polys := []uint16{0o155, 0o117}
	handle := correct_convolutional_create(2, 7, (*C.uint16_t)(unsafe.Pointer(&polys[0])))
	if handle == nil {
		t.Fatal("correct_convolutional_create returned nil for valid parameters")
	}
	defer correct_convolutional_destroy(handle)

	soft := make([]byte, 8)
	msg := make([]byte, 8)
	got := correct_convolutional_decode_soft(handle, (*C.uint8_t)(unsafe.Pointer(&soft[0])), C.size_t(8), (*C.uint8_t)(unsafe.Pointer(&msg[0])))
	if got != 0 {
		t.Fatalf("decode_soft = %d, want 0 (unimplemented)", got)
	}
}
