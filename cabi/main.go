// Command cabi builds the cgo-exported C ABI for this package's
// convolutional encoder/decoder. It is not an executable in its own
// right — it exists to be compiled with -buildmode=c-shared or
// -buildmode=c-archive:
//
//	go build -buildmode=c-shared -o libfec.so ./cabi
//
// which produces libfec.so (or .a) plus a generated libfec.h
// declaring the symbols below.
//
// Every exported function takes or returns an opaque handle* obtained
// from correct_convolutional_create. Callers must treat it as
// opaque, pass it back unmodified, and release it exactly once via
// correct_convolutional_destroy. A handle is not safe for concurrent
// use: see the package-level concurrency note in the root fec
// package.
package main

/*
#include <stddef.h>
#include <stdint.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	fec "github.com/quietmodem/gofec"
)

// convolutional bundles one encoder and one decoder built from the
// same (rate, order, polys) triple, matching the native API's single
// create call producing both directions.
type convolutional struct {
	encoder *fec.Encoder
	decoder *fec.Decoder
}

func handleOf(conv unsafe.Pointer) cgo.Handle {
	return cgo.Handle(uintptr(conv))
}

func lookup(conv unsafe.Pointer) *convolutional {
	return handleOf(conv).Value().(*convolutional)
}

// correct_convolutional_create builds an encoder and decoder sharing
// the given rate, constraint length, and generator polynomials, and
// returns an opaque handle to both. Returns NULL if the parameters
// are invalid.
//
//export correct_convolutional_create
func correct_convolutional_create(rate, order C.size_t, polys *C.uint16_t) unsafe.Pointer {
	// rate doubles as the length of the polys array; range-check it
	// before trusting it as a slice bound.
	if rate < 2 || rate > 6 {
		return nil
	}
	n := int(rate)
	goPolys := make([]uint16, n)
	src := unsafe.Slice((*uint16)(unsafe.Pointer(polys)), n)
	copy(goPolys, src)

	enc, err := fec.NewEncoder(int(rate), int(order), goPolys)
	if err != nil {
		return nil
	}
	dec, err := fec.NewDecoder(int(rate), int(order), goPolys)
	if err != nil {
		return nil
	}

	h := cgo.NewHandle(&convolutional{encoder: enc, decoder: dec})
	return unsafe.Pointer(h)
}

// correct_convolutional_destroy releases a handle obtained from
// correct_convolutional_create. Using the handle afterward is
// undefined, matching the native API's Box::from_raw drop semantics.
//
//export correct_convolutional_destroy
func correct_convolutional_destroy(conv unsafe.Pointer) {
	handleOf(conv).Delete()
}

// correct_convolutional_encode_len returns the number of output bits
// Encode would produce for a msg_len-byte message.
//
//export correct_convolutional_encode_len
func correct_convolutional_encode_len(conv unsafe.Pointer, msgLen C.size_t) C.size_t {
	c := lookup(conv)
	return C.size_t(c.encoder.EncodeLen(int(msgLen)))
}

// correct_convolutional_encode encodes msg into encoded and returns
// the bit count encode_len would report. The caller must size
// encoded at encode_len(msg_len)/8 + 1 bytes.
//
//export correct_convolutional_encode
func correct_convolutional_encode(conv unsafe.Pointer, msg *C.uint8_t, msgLen C.size_t, encoded *C.uint8_t) C.size_t {
	c := lookup(conv)
	n := int(msgLen)

	var msgSlice []byte
	if n > 0 {
		msgSlice = unsafe.Slice((*byte)(unsafe.Pointer(msg)), n)
	}

	encodedLen := c.encoder.EncodeLen(n)/8 + 1
	encodedSlice := unsafe.Slice((*byte)(unsafe.Pointer(encoded)), encodedLen)

	// encodedSlice is sized to the contract above, so Encode cannot
	// reject it.
	bits, _ := c.encoder.Encode(msgSlice, encodedSlice)
	return C.size_t(bits)
}

// correct_convolutional_decode decodes num_encoded_bits hard bits
// from encoded into msg, returning the decoded byte count, or -1 if
// num_encoded_bits is not a multiple of the code's rate or is too
// short to decode. The caller must size both encoded and msg at
// num_encoded_bits/8 + 1 bytes.
//
//export correct_convolutional_decode
func correct_convolutional_decode(conv unsafe.Pointer, encoded *C.uint8_t, numEncodedBits C.size_t, msg *C.uint8_t) C.ssize_t {
	c := lookup(conv)

	bufLen := int(numEncodedBits)/8 + 1
	encodedSlice := unsafe.Slice((*byte)(unsafe.Pointer(encoded)), bufLen)
	msgSlice := unsafe.Slice((*byte)(unsafe.Pointer(msg)), bufLen)

	n, err := c.decoder.Decode(encodedSlice, int(numEncodedBits), msgSlice)
	if err != nil {
		return -1
	}
	return C.ssize_t(n)
}

// correct_convolutional_decode_soft is an unimplemented placeholder
// matching the native API, which ships the same always-0 stub.
//
//export correct_convolutional_decode_soft
func correct_convolutional_decode_soft(conv unsafe.Pointer, soft *C.uint8_t, numEncodedBits C.size_t, msg *C.uint8_t) C.ssize_t {
	return 0
}

func main() {}
