package movie

import (
	"fmt"
	"unsafe"

	"github.com/m64kit/m64/endian"
	"github.com/m64kit/m64/errs"
	"github.com/m64kit/m64/section"
)

// decodeInputs decodes the input record array that follows the header.
// An empty array decodes to nil.
func decodeInputs(data []byte) ([]section.ControllerState, error) {
	if rem := len(data) % section.InputRecordSize; rem != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after %d input records",
			errs.ErrTruncatedInput, rem, len(data)/section.InputRecordSize)
	}

	n := len(data) / section.InputRecordSize
	if n == 0 {
		return nil, nil
	}

	inputs := make([]section.ControllerState, n)

	engine := endian.Movie()
	if endian.MatchesNative(engine) {
		copy(inputBytes(inputs), data)
		return inputs, nil
	}

	for i := range inputs {
		inputs[i] = section.NewControllerState(engine.Uint32(data[i*section.InputRecordSize:]))
	}

	return inputs, nil
}

// appendInputs appends the little-endian encoding of inputs to dst.
func appendInputs(dst []byte, inputs []section.ControllerState) []byte {
	if len(inputs) == 0 {
		return dst
	}

	engine := endian.Movie()
	if endian.MatchesNative(engine) {
		return append(dst, inputBytes(inputs)...)
	}

	for _, in := range inputs {
		dst = engine.AppendUint32(dst, in.Uint32())
	}

	return dst
}

// inputBytes views inputs as raw bytes in host order. It must only be used on
// little-endian hosts, where host order is the file order.
func inputBytes(inputs []section.ControllerState) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(inputs))), len(inputs)*section.InputRecordSize)
}
