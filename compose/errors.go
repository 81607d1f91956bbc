package compose

import "fmt"

// IndexBase marks a DecodeError caused by the base plate rather than a
// layer.
const IndexBase = -1

// DecodeError reports an undecodable base plate or layer image.
type DecodeError struct {
	// Index is IndexBase for the base plate, otherwise the zero-based
	// position of the layer in stacking order.
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Index == IndexBase {
		return fmt.Sprintf("compose: decode base image: %v", e.Err)
	}
	return fmt.Sprintf("compose: decode layer %d: %v", e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a failure encoding the final canvas.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("compose: encode composite: %v", e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
