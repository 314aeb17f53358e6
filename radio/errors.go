package radio

import "errors"

// Errors returned by the receiver operations.
var (
	// ErrSeekFailed reports a seek that ended on the SFBL status bit: the
	// chip hit the band limit or found no station passing the seek
	// qualifiers. The chip does not distinguish the two cases.
	ErrSeekFailed = errors.New("seek hit the band limit without finding a station")

	// ErrTimeout reports a tune or seek poll that ran out of its deadline
	// before the chip signalled completion, usually because the device is
	// absent or unpowered.
	ErrTimeout = errors.New("timed out waiting for seek/tune complete")
)

// BusError wraps a failed transfer on the two-wire bus. A short transfer
// counts as a failure: the shadow would no longer mirror the hardware.
type BusError struct {
	Op  string // "read" or "write"
	Err error
}

func (e *BusError) Error() string {
	return "si4703 bus " + e.Op + ": " + e.Err.Error()
}

func (e *BusError) Unwrap() error {
	return e.Err
}
