package nixie

import "errors"

// Sentinel errors for the driver. Wrapped values carry field/cause
// context; match with errors.Is.
var (
	// ErrInvalidArgument reports a value that violates a precondition,
	// such as a negative tube count or display number.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange reports a numeric value outside its legal bound.
	ErrOutOfRange = errors.New("out of range")

	// ErrTransportUnavailable reports a missing transport, or use of a
	// display after Close.
	ErrTransportUnavailable = errors.New("transport unavailable")

	// ErrTransport reports an I/O failure while flushing or writing a
	// frame. The underlying cause is wrapped alongside it.
	ErrTransport = errors.New("transport failure")
)
