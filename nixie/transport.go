package nixie

// Transport is the byte channel a Display writes frames to. The
// serialport package provides the real implementation along with an
// in-memory Record for tests and dry runs.
type Transport interface {
	// Flush discards any buffered inbound and outbound data.
	Flush() error
	// Write delivers raw frame bytes to the device.
	Write(p []byte) (int, error)
	// Close releases the channel.
	Close() error
}
