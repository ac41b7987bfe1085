package serialport

// Record is an in-memory transport that captures everything written to
// it. It backs headless tests and nixiectl's dry-run mode, the way a
// fake driver stands in for real hardware.
type Record struct {
	// Frames holds one entry per Write call, in order.
	Frames [][]byte
	// Flushes counts Flush calls.
	Flushes int
	// Closed reports whether Close has been called.
	Closed bool

	// FlushErr, WriteErr and CloseErr, when set, are returned by the
	// corresponding method instead of succeeding.
	FlushErr error
	WriteErr error
	CloseErr error
}

func (r *Record) Flush() error {
	if r.FlushErr != nil {
		return r.FlushErr
	}
	r.Flushes++
	return nil
}

func (r *Record) Write(b []byte) (int, error) {
	if r.WriteErr != nil {
		return 0, r.WriteErr
	}
	frame := make([]byte, len(b))
	copy(frame, b)
	r.Frames = append(r.Frames, frame)
	return len(b), nil
}

func (r *Record) Close() error {
	if r.CloseErr != nil {
		return r.CloseErr
	}
	r.Closed = true
	return nil
}

// Last returns the most recent frame, or nil if nothing was written.
func (r *Record) Last() []byte {
	if len(r.Frames) == 0 {
		return nil
	}
	return r.Frames[len(r.Frames)-1]
}
