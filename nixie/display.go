package nixie

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// DefaultSettle is the pause after each frame write. The tubes latch
// the shifted data when the terminator arrives and need this long
// before they accept another frame.
const DefaultSettle = 100 * time.Millisecond

// Display drives a chain of tubes over a single transport. Tube index
// 0 is the leftmost tube as installed; the wire frame is emitted in
// reverse so the rightmost tube's data shifts down the chain into
// place.
//
// A Display is single-threaded by design: one owner, no internal
// locking, one blocking settle pause per Send.
type Display struct {
	tubes      []*Tube
	brightness int
	red        int
	green      int
	blue       int

	tr     Transport
	clock  clockwork.Clock
	settle time.Duration
	log    zerolog.Logger
	closed bool
}

// Option configures a Display at construction.
type Option func(*Display) error

// WithBrightness applies a default brightness to every tube.
func WithBrightness(v int) Option {
	return func(d *Display) error {
		return d.SetBrightness(v)
	}
}

// WithColor applies a default backlight color to every tube.
func WithColor(r, g, b int) Option {
	return func(d *Display) error {
		if err := d.SetRed(r); err != nil {
			return err
		}
		if err := d.SetGreen(g); err != nil {
			return err
		}
		return d.SetBlue(b)
	}
}

// WithSettle overrides the post-write settle interval.
func WithSettle(s time.Duration) Option {
	return func(d *Display) error {
		if s < 0 {
			return fmt.Errorf("%w: settle interval must not be negative", ErrInvalidArgument)
		}
		d.settle = s
		return nil
	}
}

// WithClock substitutes the clock used for the settle pause.
func WithClock(c clockwork.Clock) Option {
	return func(d *Display) error {
		d.clock = c
		return nil
	}
}

// WithLogger attaches a logger. The default discards everything;
// teardown problems are only visible with one attached.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Display) error {
		d.log = l
		return nil
	}
}

// New builds a Display of count blank tubes writing to t. The
// transport must already be open; the Display owns it from here and
// closes it in Close. Defaults supplied via options pass through the
// bulk setters and are range-checked the same way.
func New(count int, t Transport, opts ...Option) (*Display, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: tube count must be greater than 0, got %d", ErrInvalidArgument, count)
	}
	if t == nil {
		return nil, fmt.Errorf("%w: no transport supplied", ErrTransportUnavailable)
	}

	d := &Display{
		tubes:  make([]*Tube, count),
		tr:     t,
		clock:  clockwork.NewRealClock(),
		settle: DefaultSettle,
		log:    zerolog.Nop(),
	}
	for i := range d.tubes {
		d.tubes[i] = NewTube()
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Len returns the number of tubes in the chain.
func (d *Display) Len() int {
	return len(d.tubes)
}

// Tube returns the i-th tube, leftmost first, for per-tube control.
func (d *Display) Tube(i int) *Tube {
	return d.tubes[i]
}

// SetBrightness sets the PWM level on every tube in the chain.
func (d *Display) SetBrightness(v int) error {
	if d.closed {
		return errClosed()
	}
	if err := checkChannel("brightness", v); err != nil {
		return err
	}
	d.brightness = v
	for _, t := range d.tubes {
		t.brightness = v
	}
	return nil
}

// Brightness returns the display-level brightness.
func (d *Display) Brightness() int {
	return d.brightness
}

// SetRed sets the red backlight value on every tube in the chain.
func (d *Display) SetRed(v int) error {
	if d.closed {
		return errClosed()
	}
	if err := checkChannel("red", v); err != nil {
		return err
	}
	d.red = v
	for _, t := range d.tubes {
		t.red = v
	}
	return nil
}

// Red returns the display-level red value.
func (d *Display) Red() int {
	return d.red
}

// SetGreen sets the green backlight value on every tube in the chain.
func (d *Display) SetGreen(v int) error {
	if d.closed {
		return errClosed()
	}
	if err := checkChannel("green", v); err != nil {
		return err
	}
	d.green = v
	for _, t := range d.tubes {
		t.green = v
	}
	return nil
}

// Green returns the display-level green value.
func (d *Display) Green() int {
	return d.green
}

// SetBlue sets the blue backlight value on every tube in the chain.
func (d *Display) SetBlue(v int) error {
	if d.closed {
		return errClosed()
	}
	if err := checkChannel("blue", v); err != nil {
		return err
	}
	d.blue = v
	for _, t := range d.tubes {
		t.blue = v
	}
	return nil
}

// Blue returns the display-level blue value.
func (d *Display) Blue() int {
	return d.blue
}

// Reset blanks every tube's digit and zeroes brightness and color.
// Decimal points are left as they are; callers using them as a
// persistent colon keep it across resets.
func (d *Display) Reset() error {
	if d.closed {
		return errClosed()
	}
	for _, t := range d.tubes {
		t.digit = Blank
		t.brightness = 0
		t.red = 0
		t.green = 0
		t.blue = 0
	}
	return nil
}

// SetNumber shows a non-negative integer, zero-padded across the whole
// chain. Tube 0 receives the most significant digit. Fails when n is
// negative or has more digits than there are tubes.
func (d *Display) SetNumber(n int) error {
	if d.closed {
		return errClosed()
	}
	if n < 0 {
		return fmt.Errorf("%w: display number must be positive, got %d", ErrInvalidArgument, n)
	}
	s := strconv.Itoa(n)
	if len(s) > len(d.tubes) {
		return fmt.Errorf("%w: not enough tubes to display all digits of %d", ErrOutOfRange, n)
	}
	for len(s) < len(d.tubes) {
		s = "0" + s
	}
	for i, t := range d.tubes {
		t.SetDigit(s[i])
	}
	return nil
}

// Frame assembles the full wire frame for the current state. Fragments
// are emitted last tube first: the first fragment on the wire travels
// furthest down the chain, so by the time the '!' latch terminator
// arrives every tube holds its own data. Pure; calling it twice
// without intervening mutation yields identical bytes.
func (d *Display) Frame() []byte {
	var frame string
	for _, t := range d.tubes {
		frame = "$" + t.CommandString() + frame
	}
	return []byte(frame + "!")
}

// Send flushes the transport, writes the current frame, and pauses for
// the settle interval so the chain latches before the next frame.
// Transport failures surface immediately wrapping ErrTransport; the
// in-memory tube state is never rolled back.
func (d *Display) Send() error {
	if d.closed {
		return errClosed()
	}
	if err := d.tr.Flush(); err != nil {
		return fmt.Errorf("%w: flush: %w", ErrTransport, err)
	}
	frame := d.Frame()
	if _, err := d.tr.Write(frame); err != nil {
		return fmt.Errorf("%w: write frame: %w", ErrTransport, err)
	}
	d.clock.Sleep(d.settle)
	return nil
}

// Close blanks the chain, transmits the cleared frame, and releases
// the transport. Best effort: failures are logged and swallowed, never
// returned. Safe to call more than once; after the first call every
// mutator and Send fails with ErrTransportUnavailable.
func (d *Display) Close() error {
	if d.closed {
		return nil
	}
	if err := d.Reset(); err != nil {
		d.log.Warn().Err(err).Msg("nixie: reset during close")
	}
	if err := d.Send(); err != nil {
		d.log.Warn().Err(err).Msg("nixie: blanking frame during close")
	}
	if err := d.tr.Close(); err != nil {
		d.log.Warn().Err(err).Msg("nixie: transport close")
	}
	d.closed = true
	return nil
}

func errClosed() error {
	return fmt.Errorf("%w: display is closed", ErrTransportUnavailable)
}
