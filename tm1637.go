package tm1637

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// TM1637 command opcodes. Each command is one control byte bracketed
// by a start and a stop condition.
const (
	cmdData    byte = 0x40 // data command: write mode, auto address increment
	cmdAddress byte = 0xC0 // address command: OR with the digit position 0-3
	cmdControl byte = 0x80 // display control command: OR with dispOn and brightness
	dispOn     byte = 0x08 // display-on bit of the control command
)

const (
	// MaxBrightness is the highest brightness level the device supports.
	MaxBrightness = 7

	// Digits is the number of digit registers on the device.
	Digits = 4

	// DecimalPoint is the segment bit for a digit's decimal point. On
	// clock-style modules the point of the second digit drives the
	// colon. OR it into a segment byte to light it.
	DecimalPoint byte = 0x80
)

// The device's minimum timing requirements are in the microsecond
// range; exceeding them is harmless, undershooting corrupts bits.
const defaultDelay = 10 * time.Microsecond

var (
	// ErrBrightness is returned for a brightness level outside 0-7.
	ErrBrightness = errors.New("tm1637: brightness out of range")
	// ErrPosition is returned for a digit position outside 0-3.
	ErrPosition = errors.New("tm1637: position out of range")

	errHalted = errors.New("tm1637: halted")
)

func wrap(err error) error {
	if err == nil || strings.HasPrefix(err.Error(), "tm1637") {
		return err
	}
	return fmt.Errorf("tm1637: %w", err)
}

// Opts is the configuration for the TM1637 display.
type Opts struct {
	// Brightness is the initial brightness level, 0 (dimmest) to 7
	// (brightest).
	Brightness int

	// Delay is the interval between bus line transitions. The default
	// of 10µs leaves a wide margin over the device's minimum timing.
	// Raise it for long or noisy wiring.
	Delay time.Duration
}

// Dev is the device handle for a TM1637 four-digit display.
//
// A Dev owns its clock and data lines exclusively and is not safe for
// concurrent use. Driving the same lines from two Devs is undefined;
// single ownership is the caller's responsibility.
type Dev struct {
	clk gpio.PinOut
	dio gpio.PinOut

	brightness int
	delay      time.Duration
	halted     bool
}

// New creates a TM1637 device driven over the two given output pins.
//
// opts can be nil to use defaults (brightness 7, 10µs delay). The
// display is cleared so its content matches the new device state.
func New(clk, dio gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{Brightness: MaxBrightness}
	}
	if opts.Brightness < 0 || opts.Brightness > MaxBrightness {
		return nil, ErrBrightness
	}
	delay := opts.Delay
	if delay == 0 {
		delay = defaultDelay
	}

	d := &Dev{
		clk:        clk,
		dio:        dio,
		brightness: opts.Brightness,
		delay:      delay,
	}

	// The bus idles with both lines low between transactions.
	if err := clk.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("tm1637: failed to init clk: %w", err)
	}
	if err := dio.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("tm1637: failed to init dio: %w", err)
	}

	if err := d.Clear(); err != nil {
		return nil, err
	}
	return d, nil
}

// Write sets the digit registers starting at pos to the given raw
// segment bytes, without any character encoding. pos must be 0-3; the
// caller must not supply more than Digits-pos bytes, the overflow is
// undefined on real hardware.
//
// Every call is a complete transaction: data command, address and
// payload, display control. The device holds no mode state between
// calls, so all three phases are reissued each time. If a line write
// fails mid-transaction the display content is unspecified; reissue
// the whole operation.
func (d *Dev) Write(segments []byte, pos int) error {
	if d.halted {
		return errHalted
	}
	if pos < 0 || pos >= Digits {
		return ErrPosition
	}
	if err := d.sendData(); err != nil {
		return err
	}
	if err := d.start(); err != nil {
		return err
	}
	if err := d.writeByte(cmdAddress | byte(pos)); err != nil {
		return err
	}
	for _, s := range segments {
		if err := d.writeByte(s); err != nil {
			return err
		}
	}
	if err := d.stop(); err != nil {
		return err
	}
	return d.sendControl()
}

// Brightness returns the current brightness level.
func (d *Dev) Brightness() int {
	return d.brightness
}

// SetBrightness sets the brightness level, 0 (dimmest) to 7, and
// applies it immediately without altering the displayed content.
func (d *Dev) SetBrightness(level int) error {
	if d.halted {
		return errHalted
	}
	if level < 0 || level > MaxBrightness {
		return ErrBrightness
	}
	d.brightness = level
	if err := d.sendData(); err != nil {
		return err
	}
	return d.sendControl()
}

// Show displays up to the first four characters of s. With colon set,
// the colon between the second and third digit is lit when s has at
// least two characters. See EncodeChar for the supported characters.
func (d *Dev) Show(s string, colon bool) error {
	segs, err := EncodeString(s)
	if err != nil {
		return err
	}
	if colon && len(segs) > 1 {
		segs[1] |= DecimalPoint
	}
	if len(segs) > Digits {
		segs = segs[:Digits]
	}
	return d.Write(segs, 0)
}

// Numbers displays n1 and n2 as two zero-padded decimal columns, by
// default with the colon between them lit. Each value is clamped to
// [-9, 99]; a negative single digit renders its minus sign in the
// tens digit.
func (d *Dev) Numbers(n1, n2 int, colon bool) error {
	segs, err := EncodeString(fmt.Sprintf("%02d%02d", clampNumber(n1), clampNumber(n2)))
	if err != nil {
		return err
	}
	if colon {
		segs[1] |= DecimalPoint
	}
	return d.Write(segs, 0)
}

func clampNumber(n int) int {
	if n < -9 {
		return -9
	}
	if n > 99 {
		return 99
	}
	return n
}

// Temperature displays n followed by a °C suffix. Values below -9
// render as "lo", above 99 as "hi".
//
// The numeric part and the suffix are written as two independent
// transactions, so a failure between them leaves the display half
// updated. Merging them into one write has not been validated on
// hardware, so the split is kept.
func (d *Dev) Temperature(n int) error {
	switch {
	case n < -9:
		if err := d.Show("lo", false); err != nil {
			return err
		}
	case n > 99:
		if err := d.Show("hi", false); err != nil {
			return err
		}
	default:
		segs, err := EncodeString(fmt.Sprintf("%2d", n))
		if err != nil {
			return err
		}
		if err := d.Write(segs, 0); err != nil {
			return err
		}
	}
	return d.Write([]byte{segmentTable[38], segmentTable[12]}, 2)
}

// Scroll animates s across the display, entering from the right and
// exiting to the left. It blocks for the whole animation, writing one
// four-digit frame every frameDelay (250ms if frameDelay <= 0). The
// animation runs exactly len(s)+5 frames; calling Scroll again starts
// over from the beginning.
func (d *Dev) Scroll(s string, frameDelay time.Duration) error {
	segs, err := EncodeString(s)
	if err != nil {
		return err
	}
	if frameDelay <= 0 {
		frameDelay = 250 * time.Millisecond
	}

	// Zero padding of one display width on both sides, so the first
	// frame is blank and the text fully exits.
	buf := make([]byte, len(segs)+2*Digits)
	copy(buf[Digits:], segs)

	for i := 0; i < len(segs)+Digits+1; i++ {
		if err := d.Write(buf[i:i+Digits], 0); err != nil {
			return err
		}
		time.Sleep(frameDelay)
	}
	return nil
}

// Clear blanks all four digits.
func (d *Dev) Clear() error {
	return d.Write(make([]byte, Digits), 0)
}

// Halt turns the display off. The Dev does not respond to further
// operations; create a new Dev to drive the display again.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	d.halted = true
	// Control command without the display-on bit.
	if err := d.start(); err != nil {
		return err
	}
	if err := d.writeByte(cmdControl | byte(d.brightness)); err != nil {
		return err
	}
	return d.stop()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("tm1637.Dev{%s, %s}", d.clk.Name(), d.dio.Name())
}

// sendData issues the data command transaction selecting write mode
// with auto address increment.
func (d *Dev) sendData() error {
	if err := d.start(); err != nil {
		return err
	}
	if err := d.writeByte(cmdData); err != nil {
		return err
	}
	return d.stop()
}

// sendControl issues the display control transaction carrying the
// display-on bit and the current brightness.
func (d *Dev) sendControl() error {
	if err := d.start(); err != nil {
		return err
	}
	if err := d.writeByte(cmdControl | dispOn | byte(d.brightness)); err != nil {
		return err
	}
	return d.stop()
}

// start drives the bus start condition: dio falls while clk is high.
func (d *Dev) start() error {
	if err := d.clk.Out(gpio.High); err != nil {
		return wrap(err)
	}
	if err := d.dio.Out(gpio.High); err != nil {
		return wrap(err)
	}
	if err := d.dio.Out(gpio.Low); err != nil {
		return wrap(err)
	}
	return wrap(d.clk.Out(gpio.Low))
}

// stop drives the bus stop condition: dio rises while clk is high,
// leaving both lines high until the next start.
func (d *Dev) stop() error {
	if err := d.clk.Out(gpio.Low); err != nil {
		return wrap(err)
	}
	if err := d.dio.Out(gpio.Low); err != nil {
		return wrap(err)
	}
	if err := d.clk.Out(gpio.High); err != nil {
		return wrap(err)
	}
	return wrap(d.dio.Out(gpio.High))
}

// writeByte shifts b onto the bus least significant bit first, then
// clocks the acknowledgement slot. The protocol is write-only: the
// level the device drives during the slot is never sampled, the slot
// is a fixed-duration clock pulse. A byte is atomic; there is no
// cancellation point inside it, a partial byte would desynchronize
// every following command.
func (d *Dev) writeByte(b byte) error {
	for i := 0; i < 8; i++ {
		if err := d.dio.Out(gpio.Level(b>>uint(i)&1 == 1)); err != nil {
			return wrap(err)
		}
		time.Sleep(d.delay)
		if err := d.clk.Out(gpio.High); err != nil {
			return wrap(err)
		}
		time.Sleep(d.delay)
		if err := d.clk.Out(gpio.Low); err != nil {
			return wrap(err)
		}
		time.Sleep(d.delay)
	}

	// Acknowledgement slot: one extra clock pulse, data untouched.
	if err := d.clk.Out(gpio.Low); err != nil {
		return wrap(err)
	}
	time.Sleep(d.delay)
	if err := d.clk.Out(gpio.High); err != nil {
		return wrap(err)
	}
	time.Sleep(d.delay)
	return wrap(d.clk.Out(gpio.Low))
}

var _ conn.Resource = &Dev{}
