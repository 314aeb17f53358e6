// Package encoder reads a KY-040 style rotary encoder: two quadrature
// lines plus a push switch, polled through a gpio.DigitalReader.
package encoder

import (
	"time"

	"gobot.io/x/gobot"
	"gobot.io/x/gobot/drivers/gpio"
)

const (
	// Clockwise event
	Clockwise = "clockwise"

	// Counterclockwise event
	Counterclockwise = "counterclockwise"

	// Push event
	Push = "push"

	// Release event
	Release = "release"

	// Error event
	Error = "error"
)

// qdec maps a pair of quadrature states (previous<<2 | current, each
// state being CLK<<1 | DT) to a step delta. Transitions where both lines
// flipped within one poll are undecodable and count as zero.
var qdec = [16]int8{0, -1, 1, 0, 1, 0, 0, -1, -1, 0, 0, 1, 0, 1, -1, 0}

// RotaryDriver represents a rotary encoder with a push switch
type RotaryDriver struct {
	name     string
	clkPin   string
	dtPin    string
	swPin    string
	interval time.Duration
	halt     chan bool

	connection gpio.DigitalReader
	gobot.Eventer
}

// NewRotaryDriver returns a new RotaryDriver given a DigitalReader and
// the CLK, DT and SW pins, polling every 5 milliseconds.
//
// Optionally accepts:
//
//	time.Duration: interval at which the encoder is polled for new information
func NewRotaryDriver(a gpio.DigitalReader, clkPin, dtPin, swPin string, v ...time.Duration) *RotaryDriver {
	d := &RotaryDriver{
		name:       gobot.DefaultName("Rotary"),
		connection: a,
		clkPin:     clkPin,
		dtPin:      dtPin,
		swPin:      swPin,
		Eventer:    gobot.NewEventer(),
		interval:   5 * time.Millisecond,
		halt:       make(chan bool),
	}

	if len(v) > 0 {
		d.interval = v[0]
	}

	d.AddEvent(Clockwise)
	d.AddEvent(Counterclockwise)
	d.AddEvent(Push)
	d.AddEvent(Release)
	d.AddEvent(Error)

	return d
}

// Start polls the encoder lines. One full quadrature cycle publishes one
// Clockwise or Counterclockwise event carrying the detent count; the
// switch publishes Push and Release on its edges.
//
// Emits the Events:
//
//	Clockwise int - On a turn towards the next channel
//	Counterclockwise int - On a turn towards the previous channel
//	Push int - On switch press (the line is active low)
//	Release int - On switch release
//	Error error - On a read error
func (d *RotaryDriver) Start() (err error) {
	state := 0b11 // both lines rest high on a detent
	if s, e := d.readQuadrature(); e == nil {
		state = s
	}
	swState := 1
	steps := 0

	go func() {
		for {
			if current, e := d.readQuadrature(); e != nil {
				d.Publish(Error, e)
			} else if current != state {
				steps += int(qdec[state<<2|current])
				state = current

				// back on a detent, a full cycle is four steps
				if state == 0b11 {
					switch {
					case steps >= 4:
						d.Publish(Clockwise, steps/4)
					case steps <= -4:
						d.Publish(Counterclockwise, -steps/4)
					}
					steps = 0
				}
			}

			if sw, e := d.connection.DigitalRead(d.swPin); e != nil {
				d.Publish(Error, e)
			} else if sw != swState {
				swState = sw
				if sw == 0 {
					d.Publish(Push, sw)
				} else {
					d.Publish(Release, sw)
				}
			}

			select {
			case <-time.After(d.interval):
			case <-d.halt:
				return
			}
		}
	}()
	return
}

// Halt stops polling the encoder for new information
func (d *RotaryDriver) Halt() (err error) {
	d.halt <- true
	return
}

// Name returns the RotaryDrivers name
func (d *RotaryDriver) Name() string { return d.name }

// SetName sets the RotaryDrivers name
func (d *RotaryDriver) SetName(n string) { d.name = n }

// Pins returns the CLK, DT and SW pins
func (d *RotaryDriver) Pins() (clk, dt, sw string) {
	return d.clkPin, d.dtPin, d.swPin
}

// Connection returns the RotaryDrivers Connection
func (d *RotaryDriver) Connection() gobot.Connection {
	return d.connection.(gobot.Connection)
}

func (d *RotaryDriver) readQuadrature() (int, error) {
	clk, err := d.connection.DigitalRead(d.clkPin)
	if err != nil {
		return 0, err
	}
	dt, err := d.connection.DigitalRead(d.dtPin)
	if err != nil {
		return 0, err
	}
	return clk<<1 | dt, nil
}
