package encoder

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"gobot.io/x/gobot"
	"gobot.io/x/gobot/gobottest"
)

var _ gobot.Driver = (*RotaryDriver)(nil)

// encoderTestAdaptor replays a scripted level sequence per pin; once a
// script runs out its last level holds. Unscripted pins read idle high.
type encoderTestAdaptor struct {
	name    string
	mtx     sync.Mutex
	scripts map[string][]int
	idx     map[string]int
	readErr error
}

func newEncoderTestAdaptor() *encoderTestAdaptor {
	return &encoderTestAdaptor{
		scripts: map[string][]int{},
		idx:     map[string]int{},
	}
}

func (a *encoderTestAdaptor) DigitalRead(pin string) (int, error) {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	if a.readErr != nil {
		return 0, a.readErr
	}

	script := a.scripts[pin]
	if len(script) == 0 {
		return 1, nil
	}

	i := a.idx[pin]
	if i >= len(script) {
		return script[len(script)-1], nil
	}
	a.idx[pin] = i + 1
	return script[i], nil
}

func (a *encoderTestAdaptor) Name() string          { return a.name }
func (a *encoderTestAdaptor) SetName(n string)      { a.name = n }
func (a *encoderTestAdaptor) Connect() (err error)  { return }
func (a *encoderTestAdaptor) Finalize() (err error) { return }

func initTestRotaryDriver() (*RotaryDriver, *encoderTestAdaptor) {
	a := newEncoderTestAdaptor()
	return NewRotaryDriver(a, "11", "13", "15", time.Millisecond), a
}

func TestNewRotaryDriver(t *testing.T) {
	a := newEncoderTestAdaptor()
	var di interface{} = NewRotaryDriver(a, "11", "13", "15")

	d, ok := di.(*RotaryDriver)
	if !ok {
		t.Errorf("NewRotaryDriver() should have returned a *RotaryDriver")
	}
	gobottest.Assert(t, strings.HasPrefix(d.Name(), "Rotary"), true)
	gobottest.Assert(t, d.interval, 5*time.Millisecond)

	clk, dt, sw := d.Pins()
	gobottest.Assert(t, clk, "11")
	gobottest.Assert(t, dt, "13")
	gobottest.Assert(t, sw, "15")

	d.SetName("knob")
	gobottest.Assert(t, d.Name(), "knob")
}

func TestRotaryDriverClockwise(t *testing.T) {
	d, a := initTestRotaryDriver()

	// one full CW cycle: (CLK,DT) 11 -> 01 -> 00 -> 10 -> 11; the first
	// pair feeds the idle read in Start
	a.scripts["11"] = []int{1, 0, 0, 1, 1}
	a.scripts["13"] = []int{1, 1, 0, 0, 1}

	sem := make(chan interface{})
	_ = d.On(Clockwise, func(data interface{}) {
		sem <- data
	})

	gobottest.Assert(t, d.Start(), nil)
	defer func() { _ = d.Halt() }()

	select {
	case data := <-sem:
		gobottest.Assert(t, data, 1)
	case <-time.After(100 * time.Millisecond):
		t.Errorf("Clockwise event was not published")
	}
}

func TestRotaryDriverCounterclockwise(t *testing.T) {
	d, a := initTestRotaryDriver()

	// the mirror cycle: 11 -> 10 -> 00 -> 01 -> 11
	a.scripts["11"] = []int{1, 1, 0, 0, 1}
	a.scripts["13"] = []int{1, 0, 0, 1, 1}

	sem := make(chan interface{})
	_ = d.On(Counterclockwise, func(data interface{}) {
		sem <- data
	})

	gobottest.Assert(t, d.Start(), nil)
	defer func() { _ = d.Halt() }()

	select {
	case data := <-sem:
		gobottest.Assert(t, data, 1)
	case <-time.After(100 * time.Millisecond):
		t.Errorf("Counterclockwise event was not published")
	}
}

func TestRotaryDriverHalfCycleDoesNotClick(t *testing.T) {
	d, a := initTestRotaryDriver()

	// contact bounce: two steps in, two steps back, no detent crossed
	a.scripts["11"] = []int{1, 0, 0, 0, 1}
	a.scripts["13"] = []int{1, 1, 0, 1, 1}

	sem := make(chan interface{})
	_ = d.On(Clockwise, func(data interface{}) {
		sem <- data
	})
	_ = d.On(Counterclockwise, func(data interface{}) {
		sem <- data
	})

	gobottest.Assert(t, d.Start(), nil)
	defer func() { _ = d.Halt() }()

	select {
	case <-sem:
		t.Errorf("a half cycle must not publish a rotation event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRotaryDriverPushRelease(t *testing.T) {
	d, a := initTestRotaryDriver()

	// the switch line is active low
	a.scripts["15"] = []int{1, 0, 0, 1}

	push := make(chan interface{})
	release := make(chan interface{})
	_ = d.On(Push, func(data interface{}) {
		push <- data
	})
	_ = d.On(Release, func(data interface{}) {
		release <- data
	})

	gobottest.Assert(t, d.Start(), nil)
	defer func() { _ = d.Halt() }()

	select {
	case data := <-push:
		gobottest.Assert(t, data, 0)
	case <-time.After(100 * time.Millisecond):
		t.Errorf("Push event was not published")
	}

	select {
	case data := <-release:
		gobottest.Assert(t, data, 1)
	case <-time.After(100 * time.Millisecond):
		t.Errorf("Release event was not published")
	}
}

func TestRotaryDriverError(t *testing.T) {
	d, a := initTestRotaryDriver()
	a.readErr = errors.New("read error")

	sem := make(chan interface{})
	_ = d.On(Error, func(data interface{}) {
		select {
		case sem <- data:
		default:
		}
	})

	gobottest.Assert(t, d.Start(), nil)
	defer func() { _ = d.Halt() }()

	select {
	case data := <-sem:
		gobottest.Assert(t, data, a.readErr)
	case <-time.After(100 * time.Millisecond):
		t.Errorf("Error event was not published")
	}
}

func TestRotaryDriverHalt(t *testing.T) {
	d, _ := initTestRotaryDriver()
	gobottest.Assert(t, d.Start(), nil)
	gobottest.Assert(t, d.Halt(), nil)
}
