package radio

import (
	"errors"
	"fmt"
	"sync"

	"gobot.io/x/gobot/drivers/i2c"
	"gobot.io/x/gobot/sysfs"
)

// I2CTestAdaptor is useful to implement tests for
// passing i2c messages back and forth. It records the digital pin
// operations so the bus mode forcing sequence can be checked.
type I2CTestAdaptor struct {
	name          string
	written       []byte
	lastWritten   []byte
	pinOps        []string
	mtx           sync.Mutex
	i2cConnectErr bool
	i2cReadImpl   func(*I2CTestAdaptor, []byte) (int, error)
	i2cWriteImpl  func(*I2CTestAdaptor, []byte) (int, error)
}

func (t *I2CTestAdaptor) DigitalWrite(pin string, val byte) (err error) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.pinOps = append(t.pinOps, fmt.Sprintf("%s:w:%d", pin, val))
	return nil
}

// testDigitalPin records the sysfs pin operations done through it into
// the adaptor's pin operation log.
type testDigitalPin struct {
	pin     string
	adaptor *I2CTestAdaptor
}

func (p *testDigitalPin) record(op string) {
	p.adaptor.mtx.Lock()
	defer p.adaptor.mtx.Unlock()
	p.adaptor.pinOps = append(p.adaptor.pinOps, p.pin+":"+op)
}

func (p *testDigitalPin) Export() error {
	p.record("export")
	return nil
}

func (p *testDigitalPin) Unexport() error {
	p.record("unexport")
	return nil
}

func (p *testDigitalPin) Direction(dir string) error {
	p.record("dir:" + dir)
	return nil
}

func (p *testDigitalPin) Write(val int) error {
	p.record(fmt.Sprintf("w:%d", val))
	return nil
}

func (p *testDigitalPin) Read() (int, error) {
	return 0, nil
}

func (t *I2CTestAdaptor) DigitalPin(pin string, dir string) (sysfs.DigitalPinner, error) {
	p := &testDigitalPin{pin: pin, adaptor: t}
	if err := p.Direction(dir); err != nil {
		return nil, err
	}
	return p, nil
}

func (t *I2CTestAdaptor) Read(b []byte) (count int, err error) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.i2cReadImpl(t, b)
}

func (t *I2CTestAdaptor) Write(b []byte) (count int, err error) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.written = append(t.written, b...)
	return t.i2cWriteImpl(t, b)
}

func (t *I2CTestAdaptor) Close() error {
	return nil
}

func (t *I2CTestAdaptor) ReadByte() (val byte, err error) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	bytes := []byte{0}
	bytesRead, err := t.i2cReadImpl(t, bytes)
	if err != nil {
		return 0, err
	}
	if bytesRead != 1 {
		return 0, fmt.Errorf("buffer underrun")
	}
	val = bytes[0]
	return
}

func (t *I2CTestAdaptor) ReadByteData( /* reg */ uint8) (val uint8, err error) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	bytes := []byte{0}
	bytesRead, err := t.i2cReadImpl(t, bytes)
	if err != nil {
		return 0, err
	}
	if bytesRead != 1 {
		return 0, fmt.Errorf("buffer underrun")
	}
	val = bytes[0]
	return
}

func (t *I2CTestAdaptor) ReadWordData( /* reg */ uint8) (val uint16, err error) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	bytes := []byte{0, 0}
	bytesRead, err := t.i2cReadImpl(t, bytes)
	if err != nil {
		return 0, err
	}
	if bytesRead != 2 {
		return 0, fmt.Errorf("buffer underrun")
	}
	l, h := bytes[0], bytes[1]
	return (uint16(h) << 8) | uint16(l), err
}

func (t *I2CTestAdaptor) WriteByte(val byte) (err error) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.written = append(t.written, val)
	bytes := []byte{val}
	_, err = t.i2cWriteImpl(t, bytes)
	return
}

func (t *I2CTestAdaptor) WriteByteData(reg uint8, val uint8) (err error) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.written = append(t.written, reg)
	t.written = append(t.written, val)
	bytes := []byte{val}
	_, err = t.i2cWriteImpl(t, bytes)
	return
}

func (t *I2CTestAdaptor) WriteWordData(reg uint8, val uint16) (err error) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.written = append(t.written, reg)
	l := uint8(val & 0xff)
	h := uint8((val >> 8) & 0xff)
	t.written = append(t.written, l)
	t.written = append(t.written, h)
	bytes := []byte{l, h}
	_, err = t.i2cWriteImpl(t, bytes)
	return
}

func (t *I2CTestAdaptor) WriteBlockData(reg uint8, b []byte) (err error) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.written = append(t.written, reg)
	t.written = append(t.written, b...)
	_, err = t.i2cWriteImpl(t, b)
	return
}

func (t *I2CTestAdaptor) GetConnection( /* address */ int, /* bus */ int) (connection i2c.Connection, err error) {
	if t.i2cConnectErr {
		return nil, errors.New("invalid i2c connection")
	}
	return t, nil
}

func (t *I2CTestAdaptor) GetDefaultBus() int {
	return 0
}

func (t *I2CTestAdaptor) Name() string          { return t.name }
func (t *I2CTestAdaptor) SetName(n string)      { t.name = n }
func (t *I2CTestAdaptor) Connect() (err error)  { return }
func (t *I2CTestAdaptor) Finalize() (err error) { return }

// i2cOnlyConnector satisfies i2c.Connector without any digital pin
// capability, for exercising the bus init assertions.
type i2cOnlyConnector struct{}

func (c *i2cOnlyConnector) GetConnection( /* address */ int, /* bus */ int) (i2c.Connection, error) {
	return nil, errors.New("no connection")
}

func (c *i2cOnlyConnector) GetDefaultBus() int { return 0 }
