// Package radio implements the driver for the Si4703 FM radio receiver,
// as found on SparkFun's breakout and tuner evaluation boards. You can
// learn more about the hardware here:
// https://www.sparkfun.com/products/12938
//
// The main implementation is under the Si4703Driver and it requires
// some additional configuration via the Si4703Config structure.
//
// The original drivers were written in C++ for Arduino class boards and
// can be found at the following address:
//     - https://github.com/sparkfun/Si4703_FM_Tuner_Evaluation_Board (MIT License)
//
// To read about the specifications of the receiver, read the following documents:
// https://www.silabs.com/documents/public/data-sheets/Si4702-03-C19.pdf
// https://www.silabs.com/documents/public/application-notes/AN230.pdf
package radio

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"gobot.io/x/gobot"
	"gobot.io/x/gobot/drivers/gpio"
	"gobot.io/x/gobot/drivers/i2c"
	"gobot.io/x/gobot/sysfs"
)

const (
	low  = 0x0
	high = 0x1
)

// Poll pacing defaults.
//
//goland:noinspection GoUnnecessarilyExportedIdentifiers
const (
	// DefaultPollInterval paces the tune completion polls.
	DefaultPollInterval = 10 * time.Millisecond

	// DefaultPollTimeout bounds every seek/tune completion wait. A seek
	// across the whole band at roughly 60 ms per channel still finishes
	// well inside it; only an absent or wedged chip runs into it.
	DefaultPollTimeout = 15 * time.Second
)

const (
	// seekPollInterval paces the seek completion polls so the status
	// traffic does not saturate the bus while the chip walks the band.
	seekPollInterval = 40 * time.Millisecond

	// Datasheet settle times for the power sequencing and the two-wire
	// mode latch.
	oscSettleTime       = 500 * time.Millisecond
	powerSettleTime     = 110 * time.Millisecond
	powerDownSettleTime = 2 * time.Millisecond
	busModeSettleTime   = time.Millisecond
)

// Si4703Driver holds the implementation to talk to the SparkFun
// Si4703 FM Radio Receiver breakout.
//
//goland:noinspection GoUnnecessarilyExportedIdentifiers
type Si4703Driver struct {
	resetPin string
	sdioPin  string
	sclkPin  string
	intPin   string

	i2cAddr      int
	conn         i2c.Connection
	i2cConnector i2c.Connector
	i2c.Config

	debugMode bool
	debugLog  func(format string, v ...interface{})
	log       func(format string, v ...interface{})

	name string

	band       uint8
	space      uint8
	deEmphasis uint8

	seekMode      uint8
	seekThreshold uint8
	seekImpulse   uint8
	seekSNR       uint8
	agcDisable    bool

	bandStart   int
	bandEnd     int
	bandSpacing int

	pollInterval time.Duration
	pollTimeout  time.Duration

	oscSettle       time.Duration
	powerSettle     time.Duration
	powerDownSettle time.Duration

	regs shadow
}

// Name of our device.
func (s *Si4703Driver) Name() string {
	return s.name
}

// SetName set the name of our device.
func (s *Si4703Driver) SetName(name string) {
	s.name = name
}

// Start the device work: force the bus into two-wire mode, open the
// connection, run the power-up sequence and apply the configured band,
// seek and audio defaults.
func (s *Si4703Driver) Start() error {
	if err := s.busInit(); err != nil {
		return err
	}

	bus := s.GetBusOrDefault(s.i2cConnector.GetDefaultBus())
	var err error
	s.conn, err = s.i2cConnector.GetConnection(s.i2cAddr, bus)
	if err != nil {
		return err
	}

	if err = s.PowerUp(); err != nil {
		return err
	}

	// check that an Si4702/03 answered at the address
	if pn := s.regs.get(fieldPN); pn != 0x1 {
		return fmt.Errorf("couldn't find the radio, part number field reads 0x%x", pn)
	}

	if s.debugMode {
		s.debugLog("Device ID 0x%04x, chip ID 0x%04x\n", s.regs[regDEVICEID], s.regs[regCHIPID])
	}

	if err = s.configure(); err != nil {
		return err
	}

	if s.debugMode {
		s.debugLog("Band %.2f ... %.2f MHz, %d kHz spacing\n",
			float32(s.bandStart)/100, float32(s.bandEnd)/100, s.bandSpacing*10)
	}

	return nil
}

// Halt stops the device in a graceful way.
func (s *Si4703Driver) Halt() error {
	if s.conn == nil {
		return nil
	}
	return s.PowerDown()
}

// Connection retrieves the i2c connection to the device.
func (s *Si4703Driver) Connection() gobot.Connection {
	return s.i2cConnector.(gobot.Connection)
}

// busInit forces the chip into two-wire mode. SDIO must be held low while
// RST rises: the chip samples the line on that edge to latch the bus mode.
// SDIO is released back to a pulled-up input afterwards so the pair can be
// shared with other devices, then the transport is opened by Start.
func (s *Si4703Driver) busInit() error {
	dw, ok := s.i2cConnector.(gpio.DigitalWriter)
	if !ok {
		return fmt.Errorf("i2c connector does not have a digital writer capability")
	}

	dp, ok := s.i2cConnector.(sysfs.DigitalPinnerProvider)
	if !ok {
		return fmt.Errorf("i2c connector does not have a digital pin capability")
	}

	sdio, err := dp.DigitalPin(s.sdioPin, sysfs.OUT)
	if err != nil {
		return err
	}

	if err = dw.DigitalWrite(s.resetPin, low); err != nil {
		return err
	}
	if err = sdio.Write(low); err != nil {
		return err
	}
	time.Sleep(busModeSettleTime)

	if err = dw.DigitalWrite(s.resetPin, high); err != nil {
		return err
	}
	time.Sleep(busModeSettleTime)

	// hand SDIO back to the bus pull-up
	return sdio.Direction(sysfs.IN)
}

// PowerUp runs the two-step power sequence: crystal oscillator first with
// its 500 ms stabilization, then device enable with the 110 ms settle.
// The chip comes up unmuted at volume 0.
func (s *Si4703Driver) PowerUp() error {
	if err := s.modify(func(r *shadow) {
		r.set(fieldXOSCEN, 1)
	}); err != nil {
		return err
	}
	time.Sleep(s.oscSettle)

	if err := s.modify(func(r *shadow) {
		r.set(fieldENABLE, 1)
		r.set(fieldDISABLE, 0)
		r.set(fieldDMUTE, 1)
	}); err != nil {
		return err
	}
	time.Sleep(s.powerSettle)

	return nil
}

// PowerDown drops the chip into its low-power state: audio output to high
// impedance, GPIOs released, output muted, ENABLE and DISABLE raised
// together (the chip's shutdown encoding). Only a new Start recovers
// from it.
func (s *Si4703Driver) PowerDown() error {
	if err := s.modify(func(r *shadow) {
		r.set(fieldAHIZEN, 1)
		r.set(fieldGPIO1, GPIO_Z)
		r.set(fieldGPIO2, GPIO_Z)
		r.set(fieldGPIO3, GPIO_Z)
		r.set(fieldDMUTE, 0)
		r.set(fieldENABLE, 1)
		r.set(fieldDISABLE, 1)
	}); err != nil {
		return err
	}
	time.Sleep(s.powerDownSettle)

	return nil
}

// Applies the configured band, seek and audio defaults in one combined write.
func (s *Si4703Driver) configure() error {
	return s.modify(func(r *shadow) {
		// region
		r.set(fieldSPACE, uint16(s.space))
		r.set(fieldBAND, uint16(s.band))
		r.set(fieldDE, uint16(s.deEmphasis))

		// busy-wait completion only, no STC interrupt
		r.set(fieldSTCIEN, 0)

		// seek qualifiers; direction defaults to up
		r.set(fieldSEEK, 0)
		r.set(fieldSEEKUP, SEEK_UP)
		r.set(fieldSKMODE, uint16(s.seekMode))
		r.set(fieldSEEKTH, uint16(s.seekThreshold))
		r.set(fieldSKCNT, uint16(s.seekImpulse))
		r.set(fieldSKSNR, uint16(s.seekSNR))
		r.set(fieldAGCD, bit(s.agcDisable))

		// RDS receipt on, verbose mode and RDS interrupt off
		r.set(fieldRDSIEN, 0)
		r.set(fieldRDSM, 0)
		r.set(fieldRDS, 1)

		// audio path: output driven, stereo blend on defaults, volume down
		r.set(fieldAHIZEN, 0)
		r.set(fieldMONO, 0)
		r.set(fieldBLNDADJ, BLA_31_49)
		r.set(fieldVOLUME, 0)
		r.set(fieldVOLEXT, 0)

		// softmute disabled, standard attenuation/recovery when enabled
		r.set(fieldDSMUTE, 1)
		r.set(fieldSMUTEA, SMA_16dB)
		r.set(fieldSMUTER, SMRR_Fastest)

		// all GPIOs high-impedance
		r.set(fieldGPIO1, GPIO_Z)
		r.set(fieldGPIO2, GPIO_Z)
		r.set(fieldGPIO3, GPIO_Z)
	})
}

// readShadow refreshes the whole shadow with one 32-byte block read.
func (s *Si4703Driver) readShadow() error {
	buf := make([]byte, 2*shadowLen)
	n, err := s.conn.Read(buf)
	if err != nil {
		return &BusError{Op: "read", Err: err}
	}
	if n != len(buf) {
		return &BusError{Op: "read", Err: fmt.Errorf("short transfer, %d of %d bytes", n, len(buf))}
	}

	for i := 0; i < shadowLen; i++ {
		s.regs[i] = uint16(buf[2*i])<<8 | uint16(buf[2*i+1])
	}

	return nil
}

// writeControl transmits the six control words (registers 0x02 through
// 0x07) as one block write. The device write pointer starts at 0x02, so
// the block covers exactly the writable window.
func (s *Si4703Driver) writeControl() error {
	buf := make([]byte, 0, 2*(controlLast-controlFirst+1))
	for i := controlFirst; i <= controlLast; i++ {
		buf = append(buf, byte(s.regs[i]>>8), byte(s.regs[i]))
	}

	if s.debugMode {
		s.debugLog("control write: % x\n", buf)
	}

	n, err := s.conn.Write(buf)
	if err != nil {
		return &BusError{Op: "write", Err: err}
	}
	if n != len(buf) {
		return &BusError{Op: "write", Err: fmt.Errorf("short transfer, %d of %d bytes", n, len(buf))}
	}

	return nil
}

// modify is the only write path: refresh the shadow, let mut touch the
// fields it needs, send the control block back. Funnelling every mutation
// through here keeps stale shadows off the bus.
func (s *Si4703Driver) modify(mut func(r *shadow)) error {
	if err := s.readShadow(); err != nil {
		return err
	}
	mut(&s.regs)
	return s.writeControl()
}

// waitSTC polls the status register until the seek/tune complete bit
// matches want. The deadline turns an absent or wedged chip into
// ErrTimeout instead of a hung caller.
func (s *Si4703Driver) waitSTC(want uint16, interval time.Duration) error {
	deadline := time.Now().Add(s.pollTimeout)
	for {
		if err := s.readShadow(); err != nil {
			return err
		}
		if s.regs.get(fieldSTC) == want {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrTimeout
		}
		time.Sleep(interval)
	}
}

// Channel reads back the currently tuned frequency in 10 kHz units.
func (s *Si4703Driver) Channel() (int, error) {
	if err := s.readShadow(); err != nil {
		return 0, err
	}
	return s.bandSpacing*int(s.regs.get(fieldREADCHAN)) + s.bandStart, nil
}

// SetChannel tunes to freq, given in 10 kHz units (9870 is 98.70 MHz).
// The frequency is clamped into the configured band and truncated onto
// the channel raster. Returns the frequency the chip actually tuned to.
func (s *Si4703Driver) SetChannel(freq int) (int, error) {
	if freq < s.bandStart {
		freq = s.bandStart
	}
	if freq > s.bandEnd {
		freq = s.bandEnd
	}

	channel := uint16((freq - s.bandStart) / s.bandSpacing)

	if s.debugMode {
		s.debugLog("Tuning to %.2f MHz (channel %d)\n", float32(freq)/100, channel)
	}

	if err := s.modify(func(r *shadow) {
		r.set(fieldCHAN, channel)
		r.set(fieldTUNE, 1)
	}); err != nil {
		return 0, err
	}

	if err := s.waitSTC(1, s.pollInterval); err != nil {
		return 0, err
	}

	if err := s.modify(func(r *shadow) {
		r.set(fieldTUNE, 0)
	}); err != nil {
		return 0, err
	}

	// the chip holds STC until the tune bit is back down
	if err := s.waitSTC(0, s.pollInterval); err != nil {
		return 0, err
	}

	return s.Channel()
}

// IncChannel steps one channel up the band.
func (s *Si4703Driver) IncChannel() (int, error) {
	freq, err := s.Channel()
	if err != nil {
		return 0, err
	}
	return s.SetChannel(freq + s.bandSpacing)
}

// DecChannel steps one channel down the band.
func (s *Si4703Driver) DecChannel() (int, error) {
	freq, err := s.Channel()
	if err != nil {
		return 0, err
	}
	return s.SetChannel(freq - s.bandSpacing)
}

// SeekUp seeks towards the top of the band and returns the frequency of
// the station found. A seek that ends on the band limit without a station
// returns 0 and ErrSeekFailed.
func (s *Si4703Driver) SeekUp() (int, error) {
	return s.seek(SEEK_UP)
}

// SeekDown seeks towards the bottom of the band, with the same result
// semantics as SeekUp.
func (s *Si4703Driver) SeekDown() (int, error) {
	return s.seek(SEEK_DOWN)
}

func (s *Si4703Driver) seek(direction uint16) (int, error) {
	if err := s.modify(func(r *shadow) {
		r.set(fieldSEEKUP, direction)
		r.set(fieldSEEK, 1)
	}); err != nil {
		return 0, err
	}

	if err := s.waitSTC(1, seekPollInterval); err != nil {
		return 0, err
	}

	// SFBL must be sampled before SEEK drops; clearing the command bit
	// resets the status bits.
	failed := s.regs.get(fieldSFBL) == 1

	if err := s.modify(func(r *shadow) {
		r.set(fieldSEEK, 0)
	}); err != nil {
		return 0, err
	}

	if err := s.waitSTC(0, seekPollInterval); err != nil {
		return 0, err
	}

	if failed {
		return 0, ErrSeekFailed
	}

	return s.Channel()
}

// Volume reads the volume setting, 0 (lowest) to 15 (loudest).
func (s *Si4703Driver) Volume() (int, error) {
	return s.readField(fieldVOLUME)
}

// SetVolume sets the output volume, clamped to 0 ... 15, and returns the
// setting read back from the chip.
func (s *Si4703Driver) SetVolume(volume int) (int, error) {
	if volume < 0 {
		volume = 0
	}
	if volume > 15 {
		volume = 15
	}

	if err := s.modify(func(r *shadow) {
		r.set(fieldVOLUME, uint16(volume))
	}); err != nil {
		return 0, err
	}

	return s.Volume()
}

// IncVolume raises the volume one step, saturating at 15.
func (s *Si4703Driver) IncVolume() (int, error) {
	volume, err := s.Volume()
	if err != nil {
		return 0, err
	}
	return s.SetVolume(volume + 1)
}

// DecVolume lowers the volume one step, saturating at 0.
func (s *Si4703Driver) DecVolume() (int, error) {
	volume, err := s.Volume()
	if err != nil {
		return 0, err
	}
	return s.SetVolume(volume - 1)
}

// Mute reports the DMUTE bit. DMUTE is an active-high *unmute*: true
// means the audio output is live, false means it is muted. The inverted
// naming is the chip's and is kept so register dumps line up with the
// datasheet.
func (s *Si4703Driver) Mute() (bool, error) {
	if err := s.readShadow(); err != nil {
		return false, err
	}
	return s.regs.get(fieldDMUTE) == 1, nil
}

// SetMute writes the DMUTE bit directly and inherits its inverted
// polarity: SetMute(true) unmutes the output, SetMute(false) mutes it.
func (s *Si4703Driver) SetMute(enable bool) error {
	return s.modify(func(r *shadow) {
		r.set(fieldDMUTE, bit(enable))
	})
}

// Mono reports whether mono output is forced.
func (s *Si4703Driver) Mono() (bool, error) {
	if err := s.readShadow(); err != nil {
		return false, err
	}
	return s.regs.get(fieldMONO) == 1, nil
}

// SetMono forces mono output when enable is true; false returns the chip
// to automatic stereo blend.
func (s *Si4703Driver) SetMono(enable bool) error {
	return s.modify(func(r *shadow) {
		r.set(fieldMONO, bit(enable))
	})
}

// VolExt reports whether the extended volume range is active.
func (s *Si4703Driver) VolExt() (bool, error) {
	if err := s.readShadow(); err != nil {
		return false, err
	}
	return s.regs.get(fieldVOLEXT) == 1, nil
}

// SetVolExt shifts the whole volume scale down by 30 dB when enable is
// true, for line-level or headphone use at night.
func (s *Si4703Driver) SetVolExt(enable bool) error {
	return s.modify(func(r *shadow) {
		r.set(fieldVOLEXT, bit(enable))
	})
}

// WriteGPIO drives one of the three GPIO pins (GPIO1 ... GPIO3) with one
// of the four modes GPIO_Z, GPIO_I, GPIO_Low or GPIO_High.
func (s *Si4703Driver) WriteGPIO(pin, mode int) error {
	if mode < GPIO_Z || mode > GPIO_High {
		return fmt.Errorf("unknown GPIO mode %d", mode)
	}

	var f field
	switch pin {
	case GPIO1:
		f = fieldGPIO1
	case GPIO2:
		f = fieldGPIO2
	case GPIO3:
		f = fieldGPIO3
	default:
		return fmt.Errorf("unknown GPIO pin %d", pin)
	}

	return s.modify(func(r *shadow) {
		r.set(f, uint16(mode))
	})
}

// PartNumber reads the part number field of the device ID register; the
// Si4702/03 family reads 0x1.
func (s *Si4703Driver) PartNumber() (int, error) {
	return s.readField(fieldPN)
}

// ManufacturerID reads the manufacturer field of the device ID register;
// Silicon Labs parts read 0x242.
func (s *Si4703Driver) ManufacturerID() (int, error) {
	return s.readField(fieldMFGID)
}

// ChipVersion reads the silicon revision field of the chip ID register.
func (s *Si4703Driver) ChipVersion() (int, error) {
	return s.readField(fieldREV)
}

// Device reads the device field of the chip ID register. The value
// encodes both the part and its power state (0x9 is a powered Si4703).
func (s *Si4703Driver) Device() (int, error) {
	return s.readField(fieldDEV)
}

// Firmware reads the firmware revision field of the chip ID register.
func (s *Si4703Driver) Firmware() (int, error) {
	return s.readField(fieldFIRMWARE)
}

// BandStart returns the lower band edge in 10 kHz units.
func (s *Si4703Driver) BandStart() int {
	return s.bandStart
}

// BandEnd returns the upper band edge in 10 kHz units.
func (s *Si4703Driver) BandEnd() int {
	return s.bandEnd
}

// BandSpacing returns the channel spacing in 10 kHz units.
func (s *Si4703Driver) BandSpacing() int {
	return s.bandSpacing
}

// RSSI reads the received signal strength indicator in dBµV.
func (s *Si4703Driver) RSSI() (int, error) {
	return s.readField(fieldRSSI)
}

// Stereo reports whether the chip currently decodes a stereo pilot.
func (s *Si4703Driver) Stereo() (bool, error) {
	if err := s.readShadow(); err != nil {
		return false, err
	}
	return s.regs.get(fieldST) == 1, nil
}

// Loop performs the periodic status check for the application loop.
func (s *Si4703Driver) Loop() error {
	if !s.debugMode {
		return nil
	}

	freq, err := s.Channel()
	if err != nil {
		return err
	}

	// Channel refreshed the shadow, so these come from the same snapshot.
	s.debugLog("Tuned %.2f MHz, RSSI %d dBµV, stereo %t\n",
		float32(freq)/100, s.regs.get(fieldRSSI), s.regs.get(fieldST) == 1)

	return nil
}

// readField refreshes the shadow and extracts a single field.
func (s *Si4703Driver) readField(f field) (int, error) {
	if err := s.readShadow(); err != nil {
		return 0, err
	}
	return int(s.regs.get(f)), nil
}

func bit(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

// Si4703Config holds the additional configuration needed for Si4703Driver.
type Si4703Config struct {
	// Pi header pin numbers. SCLKPin and IntPin are carried for wiring
	// documentation but not driven: the bus owns the clock line, and the
	// interrupt line plays no part in the busy-wait completion model.
	ResetPin string
	SDIOPin  string
	SCLKPin  string
	IntPin   string

	Band       uint8
	Spacing    uint8
	DeEmphasis uint8

	SeekMode      uint8
	SeekThreshold uint8
	SeekImpulse   uint8
	SeekSNR       uint8
	AGCDisable    bool

	PollInterval time.Duration
	PollTimeout  time.Duration

	DebugMode bool
	DebugLog  func(format string, v ...interface{})
	Log       func(format string, v ...interface{})
}

// Validate ensures that our Si4703Driver configuration is valid.
//noinspection GoUnnecessarilyExportedIdentifiers
func (c *Si4703Config) Validate() error {
	if c.Log == nil {
		panic("logging function cannot be nil. Use something like log.Printf or an empty function instead")
	}
	if c.DebugMode && c.DebugLog == nil {
		panic("cannot use debugging mode without configuring a DebugLog function, e.g. log.Printf")
	}

	if c.ResetPin == "" {
		c.ResetPin = "16"
	}
	if c.SDIOPin == "" {
		c.SDIOPin = "3"
	}
	if c.SCLKPin == "" {
		c.SCLKPin = "5"
	}

	var errs *multierror.Error

	switch c.Band {
	case BAND_US_EU, BAND_JPW, BAND_JP:
	default:
		errs = multierror.Append(errs, fmt.Errorf("unknown band selector 0x%x", c.Band))
	}

	switch c.Spacing {
	case SPACE_200KHz, SPACE_100KHz, SPACE_50KHz:
	default:
		errs = multierror.Append(errs, fmt.Errorf("unknown channel spacing selector 0x%x", c.Spacing))
	}

	switch c.DeEmphasis {
	case DE_75us, DE_50us:
	default:
		errs = multierror.Append(errs, fmt.Errorf("unknown de-emphasis selector 0x%x", c.DeEmphasis))
	}

	switch c.SeekMode {
	case SKMODE_WRAP, SKMODE_STOP:
	default:
		errs = multierror.Append(errs, fmt.Errorf("unknown seek mode 0x%x", c.SeekMode))
	}

	if c.SeekImpulse > 0xF {
		c.Log("Seek impulse detection threshold %d out of range. Adjusting to maximum of 15.\n", c.SeekImpulse)
		c.SeekImpulse = 0xF
	}
	if c.SeekSNR > 0xF {
		c.Log("Seek SNR threshold %d out of range. Adjusting to maximum of 15.\n", c.SeekSNR)
		c.SeekSNR = 0xF
	}

	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.PollTimeout <= 0 {
		c.PollTimeout = DefaultPollTimeout
	}

	return errs.ErrorOrNil()
}

// NewSi4703Driver creates a new GoBot driver for our FM receiver.
func NewSi4703Driver(connector i2c.Connector, cfg Si4703Config, options ...func(i2c.Config)) (*Si4703Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bandStart, bandEnd := bandLimits(cfg.Band)

	res := &Si4703Driver{
		name:         gobot.DefaultName("Si4703Driver"),
		i2cConnector: connector,
		Config:       i2c.NewConfig(),
		i2cAddr:      Address,

		resetPin: cfg.ResetPin,
		sdioPin:  cfg.SDIOPin,
		sclkPin:  cfg.SCLKPin,
		intPin:   cfg.IntPin,

		band:       cfg.Band,
		space:      cfg.Spacing,
		deEmphasis: cfg.DeEmphasis,

		seekMode:      cfg.SeekMode,
		seekThreshold: cfg.SeekThreshold,
		seekImpulse:   cfg.SeekImpulse,
		seekSNR:       cfg.SeekSNR,
		agcDisable:    cfg.AGCDisable,

		bandStart:   bandStart,
		bandEnd:     bandEnd,
		bandSpacing: spacingStep(cfg.Spacing),

		pollInterval: cfg.PollInterval,
		pollTimeout:  cfg.PollTimeout,

		oscSettle:       oscSettleTime,
		powerSettle:     powerSettleTime,
		powerDownSettle: powerDownSettleTime,

		debugMode: cfg.DebugMode,
		debugLog:  cfg.DebugLog,
		log:       cfg.Log,
	}

	for _, option := range options {
		option(res)
	}

	return res, nil
}
