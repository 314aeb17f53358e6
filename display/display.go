package display

import (
	"fmt"
	"time"

	"gobot.io/x/gobot"
	"gobot.io/x/gobot/drivers/i2c"
)

const (
	// command signals that we want to send a command to the screen
	command = 0x04

	// data signals that we want to send characters to the screen
	data = 0x05

	// address is the default address of the PCF8574 backpack
	address = 0x27

	// width is the number of visible characters per row
	width = 20

	// rows is the number of rows of the panel
	rows = 4
)

// DDRAM base address of each row. The 20x4 module interleaves its rows:
// row 2 continues row 0 in memory, row 3 continues row 1.
var rowAddr = [rows]byte{0x00, 0x40, 0x14, 0x54}

// LCD2004Driver controls a HD44780 20x4 character LCD behind a PCF8574
// I2C backpack
//
//goland:noinspection GoUnnecessarilyExportedIdentifiers
type LCD2004Driver struct {
	name         string
	i2cConnector i2c.Connector
	i2c.Config

	i2cAddr int
	conn    i2c.Connection

	backlightEnabled bool
}

// Name of our device
func (lcd *LCD2004Driver) Name() string {
	return lcd.name
}

// SetName set the name of our device
func (lcd *LCD2004Driver) SetName(name string) {
	lcd.name = name
}

// Start the device work
func (lcd *LCD2004Driver) Start() error {
	bus := lcd.GetBusOrDefault(lcd.i2cConnector.GetDefaultBus())

	var err error
	lcd.conn, err = lcd.i2cConnector.GetConnection(lcd.i2cAddr, bus)
	if err != nil {
		return err
	}

	// 4-bit mode, two-line addressing, display on without a cursor
	commands := []byte{0x33, 0x32, 0x28, 0x0C}
	for _, cmd := range commands {
		if err = lcd.sendCommand(cmd); err != nil {
			return err
		}
		time.Sleep(5 * time.Millisecond)
	}

	return lcd.Clear()
}

// Halt stops the device in a graceful way
func (lcd *LCD2004Driver) Halt() error {
	lcd.backlightEnabled = false
	return lcd.Clear()
}

// Connection retrieves the i2c connection to the device
func (lcd *LCD2004Driver) Connection() gobot.Connection {
	return lcd.i2cConnector.(gobot.Connection)
}

// Send a command to the LCD
func (lcd *LCD2004Driver) sendCommand(cmd byte) (err error) {
	return lcd.communicate(command, cmd)
}

// Send a character to the LCD
func (lcd *LCD2004Driver) sendData(cmd byte) (err error) {
	return lcd.communicate(data, cmd)
}

// write handles the actual data writing to the LCD i2c connection
func (lcd *LCD2004Driver) write(data byte) error {
	temp := data
	if lcd.backlightEnabled {
		temp |= 0x08
	} else {
		temp |= 0x07
	}

	return lcd.conn.WriteByte(temp)
}

// Communicate with the LCD by sending either a command or data
func (lcd *LCD2004Driver) communicate(cmdType byte, cmd byte) error {
	// Send bit7-4 firstly
	buf := cmd & 0xF0
	buf |= cmdType // RS = 0, RW = 0, EN = 1
	if err := lcd.write(buf); err != nil {
		return err
	}

	time.Sleep(2 * time.Millisecond)

	buf &= 0xFB // Make EN = 0
	if err := lcd.write(buf); err != nil {
		return err
	}

	// Send bit3-0 secondly
	buf = (cmd & 0x0F) << 4
	buf |= cmdType // RS = 0, RW = 0, EN = 1
	if err := lcd.write(buf); err != nil {
		return err
	}

	time.Sleep(2 * time.Millisecond)
	buf &= 0xFB // Make EN = 0
	return lcd.write(buf)
}

// EnableBacklight turns on the screen backlight
func (lcd *LCD2004Driver) EnableBacklight() error {
	lcd.backlightEnabled = true
	err := lcd.write(0x08)
	time.Sleep(2 * time.Millisecond)
	return err
}

// DisableBacklight turns off the screen backlight
func (lcd *LCD2004Driver) DisableBacklight() error {
	lcd.backlightEnabled = false
	err := lcd.write(0x07)
	time.Sleep(2 * time.Millisecond)
	return err
}

// Clear removes any message from the LCD screen
func (lcd *LCD2004Driver) Clear() error {
	// The screen clearing command needs to be
	// sent with the backlight turned on
	tmp := lcd.backlightEnabled
	lcd.backlightEnabled = true
	if err := lcd.sendCommand(0x01); err != nil {
		return err
	}

	time.Sleep(2 * time.Millisecond)

	lcd.backlightEnabled = tmp

	if lcd.backlightEnabled {
		return lcd.EnableBacklight()
	}
	return lcd.DisableBacklight()
}

// DisplayMessageWithCoordinates renders msg starting at column x of row y
func (lcd *LCD2004Driver) DisplayMessageWithCoordinates(x, y int, msg string) error {
	if x < 0 {
		x = 0
	}
	if x > width-1 {
		x = width - 1
	}

	if y < 0 {
		y = 0
	}
	if y > rows-1 {
		y = rows - 1
	}

	// Move cursor
	addr := 0x80 | (rowAddr[y] + byte(x))
	if err := lcd.sendCommand(addr); err != nil {
		return err
	}

	for _, ch := range msg {
		if err := lcd.sendData(byte(ch)); err != nil {
			return err
		}
	}
	return nil
}

// DisplayLine replaces one whole row. The text is padded or truncated to
// the row width, so whatever was on the row before is gone.
func (lcd *LCD2004Driver) DisplayLine(row int, msg string) error {
	if len(msg) > width {
		msg = msg[:width]
	}
	for len(msg) < width {
		msg += " "
	}

	return lcd.DisplayMessageWithCoordinates(0, row, msg)
}

// DisplayMessage renders our message on the display, wrapping it over
// the four rows
func (lcd *LCD2004Driver) DisplayMessage(msg string) error {
	for row := 0; row < rows; row++ {
		var line string
		if len(msg) > row*width {
			line = msg[row*width:]
		}

		if err := lcd.DisplayLine(row, line); err != nil {
			return err
		}
	}
	return nil
}

// DisplayStation renders the tuner status over the four rows.
func (lcd *LCD2004Driver) DisplayStation(freq, rssi int, stereo bool, volume int) error {
	audio := "mono"
	if stereo {
		audio = "stereo"
	}

	lines := []string{
		fmt.Sprintf("FM  %6.2f MHz", float32(freq)/100),
		fmt.Sprintf("Signal  %3d dBuV", rssi),
		fmt.Sprintf("Audio   %s", audio),
		fmt.Sprintf("Volume  %2d / 15", volume),
	}

	for row, line := range lines {
		if err := lcd.DisplayLine(row, line); err != nil {
			return err
		}
	}
	return nil
}

// NewLCD2004Driver creates a new GoBot driver for the status panel
func NewLCD2004Driver(connector i2c.Connector, options ...func(i2c.Config)) (*LCD2004Driver, error) {
	lcd := &LCD2004Driver{
		name:             gobot.DefaultName("LCD2004Driver"),
		i2cConnector:     connector,
		Config:           i2c.NewConfig(),
		i2cAddr:          address,
		backlightEnabled: true,
	}

	for _, option := range options {
		option(lcd)
	}

	return lcd, nil
}
