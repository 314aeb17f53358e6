package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/SyN3rgY-PL/Radio-FM-20x4-Encoder/display"
	"github.com/SyN3rgY-PL/Radio-FM-20x4-Encoder/encoder"
	"github.com/SyN3rgY-PL/Radio-FM-20x4-Encoder/radio"

	"gobot.io/x/gobot"
	"gobot.io/x/gobot/platforms/raspi"
)

const (
	// startup preset, in 10 kHz units
	startFrequency = 9870
	startVolume    = 5
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	scan := flag.Bool("scan", false, "scan the whole band for stations instead of tuning")
	flag.Parse()

	adaptor := raspi.NewAdaptor()

	radioConfig := radio.Si4703Config{
		Band:          radio.BAND_US_EU,
		Spacing:       radio.SPACE_100KHz,
		DeEmphasis:    radio.DE_50us,
		SeekMode:      radio.SKMODE_STOP,
		SeekThreshold: 24,
		SeekImpulse:   radio.SKCNT_MIN,
		SeekSNR:       radio.SKSNR_MAX,
		ResetPin:      "16",
		SDIOPin:       "3",
		SCLKPin:       "5",
		Log:           log.Printf,
	}
	tuner, err := radio.NewSi4703Driver(adaptor, radioConfig)
	if err != nil {
		log.Fatalln(err)
	}

	lcd, err := display.NewLCD2004Driver(adaptor)
	if err != nil {
		log.Fatalln(err)
	}

	// KY-040 knob on the header: CLK, DT, SW
	knob := encoder.NewRotaryDriver(adaptor, "11", "13", "15")

	// the tuner is shared between the encoder events and the ticker
	var mu sync.Mutex

	work := func() {
		if *scan {
			if err = lcd.DisplayMessage("Scanning the band for stations..."); err != nil {
				log.Fatalln(err)
			}

			stations, err := tuner.ScanBand()
			if err != nil {
				log.Fatalln(err)
			}

			if err = lcd.Clear(); err != nil {
				log.Fatalln(err)
			}
			if err = lcd.DisplayLine(0, fmt.Sprintf("Found %d stations", len(stations))); err != nil {
				log.Fatalln(err)
			}

			for i, station := range stations {
				audio := "mono"
				if station.Stereo {
					audio = "stereo"
				}
				log.Printf("%.2f MHz, %d dBµV, %s\n", float32(station.Freq)/100, station.RSSI, audio)

				// the panel fits the first three below the summary
				if i < 3 {
					if err = lcd.DisplayLine(i+1, fmt.Sprintf("%6.2f MHz %2d dBuV", float32(station.Freq)/100, station.RSSI)); err != nil {
						log.Fatalln(err)
					}
				}
			}
			return
		}

		if _, err = tuner.SetVolume(startVolume); err != nil {
			log.Fatalln(err)
		}
		if _, err = tuner.SetChannel(startFrequency); err != nil {
			log.Fatalln(err)
		}

		_ = knob.On(encoder.Clockwise, func(interface{}) {
			mu.Lock()
			defer mu.Unlock()
			if _, err := tuner.IncChannel(); err != nil {
				log.Println(err)
			}
		})

		_ = knob.On(encoder.Counterclockwise, func(interface{}) {
			mu.Lock()
			defer mu.Unlock()
			if _, err := tuner.DecChannel(); err != nil {
				log.Println(err)
			}
		})

		_ = knob.On(encoder.Push, func(interface{}) {
			mu.Lock()
			defer mu.Unlock()
			freq, err := tuner.SeekUp()
			if errors.Is(err, radio.ErrSeekFailed) {
				log.Println("seek stopped on the band limit, no station found")
				return
			}
			if err != nil {
				log.Println(err)
				return
			}
			log.Printf("Seek found %.2f MHz\n", float32(freq)/100)
		})

		_ = knob.On(encoder.Error, func(data interface{}) {
			log.Println(data)
		})

		gobot.Every(1*time.Second, func() {
			mu.Lock()
			defer mu.Unlock()

			if err := tuner.Loop(); err != nil {
				log.Println(err)
				return
			}

			freq, err := tuner.Channel()
			if err != nil {
				log.Println(err)
				return
			}
			rssi, err := tuner.RSSI()
			if err != nil {
				log.Println(err)
				return
			}
			stereo, err := tuner.Stereo()
			if err != nil {
				log.Println(err)
				return
			}
			volume, err := tuner.Volume()
			if err != nil {
				log.Println(err)
				return
			}

			if err = lcd.DisplayStation(freq, rssi, stereo, volume); err != nil {
				log.Println(err)
			}
		})
	}

	robot := gobot.NewRobot("FM Receiver",
		[]gobot.Connection{adaptor},
		[]gobot.Device{tuner, lcd, knob},
		work,
	)

	if err = robot.Start(); err != nil {
		log.Fatalln(err)
	}
}
