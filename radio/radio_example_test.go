package radio_test

import (
	"log"
	"time"

	"github.com/SyN3rgY-PL/Radio-FM-20x4-Encoder/radio"

	"gobot.io/x/gobot"
	"gobot.io/x/gobot/platforms/raspi"
)

func ExampleSi4703Driver() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	adaptor := raspi.NewAdaptor()

	radioConfig := radio.Si4703Config{
		Band:          radio.BAND_US_EU,
		Spacing:       radio.SPACE_100KHz,
		DeEmphasis:    radio.DE_75us,
		SeekMode:      radio.SKMODE_STOP,
		SeekThreshold: 24,
		SeekImpulse:   radio.SKCNT_MIN,
		SeekSNR:       radio.SKSNR_MAX,
		ResetPin:      "16",
		SDIOPin:       "3",
		DebugMode:     false,
		Log:           log.Printf,
		DebugLog:      nil,
	}
	rdio, err := radio.NewSi4703Driver(adaptor, radioConfig)
	if err != nil {
		log.Fatalln(err)
	}

	work := func() {
		if _, err = rdio.SetVolume(5); err != nil {
			log.Fatalln(err)
		}

		freq, err := rdio.SetChannel(9870)
		if err != nil {
			log.Fatalln(err)
		}
		log.Printf("Tuned to %.2f MHz\n", float32(freq)/100)

		gobot.Every(1*time.Second, func() {
			if err = rdio.Loop(); err != nil {
				log.Fatalln(err)
			}
		})
	}

	robot := gobot.NewRobot("FM Receiver demo",
		[]gobot.Connection{adaptor},
		[]gobot.Device{rdio},
		work,
	)

	if err = robot.Start(); err != nil {
		log.Fatalln(err)
	}
}
