package radio

import (
	"gonum.org/v1/gonum/stat"
)

// Station describes one broadcast found by ScanBand.
type Station struct {
	// Freq is the station frequency in 10 kHz units.
	Freq int

	// RSSI is the received signal strength in dBµV.
	RSSI int

	// Stereo reports whether a stereo pilot was decoded on the channel.
	Stereo bool
}

// ScanBand measures the signal strength of the entire configured band,
// one channel at a time, and returns the channels that stand out: local
// RSSI maxima at least one standard deviation above the band average.
// The previously tuned channel is restored before returning.
//
// A full scan tunes every channel in the band, so expect it to take a
// few seconds.
func (s *Si4703Driver) ScanBand() ([]Station, error) {
	previous, err := s.Channel()
	if err != nil {
		return nil, err
	}

	var (
		freqs  []int
		levels []float64
		pilots []bool
	)
	for f := s.bandStart; f <= s.bandEnd; f += s.bandSpacing {
		if _, err = s.SetChannel(f); err != nil {
			return nil, err
		}

		rssi, err := s.RSSI()
		if err != nil {
			return nil, err
		}

		if s.debugMode {
			s.debugLog("Signal on %.2f MHz is %d dBµV\n", float32(f)/100, rssi)
		}

		freqs = append(freqs, f)
		levels = append(levels, float64(rssi))
		pilots = append(pilots, s.regs.get(fieldST) == 1)
	}

	threshold := stat.Mean(levels, nil) + stat.StdDev(levels, nil)

	var stations []Station
	for i, level := range levels {
		if level < threshold {
			continue
		}
		// keep only the leftmost channel of an equal-strength plateau
		if i > 0 && levels[i-1] >= level {
			continue
		}
		if i < len(levels)-1 && levels[i+1] > level {
			continue
		}

		s.log("Station on %.2f MHz, %d dBµV\n", float32(freqs[i])/100, int(level))
		stations = append(stations, Station{Freq: freqs[i], RSSI: int(level), Stereo: pilots[i]})
	}

	if _, err = s.SetChannel(previous); err != nil {
		return stations, err
	}

	return stations, nil
}
