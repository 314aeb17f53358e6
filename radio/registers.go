package radio

// Selector values for the configuration registers. The encodings are the
// chip's own; they are written verbatim into the SYSCONFIG bitfields.
//
//goland:noinspection GoUnusedConst,GoUnnecessarilyExportedIdentifiers,GoSnakeCaseUsage
const (
	// Address is the fixed 7-bit device address in two-wire mode.
	Address = 0x10

	// BAND_US_EU selects the 87.5-108 MHz band (USA, Europe).
	BAND_US_EU = 0b00

	// BAND_JPW selects the 76-108 MHz wide band (Japan).
	BAND_JPW = 0b01

	// BAND_JP selects the 76-90 MHz band (Japan).
	BAND_JP = 0b10

	// SPACE_200KHz selects 200 kHz channel spacing (USA, Australia).
	SPACE_200KHz = 0b00

	// SPACE_100KHz selects 100 kHz channel spacing (Europe, Japan).
	SPACE_100KHz = 0b01

	// SPACE_50KHz selects 50 kHz channel spacing.
	SPACE_50KHz = 0b10

	// DE_75us selects 75 µs de-emphasis (USA).
	DE_75us = 0

	// DE_50us selects 50 µs de-emphasis (Europe, Australia, Japan).
	DE_50us = 1

	// SKMODE_WRAP continues a seek past the band limit, wrapping around.
	SKMODE_WRAP = 0

	// SKMODE_STOP stops a seek at the band limit and reports SFBL.
	SKMODE_STOP = 1

	// SKSNR_DIS disables the seek SNR qualifier.
	SKSNR_DIS = 0x0

	// SKSNR_MIN is the weakest SNR qualifier (most seek stops).
	SKSNR_MIN = 0x1

	// SKSNR_MAX is the strongest SNR qualifier (fewest seek stops).
	SKSNR_MAX = 0xF

	// SKCNT_DIS disables the impulse detection qualifier.
	SKCNT_DIS = 0x0

	// SKCNT_MAX allows the most impulses per channel (most seek stops).
	SKCNT_MAX = 0x1

	// SKCNT_MIN allows the fewest impulses per channel (fewest seek stops).
	SKCNT_MIN = 0xF
)

// Softmute and stereo blend selectors.
//
//goland:noinspection GoUnusedConst,GoUnnecessarilyExportedIdentifiers,GoSnakeCaseUsage
const (
	// SMA_16dB attenuates softmuted audio by 16 dB.
	SMA_16dB = 0b00

	// SMA_14dB attenuates softmuted audio by 14 dB.
	SMA_14dB = 0b01

	// SMA_12dB attenuates softmuted audio by 12 dB.
	SMA_12dB = 0b10

	// SMA_10dB attenuates softmuted audio by 10 dB.
	SMA_10dB = 0b11

	// SMRR_Fastest selects the fastest softmute recovery rate.
	SMRR_Fastest = 0b00

	// SMRR_Fast selects a fast softmute recovery rate.
	SMRR_Fast = 0b01

	// SMRR_Slow selects a slow softmute recovery rate.
	SMRR_Slow = 0b10

	// SMRR_Slowest selects the slowest softmute recovery rate.
	SMRR_Slowest = 0b11

	// BLA_31_49 blends to stereo between 31 and 49 dBµV RSSI (default).
	BLA_31_49 = 0b00

	// BLA_37_55 blends to stereo between 37 and 55 dBµV RSSI (+6 dB).
	BLA_37_55 = 0b01

	// BLA_19_37 blends to stereo between 19 and 37 dBµV RSSI (-12 dB).
	BLA_19_37 = 0b10

	// BLA_25_43 blends to stereo between 25 and 43 dBµV RSSI (-6 dB).
	BLA_25_43 = 0b11
)

// GPIO pin identifiers and drive modes for WriteGPIO.
//
//goland:noinspection GoUnusedConst,GoUnnecessarilyExportedIdentifiers,GoSnakeCaseUsage
const (
	// GPIO1 is general purpose output 1.
	GPIO1 = 1

	// GPIO2 is general purpose output 2, shared with the STC/RDS interrupt line.
	GPIO2 = 2

	// GPIO3 is general purpose output 3, shared with the stereo indicator.
	GPIO3 = 3

	// GPIO_Z leaves the pin high-impedance.
	GPIO_Z = 0b00

	// GPIO_I routes the pin's alternate function (interrupt, stereo flag).
	GPIO_I = 0b01

	// GPIO_Low drives the pin low.
	GPIO_Low = 0b10

	// GPIO_High drives the pin high.
	GPIO_High = 0b11
)

// Seek direction values for the SEEKUP bit.
//
//goland:noinspection GoUnusedConst,GoUnnecessarilyExportedIdentifiers,GoSnakeCaseUsage
const (
	// SEEK_DOWN seeks towards the bottom of the band.
	SEEK_DOWN = 0

	// SEEK_UP seeks towards the top of the band.
	SEEK_UP = 1
)

// Shadow slot indices. The chip returns its register file starting at 0x0A
// and wraps from 0x0F to 0x00, so the shadow keeps that order rather than
// the register numbering.
const (
	regSTATUSRSSI = iota // 0x0A
	regREADCHAN          // 0x0B
	regRDSA              // 0x0C
	regRDSB              // 0x0D
	regRDSC              // 0x0E
	regRDSD              // 0x0F
	regDEVICEID          // 0x00
	regCHIPID            // 0x01
	regPOWERCFG          // 0x02
	regCHANNEL           // 0x03
	regSYSCONFIG1        // 0x04
	regSYSCONFIG2        // 0x05
	regSYSCONFIG3        // 0x06
	regTEST1             // 0x07
	regTEST2             // 0x08
	regBOOTCONFIG        // 0x09
)

const (
	shadowLen = 16

	// The writable control block is registers 0x02 through 0x07, which sit
	// contiguously in the shadow.
	controlFirst = regPOWERCFG
	controlLast  = regTEST1
)

// shadow is the in-memory mirror of the chip's register file, in device
// read order. Refresh it before interpreting any field; the control block
// write sends whatever the shadow holds.
type shadow [shadowLen]uint16

// field names one run of bits inside a shadow word.
type field struct {
	reg   int  // shadow slot
	shift uint // offset of the least significant bit
	width uint // run length in bits
}

func (f field) mask() uint16 {
	return (1<<f.width - 1) << f.shift
}

func (s *shadow) get(f field) uint16 {
	return (s[f.reg] >> f.shift) & (1<<f.width - 1)
}

func (s *shadow) set(f field, v uint16) {
	s[f.reg] = s[f.reg]&^f.mask() | (v<<f.shift)&f.mask()
}

// Register layout, field by field. The boundaries are the hardware
// contract; keep the register map open when touching this table.
//
//goland:noinspection GoUnusedGlobalVariable
var (
	// DEVICEID (0x00)
	fieldMFGID = field{regDEVICEID, 0, 12}
	fieldPN    = field{regDEVICEID, 12, 4}

	// CHIPID (0x01)
	fieldFIRMWARE = field{regCHIPID, 0, 6}
	fieldDEV      = field{regCHIPID, 6, 4}
	fieldREV      = field{regCHIPID, 10, 6}

	// POWERCFG (0x02)
	fieldENABLE  = field{regPOWERCFG, 0, 1}
	fieldDISABLE = field{regPOWERCFG, 6, 1}
	fieldSEEK    = field{regPOWERCFG, 8, 1}
	fieldSEEKUP  = field{regPOWERCFG, 9, 1}
	fieldSKMODE  = field{regPOWERCFG, 10, 1}
	fieldRDSM    = field{regPOWERCFG, 11, 1}
	fieldMONO    = field{regPOWERCFG, 13, 1}
	fieldDMUTE   = field{regPOWERCFG, 14, 1}
	fieldDSMUTE  = field{regPOWERCFG, 15, 1}

	// CHANNEL (0x03)
	fieldCHAN = field{regCHANNEL, 0, 10}
	fieldTUNE = field{regCHANNEL, 15, 1}

	// SYSCONFIG1 (0x04)
	fieldGPIO1   = field{regSYSCONFIG1, 0, 2}
	fieldGPIO2   = field{regSYSCONFIG1, 2, 2}
	fieldGPIO3   = field{regSYSCONFIG1, 4, 2}
	fieldBLNDADJ = field{regSYSCONFIG1, 6, 2}
	fieldAGCD    = field{regSYSCONFIG1, 10, 1}
	fieldDE      = field{regSYSCONFIG1, 11, 1}
	fieldRDS     = field{regSYSCONFIG1, 12, 1}
	fieldSTCIEN  = field{regSYSCONFIG1, 14, 1}
	fieldRDSIEN  = field{regSYSCONFIG1, 15, 1}

	// SYSCONFIG2 (0x05)
	fieldVOLUME = field{regSYSCONFIG2, 0, 4}
	fieldSPACE  = field{regSYSCONFIG2, 4, 2}
	fieldBAND   = field{regSYSCONFIG2, 6, 2}
	fieldSEEKTH = field{regSYSCONFIG2, 8, 8}

	// SYSCONFIG3 (0x06)
	fieldSKCNT  = field{regSYSCONFIG3, 0, 4}
	fieldSKSNR  = field{regSYSCONFIG3, 4, 4}
	fieldVOLEXT = field{regSYSCONFIG3, 8, 1}
	fieldSMUTEA = field{regSYSCONFIG3, 12, 2}
	fieldSMUTER = field{regSYSCONFIG3, 14, 2}

	// TEST1 (0x07)
	fieldAHIZEN = field{regTEST1, 14, 1}
	fieldXOSCEN = field{regTEST1, 15, 1}

	// STATUSRSSI (0x0A)
	fieldRSSI  = field{regSTATUSRSSI, 0, 8}
	fieldST    = field{regSTATUSRSSI, 8, 1}
	fieldBLERA = field{regSTATUSRSSI, 9, 2}
	fieldRDSS  = field{regSTATUSRSSI, 11, 1}
	fieldAFCRL = field{regSTATUSRSSI, 12, 1}
	fieldSFBL  = field{regSTATUSRSSI, 13, 1}
	fieldSTC   = field{regSTATUSRSSI, 14, 1}
	fieldRDSR  = field{regSTATUSRSSI, 15, 1}

	// READCHAN (0x0B)
	fieldREADCHAN = field{regREADCHAN, 0, 10}
	fieldBLERD    = field{regREADCHAN, 10, 2}
	fieldBLERC    = field{regREADCHAN, 12, 2}
	fieldBLERB    = field{regREADCHAN, 14, 2}
)

// bandLimits returns the band edges in 10 kHz units for a band selector.
func bandLimits(band uint8) (start, end int) {
	switch band {
	case BAND_JPW:
		return 7600, 10800
	case BAND_JP:
		return 7600, 9000
	default:
		return 8750, 10800
	}
}

// spacingStep returns the channel spacing in 10 kHz units for a spacing selector.
func spacingStep(space uint8) int {
	switch space {
	case SPACE_200KHz:
		return 20
	case SPACE_50KHz:
		return 5
	default:
		return 10
	}
}
