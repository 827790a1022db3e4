package pcm

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned when the fmt chunk carries a format tag
	// outside the resolver's table.
	ErrUnknownFormat = errors.New("unknown audio format tag")
	// ErrUnknownBitsPerSample is returned when the format tag is known but
	// the bit depth is not supported for it.
	ErrUnknownBitsPerSample = errors.New("unsupported bits per sample")
)

// SampleTypeFromFormat resolves a wav (format tag, bits per sample) pair to
// the sample representation it describes.
//
// Integer PCM resolves 8, 16 and 32 bits; 24-bit files are rejected because
// the wire path for Signed24 is not implemented. IEEE float resolves 32 and
// 64 bits. The ADPCM format tags are recognized but every bit depth is
// rejected until their codecs exist.
func SampleTypeFromFormat(formatTag, bitsPerSample uint16) (SampleType, error) {
	switch formatTag {
	case wavFormatPCM:
		switch bitsPerSample {
		case 8:
			return Unsigned8, nil
		case 16:
			return Signed16, nil
		case 32:
			return Signed32, nil
		default:
			return 0, fmt.Errorf("%w: %d for format tag %d", ErrUnknownBitsPerSample, bitsPerSample, formatTag)
		}
	case wavFormatIEEEFloat:
		switch bitsPerSample {
		case 32:
			return Float, nil
		case 64:
			return DoubleFloat, nil
		default:
			return 0, fmt.Errorf("%w: %d for format tag %d", ErrUnknownBitsPerSample, bitsPerSample, formatTag)
		}
	case wavFormatMSADPCM, wavFormatIMAADPCM:
		return 0, fmt.Errorf("%w: %d for format tag %d", ErrUnknownBitsPerSample, bitsPerSample, formatTag)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownFormat, formatTag)
	}
}
