package pcm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrUnimplementedSampleType is returned when a raw payload codec is
// requested for a representation that only exists as a placeholder.
var ErrUnimplementedSampleType = errors.New("unimplemented sample representation")

// sampleDecodeFunc returns a function that reads one raw sample of the
// given representation. Payload decoding is narrower than header parsing:
// only Unsigned8 and Signed16 have a wire codec.
func sampleDecodeFunc(t SampleType) (func(io.Reader, []byte) (Sample, error), error) {
	// NOTE: wav PCM data is stored using little-endian
	switch t {
	case Unsigned8:
		return func(r io.Reader, buf []byte) (Sample, error) {
			if _, err := io.ReadFull(r, buf[:1]); err != nil {
				return Sample{}, err
			}

			return Uint8(buf[0]), nil
		}, nil
	case Signed16:
		return func(r io.Reader, buf []byte) (Sample, error) {
			if _, err := io.ReadFull(r, buf[:2]); err != nil {
				return Sample{}, err
			}

			return Int16(int16(binary.LittleEndian.Uint16(buf[:2]))), nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: cannot decode %s", ErrUnimplementedSampleType, t)
	}
}

// sampleEncodeFunc returns a function that writes one raw sample of the
// given representation, mirroring sampleDecodeFunc.
func sampleEncodeFunc(t SampleType) (func(io.Writer, Sample) error, error) {
	switch t {
	case Unsigned8:
		return func(w io.Writer, s Sample) error {
			_, err := w.Write([]byte{s.Uint8Value()})
			return err
		}, nil
	case Signed16:
		return func(w io.Writer, s Sample) error {
			var buf [2]byte

			binary.LittleEndian.PutUint16(buf[:], uint16(s.Int16Value()))
			_, err := w.Write(buf[:])

			return err
		}, nil
	default:
		return nil, fmt.Errorf("%w: cannot encode %s", ErrUnimplementedSampleType, t)
	}
}
