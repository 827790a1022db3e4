package pcm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

var (
	// ErrUnexpectedTag is returned when one of the fixed container tags
	// (RIFF, WAVE, fmt , data) is not found at its expected position.
	ErrUnexpectedTag = errors.New("unexpected RIFF tag")

	errNoChannels = errors.New("channel count must be at least 1")
)

// Decoder reads a wave container into a PCM value.
//
// The reader is strictly sequential: it expects the RIFF header, the fmt
// chunk and the data chunk in that order and does not skip or collect any
// other chunk. The declared fmt and RIFF sizes are read and discarded; the
// data size bounds the payload read.
type Decoder struct {
	r      io.ReadSeeker
	parser *riff.Parser

	NumChans       uint16
	BitDepth       uint16
	SampleRate     uint32
	WavAudioFormat uint16
}

// NewDecoder creates a decoder for the passed wave reader.
// Note that the reader doesn't get rewinded as the container is processed.
func NewDecoder(r io.ReadSeeker) *Decoder {
	return &Decoder{
		r:      r,
		parser: riff.New(r),
	}
}

// Decode consumes the container and returns the decoded signal.
//
// Header parsing is more permissive than payload decoding: any sample type
// the resolver knows is accepted, but a non-empty data chunk can only be
// decoded for Unsigned8 and Signed16 payloads. A data size that is not a
// whole number of frames leaves the trailing partial frame undecoded.
func (d *Decoder) Decode() (*PCM, error) {
	err := d.readRIFFHeader()
	if err != nil {
		return nil, err
	}

	err = d.readFmtChunk()
	if err != nil {
		return nil, err
	}

	sampleType, err := SampleTypeFromFormat(d.WavAudioFormat, d.BitDepth)
	if err != nil {
		return nil, err
	}

	data, err := d.readDataChunk()
	if err != nil {
		return nil, err
	}

	frames, err := decodeFrames(data, int(d.NumChans), sampleType)
	if err != nil {
		return nil, err
	}

	return &PCM{
		Parameters: Parameters{
			SampleRate:  d.SampleRate,
			NumChannels: d.NumChans,
			SampleType:  sampleType,
		},
		LoopInfo: nil,
		Frames:   frames,
	}, nil
}

func (d *Decoder) readRIFFHeader() error {
	id, size, err := d.parser.IDnSize()
	if err != nil {
		return fmt.Errorf("failed to read the RIFF header: %w", err)
	}

	if id != riff.RiffID {
		return tagError(riff.RiffID, id)
	}

	d.parser.ID = id
	// overall chunk size, not used to bound parsing
	d.parser.Size = size

	err = binary.Read(d.r, binary.BigEndian, &d.parser.Format)
	if err != nil {
		return fmt.Errorf("failed to read the container format: %w", err)
	}

	if d.parser.Format != riff.WavFormatID {
		return tagError(riff.WavFormatID, d.parser.Format)
	}

	return nil
}

func (d *Decoder) readFmtChunk() error {
	id, _, err := d.parser.IDnSize()
	if err != nil {
		return fmt.Errorf("failed to read the fmt chunk header: %w", err)
	}

	if id != riff.FmtID {
		return tagError(riff.FmtID, id)
	}

	err = binary.Read(d.r, binary.LittleEndian, &d.WavAudioFormat)
	if err != nil {
		return fmt.Errorf("failed to read the audio format: %w", err)
	}

	err = binary.Read(d.r, binary.LittleEndian, &d.NumChans)
	if err != nil {
		return fmt.Errorf("failed to read the number of channels: %w", err)
	}

	err = binary.Read(d.r, binary.LittleEndian, &d.SampleRate)
	if err != nil {
		return fmt.Errorf("failed to read the sample rate: %w", err)
	}

	var (
		byteRate   uint32
		blockAlign uint16
	)

	err = binary.Read(d.r, binary.LittleEndian, &byteRate)
	if err != nil {
		return fmt.Errorf("failed to read the byte rate: %w", err)
	}

	err = binary.Read(d.r, binary.LittleEndian, &blockAlign)
	if err != nil {
		return fmt.Errorf("failed to read the block align: %w", err)
	}

	err = binary.Read(d.r, binary.LittleEndian, &d.BitDepth)
	if err != nil {
		return fmt.Errorf("failed to read the bit depth: %w", err)
	}

	if d.NumChans < 1 {
		return errNoChannels
	}

	return nil
}

func (d *Decoder) readDataChunk() ([]byte, error) {
	id, size, err := d.parser.IDnSize()
	if err != nil {
		return nil, fmt.Errorf("failed to read the data chunk header: %w", err)
	}

	if id != riff.DataFormatID {
		return nil, tagError(riff.DataFormatID, id)
	}

	data := make([]byte, size)

	_, err = io.ReadFull(d.r, data)
	if err != nil {
		return nil, fmt.Errorf("failed to read the data chunk payload: %w", err)
	}

	return data, nil
}

// decodeFrames materializes whole frames out of the data chunk payload.
// Decoding stops when the in-memory cursor is exhausted, not when the
// underlying stream ends; a trailing partial frame is dropped.
func decodeFrames(data []byte, numChans int, t SampleType) ([]Frame, error) {
	frameSize := numChans * t.BytesPerSample()

	var frameCount int
	if frameSize > 0 {
		frameCount = len(data) / frameSize
	}

	if frameCount == 0 {
		return nil, nil
	}

	decodeF, err := sampleDecodeFunc(t)
	if err != nil {
		return nil, err
	}

	cursor := bytes.NewReader(data[:frameCount*frameSize])
	scratch := make([]byte, t.BytesPerSample())
	frames := make([]Frame, frameCount)

	for i := range frames {
		frame := make(Frame, numChans)

		for j := range frame {
			frame[j], err = decodeF(cursor, scratch)
			if err != nil {
				return nil, fmt.Errorf("failed to decode sample: %w", err)
			}
		}

		frames[i] = frame
	}

	return frames, nil
}

func tagError(want, got [4]byte) error {
	return fmt.Errorf("%w: expected %q, got %q", ErrUnexpectedTag, string(want[:]), string(got[:]))
}
