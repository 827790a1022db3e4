package pcm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/riff"
)

// CIDFact is the chunk ID for the fact chunk.
var CIDFact = [4]byte{'f', 'a', 'c', 't'}

var (
	// ErrTooMuchData is returned when the sample payload does not fit the
	// container's 32-bit size fields.
	ErrTooMuchData = errors.New("too much data for a wave container")
	// ErrTooManyFrames is returned when the frame count does not fit the
	// fact chunk's 32-bit counter.
	ErrTooManyFrames = errors.New("too many frames for a fact chunk")

	errNilPCM = errors.New("can't encode a nil PCM")
)

// fmt chunk interior without any extension bytes, plus the 8-byte chunk
// header carried by every chunk.
const (
	fmtChunkInterior = 16
	chunkHeaderSize  = 8
)

// Encoder serializes PCM values into wave containers.
//
// All chunk sizes are computed up front, so the output is written in a
// single forward pass. On error the destination must be treated as
// truncated and discarded; nothing is rolled back.
type Encoder struct {
	w io.WriteSeeker

	// WrittenBytes tracks the total number of bytes written out.
	WrittenBytes int
}

// NewEncoder creates a new encoder writing to w.
func NewEncoder(w io.WriteSeeker) *Encoder {
	return &Encoder{w: w}
}

// AddLE serializes and adds the passed value using little endian.
func (e *Encoder) AddLE(src any) error {
	e.WrittenBytes += binary.Size(src)

	err := binary.Write(e.w, binary.LittleEndian, src)
	if err != nil {
		return fmt.Errorf("failed to write little endian: %w", err)
	}

	return nil
}

// Encode writes the full wave container for the passed signal.
//
// Sample representations that need fmt extension bytes (the ADPCM
// placeholders) are rejected with ErrUnimplementedSampleType before any
// byte is written. A fact chunk is emitted whenever the representation's
// best-fit format tag is not integer PCM.
func (e *Encoder) Encode(p *PCM) error {
	if p == nil {
		return errNilPCM
	}

	sampleType := p.Parameters.SampleType
	bytesPerSample := uint64(sampleType.BitDepth()) / 8
	frameSize := uint64(p.Parameters.NumChannels) * bytesPerSample
	dataSize := uint64(len(p.Frames)) * frameSize

	if sampleType.FmtExtraSize() != 0 {
		return fmt.Errorf("%w: fmt chunk extension for %s", ErrUnimplementedSampleType, sampleType)
	}

	needsFact := sampleType.WavAudioFormat() != wavFormatPCM

	var factTotal uint64
	if needsFact {
		factTotal = chunkHeaderSize + 4
	}

	// checked arithmetic: the data chunk and the surrounding RIFF interior
	// must both fit their 32-bit size fields. The interior counts the WAVE
	// tag, the fmt chunk, the conditional fact chunk and the data chunk.
	riffInterior := 4 + (chunkHeaderSize + fmtChunkInterior) + factTotal + (chunkHeaderSize + dataSize)
	if dataSize > math.MaxUint32 || riffInterior > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", ErrTooMuchData, dataSize)
	}

	if needsFact && uint64(len(p.Frames)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d", ErrTooManyFrames, len(p.Frames))
	}

	err := e.writeHeader(p, uint32(riffInterior), uint32(dataSize), needsFact)
	if err != nil {
		return err
	}

	return e.writeFrames(p)
}

func (e *Encoder) writeHeader(p *PCM, riffInterior, dataSize uint32, needsFact bool) error {
	sampleType := p.Parameters.SampleType
	blockAlign := p.Parameters.NumChannels * uint16(sampleType.BitDepth()/8)
	byteRate := p.Parameters.SampleRate * uint32(blockAlign)

	err := e.AddLE(riff.RiffID)
	if err != nil {
		return err
	}

	err = e.AddLE(riffInterior)
	if err != nil {
		return fmt.Errorf("error encoding the RIFF interior size - %w", err)
	}

	err = e.AddLE(riff.WavFormatID)
	if err != nil {
		return err
	}

	err = e.AddLE(riff.FmtID)
	if err != nil {
		return err
	}

	err = e.AddLE(uint32(fmtChunkInterior))
	if err != nil {
		return fmt.Errorf("error encoding the fmt chunk size - %w", err)
	}

	err = e.AddLE(sampleType.WavAudioFormat())
	if err != nil {
		return fmt.Errorf("error encoding the audio format - %w", err)
	}

	err = e.AddLE(p.Parameters.NumChannels)
	if err != nil {
		return fmt.Errorf("error encoding the number of channels - %w", err)
	}

	err = e.AddLE(p.Parameters.SampleRate)
	if err != nil {
		return fmt.Errorf("error encoding the sample rate - %w", err)
	}

	err = e.AddLE(byteRate)
	if err != nil {
		return fmt.Errorf("error encoding the byte rate - %w", err)
	}

	err = e.AddLE(blockAlign)
	if err != nil {
		return fmt.Errorf("error encoding the block align - %w", err)
	}

	err = e.AddLE(sampleType.BitDepth())
	if err != nil {
		return fmt.Errorf("error encoding bits per sample - %w", err)
	}

	if needsFact {
		err = e.AddLE(CIDFact)
		if err != nil {
			return err
		}

		err = e.AddLE(uint32(4))
		if err != nil {
			return fmt.Errorf("error encoding the fact chunk size - %w", err)
		}

		err = e.AddLE(uint32(len(p.Frames)))
		if err != nil {
			return fmt.Errorf("error encoding the fact frame count - %w", err)
		}
	}

	err = e.AddLE(riff.DataFormatID)
	if err != nil {
		return err
	}

	err = e.AddLE(dataSize)
	if err != nil {
		return fmt.Errorf("error encoding the data chunk size - %w", err)
	}

	return nil
}

// writeFrames emits the raw sample payload in frame-major, channel-minor
// order.
func (e *Encoder) writeFrames(p *PCM) error {
	if len(p.Frames) == 0 {
		return nil
	}

	encodeF, err := sampleEncodeFunc(p.Parameters.SampleType)
	if err != nil {
		return err
	}

	bytesPerSample := p.Parameters.SampleType.BytesPerSample()

	for _, frame := range p.Frames {
		for _, sample := range frame {
			err = encodeF(e.w, sample)
			if err != nil {
				return fmt.Errorf("failed to encode sample: %w", err)
			}

			e.WrittenBytes += bytesPerSample
		}
	}

	return nil
}
