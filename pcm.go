package pcm

import (
	"math"
	"time"
)

// Parameters describes a PCM signal: how often it is sampled, across how
// many channels, and which representation every sample uses. All samples of
// a signal share the same SampleType; this is an invariant of PCM, not a
// convention.
type Parameters struct {
	// SampleRate is the number of frames per second.
	SampleRate uint32
	// NumChannels is the number of samples per frame.
	NumChannels uint16
	// SampleType is the representation shared by every sample.
	SampleType SampleType
}

// Frame holds one sample per channel for a single point in time.
type Frame []Sample

// LoopInfo describes one loop region in frame indices.
type LoopInfo struct {
	Start uint64
	End   uint64
}

// PCM is a decoded audio signal. It is constructed wholesale by a Decoder
// or an external producer and consumed wholesale by an Encoder; callers
// that mutate it must keep every frame at NumChannels samples of the
// parameters' sample type.
type PCM struct {
	Parameters Parameters
	// LoopInfo carries loop points when the producer knows them. The wave
	// codec never populates it; it is part of the interchange shape only.
	LoopInfo []LoopInfo
	Frames   []Frame
}

// Clone returns a deep copy, for handing the signal to an independent
// consumer.
func (p *PCM) Clone() *PCM {
	if p == nil {
		return nil
	}

	out := &PCM{Parameters: p.Parameters}

	if p.LoopInfo != nil {
		out.LoopInfo = append([]LoopInfo(nil), p.LoopInfo...)
	}

	if p.Frames != nil {
		out.Frames = make([]Frame, len(p.Frames))
		for i, frame := range p.Frames {
			out.Frames[i] = append(Frame(nil), frame...)
		}
	}

	return out
}

// FrameSize returns the storage size of one frame in bytes.
func (f Frame) FrameSize() int {
	if len(f) == 0 {
		return 0
	}

	return len(f) * f[0].Type.BytesPerSample()
}

// AudioSize returns the size of the raw sample payload in bytes.
func (p *PCM) AudioSize() int {
	if p == nil || len(p.Frames) == 0 {
		return 0
	}

	return len(p.Frames) * p.Frames[0].FrameSize()
}

// Duration returns the play time of the signal.
func (p *PCM) Duration() time.Duration {
	if p == nil || p.Parameters.SampleRate == 0 {
		return 0
	}

	seconds := float64(len(p.Frames)) / float64(p.Parameters.SampleRate)

	return time.Duration(math.Round(seconds * float64(time.Second)))
}
