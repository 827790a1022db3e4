package pcm

import (
	"testing"
	"time"
)

func TestPCMAudioSize(t *testing.T) {
	p := monoPCM(8000, Uint8(1), Uint8(2), Uint8(3))
	if got := p.AudioSize(); got != 3 {
		t.Errorf("AudioSize()=%d, want 3", got)
	}

	stereo := &PCM{
		Parameters: Parameters{SampleRate: 44100, NumChannels: 2, SampleType: Signed16},
		Frames: []Frame{
			{Int16(0), Int16(0)},
			{Int16(0), Int16(0)},
		},
	}
	if got := stereo.AudioSize(); got != 8 {
		t.Errorf("AudioSize()=%d, want 8", got)
	}

	empty := &PCM{Parameters: Parameters{SampleRate: 8000, NumChannels: 1, SampleType: Signed16}}
	if got := empty.AudioSize(); got != 0 {
		t.Errorf("AudioSize()=%d, want 0", got)
	}
}

func TestPCMDuration(t *testing.T) {
	p := monoPCM(8000, Uint8(1), Uint8(2), Uint8(3))
	if got := p.Duration(); got != 375*time.Microsecond {
		t.Errorf("Duration()=%s, want 375µs", got)
	}

	var noRate PCM
	if got := noRate.Duration(); got != 0 {
		t.Errorf("Duration()=%s, want 0 for zero sample rate", got)
	}

	second := &PCM{
		Parameters: Parameters{SampleRate: 4, NumChannels: 1, SampleType: Unsigned8},
		Frames:     make([]Frame, 4),
	}
	if got := second.Duration(); got != time.Second {
		t.Errorf("Duration()=%s, want 1s", got)
	}
}

func TestPCMClone(t *testing.T) {
	p := &PCM{
		Parameters: Parameters{SampleRate: 8000, NumChannels: 1, SampleType: Unsigned8},
		LoopInfo:   []LoopInfo{{Start: 0, End: 2}},
		Frames:     []Frame{{Uint8(1)}, {Uint8(2)}},
	}

	clone := p.Clone()

	if clone.Parameters != p.Parameters {
		t.Fatalf("clone parameters=%+v, want %+v", clone.Parameters, p.Parameters)
	}

	clone.Frames[0][0] = Uint8(99)
	clone.LoopInfo[0].End = 42

	if p.Frames[0][0].Uint8Value() != 1 {
		t.Error("mutating the clone changed the original frames")
	}

	if p.LoopInfo[0].End != 2 {
		t.Error("mutating the clone changed the original loop info")
	}

	if (*PCM)(nil).Clone() != nil {
		t.Error("cloning a nil PCM should return nil")
	}
}

func TestFrameSize(t *testing.T) {
	frame := Frame{Int16(1), Int16(2)}
	if got := frame.FrameSize(); got != 4 {
		t.Errorf("FrameSize()=%d, want 4", got)
	}

	if got := (Frame{}).FrameSize(); got != 0 {
		t.Errorf("FrameSize()=%d, want 0 for an empty frame", got)
	}
}
