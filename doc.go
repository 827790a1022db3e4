// Package pcm provides an in-memory representation of multi-channel
// pulse-code-modulated audio and a bidirectional codec for the RIFF/WAVE
// container format.
//
// A PCM value holds the signal parameters (sample rate, channel count and
// sample representation) together with the decoded frames, one Sample per
// channel per frame. Decoder reads a WAVE stream into a PCM, Encoder
// serializes a PCM back into a byte-exact WAVE container, including the
// conditional fact chunk required by non-integer formats.
//
// The set of sample representations is wider than the set of wire codecs:
// the format resolver recognizes integer PCM (8/16/32-bit) and IEEE float
// (32/64-bit) headers, while raw payload transfer is implemented for
// unsigned 8-bit and signed 16-bit samples only. ADPCM variants exist as
// placeholders and are rejected with ErrUnimplementedSampleType on any
// payload path.
//
// For interop with the go-audio ecosystem, PCM values convert to and from
// audio.IntBuffer and audio.Float32Buffer.
package pcm
