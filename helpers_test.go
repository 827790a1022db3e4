package pcm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

type testChunk struct {
	id   string
	size uint32
	data []byte
}

var (
	errFileTooSmall         = errors.New("file too small")
	errInvalidRiffWaveHdr   = errors.New("invalid riff/wave header")
	errChunkExceedsFileSize = errors.New("chunk exceeds file size")
)

func parseWavChunks(data []byte) ([]testChunk, error) {
	if len(data) < 12 {
		return nil, errFileTooSmall
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errInvalidRiffWaveHdr
	}

	chunks := make([]testChunk, 0)

	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += 8

		end := offset + int(size)
		if end > len(data) {
			return nil, fmt.Errorf("%w: %q", errChunkExceedsFileSize, id)
		}

		payload := append([]byte(nil), data[offset:end]...)
		chunks = append(chunks, testChunk{id: id, size: size, data: payload})

		offset = end
		if size%2 == 1 {
			offset++
		}
	}

	return chunks, nil
}

func findChunk(chunks []testChunk, id string) (*testChunk, int) {
	for i := range chunks {
		if chunks[i].id == id {
			return &chunks[i], i
		}
	}

	return nil, -1
}

// buildWavBytes assembles a minimal wave container by hand so malformed
// inputs can be produced as well as valid ones.
func buildWavBytes(tb testing.TB, formatTag, numChans uint16, sampleRate uint32, bitsPerSample uint16, payload []byte) []byte {
	tb.Helper()

	var buf bytes.Buffer

	buf.WriteString("RIFF")
	mustWriteLE(tb, &buf, uint32(36+len(payload)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	mustWriteLE(tb, &buf, uint32(16))
	mustWriteLE(tb, &buf, formatTag)
	mustWriteLE(tb, &buf, numChans)
	mustWriteLE(tb, &buf, sampleRate)
	mustWriteLE(tb, &buf, sampleRate*uint32(numChans)*uint32(bitsPerSample/8))
	mustWriteLE(tb, &buf, numChans*(bitsPerSample/8))
	mustWriteLE(tb, &buf, bitsPerSample)
	buf.WriteString("data")
	mustWriteLE(tb, &buf, uint32(len(payload)))
	buf.Write(payload)

	return buf.Bytes()
}

func mustWriteLE(tb testing.TB, buf *bytes.Buffer, v any) {
	tb.Helper()

	err := binary.Write(buf, binary.LittleEndian, v)
	if err != nil {
		tb.Fatalf("write little endian: %v", err)
	}
}

// encodeToBytes runs the encoder against a temp file and returns the
// resulting container bytes. Encode errors are returned for assertion.
func encodeToBytes(tb testing.TB, p *PCM) ([]byte, error) {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "out.wav")

	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create temp wav: %v", err)
	}

	encErr := NewEncoder(f).Encode(p)

	err = f.Close()
	if err != nil {
		tb.Fatalf("close temp wav: %v", err)
	}

	if encErr != nil {
		return nil, encErr
	}

	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read temp wav: %v", err)
	}

	return data, nil
}
