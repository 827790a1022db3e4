// pcmderive reads a wave file and writes the per-channel difference signal
// of its samples: each output frame is the next input sample minus the
// previous one. The derived signal keeps the input parameters and is two
// frames shorter than the input.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cwbudde/pcm"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("pcmderive", flag.ContinueOnError)

	input := flagSet.String("input", "input.wav", "wave file to read")
	output := flagSet.String("output", "output_derived.wav", "wave file to write")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	log.Printf("importing %s", *input)

	inFile, err := os.Open(*input)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", *input, err)
	}
	defer inFile.Close()

	signal, err := pcm.NewDecoder(inFile).Decode()
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", *input, err)
	}

	log.Printf("deriving %d frames", len(signal.Frames))

	derived, err := derive(signal)
	if err != nil {
		return err
	}

	log.Printf("writing %s", *output)

	outFile, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}

	err = pcm.NewEncoder(outFile).Encode(derived)
	if err != nil {
		outFile.Close()

		return fmt.Errorf("error encoding %s: %w", *output, err)
	}

	return outFile.Close()
}

// derive computes the difference signal: out[k] = in[k+1] - in[k-1] for
// every interior frame of the input. Arithmetic wraps around on overflow.
func derive(signal *pcm.PCM) (*pcm.PCM, error) {
	out := &pcm.PCM{Parameters: signal.Parameters}

	if len(signal.Frames) < 3 {
		return out, nil
	}

	numChans := int(signal.Parameters.NumChannels)
	out.Frames = make([]pcm.Frame, len(signal.Frames)-2)

	for i := range out.Frames {
		frame := make(pcm.Frame, numChans)

		for ch := range frame {
			prev := signal.Frames[i][ch]
			next := signal.Frames[i+2][ch]

			switch signal.Parameters.SampleType {
			case pcm.Unsigned8:
				frame[ch] = pcm.Uint8(next.Uint8Value() - prev.Uint8Value())
			case pcm.Signed16:
				frame[ch] = pcm.Int16(next.Int16Value() - prev.Int16Value())
			default:
				return nil, fmt.Errorf("cannot derive %s samples", signal.Parameters.SampleType)
			}
		}

		out.Frames[i] = frame
	}

	return out, nil
}
