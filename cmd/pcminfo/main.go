package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cwbudde/pcm"
)

var errMissingInput = errors.New("usage: pcminfo <file.wav>")

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("pcminfo", flag.ContinueOnError)

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if flagSet.NArg() != 1 {
		return errMissingInput
	}

	path := flagSet.Arg(0)

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", path, err)
	}
	defer file.Close()

	signal, err := pcm.NewDecoder(file).Decode()
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}

	fmt.Printf("%s: %d ch, %d Hz, %s\n",
		path,
		signal.Parameters.NumChannels,
		signal.Parameters.SampleRate,
		signal.Parameters.SampleType)
	fmt.Printf("%d frames, %d bytes of audio, duration %s\n",
		len(signal.Frames),
		signal.AudioSize(),
		signal.Duration())

	return nil
}
