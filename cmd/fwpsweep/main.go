// SPDX-License-Identifier: EPL-2.0

// Command fwpsweep renders a frequency sweep to disk, one WAV file per
// step. A YAML file describes the frequencies, the waveform and the output
// format:
//
//	sweep:
//	  start: 100
//	  stop: 1000
//	  step: 100
//	  waveform: sine
//	  amplitude: 0.8
//	  duration_seconds: [0.5]
//	  silence_seconds: [0.1]
//	output:
//	  sample_rate: 44100
//	  directory: out
//	  file_prefix: calib
//
// Each step produces <prefix>_<freq>_Hz.wav containing the tone followed
// by its silence gap.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/m-far/GrupoFWP/device"
	"github.com/m-far/GrupoFWP/stream"
	"github.com/m-far/GrupoFWP/sweep"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fwpsweep: ")

	configPath := flag.String("config", "sweep.yaml", "sweep description file")
	flag.Parse()

	config, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(config); err != nil {
		log.Fatal(err)
	}
}

func run(config *Config) error {
	cfg, err := config.SweepConfig()
	if err != nil {
		return err
	}

	driver, err := sweep.New(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(config.Output.Directory, 0o755); err != nil {
		return err
	}

	log.Printf("rendering %d steps to %s", driver.Len(), config.Output.Directory)

	for {
		step, err := driver.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		name := fmt.Sprintf("%s_%g_Hz.wav", config.Output.FilePrefix, step.Frequency)
		path := filepath.Join(config.Output.Directory, name)
		if err := renderStep(path, step); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		log.Printf("%8.2f Hz for %s -> %s", step.Frequency, step.Duration, name)
	}
}

// renderStep writes one step's tone and silence gap into a single WAV file.
func renderStep(path string, step *sweep.Step) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sink := device.NewWAVFile(f)
	if err := sink.Open(step.Tone.SampleRate(), step.Tone.BufferLength(), step.Tone.Channels()); err != nil {
		return err
	}

	if err := drain(sink, step.Tone); err != nil {
		return err
	}
	if step.Rest != nil {
		if err := drain(sink, step.Rest); err != nil {
			return err
		}
	}

	return sink.Close()
}

func drain(sink device.Backend, s *stream.Session) error {
	for {
		buf, err := s.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		data, clipped := stream.EncodeFloat32LE(buf)
		if clipped > 0 {
			log.Printf("warning: %d samples clamped", clipped)
		}
		if err := sink.Write(data); err != nil {
			return err
		}
	}
}
