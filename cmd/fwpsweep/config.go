// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/m-far/GrupoFWP/sweep"
	"github.com/m-far/GrupoFWP/wave"
)

// Config is the on-disk sweep description. Frequencies may be listed
// explicitly or generated from a (start, stop, step) range; listing both is
// an error.
type Config struct {
	Sweep struct {
		Start float64 `yaml:"start"`
		Stop  float64 `yaml:"stop"`
		Step  float64 `yaml:"step"`

		Frequencies []float64 `yaml:"frequencies"`

		Waveform       string    `yaml:"waveform"`
		Amplitude      float64   `yaml:"amplitude"`
		Durations      []float64 `yaml:"duration_seconds"`
		SilenceSeconds []float64 `yaml:"silence_seconds"`
	} `yaml:"sweep"`

	Output struct {
		SampleRate int    `yaml:"sample_rate"`
		BufferSize int    `yaml:"buffer_size"`
		Directory  string `yaml:"directory"`
		FilePrefix string `yaml:"file_prefix"`
	} `yaml:"output"`
}

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	config.applyDefaults()

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Sweep.Waveform == "" {
		c.Sweep.Waveform = "sine"
	}
	if c.Sweep.Amplitude == 0 {
		c.Sweep.Amplitude = 1
	}
	if c.Output.SampleRate == 0 {
		c.Output.SampleRate = 44100
	}
	if c.Output.BufferSize == 0 {
		c.Output.BufferSize = 1024
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "."
	}
	if c.Output.FilePrefix == "" {
		c.Output.FilePrefix = "sweep"
	}
}

// SweepConfig translates the file representation into a driver config.
func (c *Config) SweepConfig() (sweep.Config, error) {
	freqs := c.Sweep.Frequencies
	if c.Sweep.Step > 0 {
		if len(freqs) > 0 {
			return sweep.Config{}, fmt.Errorf("both frequencies and a range are set")
		}
		freqs = sweep.FromRange(c.Sweep.Start, c.Sweep.Stop, c.Sweep.Step)
	}

	shape, err := wave.ParseShape(c.Sweep.Waveform)
	if err != nil {
		return sweep.Config{}, err
	}

	return sweep.Config{
		Frequencies:  freqs,
		Amplitudes:   []float64{c.Sweep.Amplitude},
		Durations:    toDurations(c.Sweep.Durations),
		Silences:     toDurations(c.Sweep.SilenceSeconds),
		Shape:        shape,
		SampleRate:   c.Output.SampleRate,
		BufferLength: c.Output.BufferSize,
	}, nil
}

func toDurations(seconds []float64) []time.Duration {
	if len(seconds) == 0 {
		return nil
	}

	out := make([]time.Duration, len(seconds))
	for i, s := range seconds {
		out[i] = time.Duration(s * float64(time.Second))
	}

	return out
}
