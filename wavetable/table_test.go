// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/m-far/GrupoFWP/wave"
)

func sineTable(t *testing.T, n int) *Table {
	t.Helper()

	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		samples[i] = math.Sin(2 * math.Pi * float64(i) / float64(n))
	}

	table, err := New(samples)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return table
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()

	if _, err := New(nil); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("New(nil) error = %v, want ErrEmptyTable", err)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3}
	table, err := New(src)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	src[0] = 99
	if table.At(0) == 99 {
		t.Error("New() aliased the caller's slice")
	}
}

func TestTable_AtSamplePoints(t *testing.T) {
	t.Parallel()

	table := sineTable(t, 1024)

	// On-grid phases reproduce the stored samples exactly.
	for _, i := range []int{0, 1, 100, 512, 1023} {
		phase := float64(i) / 1024
		want := math.Sin(2 * math.Pi * phase)
		if got := table.At(phase); math.Abs(got-want) > 1e-12 {
			t.Errorf("At(%v) = %v, want %v", phase, got, want)
		}
	}
}

func TestTable_AtWrapsPhase(t *testing.T) {
	t.Parallel()

	table := sineTable(t, 256)

	for _, phase := range []float64{0.3, 1.3, -0.7, 42.3} {
		if got, want := table.At(phase), table.At(0.3); math.Abs(got-want) > 1e-12 {
			t.Errorf("At(%v) = %v, want At(0.3) = %v", phase, got, want)
		}
	}
}

func TestTable_InterpolationFidelity(t *testing.T) {
	t.Parallel()

	// Off-grid lookups of a densely sampled sine stay close to the true
	// function.
	table := sineTable(t, 2048)

	for _, phase := range []float64{0.1234, 0.4567, 0.789, 0.99991} {
		want := math.Sin(2 * math.Pi * phase)
		if got := table.At(phase); math.Abs(got-want) > 1e-6 {
			t.Errorf("At(%v) = %v, want %v", phase, got, want)
		}
	}
}

func TestTable_FuncDrivesDescriptor(t *testing.T) {
	t.Parallel()

	table := sineTable(t, 2048)

	w, err := wave.New(wave.Custom, 100, 1, wave.WithCustom(table.Func()))
	if err != nil {
		t.Fatalf("wave.New() error = %v", err)
	}

	time := []float64{0, 0.0025, 0.005, 0.0075} // quarter periods at 100Hz
	got, err := w.Evaluate(time)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	want := []float64{0, 1, 0, -1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Errorf("Evaluate()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDownmix(t *testing.T) {
	t.Parallel()

	got := downmix([]float64{1, 0, 0.5, 0.5, -1, 0}, 2)
	want := []float64{0.5, 0.5, -0.5}

	if len(got) != len(want) {
		t.Fatalf("downmix() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("downmix()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	samples := []float64{0.25, -0.5, 0.1}
	normalize(samples)

	if samples[1] != -1 {
		t.Errorf("normalize() peak = %v, want -1", samples[1])
	}
	if samples[0] != 0.5 {
		t.Errorf("normalize()[0] = %v, want 0.5", samples[0])
	}

	zeros := []float64{0, 0}
	normalize(zeros)
	if zeros[0] != 0 || zeros[1] != 0 {
		t.Error("normalize() altered all-zero input")
	}
}

func TestFromWAV_RoundTrip(t *testing.T) {
	t.Parallel()

	// Write one sine cycle as a 16-bit stereo WAV, then load it back.
	const n = 512
	path := filepath.Join(t.TempDir(), "cycle.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}

	enc := wav.NewEncoder(f, 44100, 16, 2, 1)
	ints := make([]int, n*2)
	for i := 0; i < n; i++ {
		v := int(math.Round(16000 * math.Sin(2*math.Pi*float64(i)/n)))
		ints[i*2] = v
		ints[i*2+1] = v
	}
	if err := enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: 44100},
		Data:           ints,
		SourceBitDepth: 16,
	}); err != nil {
		t.Fatalf("wav encode error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("wav close error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("file close error = %v", err)
	}

	rf, err := os.Open(path)
	if err != nil {
		t.Fatalf("os.Open() error = %v", err)
	}
	defer rf.Close()

	table, err := FromWAV(rf)
	if err != nil {
		t.Fatalf("FromWAV() error = %v", err)
	}

	if table.Len() != n {
		t.Fatalf("Len() = %d, want %d (stereo downmixed)", table.Len(), n)
	}

	// Loading normalizes to peak 1; compare against the normalized sine.
	for _, i := range []int{32, 128, 300, 480} {
		phase := float64(i) / n
		want := math.Sin(2 * math.Pi * phase)
		if got := table.At(phase); math.Abs(got-want) > 1e-2 {
			t.Errorf("At(%v) = %v, want %v", phase, got, want)
		}
	}
}

func TestFromWAV_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bogus.wav")
	if err := os.WriteFile(path, []byte("definitely not a wav"), 0o600); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("os.Open() error = %v", err)
	}
	defer f.Close()

	if _, err := FromWAV(f); !errors.Is(err, ErrNotWavFile) {
		t.Errorf("FromWAV(garbage) error = %v, want ErrNotWavFile", err)
	}
}

func TestFromPCM16LE(t *testing.T) {
	t.Parallel()

	// Two mono samples: +16384 and -16384 little-endian.
	raw := []byte{0x00, 0x40, 0x00, 0xC0}

	table, err := fromPCM16LE(raw, 1)
	if err != nil {
		t.Fatalf("fromPCM16LE() error = %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	// Normalization scales the pair to ±1.
	if got := table.At(0); math.Abs(got-1) > 1e-12 {
		t.Errorf("At(0) = %v, want 1", got)
	}
}

func TestFromFloats_Empty(t *testing.T) {
	t.Parallel()

	if _, err := fromFloats(nil, 1); !errors.Is(err, ErrNoAudioData) {
		t.Errorf("fromFloats(nil) error = %v, want ErrNoAudioData", err)
	}
}
