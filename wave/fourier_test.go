// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"errors"
	"math"
	"testing"
)

func TestNewFourier_OrderValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewFourier(Square, 100, 1, 0); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("NewFourier(order=0) error = %v, want ErrInvalidOrder", err)
	}
	if _, err := NewFourier(Custom, 100, 1, 5); !errors.Is(err, ErrInvalidWaveform) {
		t.Errorf("NewFourier(Custom) error = %v, want ErrInvalidWaveform", err)
	}
}

func TestNewFourier_SineIsExact(t *testing.T) {
	t.Parallel()

	w, err := NewFourier(Sine, 400, 1, 3)
	if err != nil {
		t.Fatalf("NewFourier() error = %v", err)
	}
	if w.Shape() != Sine {
		t.Errorf("Shape() = %v, want Sine", w.Shape())
	}
}

func TestNewFourier_Convergence(t *testing.T) {
	t.Parallel()

	// A high-order series should track the ideal shape closely away from its
	// discontinuities.
	const (
		freq  = 100.0
		order = 200
		n     = 1000
	)
	time := sampleOnePeriod(freq, n)

	tests := []struct {
		name  string
		shape Shape
		ideal []float64
	}{
		{name: "square", shape: Square, ideal: SquareWave(time, freq, 0.5)},
		{name: "sawtooth up", shape: SawtoothUp, ideal: Ramp(time, freq, 1)},
		{name: "sawtooth down", shape: SawtoothDown, ideal: Ramp(time, freq, 0)},
		{name: "triangle", shape: Triangle, ideal: Ramp(time, freq, 0.5)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, err := NewFourier(tt.shape, freq, 1, order)
			if err != nil {
				t.Fatalf("NewFourier() error = %v", err)
			}

			got, err := w.Evaluate(time)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}

			// Compare on the middle of each half-period, skipping the edges
			// where Gibbs ringing concentrates.
			bad := 0
			for i := 0; i < n; i++ {
				p := float64(i) / n
				nearEdge := math.Min(math.Abs(p), math.Min(math.Abs(p-0.5), math.Abs(p-1))) < 0.05
				if nearEdge {
					continue
				}
				if math.Abs(got[i]-tt.ideal[i]) > 0.05 {
					bad++
				}
			}

			if bad > n/50 {
				t.Errorf("series of order %d diverges from ideal at %d/%d interior samples", order, bad, n)
			}
		})
	}
}

func TestNewFourier_MeanIsZero(t *testing.T) {
	t.Parallel()

	const freq = 100.0
	time := sampleOnePeriod(freq, 4000)

	for _, shape := range []Shape{Square, SawtoothUp, SawtoothDown, Triangle} {
		w, err := NewFourier(shape, freq, 1, 25)
		if err != nil {
			t.Fatalf("NewFourier(%v) error = %v", shape, err)
		}
		got, err := w.Evaluate(time)
		if err != nil {
			t.Fatalf("Evaluate() error = %v", err)
		}
		if m := mean(got); math.Abs(m) > 1e-6 {
			t.Errorf("NewFourier(%v) mean over a period = %v, want ≈0", shape, m)
		}
	}
}
