package tcplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/tcint/tcmatrix"
)

func TestMagnitudeHistogram(Te *testing.T) {
	t := tcmatrix.NewTensor(2, 3)
	t.Matrix(0).Set(0, 0, 0.5)
	t.Matrix(0).Set(1, 2, -1e-4)
	t.Matrix(1).Set(2, 2, 3e-8)
	t.Matrix(1).Set(2, 1, 1e-15)
	if n := len(LogMagnitudes(t, 1e-12)); n != 3 {
		Te.Errorf("Got %d values above the floor, want 3", n)
	}
	name := filepath.Join(Te.TempDir(), "hist.png")
	if err := MagnitudeHistogram(t, name, 10, 1e-12); err != nil {
		Te.Fatal(err)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
		Te.Errorf("Plot not written: %v", err)
	}
	if err := MagnitudeHistogram(tcmatrix.NewTensor(1, 1), name, 10, 1e-12); err == nil {
		Te.Error("Histogram of an empty tensor accepted")
	}
}
