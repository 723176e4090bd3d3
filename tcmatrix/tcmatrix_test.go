package tcmatrix

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/rmera/tcint/basis"
	"github.com/rmera/tcint/threec"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
	"gonum.org/v1/gonum/mat"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func addShell(Te *testing.T, B *basis.Basis, kind string, pos [3]float64, decays ...float64) {
	Te.Helper()
	lmax, _ := basis.Level(kind[len(kind)-1])
	var prims []basis.Primitive
	for i, d := range decays {
		c := make([]float64, lmax+1)
		for l := range c {
			c[l] = 0.4 + 0.1*float64(i+l)
		}
		prims = append(prims, basis.Primitive{Decay: d, Contraction: c})
	}
	if _, err := B.AddShell(kind, pos, prims); err != nil {
		Te.Fatal(err)
	}
}

func testBases(Te *testing.T) (aux, orb *basis.Basis) {
	A, B := [3]float64{0, 0, -0.7}, [3]float64{0, 0.2, 0.7}
	orb = basis.NewBasis()
	addShell(Te, orb, "S", A, 3.4, 0.62, 0.17)
	addShell(Te, orb, "P", A, 0.8)
	addShell(Te, orb, "S", B, 3.4, 0.62, 0.17)
	addShell(Te, orb, "D", B, 1.1)
	aux = basis.NewBasis()
	addShell(Te, aux, "S", A, 2.0, 0.5)
	addShell(Te, aux, "SPD", B, 1.4)
	addShell(Te, aux, "F", A, 0.9)
	return
}

func TestFill(Te *testing.T) {
	aux, orb := testBases(Te)
	O := DefaultOptions()
	O.Cpus(2)
	O.Logger(zaptest.NewLogger(Te))
	t, err := Fill(aux, orb, O)
	if err != nil {
		Te.Fatal(err)
	}
	naux, norb := t.Dims()
	if naux != 17 || norb != 10 || t.Len() != 17 {
		Te.Fatalf("Tensor dimensions: %d %d", naux, norb)
	}
	for i := 0; i < naux; i++ {
		M := t.Matrix(i)
		if !mat.EqualApprox(M, M.T(), 1e-14) {
			Te.Errorf("Matrix %d is not symmetric", i)
		}
	}
	//compare with a block computed directly: P shell (functions 1-3), SPD auxiliary
	//shell (functions 1-9), D shell (functions 5-9).
	p, a, d := orb.Shell(1), aux.Shell(1), orb.Shell(3)
	block, _, err := threec.Block(p, a, d, O.Accuracy())
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 9; j++ {
			for k := 0; k < 5; k++ {
				want := block.At(i, 5*j+k)
				got := t.Matrix(a.Start()+j).At(p.Start()+i, d.Start()+k)
				if got != want {
					Te.Errorf("Element (%d %d %d): %g, want %g", i, j, k, got, want)
				}
			}
		}
	}
	Te.Log(t.Stats(1e-10))
}

func TestFillSerialEqualsConcurrent(Te *testing.T) {
	aux, orb := testBases(Te)
	O := DefaultOptions()
	O.Cpus(1)
	serial, err := Fill(aux, orb, O)
	if err != nil {
		Te.Fatal(err)
	}
	O.Cpus(8)
	conc, err := Fill(aux, orb, O)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < serial.Len(); i++ {
		if !mat.Equal(serial.Matrix(i), conc.Matrix(i)) {
			Te.Errorf("Matrix %d differs between serial and concurrent runs", i)
		}
	}
}

func TestFillError(Te *testing.T) {
	aux, orb := testBases(Te)
	addShell(Te, aux, "H", [3]float64{}, 1.0)
	addShell(Te, aux, "S", [3]float64{}, 1.0)
	O := DefaultOptions()
	O.Cpus(3)
	_, err := Fill(aux, orb, O)
	if err == nil {
		Te.Fatal("H auxiliary shell accepted")
	}
	var te threec.Error
	if !errors.As(err, &te) || !strings.Contains(err.Error(), "FillContext") {
		Te.Errorf("The integral error was not kept and decorated: %v", err)
	}
	Te.Log(err)
}

func TestFillCanceled(Te *testing.T) {
	aux, orb := testBases(Te)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	O := DefaultOptions()
	O.Cpus(2)
	t, err := FillContext(ctx, aux, orb, O)
	if err == nil || t != nil {
		Te.Fatal("Canceled context didn't stop the computation")
	}
	if !errors.Is(err, context.Canceled) {
		Te.Errorf("Cancellation not reported as context.Canceled: %v", err)
	}
	if e, ok := err.(Error); !ok || !e.Critical() {
		Te.Errorf("Unexpected error type %T", err)
	}
}

func TestTransform(Te *testing.T) {
	aux, orb := testBases(Te)
	t, err := Fill(aux, orb, nil)
	if err != nil {
		Te.Fatal(err)
	}
	n := t.Len()
	I := mat.NewDiagDense(n, nil)
	for i := 0; i < n; i++ {
		I.SetDiag(i, 1)
	}
	u, err := t.Transform(I)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < n; i++ {
		if !mat.Equal(u.Matrix(i), t.Matrix(i)) {
			Te.Errorf("Identity transformation changed matrix %d", i)
		}
	}
	if _, err := t.Transform(mat.NewDense(n, n+1, nil)); err == nil {
		Te.Error("Non-square transformation accepted")
	}
}

func TestInverseSqrt(Te *testing.T) {
	aux, _ := testBases(Te)
	S, err := OverlapMatrix(aux, threec.DefaultAccuracy)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < aux.Size(); i++ {
		if S.At(i, i) <= 0 {
			Te.Errorf("Diagonal element %d of the overlap is %g", i, S.At(i, i))
		}
	}
	V, dropped, err := InverseSqrt(S, 1e-10)
	if err != nil {
		Te.Fatal(err)
	}
	if dropped != 0 {
		Te.Errorf("%d eigenvectors dropped", dropped)
	}
	var VS, VSV mat.Dense
	VS.Mul(V, S)
	VSV.Mul(&VS, V)
	n := aux.Size()
	I := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		I.Set(i, i, 1)
	}
	if !mat.EqualApprox(&VSV, I, 1e-8) {
		Te.Errorf("V S V is not the identity:\n%v", mat.Formatted(&VSV))
	}
}

func TestOrthogonalize(Te *testing.T) {
	aux, orb := testBases(Te)
	t, err := Fill(aux, orb, nil)
	if err != nil {
		Te.Fatal(err)
	}
	O := DefaultOptions()
	O.Eps(1e-10)
	o, err := Orthogonalize(t, aux, O)
	if err != nil {
		Te.Fatal(err)
	}
	if o.Len() != t.Len() || o.Norm() == 0 {
		Te.Errorf("Orthogonalized tensor: %d matrices, norm %g", o.Len(), o.Norm())
	}
	_, other := testBases(Te)
	if _, err := Orthogonalize(t, other, O); err == nil {
		Te.Error("Auxiliary basis of the wrong size accepted")
	}
}

func TestStats(Te *testing.T) {
	t := NewTensor(2, 2)
	t.Matrix(0).Set(0, 0, -4)
	t.Matrix(1).Set(1, 0, 2)
	s := t.Stats(1e-3)
	if s.N != 8 || s.MaxAbs != 4 || s.MeanAbs != 0.75 || s.Negligible != 0.75 {
		Te.Errorf("Unexpected stats: %+v", s)
	}
	if math.Abs(t.Norm()-math.Sqrt(20)) > 1e-12 {
		Te.Errorf("Norm: %g", t.Norm())
	}
}
