package tcmatrix

import (
	"fmt"
	"math"

	"github.com/rmera/tcint/basis"
	"github.com/rmera/tcint/threec"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// OverlapMatrix returns the overlap matrix between the functions of b.
func OverlapMatrix(b *basis.Basis, accuracy float64) (*mat.SymDense, error) {
	S := mat.NewSymDense(b.Size(), nil)
	shells := b.Shells()
	for i, p := range shells {
		for _, q := range shells[i:] {
			block, ok, err := threec.Overlap(p, q, accuracy)
			if err != nil {
				return nil, errDecorate(err, "OverlapMatrix")
			}
			if !ok {
				continue
			}
			r, c := block.Dims()
			for k := 0; k < r; k++ {
				for l := 0; l < c; l++ {
					//SetSym sets both triangles.
					S.SetSym(p.Start()+k, q.Start()+l, block.At(k, l))
				}
			}
		}
	}
	return S, nil
}

// InverseSqrt returns S^(-1/2) for the symmetric matrix S. The eigenvectors of S with
// eigenvalues below eps are left out, so for a singular S the result is the inverse
// square root in the subspace where S is not. It also returns the number of eigenvectors
// dropped.
func InverseSqrt(S *mat.SymDense, eps float64) (*mat.Dense, int, error) {
	var es mat.EigenSym
	if ok := es.Factorize(S, true); !ok {
		return nil, 0, Error{ErrEigen, []string{"InverseSqrt"}, true, nil}
	}
	var U mat.Dense
	es.VectorsTo(&U)
	vals := es.Values(nil)
	n := len(vals)
	d := make([]float64, n)
	dropped := 0
	for i, v := range vals {
		if v < eps {
			dropped++
			continue
		}
		d[i] = 1 / math.Sqrt(v)
	}
	var tmp, ret mat.Dense
	tmp.Mul(&U, mat.NewDiagDense(n, d))
	ret.Mul(&tmp, U.T())
	return &ret, dropped, nil
}

// Orthogonalize returns a new tensor where the auxiliary functions have been
// combined with the inverse square root of the overlap matrix of the auxiliary basis.
// If O is nil, DefaultOptions are used.
func Orthogonalize(t *Tensor, aux *basis.Basis, O *Options) (*Tensor, error) {
	if O == nil {
		O = DefaultOptions()
	}
	if aux.Size() != t.Len() {
		return nil, Error{fmt.Sprintf("%s: auxiliary basis of %d functions for a tensor of %d", ErrDimensions, aux.Size(), t.Len()), []string{"Orthogonalize"}, true, nil}
	}
	S, err := OverlapMatrix(aux, O.Accuracy())
	if err != nil {
		return nil, errDecorate(err, "Orthogonalize")
	}
	V, dropped, err := InverseSqrt(S, O.Eps())
	if err != nil {
		return nil, errDecorate(err, "Orthogonalize")
	}
	if dropped > 0 {
		O.Logger().Warn("Near-linear dependencies in the auxiliary basis", zap.Int("dropped", dropped), zap.Float64("eps", O.Eps()))
	}
	ret, err := t.Transform(V)
	if err != nil {
		return nil, errDecorate(err, "Orthogonalize")
	}
	return ret, nil
}
