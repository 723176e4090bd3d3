/*
 * tcmatrix.go, part of tcint.
 *
 * Copyright 2024 The tcint Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package tcmatrix assembles the three-center overlap integrals between an auxiliary
// basis and a pair of orbital bases into one orbital x orbital matrix per auxiliary
// function, and applies the auxiliary metric to them.
package tcmatrix

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rmera/tcint/basis"
	"github.com/rmera/tcint/threec"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Tensor holds, for each auxiliary function, the matrix of its three-center
// integrals with all the pairs of orbital functions.
type Tensor struct {
	norb int
	m    []*mat.Dense
}

// NewTensor returns a zero tensor for naux auxiliary and norb orbital functions.
func NewTensor(naux, norb int) *Tensor {
	t := &Tensor{norb: norb, m: make([]*mat.Dense, naux)}
	for i := range t.m {
		t.m[i] = mat.NewDense(norb, norb, nil)
	}
	return t
}

// Len returns the number of auxiliary functions.
func (t *Tensor) Len() int { return len(t.m) }

// Dims returns the number of auxiliary and of orbital functions.
func (t *Tensor) Dims() (naux, norb int) { return len(t.m), t.norb }

// Matrix returns the matrix for the ith auxiliary function. It is not a copy.
func (t *Tensor) Matrix(i int) *mat.Dense { return t.m[i] }

// Norm returns the Frobenius norm of the whole tensor.
func (t *Tensor) Norm() float64 {
	var n float64
	for _, m := range t.m {
		f := mat.Norm(m, 2)
		n += f * f
	}
	return math.Sqrt(n)
}

// Transform returns a new tensor where the matrix for the auxiliary function k is
// sum_l V[k][l] M_l. V must be a square matrix with t.Len() rows.
func (t *Tensor) Transform(V mat.Matrix) (*Tensor, error) {
	r, c := V.Dims()
	if r != len(t.m) || c != len(t.m) {
		return nil, Error{fmt.Sprintf("%s: %dx%d matrix for a tensor with %d auxiliary functions", ErrDimensions, r, c, len(t.m)), []string{"Transform"}, true, nil}
	}
	ret := NewTensor(len(t.m), t.norb)
	var tmp mat.Dense
	for k, dst := range ret.m {
		for l, src := range t.m {
			v := V.At(k, l)
			if v == 0 {
				continue
			}
			tmp.Scale(v, src)
			dst.Add(dst, &tmp)
		}
	}
	return ret, nil
}

// Stats summarizes the magnitude of the elements of a tensor.
type Stats struct {
	N          int     //number of elements
	MeanAbs    float64 //mean absolute value
	MaxAbs     float64
	Negligible float64 //fraction of the elements with an absolute value under the threshold
}

func (s Stats) String() string {
	return fmt.Sprintf("%d elements, mean |x| %.3e, max |x| %.3e, %.1f%% negligible", s.N, s.MeanAbs, s.MaxAbs, 100*s.Negligible)
}

// Stats returns statistics on the absolute values of the elements of the tensor,
// counting as negligible those with an absolute value below threshold.
func (t *Tensor) Stats(threshold float64) Stats {
	abs := make([]float64, 0, len(t.m)*t.norb*t.norb)
	for _, m := range t.m {
		for i := 0; i < t.norb; i++ {
			for _, v := range m.RawRowView(i) {
				abs = append(abs, math.Abs(v))
			}
		}
	}
	s := Stats{N: len(abs)}
	if len(abs) == 0 {
		return s
	}
	s.MeanAbs = stat.Mean(abs, nil)
	s.MaxAbs = floats.Max(abs)
	var neg int
	for _, v := range abs {
		if v < threshold {
			neg++
		}
	}
	s.Negligible = float64(neg) / float64(len(abs))
	return s
}

// Fill computes the tensor of three-center overlap integrals (p aux q), where p and q
// are functions of the orbital basis orb, and aux runs over the functions of aux.
// The work is split by auxiliary shell, each going to its own goroutine, with at most
// O.Cpus() running at the same time. Each goroutine writes only to the matrices of its
// own auxiliary functions. The first error stops the calculation and is returned.
// If O is nil, DefaultOptions are used.
func Fill(aux, orb *basis.Basis, O *Options) (*Tensor, error) {
	return FillContext(context.Background(), aux, orb, O)
}

// FillContext is like Fill, but it gives up when ctx is done.
func FillContext(ctx context.Context, aux, orb *basis.Basis, O *Options) (*Tensor, error) {
	if O == nil {
		O = DefaultOptions()
	}
	log := O.Logger()
	t := NewTensor(aux.Size(), orb.Size())
	log.Info("Computing three-center integrals",
		zap.Int("auxShells", aux.Len()), zap.Int("auxFunctions", aux.Size()),
		zap.Int("orbShells", orb.Len()), zap.Int("orbFunctions", orb.Size()),
		zap.Float64("accuracy", O.Accuracy()), zap.Int("cpus", O.Cpus()))
	start := time.Now()
	skipped := make([]int, aux.Len())
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(O.Cpus())
	for i, a := range aux.Shells() {
		i, a := i, a
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := t.fillAuxShell(a, orb, O.Accuracy())
			if err != nil {
				return errDecorate(err, fmt.Sprintf("FillContext: auxiliary shell %d", i))
			}
			skipped[i] = n
			log.Debug("Auxiliary shell done", zap.Int("shell", i), zap.String("type", a.Type()), zap.Int("negligibleBlocks", n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("Three-center integrals failed", zap.Error(err))
		return nil, errDecorate(err, "FillContext")
	}
	var total int
	for _, v := range skipped {
		total += v
	}
	npairs := orb.Len() * (orb.Len() + 1) / 2
	log.Info("Three-center integrals done",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("blocks", npairs*aux.Len()), zap.Int("negligibleBlocks", total))
	return t, nil
}

// fillAuxShell computes the integrals for all the functions of the auxiliary shell a,
// and returns the number of shell triples that were negligible.
// Since (p a q) = (q a p), only the pairs with q >= p are computed.
func (t *Tensor) fillAuxShell(a *basis.Shell, orb *basis.Basis, accuracy float64) (int, error) {
	shells := orb.Shells()
	negligible := 0
	na := a.NumFunc()
	for ip, p := range shells {
		for _, q := range shells[ip:] {
			block, ok, err := threec.Block(p, a, q, accuracy)
			if err != nil {
				return negligible, errDecorate(err, "fillAuxShell")
			}
			if !ok {
				negligible++
				continue
			}
			np, nq := p.NumFunc(), q.NumFunc()
			for j := 0; j < na; j++ {
				M := t.m[a.Start()+j]
				for i := 0; i < np; i++ {
					row := block.RawRowView(i)[nq*j : nq*(j+1)]
					for k, v := range row {
						M.Set(p.Start()+i, q.Start()+k, v)
						M.Set(q.Start()+k, p.Start()+i, v)
					}
				}
			}
		}
	}
	return negligible, nil
}
