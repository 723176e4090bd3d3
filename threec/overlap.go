/*
 * overlap.go, part of tcint.
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

package threec

import (
	"fmt"
	"math"

	"github.com/rmera/tcint/basis"
	"gonum.org/v1/gonum/mat"
)

// FillOverlapBlock adds to block the overlap integrals between the functions
// of a (rows) and b (columns). It uses the same recursion and normalization as
// FillBlock, with a third index that never goes above s, and the same screening
// with only the a-b pair. The return values are as in FillBlock.
func FillOverlapBlock(block *mat.Dense, a, b *basis.Shell, accuracy float64) (bool, error) {
	if err := checkShells(a, b); err != nil {
		return false, errDecorate(err, "FillOverlapBlock")
	}
	if err := checkAccuracy(accuracy); err != nil {
		return false, errDecorate(err, "FillOverlapBlock")
	}
	r, c := block.Dims()
	if r != a.NumFunc() || c != b.NumFunc() {
		return false, Error{fmt.Sprintf("%s: got %dx%d, want %dx%d", ErrBlockShape, r, c, a.NumFunc(), b.NumFunc()), []string{"FillOverlapBlock"}, true, nil}
	}
	ia, ib := newShellIndex(a), newShellIndex(b)
	var S cartTensor
	tA, tB := newTrafo(a), newTrafo(b)
	A, B := a.Pos(), b.Pos()
	dAB := dist2(A, B)
	lnacc := math.Log(accuracy)
	var contributed bool
	for _, pa := range a.Primitives() {
		alpha := pa.Decay
		for _, pb := range b.Primitives() {
			beta := pb.Decay
			sum := alpha + beta
			if alpha*beta*dAB > -sum*lnacc {
				continue
			}
			seed := math.Pow(2*math.Sqrt(alpha*beta)/sum, 1.5) * math.Exp(-alpha*beta/sum*dAB)
			if seed < accuracy {
				continue
			}
			contributed = true
			var P [3]float64
			for d := range P {
				P[d] = (alpha*A[d] + beta*B[d]) / sum
			}
			S.reset(ia.ncart, ib.ncart, 1)
			S.fill(seed, 0.5/sum, sub(P, A), sub(P, B), [3]float64{})
			fillTrafo(tA, a, pa)
			fillTrafo(tB, b, pb)
			for i := 0; i < ia.nfunc; i++ {
				TA := tA.RawRowView(i + ia.offset)
				out := block.RawRowView(i)
				for j := 0; j < ib.nfunc; j++ {
					TB := tB.RawRowView(j + ib.offset)
					var v float64
					for x := ia.lo[i]; x < ia.hi[i]; x++ {
						if TA[x] == 0 {
							continue
						}
						var row float64
						for y := ib.lo[j]; y < ib.hi[j]; y++ {
							row += S.at(x, y, 0) * TB[y]
						}
						v += TA[x] * row
					}
					out[j] += v
				}
			}
		}
	}
	return contributed, nil
}

// Overlap returns a new block with the overlap integrals between the functions of a and b.
func Overlap(a, b *basis.Shell, accuracy float64) (*mat.Dense, bool, error) {
	if err := checkShells(a, b); err != nil {
		return nil, false, errDecorate(err, "Overlap")
	}
	block := mat.NewDense(a.NumFunc(), b.NumFunc(), nil)
	ok, err := FillOverlapBlock(block, a, b, accuracy)
	if err != nil {
		return nil, false, errDecorate(err, "Overlap")
	}
	return block, ok, nil
}
