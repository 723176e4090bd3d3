/*
 * screen.go, part of tcint.
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
)

// DefaultAccuracy is the screening accuracy used when nothing else is requested.
const DefaultAccuracy = 1e-9

// Triple is a primitive triple that survived screening, with the data
// the recursion needs.
type Triple struct {
	A, B, C int        //indexes of the primitives in their shells.
	Seed    float64    //the integral over the three s primitives.
	Fak     float64    //1/(2(alpha+beta+gamma))
	G       [3]float64 //center of the product of the three Gaussians.
}

func checkAccuracy(acc float64) error {
	if !(acc > 0 && acc < 1) {
		return Error{fmt.Sprintf("%s: %g", ErrBadAccuracy, acc), []string{"checkAccuracy"}, true, nil}
	}
	return nil
}

func dist2(a, b [3]float64) float64 {
	var r float64
	for i := range a {
		d := a[i] - b[i]
		r += d * d
	}
	return r
}

// Screen returns the primitive triples of the shells a, b and c (a being the first
// function of the integral, b the middle one) whose contribution is not provably
// below accuracy. The tests go from cheapest to most expensive, and a triple is
// dropped as soon as one fails.
func Screen(a, b, c *basis.Shell, accuracy float64) ([]Triple, error) {
	if err := checkAccuracy(accuracy); err != nil {
		return nil, errDecorate(err, "Screen")
	}
	A, B, C := a.Pos(), b.Pos(), c.Pos()
	dAC, dAB, dCB := dist2(A, C), dist2(A, B), dist2(C, B)
	lnacc := math.Log(accuracy)
	ret := make([]Triple, 0, a.NumPrimitives()*b.NumPrimitives()*c.NumPrimitives())
	for ic, pc := range c.Primitives() {
		gamma := pc.Decay
		for ia, pa := range a.Primitives() {
			alpha := pa.Decay
			for ib, pb := range b.Primitives() {
				beta := pb.Decay
				sum := alpha + beta + gamma
				threshold := -sum * lnacc
				test := alpha * gamma * dAC
				if test > threshold {
					continue
				}
				test += alpha * beta * dAB
				if test > threshold {
					continue
				}
				test += gamma * beta * dCB
				if test > threshold {
					continue
				}
				fak2 := 1 / sum
				expo := alpha*gamma*dAC + gamma*beta*dCB + alpha*beta*dAB
				seed := math.Pow(8*alpha*beta*gamma/math.Pi, 0.75) * math.Pow(fak2, 1.5) * math.Exp(-fak2*expo)
				if seed < accuracy {
					continue
				}
				t := Triple{A: ia, B: ib, C: ic, Seed: seed, Fak: 0.5 * fak2}
				for d := 0; d < 3; d++ {
					t.G[d] = fak2 * (alpha*A[d] + beta*B[d] + gamma*C[d])
				}
				ret = append(ret, t)
			}
		}
	}
	return ret, nil
}
