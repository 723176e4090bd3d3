/*
 * trafo.go, part of tcint.
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

// MaxL is the highest angular momentum level that can be transformed to
// spherical functions, and so the highest level a shell can have in an integral.
const MaxL = 4

// sphTerm is the coefficient of one cartesian monomial in a real solid harmonic.
type sphTerm struct {
	pow  [3]int
	coef float64
}

var (
	sqrt3 = math.Sqrt(3)
	f1    = 2 / math.Sqrt(15)
	f2    = math.Sqrt(2) / math.Sqrt(5)
	f3    = math.Sqrt(2) / math.Sqrt(3)
	g1    = 1 / math.Sqrt(35)
	g2    = 4 / math.Sqrt(14)
	g3    = 2 / math.Sqrt(7)
	g4    = 2 * math.Sqrt(2)
)

// sphTable has, for each level, the real solid harmonics in the order
// m = 0, -1, +1, -2, +2...
var sphTable = [MaxL + 1][][]sphTerm{
	{ //s
		{{[3]int{0, 0, 0}, 1}},
	},
	{ //p: z, y, x
		{{[3]int{0, 0, 1}, 1}},
		{{[3]int{0, 1, 0}, 1}},
		{{[3]int{1, 0, 0}, 1}},
	},
	{ //d
		{{[3]int{2, 0, 0}, -1 / sqrt3}, {[3]int{0, 2, 0}, -1 / sqrt3}, {[3]int{0, 0, 2}, 2 / sqrt3}},
		{{[3]int{0, 1, 1}, 2}},
		{{[3]int{1, 0, 1}, 2}},
		{{[3]int{1, 1, 0}, 2}},
		{{[3]int{2, 0, 0}, 1}, {[3]int{0, 2, 0}, -1}},
	},
	{ //f
		{{[3]int{2, 0, 1}, -3 * f1}, {[3]int{0, 2, 1}, -3 * f1}, {[3]int{0, 0, 3}, 2 * f1}},
		{{[3]int{2, 1, 0}, -f2}, {[3]int{0, 3, 0}, -f2}, {[3]int{0, 1, 2}, 4 * f2}},
		{{[3]int{3, 0, 0}, -f2}, {[3]int{1, 2, 0}, -f2}, {[3]int{1, 0, 2}, 4 * f2}},
		{{[3]int{1, 1, 1}, 4}},
		{{[3]int{2, 0, 1}, 2}, {[3]int{0, 2, 1}, -2}},
		{{[3]int{2, 1, 0}, 3 * f3}, {[3]int{0, 3, 0}, -f3}},
		{{[3]int{3, 0, 0}, f3}, {[3]int{1, 2, 0}, -3 * f3}},
	},
	{ //g
		{{[3]int{4, 0, 0}, 3 * g1}, {[3]int{2, 2, 0}, 6 * g1}, {[3]int{2, 0, 2}, -24 * g1},
			{[3]int{0, 4, 0}, 3 * g1}, {[3]int{0, 2, 2}, -24 * g1}, {[3]int{0, 0, 4}, 8 * g1}},
		{{[3]int{2, 1, 1}, -3 * g2}, {[3]int{0, 3, 1}, -3 * g2}, {[3]int{0, 1, 3}, 4 * g2}},
		{{[3]int{3, 0, 1}, -3 * g2}, {[3]int{1, 2, 1}, -3 * g2}, {[3]int{1, 0, 3}, 4 * g2}},
		{{[3]int{3, 1, 0}, -2 * g3}, {[3]int{1, 3, 0}, -2 * g3}, {[3]int{1, 1, 2}, 12 * g3}},
		{{[3]int{4, 0, 0}, -g3}, {[3]int{2, 0, 2}, 6 * g3}, {[3]int{0, 4, 0}, g3}, {[3]int{0, 2, 2}, -6 * g3}},
		{{[3]int{2, 1, 1}, 3 * g4}, {[3]int{0, 3, 1}, -g4}},
		{{[3]int{3, 0, 1}, g4}, {[3]int{1, 2, 1}, -3 * g4}},
		{{[3]int{3, 1, 0}, 4}, {[3]int{1, 3, 0}, -4}},
		{{[3]int{4, 0, 0}, 1}, {[3]int{2, 2, 0}, -6}, {[3]int{0, 4, 0}, 1}},
	},
}

// cartIndex maps the powers of each monomial up to MaxL to its cartesian component index.
var cartIndex = func() map[[3]int]int {
	m := make(map[[3]int]int)
	for i := 0; i < blockSize(MaxL); i++ {
		m[cart[i].pow] = i
	}
	return m
}()

// levelFactor is the normalization of a primitive of level l with
// decay alpha, leaving out the (2 alpha/pi)^(3/4) that goes into the seed.
func levelFactor(l int, alpha float64) float64 {
	switch l {
	case 0:
		return 1
	case 1:
		return 2 * math.Sqrt(alpha)
	case 2:
		return 2 * alpha
	case 3:
		return 2 * math.Pow(alpha, 1.5)
	case 4:
		return 2 / sqrt3 * alpha * alpha
	}
	panic(fmt.Sprintf("tcint/threec: no normalization for level %d", l))
}

func checkLevel(S *basis.Shell) error {
	if S.Lmax() > MaxL {
		return Error{fmt.Sprintf("%s: %s shell, level %d (maximum is %d)", ErrUnsupportedLevel, S.Type(), S.Lmax(), MaxL), []string{"checkLevel"}, true, nil}
	}
	return nil
}

// newTrafo allocates a transformation matrix for the shell S, with a row for each function
// of the complete shell up to S.Lmax(), and a column for each cartesian component.
func newTrafo(S *basis.Shell) *mat.Dense {
	l := S.Lmax()
	return mat.NewDense((l+1)*(l+1), blockSize(l), nil)
}

// fillTrafo puts in T the transformation from cartesian components to the
// contracted, normalized spherical functions of S, for the primitive p.
// Rows follow the complete-shell numbering, so the rows of the levels below
// S.Lmin() are left as zeros. T must be allocated with newTrafo.
// Each row of level l only has elements in the columns of the components of level l.
func fillTrafo(T *mat.Dense, S *basis.Shell, p basis.Primitive) {
	T.Zero()
	for l := S.Lmin(); l <= S.Lmax(); l++ {
		f := levelFactor(l, p.Decay) * p.Contraction[l]
		for m, terms := range sphTable[l] {
			row := l*l + m
			for _, t := range terms {
				T.Set(row, cartIndex[t.pow], t.coef*f)
			}
		}
	}
}

// Trafo returns the matrix that takes the cartesian components of the primitive p
// of the shell S, up to the level of S, to its spherical functions, in the
// complete-shell numbering. It returns an error if the level of S is above MaxL.
func Trafo(S *basis.Shell, p basis.Primitive) (*mat.Dense, error) {
	if err := checkLevel(S); err != nil {
		return nil, errDecorate(err, "Trafo")
	}
	T := newTrafo(S)
	fillTrafo(T, S, p)
	return T, nil
}
