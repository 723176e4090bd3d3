/*
 * block.go, part of tcint.
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

	"github.com/rmera/tcint/basis"
	"gonum.org/v1/gonum/mat"
)

// shellIndex describes the functions of a shell: the level of each of them, and
// the range of cartesian components it needs.
type shellIndex struct {
	offset, nfunc int
	lo, hi        []int //cartesian range of each function
	cartLo, ncart int   //range of cartesian components used by the whole shell.
}

func newShellIndex(S *basis.Shell) shellIndex {
	si := shellIndex{offset: S.Offset(), nfunc: S.NumFunc()}
	si.lo = make([]int, si.nfunc)
	si.hi = make([]int, si.nfunc)
	for i := range si.lo {
		si.lo[i], si.hi[i] = cartRange(sphLevel(i + si.offset))
	}
	si.cartLo = blockSize(S.Lmin() - 1)
	si.ncart = blockSize(S.Lmax())
	return si
}

// workspace holds the buffers used while a block is computed, so they are
// allocated once per block and not once per primitive triple.
type workspace struct {
	s          cartTensor
	tA, tB, tC *mat.Dense
	x, y       []float64
}

func newWorkspace(a, b, c *basis.Shell) *workspace {
	w := new(workspace)
	w.tA, w.tB, w.tC = newTrafo(a), newTrafo(b), newTrafo(c)
	return w
}

func growSlice(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = 0
	}
	return s
}

// checkShells returns an error if any of the shells has a level above MaxL.
func checkShells(shells ...*basis.Shell) error {
	for _, S := range shells {
		if err := checkLevel(S); err != nil {
			return err
		}
	}
	return nil
}

// FillBlock adds to block the three-center overlap integrals between the
// functions of the shells a, b and c:
//
//	block[i][nc*j+k] += Integral(a_i b_j c_k)
//
// where i, j and k are the indexes of the functions in each shell, and nc is c.NumFunc().
// block must have a.NumFunc() rows and b.NumFunc()*c.NumFunc() columns, and should be zeroed
// by the caller before the first call for a given shell triple. Primitive triples whose
// contribution is below accuracy are skipped. FillBlock returns true if any primitive
// triple contributed. If any shell has a level above MaxL, an error is returned and block
// is not modified. FillBlock does not keep any state, so it can be called concurrently
// as long as each call gets its own block.
func FillBlock(block *mat.Dense, a, b, c *basis.Shell, accuracy float64) (bool, error) {
	if err := checkShells(a, b, c); err != nil {
		return false, errDecorate(err, "FillBlock")
	}
	r, cols := block.Dims()
	if r != a.NumFunc() || cols != b.NumFunc()*c.NumFunc() {
		return false, Error{fmt.Sprintf("%s: got %dx%d, want %dx%d", ErrBlockShape, r, cols, a.NumFunc(), b.NumFunc()*c.NumFunc()), []string{"FillBlock"}, true, nil}
	}
	triples, err := Screen(a, b, c, accuracy)
	if err != nil {
		return false, errDecorate(err, "FillBlock")
	}
	if len(triples) == 0 {
		return false, nil
	}
	ia, ib, ic := newShellIndex(a), newShellIndex(b), newShellIndex(c)
	w := newWorkspace(a, b, c)
	pa, pb, pc := a.Primitives(), b.Primitives(), c.Primitives()
	A, B, C := a.Pos(), b.Pos(), c.Pos()
	for _, t := range triples {
		w.s.reset(ia.ncart, ib.ncart, ic.ncart)
		w.s.fill(t.Seed, t.Fak, sub(t.G, A), sub(t.G, B), sub(t.G, C))
		fillTrafo(w.tA, a, pa[t.A])
		fillTrafo(w.tB, b, pb[t.B])
		fillTrafo(w.tC, c, pc[t.C])
		w.contract(block, ia, ib, ic)
	}
	return true, nil
}

// contract applies the three transformations to the cartesian tensor, one index
// at a time, and adds the result to block.
func (w *workspace) contract(block *mat.Dense, ia, ib, ic shellIndex) {
	S := &w.s
	na, nb := S.na, S.nb
	fb, fc := ib.nfunc, ic.nfunc
	//x[a][b][k] = sum_z S[a][b][z] TC[k][z]
	w.x = growSlice(w.x, na*nb*fc)
	for a := ia.cartLo; a < na; a++ {
		for b := ib.cartLo; b < nb; b++ {
			row := S.data[(a*nb+b)*S.nc:]
			x := w.x[(a*nb+b)*fc:]
			for k := 0; k < fc; k++ {
				T := w.tC.RawRowView(k + ic.offset)
				var v float64
				for z := ic.lo[k]; z < ic.hi[k]; z++ {
					v += row[z] * T[z]
				}
				x[k] = v
			}
		}
	}
	//y[a][j][k] = sum_b x[a][b][k] TB[j][b]
	w.y = growSlice(w.y, na*fb*fc)
	for a := ia.cartLo; a < na; a++ {
		for j := 0; j < fb; j++ {
			T := w.tB.RawRowView(j + ib.offset)
			y := w.y[(a*fb+j)*fc:]
			for b := ib.lo[j]; b < ib.hi[j]; b++ {
				if T[b] == 0 {
					continue
				}
				x := w.x[(a*nb+b)*fc:]
				for k := 0; k < fc; k++ {
					y[k] += x[k] * T[b]
				}
			}
		}
	}
	//block[i][fc*j+k] += sum_a y[a][j][k] TA[i][a]
	for i := 0; i < ia.nfunc; i++ {
		T := w.tA.RawRowView(i + ia.offset)
		out := block.RawRowView(i)
		for a := ia.lo[i]; a < ia.hi[i]; a++ {
			if T[a] == 0 {
				continue
			}
			y := w.y[a*fb*fc:]
			for jk := 0; jk < fb*fc; jk++ {
				out[jk] += y[jk] * T[a]
			}
		}
	}
}

// Block returns a new block with the three-center overlap integrals between
// the functions of a, b and c. See FillBlock for the layout and the meaning of the
// returned bool.
func Block(a, b, c *basis.Shell, accuracy float64) (*mat.Dense, bool, error) {
	if err := checkShells(a, b, c); err != nil {
		return nil, false, errDecorate(err, "Block")
	}
	block := mat.NewDense(a.NumFunc(), b.NumFunc()*c.NumFunc(), nil)
	ok, err := FillBlock(block, a, b, c, accuracy)
	if err != nil {
		return nil, false, errDecorate(err, "Block")
	}
	return block, ok, nil
}
