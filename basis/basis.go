/*
 * basis.go, part of tcint.
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

package basis

import "fmt"

// Basis is an ordered set of shells. Each shell knows the index of its
// first function in the basis (Shell.Start).
type Basis struct {
	shells []*Shell
	size   int
}

// NewBasis returns an empty basis.
func NewBasis() *Basis {
	return new(Basis)
}

// AddShell creates a new shell in the basis, after the ones already present, and
// returns it. The arguments and errors are those of NewShell.
func (B *Basis) AddShell(kind string, pos [3]float64, prims []Primitive) (*Shell, error) {
	S, err := NewShell(kind, pos, prims)
	if err != nil {
		return nil, errDecorate(err, "AddShell")
	}
	B.add(S)
	return S, nil
}

// Add puts a copy of the shell S at the end of the basis, and returns the copy.
func (B *Basis) Add(S *Shell) *Shell {
	c := *S
	B.add(&c)
	return &c
}

func (B *Basis) add(S *Shell) {
	S.start = B.size
	B.size += S.NumFunc()
	B.shells = append(B.shells, S)
}

// Len returns the number of shells in the basis.
func (B *Basis) Len() int { return len(B.shells) }

// Size returns the number of functions in the basis.
func (B *Basis) Size() int { return B.size }

// Shell returns the ith shell of the basis. It panics if i is out of range.
func (B *Basis) Shell(i int) *Shell {
	if i >= len(B.shells) || i < 0 {
		panic(fmt.Sprintf("tcint/basis: shell %d requested from a basis of %d shells", i, len(B.shells)))
	}
	return B.shells[i]
}

// Shells returns the shells of the basis. The slice must not be modified.
func (B *Basis) Shells() []*Shell { return B.shells }

// Lmax returns the highest angular momentum level present in the basis, or -1 for an empty basis.
func (B *Basis) Lmax() int {
	l := -1
	for _, v := range B.shells {
		if v.lmax > l {
			l = v.lmax
		}
	}
	return l
}
