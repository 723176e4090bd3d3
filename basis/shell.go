/*
 * shell.go, part of tcint.
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

import (
	"fmt"
	"math"
	"strings"
)

// Letters for the angular momentum levels, in order. There is no "J".
const levelLetters = "SPDFGHIKL"

// MaxLevel is the highest angular momentum level a shell can declare.
// Whether a given level can actually be integrated is up to the integral code.
const MaxLevel = len(levelLetters) - 1

// Level returns the angular momentum level corresponding to the letter l
// (case insensitive), or an error if the letter is not known.
func Level(l byte) (int, error) {
	if l >= 'a' && l <= 'z' {
		l -= 'a' - 'A'
	}
	i := strings.IndexByte(levelLetters, l)
	if i < 0 {
		return -1, Error{fmt.Sprintf("Unknown angular momentum letter %q", l), []string{"Level"}, true, nil}
	}
	return i, nil
}

// LevelLetter returns the letter for the angular momentum level l.
// It panics if l is out of range.
func LevelLetter(l int) byte {
	return levelLetters[l]
}

// NumFuncLevel returns the number of spherical functions of a level: 1, 3, 5, 7 for s, p, d, f...
func NumFuncLevel(l int) int {
	return 2*l + 1
}

// Primitive is a single Gaussian of a shell. Contraction is indexed
// by angular momentum level, so a primitive of an SP shell uses
// Contraction[0] for the s function and Contraction[1] for the p functions.
// Entries for levels below the Lmin of the shell are ignored.
type Primitive struct {
	Decay       float64
	Contraction []float64
}

// NewPrimitive returns a primitive for a shell of a single level l,
// with decay constant decay and contraction coefficient coef.
func NewPrimitive(l int, decay, coef float64) Primitive {
	c := make([]float64, l+1)
	c[l] = coef
	return Primitive{Decay: decay, Contraction: c}
}

// Shell is a group of primitives sharing a center and one or more
// contiguous angular momentum levels.
// Shells are not meant to be modified after creation.
type Shell struct {
	kind       string
	lmin, lmax int
	pos        [3]float64
	prims      []Primitive
	start      int
}

// NewShell returns a shell of type kind ("S", "P", "SP", "D"...), centered at pos (in bohr),
// with the primitives prims, which are copied. It returns an error if the shell is malformed:
// unknown or non-contiguous levels, no primitives, non-finite or non-positive decays, or
// contraction slices that don't reach the highest level of the shell.
func NewShell(kind string, pos [3]float64, prims []Primitive) (*Shell, error) {
	S := new(Shell)
	S.kind = strings.ToUpper(kind)
	err := S.setLevels()
	if err != nil {
		return nil, errDecorate(err, "NewShell")
	}
	for _, v := range pos {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, Error{fmt.Sprintf("Non-finite position %v for %s shell", pos, S.kind), []string{"NewShell"}, true, nil}
		}
	}
	S.pos = pos
	if len(prims) == 0 {
		return nil, Error{fmt.Sprintf("%s shell with no primitives", S.kind), []string{"NewShell"}, true, nil}
	}
	S.prims = make([]Primitive, len(prims))
	for i, p := range prims {
		if p.Decay <= 0 || math.IsNaN(p.Decay) || math.IsInf(p.Decay, 0) {
			return nil, Error{fmt.Sprintf("Primitive %d of %s shell has an invalid decay constant %g", i, S.kind, p.Decay), []string{"NewShell"}, true, nil}
		}
		if len(p.Contraction) < S.lmax+1 {
			return nil, Error{fmt.Sprintf("Primitive %d of %s shell has %d contraction coefficients, %d needed", i, S.kind, len(p.Contraction), S.lmax+1), []string{"NewShell"}, true, nil}
		}
		for _, c := range p.Contraction {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, Error{fmt.Sprintf("Primitive %d of %s shell has a non-finite contraction coefficient", i, S.kind), []string{"NewShell"}, true, nil}
			}
		}
		S.prims[i] = Primitive{Decay: p.Decay, Contraction: append([]float64(nil), p.Contraction...)}
	}
	return S, nil
}

// setLevels parses the type of the shell into lmin and lmax.
func (S *Shell) setLevels() error {
	if len(S.kind) == 0 {
		return Error{"Empty shell type", []string{"setLevels"}, true, nil}
	}
	prev := -1
	for i := 0; i < len(S.kind); i++ {
		l, err := Level(S.kind[i])
		if err != nil {
			return errDecorate(err, "setLevels")
		}
		if prev >= 0 && l != prev+1 {
			return Error{fmt.Sprintf("Shell type %s: levels must be contiguous and in increasing order", S.kind), []string{"setLevels"}, true, nil}
		}
		if prev < 0 {
			S.lmin = l
		}
		prev = l
	}
	S.lmax = prev
	return nil
}

// Type returns the type of the shell, as in "SP".
func (S *Shell) Type() string { return S.kind }

// Lmin returns the lowest angular momentum level in the shell.
func (S *Shell) Lmin() int { return S.lmin }

// Lmax returns the highest angular momentum level in the shell.
func (S *Shell) Lmax() int { return S.lmax }

// Pos returns the center of the shell.
func (S *Shell) Pos() [3]float64 { return S.pos }

// Primitives returns the primitives of the shell. The slice must not be modified.
func (S *Shell) Primitives() []Primitive { return S.prims }

// NumPrimitives returns the number of primitives in the shell.
func (S *Shell) NumPrimitives() int { return len(S.prims) }

// Offset returns the index of the first function of the shell in the numbering
// of a complete shell going from s up to Lmax (s=0, p=1..3, d=4..8...).
func (S *Shell) Offset() int { return S.lmin * S.lmin }

// NumFunc returns the number of spherical functions in the shell.
func (S *Shell) NumFunc() int {
	n := 0
	for l := S.lmin; l <= S.lmax; l++ {
		n += NumFuncLevel(l)
	}
	return n
}

// Start returns the index of the first function of the shell in the basis that owns it,
// or 0 for a shell that doesn't belong to a Basis.
func (S *Shell) Start() int { return S.start }

// String returns a short description of the shell.
func (S *Shell) String() string {
	return fmt.Sprintf("%s shell at (%.4f %.4f %.4f), %d primitives, functions %d-%d", S.kind, S.pos[0], S.pos[1], S.pos[2], len(S.prims), S.start, S.start+S.NumFunc()-1)
}
