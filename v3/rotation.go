/*
 * rotation.go, part of tcint.
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

package v3

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// RotatorAroundAxis returns the 3x3 matrix that rotates column vectors
// by angle radians around axis (right-hand rule). The axis need not be
// normalized, but it can't be the zero vector.
func RotatorAroundAxis(axis [3]float64, angle float64) (*mat.Dense, error) {
	n := floats.Norm(axis[:], 2)
	if n <= appzero {
		return nil, Error{"Rotation axis can't be the zero vector", []string{"RotatorAroundAxis"}, true}
	}
	x, y, z := axis[0]/n, axis[1]/n, axis[2]/n
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	//Rodrigues' rotation formula.
	R := mat.NewDense(3, 3, []float64{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c,
	})
	return R, nil
}

// Rotate applies the rotation R (as returned by RotatorAroundAxis) to each vector
// of A and puts the result in F. F and A can be the same Matrix.
func (F *Matrix) Rotate(A *Matrix, R mat.Matrix) {
	r, c := R.Dims()
	if r != cols || c != cols {
		panic(ErrShape)
	}
	//Vectors are rows, so we need A*R^T
	F.Mul(A, R.T())
}
