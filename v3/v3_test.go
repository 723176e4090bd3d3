/*
 * v3_test.go, part of tcint.
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
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("Expected 3 vectors, got %d", A.NVecs())
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("Changes in the view were not reflected in the matrix")
	}
	fmt.Println("View\n", A, "\n", View)
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Errorf("A slice of 4 elements should not make a Matrix")
	}
}

func TestVecOps(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	B := Zeros(2)
	B.SubVec(A, [3]float64{1, 2, 3})
	if B.Vec(0) != [3]float64{0, 0, 0} || B.Vec(1) != [3]float64{3, 3, 3} {
		Te.Errorf("SubVec gave a wrong result:\n%s", B)
	}
	if d2 := A.Dist2(0, A, 1); d2 != 27 {
		Te.Errorf("Expected squared distance 27, got %f", d2)
	}
	C := A.Copy()
	C.SetVec(0, [3]float64{-1, -1, -1})
	if A.At(0, 0) != 1 {
		Te.Errorf("Copy shares memory with the original")
	}
}

func TestRotation(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 0, 0, 0, 1, 0, 0.3, -0.2, 0.9})
	R, err := RotatorAroundAxis([3]float64{0, 0, 2}, math.Pi/2)
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(3)
	B.Rotate(A, R)
	got := B.Vec(0)
	if !floats.EqualApprox(got[:], []float64{0, 1, 0}, 1e-12) {
		Te.Errorf("x should go to y under a 90 degree rotation around z, got %v", got)
	}
	//rotations keep distances
	if math.Abs(A.Dist2(0, A, 2)-B.Dist2(0, B, 2)) > 1e-12 {
		Te.Errorf("Rotation changed a distance")
	}
	//in place
	A.Rotate(A, R)
	if !floats.EqualApprox(A.RawMatrix().Data, B.RawMatrix().Data, 1e-14) {
		Te.Errorf("In-place rotation differs from out of place rotation")
	}
	if _, err := RotatorAroundAxis([3]float64{0, 0, 0}, 1); err == nil {
		Te.Errorf("The zero vector should not be a valid rotation axis")
	}
}
