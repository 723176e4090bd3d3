/*
 * cartesian.go, part of tcint.
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

import "fmt"

// MaxCartesianLevel is the highest level covered by the cartesian index tables.
const MaxCartesianLevel = 8

// cartComp is one cartesian monomial x^i y^j z^k.
type cartComp struct {
	pow    [3]int
	level  int
	axis   int    //first axis with a non-zero power, -1 for the s component.
	parent int    //index of the component with one power less along axis.
	lower  [3]int //index of the component with one power less along each axis, -1 if that power is 0.
}

// cart holds all the components up to MaxCartesianLevel. Within a level, components
// go by decreasing power of x, then decreasing power of y.
var cart = genCart()

func genCart() []cartComp {
	var comps []cartComp
	index := make(map[[3]int]int)
	for L := 0; L <= MaxCartesianLevel; L++ {
		for i := L; i >= 0; i-- {
			for j := L - i; j >= 0; j-- {
				c := cartComp{pow: [3]int{i, j, L - i - j}, level: L, axis: -1, parent: -1}
				for d := 0; d < 3; d++ {
					c.lower[d] = -1
					if c.pow[d] == 0 {
						continue
					}
					p := c.pow
					p[d]--
					c.lower[d] = index[p]
					if c.axis < 0 {
						c.axis = d
						c.parent = c.lower[d]
					}
				}
				index[c.pow] = len(comps)
				comps = append(comps, c)
			}
		}
	}
	return comps
}

// blockSize is BlockSize without checks. blockSize(-1) is 0.
func blockSize(l int) int {
	return (l + 1) * (l + 2) * (l + 3) / 6
}

// BlockSize returns the number of cartesian components of all levels from 0 to l,
// (l+1)(l+2)(l+3)/6. It returns an error if l is outside 0..MaxCartesianLevel.
func BlockSize(l int) (int, error) {
	if l < 0 || l > MaxCartesianLevel {
		return 0, Error{fmt.Sprintf("%s: %d (cartesian tables go from 0 to %d)", ErrUnsupportedLevel, l, MaxCartesianLevel), []string{"BlockSize"}, true, nil}
	}
	return blockSize(l), nil
}

// cartRange returns the cartesian components a spherical function of level l
// is made of, as the half-open interval [from, to).
func cartRange(l int) (from, to int) {
	return blockSize(l - 1), blockSize(l)
}

// sphLevel returns the level of the nth function in the complete-shell numbering.
func sphLevel(n int) int {
	l := 0
	for (l+1)*(l+1) <= n {
		l++
	}
	return l
}

// Powers returns the powers of x, y and z of the ith cartesian component.
// It panics if i is not smaller than BlockSize(MaxCartesianLevel).
func Powers(i int) [3]int {
	return cart[i].pow
}
