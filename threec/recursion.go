/*
 * recursion.go, part of tcint.
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

// cartTensor is the unnormalized integral over cartesian primitives,
// S[a][b][c], stored flat.
type cartTensor struct {
	na, nb, nc int
	data       []float64
}

// reset sets the dimensions of the tensor, reusing its storage when possible.
func (S *cartTensor) reset(na, nb, nc int) {
	S.na, S.nb, S.nc = na, nb, nc
	n := na * nb * nc
	if cap(S.data) < n {
		S.data = make([]float64, n)
	}
	S.data = S.data[:n]
}

func (S *cartTensor) at(a, b, c int) float64 {
	return S.data[(a*S.nb+b)*S.nc+c]
}

// fill computes every element of S from the seed, with the Obara-Saika relations
// for the three-center overlap. For an increment along the axis d of the first index:
//
//	S(a+1d,b,c) = GA_d S(a,b,c) + fak [a_d S(a-1d,b,c) + b_d S(a,b-1d,c) + c_d S(a,b,c-1d)]
//
// and the same for the other two indexes, with GB and GC. GA is G-A, where G is the center
// of the Gaussian product, and A the center of the first primitive (and so on).
// The loops go over c, then a, then b, each in increasing component index, so every
// element needed is already there when it is used. Each element is obtained from the
// parent of its b component or, if that is the s component, of its a component, or,
// if both are s, from the parent of its c component.
func (S *cartTensor) fill(seed, fak float64, GA, GB, GC [3]float64) {
	nb, nc := S.nb, S.nc
	idx := func(a, b, c int) int { return (a*nb+b)*nc + c }
	data := S.data
	for c := 0; c < S.nc; c++ {
		cc := cart[c]
		for a := 0; a < S.na; a++ {
			ca := cart[a]
			for b := 0; b < S.nb; b++ {
				cb := cart[b]
				var v float64
				switch {
				case b > 0:
					d, p := cb.axis, cb.parent
					v = GB[d] * data[idx(a, p, c)]
					if l := ca.lower[d]; l >= 0 {
						v += fak * float64(ca.pow[d]) * data[idx(l, p, c)]
					}
					if l := cart[p].lower[d]; l >= 0 {
						v += fak * float64(cart[p].pow[d]) * data[idx(a, l, c)]
					}
					if l := cc.lower[d]; l >= 0 {
						v += fak * float64(cc.pow[d]) * data[idx(a, p, l)]
					}
				case a > 0:
					//b is the s component here, so there is no b term.
					d, p := ca.axis, ca.parent
					v = GA[d] * data[idx(p, 0, c)]
					if l := cart[p].lower[d]; l >= 0 {
						v += fak * float64(cart[p].pow[d]) * data[idx(l, 0, c)]
					}
					if l := cc.lower[d]; l >= 0 {
						v += fak * float64(cc.pow[d]) * data[idx(p, 0, l)]
					}
				case c > 0:
					d, p := cc.axis, cc.parent
					v = GC[d] * data[idx(0, 0, p)]
					if l := cart[p].lower[d]; l >= 0 {
						v += fak * float64(cart[p].pow[d]) * data[idx(0, 0, l)]
					}
				default:
					v = seed
				}
				data[idx(a, b, c)] = v
			}
		}
	}
}

// sub returns G-P
func sub(G, P [3]float64) [3]float64 {
	return [3]float64{G[0] - P[0], G[1] - P[1], G[2] - P[2]}
}
