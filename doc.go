/*
 * doc.go, part of tcint.
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

/*
Package tcint is the root package of the tcint library. It evaluates three-center
overlap integrals between contracted Gaussian basis functions, the quantity needed
to expand orbital products in an auxiliary basis (resolution of the identity), as
used in GW/BSE and other correlated methods.

	**tcint layout**

	v3: Nx3 coordinate matrices (gonum based) and rigid rotations.

	basis: primitives, shells (including "complete" shells such as SP), basis
	objects with global function offsets and element-keyed basis-set files
	(JSON or YAML).

	threec: the integral engine. Primitive-triple screening, the Obara-Saika
	recursion over cartesian components, the cartesian to real-spherical
	transformation and the accumulation of shell-triple blocks. Also two-center
	overlaps.

	tcmatrix: concurrent assembly of the full three-center tensor over an
	auxiliary and an orbital basis, the auxiliary overlap metric and its
	inverse square root.

	tcio: compressed storage for assembled tensors.

	tcplot: magnitude histograms of assembled tensors.

The root package itself only holds the error interface shared by all the
packages, and an XYZ geometry reader.
*/
package tcint
