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

// Package threec computes three-center overlap integrals between contracted,
// normalized Gaussian shells with real solid harmonic angular parts.
//
// For each primitive triple that survives screening (Screen), the integrals over
// cartesian primitives are built from the s-s-s value with the Obara-Saika recursion,
// and then transformed to spherical functions and contracted, one primitive
// at a time. FillBlock and Block put the results in a block with one row per function
// of the first shell, and one column per pair of functions of the second and third shells.
//
// Shells can go up to g (MaxL). The functions in a level are ordered by m: 0, -1, +1, -2, +2...
//
// Nothing in this package keeps state between calls, so different blocks
// can be computed concurrently.
package threec
