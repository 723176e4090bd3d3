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

// Package basis contains the Gaussian shells, the bases built from them, and
// the basis set files from which bases are built.
//
// A shell carries one or more contiguous angular momentum levels ("S", "P", "SP", "D"...)
// on a single center. The spherical functions of a shell are numbered as in a complete
// shell going from s to the highest level of the shell, with s=0, p=1..3, d=4..8 and so on,
// and within each level m goes 0, -1, +1, -2, +2... Shell.Offset gives where the shell
// starts in that numbering.
//
// Basis set files can be written in JSON or YAML:
//
//	name: minimal
//	elements:
//	  H:
//	    - type: S
//	      primitives:
//	        - {decay: 3.42525091, contractions: [0.15432897]}
//	        - {decay: 0.62391373, contractions: [0.53532814]}
//
// Contractions holds one coefficient per letter of the shell type.
package basis
