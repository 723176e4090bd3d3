/*
 * tcplot.go, part of tcint.
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

// Package tcplot draws diagnostic plots for three-center integral tensors.
package tcplot

import (
	"fmt"
	"math"

	"github.com/rmera/tcint/tcmatrix"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// LogMagnitudes returns log10|x| for every element x of the tensor with |x| > floor.
func LogMagnitudes(t *tcmatrix.Tensor, floor float64) plotter.Values {
	var vals plotter.Values
	_, norb := t.Dims()
	for k := 0; k < t.Len(); k++ {
		M := t.Matrix(k)
		for i := 0; i < norb; i++ {
			for _, v := range M.RawRowView(i) {
				if a := math.Abs(v); a > floor {
					vals = append(vals, math.Log10(a))
				}
			}
		}
	}
	return vals
}

// MagnitudeHistogram saves to filename a histogram, with the given number of bins,
// of the decimal logarithm of the absolute value of the elements of t larger than floor.
// The format is taken from the extension of filename (png, svg, pdf...).
func MagnitudeHistogram(t *tcmatrix.Tensor, filename string, bins int, floor float64) error {
	vals := LogMagnitudes(t, floor)
	if len(vals) == 0 {
		return fmt.Errorf("tcplot: no elements above %g to plot", floor)
	}
	p := plot.New()
	p.Title.Text = "Three-center integrals"
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "log10 |(p aux q)|"
	p.Y.Label.Text = "Count"
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return fmt.Errorf("tcplot: %w", err)
	}
	p.Add(plotter.NewGrid())
	p.Add(h)
	//here I  intentionally shadow err.
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("tcplot: saving %s: %w", filename, err)
	}
	return nil
}
