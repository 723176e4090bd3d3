/*
 * xyz.go, part of tcint.
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

package tcint

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/tcint/v3"
)

// Angstrom2Bohr converts lengths in Angstrom to atomic units.
const Angstrom2Bohr = 1.0 / 0.52917720859

// XYZFileRead reads the first frame of an xyz file. It returns the element
// symbols and the coordinates (in Angstrom, as in the file).
func XYZFileRead(xyzname string) ([]string, *v3.Matrix, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, nil, &plainError{fmt.Sprintf("Unable to open file %s: %s", xyzname, err.Error()), []string{"XYZFileRead"}}
	}
	defer xyzfile.Close()
	symbols, coords, err := XYZRead(xyzfile)
	if err != nil {
		err.(Error).Decorate("XYZFileRead: " + xyzname)
		return nil, nil, err
	}
	return symbols, coords, nil
}

// XYZRead reads the first frame of an xyz-formatted stream.
func XYZRead(r io.Reader) ([]string, *v3.Matrix, error) {
	xyz := bufio.NewReader(r)
	line, err := xyz.ReadString('\n')
	if err != nil && line == "" {
		return nil, nil, &plainError{"Ill formatted XYZ file: no atom number line", []string{"XYZRead"}}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms <= 0 {
		return nil, nil, &plainError{fmt.Sprintf("Ill formatted XYZ file: can't read atom number from %q", strings.TrimSpace(line)), []string{"XYZRead"}}
	}
	if _, err = xyz.ReadString('\n'); err != nil { //We don't care about the comment line
		return nil, nil, &plainError{"Ill formatted XYZ file: no comment line", []string{"XYZRead"}}
	}
	symbols := make([]string, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
			return nil, nil, &plainError{fmt.Sprintf("XYZ file ended after %d of %d atoms", i, natoms), []string{"XYZRead"}}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, nil, &plainError{fmt.Sprintf("Line number %d ill formed", i+3), []string{"XYZRead"}}
		}
		symbols[i] = normalizeSymbol(fields[0])
		for k := 0; k < 3; k++ {
			coords[i*3+k], err = strconv.ParseFloat(fields[k+1], 64)
			if err != nil {
				return nil, nil, &plainError{fmt.Sprintf("Line number %d: can't parse coordinate %q", i+3, fields[k+1]), []string{"XYZRead"}}
			}
		}
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, nil, err
	}
	return symbols, mcoords, nil
}

// normalizeSymbol puts an element symbol in the usual capitalization, "CL"->"Cl".
func normalizeSymbol(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
