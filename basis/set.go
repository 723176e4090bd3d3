/*
 * set.go, part of tcint.
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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	v3 "github.com/rmera/tcint/v3"
	"gopkg.in/yaml.v3"
)

// PrimitiveDef is a primitive as given in a basis set file. Contractions has one
// coefficient per letter of the shell type, in the same order ("SP" -> s, p).
type PrimitiveDef struct {
	Decay        float64   `json:"decay" yaml:"decay"`
	Contractions []float64 `json:"contractions" yaml:"contractions"`
}

// ShellDef is a shell as given in a basis set file.
type ShellDef struct {
	Type       string         `json:"type" yaml:"type"`
	Primitives []PrimitiveDef `json:"primitives" yaml:"primitives"`
}

// Set is a basis set definition: the shells that go on each element.
type Set struct {
	Name     string                `json:"name" yaml:"name"`
	Elements map[string][]ShellDef `json:"elements" yaml:"elements"`
}

// LoadSet reads a basis set file. Files ending in .yaml or .yml are read as YAML,
// everything else as JSON.
func LoadSet(filename string) (*Set, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Error{fmt.Sprintf("Unable to open basis set file %s: %s", filename, err.Error()), []string{"LoadSet"}, true, nil}
	}
	defer f.Close()
	format := "json"
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		format = "yaml"
	}
	S, err := DecodeSet(f, format)
	if err != nil {
		return nil, errDecorate(err, "LoadSet: "+filename)
	}
	return S, nil
}

// DecodeSet reads a basis set in the given format ("json" or "yaml") from r.
func DecodeSet(r io.Reader, format string) (*Set, error) {
	S := new(Set)
	var err error
	switch format {
	case "json":
		err = json.NewDecoder(r).Decode(S)
	case "yaml":
		err = yaml.NewDecoder(r).Decode(S)
	default:
		return nil, Error{fmt.Sprintf("Unknown basis set format %q", format), []string{"DecodeSet"}, true, nil}
	}
	if err != nil {
		return nil, Error{fmt.Sprintf("Can't decode %s basis set: %s", format, err.Error()), []string{"DecodeSet"}, true, nil}
	}
	if len(S.Elements) == 0 {
		return nil, Error{"Basis set defines no elements", []string{"DecodeSet"}, true, nil}
	}
	//we store the symbols normalized, "CL" and "cl" should both work.
	norm := make(map[string][]ShellDef, len(S.Elements))
	for k, v := range S.Elements {
		norm[normSymbol(k)] = v
	}
	S.Elements = norm
	return S, nil
}

// primitives turns the definition's per-letter contractions into
// primitives with contractions indexed by angular momentum level.
func (D ShellDef) primitives() ([]Primitive, error) {
	levels := make([]int, len(D.Type))
	lmax := -1
	for i := 0; i < len(D.Type); i++ {
		l, err := Level(D.Type[i])
		if err != nil {
			return nil, errDecorate(err, "primitives")
		}
		levels[i] = l
		if l > lmax {
			lmax = l
		}
	}
	ret := make([]Primitive, 0, len(D.Primitives))
	for i, v := range D.Primitives {
		if len(v.Contractions) != len(levels) {
			return nil, Error{fmt.Sprintf("%s shell: primitive %d has %d contractions, one per level (%d) expected", D.Type, i, len(v.Contractions), len(levels)), []string{"primitives"}, true, nil}
		}
		c := make([]float64, lmax+1)
		for j, l := range levels {
			c[l] = v.Contractions[j]
		}
		ret = append(ret, Primitive{Decay: v.Decay, Contraction: c})
	}
	return ret, nil
}

// Build places the shells of the set on each atom and returns the resulting basis.
// symbols[i] is the element of the atom at coords' ith vector. Coordinates are taken
// to be in bohr.
func (S *Set) Build(symbols []string, coords *v3.Matrix) (*Basis, error) {
	if coords == nil || coords.NVecs() != len(symbols) {
		return nil, Error{"The number of symbols and coordinates don't match", []string{"Build"}, true, nil}
	}
	B := NewBasis()
	for i, sym := range symbols {
		defs, ok := S.Elements[normSymbol(sym)]
		if !ok {
			return nil, Error{fmt.Sprintf("Basis set %s has no entry for element %s (atom %d)", S.Name, sym, i), []string{"Build"}, true, nil}
		}
		pos := coords.Vec(i)
		for j, d := range defs {
			prims, err := d.primitives()
			if err != nil {
				return nil, errDecorate(err, fmt.Sprintf("Build: element %s shell %d", sym, j))
			}
			if _, err = B.AddShell(d.Type, pos, prims); err != nil {
				return nil, errDecorate(err, fmt.Sprintf("Build: element %s shell %d", sym, j))
			}
		}
	}
	return B, nil
}

func normSymbol(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
