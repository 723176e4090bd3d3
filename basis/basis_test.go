package basis

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	v3 "github.com/rmera/tcint/v3"
)

func TestLevel(Te *testing.T) {
	for i, v := range []byte("spdfghikl") {
		l, err := Level(v)
		if err != nil {
			Te.Fatal(err)
		}
		if l != i {
			Te.Errorf("Level of %c: got %d, want %d", v, l, i)
		}
		if LevelLetter(l) != v-('a'-'A') {
			Te.Errorf("Letter of level %d: %c", l, LevelLetter(l))
		}
	}
	if _, err := Level('J'); err == nil {
		Te.Error("Letter J should not be a level")
	}
}

func TestNewShell(Te *testing.T) {
	prims := []Primitive{{Decay: 1.2, Contraction: []float64{0.3, 0.7}}}
	S, err := NewShell("sp", [3]float64{1, 2, 3}, prims)
	if err != nil {
		Te.Fatal(err)
	}
	if S.Type() != "SP" || S.Lmin() != 0 || S.Lmax() != 1 {
		Te.Errorf("Wrong levels for SP shell: %s %d %d", S.Type(), S.Lmin(), S.Lmax())
	}
	if S.NumFunc() != 4 || S.Offset() != 0 {
		Te.Errorf("SP shell: got %d functions and offset %d", S.NumFunc(), S.Offset())
	}
	prims[0].Contraction[0] = 100 //the shell must keep its own copy
	if diff := cmp.Diff([]Primitive{{Decay: 1.2, Contraction: []float64{0.3, 0.7}}}, S.Primitives()); diff != "" {
		Te.Errorf("Primitives changed (-want +got):\n%s", diff)
	}
	D, err := NewShell("D", [3]float64{}, []Primitive{NewPrimitive(2, 0.8, 1)})
	if err != nil {
		Te.Fatal(err)
	}
	if D.Offset() != 4 || D.NumFunc() != 5 {
		Te.Errorf("D shell: got %d functions and offset %d", D.NumFunc(), D.Offset())
	}
}

func TestNewShellErrors(Te *testing.T) {
	good := []Primitive{NewPrimitive(1, 1, 1)}
	cases := map[string]struct {
		kind  string
		pos   [3]float64
		prims []Primitive
	}{
		"empty type":      {"", [3]float64{}, good},
		"unknown letter":  {"X", [3]float64{}, good},
		"non contiguous":  {"SD", [3]float64{}, []Primitive{NewPrimitive(2, 1, 1)}},
		"wrong order":     {"PS", [3]float64{}, good},
		"no primitives":   {"P", [3]float64{}, nil},
		"negative decay":  {"P", [3]float64{}, []Primitive{NewPrimitive(1, -1, 1)}},
		"short contract.": {"D", [3]float64{}, good},
	}
	for name, c := range cases {
		_, err := NewShell(c.kind, c.pos, c.prims)
		if err == nil {
			Te.Errorf("%s: shell accepted", name)
			continue
		}
		if e, ok := err.(Error); !ok || !e.Critical() {
			Te.Errorf("%s: unexpected error %v", name, err)
		}
	}
}

func TestBasisOffsets(Te *testing.T) {
	B := NewBasis()
	kinds := []string{"S", "SP", "D", "F"}
	for _, k := range kinds {
		l := len(k) - 1
		lmax, _ := Level(k[l])
		prim := Primitive{Decay: 1, Contraction: make([]float64, lmax+1)}
		if _, err := B.AddShell(k, [3]float64{}, []Primitive{prim}); err != nil {
			Te.Fatal(err)
		}
	}
	var starts []int
	for _, s := range B.Shells() {
		starts = append(starts, s.Start())
	}
	if diff := cmp.Diff([]int{0, 1, 5, 10}, starts); diff != "" {
		Te.Errorf("Shell starts (-want +got):\n%s", diff)
	}
	if B.Size() != 17 || B.Len() != 4 || B.Lmax() != 3 {
		Te.Errorf("Basis has size %d, %d shells, lmax %d", B.Size(), B.Len(), B.Lmax())
	}
	for l := 0; l <= 3; l++ {
		if NumFuncLevel(l) != 2*l+1 {
			Te.Errorf("Level %d has %d functions", l, NumFuncLevel(l))
		}
	}
	//a shell added to a second basis is copied, the first keeps its offsets.
	B2 := NewBasis()
	B2.Add(B.Shell(3))
	sp := B2.Add(B.Shell(1))
	if sp.Start() != 7 || B.Shell(1).Start() != 1 || B2.Size() != 11 {
		Te.Errorf("Copied SP shell starts at %d (original %d), basis size %d", sp.Start(), B.Shell(1).Start(), B2.Size())
	}
	if sp.NumPrimitives() != 1 || sp.NumFunc() != 4 {
		Te.Errorf("Copied SP shell has %d primitives and %d functions", sp.NumPrimitives(), sp.NumFunc())
	}
}

const minimalYAML = `name: minimal
elements:
  h:
    - type: S
      primitives:
        - {decay: 3.42525091, contractions: [0.15432897]}
        - {decay: 0.62391373, contractions: [0.53532814]}
        - {decay: 0.16885540, contractions: [0.44463454]}
  O:
    - type: S
      primitives:
        - {decay: 130.70932, contractions: [0.15432897]}
    - type: SP
      primitives:
        - {decay: 5.0331513, contractions: [-0.09996723, 0.15591627]}
        - {decay: 1.1695961, contractions: [0.39951283, 0.60768372]}
`

func TestDecodeSet(Te *testing.T) {
	S, err := DecodeSet(strings.NewReader(minimalYAML), "yaml")
	if err != nil {
		Te.Fatal(err)
	}
	want := &Set{
		Name: "minimal",
		Elements: map[string][]ShellDef{
			"H": {{Type: "S", Primitives: []PrimitiveDef{
				{Decay: 3.42525091, Contractions: []float64{0.15432897}},
				{Decay: 0.62391373, Contractions: []float64{0.53532814}},
				{Decay: 0.16885540, Contractions: []float64{0.44463454}},
			}}},
			"O": {
				{Type: "S", Primitives: []PrimitiveDef{{Decay: 130.70932, Contractions: []float64{0.15432897}}}},
				{Type: "SP", Primitives: []PrimitiveDef{
					{Decay: 5.0331513, Contractions: []float64{-0.09996723, 0.15591627}},
					{Decay: 1.1695961, Contractions: []float64{0.39951283, 0.60768372}},
				}},
			},
		},
	}
	if diff := cmp.Diff(want, S, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		Te.Errorf("Decoded set (-want +got):\n%s", diff)
	}
	if _, err := DecodeSet(strings.NewReader(minimalYAML), "xml"); err == nil {
		Te.Error("Unknown format accepted")
	}
}

func TestBuild(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "minimal.yml")
	if err := os.WriteFile(name, []byte(minimalYAML), 0o644); err != nil {
		Te.Fatal(err)
	}
	S, err := LoadSet(name)
	if err != nil {
		Te.Fatal(err)
	}
	coords, _ := v3.NewMatrix([]float64{0, 0, 0.22, 0, 1.43, -0.88, 0, -1.43, -0.88})
	B, err := S.Build([]string{"O", "H", "H"}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	//O: S + SP (1+4), two H: S each.
	if B.Len() != 4 || B.Size() != 7 {
		Te.Fatalf("Got %d shells and %d functions", B.Len(), B.Size())
	}
	sp := B.Shell(1)
	if sp.Type() != "SP" || sp.Start() != 1 {
		Te.Errorf("Second shell is %s", sp)
	}
	if got := sp.Primitives()[1].Contraction; got[0] != 0.39951283 || got[1] != 0.60768372 {
		Te.Errorf("Contractions of SP shell not indexed by level: %v", got)
	}
	if B.Shell(3).Pos() != [3]float64{0, -1.43, -0.88} {
		Te.Errorf("Wrong position for last H: %v", B.Shell(3).Pos())
	}
	if _, err := S.Build([]string{"O", "H", "N"}, coords); err == nil {
		Te.Error("Build accepted an element with no basis")
	}
}

func TestBuildErrorKeepsCause(Te *testing.T) {
	S, err := DecodeSet(strings.NewReader(minimalYAML), "yaml")
	if err != nil {
		Te.Fatal(err)
	}
	S.Elements["He"] = []ShellDef{{Type: "X", Primitives: []PrimitiveDef{{Decay: 1, Contractions: []float64{1}}}}}
	coords := v3.Zeros(1)
	_, err = S.Build([]string{"he"}, coords)
	if err == nil {
		Te.Fatal("Unknown shell letter accepted")
	}
	if !strings.Contains(err.Error(), "Level < primitives < Build") {
		Te.Errorf("Decorations lost: %v", err)
	}
}
