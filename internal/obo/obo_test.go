// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obo

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/diff"
)

func TestParse(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "psi-mod.obo"))
	if err != nil {
		t.Fatalf("failed to open test data: %v", err)
	}
	defer f.Close()

	got, err := Parse(f)
	if err != nil {
		t.Fatalf("unexpected error during decoding: %v", err)
	}

	want := []Term{
		{
			ID:   "MOD:00000",
			Name: "protein modification",
			Def:  "Covalent modification of, or a change resulting in an alteration of the measured molecular mass of, a peptide or protein amino acid residue.",
			DiffMono: math.NaN(), DiffAvg: math.NaN(),
		},
		{
			ID:   "MOD:00046",
			Name: "O-phospho-L-serine",
			Def:  "A protein modification that effectively converts an L-serine residue to O-phospho-L-serine.",
			DiffMono: 79.966331, DiffAvg: 79.98,
			Origins:  []string{"S"},
			TermSpec: "none",
			IsA:      []string{"MOD:00696"},
			UniModRefs: []string{"UNIMOD:21"},
		},
		{
			ID:   "MOD:00696",
			Name: "phosphorylated residue",
			Def:  "A protein modification that effectively replaces a hydrogen atom with a phosphonato group.",
			DiffMono: 79.966331, DiffAvg: 79.98,
			Origins:  []string{"X"},
			TermSpec: "none",
			IsA:      []string{"MOD:00000"},
			UniModRefs: []string{"UNIMOD:21"},
		},
		{
			ID:   "MOD:00152",
			Name: "acetylated L-lysine",
			Def:  "A protein modification that effectively converts an L-lysine residue to N6-acetyl-L-lysine.",
			DiffMono: 42.010565, DiffAvg: 42.04,
			Origins:  []string{"K", "X"},
			TermSpec: "N-term",
			IsA:      []string{"MOD:00000", "MOD:00696"},
		},
		{
			ID:       "MOD:01175",
			Name:     "obsolete phosphorylated serine",
			DiffMono: math.NaN(), DiffAvg: math.NaN(),
			Obsolete:   true,
			ReplacedBy: "MOD:00046",
		},
	}

	// Dump comparison since NaN deltas defeat reflect.DeepEqual.
	if dump(got) != dump(want) {
		var buf bytes.Buffer
		err := diff.Text("got", "want", dump(got), dump(want), &buf)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Errorf("unexpected terms:\n%s", &buf)
	}
}

func TestParseInvalidDelta(t *testing.T) {
	const src = `[Term]
id: MOD:99999
name: broken
xref: DiffMono: "heavy"
`
	_, err := Parse(strings.NewReader(src))
	if err == nil {
		t.Error("expected error for invalid DiffMono value")
	}
}

func dump(terms []Term) string {
	var b strings.Builder
	for _, term := range terms {
		fmt.Fprintf(&b, "%+v\n", term)
	}
	return b.String()
}
