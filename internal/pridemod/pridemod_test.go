// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pridemod

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
	f, err := os.Open(filepath.Join("testdata", "pride_mods.xml"))
	if err != nil {
		t.Fatalf("failed to open test data: %v", err)
	}
	defer f.Close()

	got, err := Parse(f)
	if err != nil {
		t.Fatalf("unexpected error during decoding: %v", err)
	}

	want := []Modification{
		{
			ID: "MOD:01214", Title: "phosphorylated residue", ShortName: "Phospho",
			DiffMono:               79.966331,
			BiologicalSignificance: true,
			UniModRefs:             []string{"UNIMOD:21"},
			Sites: []Site{
				{Residue: "S", Position: "Anywhere"},
				{Residue: "T", Position: "Anywhere"},
				{Residue: "Y", Position: "Anywhere"},
			},
		},
		{
			ID: "MOD:01060", Title: "acetylated residue", ShortName: "Acetyl",
			DiffMono:               42.010565,
			BiologicalSignificance: true,
			UniModRefs:             []string{"UNIMOD:1"},
			Sites: []Site{
				{Residue: "K", Position: "Anywhere"},
				{Residue: "N-term", Position: "Any N-term"},
			},
		},
		{
			ID: "MOD:00675", Title: "oxidized residue", ShortName: "Oxidation",
			DiffMono:   math.NaN(),
			UniModRefs: []string{"UNIMOD:35"},
			Sites: []Site{
				{Residue: "M", Position: "Anywhere"},
			},
		},
	}

	// Dump comparison since NaN deltas defeat reflect.DeepEqual.
	if dump(got) != dump(want) {
		var buf bytes.Buffer
		err := diff.Text("got", "want", dump(got), dump(want), &buf)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Errorf("unexpected modifications:\n%s", &buf)
	}
}

func TestParseNoID(t *testing.T) {
	const src = `<pride_modifications><pride_modification title="broken"/></pride_modifications>`
	_, err := Parse(strings.NewReader(src))
	if err == nil {
		t.Error("expected error for modification without id")
	}
}

func dump(mods []Modification) string {
	var b strings.Builder
	for _, m := range mods {
		fmt.Fprintf(&b, "%+v\n", m)
	}
	return b.String()
}
