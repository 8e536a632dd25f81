// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package remod

import (
	"fmt"
	"math"
	"strings"
)

// Position is the location on a peptide or protein at which a
// modification is observed.
type Position string

const (
	PositionAnywhere     Position = "Anywhere"
	PositionAnyNTerm     Position = "Any N-term"
	PositionAnyCTerm     Position = "Any C-term"
	PositionProteinNTerm Position = "Protein N-term"
	PositionProteinCTerm Position = "Protein C-term"
	PositionNone         Position = "None"
)

// PositionFor returns the Position for a source file label. Labels not
// in the known vocabulary map to PositionNone.
func PositionFor(label string) Position {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "anywhere", "any", "none specified":
		return PositionAnywhere
	case "any n-term", "n-term", "nterm":
		return PositionAnyNTerm
	case "any c-term", "c-term", "cterm":
		return PositionAnyCTerm
	case "protein n-term", "prot-n-term":
		return PositionProteinNTerm
	case "protein c-term", "prot-c-term":
		return PositionProteinCTerm
	default:
		return PositionNone
	}
}

// Specificity is a residue and position pair at which a modification
// may occur.
type Specificity struct {
	// Site is a single letter amino acid code,
	// or a residue class such as "N-term".
	Site string

	Position Position
}

func (s Specificity) String() string {
	return s.Site + "@" + string(s.Position)
}

// PTM is a protein modification term held by one of the ontology
// indices. Mass deltas are monoisotopic and average mass differences
// introduced by the modification; a delta is NaN when the source
// ontology does not record it, and NaN-mass terms do not take part in
// mass-based searches.
type PTM interface {
	Accession() string
	Name() string
	Description() string
	MonoDeltaMass() float64
	AvgDeltaMass() float64
	Specificities() []Specificity
}

// UniModPTM is a modification from the UniMod mass dictionary.
// Accessions are in the form "UNIMOD:35".
type UniModPTM struct {
	Acc      string
	Title    string
	FullName string
	Mono     float64
	Avg      float64
	Specs    []Specificity
}

func (p *UniModPTM) Accession() string            { return p.Acc }
func (p *UniModPTM) Name() string                 { return p.Title }
func (p *UniModPTM) Description() string          { return p.FullName }
func (p *UniModPTM) MonoDeltaMass() float64       { return p.Mono }
func (p *UniModPTM) AvgDeltaMass() float64        { return p.Avg }
func (p *UniModPTM) Specificities() []Specificity { return p.Specs }

func (p *UniModPTM) String() string {
	return fmt.Sprintf("%s %q mono=%v avg=%v %v", p.Acc, p.Title, p.Mono, p.Avg, p.Specs)
}

// PSIModPTM is a modification from the PSI-MOD ontology. Accessions
// are in the form "MOD:00046". PSI-MOD terms carry the hierarchy and
// obsolescence information used by the remapping engine: UniModRefs
// are cross-references into the UniMod dictionary, RemapTo is the
// replacement term of an obsolete entry and Parents are the is_a
// superclasses within PSI-MOD.
type PSIModPTM struct {
	Acc        string
	TermName   string
	Def        string
	Mono       float64
	Avg        float64
	Specs      []Specificity
	Obsolete   bool
	RemapTo    string
	Parents    []string
	UniModRefs []string
}

func (p *PSIModPTM) Accession() string            { return p.Acc }
func (p *PSIModPTM) Name() string                 { return p.TermName }
func (p *PSIModPTM) Description() string          { return p.Def }
func (p *PSIModPTM) MonoDeltaMass() float64       { return p.Mono }
func (p *PSIModPTM) AvgDeltaMass() float64        { return p.Avg }
func (p *PSIModPTM) Specificities() []Specificity { return p.Specs }

func (p *PSIModPTM) String() string {
	return fmt.Sprintf("%s %q mono=%v avg=%v %v obsolete=%t", p.Acc, p.TermName, p.Mono, p.Avg, p.Specs, p.Obsolete)
}

// PRIDEModPTM is a curated PRIDE annotation grouping UniMod and
// PSI-MOD terms under a biologically meaningful label. UniModRef is
// the accession of the general UniMod modification the group is built
// around.
type PRIDEModPTM struct {
	Acc             string
	Title           string
	ShortName       string
	Mono            float64
	Specs           []Specificity
	BioSignificance bool
	UniModRef       string
}

func (p *PRIDEModPTM) Accession() string            { return p.Acc }
func (p *PRIDEModPTM) Name() string                 { return p.Title }
func (p *PRIDEModPTM) Description() string          { return p.ShortName }
func (p *PRIDEModPTM) MonoDeltaMass() float64       { return p.Mono }
func (p *PRIDEModPTM) AvgDeltaMass() float64        { return math.NaN() }
func (p *PRIDEModPTM) Specificities() []Specificity { return p.Specs }

func (p *PRIDEModPTM) String() string {
	return fmt.Sprintf("%s %q mono=%v ref=%s", p.Acc, p.Title, p.Mono, p.UniModRef)
}

// MSModPTM is a PSI-MS controlled vocabulary pseudo-modification such
// as a fragment neutral loss. The set of terms is fixed; see msMods.
type MSModPTM struct {
	Acc      string
	TermName string
}

func (p *MSModPTM) Accession() string            { return p.Acc }
func (p *MSModPTM) Name() string                 { return p.TermName }
func (p *MSModPTM) Description() string          { return p.TermName }
func (p *MSModPTM) MonoDeltaMass() float64       { return math.NaN() }
func (p *MSModPTM) AvgDeltaMass() float64        { return math.NaN() }
func (p *MSModPTM) Specificities() []Specificity { return nil }

// msMods is the static table of PSI-MS pseudo-modifications that can
// appear in place of a UniMod or PSI-MOD accession in identification
// files.
var msMods = []*MSModPTM{
	{Acc: "MS:1000336", TermName: "neutral loss"},
	{Acc: "MS:1001524", TermName: "fragment neutral loss"},
	{Acc: "MS:1002509", TermName: "isobaric label quantitation analysis"},
}

func msModByAccession(acc string) PTM {
	for _, m := range msMods {
		if m.Acc == acc {
			return m
		}
	}
	return nil
}
