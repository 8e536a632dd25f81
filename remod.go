// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package remod

import (
	"fmt"
	"io"
	"strings"

	"github.com/kortschak/remod/internal/obo"
	"github.com/kortschak/remod/internal/pridemod"
	"github.com/kortschak/remod/internal/unimod"
)

// DataAccessError is returned by Load when one of the three ontology
// sources cannot be read or parsed. A Resolver is never constructed
// over partial data.
type DataAccessError struct {
	// Source names the ontology source
	// that failed to load.
	Source string

	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("remod: loading %s: %v", e.Source, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

// Resolver holds the three ontology indices and implements lookup,
// search, remapping and anchor resolution over them. The indices are
// immutable, so a Resolver is safe for concurrent use without locking.
type Resolver struct {
	unimod *UniModIndex
	psimod *PSIModIndex
	pride  *PRIDEModIndex
}

// New returns a Resolver over the given indices.
func New(unimod *UniModIndex, psimod *PSIModIndex, pride *PRIDEModIndex) *Resolver {
	return &Resolver{unimod: unimod, psimod: psimod, pride: pride}
}

// Load constructs a Resolver from the UniMod XML, PSI-MOD OBO and
// PRIDE modifications XML sources. Failure to parse any source is
// fatal and returned as a *DataAccessError.
func Load(unimodSrc, psimodSrc, prideSrc io.Reader) (*Resolver, error) {
	mods, err := unimod.Parse(unimodSrc)
	if err != nil {
		return nil, &DataAccessError{Source: "unimod", Err: err}
	}
	uniTerms := make([]*UniModPTM, len(mods))
	for i, m := range mods {
		specs := make([]Specificity, 0, len(m.Sites))
		for _, s := range m.Sites {
			specs = append(specs, Specificity{Site: s.Residue, Position: PositionFor(s.Position)})
		}
		uniTerms[i] = &UniModPTM{
			Acc:      "UNIMOD:" + m.RecordID,
			Title:    m.Title,
			FullName: m.FullName,
			Mono:     m.MonoMass,
			Avg:      m.AvgMass,
			Specs:    specs,
		}
	}

	terms, err := obo.Parse(psimodSrc)
	if err != nil {
		return nil, &DataAccessError{Source: "psi-mod", Err: err}
	}
	psiTerms := make([]*PSIModPTM, len(terms))
	for i, t := range terms {
		specs := make([]Specificity, 0, len(t.Origins))
		for _, o := range t.Origins {
			specs = append(specs, Specificity{Site: o, Position: PositionFor(t.TermSpec)})
		}
		psiTerms[i] = &PSIModPTM{
			Acc:        t.ID,
			TermName:   t.Name,
			Def:        t.Def,
			Mono:       t.DiffMono,
			Avg:        t.DiffAvg,
			Specs:      specs,
			Obsolete:   t.Obsolete,
			RemapTo:    t.ReplacedBy,
			Parents:    t.IsA,
			UniModRefs: t.UniModRefs,
		}
	}

	groups, err := pridemod.Parse(prideSrc)
	if err != nil {
		return nil, &DataAccessError{Source: "pride-mod", Err: err}
	}
	prideTerms := make([]*PRIDEModPTM, len(groups))
	for i, g := range groups {
		var ref string
		if len(g.UniModRefs) != 0 {
			// The curated file records one general
			// mapping per group; trailing mappings
			// are historical and ignored.
			ref = normalizeUniMod(g.UniModRefs[0])
		}
		specs := make([]Specificity, 0, len(g.Sites))
		for _, s := range g.Sites {
			specs = append(specs, Specificity{Site: s.Residue, Position: PositionFor(s.Position)})
		}
		prideTerms[i] = &PRIDEModPTM{
			Acc:             g.ID,
			Title:           g.Title,
			ShortName:       g.ShortName,
			Mono:            g.DiffMono,
			Specs:           specs,
			BioSignificance: g.BiologicalSignificance,
			UniModRef:       ref,
		}
	}

	return New(NewUniModIndex(uniTerms), NewPSIModIndex(psiTerms), NewPRIDEModIndex(prideTerms)), nil
}

// UniMod returns the UniMod mass dictionary index.
func (r *Resolver) UniMod() *UniModIndex { return r.unimod }

// PSIMod returns the PSI-MOD ontology index.
func (r *Resolver) PSIMod() *PSIModIndex { return r.psimod }

// PRIDEMod returns the PRIDE curated annotation index.
func (r *Resolver) PRIDEMod() *PRIDEModIndex { return r.pride }

// accessionType partitions accession strings over the ontologies that
// can hold them.
type accessionType int

const (
	accessionUnknown accessionType = iota
	accessionMS
	accessionUniMod
	accessionPSIMod
	accessionChemod
)

func accessionTypeOf(acc string) accessionType {
	acc = strings.TrimSpace(acc)
	switch {
	case strings.HasPrefix(acc, "MS:"):
		return accessionMS
	case strings.HasPrefix(acc, "MOD:"):
		return accessionPSIMod
	case strings.HasPrefix(acc, chemodPrefix):
		return accessionChemod
	case isDigits(acc):
		return accessionUniMod
	default:
		if i := strings.IndexByte(acc, ':'); i >= 0 && strings.EqualFold(acc[:i], "unimod") {
			return accessionUniMod
		}
		return accessionUnknown
	}
}

// PTMByAccession returns the modification with the given accession,
// routing on the accession form: "MS:n" terms come from the static
// PSI-MS table, "UNIMOD:n" or bare numeric accessions from the UniMod
// dictionary and "MOD:n" terms from PSI-MOD. Unrecognized accessions
// yield nil.
func (r *Resolver) PTMByAccession(acc string) PTM {
	switch accessionTypeOf(acc) {
	case accessionMS:
		return msModByAccession(strings.TrimSpace(acc))
	case accessionUniMod:
		return r.unimod.ByAccession(acc)
	case accessionPSIMod:
		return r.psimod.ByAccession(strings.TrimSpace(acc))
	default:
		return nil
	}
}

// PTMsByNamePattern returns the modifications in the UniMod and
// PSI-MOD indices whose name contains the given substring. Results
// from both ontologies are concatenated without deduplication.
func (r *Resolver) PTMsByNamePattern(pattern string) []PTM {
	return append(r.unimod.ByNamePattern(pattern), r.psimod.ByNamePattern(pattern)...)
}

// PTMsByDescriptionPattern returns the modifications in the UniMod and
// PSI-MOD indices whose description contains the given substring.
func (r *Resolver) PTMsByDescriptionPattern(pattern string) []PTM {
	return append(r.unimod.ByDescriptionPattern(pattern), r.psimod.ByDescriptionPattern(pattern)...)
}

// PTMsByExactName returns the modifications in the UniMod and PSI-MOD
// indices with exactly the given name. PSI-MOD legitimately assigns
// one name to several accessions, so duplicates of a name are
// expected.
func (r *Resolver) PTMsByExactName(name string) []PTM {
	return append(r.unimod.ByExactName(name), r.psimod.ByExactName(name)...)
}

// PTMsBySpecificity returns the modifications in the UniMod and
// PSI-MOD indices with a specificity matching spec.
func (r *Resolver) PTMsBySpecificity(spec Specificity) []PTM {
	return append(r.unimod.BySpecificity(spec), r.psimod.BySpecificity(spec)...)
}

// PTMsByMonoDeltaMass returns the modifications in the UniMod and
// PSI-MOD indices whose monoisotopic delta mass lies within tol of
// mass. A zero tolerance requires an exact match.
func (r *Resolver) PTMsByMonoDeltaMass(mass, tol float64) []PTM {
	return append(r.unimod.ByMonoDeltaMass(mass, tol), r.psimod.ByMonoDeltaMass(mass, tol)...)
}

// PTMsByAvgDeltaMass returns the modifications in the UniMod and
// PSI-MOD indices whose average delta mass lies within tol of mass.
// A zero tolerance requires an exact match.
func (r *Resolver) PTMsByAvgDeltaMass(mass, tol float64) []PTM {
	return append(r.unimod.ByAvgDeltaMass(mass, tol), r.psimod.ByAvgDeltaMass(mass, tol)...)
}

// UniModPTMs returns all modifications held by the UniMod dictionary.
func (r *Resolver) UniModPTMs() []PTM {
	return r.unimod.Terms()
}
