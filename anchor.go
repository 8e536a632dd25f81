// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package remod

import (
	"strconv"
	"strings"
)

// AnchorModifications returns the canonical modification set for the
// modification with the given accession: the located record passed
// through the remapping engine. An unknown accession yields an empty
// result.
func (r *Resolver) AnchorModifications(acc string) []PTM {
	var ptms []PTM
	if p := r.PTMByAccession(acc); p != nil {
		ptms = append(ptms, p)
	}
	return r.Remap(ptms)
}

// AnchorModificationsSite returns the canonical modification set for
// the given accession restricted to records with a specificity at the
// amino acid aa.
func (r *Resolver) AnchorModificationsSite(acc, aa string) []PTM {
	return filterBySite(r.AnchorModifications(acc), aa)
}

// AnchorModificationsAt returns the canonical modification set for the
// given accession restricted to records with a specificity at the
// amino acid aa in position pos.
func (r *Resolver) AnchorModificationsAt(acc, aa string, pos Position) []PTM {
	return filterBySiteAndPosition(r.AnchorModifications(acc), aa, pos)
}

// AnchorDeltaModifications returns the canonical modification set for
// the given accession seeded by monoisotopic delta mass: all records
// sharing the located record's mass are remapped together, falling
// back to the located record alone when the mass is unknown or
// unmatched. The result is restricted to records with a specificity at
// the amino acid aa.
func (r *Resolver) AnchorDeltaModifications(acc, aa string) []PTM {
	p := r.PTMByAccession(acc)
	if p == nil {
		return nil
	}
	ptms := r.PTMsByMonoDeltaMass(p.MonoDeltaMass(), 0)
	if len(ptms) == 0 {
		ptms = []PTM{p}
	}
	return filterBySite(r.Remap(ptms), aa)
}

// AnchorMassModifications returns the canonical modification set for
// an observed monoisotopic delta mass within tol, restricted to
// records with a specificity at the amino acid aa.
func (r *Resolver) AnchorMassModifications(mass, tol float64, aa string) []PTM {
	return filterBySite(r.Remap(r.PTMsByMonoDeltaMass(mass, tol)), aa)
}

// AnchorMassModificationsAt returns the canonical modification set for
// an observed monoisotopic delta mass within tol, restricted to
// records with a specificity in position pos.
func (r *Resolver) AnchorMassModificationsAt(mass, tol float64, pos Position) []PTM {
	return filterByPosition(r.Remap(r.PTMsByMonoDeltaMass(mass, tol)), pos)
}

// IsWrongAnnotated reports whether anchor resolution of the given
// accession restricted to the amino acid aa yields no records, that
// is, whether the annotation places the modification on a residue none
// of its canonical forms can occupy.
func (r *Resolver) IsWrongAnnotated(acc, aa string) bool {
	return len(r.AnchorModificationsSite(acc, aa)) == 0
}

// filterBySite keeps the modifications with a specificity at the amino
// acid aa. Sites are compared case-insensitively.
func filterBySite(ptms []PTM, aa string) []PTM {
	var kept []PTM
	for _, p := range ptms {
		for _, s := range p.Specificities() {
			if strings.EqualFold(s.Site, aa) {
				kept = append(kept, p)
				break
			}
		}
	}
	return kept
}

// filterByPosition keeps the modifications with a specificity in
// position pos.
func filterByPosition(ptms []PTM, pos Position) []PTM {
	var kept []PTM
	for _, p := range ptms {
		for _, s := range p.Specificities() {
			if s.Position == pos {
				kept = append(kept, p)
				break
			}
		}
	}
	return kept
}

// filterBySiteAndPosition keeps the modifications with a single
// specificity matching both the amino acid aa and position pos.
func filterBySiteAndPosition(ptms []PTM, aa string, pos Position) []PTM {
	var kept []PTM
	for _, p := range ptms {
		for _, s := range p.Specificities() {
			if strings.EqualFold(s.Site, aa) && s.Position == pos {
				kept = append(kept, p)
				break
			}
		}
	}
	return kept
}

// chemodPrefix tags generic mass-only accessions in the form
// "CHEMOD:34.560056" or "CHEMOD:-345.8999".
const chemodPrefix = "CHEMOD:"

// IsChemodAccession reports whether acc is a generic mass-only CHEMOD
// pseudo-accession.
func IsChemodAccession(acc string) bool {
	return strings.HasPrefix(strings.TrimSpace(acc), chemodPrefix)
}

// ChemodMass returns the signed delta mass encoded by a CHEMOD
// pseudo-accession.
func ChemodMass(acc string) (float64, bool) {
	acc = strings.TrimSpace(acc)
	if !strings.HasPrefix(acc, chemodPrefix) {
		return 0, false
	}
	mass, err := strconv.ParseFloat(strings.TrimPrefix(acc, chemodPrefix), 64)
	if err != nil {
		return 0, false
	}
	return mass, true
}

// PRIDEModByAccession returns the curated PRIDE annotation grouping
// the modification with the given accession, or nil. A CHEMOD
// pseudo-accession is first substituted by the accession of the single
// UniMod record with exactly the encoded mass that anchors a curated
// group; if no or several candidates exist no substitution is made.
func (r *Resolver) PRIDEModByAccession(acc string) *PRIDEModPTM {
	if sub := r.uniqueAccessionFromChemod(acc, ""); sub != "" {
		acc = sub
	}
	return r.pride.ByChildAccession(acc)
}

// PRIDEModByAccessionSite is PRIDEModByAccession with CHEMOD candidate
// search restricted to records with a specificity at the amino acid
// aa.
func (r *Resolver) PRIDEModByAccessionSite(acc, aa string) *PRIDEModPTM {
	if sub := r.uniqueAccessionFromChemod(acc, aa); sub != "" {
		acc = sub
	}
	return r.pride.ByChildAccession(acc)
}

// uniqueAccessionFromChemod resolves a CHEMOD pseudo-accession to the
// accession of the single curated-group-anchoring UniMod record with
// exactly the encoded mass, optionally restricted to the amino acid
// aa. Ambiguity is never resolved by guessing: no substitution is made
// for multiply-mapped masses.
func (r *Resolver) uniqueAccessionFromChemod(acc, aa string) string {
	mass, ok := ChemodMass(acc)
	if !ok {
		return ""
	}
	candidates := r.unimod.ByMonoDeltaMass(mass, 0)
	if aa != "" {
		candidates = filterBySite(candidates, aa)
	}
	general := r.pride.GeneralModification(candidates)
	if general == nil {
		return ""
	}
	return general.Accession()
}
