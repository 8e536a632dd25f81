// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package remod

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// index is an immutable accession to modification mapping shared by
// the three ontology indices. All searches are linear scans over the
// terms in source document order; absence of a match is an empty
// result, never an error.
type index struct {
	terms []PTM
	byAcc map[string]PTM
}

func newIndex(ptms []PTM) index {
	ix := index{byAcc: make(map[string]PTM, len(ptms))}
	for _, p := range ptms {
		if _, ok := ix.byAcc[p.Accession()]; ok {
			// Accessions are unique within an ontology;
			// keep the first record of a malformed source.
			continue
		}
		ix.byAcc[p.Accession()] = p
		ix.terms = append(ix.terms, p)
	}
	return ix
}

// ByAccession returns the modification with the given accession, or
// nil if it is not held.
func (ix *index) ByAccession(acc string) PTM {
	return ix.byAcc[acc]
}

// Terms returns all modifications held by the index in source document
// order.
func (ix *index) Terms() []PTM {
	terms := make([]PTM, len(ix.terms))
	copy(terms, ix.terms)
	return terms
}

// ByNamePattern returns all modifications whose name contains the
// given substring.
func (ix *index) ByNamePattern(pattern string) []PTM {
	var ptms []PTM
	for _, p := range ix.terms {
		if strings.Contains(p.Name(), pattern) {
			ptms = append(ptms, p)
		}
	}
	return ptms
}

// ByExactName returns all modifications with exactly the given name.
// Distinct accessions may share a name, so more than one record can be
// returned.
func (ix *index) ByExactName(name string) []PTM {
	var ptms []PTM
	for _, p := range ix.terms {
		if p.Name() == name {
			ptms = append(ptms, p)
		}
	}
	return ptms
}

// ByDescriptionPattern returns all modifications whose description
// contains the given substring.
func (ix *index) ByDescriptionPattern(pattern string) []PTM {
	var ptms []PTM
	for _, p := range ix.terms {
		if strings.Contains(p.Description(), pattern) {
			ptms = append(ptms, p)
		}
	}
	return ptms
}

// ByMonoDeltaMass returns all modifications whose monoisotopic delta
// mass lies within tol of mass. A zero tolerance requires an exact
// match. Records without a known monoisotopic delta never match.
func (ix *index) ByMonoDeltaMass(mass, tol float64) []PTM {
	var ptms []PTM
	for _, p := range ix.terms {
		if scalar.EqualWithinAbs(p.MonoDeltaMass(), mass, tol) {
			ptms = append(ptms, p)
		}
	}
	return ptms
}

// ByAvgDeltaMass returns all modifications whose average delta mass
// lies within tol of mass. A zero tolerance requires an exact match.
// Records without a known average delta never match.
func (ix *index) ByAvgDeltaMass(mass, tol float64) []PTM {
	var ptms []PTM
	for _, p := range ix.terms {
		if scalar.EqualWithinAbs(p.AvgDeltaMass(), mass, tol) {
			ptms = append(ptms, p)
		}
	}
	return ptms
}

// BySpecificity returns all modifications with a specificity matching
// spec. Sites are compared case-insensitively and an empty requested
// position matches any position.
func (ix *index) BySpecificity(spec Specificity) []PTM {
	var ptms []PTM
	for _, p := range ix.terms {
		for _, s := range p.Specificities() {
			if !strings.EqualFold(s.Site, spec.Site) {
				continue
			}
			if spec.Position != "" && s.Position != spec.Position {
				continue
			}
			ptms = append(ptms, p)
			break
		}
	}
	return ptms
}

// UniModIndex is the UniMod mass dictionary index.
type UniModIndex struct {
	index
}

// NewUniModIndex returns an index over the given UniMod records.
func NewUniModIndex(terms []*UniModPTM) *UniModIndex {
	ptms := make([]PTM, len(terms))
	for i, t := range terms {
		ptms[i] = t
	}
	return &UniModIndex{index: newIndex(ptms)}
}

// ByAccession returns the UniMod modification for acc, accepting the
// forms "UNIMOD:35", "UniMod:35" and "35".
func (ix *UniModIndex) ByAccession(acc string) PTM {
	return ix.index.ByAccession(normalizeUniMod(acc))
}

// normalizeUniMod maps the accepted UniMod accession spellings onto
// the canonical "UNIMOD:n" form. Non-UniMod accessions are returned
// unaltered.
func normalizeUniMod(acc string) string {
	acc = strings.TrimSpace(acc)
	if i := strings.IndexByte(acc, ':'); i >= 0 {
		if strings.EqualFold(acc[:i], "unimod") {
			return "UNIMOD:" + acc[i+1:]
		}
		return acc
	}
	if isDigits(acc) {
		return "UNIMOD:" + acc
	}
	return acc
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || '9' < r {
			return false
		}
	}
	return true
}

// termNode is a PSI-MOD hierarchy graph node.
type termNode struct {
	id   int64
	term *PSIModPTM
}

func (n termNode) ID() int64 { return n.id }

// PSIModIndex is the PSI-MOD ontology index. The is_a hierarchy is
// held as a directed graph with edges from child to parent terms.
type PSIModIndex struct {
	index

	g   *simple.DirectedGraph
	ids map[string]int64
}

// NewPSIModIndex returns an index over the given PSI-MOD terms.
// Parent references to terms not present in the source are not added
// to the hierarchy graph.
func NewPSIModIndex(terms []*PSIModPTM) *PSIModIndex {
	ptms := make([]PTM, len(terms))
	for i, t := range terms {
		ptms[i] = t
	}
	ix := &PSIModIndex{
		index: newIndex(ptms),
		g:     simple.NewDirectedGraph(),
		ids:   make(map[string]int64),
	}
	for _, p := range ix.terms {
		t := p.(*PSIModPTM)
		ix.ids[t.Acc] = int64(len(ix.ids))
		ix.g.AddNode(termNode{id: ix.ids[t.Acc], term: t})
	}
	for _, p := range ix.terms {
		t := p.(*PSIModPTM)
		for _, parent := range t.Parents {
			pid, ok := ix.ids[parent]
			if !ok || pid == ix.ids[t.Acc] {
				continue
			}
			ix.g.SetEdge(simple.Edge{F: ix.g.Node(ix.ids[t.Acc]), T: ix.g.Node(pid)})
		}
	}
	return ix
}

// Parents returns the direct is_a parents of the term with the given
// accession, ordered by accession.
func (ix *PSIModIndex) Parents(acc string) []*PSIModPTM {
	id, ok := ix.ids[acc]
	if !ok {
		return nil
	}
	var parents []*PSIModPTM
	to := ix.g.From(id)
	for to.Next() {
		parents = append(parents, to.Node().(termNode).term)
	}
	sort.Slice(parents, func(i, j int) bool { return parents[i].Acc < parents[j].Acc })
	return parents
}

// Ancestors returns all terms reachable from acc over is_a edges,
// nearest first. The term itself is not included.
func (ix *PSIModIndex) Ancestors(acc string) []*PSIModPTM {
	id, ok := ix.ids[acc]
	if !ok {
		return nil
	}
	type depthTerm struct {
		term  *PSIModPTM
		depth int
	}
	var anc []depthTerm
	bf := traverse.BreadthFirst{}
	bf.Walk(ix.g, ix.g.Node(id), func(n graph.Node, d int) bool {
		if n.ID() != id {
			anc = append(anc, depthTerm{term: n.(termNode).term, depth: d})
		}
		return false
	})
	sort.Slice(anc, func(i, j int) bool {
		if anc[i].depth != anc[j].depth {
			return anc[i].depth < anc[j].depth
		}
		return anc[i].term.Acc < anc[j].term.Acc
	})
	terms := make([]*PSIModPTM, len(anc))
	for i, a := range anc {
		terms[i] = a.term
	}
	return terms
}

// PRIDEModIndex is the PRIDE curated annotation index. Aggregation
// entries are additionally reachable through the accession of the
// general UniMod modification each group is built around.
type PRIDEModIndex struct {
	index

	byChild map[string]*PRIDEModPTM
}

// NewPRIDEModIndex returns an index over the given PRIDE annotations.
func NewPRIDEModIndex(terms []*PRIDEModPTM) *PRIDEModIndex {
	ptms := make([]PTM, len(terms))
	for i, t := range terms {
		ptms[i] = t
	}
	ix := &PRIDEModIndex{
		index:   newIndex(ptms),
		byChild: make(map[string]*PRIDEModPTM),
	}
	for _, p := range ix.terms {
		t := p.(*PRIDEModPTM)
		if t.UniModRef == "" {
			continue
		}
		ref := normalizeUniMod(t.UniModRef)
		if _, ok := ix.byChild[ref]; !ok {
			ix.byChild[ref] = t
		}
	}
	return ix
}

// ByChildAccession returns the aggregation entry whose group contains
// the modification with the given UniMod accession, or nil.
func (ix *PRIDEModIndex) ByChildAccession(acc string) *PRIDEModPTM {
	return ix.byChild[normalizeUniMod(acc)]
}

// GeneralModification returns the single candidate that anchors a
// curated aggregation group. If none or more than one distinct
// candidate anchors a group, nil is returned: multiply-mapped
// candidate lists are never resolved without manual curation.
func (ix *PRIDEModIndex) GeneralModification(candidates []PTM) PTM {
	var found PTM
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if _, ok := ix.byChild[normalizeUniMod(c.Accession())]; !ok {
			continue
		}
		if found != nil && found.Accession() != c.Accession() {
			return nil
		}
		found = c
	}
	return found
}
