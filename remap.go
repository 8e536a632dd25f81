// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package remod

// Remap normalizes a candidate list of modifications onto the smallest
// set of UniMod-compatible terms. Non-PSI-MOD candidates pass through
// unchanged. A PSI-MOD candidate is resolved through, in order of
// preference, its UniMod cross-references, the replacement chain of an
// obsolete term, and a depth-first walk of its is_a parents; a
// candidate with no bridge to UniMod at any depth is kept unchanged.
// The result is deduplicated by accession; its order carries no
// meaning.
//
// PSI-MOD is assumed acyclic but this is not trusted: both recursive
// walks carry a visited set and a detected cycle silently ends the
// branch.
func (r *Resolver) Remap(ptms []PTM) []PTM {
	var mapped []PTM
	for _, p := range ptms {
		if p == nil {
			continue
		}
		psi, ok := p.(*PSIModPTM)
		if !ok {
			mapped = append(mapped, p)
			continue
		}
		switch {
		case len(psi.UniModRefs) != 0:
			mapped = append(mapped, r.resolveUniModRefs(psi)...)
		case psi.Obsolete && psi.RemapTo != "":
			current := r.followReplacements(psi)
			if current != nil && len(current.UniModRefs) != 0 {
				mapped = append(mapped, r.resolveUniModRefs(current)...)
			}
		case len(psi.Parents) != 0:
			parents := r.remapParents(psi, map[string]bool{psi.Acc: true})
			if len(parents) != 0 {
				mapped = append(mapped, parents...)
			} else {
				mapped = append(mapped, psi)
			}
		default:
			mapped = append(mapped, psi)
		}
	}
	return dedupByAccession(mapped)
}

// resolveUniModRefs returns the UniMod records cross-referenced by the
// given term. References to accessions absent from the dictionary are
// dropped.
func (r *Resolver) resolveUniModRefs(psi *PSIModPTM) []PTM {
	var ptms []PTM
	for _, ref := range psi.UniModRefs {
		if p := r.unimod.ByAccession(ref); p != nil {
			ptms = append(ptms, p)
		}
	}
	return ptms
}

// followReplacements walks the replaced_by chain of an obsolete term
// until it reaches a current term. A dangling or cyclic chain returns
// nil.
func (r *Resolver) followReplacements(psi *PSIModPTM) *PSIModPTM {
	visited := map[string]bool{psi.Acc: true}
	for psi.Obsolete && psi.RemapTo != "" {
		next, ok := r.psimod.ByAccession(psi.RemapTo).(*PSIModPTM)
		if !ok || visited[next.Acc] {
			return nil
		}
		visited[next.Acc] = true
		psi = next
	}
	return psi
}

// remapParents walks the is_a parents of psi depth first, collecting
// the UniMod records of every parent branch that carries a
// cross-reference. Descent of a branch stops at the first term that
// yields a mapping.
func (r *Resolver) remapParents(psi *PSIModPTM, visited map[string]bool) []PTM {
	var ptms []PTM
	for _, parent := range r.psimod.Parents(psi.Acc) {
		if visited[parent.Acc] {
			continue
		}
		visited[parent.Acc] = true
		switch {
		case len(parent.UniModRefs) != 0:
			ptms = append(ptms, r.resolveUniModRefs(parent)...)
		case len(parent.Parents) != 0:
			ptms = append(ptms, r.remapParents(parent, visited)...)
		}
	}
	return ptms
}

// dedupByAccession removes duplicate records, keeping first
// appearances. Records are singletons within their index, so accession
// equality is record equality.
func dedupByAccession(ptms []PTM) []PTM {
	var unique []PTM
	seen := make(map[string]bool, len(ptms))
	for _, p := range ptms {
		if seen[p.Accession()] {
			continue
		}
		seen[p.Accession()] = true
		unique = append(unique, p)
	}
	return unique
}
