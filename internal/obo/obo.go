// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obo

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Term is a single PSI-MOD ontology term.
type Term struct {
	ID   string
	Name string
	Def  string

	// DiffMono and DiffAvg are the mass deltas
	// recorded by the DiffMono and DiffAvg
	// xrefs. A delta not present in the source
	// is NaN.
	DiffMono float64
	DiffAvg  float64

	// Origins is the residues recorded by the
	// Origin xref and TermSpec the position
	// recorded by the TermSpec xref.
	Origins  []string
	TermSpec string

	Obsolete   bool
	ReplacedBy string
	IsA        []string

	// UniModRefs is the UniMod accessions the
	// term cross-references.
	UniModRefs []string
}

// Parse returns the terms held in the OBO document read from r, in
// document order. Only [Term] stanzas are decoded; header and typedef
// stanzas are skipped.
func Parse(r io.Reader) ([]Term, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<20)

	var (
		terms   []Term
		current *Term
		line    int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "":
			continue
		case strings.HasPrefix(text, "["):
			if current != nil {
				terms = append(terms, flush(current))
				current = nil
			}
			if text == "[Term]" {
				current = &Term{DiffMono: math.NaN(), DiffAvg: math.NaN()}
			}
			continue
		case current == nil:
			continue
		}

		key, value, ok := strings.Cut(text, ":")
		if !ok {
			return nil, fmt.Errorf("obo: line %d: no tag separator in %q", line, text)
		}
		value = strings.TrimSpace(value)
		var err error
		switch key {
		case "id":
			current.ID = value
		case "name":
			current.Name = value
		case "def":
			current.Def = unquote(value)
			current.UniModRefs = append(current.UniModRefs, unimodRefs(value)...)
		case "xref":
			err = current.addXref(value)
		case "is_obsolete":
			current.Obsolete = strings.HasPrefix(value, "true")
		case "replaced_by":
			current.ReplacedBy = stripComment(value)
		case "is_a":
			current.IsA = append(current.IsA, stripComment(value))
		}
		if err != nil {
			return nil, fmt.Errorf("obo: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if current != nil {
		terms = append(terms, flush(current))
	}
	return terms, nil
}

// flush finalizes a stanza, removing UniMod accessions referenced by
// both an xref tag and the def dbxref list.
func flush(t *Term) Term {
	if len(t.UniModRefs) > 1 {
		seen := make(map[string]bool, len(t.UniModRefs))
		refs := t.UniModRefs[:0]
		for _, ref := range t.UniModRefs {
			if seen[ref] {
				continue
			}
			seen[ref] = true
			refs = append(refs, ref)
		}
		t.UniModRefs = refs
	}
	return *t
}

// addXref decodes the xref tag values PSI-MOD uses to carry record
// fields, in the forms
//
//	DiffMono: "79.966331"
//	Origin: "S, T, Y"
//	TermSpec: "N-term"
//	Unimod:21 "Phospho"
//
// Unknown xref kinds are ignored.
func (t *Term) addXref(value string) error {
	kind, rest, ok := strings.Cut(value, ":")
	if !ok {
		return nil
	}
	rest = strings.TrimSpace(rest)
	switch kind {
	case "DiffMono", "DiffAvg":
		q := unquote(rest)
		if q == "" || q == "none" {
			return nil
		}
		mass, err := strconv.ParseFloat(q, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", kind, q, err)
		}
		if kind == "DiffMono" {
			t.DiffMono = mass
		} else {
			t.DiffAvg = mass
		}
	case "Origin":
		for _, o := range strings.Split(unquote(rest), ",") {
			o = strings.TrimSpace(o)
			if o == "" || o == "none" {
				continue
			}
			t.Origins = append(t.Origins, o)
		}
	case "TermSpec":
		t.TermSpec = unquote(rest)
	case "Unimod", "UniMod":
		acc, _, _ := strings.Cut(rest, " ")
		if acc != "" {
			t.UniModRefs = append(t.UniModRefs, "UNIMOD:"+acc)
		}
	}
	return nil
}

// unimodRefs extracts UniMod accessions from the dbxref list of a def
// tag, e.g.
//
//	def: "..." [PubMed:15961757, Unimod:21]
func unimodRefs(def string) []string {
	open := strings.LastIndexByte(def, '[')
	end := strings.LastIndexByte(def, ']')
	if open < 0 || end < open {
		return nil
	}
	var refs []string
	for _, xref := range strings.Split(def[open+1:end], ",") {
		xref = strings.TrimSpace(xref)
		kind, acc, ok := strings.Cut(xref, ":")
		if !ok || !strings.EqualFold(kind, "unimod") {
			continue
		}
		refs = append(refs, "UNIMOD:"+strings.TrimSpace(acc))
	}
	return refs
}

// stripComment removes an OBO trailing comment, "MOD:00696 ! name"
// giving "MOD:00696".
func stripComment(value string) string {
	value, _, _ = strings.Cut(value, "!")
	return strings.TrimSpace(value)
}

// unquote returns the content of the first double-quoted section of
// value, or the value itself when it is not quoted.
func unquote(value string) string {
	open := strings.IndexByte(value, '"')
	if open < 0 {
		return strings.TrimSpace(value)
	}
	end := strings.IndexByte(value[open+1:], '"')
	if end < 0 {
		return strings.TrimSpace(value[open+1:])
	}
	return value[open+1 : open+1+end]
}
