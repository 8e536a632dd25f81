// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pridemod

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Site is a residue and position pair at which a modification may
// occur.
type Site struct {
	Residue  string
	Position string
}

// Modification is a curated PRIDE annotation grouping reference
// ontology terms under a biologically meaningful label.
type Modification struct {
	ID        string
	Title     string
	ShortName string

	// DiffMono is the monoisotopic mass delta
	// of the general modification, NaN when
	// not recorded.
	DiffMono float64

	BiologicalSignificance bool

	// UniModRefs is the accessions of the
	// UniMod modifications in the group, the
	// general modification first.
	UniModRefs []string

	Sites []Site
}

// mod mirrors the pride_modification element.
type mod struct {
	ID                     string `xml:"id,attr"`
	Title                  string `xml:"title,attr"`
	ShortName              string `xml:"short_name,attr"`
	DiffMono               string `xml:"diff_mono,attr"`
	BiologicalSignificance string `xml:"biological_significance,attr"`

	UniModMapping []struct {
		ID string `xml:"id,attr"`
	} `xml:"unimod_mapping"`
	Specificity []struct {
		Site     string `xml:"site,attr"`
		Position string `xml:"position,attr"`
	} `xml:"specificity"`
}

// Parse returns the curated annotation records held in the PRIDE
// modifications XML read from r, in document order.
func Parse(r io.Reader) ([]Modification, error) {
	dec := xml.NewDecoder(r)
	var mods []Modification
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "pride_modification" {
			continue
		}
		var m mod
		err = dec.DecodeElement(&m, &start)
		if err != nil {
			return nil, err
		}
		if m.ID == "" {
			return nil, fmt.Errorf("pridemod: modification %q has no id", m.Title)
		}
		rec := Modification{
			ID:                     m.ID,
			Title:                  m.Title,
			ShortName:              m.ShortName,
			DiffMono:               math.NaN(),
			BiologicalSignificance: m.BiologicalSignificance == "1" || m.BiologicalSignificance == "true",
		}
		if m.DiffMono != "" {
			rec.DiffMono, err = strconv.ParseFloat(m.DiffMono, 64)
			if err != nil {
				return nil, fmt.Errorf("pridemod: modification %s: invalid diff_mono: %w", m.ID, err)
			}
		}
		for _, u := range m.UniModMapping {
			if u.ID != "" {
				rec.UniModRefs = append(rec.UniModRefs, "UNIMOD:"+u.ID)
			}
		}
		for _, s := range m.Specificity {
			rec.Sites = append(rec.Sites, Site{Residue: s.Site, Position: s.Position})
		}
		mods = append(mods, rec)
	}
	return mods, nil
}
