// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unimod

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

// Modification is a single UniMod dictionary record.
type Modification struct {
	// RecordID is the numeric UniMod
	// accession without prefix.
	RecordID string

	Title    string
	FullName string

	// MonoMass and AvgMass are the mass
	// deltas introduced by the modification.
	// A delta not present in the source
	// is NaN.
	MonoMass float64
	AvgMass  float64

	Sites []Site
}

// mod mirrors the unimod.xml mod element. Namespace prefixes are not
// matched so both prefixed and unprefixed documents decode.
type mod struct {
	Title    string `xml:"title,attr"`
	FullName string `xml:"full_name,attr"`
	RecordID string `xml:"record_id,attr"`

	Specificity []specificity `xml:"specificity"`
	Delta       *delta        `xml:"delta"`
}

type specificity struct {
	Site     string `xml:"site,attr"`
	Position string `xml:"position,attr"`
}

type delta struct {
	MonoMass string `xml:"mono_mass,attr"`
	AvgMass  string `xml:"avge_mass,attr"`
}

// Parse returns the modification records held in the UniMod XML read
// from r, in document order.
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
		if !ok || start.Name.Local != "mod" {
			continue
		}
		var m mod
		err = dec.DecodeElement(&m, &start)
		if err != nil {
			return nil, err
		}
		if m.RecordID == "" {
			return nil, fmt.Errorf("unimod: mod %q has no record_id", m.Title)
		}
		rec := Modification{
			RecordID: m.RecordID,
			Title:    m.Title,
			FullName: m.FullName,
			MonoMass: math.NaN(),
			AvgMass:  math.NaN(),
		}
		if m.Delta != nil {
			rec.MonoMass, err = massOf(m.Delta.MonoMass)
			if err != nil {
				return nil, fmt.Errorf("unimod: mod %s: %w", m.RecordID, err)
			}
			rec.AvgMass, err = massOf(m.Delta.AvgMass)
			if err != nil {
				return nil, fmt.Errorf("unimod: mod %s: %w", m.RecordID, err)
			}
		}
		for _, s := range m.Specificity {
			rec.Sites = append(rec.Sites, Site{Residue: s.Site, Position: s.Position})
		}
		mods = append(mods, rec)
	}
	return mods, nil
}

func massOf(s string) (float64, error) {
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
