// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// remod resolves protein modification identifiers against the UniMod,
// PSI-MOD and PRIDE modification ontologies. It looks up records by
// accession, searches by name, mass or site specificity, and anchors
// ambiguous annotations onto their canonical UniMod-compatible terms.
//
// The ontology sources are the UniMod XML dictionary, the PSI-MOD OBO
// file and the PRIDE modifications XML file. Sources with a .gz suffix
// are expected to be gzip compressed. Paths may be given by flag or in
// a YAML configuration file:
//
//	unimod: data/unimod.xml.gz
//	psimod: data/PSI-MOD.obo.gz
//	pridemod: data/pride_mods.xml.gz
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
