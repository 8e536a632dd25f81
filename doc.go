// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package remod normalizes protein modification identifiers across the
// UniMod mass dictionary, the PSI-MOD ontology and the PRIDE curated
// modification annotations, remapping arbitrary terms onto the smallest
// canonical set of UniMod-compatible modifications.
package remod // import "github.com/kortschak/remod"
