// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obo implements decoding the OBO flat file encoding of the
// PSI-MOD protein modification ontology. It is not a complete OBO 1.2
// parser implementation.
package obo // import "github.com/kortschak/remod/internal/obo"
