// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pridemod implements decoding the XML encoding of the PRIDE
// curated modification annotations.
package pridemod // import "github.com/kortschak/remod/internal/pridemod"
