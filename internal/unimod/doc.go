// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unimod implements decoding the XML encoding of the UniMod
// protein modification dictionary. It is not a complete unimod schema
// implementation.
package unimod // import "github.com/kortschak/remod/internal/unimod"
