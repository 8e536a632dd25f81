// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package remod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemapPassThrough(t *testing.T) {
	fx := newFixture()

	// Terms outside the PSI-MOD hierarchy are never rewritten.
	in := []PTM{fx.oxidation, fx.glygly, msModByAccession("MS:1000336")}
	assert.Equal(t, in, fx.r.Remap(in))

	assert.Empty(t, fx.r.Remap(nil))
	assert.Empty(t, fx.r.Remap([]PTM{nil}))
}

func TestRemapUniModRefs(t *testing.T) {
	fx := newFixture()

	assert.Equal(t, []PTM{fx.phospho}, fx.r.Remap([]PTM{fx.phosSer}))
	assert.Equal(t, []PTM{fx.phospho}, fx.r.Remap([]PTM{fx.phosRes}))
}

func TestRemapObsoleteChain(t *testing.T) {
	fx := newFixture()

	// MOD:01175 is replaced by MOD:00046 which bridges to UNIMOD:21.
	got := fx.r.Remap([]PTM{fx.obsolete})
	assert.Equal(t, []PTM{fx.phospho}, got)
	assert.NotContains(t, got, fx.obsolete)
}

func TestRemapObsoleteDanglingReplacement(t *testing.T) {
	fx := newFixture()

	// A replacement chain that leaves the ontology contributes nothing.
	assert.Empty(t, fx.r.Remap([]PTM{fx.obsDangling}))
}

func TestRemapObsoleteWithoutReplacement(t *testing.T) {
	fx := newFixture()

	// Obsolete but unreplaced and unparented terms survive as-is.
	assert.Equal(t, []PTM{fx.obsDeadEnd}, fx.r.Remap([]PTM{fx.obsDeadEnd}))
}

func TestRemapParentWalk(t *testing.T) {
	fx := newFixture()

	// MOD:00047 has no cross-reference of its own; its parent
	// MOD:00696 bridges to UNIMOD:21.
	assert.Equal(t, []PTM{fx.phospho}, fx.r.Remap([]PTM{fx.phosThr}))
}

func TestRemapParentWalkBranches(t *testing.T) {
	fx := newFixture()

	// Both parent branches bridge, to different UniMod terms, and
	// both mappings are collected.
	got := fx.r.Remap([]PTM{fx.branched})
	assert.Equal(t, []PTM{fx.acetyl, fx.oxidation}, got)
}

func TestRemapParentWalkUnbridged(t *testing.T) {
	fx := newFixture()

	// No ancestor carries a cross-reference; the original term is
	// the fallback.
	assert.Equal(t, []PTM{fx.orphan}, fx.r.Remap([]PTM{fx.orphan}))
}

func TestRemapDanglingCrossReference(t *testing.T) {
	fx := newFixture()

	// A cross-reference to an accession absent from the dictionary
	// is dropped rather than surfaced.
	assert.Empty(t, fx.r.Remap([]PTM{fx.dangling}))
}

func TestRemapDeduplicates(t *testing.T) {
	fx := newFixture()

	got := fx.r.Remap([]PTM{fx.phosSer, fx.phosRes, fx.phosThr, fx.phospho})
	assert.Equal(t, []PTM{fx.phospho}, got)
}

func TestRemapIdempotent(t *testing.T) {
	fx := newFixture()

	in := []PTM{
		fx.oxidation, fx.phosSer, fx.phosThr, fx.obsolete,
		fx.orphan, fx.obsDeadEnd, fx.branched,
	}
	once := fx.r.Remap(in)
	require.NotEmpty(t, once)
	assert.Equal(t, once, fx.r.Remap(once))
}

func TestRemapCycles(t *testing.T) {
	fx := newFixture()

	// A replaced_by cycle never reaches a current term.
	assert.Empty(t, fx.r.Remap([]PTM{fx.loopA}))

	// An is_a cycle ends the parent walk; with no mapping found the
	// original term is kept.
	assert.Equal(t, []PTM{fx.knotA}, fx.r.Remap([]PTM{fx.knotA}))
}
