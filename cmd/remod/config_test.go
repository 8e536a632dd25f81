// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "remod.yaml")
	const src = `unimod: data/unimod.xml.gz
psimod: data/PSI-MOD.obo.gz
pridemod: data/pride_mods.xml.gz
`
	err := os.WriteFile(path, []byte(src), 0o644)
	if err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}
	want := Config{
		UniMod:   "data/unimod.xml.gz",
		PSIMod:   "data/PSI-MOD.obo.gz",
		PRIDEMod: "data/pride_mods.xml.gz",
	}
	if cfg != want {
		t.Errorf("unexpected config: got:%+v want:%+v", cfg, want)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("unexpected non-zero config: %+v", cfg)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "remod.yaml")
	err := os.WriteFile(path, []byte("unimod: [\n"), 0o644)
	if err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	_, err = loadConfig(path)
	if err == nil {
		t.Error("expected error for malformed config")
	}
}
