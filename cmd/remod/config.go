// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the ontology source paths read from the YAML
// configuration file.
type Config struct {
	UniMod   string `yaml:"unimod"`
	PSIMod   string `yaml:"psimod"`
	PRIDEMod string `yaml:"pridemod"`
}

// loadConfig returns the configuration at path, or a zero Config when
// no path is given.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return cfg, nil
}
