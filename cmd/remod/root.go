// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kortschak/remod"
)

var (
	cfgPath      string
	unimodPath   string
	psimodPath   string
	pridemodPath string
)

var rootCmd = &cobra.Command{
	Use:           "remod",
	Short:         "resolve protein modification identifiers",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&unimodPath, "unimod", "", "path to the UniMod XML dictionary")
	rootCmd.PersistentFlags().StringVar(&psimodPath, "psimod", "", "path to the PSI-MOD OBO file")
	rootCmd.PersistentFlags().StringVar(&pridemodPath, "pridemod", "", "path to the PRIDE modifications XML file")
}

// loadResolver builds a resolver from the configured ontology sources.
// Flags take precedence over configuration file values.
func loadResolver() (*remod.Resolver, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	if unimodPath != "" {
		cfg.UniMod = unimodPath
	}
	if psimodPath != "" {
		cfg.PSIMod = psimodPath
	}
	if pridemodPath != "" {
		cfg.PRIDEMod = pridemodPath
	}

	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()
	var readers [3]io.Reader
	for i, path := range []string{cfg.UniMod, cfg.PSIMod, cfg.PRIDEMod} {
		if path == "" {
			return nil, fmt.Errorf("missing ontology source: see --unimod, --psimod and --pridemod")
		}
		r, c, err := openData(path)
		if err != nil {
			return nil, err
		}
		closers = append(closers, c)
		readers[i] = r
	}
	return remod.Load(readers[0], readers[1], readers[2])
}

// openData opens the file at path, transparently decompressing gzip
// sources named with a .gz suffix.
func openData(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, f, nil
	}
	r, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return r, f, nil
}

// printPTMs writes one line per modification to stdout.
func printPTMs(ptms []remod.PTM) {
	for _, p := range ptms {
		fmt.Printf("%v\n", p)
	}
	if len(ptms) == 0 {
		fmt.Println("no modifications found")
	}
}
