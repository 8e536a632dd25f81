// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kortschak/remod"
)

var search struct {
	name        string
	exact       string
	description string
	site        string
	position    string
	mono        float64
	avg         float64
	tol         float64
	haveMono    bool
	haveAvg     bool
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "search modifications by name, mass or specificity",
	Long: `Search the UniMod and PSI-MOD indices. Exactly one of --name,
--exact, --description, --site, --mono or --avg selects the search;
--tol widens mass searches and --position restricts site searches.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		search.haveMono = cmd.Flags().Changed("mono")
		search.haveAvg = cmd.Flags().Changed("avg")

		r, err := loadResolver()
		if err != nil {
			return err
		}
		switch {
		case search.name != "":
			printPTMs(r.PTMsByNamePattern(search.name))
		case search.exact != "":
			printPTMs(r.PTMsByExactName(search.exact))
		case search.description != "":
			printPTMs(r.PTMsByDescriptionPattern(search.description))
		case search.site != "":
			spec := remod.Specificity{Site: search.site}
			if search.position != "" {
				spec.Position = remod.PositionFor(search.position)
			}
			printPTMs(r.PTMsBySpecificity(spec))
		case search.haveMono:
			printPTMs(r.PTMsByMonoDeltaMass(search.mono, search.tol))
		case search.haveAvg:
			printPTMs(r.PTMsByAvgDeltaMass(search.avg, search.tol))
		default:
			return fmt.Errorf("no search criterion: see %s", cmd.UsageString())
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&search.name, "name", "", "name substring to search for")
	searchCmd.Flags().StringVar(&search.exact, "exact", "", "exact name to search for")
	searchCmd.Flags().StringVar(&search.description, "description", "", "description substring to search for")
	searchCmd.Flags().StringVar(&search.site, "site", "", "amino acid site to search for")
	searchCmd.Flags().StringVar(&search.position, "position", "", "position restriction for --site")
	searchCmd.Flags().Float64Var(&search.mono, "mono", 0, "monoisotopic delta mass to search for")
	searchCmd.Flags().Float64Var(&search.avg, "avg", 0, "average delta mass to search for")
	searchCmd.Flags().Float64Var(&search.tol, "tol", 0, "mass tolerance in Da")

	rootCmd.AddCommand(searchCmd)
}
