// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <accession>...",
	Short: "look up modifications by accession",
	Long: `Look up modification records by accession. Accepted forms are
"UNIMOD:35", "UniMod:35" or "35" for UniMod, "MOD:00046" for PSI-MOD and
"MS:1001524" for PSI-MS pseudo-modifications. The curated PRIDE group
containing the record, if any, is printed alongside it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadResolver()
		if err != nil {
			return err
		}
		for _, acc := range args {
			p := r.PTMByAccession(acc)
			if p == nil {
				fmt.Printf("%s: not found\n", acc)
				continue
			}
			fmt.Printf("%v\n", p)
			if g := r.PRIDEModByAccession(acc); g != nil {
				fmt.Printf("\tgroup: %v\n", g)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
