// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kortschak/remod"
)

var anchor struct {
	site     string
	position string
	mass     float64
	tol      float64
	delta    bool
	haveMass bool
}

var anchorCmd = &cobra.Command{
	Use:   "anchor [<accession>]",
	Short: "anchor an annotation onto its canonical modifications",
	Long: `Anchor a modification annotation onto the canonical set of
UniMod-compatible records. An accession argument anchors a reported
identifier, --mass anchors an observed monoisotopic delta mass; --site
and --position restrict the result to matching specificities. With
--delta the accession's mass is used to seed the search, pulling in
every record sharing the delta before remapping.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		anchor.haveMass = cmd.Flags().Changed("mass")
		if len(args) == 0 && !anchor.haveMass {
			return fmt.Errorf("an accession or --mass is required")
		}

		r, err := loadResolver()
		if err != nil {
			return err
		}
		var ptms []remod.PTM
		switch {
		case anchor.haveMass && anchor.position != "":
			ptms = r.AnchorMassModificationsAt(anchor.mass, anchor.tol, remod.PositionFor(anchor.position))
		case anchor.haveMass:
			ptms = r.AnchorMassModifications(anchor.mass, anchor.tol, anchor.site)
		case anchor.delta:
			ptms = r.AnchorDeltaModifications(args[0], anchor.site)
		case anchor.position != "":
			ptms = r.AnchorModificationsAt(args[0], anchor.site, remod.PositionFor(anchor.position))
		case anchor.site != "":
			ptms = r.AnchorModificationsSite(args[0], anchor.site)
			if len(ptms) == 0 {
				fmt.Printf("%s is wrongly annotated at %s\n", args[0], anchor.site)
				return nil
			}
		default:
			ptms = r.AnchorModifications(args[0])
		}
		printPTMs(ptms)
		return nil
	},
}

func init() {
	anchorCmd.Flags().StringVar(&anchor.site, "site", "", "amino acid site restriction")
	anchorCmd.Flags().StringVar(&anchor.position, "position", "", "position restriction")
	anchorCmd.Flags().Float64Var(&anchor.mass, "mass", 0, "observed monoisotopic delta mass")
	anchorCmd.Flags().Float64Var(&anchor.tol, "tol", 0, "mass tolerance in Da")
	anchorCmd.Flags().BoolVar(&anchor.delta, "delta", false, "seed the anchor by the accession's delta mass")

	rootCmd.AddCommand(anchorCmd)
}
