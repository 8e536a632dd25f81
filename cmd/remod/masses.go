// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var masses struct {
	out  string
	bins int
}

var massesCmd = &cobra.Command{
	Use:   "masses",
	Short: "plot the UniMod delta mass distribution",
	Long: `Plot a histogram of the monoisotopic delta masses in the UniMod
dictionary. Records without a known delta are omitted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadResolver()
		if err != nil {
			return err
		}

		var values plotter.Values
		for _, p := range r.UniModPTMs() {
			m := p.MonoDeltaMass()
			if math.IsNaN(m) {
				continue
			}
			values = append(values, m)
		}
		if len(values) == 0 {
			return fmt.Errorf("no mass data to plot")
		}

		h, err := plotter.NewHist(values, masses.bins)
		if err != nil {
			return err
		}
		p := plot.New()
		p.Title.Text = "UniMod monoisotopic delta masses"
		p.X.Label.Text = "delta mass (Da)"
		p.Y.Label.Text = "records"
		p.Add(h)
		return p.Save(18*vg.Centimeter, 15*vg.Centimeter, masses.out)
	},
}

func init() {
	massesCmd.Flags().StringVarP(&masses.out, "out", "o", "masses.png", "output image path")
	massesCmd.Flags().IntVar(&masses.bins, "bins", 100, "number of histogram bins")

	rootCmd.AddCommand(massesCmd)
}
