package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datalab-tn/povmap/internal/dataset"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and join the dataset, reporting any data problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := dataset.Load(cfg.Data, cfg.Classify)
		if err != nil {
			return err
		}

		fmt.Printf("dataset ok: %d governorates, %d regions, %d bins\n",
			len(snap.Features), len(snap.Regions), len(snap.Breaks)+1)
		fmt.Printf("national poverty rate: %.1f%%\n", snap.National.NationalRate)
		fmt.Printf("poorest region: %s (%.1f%%), richest: %s (%.1f%%)\n",
			snap.National.PoorestRegion, snap.National.PoorestRate,
			snap.National.RichestRegion, snap.National.RichestRate)
		for _, rs := range snap.Regions {
			fmt.Printf("  %-14s mean %5.1f  median %5.1f  min %5.1f  max %5.1f  sd %5.2f\n",
				rs.Region, rs.Mean, rs.Median, rs.Min, rs.Max, rs.StdDev)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
