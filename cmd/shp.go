package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datalab-tn/povmap/internal/shape"
)

var shpCmd = &cobra.Command{
	Use:   "shp",
	Short: "Shapefile utilities",
}

var (
	shpIn        string
	shpOut       string
	shpNameField string
)

var shpConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a governorate shapefile to the boundary GeoJSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := shpOut
		if out == "" {
			out = cfg.Data.BoundaryPath
		}
		n, err := shape.Convert(shpIn, shpNameField, cfg.Data.NameProperty, out)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d features to %s\n", n, out)
		return nil
	},
}

func init() {
	shpConvertCmd.Flags().StringVar(&shpIn, "in", "", "input .shp path (required)")
	shpConvertCmd.Flags().StringVar(&shpOut, "out", "", "output GeoJSON path (default from config)")
	shpConvertCmd.Flags().StringVar(&shpNameField, "name-field", "NAME_1", "attribute field holding the governorate name")
	_ = shpConvertCmd.MarkFlagRequired("in")
	shpCmd.AddCommand(shpConvertCmd)
	rootCmd.AddCommand(shpCmd)
}
