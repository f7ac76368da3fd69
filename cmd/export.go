package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/datalab-tn/povmap/internal/dataset"
	"github.com/datalab-tn/povmap/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the joined dataset to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := dataset.Load(cfg.Data, cfg.Classify)
		if err != nil {
			return err
		}

		out := exportOut
		switch exportFormat {
		case "geojson":
			if out == "" {
				out = "poverty_map.geojson"
			}
			err = export.WriteGeoJSON(snap, out)
		case "xlsx":
			if out == "" {
				out = "poverty_map.xlsx"
			}
			err = export.WriteXLSX(snap, out)
		default:
			return eris.Errorf("unknown export format %q (want geojson or xlsx)", exportFormat)
		}
		if err != nil {
			return err
		}

		fmt.Printf("wrote %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "geojson", "output format: geojson or xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (default derived from format)")
	rootCmd.AddCommand(exportCmd)
}
