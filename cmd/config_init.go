package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/datalab-tn/povmap/internal/config"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration utilities",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		const path = "config.yaml"
		if !configInitForce {
			if _, err := os.Stat(path); err == nil {
				return eris.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}

		defaults := config.Config{
			Data: config.DataConfig{
				IndicatorPath: "data/poverty_tunisia.csv",
				BoundaryPath:  "geo/tunisia_governorates.geojson",
				NameProperty:  "NAME_1",
			},
			Classify: config.ClassifyConfig{Method: "quantile", Bins: 6},
			Server: config.ServerConfig{
				Port:           8080,
				RateLimit:      20,
				RateBurst:      40,
				AllowedOrigins: []string{"*"},
			},
			Log: config.LogConfig{Level: "info", Format: "json"},
		}

		data, err := yaml.Marshal(defaults)
		if err != nil {
			return eris.Wrap(err, "marshal default config")
		}
		header := []byte("# povmap configuration. Every key can also be set via POVMAP_* env vars.\n")
		if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
			return eris.Wrapf(err, "write %s", path)
		}

		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config.yaml")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
