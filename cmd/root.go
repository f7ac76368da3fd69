package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/datalab-tn/povmap/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "povmap",
	Short: "Tunisia 2015 poverty map dashboard",
	Long:  "Loads the INS 2015 poverty dataset and governorate boundaries, joins and classifies them, and serves an interactive choropleth dashboard on a local port.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
