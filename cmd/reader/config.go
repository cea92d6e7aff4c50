package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taleweaver/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update the reader configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		changed := false
		if flags.Changed("server") {
			cfg.ServerURL, changed = opts.ServerURL, true
		}
		if flags.Changed("export-dir") {
			cfg.ExportDir, changed = opts.ExportDir, true
		}
		if flags.Changed("log-file") {
			cfg.LogFile, changed = opts.LogFile, true
		}
		if changed {
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
		}

		path, _ := config.ConfigPath()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config:     %s\n", path)
		fmt.Fprintf(out, "server_url: %s\n", cfg.ServerURL)
		fmt.Fprintf(out, "export_dir: %s\n", cfg.ExportDir)
		fmt.Fprintf(out, "log_file:   %s\n", cfg.LogFile)
		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&opts.ExportDir, "export-dir", "", "directory for exported PDFs")
	configCmd.Flags().StringVar(&opts.LogFile, "log-file", "", "log file")
}
