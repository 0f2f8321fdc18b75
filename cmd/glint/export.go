package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glint/internal/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export <report.toml>",
	Short: "Export a report as a msgpack snapshot",
	Long:  `Parse a TOML report and write it as a versioned msgpack snapshot that "glint render" and "glint preview" can load directly.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output path (default: report path with .glint extension)")
}

func runExport(cmd *cobra.Command, args []string) error {
	out, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	if out == "" {
		out = args[0] + ".glint"
	}

	log, err := loadLog(args[0])
	if err != nil {
		return err
	}
	data, err := snapshot.Encode(log)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if !quiet {
		fmt.Fprintf(os.Stdout, "wrote %s (%d bytes)\n", out, len(data))
	}
	return nil
}
