package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glint/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the glint version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("glint", version.Version)
		if version.GitCommit != "" {
			fmt.Println("commit:", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Println("built:", version.BuildDate)
		}
	},
}
