package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"glint/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <report.toml|snapshot.glint>...",
	Short: "Render diagnostic reports to the terminal",
	Long:  `Render one or more report files as formatted diagnostic output. Reports are TOML trees of header, text, code, prefix, container and separator blocks; msgpack snapshots produced by "glint export" are accepted as well.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().Int("jobs", 0, "max parallel workers for multiple reports (0=auto)")
}

// runRender loads and renders every report in parallel, then prints the
// results in argument order so output stays deterministic.
func runRender(cmd *cobra.Command, args []string) error {
	if err := applyColorMode(cmd); err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	outputs := make([][]string, len(args))
	g, _ := errgroup.WithContext(cmd.Context())
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range args {
		g.Go(func() error {
			log, err := loadLog(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			lines, err := render.Render(log)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outputs[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, lines := range outputs {
		fmt.Fprintln(os.Stdout, strings.Join(lines, "\n"))
	}
	return nil
}
