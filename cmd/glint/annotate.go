package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"glint/internal/block"
	"glint/internal/diag"
	"glint/internal/render"
	"glint/internal/source"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate <file> --span start:end[:message]",
	Short: "Render a source file excerpt with highlighted spans",
	Long:  `Render a single code block for a source file. Spans are half-open byte ranges into the file after BOM/CRLF normalization; a span with start == end renders a one-column cursor.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnnotate,
}

func init() {
	annotateCmd.Flags().StringArray("span", nil, "highlight span as start:end[:message] (repeatable)")
	annotateCmd.Flags().String("severity", "error", "log severity (trace|debug|info|warn|error)")
	annotateCmd.Flags().String("title", "", "header title shown above the excerpt")
	annotateCmd.Flags().String("final", "", "message attached to the bottom border")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	if err := applyColorMode(cmd); err != nil {
		return err
	}

	spans, err := cmd.Flags().GetStringArray("span")
	if err != nil {
		return fmt.Errorf("failed to get span flag: %w", err)
	}
	if len(spans) == 0 {
		return fmt.Errorf("at least one --span is required")
	}
	sevTag, err := cmd.Flags().GetString("severity")
	if err != nil {
		return fmt.Errorf("failed to get severity flag: %w", err)
	}
	title, err := cmd.Flags().GetString("title")
	if err != nil {
		return fmt.Errorf("failed to get title flag: %w", err)
	}
	final, err := cmd.Flags().GetString("final")
	if err != nil {
		return fmt.Errorf("failed to get final flag: %w", err)
	}

	sev, ok := diag.ParseSeverity(sevTag)
	if !ok {
		return fmt.Errorf("unknown severity %q", sevTag)
	}

	path := args[0]
	text, err := source.Load(path)
	if err != nil {
		return err
	}

	code := block.Code{Source: text, Path: path, Final: final}
	for _, raw := range spans {
		ann, err := parseSpanArg(raw)
		if err != nil {
			return err
		}
		code.Annotations = append(code.Annotations, ann)
	}

	log := &block.Log{Severity: sev}
	if title != "" {
		log.Blocks = append(log.Blocks, block.Header{Title: title})
	}
	log.Blocks = append(log.Blocks, code)

	return render.Write(os.Stdout, log)
}

// parseSpanArg parses "start:end" or "start:end:message". The message
// may itself contain colons.
func parseSpanArg(raw string) (diag.Annotation, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) < 2 {
		return diag.Annotation{}, fmt.Errorf("span %q: want start:end[:message]", raw)
	}
	start, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return diag.Annotation{}, fmt.Errorf("span %q: bad start offset: %w", raw, err)
	}
	end, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return diag.Annotation{}, fmt.Errorf("span %q: bad end offset: %w", raw, err)
	}
	ann := diag.Annotation{Span: source.NewSpan(uint32(start), uint32(end))}
	if len(parts) == 3 {
		ann.Trailing = parts[2]
	}
	return ann, nil
}
