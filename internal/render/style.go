package render

import (
	"github.com/fatih/color"

	"glint/internal/diag"
)

// Severity colors follow the usual terminal conventions. Styling is
// applied through fatih/color, so setting color.NoColor yields the same
// lines without escape sequences.
var (
	traceColor = color.New(color.FgHiBlack, color.Bold)
	debugColor = color.New(color.FgGreen, color.Bold)
	infoColor  = color.New(color.FgBlue, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	errorColor = color.New(color.FgRed, color.Bold)

	borderColor = color.New(color.Bold)
)

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevTrace:
		return traceColor
	case diag.SevDebug:
		return debugColor
	case diag.SevInfo:
		return infoColor
	case diag.SevWarn:
		return warnColor
	case diag.SevError:
		return errorColor
	}
	return borderColor
}

func paintTag(s diag.Severity) string {
	return severityColor(s).Sprint(s.String())
}

func paintMarker(hint, sev diag.Severity, text string) string {
	if hint != 0 {
		return severityColor(hint).Sprint(text)
	}
	return severityColor(sev).Sprint(text)
}
