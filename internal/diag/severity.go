package diag

import "strings"

// Severity defines the importance of a log.
type Severity uint8

const (
	// SevTrace is for the most verbose logs.
	SevTrace Severity = iota + 1
	// SevDebug is for developer-facing logs.
	SevDebug
	// SevInfo is for informational logs.
	SevInfo
	// SevWarn is for warnings.
	SevWarn
	SevError
)

// The zero Severity means "unset"; annotations use it to inherit the
// severity of the enclosing log.

func (s Severity) String() string {
	switch s {
	case SevTrace:
		return "TRACE"
	case SevDebug:
		return "DEBUG"
	case SevInfo:
		return "INFO"
	case SevWarn:
		return "WARN"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseSeverity maps a case-insensitive tag to its Severity.
func ParseSeverity(tag string) (Severity, bool) {
	switch strings.ToLower(tag) {
	case "trace":
		return SevTrace, true
	case "debug":
		return SevDebug, true
	case "info":
		return SevInfo, true
	case "warn", "warning":
		return SevWarn, true
	case "error":
		return SevError, true
	}
	return 0, false
}
