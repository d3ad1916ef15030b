package ui

import "fmt"

// Unicode symbols for status indicators
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
)

// Successf returns a formatted success message with checkmark symbol
func Successf(format string, args ...interface{}) string {
	return fmt.Sprintf("%s %s", SymbolSuccess, fmt.Sprintf(format, args...))
}

// Errorf returns a formatted error message with X symbol
func Errorf(format string, args ...interface{}) string {
	return fmt.Sprintf("%s %s", SymbolError, fmt.Sprintf(format, args...))
}

// Warningf returns a formatted warning message with warning symbol
func Warningf(format string, args ...interface{}) string {
	return fmt.Sprintf("%s %s", SymbolWarning, fmt.Sprintf(format, args...))
}

// Record returns an accent-styled record name or path
func Record(name string) string {
	return Accent.Render(name)
}

// Hint returns a muted secondary line
func Hint(msg string) string {
	return Muted.Render(msg)
}
