package logger

import "fmt"

// ANSI color codes for console output.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// Info prints an informational message with a [tag] prefix.
func Info(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", cyan, tag, reset, msg)
}

// Success prints a success message with a [tag] prefix.
func Success(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", green, tag, reset, msg)
}

// Warn prints a warning message with a [tag] prefix.
func Warn(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", yellow, tag, reset, msg)
}

// Error prints an error message with a [tag] prefix.
func Error(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", red, tag, reset, msg)
}

// Banner prints the startup banner with the build version.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Printf("%s%s=== EVE Router %s ===%s\n", bold, cyan, version, reset)
}

// Section prints a section divider with a title.
func Section(title string) {
	fmt.Printf("\n%s%s--- %s ---%s\n", bold, cyan, title, reset)
}

// Stats prints a key/value statistic line, aligned under the current section.
func Stats(key string, value interface{}) {
	fmt.Printf("  %s%-14s%s %v\n", dim, key, reset, value)
}
