package helper

import (
	"strings"
)

func First[T, U any](val T, _ U) T {
	return val
}

func IsNotEmpty(s string) bool {
	return len(strings.TrimSpace(s)) != 0
}

// IsBreak reports whether a cell is a break marker rather than a class.
func IsBreak(s string) bool {
	return strings.Contains(strings.ToLower(s), "break")
}
