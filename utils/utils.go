package utils

import "strings"

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// NormalizedPhone swaps a leading zero for the given country calling code.
// Returns the input unchanged when it does not start with zero.
func NormalizedPhone(phone, callingCode string) string {
	trimmed := strings.TrimSpace(phone)
	if strings.HasPrefix(trimmed, "0") {
		return callingCode + trimmed[1:]
	}
	return trimmed
}
