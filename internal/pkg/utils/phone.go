package utils

import "strings"

// NormalizePhoneDigits trims spaces, removes all inner spaces and dashes, and
// strips a single leading '+'. Callers still validate the result.
func NormalizePhoneDigits(input string) string {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.TrimPrefix(s, "+")
	return s
}
