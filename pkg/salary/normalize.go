package salary

import "strings"

// Normalize lowercases s, removes thousands-separator commas and trims
// surrounding whitespace. Missing cells are passed as "" and stay "".
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}
