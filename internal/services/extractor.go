package services

import "regexp"

// Whole-token matching only: a serial embedded in a longer digit run (for
// example a phone number) must not be captured.
var (
	serialPattern    = regexp.MustCompile(`\b\d{10}\b`)
	errorCodePattern = regexp.MustCompile(`\b\d{1,3}\b`)
)

// ExtractSerial pulls a standalone 10-digit machine serial out of free text.
// Digit runs longer or shorter than 10 never match.
func ExtractSerial(text string) (string, bool) {
	match := serialPattern.FindString(text)
	if match == "" {
		return "", false
	}
	return match, true
}

// ExtractErrorCode pulls a standalone 1-3 digit error code out of free text,
// left-zero-padded to two digits so it lines up with the solution table.
func ExtractErrorCode(text string) (string, bool) {
	match := errorCodePattern.FindString(text)
	if match == "" {
		return "", false
	}
	if len(match) == 1 {
		match = "0" + match
	}
	return match, true
}
