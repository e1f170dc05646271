package parser

import "strings"

// Unwrap normalizes a raw API body into parseable CSV text. The BMP API
// often returns the CSV as a JSON-quoted string with literal `\n` escapes
// that was never decoded upstream: strip one symmetric pair of double
// quotes, then turn the two-character `\n` sequences into real newlines.
//
// This is a textual substitution, not escape decoding: `\"`, `\t` and
// `\\` pass through untouched. The endpoint has never produced them and
// handling them here would guess at semantics we have not observed.
// Already-plain CSV passes through unchanged.
func Unwrap(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ErrEmptyResponse
	}
	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		text = text[1 : len(text)-1]
	}
	return strings.ReplaceAll(text, `\n`, "\n"), nil
}
