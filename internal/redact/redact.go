// Package redact scrubs sensitive fragments from error text before it is
// written to the logs. Error responses never carry raw error text, but log
// lines do, and errors from configuration loading or a panicking handler can
// contain credentials, file system layout or stack traces.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedStackTracePlaceholder = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order. Stack traces go first so the paths inside them
// are swallowed whole.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		replacement: RedactedStackTracePlaceholder,
	},
	{
		// user:password@ in URLs
		pattern:     regexp.MustCompile(`(?i)\b[a-z][a-z0-9+.-]*://[^/\s:@]+:[^@\s]+@`),
		replacement: RedactedCredentialPlaceholder,
	},
	{
		// key=value and key: value secrets
		pattern:     regexp.MustCompile(`(?i)\b(password|passwd|pwd|secret|token|api[_-]?key)(\s*[=:]\s*)[^\s&,;]+`),
		replacement: "${1}${2}" + RedactionPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		replacement: RedactedEmailPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(/[\w.-]+){2,}`),
		replacement: RedactedPathPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(\\[^\\\s]+)+`),
		replacement: RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
