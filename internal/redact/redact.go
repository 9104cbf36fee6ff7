// Package redact scrubs sensitive material from strings before they are
// logged. Downstream error bodies are opaque to the gateway and may echo
// back SQL fragments, connection strings, or credentials; token handling
// code may hold raw JWTs. Nothing from this package reaches clients, it
// only sanitizes server-side log output.
package redact

import "regexp"

// Placeholder values written in place of redacted material.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	TokenPlaceholder      = "[REDACTED_TOKEN]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	SQLPlaceholder        = "[REDACTED_SQL]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

var rules = []rule{
	// Raw JWTs: three base64url segments starting with the {"... header.
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), TokenPlaceholder},

	// Authorization header values copied into error strings.
	{regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/=]{8,}`), TokenPlaceholder},

	// Connection strings with inline credentials.
	{regexp.MustCompile(`(?i)(postgres|mysql|mongodb|redis|amqp)://[^@\s]+@`), CredentialPlaceholder},

	// password=..., pwd: "...", and similar key/value shapes.
	{regexp.MustCompile(`(?i)(password|passwd|pwd|secret|api[_-]?key)(['"\s:=]+)[^'"&\s]{3,}`), CredentialPlaceholder},

	// Email addresses in downstream validation messages.
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), EmailPlaceholder},

	// SQL fragments leaked by downstream 500 bodies.
	{regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)[\s\w,*()]+(?:FROM|INTO|SET)[\s\w,*()='"]+`), SQLPlaceholder},
}

// String returns input with all sensitive fragments replaced by placeholders.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts an error's message. Returns the empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
