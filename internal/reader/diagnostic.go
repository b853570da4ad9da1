// SPDX-License-Identifier: MPL-2.0

package reader

const (
	// SeverityWarning indicates a recoverable reader warning.
	SeverityWarning Severity = "warning"

	// CodeMissingExtension is reported for files without an extension.
	CodeMissingExtension = "file_without_extension"
	// CodeUndecodableExtension is reported for extensions that are not valid UTF-8.
	CodeUndecodableExtension = "file_extension_not_utf8"
)

type (
	// Severity represents reader diagnostic severity.
	Severity string

	// Diagnostic represents a structured, non-fatal reader event that is
	// returned to callers (rather than written to stderr) for consistent
	// rendering policy.
	Diagnostic struct {
		// Severity is the diagnostic level.
		Severity Severity
		// Code is a machine-readable identifier (e.g., "file_without_extension").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the file path associated with this diagnostic (optional).
		Path string
	}
)
