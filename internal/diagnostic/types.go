package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostics holds all diagnostic information from validation or a key check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Owner names the mapped Go type the diagnostic relates to (if any).
	Owner string
	// Key is the key template or concrete flat key involved (if any).
	Key string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticWarning DiagnosticSeverity = iota + 1
	DiagnosticError
)

const unknownStr = "unknown"

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return unknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, owner, key string, suggestions ...string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    DiagnosticError,
		Code:        code,
		Message:     message,
		Owner:       owner,
		Key:         key,
		Suggestions: suggestions,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, owner, key string, suggestions ...string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:    DiagnosticWarning,
		Code:        code,
		Message:     message,
		Owner:       owner,
		Key:         key,
		Suggestions: suggestions,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasWarnings returns true if there are any warning diagnostics.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Codes lists the codes of all error diagnostics in order.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		codes = append(codes, e.Code)
	}

	return codes
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Owner != "" {
		prefix = append(prefix, "["+d.Owner+"]")
	}

	if d.Key != "" {
		prefix = append(prefix, d.Key)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
