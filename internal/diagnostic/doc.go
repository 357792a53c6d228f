// Package diagnostic provides structured errors and warnings produced while
// validating a mapping or checking a flat store against it.
//
// Key capabilities:
//   - Configuration errors with stable codes (e.g. "class_conflicting_body")
//   - Unknown or malformed key warnings with suggested keys
//   - A combined error value for callers that only need pass/fail
package diagnostic
