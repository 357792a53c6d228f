package mapping

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidMapping wraps every configuration problem found while building.
	ErrInvalidMapping = errors.New("invalid mapping")
	// ErrBuilderSpent is returned (or panicked with) when a builder is used after Build.
	ErrBuilderSpent = errors.New("builder already built")
	// ErrNotRoot is returned when Build is called on a nested builder.
	ErrNotRoot = errors.New("builder is not a root builder")
	// ErrMandatory marks a mandatory node that could not be produced.
	ErrMandatory = errors.New("mandatory value missing")
)

// DecodeError reports the node that made Deserialize fail.
type DecodeError struct {
	// Key is the flat key (or, for composite and class nodes, the key prefix)
	// of the failing node.
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("decode root: %v", e.Err)
	}

	return fmt.Sprintf("decode %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Problem is one finding of validation or of a key check.
type Problem struct {
	Code        string   `yaml:"code"`
	Message     string   `yaml:"message"`
	Owner       string   `yaml:"owner,omitempty"`
	Key         string   `yaml:"key,omitempty"`
	Suggestions []string `yaml:"suggestions,omitempty"`
}

func (p Problem) String() string {
	var b strings.Builder

	if p.Owner != "" {
		b.WriteString("[" + p.Owner + "] ")
	}

	if p.Key != "" {
		b.WriteString(p.Key + ": ")
	}

	b.WriteString("[" + p.Code + "] " + p.Message)

	if len(p.Suggestions) > 0 {
		b.WriteString(" (did you mean " + strings.Join(p.Suggestions, ", ") + "?)")
	}

	return b.String()
}

// ValidationError lists every configuration problem of a mapping.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.String())
	}

	return ErrInvalidMapping.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidMapping
}

// Has reports whether a problem with the given code was found.
func (e *ValidationError) Has(code string) bool {
	for _, p := range e.Problems {
		if p.Code == code {
			return true
		}
	}

	return false
}
