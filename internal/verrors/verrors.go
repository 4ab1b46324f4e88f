// Package verrors defines the typed verification outcomes collected during a
// run and renders them into a single deterministic failure message.
//
// VerificationError variants are data, not control flow: field mismatches
// and missing segments are accumulated into a Report and only become a
// raised failure once the whole run has finished, so one invocation surfaces
// every problem at once.
package verrors

import "fmt"

// VerificationError is the closed set of per-class verification outcomes.
// Exactly three variants exist: ClassNameError, HashCodeError and
// FieldValueError.
type VerificationError interface {
	isVerificationError()
}

// ClassNameError reports a rendered string missing the expected class name
// segment.
type ClassNameError struct {
	// ExpectedSegment is the name substring the rendered text must contain.
	ExpectedSegment string
}

func (ClassNameError) isVerificationError() {}

// HashCodeError reports a rendered string missing the instance's identity
// hash.
type HashCodeError struct {
	// ExpectedHash is the identity hash the rendered text must contain,
	// formatted in decimal.
	ExpectedHash uint64
}

func (HashCodeError) isVerificationError() {}

// FieldValue is one mismatched field: its name and the text that was
// expected for it.
type FieldValue struct {
	Name     string
	Expected string
}

// FieldValueError aggregates every mismatched field of one class into a
// single error, preserving field declaration order. One FieldValueError per
// class at most, never one per field.
type FieldValueError struct {
	Entries []FieldValue
}

func (FieldValueError) isVerificationError() {}

// ClassResult is the verification outcome for one class. Fatal carries a
// construction or render failure, which precludes Rendered and Errors.
type ClassResult struct {
	// TypeName is the package-qualified type name.
	TypeName string
	// Rendered is the actual text produced by the String method.
	Rendered string
	// Errors is the ordered list of discrepancies found.
	Errors []VerificationError
	// Fatal is set when the class could not be verified at all.
	Fatal error
}

// Failed reports whether this class produced any discrepancy or fatal error.
func (r ClassResult) Failed() bool {
	return r.Fatal != nil || len(r.Errors) > 0
}

// Report is the aggregate outcome of one verification run, ordered by class
// registration. Built fresh per run, never mutated after construction.
type Report struct {
	Results []ClassResult
}

// Add appends one class result.
func (r *Report) Add(res ClassResult) {
	r.Results = append(r.Results, res)
}

// HasErrors reports whether any class failed.
func (r *Report) HasErrors() bool {
	for _, res := range r.Results {
		if res.Failed() {
			return true
		}
	}
	return false
}

// FailedCount returns the number of failing classes.
func (r *Report) FailedCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Failed() {
			n++
		}
	}
	return n
}

// ConfigError reports an invalid or conflicting configuration call. Recorded
// at the offending call and surfaced before any verification work begins;
// never folded into a Report.
type ConfigError struct {
	// Option names the configuration call at fault, e.g. "WithFieldValuePattern".
	Option string
	// Message describes what is wrong with the configuration.
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Option == "" {
		return "invalid configuration: " + e.Message
	}
	return fmt.Sprintf("invalid configuration: %s: %s", e.Option, e.Message)
}

// NewConfigError creates a ConfigError for the named option.
func NewConfigError(option, format string, args ...any) *ConfigError {
	return &ConfigError{Option: option, Message: fmt.Sprintf(format, args...)}
}
