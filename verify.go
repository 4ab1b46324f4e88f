package stringver

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/verifykit/stringver/internal/extract"
	"github.com/verifykit/stringver/internal/fieldcat"
	"github.com/verifykit/stringver/internal/instance"
	"github.com/verifykit/stringver/internal/render"
	"github.com/verifykit/stringver/internal/verrors"
)

// VerificationFailure is the error returned by VerifyError when any class
// has discrepancies. Its message is the combined, deterministic report
// across every failing class in the run.
type VerificationFailure struct {
	report *verrors.Report
}

// Error implements the error interface.
func (e *VerificationFailure) Error() string {
	return verrors.RenderReport(e.report)
}

// FailedClasses returns the number of classes with at least one discrepancy.
func (e *VerificationFailure) FailedClasses() int {
	return e.report.FailedCount()
}

// Results exposes the per-class outcomes in registration order.
func (e *VerificationFailure) Results() []verrors.ClassResult {
	return e.report.Results
}

// Verify runs verification and fails the test with the combined report when
// any registered class violates the contract. Configuration errors recorded
// by earlier With* calls are raised first, before any instance is built.
func (v *Verifier) Verify(t TestingT) {
	t.Helper()
	if err := v.VerifyError(); err != nil {
		t.Fatal("\n\n" + err.Error())
	}
}

// VerifyError is Verify for non-test callers: it returns the failure as an
// error instead of failing a test, and nil on success. Calling it twice with
// an unchanged configuration produces an identical outcome and message.
func (v *Verifier) VerifyError() error {
	if len(v.cfgErrs) > 0 {
		return errors.Join(v.cfgErrs...)
	}
	if len(v.types) == 0 {
		return verrors.NewConfigError("ForClasses", "at least one class is required")
	}

	matcher, err := v.compileMatcher()
	if err != nil {
		return verrors.NewConfigError("WithFieldValuePattern", "%v", err)
	}

	report := &verrors.Report{}
	for _, t := range v.types {
		res, cfgErr := v.verifyType(t, matcher)
		if cfgErr != nil {
			return cfgErr
		}
		report.Add(res)
	}

	if report.HasErrors() {
		return &VerificationFailure{report: report}
	}
	return nil
}

// verifyType runs the full check sequence for one class. A selection clause
// referencing a missing field aborts the run as a configuration error; a
// construction or render failure is fatal for this class only.
func (v *Verifier) verifyType(t reflect.Type, matcher *extract.Matcher) (verrors.ClassResult, error) {
	res := verrors.ClassResult{TypeName: t.String()}

	if t.Kind() != reflect.Struct {
		res.Fatal = &instance.ConstructionError{
			TypeName: t.String(),
			Reason:   fmt.Sprintf("%s is not a struct type", t.Kind()),
		}
		return res, nil
	}

	fields, err := fieldcat.Resolve(t, v.inherited, v.selection)
	if err != nil {
		var selErr *fieldcat.SelectionError
		if errors.As(err, &selErr) {
			return res, verrors.NewConfigError(selectionOption(selErr.Mode), "%v", selErr)
		}
		res.Fatal = err
		return res, nil
	}

	ptr, err := instance.Build(t, fields, v.provider.ValueFor)
	if err != nil {
		res.Fatal = err
		return res, nil
	}

	rendered, err := render.Render(ptr)
	if err != nil {
		res.Fatal = err
		return res, nil
	}
	res.Rendered = rendered

	if seg, ok := v.expectedNameSegment(t); ok && !strings.Contains(rendered, seg) {
		res.Errors = append(res.Errors, verrors.ClassNameError{ExpectedSegment: seg})
	}

	if v.hashCode {
		hash := v.hashFunc(ptr.Interface())
		if !strings.Contains(rendered, strconv.FormatUint(hash, 10)) {
			res.Errors = append(res.Errors, verrors.HashCodeError{ExpectedHash: hash})
		}
	}

	var mismatches []verrors.FieldValue
	for _, f := range fields {
		expected := v.expectedText(f, v.provider.ValueFor(f))
		actual, found := matcher.Extract(rendered, f.Name)
		if !found || actual != expected {
			mismatches = append(mismatches, verrors.FieldValue{Name: f.Name, Expected: expected})
		}
	}
	if len(mismatches) > 0 {
		res.Errors = append(res.Errors, verrors.FieldValueError{Entries: mismatches})
	}

	return res, nil
}

// expectedNameSegment returns the class name substring the rendered text
// must contain under the configured style.
func (v *Verifier) expectedNameSegment(t reflect.Type) (string, bool) {
	switch v.nameStyle {
	case NameStyleName:
		return t.String(), true
	case NameStyleSimpleName:
		return t.Name(), true
	default:
		return "", false
	}
}

// expectedText resolves the text a field's value is expected to render as:
// formatter output when one is registered for the field type, else the null
// sentinel for nil values, else the value's plain %v form. The comparison
// against the extracted text is exact, with no normalization.
func (v *Verifier) expectedText(f fieldcat.Field, value reflect.Value) string {
	if fn, ok := v.formatters[f.Type]; ok {
		return fn(valueInterface(value))
	}
	if isNilValue(value) && v.nullValue != nil {
		return *v.nullValue
	}
	return fmt.Sprintf("%v", valueInterface(value))
}

func valueInterface(value reflect.Value) any {
	if !value.IsValid() {
		return nil
	}
	return value.Interface()
}

func isNilValue(value reflect.Value) bool {
	if !value.IsValid() {
		return true
	}
	switch value.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return value.IsNil()
	}
	return false
}

// selectionOption maps a selection mode back to the configuration call that
// installed it, for configuration error messages.
func selectionOption(mode fieldcat.Mode) string {
	switch mode {
	case fieldcat.ModeOnly:
		return "WithOnlyTheseFields"
	case fieldcat.ModeIgnore:
		return "WithIgnoredFields"
	default:
		return "WithMatchingFields"
	}
}
