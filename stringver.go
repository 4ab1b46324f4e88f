package stringver

import (
	"reflect"

	"github.com/verifykit/stringver/internal/extract"
	"github.com/verifykit/stringver/internal/fieldcat"
	"github.com/verifykit/stringver/internal/render"
	"github.com/verifykit/stringver/internal/values"
	"github.com/verifykit/stringver/internal/verrors"
)

// DefaultFieldValuePattern is the extraction pattern used unless overridden
// with WithFieldValuePattern. It matches the Type{a=1, b=2} layout: the
// first %s is the field name, the second the value capture group, bounded by
// ", ", "}" or end of text.
const DefaultFieldValuePattern = `%s=%s(?:, |\}|$)`

// NameStyle selects the class name check applied to the rendered text.
type NameStyle int

const (
	// NameStyleNone disables the class name check.
	NameStyleNone NameStyle = iota
	// NameStyleName expects the package-qualified type name, e.g. "pkg.Person".
	NameStyleName
	// NameStyleSimpleName expects the bare type name, e.g. "Person".
	NameStyleSimpleName
)

// TestingT is the subset of testing.TB the verifier needs to raise a
// failure. *testing.T satisfies it.
type TestingT interface {
	Helper()
	Fatal(args ...any)
}

// Verifier holds the configuration for one verification run. Build one with
// ForType, ForClass or ForClasses, chain With* calls, then finish with
// Verify or VerifyError. Each Verify call reads a frozen snapshot of the
// configuration; a Verifier must not be mutated concurrently with a running
// verification.
type Verifier struct {
	types   []reflect.Type
	cfgErrs []error

	nameStyle  NameStyle
	hashCode   bool
	hashFunc   render.HashFunc
	pattern    string
	provider   *values.Provider
	formatters map[reflect.Type]func(any) string
	nullValue  *string
	selection  fieldcat.Selection
	inherited  bool
}

// ForType builds a Verifier for a single struct type given as a type
// argument.
func ForType[T any]() *Verifier {
	return newVerifier([]reflect.Type{reflect.TypeOf((*T)(nil)).Elem()})
}

// ForClass builds a Verifier for the dynamic type of sample. A pointer
// sample is dereferenced, so Person{}, &Person{} and (*Person)(nil) all
// verify Person. A nil sample is a configuration error.
func ForClass(sample any) *Verifier {
	return ForClasses(sample)
}

// ForClasses builds a Verifier for several types sharing one configuration.
// Each type is verified independently and the results are aggregated into a
// single failure message.
func ForClasses(samples ...any) *Verifier {
	v := newVerifier(nil)
	if len(samples) == 0 {
		v.recordErr(verrors.NewConfigError("ForClasses", "at least one class is required"))
		return v
	}
	for i, sample := range samples {
		t := typeOfSample(sample)
		if t == nil {
			v.recordErr(verrors.NewConfigError("ForClasses", "class sample %d is nil", i))
			continue
		}
		v.types = append(v.types, t)
	}
	return v
}

func newVerifier(types []reflect.Type) *Verifier {
	return &Verifier{
		types:      types,
		hashFunc:   render.PointerHash,
		pattern:    DefaultFieldValuePattern,
		provider:   values.NewProvider(),
		formatters: make(map[reflect.Type]func(any) string),
		inherited:  true,
	}
}

// typeOfSample resolves the verified type from a sample value, unwrapping
// one level of pointer.
func typeOfSample(sample any) reflect.Type {
	if sample == nil {
		return nil
	}
	t := reflect.TypeOf(sample)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func (v *Verifier) recordErr(err error) {
	v.cfgErrs = append(v.cfgErrs, err)
}

// compileMatcher compiles the configured pattern. The pattern was already
// validated at the WithFieldValuePattern call; this compiles the engine's
// working copy once per run.
func (v *Verifier) compileMatcher() (*extract.Matcher, error) {
	return extract.CompilePattern(v.pattern)
}
