package stringver

import (
	"reflect"
	"regexp"

	"github.com/verifykit/stringver/internal/extract"
	"github.com/verifykit/stringver/internal/fieldcat"
	"github.com/verifykit/stringver/internal/render"
	"github.com/verifykit/stringver/internal/verrors"
)

// WithClassName enables the class name check with the given style.
func (v *Verifier) WithClassName(style NameStyle) *Verifier {
	if style < NameStyleNone || style > NameStyleSimpleName {
		v.recordErr(verrors.NewConfigError("WithClassName", "unknown name style %d", style))
		return v
	}
	v.nameStyle = style
	return v
}

// WithHashCode enables or disables the hash code check: the rendered text
// must contain the instance's identity hash formatted in decimal.
func (v *Verifier) WithHashCode(enabled bool) *Verifier {
	v.hashCode = enabled
	return v
}

// WithHashFunc overrides how the identity hash is derived from the built
// instance. The default is the instance's address, the value a
// pointer-receiver String method observes as its receiver. Addresses vary
// between runs, so tests that pin exact hashes supply their own function.
func (v *Verifier) WithHashFunc(fn render.HashFunc) *Verifier {
	if fn == nil {
		v.recordErr(verrors.NewConfigError("WithHashFunc", "hash function is nil"))
		return v
	}
	v.hashFunc = fn
	return v
}

// WithFieldValuePattern replaces the extraction pattern. The pattern must be
// a valid regular expression template containing exactly two %s tokens; a
// malformed pattern is rejected here, not at verify time.
func (v *Verifier) WithFieldValuePattern(pattern string) *Verifier {
	if _, err := extract.CompilePattern(pattern); err != nil {
		v.recordErr(verrors.NewConfigError("WithFieldValuePattern", "%v", err))
		return v
	}
	v.pattern = pattern
	return v
}

// WithPrefabValue registers a concrete value for the exact type of sample.
// Any field of that type is assigned the value instead of the generated
// default. A nil value is allowed for nilable types and assigns a typed nil.
func (v *Verifier) WithPrefabValue(sample any, value any) *Verifier {
	if sample == nil {
		v.recordErr(verrors.NewConfigError("WithPrefabValue", "type sample is nil"))
		return v
	}
	return v.WithPrefabValueType(reflect.TypeOf(sample), value)
}

// WithPrefabValueType is WithPrefabValue keyed by an explicit reflect.Type.
func (v *Verifier) WithPrefabValueType(t reflect.Type, value any) *Verifier {
	if err := v.provider.Register(t, value); err != nil {
		v.recordErr(verrors.NewConfigError("WithPrefabValue", "%v", err))
	}
	return v
}

// WithFormatter registers the expected-text formatter for the exact type of
// sample. The formatter is consulted before the null sentinel and the
// default %v rendering, and is invoked even for nil values, so it must
// handle nil itself.
func (v *Verifier) WithFormatter(sample any, fn func(value any) string) *Verifier {
	if sample == nil {
		v.recordErr(verrors.NewConfigError("WithFormatter", "type sample is nil"))
		return v
	}
	if fn == nil {
		v.recordErr(verrors.NewConfigError("WithFormatter", "formatter function is nil"))
		return v
	}
	v.formatters[reflect.TypeOf(sample)] = fn
	return v
}

// WithNullValue sets the literal text expected in place of a nil field
// value. Without a sentinel, nil values are expected to render as %v does
// ("<nil>").
func (v *Verifier) WithNullValue(sentinel string) *Verifier {
	v.nullValue = &sentinel
	return v
}

// WithOnlyTheseFields restricts verification to exactly the named fields.
// Mutually exclusive with WithIgnoredFields and WithMatchingFields; the
// conflicting call is rejected immediately. Calling with no names verifies
// no fields, which is useful when only the class name or hash checks matter.
func (v *Verifier) WithOnlyTheseFields(names ...string) *Verifier {
	return v.setSelection("WithOnlyTheseFields", fieldcat.Selection{
		Mode:  fieldcat.ModeOnly,
		Names: append([]string(nil), names...),
	})
}

// WithIgnoredFields excludes the named fields from verification. Mutually
// exclusive with WithOnlyTheseFields and WithMatchingFields.
func (v *Verifier) WithIgnoredFields(names ...string) *Verifier {
	return v.setSelection("WithIgnoredFields", fieldcat.Selection{
		Mode:  fieldcat.ModeIgnore,
		Names: append([]string(nil), names...),
	})
}

// WithMatchingFields restricts verification to fields whose name matches the
// regular expression. Mutually exclusive with the other field selections.
func (v *Verifier) WithMatchingFields(expr string) *Verifier {
	re, err := regexp.Compile(expr)
	if err != nil {
		v.recordErr(verrors.NewConfigError("WithMatchingFields", "invalid regular expression %q: %v", expr, err))
		return v
	}
	return v.setSelection("WithMatchingFields", fieldcat.Selection{
		Mode:    fieldcat.ModeMatching,
		Pattern: re,
	})
}

// WithInheritedFields controls whether fields promoted from embedded structs
// are verified. Enabled by default; promoted fields order before the
// embedding struct's own fields.
func (v *Verifier) WithInheritedFields(include bool) *Verifier {
	v.inherited = include
	return v
}

// setSelection installs a selection, rejecting a second selection of a
// different mode at the point of the conflicting call.
func (v *Verifier) setSelection(option string, sel fieldcat.Selection) *Verifier {
	if v.selection.Mode != fieldcat.ModeAll && v.selection.Mode != sel.Mode {
		v.recordErr(verrors.NewConfigError(option,
			"conflicts with the %s-fields selection already configured; only one of only/ignore/matching may be active", v.selection.Mode))
		return v
	}
	v.selection = sel
	return v
}
