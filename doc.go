// Package stringver verifies that a struct type's String method (the
// fmt.Stringer contract) renders every field correctly and stays correct as
// fields change.
//
// The verifier builds its own instance of the type with controlled field
// values, invokes String once, extracts each field's rendered value with a
// configurable pattern, and compares it against the expected text. Every
// discrepancy across every registered type is collected into one failure
// message, so a single test run surfaces all problems at once.
//
// # Usage
//
//	func TestPersonString(t *testing.T) {
//		stringver.ForType[Person]().
//			WithClassName(stringver.NameStyleSimpleName).
//			WithNullValue("<nil>").
//			Verify(t)
//	}
//
// Several types can share one configuration:
//
//	stringver.ForClasses(Person{}, Address{}).
//		WithIgnoredFields("password").
//		Verify(t)
//
// # Field values
//
// Fields are assigned deterministic defaults per type (see the
// internal/values package for the table). Register a prefab value to pin a
// field type to a concrete value, and a formatter to control the expected
// text for a type:
//
//	stringver.ForType[Account]().
//		WithPrefabValue(time.Time{}, time.Unix(0, 0).UTC()).
//		WithFormatter(time.Time{}, func(v any) string {
//			return v.(time.Time).Format(time.RFC3339)
//		}).
//		Verify(t)
//
// # Extraction pattern
//
// The field value pattern is a regular expression template with exactly two
// %s placeholders: the field name and the value capture group. The default,
// `%s=%s(?:, |\}|$)`, matches the common Type{a=1, b=2} layout.
//
// Configuration mistakes (conflicting field selections, malformed patterns,
// nil arguments) are recorded at the offending call and reported before any
// instance is built, distinct from verification failures.
package stringver
