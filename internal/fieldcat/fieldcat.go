// Package fieldcat resolves the ordered set of struct fields eligible for
// string-representation verification. It walks embedded structs when
// inherited fields are requested and applies the configured field selection.
package fieldcat

import (
	"fmt"
	"reflect"
	"regexp"
)

// Mode defines how the field selection filters the resolved catalog.
type Mode int

const (
	// ModeAll keeps every resolved field.
	ModeAll Mode = iota
	// ModeOnly keeps exactly the listed field names.
	ModeOnly
	// ModeIgnore removes the listed field names.
	ModeIgnore
	// ModeMatching keeps fields whose name matches a regular expression.
	ModeMatching
)

// String returns a human-readable name for the selection mode.
func (m Mode) String() string {
	switch m {
	case ModeOnly:
		return "only"
	case ModeIgnore:
		return "ignore"
	case ModeMatching:
		return "matching"
	default:
		return "all"
	}
}

// Selection describes the configured field selection policy.
type Selection struct {
	Mode    Mode
	Names   []string
	Pattern *regexp.Regexp
}

// Field identifies a single verifiable struct field. Immutable once resolved.
type Field struct {
	// DeclaringType is the struct type that declares the field. For fields
	// promoted from an embedded struct this is the embedded type, not the
	// outer type.
	DeclaringType reflect.Type
	// Name is the field name as declared.
	Name string
	// Type is the field's declared type.
	Type reflect.Type
	// Index is the field's index path relative to the outer struct type,
	// usable with reflect.Value.FieldByIndex.
	Index []int
}

// SelectionError reports a selection clause referencing a field that does not
// exist on the resolved catalog.
type SelectionError struct {
	TypeName string
	Field    string
	Mode     Mode
}

// Error implements the error interface.
func (e *SelectionError) Error() string {
	return fmt.Sprintf("field %q named in %s-fields selection does not exist on %s", e.Field, e.Mode, e.TypeName)
}

// Resolve returns the ordered fields of t eligible for verification.
//
// Fields promoted from value-embedded structs are included when
// includeInherited is true and are ordered before the embedding struct's own
// fields, depth-first in declaration order (ancestor-first). When a promoted
// field name collides with a field declared closer to the outer type, the
// shallower field wins and the deeper duplicate is dropped, so field names
// are unique within the result.
//
// Pointer-embedded structs are not walked: setting fields through a nil
// embedded pointer is not possible on a freshly constructed instance, so the
// pointer itself is treated as an ordinary field.
func Resolve(t reflect.Type, includeInherited bool, sel Selection) ([]Field, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot resolve fields: %v is not a struct type", t)
	}

	own := ownFieldNames(t)
	var fields []Field
	seen := make(map[string]struct{}, len(own))

	if includeInherited {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !isEmbeddedStruct(f) {
				continue
			}
			collectPromoted(f.Type, []int{i}, own, seen, &fields)
		}
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if isEmbeddedStruct(f) {
			continue
		}
		fields = append(fields, Field{
			DeclaringType: t,
			Name:          f.Name,
			Type:          f.Type,
			Index:         []int{i},
		})
	}

	return applySelection(t, fields, sel)
}

// ownFieldNames returns the names declared directly on t, excluding embedded
// structs. Used to drop shadowed promoted fields.
func ownFieldNames(t reflect.Type) map[string]struct{} {
	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if isEmbeddedStruct(f) {
			continue
		}
		names[f.Name] = struct{}{}
	}
	return names
}

// collectPromoted appends the promoted fields of an embedded struct type,
// recursing into its own embedded structs first.
func collectPromoted(t reflect.Type, prefix []int, shadowed map[string]struct{}, seen map[string]struct{}, out *[]Field) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if isEmbeddedStruct(f) {
			collectPromoted(f.Type, appendIndex(prefix, i), shadowed, seen, out)
			continue
		}
		if _, ok := shadowed[f.Name]; ok {
			continue
		}
		if _, ok := seen[f.Name]; ok {
			continue
		}
		seen[f.Name] = struct{}{}
		*out = append(*out, Field{
			DeclaringType: t,
			Name:          f.Name,
			Type:          f.Type,
			Index:         appendIndex(prefix, i),
		})
	}
}

// appendIndex copies prefix before appending so sibling recursions never
// alias the same backing array.
func appendIndex(prefix []int, i int) []int {
	idx := make([]int, len(prefix), len(prefix)+1)
	copy(idx, prefix)
	return append(idx, i)
}

func isEmbeddedStruct(f reflect.StructField) bool {
	return f.Anonymous && f.Type.Kind() == reflect.Struct
}

// applySelection filters the resolved fields per the selection policy,
// preserving catalog order. Only and ignore selections fail when they name a
// field absent from the catalog.
func applySelection(t reflect.Type, fields []Field, sel Selection) ([]Field, error) {
	switch sel.Mode {
	case ModeAll:
		return fields, nil

	case ModeOnly, ModeIgnore:
		byName := make(map[string]struct{}, len(fields))
		for _, f := range fields {
			byName[f.Name] = struct{}{}
		}
		listed := make(map[string]struct{}, len(sel.Names))
		for _, name := range sel.Names {
			if _, ok := byName[name]; !ok {
				return nil, &SelectionError{TypeName: t.String(), Field: name, Mode: sel.Mode}
			}
			listed[name] = struct{}{}
		}
		var kept []Field
		for _, f := range fields {
			_, isListed := listed[f.Name]
			if (sel.Mode == ModeOnly) == isListed {
				kept = append(kept, f)
			}
		}
		return kept, nil

	case ModeMatching:
		if sel.Pattern == nil {
			return nil, fmt.Errorf("matching-fields selection has no pattern")
		}
		var kept []Field
		for _, f := range fields {
			if sel.Pattern.MatchString(f.Name) {
				kept = append(kept, f)
			}
		}
		return kept, nil

	default:
		return nil, fmt.Errorf("unknown selection mode %d", sel.Mode)
	}
}
