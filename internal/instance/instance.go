// Package instance constructs instances of a target struct type with field
// values assigned directly, bypassing any constructor functions the type may
// have. Direct assignment is the only way to control every field
// independently: constructors may validate arguments, derive fields, or not
// exist at all for the combination of values a verification needs.
package instance

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/verifykit/stringver/internal/fieldcat"
)

// ConstructionError reports a type that could not be instantiated or
// populated. Fatal for the affected type only; sibling types in the same
// verification run are unaffected.
type ConstructionError struct {
	TypeName string
	Reason   string
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot construct instance of %s: %s", e.TypeName, e.Reason)
}

// Build constructs a new addressable instance of t and assigns each given
// field to the value produced by valueFor. Unexported fields are set through
// their address. Fields not listed remain at their zero value, which is
// acceptable because only listed fields are checked.
//
// The returned value is the *T pointer to the built instance.
func Build(t reflect.Type, fields []fieldcat.Field, valueFor func(fieldcat.Field) reflect.Value) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, &ConstructionError{TypeName: "<nil>", Reason: "no type given"}
	}
	if t.Kind() != reflect.Struct {
		return reflect.Value{}, &ConstructionError{TypeName: t.String(), Reason: fmt.Sprintf("%s is not a struct type", t.Kind())}
	}

	ptr := reflect.New(t)
	elem := ptr.Elem()

	for _, f := range fields {
		target := elem.FieldByIndex(f.Index)
		value := valueFor(f)
		if err := setField(target, value); err != nil {
			return reflect.Value{}, &ConstructionError{
				TypeName: t.String(),
				Reason:   fmt.Sprintf("field %s: %v", f.Name, err),
			}
		}
	}

	return ptr, nil
}

// setField assigns value to target, going through the field's address when
// the field is unexported and therefore not settable via plain reflection.
func setField(target, value reflect.Value) error {
	if !value.IsValid() {
		value = reflect.Zero(target.Type())
	}
	if value.Type() != target.Type() {
		if !value.Type().AssignableTo(target.Type()) {
			if !value.Type().ConvertibleTo(target.Type()) {
				return fmt.Errorf("value of type %s is not assignable to %s", value.Type(), target.Type())
			}
			value = value.Convert(target.Type())
		}
	}
	if target.CanSet() {
		target.Set(value)
		return nil
	}
	if !target.CanAddr() {
		return fmt.Errorf("field is not addressable")
	}
	reflect.NewAt(target.Type(), unsafe.Pointer(target.UnsafeAddr())).Elem().Set(value)
	return nil
}
