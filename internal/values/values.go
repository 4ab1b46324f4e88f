// Package values resolves the concrete value assigned to each verified
// field: a caller-registered prefab value when one exists for the exact
// field type, otherwise a deterministic default derived from the type.
package values

import (
	"fmt"
	"reflect"

	"github.com/verifykit/stringver/internal/fieldcat"
)

// Provider resolves field values. A Provider is a pure lookup: it holds the
// prefab registry and never mutates shared state during a verification pass.
type Provider struct {
	prefabs map[reflect.Type]prefab
}

// prefab records a registered value. explicitNil distinguishes a registered
// typed nil from an absent registration.
type prefab struct {
	value       reflect.Value
	explicitNil bool
}

// NewProvider returns an empty Provider.
func NewProvider() *Provider {
	return &Provider{prefabs: make(map[reflect.Type]prefab)}
}

// Register records a prefab value for an exact type. A nil value is allowed
// for nilable kinds (pointer, slice, map, chan, func, interface) and means
// the field is set to its typed nil. The value must be assignable to the
// registered type.
func (p *Provider) Register(t reflect.Type, value any) error {
	if t == nil {
		return fmt.Errorf("prefab type is nil")
	}
	if value == nil {
		if !isNilable(t.Kind()) {
			return fmt.Errorf("nil prefab value is not valid for non-nilable type %s", t)
		}
		p.prefabs[t] = prefab{explicitNil: true}
		return nil
	}
	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(t) {
		if !v.Type().ConvertibleTo(t) {
			return fmt.Errorf("prefab value of type %s is not assignable to %s", v.Type(), t)
		}
		v = v.Convert(t)
	}
	p.prefabs[t] = prefab{value: v}
	return nil
}

// Registered reports whether a prefab exists for the exact type.
func (p *Provider) Registered(t reflect.Type) bool {
	_, ok := p.prefabs[t]
	return ok
}

// ValueFor resolves the value for a field: the registered prefab on an exact
// type match, else the deterministic default for the field's type.
func (p *Provider) ValueFor(f fieldcat.Field) reflect.Value {
	if pf, ok := p.prefabs[f.Type]; ok {
		if pf.explicitNil {
			return reflect.Zero(f.Type)
		}
		return pf.value
	}
	return DefaultFor(f.Type)
}

func isNilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return true
	}
	return false
}
