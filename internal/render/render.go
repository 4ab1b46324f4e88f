// Package render invokes the String method under verification and derives
// the identity hash of a built instance.
package render

import (
	"fmt"
	"reflect"
)

// stringType is the sole result type the String method must return.
var stringType = reflect.TypeOf("")

// HashFunc derives an identity hash from the built instance. The instance is
// passed as the *T pointer the verifier constructed.
type HashFunc func(instance any) uint64

// PointerHash is the default HashFunc: the address of the built instance.
// The same value a pointer-receiver String method observes as its receiver.
func PointerHash(instance any) uint64 {
	v := reflect.ValueOf(instance)
	if v.Kind() != reflect.Pointer {
		return 0
	}
	return uint64(v.Pointer())
}

// Render invokes the instance's String method exactly once and returns the
// produced text. ptr is the *T pointer to the built instance, so methods
// declared on both T and *T are visible. A missing or mis-shaped String
// method is an error; a panicking String method propagates as-is, since a
// throwing string representation is itself a contract violation worth
// surfacing plainly.
func Render(ptr reflect.Value) (string, error) {
	if !ptr.IsValid() || ptr.Kind() != reflect.Pointer {
		return "", fmt.Errorf("render requires a pointer to the built instance")
	}
	m := ptr.MethodByName("String")
	if !m.IsValid() {
		return "", fmt.Errorf("%s does not implement String() string", ptr.Type().Elem())
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || mt.Out(0) != stringType {
		return "", fmt.Errorf("%s has a String method with signature %s, want func() string", ptr.Type().Elem(), mt)
	}
	out := m.Call(nil)
	return out[0].String(), nil
}
