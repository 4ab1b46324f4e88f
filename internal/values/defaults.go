package values

import "reflect"

// maxDefaultDepth bounds recursion when defaulting nested struct, pointer,
// and container types. Beyond the limit the zero value is used.
const maxDefaultDepth = 3

// DefaultFor returns the deterministic default value for a type. The table
// assigns each kind a distinct, recognizable value so that fields of
// different widths render differently and failures reproduce identically
// across runs:
//
//	bool            true
//	int             1
//	int8/16/32/64   8 / 16 / 32 / 64
//	uint            1
//	uint8/16/32/64  8 / 16 / 32 / 64
//	uintptr         1
//	float32         0.25
//	float64         0.5
//	complex64/128   (1+1i)
//	string          "value"
//	pointer         pointer to the element's default
//	slice           one-element slice of the element's default
//	array           first element set to the element's default
//	map             single entry {key default: element default}
//	struct          fields recursively defaulted
//	chan/func/iface typed nil (renders as "<nil>")
//
// Note that scalar pointers render as an address under %v; callers that
// verify pointer fields should register a prefab or formatter for them.
func DefaultFor(t reflect.Type) reflect.Value {
	return defaultFor(t, 0)
}

func defaultFor(t reflect.Type, depth int) reflect.Value {
	if depth > maxDefaultDepth {
		return reflect.Zero(t)
	}
	v := reflect.New(t).Elem()

	switch t.Kind() {
	case reflect.Bool:
		v.SetBool(true)
	case reflect.Int:
		v.SetInt(1)
	case reflect.Int8:
		v.SetInt(8)
	case reflect.Int16:
		v.SetInt(16)
	case reflect.Int32:
		v.SetInt(32)
	case reflect.Int64:
		v.SetInt(64)
	case reflect.Uint:
		v.SetUint(1)
	case reflect.Uint8:
		v.SetUint(8)
	case reflect.Uint16:
		v.SetUint(16)
	case reflect.Uint32:
		v.SetUint(32)
	case reflect.Uint64:
		v.SetUint(64)
	case reflect.Uintptr:
		v.SetUint(1)
	case reflect.Float32:
		v.SetFloat(0.25)
	case reflect.Float64:
		v.SetFloat(0.5)
	case reflect.Complex64, reflect.Complex128:
		v.SetComplex(complex(1, 1))
	case reflect.String:
		v.SetString("value")
	case reflect.Pointer:
		elem := defaultFor(t.Elem(), depth+1)
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		v.Set(ptr)
	case reflect.Slice:
		s := reflect.MakeSlice(t, 1, 1)
		s.Index(0).Set(defaultFor(t.Elem(), depth+1))
		v.Set(s)
	case reflect.Array:
		if t.Len() > 0 {
			v.Index(0).Set(defaultFor(t.Elem(), depth+1))
		}
	case reflect.Map:
		m := reflect.MakeMapWithSize(t, 1)
		m.SetMapIndex(defaultFor(t.Key(), depth+1), defaultFor(t.Elem(), depth+1))
		v.Set(m)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := v.Field(i)
			if f.CanSet() {
				f.Set(defaultFor(t.Field(i).Type, depth+1))
			}
		}
	case reflect.Chan, reflect.Func, reflect.Interface:
		// typed nil: renders deterministically as "<nil>"
	}

	return v
}
