package vec

import (
	"reflect"
	"sync"
)

// Cloner is implemented by element types whose copies require more than a raw
// bit copy. Clone is invoked by every copy-constructing operation (NewFill,
// InsertN, Clone, CopyFrom). Relocation during growth never clones.
type Cloner[T any] interface {
	Clone() T
}

// Destroyer is implemented by element types that own resources needing
// teardown. Destroy is invoked exactly once per removed element; it is never
// invoked on slots an element was moved out of.
type Destroyer interface {
	Destroy()
}

// Equaler is implemented by element types with domain-specific equality.
// When present it overrides the default comparison used by Equal.
type Equaler[T any] interface {
	Equal(T) bool
}

// typeInfo records the capabilities of an element type. It is computed once
// per type and shared by every vector of that type.
type typeInfo struct {
	size       uintptr
	hasClone   bool
	hasDestroy bool
	hasEqual   bool
	comparable bool

	// plain marks types eligible for the raw-byte fast paths: no lifecycle
	// hooks, no pointer fields (byte copies would bypass GC write barriers,
	// and pointer identity breaks byte comparison) and no padding (padding
	// bytes are not value bytes).
	plain bool
}

var typeInfoCache sync.Map // reflect.Type -> *typeInfo

// infoOf classifies T, caching the result per type.
func infoOf[T any]() *typeInfo {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if cached, ok := typeInfoCache.Load(rt); ok {
		return cached.(*typeInfo)
	}

	var zero T
	info := &typeInfo{
		size:       rt.Size(),
		comparable: rt.Comparable(),
	}
	_, info.hasClone = any(&zero).(Cloner[T])
	_, info.hasDestroy = any(&zero).(Destroyer)
	_, info.hasEqual = any(&zero).(Equaler[T])
	info.plain = !info.hasClone && !info.hasDestroy &&
		pointerFree(rt) && !padded(rt)

	cached, _ := typeInfoCache.LoadOrStore(rt, info)
	return cached.(*typeInfo)
}

// pointerFree reports whether values of t contain no pointers anywhere in
// their layout.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// String, Ptr, Slice, Map, Chan, Func, Interface, UnsafePointer.
		return false
	}
}

// padded reports whether values of t contain compiler-inserted padding bytes.
func padded(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array:
		return padded(t.Elem())
	case reflect.Struct:
		var fields uintptr
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i).Type
			if padded(f) {
				return true
			}
			fields += f.Size()
		}
		return fields != t.Size()
	default:
		return false
	}
}
