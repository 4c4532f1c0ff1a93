package component

import (
	"fmt"
	"reflect"
)

// Component is a value description of renderable content.
type Component any

// ActionKind names a user interaction emitted by a component ("tap", "toggle").
type ActionKind string

// Common action kinds.
const (
	ActionTap       ActionKind = "tap"
	ActionLongPress ActionKind = "longpress"
	ActionToggle    ActionKind = "toggle"
	ActionDelete    ActionKind = "delete"
	ActionSelect    ActionKind = "select"
)

// Identifiable components declare an explicit identity key.
// The key must be comparable and must not depend on mutable external state.
type Identifiable interface {
	ID() any
}

// ContentEquatable components compare their own content.
type ContentEquatable interface {
	ContentEquals(other Component) bool
}

// Updatable components can refresh in place. ShouldContentUpdate reports
// whether moving to next changes layout, which forces a full render instead
// of a single-node refresh.
type Updatable interface {
	ShouldContentUpdate(next Component) bool
}

// Actionable components emit user interactions.
type Actionable interface {
	ActionKinds() []ActionKind
}

// Identifier is the stable identity of a node across renders.
// Identifiers are comparable and safe to use as map keys.
type Identifier struct {
	typ reflect.Type
	key any
}

// IdentifierOf derives the identifier of c.
func IdentifierOf(c Component) Identifier {
	if c == nil {
		return Identifier{}
	}
	typ := reflect.TypeOf(c)
	var key any = c
	if id, ok := c.(Identifiable); ok {
		key = id.ID()
	}
	return Identifier{typ: typ, key: mapKey(key)}
}

// mapKey returns key when it can index a map and find itself again, and a
// deterministic rendering of it otherwise. Keys holding slices or maps
// cannot be hashed; keys holding NaN never equal themselves.
func mapKey(key any) any {
	if key == nil {
		return nil
	}
	if IsComparable(key) && key == key {
		return key
	}
	return fmt.Sprintf("%#v", key)
}

// IsComparable reports whether v can be compared with == (and used as a map
// key) without panicking.
func IsComparable(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Type().Comparable() && comparableValue(rv)
}

// IsZero reports whether the identifier belongs to a nil component.
func (id Identifier) IsZero() bool {
	return id.typ == nil && id.key == nil
}

// Type returns the Go type of the identified content.
func (id Identifier) Type() reflect.Type {
	return id.typ
}

// Key returns the identity key.
func (id Identifier) Key() any {
	return id.key
}

// String returns a readable form such as "main.Row(42)".
func (id Identifier) String() string {
	if id.IsZero() {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%v)", id.typ, id.key)
}

// comparableValue reports whether v can be used with == without panicking.
// Interface-typed fields of a comparable struct may still hold slices or maps.
func comparableValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		return v.Elem().Type().Comparable() && comparableValue(v.Elem())
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !comparableValue(v.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !comparableValue(v.Index(i)) {
				return false
			}
		}
		return true
	default:
		return v.Type().Comparable()
	}
}

// ContentEquals reports whether old and next render identically.
func ContentEquals(old, next Component) bool {
	if eq, ok := old.(ContentEquatable); ok {
		return eq.ContentEquals(next)
	}
	return valuesEqual(old, next)
}

// valuesEqual compares two content values.
func valuesEqual(a, b any) bool {
	// Fast path for common types
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return av == bv
		}
		return false
	case int:
		if bv, ok := b.(int); ok {
			return av == bv
		}
		return false
	case int64:
		if bv, ok := b.(int64); ok {
			return av == bv
		}
		return false
	case float64:
		if bv, ok := b.(float64); ok {
			return av == bv || (av != av && bv != bv)
		}
		return false
	case bool:
		if bv, ok := b.(bool); ok {
			return av == bv
		}
		return false
	case nil:
		return b == nil
	}
	// Fallback to reflect for complex types
	if reflect.DeepEqual(a, b) {
		return true
	}
	return equalNaN(reflect.ValueOf(a), reflect.ValueOf(b), 0)
}

// equalNaN follows reflect.DeepEqual except that NaN equals NaN, keeping
// content equality reflexive for values holding floats.
func equalNaN(a, b reflect.Value, depth int) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() || depth > 64 {
		return false
	}
	switch a.Kind() {
	case reflect.Float32, reflect.Float64:
		return equalFloat(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		x, y := a.Complex(), b.Complex()
		return equalFloat(real(x), real(y)) && equalFloat(imag(x), imag(y))
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.String:
		return a.String() == b.String()
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !equalNaN(a.Field(i), b.Field(i), depth+1) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < a.Len(); i++ {
			if !equalNaN(a.Index(i), b.Index(i), depth+1) {
				return false
			}
		}
		return true
	case reflect.Slice:
		if a.IsNil() != b.IsNil() || a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalNaN(a.Index(i), b.Index(i), depth+1) {
				return false
			}
		}
		return true
	case reflect.Map:
		if a.IsNil() != b.IsNil() || a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			other := b.MapIndex(iter.Key())
			if !other.IsValid() || !equalNaN(iter.Value(), other, depth+1) {
				return false
			}
		}
		return true
	case reflect.Interface, reflect.Pointer:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		if a.Kind() == reflect.Pointer && a.Pointer() == b.Pointer() {
			return true
		}
		return equalNaN(a.Elem(), b.Elem(), depth+1)
	case reflect.Func:
		return a.IsNil() && b.IsNil()
	default:
		return a.Pointer() == b.Pointer()
	}
}

func equalFloat(x, y float64) bool {
	return x == y || (x != x && y != y)
}
