package vector

import (
	"reflect"
	"strconv"
	"strings"
)

// String renders v as "(x, y, z)". Floating point components use the
// shortest decimal form that round-trips, without an exponent.
func (v Vector[T]) String() string {
	var b strings.Builder
	b.Grow(32)
	b.WriteByte('(')
	b.WriteString(formatComponent(v.x))
	b.WriteString(", ")
	b.WriteString(formatComponent(v.y))
	b.WriteString(", ")
	b.WriteString(formatComponent(v.z))
	b.WriteByte(')')
	return b.String()
}

// FormatScalar renders a single scalar the same way String renders a component.
func FormatScalar[T Scalar](c T) string {
	return formatComponent(c)
}

// formatComponent goes through reflect so that named scalar types
// (type Meters float64) are printed by kind, not by their own String method.
func formatComponent[T Scalar](c T) string {
	rv := reflect.ValueOf(c)
	switch rv.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		return strconv.FormatInt(rv.Int(), 10)
	}
}
