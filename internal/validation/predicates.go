package validation

import (
	"encoding/json"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// IsValidID reports whether x is a number, integral, and strictly positive.
func IsValidID(x any) bool {
	v := indirect(x)
	switch n := v.(type) {
	case decimal.Decimal:
		return n.IsInteger() && n.IsPositive()
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i > 0
		}
		f, err := n.Float64()
		return err == nil && isPositiveIntegral(f)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() > 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() > 0
	case reflect.Float32, reflect.Float64:
		return isPositiveIntegral(rv.Float())
	}
	return false
}

// IsValidMoney reports whether x is a number greater than zero. Unlike
// IsValidID, fractional values are accepted.
func IsValidMoney(x any) bool {
	v := indirect(x)
	switch n := v.(type) {
	case decimal.Decimal:
		return n.IsPositive()
	case json.Number:
		d, err := decimal.NewFromString(string(n))
		return err == nil && d.IsPositive()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() > 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() > 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
	}
	return false
}

// IsValidString reports whether every argument is a non-empty string.
func IsValidString(values ...string) bool {
	for _, s := range values {
		if s == "" {
			return false
		}
	}
	return true
}

// IsValidBoolean reports whether x is exactly true. false is rejected.
func IsValidBoolean(x any) bool {
	b, ok := indirect(x).(bool)
	return ok && b
}

// IsValidObject reports whether every field of obj holds a non-zero value,
// except the fields whose JSON names are listed in nullable.
//
// Structs are checked field by field (by JSON name); maps value by value.
func IsValidObject(obj any, nullable ...string) bool {
	v := indirect(obj)
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			field := rt.Field(i)
			name, ok := propertyName(field)
			if !ok || slices.Contains(nullable, name) {
				continue
			}
			if !truthy(rv.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if key, ok := iter.Key().Interface().(string); ok && slices.Contains(nullable, key) {
				continue
			}
			if !truthy(iter.Value()) {
				return false
			}
		}
		return true
	}
	return false
}

// IsPropertyOf reports whether key is the JSON name of a field of entity.
func IsPropertyOf(key string, entity any) bool {
	rt := reflect.TypeOf(entity)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return false
	}

	for i := 0; i < rt.NumField(); i++ {
		if name, ok := propertyName(rt.Field(i)); ok && name == key {
			return true
		}
	}
	return false
}

// IsEmptyObject reports whether x is nil, a zero struct, or a collection with
// no entries.
func IsEmptyObject(x any) bool {
	v := indirect(x)
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return rv.Len() == 0
	}
	return rv.IsZero()
}

func isPositiveIntegral(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f) && f > 0
}

// indirect follows pointers; a nil pointer yields nil.
func indirect(x any) any {
	if x == nil {
		return nil
	}
	rv := reflect.ValueOf(x)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

func propertyName(field reflect.StructField) (string, bool) {
	if !field.IsExported() {
		return "", false
	}
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	return name, true
}

type zeroer interface {
	IsZero() bool
}

// truthy mirrors the falsy set of a loosely typed value: nil, false, 0, NaN
// and the empty string.
func truthy(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	if rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		return truthy(rv.Elem())
	}
	if rv.CanInterface() {
		if z, ok := rv.Interface().(zeroer); ok {
			return !z.IsZero()
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Map, reflect.Slice:
		return !rv.IsNil()
	}
	return !rv.IsZero()
}
