// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Coerce converts the given value to the given type. Values of the
// exact type pass through; nil becomes the zero value; numbers convert
// between numeric kinds when the value fits the target exactly; strings
// are parsed for boolean, numeric and [time.Duration] types. Anything
// else is an error.
func Coerce(v any, typ reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.New(typ).Elem(), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type() == typ {
		return rv, nil
	}
	if typ.Kind() == reflect.Interface && rv.Type().Implements(typ) {
		nv := reflect.New(typ).Elem()
		nv.Set(rv)
		return nv, nil
	}
	if s, ok := v.(string); ok && typ.Kind() != reflect.String {
		return parseString(s, typ)
	}
	switch {
	case isNumber(rv.Kind()) && isNumber(typ.Kind()):
		return convertNumber(rv, typ)
	case rv.Kind() == typ.Kind() && rv.Type().ConvertibleTo(typ):
		return rv.Convert(typ), nil
	}
	return reflect.Value{}, fmt.Errorf("reflectx.Coerce: cannot convert %T to %v", v, typ)
}

func isNumber(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

// convertNumber converts between numeric kinds, rejecting values that
// overflow the target, negative values for unsigned targets and
// fractional values for integer targets.
func convertNumber(rv reflect.Value, typ reflect.Type) (reflect.Value, error) {
	nv := reflect.New(typ).Elem()
	v := rv.Interface()
	switch {
	case isInt(typ.Kind()):
		var i int64
		switch {
		case isInt(rv.Kind()):
			i = rv.Int()
		case isUint(rv.Kind()):
			if rv.Uint() > math.MaxInt64 {
				return reflect.Value{}, fmt.Errorf("reflectx.Coerce: %v overflows %v", v, typ)
			}
			i = int64(rv.Uint())
		default:
			f := rv.Float()
			if f != math.Trunc(f) || math.IsInf(f, 0) {
				return reflect.Value{}, fmt.Errorf("reflectx.Coerce: %v is not an integer", v)
			}
			if f < math.MinInt64 || f >= math.MaxInt64 {
				return reflect.Value{}, fmt.Errorf("reflectx.Coerce: %v overflows %v", v, typ)
			}
			i = int64(f)
		}
		if nv.OverflowInt(i) {
			return reflect.Value{}, fmt.Errorf("reflectx.Coerce: %v overflows %v", v, typ)
		}
		nv.SetInt(i)
	case isUint(typ.Kind()):
		var u uint64
		switch {
		case isInt(rv.Kind()):
			if rv.Int() < 0 {
				return reflect.Value{}, fmt.Errorf("reflectx.Coerce: %v is negative for %v", v, typ)
			}
			u = uint64(rv.Int())
		case isUint(rv.Kind()):
			u = rv.Uint()
		default:
			f := rv.Float()
			if f != math.Trunc(f) || math.IsInf(f, 0) {
				return reflect.Value{}, fmt.Errorf("reflectx.Coerce: %v is not an integer", v)
			}
			if f < 0 {
				return reflect.Value{}, fmt.Errorf("reflectx.Coerce: %v is negative for %v", v, typ)
			}
			if f >= math.MaxUint64 {
				return reflect.Value{}, fmt.Errorf("reflectx.Coerce: %v overflows %v", v, typ)
			}
			u = uint64(f)
		}
		if nv.OverflowUint(u) {
			return reflect.Value{}, fmt.Errorf("reflectx.Coerce: %v overflows %v", v, typ)
		}
		nv.SetUint(u)
	default:
		var f float64
		switch {
		case isInt(rv.Kind()):
			f = float64(rv.Int())
		case isUint(rv.Kind()):
			f = float64(rv.Uint())
		default:
			f = rv.Float()
		}
		if nv.OverflowFloat(f) {
			return reflect.Value{}, fmt.Errorf("reflectx.Coerce: %v overflows %v", v, typ)
		}
		nv.SetFloat(f)
	}
	return nv, nil
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func parseString(s string, typ reflect.Type) (reflect.Value, error) {
	nv := reflect.New(typ).Elem()
	s = strings.TrimSpace(s)
	if typ == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(s)
		if err != nil {
			return reflect.Value{}, err
		}
		nv.SetInt(int64(d))
		return nv, nil
	}
	switch typ.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return reflect.Value{}, err
		}
		nv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, typ.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		nv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 0, typ.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		nv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, typ.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		nv.SetFloat(f)
	default:
		return reflect.Value{}, fmt.Errorf("reflectx.Coerce: cannot parse %q as %v", s, typ)
	}
	return nv, nil
}

// ToString returns the display text of the given value.
func ToString(v any) string {
	if v == nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	}
	rv := Underlying(reflect.ValueOf(v))
	if !rv.IsValid() {
		return ""
	}
	switch rv.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	}
	return fmt.Sprint(rv.Interface())
}

// IsEmpty returns whether the given value is nil or an empty string.
func IsEmpty(v any) bool {
	if AnyIsNil(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.String && rv.Len() == 0
}
