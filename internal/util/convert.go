package util

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrPointerExpected = errors.New("pointer to variable expected")
)

var (
	durationType = reflect.TypeOf(time.Duration(0))
	timeType     = reflect.TypeOf(time.Time{})
)

// ConvertString parses value into the variable data points to.
func ConvertString(value string, data any) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		*t = val
	case *int:
		val, err := strconv.ParseInt(value, 10, strconv.IntSize)
		if err != nil {
			return err
		}
		*t = int(val)
	case *int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		*t = val
	case *int32:
		val, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return err
		}
		*t = int32(val)
	case *int16:
		val, err := strconv.ParseInt(value, 10, 16)
		if err != nil {
			return err
		}
		*t = int16(val)
	case *int8:
		val, err := strconv.ParseInt(value, 10, 8)
		if err != nil {
			return err
		}
		*t = int8(val)
	case *uint:
		val, err := strconv.ParseUint(value, 10, strconv.IntSize)
		if err != nil {
			return err
		}
		*t = uint(val)
	case *uint64:
		val, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		*t = val
	case *uint32:
		val, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return err
		}
		*t = uint32(val)
	case *uint16:
		val, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return err
		}
		*t = uint16(val)
	case *uint8:
		val, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return err
		}
		*t = uint8(val)
	case *float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		*t = val
	case *float32:
		val, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return err
		}
		*t = float32(val)
	case *time.Duration:
		val, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*t = val
	case *time.Time:
		val, err := dateparse.ParseLocal(value)
		if err != nil {
			return err
		}
		*t = val
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, data)
	}

	return nil
}

// ConvertValue is ConvertString for a reflect.Value which must be addressable.
func ConvertValue(value string, target reflect.Value) error {
	if !target.CanAddr() {
		return ErrPointerExpected
	}

	return ConvertString(value, target.Addr().Interface())
}

// CanConvert reports whether ConvertString supports values of type t.
func CanConvert(t reflect.Type) bool {
	if t == durationType || t == timeType {
		return true
	}

	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		// named types (type Level int) don't match the pointer switch in ConvertString
		return t.PkgPath() == ""
	default:
		return false
	}
}

// TypeName returns the name used for t in conversion diagnostics.
func TypeName(t reflect.Type) string {
	switch t {
	case durationType:
		return "duration"
	case timeType:
		return "time"
	}

	return t.Kind().String()
}
