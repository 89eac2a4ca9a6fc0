package reify

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"time"
)

// Kind is the tagged classification of a dynamic input value. Every parser
// dispatches on Kind instead of ad-hoc reflection so coercion behavior stays
// identical across decode sources (JSON, YAML, form values).
type Kind int

const (
	KindNull Kind = iota
	KindNaN
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindDate
	KindOther
)

// Classify inspects the runtime kind of v.
func Classify(v any) Kind {
	switch t := v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case float64:
		if math.IsNaN(t) {
			return KindNaN
		}
		return KindNumber
	case float32:
		if math.IsNaN(float64(t)) {
			return KindNaN
		}
		return KindNumber
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case json.Number:
		return KindNumber
	case time.Time:
		return KindDate
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map, reflect.Struct:
		return KindObject
	default:
		return KindOther
	}
}

// TypeName describes v for error messages: "null", "NaN", "empty string",
// "boolean (true/false)", "array", "date", or the dynamic kind name.
func TypeName(v any) string {
	switch Classify(v) {
	case KindNull:
		return "null"
	case KindNaN:
		return "NaN"
	case KindBool:
		return "boolean (true/false)"
	case KindNumber:
		return "number"
	case KindString:
		if v.(string) == "" {
			return "empty string"
		}
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindDate:
		return "date"
	default:
		return reflect.TypeOf(v).String()
	}
}

// AsNumber converts any numeric kind to float64. It reports false for
// non-numeric values, including numeric strings (coercion from strings is a
// per-parser policy, not a classification concern).
func AsNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
