package data

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedPayload is returned when an API payload has neither the shape
// of a record nor of a list of records.
var ErrMalformedPayload = errors.New("malformed payload")

// Object is a single decoded JSON object as received from the booking API.
// Field lookups never fail; absent or mistyped fields read as zero values.
type Object map[string]any

// Decode reads one JSON document without imposing a shape on it.
func Decode(reader io.Reader) (any, error) {
	var raw any
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return raw, nil
}

// DecodeBytes is Decode for an in-memory body.
func DecodeBytes(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	return Decode(bytes.NewReader(body))
}

// AsObject returns raw as an Object, or false if it isn't a JSON object.
func AsObject(raw any) (Object, bool) {
	switch value := raw.(type) {
	case Object:
		return value, true
	case map[string]any:
		return Object(value), true
	}
	return nil, false
}

// DecodeList accepts either a bare array or an object wrapping the array in
// "data". An object without "data" is an empty list.
func DecodeList(raw any) ([]any, error) {
	switch value := raw.(type) {
	case []any:
		return value, nil
	case nil:
		return nil, nil
	}

	object, ok := AsObject(raw)
	if !ok {
		return nil, fmt.Errorf("%w: expected list, got %T", ErrMalformedPayload, raw)
	}
	inner, present := object["data"]
	if !present || inner == nil {
		return nil, nil
	}
	list, ok := inner.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: data is %T, not a list", ErrMalformedPayload, inner)
	}
	return list, nil
}

// UnwrapRecord returns the record of a detail payload, removing an optional
// {"data": {...}} envelope.
func UnwrapRecord(raw any) (Object, error) {
	object, ok := AsObject(raw)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %T", ErrMalformedPayload, raw)
	}
	if inner, ok := AsObject(object["data"]); ok {
		return inner, nil
	}
	return object, nil
}

// String returns the first key holding a non-empty string.
func (object Object) String(keys ...string) string {
	for _, key := range keys {
		if value, ok := object[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// ID is like String, but also accepts numeric identifiers.
func (object Object) ID(keys ...string) string {
	for _, key := range keys {
		switch value := object[key].(type) {
		case string:
			if value != "" {
				return value
			}
		case float64:
			return strconv.FormatFloat(value, 'f', -1, 64)
		case json.Number:
			return value.String()
		}
	}
	return ""
}

// Number returns the first present key coerced with NumberOrZero.
func (object Object) Number(keys ...string) float64 {
	for _, key := range keys {
		if value, ok := object[key]; ok && value != nil {
			return NumberOrZero(value)
		}
	}
	return 0
}

// Strings returns the string elements of the first key holding a list.
func (object Object) Strings(key string) []string {
	list, ok := object[key].([]any)
	if !ok {
		return nil
	}
	values := make([]string, 0, len(list))
	for _, item := range list {
		if value, ok := item.(string); ok && strings.TrimSpace(value) != "" {
			values = append(values, value)
		}
	}
	return values
}

// NumberOrZero coerces numbers and numeric strings; everything else,
// including NaN and infinities, becomes 0.
func NumberOrZero(value any) float64 {
	var number float64
	switch typed := value.(type) {
	case float64:
		number = typed
	case float32:
		number = float64(typed)
	case int:
		number = float64(typed)
	case int64:
		number = float64(typed)
	case json.Number:
		parsed, err := typed.Float64()
		if err != nil {
			return 0
		}
		number = parsed
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0
		}
		number = parsed
	case bool:
		if typed {
			return 1
		}
		return 0
	default:
		return 0
	}
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return 0
	}
	return number
}

// count truncates a coerced number to a non-negative integer no larger
// than math.MaxInt32.
func count(number float64) int {
	if number <= 0 {
		return 0
	}
	if number >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(number))
}
