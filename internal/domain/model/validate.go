package model

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// RequiredText trims value and rejects the result when it is empty.
func RequiredText(value, field string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", &ValidationError{Field: field, Reason: "must not be empty"}
	}
	return v, nil
}

// Text trims value. Empty results are allowed.
func Text(value string) string {
	return strings.TrimSpace(value)
}

// AbsoluteHTTPURL accepts an empty string as "unset" and otherwise requires an
// absolute http or https URL with a host.
func AbsoluteHTTPURL(value, field string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", nil
	}
	if strings.IndexFunc(v, unicode.IsSpace) != -1 {
		return "", &ValidationError{Field: field, Value: value, Reason: "malformed URL"}
	}
	u, err := url.Parse(v)
	if err != nil {
		return "", &ValidationError{Field: field, Value: value, Reason: "malformed URL"}
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return "", &ValidationError{Field: field, Value: value, Reason: "URL must use the http or https scheme"}
	}
	if u.Host == "" || u.Hostname() == "" {
		return "", &ValidationError{Field: field, Value: value, Reason: "URL must have a host"}
	}
	return v, nil
}

// CoerceBool converts loosely typed input to a bool. Strings understood by
// strconv.ParseBool use that meaning; any other string is true unless it is
// empty or "0". Numbers are true when non-zero.
func CoerceBool(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
		return v != "" && v != "0"
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
