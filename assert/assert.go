// Package assert provides the small set of test helpers used across the
// repo's tests. Every helper takes a required message so failures read as
// sentences in test output.
package assert

import (
	"reflect"
	"strings"
	"testing"
)

// Equal asserts that expected and actual are deeply equal.
func Equal(t *testing.T, expected, actual any, msg string) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

// NotEqual asserts that expected and actual are not deeply equal.
func NotEqual(t *testing.T, expected, actual any, msg string) {
	t.Helper()
	if reflect.DeepEqual(expected, actual) {
		t.Errorf("%s: expected values to differ, both %v", msg, actual)
	}
}

// True asserts that cond is true.
func True(t *testing.T, cond bool, msg string) {
	t.Helper()
	if !cond {
		t.Errorf("%s: expected true", msg)
	}
}

// False asserts that cond is false.
func False(t *testing.T, cond bool, msg string) {
	t.Helper()
	if cond {
		t.Errorf("%s: expected false", msg)
	}
}

// Nil asserts that v is nil (or a nil pointer/slice/map/interface).
func Nil(t *testing.T, v any, msg string) {
	t.Helper()
	if !isNil(v) {
		t.Errorf("%s: expected nil, got %v", msg, v)
	}
}

// NotNil asserts that v is not nil.
func NotNil(t *testing.T, v any, msg string) {
	t.Helper()
	if isNil(v) {
		t.Errorf("%s: expected non-nil", msg)
	}
}

// NoError asserts that err is nil.
func NoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: unexpected error: %v", msg, err)
	}
}

// Error asserts that err is non-nil.
func Error(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error", msg)
	}
}

// Len asserts that v (a slice, map, string, or channel) has the expected length.
func Len(t *testing.T, expected int, v any, msg string) {
	t.Helper()
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.String, reflect.Chan, reflect.Array:
		if rv.Len() != expected {
			t.Errorf("%s: expected length %d, got %d", msg, expected, rv.Len())
		}
	default:
		t.Errorf("%s: value of type %T has no length", msg, v)
	}
}

// Contains asserts that haystack contains needle.
func Contains(t *testing.T, haystack, needle, msg string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Errorf("%s: %q does not contain %q", msg, haystack, needle)
	}
}

// Greater asserts that a > b.
func Greater(t *testing.T, a, b int, msg string) {
	t.Helper()
	if a <= b {
		t.Errorf("%s: expected %d > %d", msg, a, b)
	}
}

// GreaterOrEqual asserts that a >= b.
func GreaterOrEqual(t *testing.T, a, b int, msg string) {
	t.Helper()
	if a < b {
		t.Errorf("%s: expected %d >= %d", msg, a, b)
	}
}

// Less asserts that a < b.
func Less(t *testing.T, a, b int, msg string) {
	t.Helper()
	if a >= b {
		t.Errorf("%s: expected %d < %d", msg, a, b)
	}
}

// LessOrEqual asserts that a <= b.
func LessOrEqual(t *testing.T, a, b int, msg string) {
	t.Helper()
	if a > b {
		t.Errorf("%s: expected %d <= %d", msg, a, b)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
