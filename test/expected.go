// Package test contains helper functions to remove common boilerplate from
// the package tests.
//
// The Expect functions mark a test failure and continue. The Demand functions
// are fatal: they are for values that later assertions depend on.
package test

import "testing"

// ExpectEquality is used to test equality between one value and another
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test that one value differs from another
func ExpectInequality[T comparable](t *testing.T, v T, unexpectedValue T) bool {
	t.Helper()
	if v == unexpectedValue {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v'", v, v, unexpectedValue)
		return false
	}
	return true
}

// DemandEquality is used to test equality between one value and another. If
// the test fails it is a testing fatality
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T) {
	t.Helper()
	if v != expectedValue {
		t.Fatalf("equality test of type %T failed: '%v' does not equal '%v'", v, v, expectedValue)
	}
}

// expect tests argument v for a success condition suitable for its type:
//
//	bool -> bool == true
//	error -> error == nil
func expect(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
	}
	return false
}

// ExpectSuccess is used to test for a value which indicates success for the
// type
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()
	if !expect(t, v) {
		t.Errorf("expected success (%T)", v)
		return false
	}
	return true
}

// ExpectFailure is used to test for a value which indicates failure for the
// type
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()
	if expect(t, v) {
		t.Errorf("expected failure (%T)", v)
		return false
	}
	return true
}
