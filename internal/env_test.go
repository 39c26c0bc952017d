package internal

import (
	"errors"
	"testing"
)

func expectRuntimeError(t *testing.T, kind error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		runErr, ok := r.(*runtimeError)
		if !ok {
			t.Errorf("expected a runtime error, got %v", r)
			return
		}
		if !errors.Is(runErr, kind) {
			t.Errorf("expected %q, got %q", kind, runErr.err)
		}
	}()
	f()
}

func TestEnv(t *testing.T) {
	name := func(lexeme string) *token {
		return &token{token: tkIdentifier, lexeme: lexeme, line: 1}
	}

	globals := newEnv(nil)
	globals.define("a", 1.0)
	inner := newEnv(newEnv(globals))
	inner.define("b", "two")

	if inner.get(name("a")) != 1.0 || inner.get(name("b")) != "two" {
		t.Errorf("lookups should walk the chain")
	}
	if inner.ancestor(2) != globals {
		t.Errorf("ancestor(2) should be the globals")
	}
	if inner.getAt(2, "a") != 1.0 || inner.getAt(0, "b") != "two" {
		t.Errorf("getAt should read the exact scope")
	}

	inner.assign(name("a"), 3.0)
	if globals.get(name("a")) != 3.0 {
		t.Errorf("assign should write the scope that declares the name")
	}
	inner.assignAt(2, name("a"), 4.0)
	if globals.get(name("a")) != 4.0 {
		t.Errorf("assignAt should write the exact scope")
	}

	// Redefinition replaces the value
	globals.define("a", nil)
	if value := inner.get(name("a")); value != nil {
		t.Errorf("expected nil, got %v", value)
	}

	expectRuntimeError(t, errUndefinedVar, func() {
		inner.get(name("missing"))
	})
	expectRuntimeError(t, errUndefinedVar, func() {
		inner.assign(name("missing"), 1.0)
	})
}

func TestValues(t *testing.T) {
	truthyTests := []struct {
		value    interface{}
		expected bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{0.0, true},
		{"", true},
		{&instance{}, true},
	}
	for _, test := range truthyTests {
		if truthy(test.value) != test.expected {
			t.Errorf("truthy(%v) should be %v", test.value, test.expected)
		}
	}

	if !isEqual(nil, nil) || isEqual(nil, false) || isEqual(1.0, "1") || !isEqual("a", "a") {
		t.Errorf("unexpected equality")
	}

	stringTests := []struct {
		value    interface{}
		expected string
	}{
		{nil, "nil"},
		{true, "true"},
		{3.0, "3"},
		{-0.5, "-0.5"},
		{1e21, "1000000000000000000000"},
		{"text", "text"},
		{&class{name: "A"}, "A"},
		{&instance{class: &class{name: "A"}}, "A instance"},
		{&function{declaration: &fnStmt{name: &token{lexeme: "f"}}}, "<fn f>"},
	}
	for _, test := range stringTests {
		if got := stringify(test.value); got != test.expected {
			t.Errorf("stringify(%#v) should be %q instead of %q", test.value, test.expected, got)
		}
	}
}
