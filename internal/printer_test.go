package internal

import (
	"reflect"
	"strings"
	"testing"
)

func TestPrinterRoundTrip(t *testing.T) {
	expressions := []string{
		`1`,
		`1.50`,
		`"hello world"`,
		`nil`,
		`true and !false`,
		`-(1 + 2) * 3`,
		`((a))`,
		`a = b = c or d`,
		`1 - 2 - 3`,
		`1 - (2 - 3)`,
		`f(1, "a", g())(x).y`,
		`a.b.c = d.e`,
		`x >= 1 == y < 2`,
		`- -1`,
		`!!a`,
		"1" + strings.Repeat("0", 308),
		"0." + strings.Repeat("0", 20) + "5",
	}
	for _, source := range expressions {
		original := parseSource(t, "print "+source+";")
		if !original.Valid() {
			t.Errorf("%q: unexpected errors %v", source, original.errors)
			continue
		}
		printed := formatExpr(original.stmts[0].(*printStmt).expression)

		reparsed := parseSource(t, "print "+printed+";")
		if !reparsed.Valid() {
			t.Errorf("%q printed as %q which does not parse: %v", source, printed, reparsed.errors)
			continue
		}
		if !reflect.DeepEqual(original.stmts, reparsed.stmts) {
			t.Errorf("%q printed as %q which parses to a different tree", source, printed)
		}
		if again := formatExpr(reparsed.stmts[0].(*printStmt).expression); again != printed {
			t.Errorf("%q: printing is not stable, %q then %q", source, printed, again)
		}
	}
}

func TestPrinterMethodsInClassTree(t *testing.T) {
	state := parseSource(t, `class A { m() { print this.x; } }`)
	class := state.stmts[0].(*classStmt)
	if got := formatStmt(class.methods[0]); got != "(fun m () (print this.x))" {
		t.Errorf("unexpected method tree %s", got)
	}
}

func TestPrintTree(t *testing.T) {
	tp := &testPrinter{}
	res := PrintTree("var a = 1;\nwhile (a < 3) a = a + 1;", tp)
	if res.HadError || res.HadRuntimeError {
		t.Fatalf("unexpected result %+v", res)
	}
	expected := "(var a 1)\n(while a < 3 (; a = a + 1))\n"
	if tp.printed != expected {
		t.Errorf("tree should be %q instead of %q", expected, tp.printed)
	}

	// Nothing runs
	tp.Reset()
	PrintTree(`print 1;`, tp)
	if tp.printed != "(print 1)\n" {
		t.Errorf("unexpected output %q", tp.printed)
	}

	tp.Reset()
	res = PrintTree(`print ;`, tp)
	if !res.HadError || res.ExitCode() != 64 {
		t.Errorf("expected a compile error, got %+v", res)
	}
	if tp.printed != "[line 1] Error at ';': Expect expression.\n" {
		t.Errorf("unexpected output %q", tp.printed)
	}
}
