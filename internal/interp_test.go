package internal

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestResultExitCode(t *testing.T) {
	tests := []struct {
		result Result
		code   int
	}{
		{Result{}, 0},
		{Result{HadRuntimeError: true}, 70},
		{Result{HadError: true}, 64},
		{Result{HadError: true, HadRuntimeError: true}, 64},
	}
	for _, test := range tests {
		if code := test.result.ExitCode(); code != test.code {
			t.Errorf("%+v: exit code should be %d instead of %d", test.result, test.code, code)
		}
	}
}

func TestSessionKeepsDeclarations(t *testing.T) {
	tp := &testPrinter{}
	session := NewSession(tp)

	session.Run(`var a = 1;`)
	session.Run(`fun inc() { a = a + 1; return a; }`)
	session.Run(`class Box { init(v) { this.v = v; } }`)
	res := session.Run(`print inc(); print Box(inc()).v;`)
	if res.HadError || res.HadRuntimeError {
		t.Fatalf("unexpected result %+v", res)
	}
	if !tp.Equals("2\n3") {
		t.Errorf("unexpected output %q", tp.printed)
	}

	// Locals resolved in an earlier run still point at the right scope
	session.Run(`fun counter() { var n = 0; fun next() { n = n + 1; return n; } return next; }`)
	session.Run(`var c = counter(); c();`)
	session.Run(`print c();`)
	if !tp.Equals("2") {
		t.Errorf("unexpected output %q", tp.printed)
	}
}

func TestSessionErrors(t *testing.T) {
	tp := &testPrinter{}
	session := NewSession(tp)

	res := session.Run(`print ;`)
	if !res.HadError || res.HadRuntimeError {
		t.Errorf("expected a compile error only, got %+v", res)
	}

	// Compile errors do not carry over to the next run
	res = session.Run(`var a = 1;`)
	if res.HadError {
		t.Errorf("compile errors should reset between runs, got %+v", res)
	}

	res = session.Run(`print "before"; print -"x"; print "after";`)
	if !res.HadRuntimeError || res.ExitCode() != 70 {
		t.Errorf("expected a runtime error, got %+v", res)
	}
	expected := "[line 1] Error at ';': Expect expression.\n" +
		"before\n" +
		"Operand of '-' must be a number.\n[line 1]\n"
	if tp.printed != expected {
		t.Errorf("output should be %q instead of %q", expected, tp.printed)
	}
	tp.Reset()

	// A runtime error stays reported, but the session keeps working
	res = session.Run(`print a;`)
	if !res.HadRuntimeError {
		t.Errorf("runtime errors should be sticky, got %+v", res)
	}
	if !tp.Equals("1") {
		t.Errorf("unexpected output %q", tp.printed)
	}

	// The call depth unwinds with the error
	tp.Reset()
	session.Run(`fun loop() { loop(); } loop();`)
	if tp.printed != "Stack overflow.\n[line 1]\n" {
		t.Errorf("unexpected output %q", tp.printed)
	}
	if session.exec.depth != 0 {
		t.Errorf("call depth should be back to 0, got %d", session.exec.depth)
	}
	tp.Reset()
	session.Run(`fun add(a, b) { return a + b; } print add(a, 2);`)
	if !tp.Equals("3") {
		t.Errorf("the session should keep working after a stack overflow, got %q", tp.printed)
	}

	// A compile error discards the whole input
	session.Run(`a = 5; print ;`)
	tp.Reset()
	session.Run(`print a;`)
	if !tp.Equals("1") {
		t.Errorf("a rejected input should not run, got %q", tp.printed)
	}
}

func TestSessionLogsPhases(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	RunSourceWithPrinter(`var a = 1; print a;`, &testPrinter{}, WithLogger(logger))

	phases := make(map[string]bool)
	for _, entry := range hook.AllEntries() {
		if phase, ok := entry.Data["phase"].(string); ok {
			phases[phase] = true
		}
		if entry.Data["component"] != "session" {
			t.Errorf("expected the session component, got %v", entry.Data)
		}
	}
	for _, phase := range []string{"scan", "parse", "resolve", "run"} {
		if !phases[phase] {
			t.Errorf("missing %s phase in %v", phase, phases)
		}
	}

	hook.Reset()
	logger.SetLevel(logrus.WarnLevel)
	RunSourceWithPrinter(`print 1;`, &testPrinter{}, WithLogger(logger))
	if len(hook.AllEntries()) != 0 {
		t.Errorf("expected no entries above debug level, got %d", len(hook.AllEntries()))
	}
}

func TestErrorOutput(t *testing.T) {
	var out bytes.Buffer
	tp := &writerPrinter{}
	RunSourceWithPrinter(`print 1; print nope;`, tp, WithErrorOutput(&out))
	if tp.out.String() != "1\n" {
		t.Errorf("unexpected program output %q", tp.out.String())
	}
	if out.String() != "Undefined variable 'nope'.\n[line 1]\n" {
		t.Errorf("unexpected diagnostics %q", out.String())
	}
}

// writerPrinter prints program output to a buffer and diagnostics to the
// writer it is handed
type writerPrinter struct {
	out bytes.Buffer
}

func (w *writerPrinter) Println(a ...interface{}) (int, error) {
	return fmt.Fprintln(&w.out, a...)
}

func (w *writerPrinter) Fprintln(out io.Writer, a ...interface{}) (int, error) {
	return fmt.Fprintln(out, a...)
}
