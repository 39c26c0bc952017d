package internal

import (
	"errors"
	"fmt"
	"io"
)

// compileError is a lexer, parser or resolver diagnostic. None of them stop
// the phase that found it, but any of them prevents the program from running.
type compileError struct {
	err   error
	line  int
	where string
}

func (e compileError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.line, e.where, e.err)
}

func (e compileError) Unwrap() error {
	return e.err
}

// runtimeError aborts the current top level execution. It is raised with
// panic and recovered once in exec.interpret.
type runtimeError struct {
	token *token
	err   error
}

func (e *runtimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.err, e.token.line)
}

func (e *runtimeError) Unwrap() error {
	return e.err
}

func runtimeErr(err error, tk *token) {
	panic(&runtimeError{token: tk, err: err})
}

// detailedError prints a message built for one occurrence while still
// matching its sentinel with errors.Is.
type detailedError struct {
	msg  string
	kind error
}

func (e *detailedError) Error() string {
	return e.msg
}

func (e *detailedError) Unwrap() error {
	return e.kind
}

func withDetail(kind error, format string, a ...interface{}) error {
	return &detailedError{msg: fmt.Sprintf(format, a...), kind: kind}
}

// interpreterState stores the state of a single run: the source, its tokens
// and statements, and every diagnostic reported along the way.
type interpreterState struct {
	source string
	tokens []token
	stmts  []stmt

	errors       []compileError
	runtimeError *runtimeError

	printer IPrinter
	errOut  io.Writer
}

func newInterpreterState(source string, p IPrinter, errOut io.Writer) *interpreterState {
	return &interpreterState{
		source:  source,
		errors:  make([]compileError, 0),
		printer: p,
		errOut:  errOut,
	}
}

func (s *interpreterState) report(e compileError) {
	s.errors = append(s.errors, e)
	s.printer.Fprintln(s.errOut, e.Error())
}

func (s *interpreterState) lexError(err error, line int) {
	s.report(compileError{err: err, line: line})
}

func (s *interpreterState) tokenError(err error, tk *token) {
	where := " at '" + tk.lexeme + "'"
	if tk.token == tkEOF {
		where = " at end"
	}
	s.report(compileError{err: err, line: tk.line, where: where})
}

func (s *interpreterState) reportRuntime(err *runtimeError) {
	s.runtimeError = err
	s.printer.Fprintln(s.errOut, err.Error())
}

// Valid returns true if no compile time error was reported
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character.")
var errUnterminatedString = errors.New("Unterminated string.")
var errNumberRange = errors.New("Number literal out of range.")

// Parser errors
var errExpectedExpr = errors.New("Expect expression.")
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errUnclosedArguments = errors.New("Expect ')' after arguments.")
var errUnclosedParams = errors.New("Expect ')' after parameters.")
var errUnclosedBlock = errors.New("Expect '}' after block.")
var errUnclosedClass = errors.New("Expect '}' after class body.")
var errExpectedClassName = errors.New("Expect class name.")
var errExpectedSuperclassName = errors.New("Expect superclass name.")
var errExpectedClassBody = errors.New("Expect '{' before class body.")
var errExpectedFunctionName = errors.New("Expect function name.")
var errExpectedMethodName = errors.New("Expect method name.")
var errExpectedParenAfterName = errors.New("Expect '(' after name.")
var errExpectedFunctionBody = errors.New("Expect '{' before body.")
var errExpectedParamName = errors.New("Expect parameter name.")
var errExpectedIdentifier = errors.New("Expect variable name.")
var errExpectedProp = errors.New("Expect property name after '.'.")
var errExpectedDot = errors.New("Expect '.' after 'super'.")
var errExpectedSuperMethod = errors.New("Expect superclass method name.")
var errExpectedSemicolonValue = errors.New("Expect ';' after value.")
var errExpectedSemicolonExpr = errors.New("Expect ';' after expression.")
var errExpectedSemicolonVar = errors.New("Expect ';' after variable declaration.")
var errExpectedSemicolonCond = errors.New("Expect ';' after loop condition.")
var errExpectedSemicolonReturn = errors.New("Expect ';' after return value.")
var errExpectedParenAfterIf = errors.New("Expect '(' after 'if'.")
var errExpectedParenAfterCond = errors.New("Expect ')' after condition.")
var errExpectedParenAfterWhile = errors.New("Expect '(' after 'while'.")
var errExpectedParenAfterFor = errors.New("Expect '(' after 'for'.")
var errExpectedParenAfterClauses = errors.New("Expect ')' after for clauses.")
var errInvalidAssignment = errors.New("Invalid assignment target.")
var errMaxArguments = errors.New("Can't have more than 255 arguments.")
var errMaxParameters = errors.New("Can't have more than 255 parameters.")

// Resolver errors
var errAlreadyDeclared = errors.New("Already a variable with this name in this scope.")
var errSelfInitializer = errors.New("Can't read local variable in its own initializer.")
var errTopLevelReturn = errors.New("Can't return from top-level code.")
var errInitializerReturn = errors.New("Can't return a value from an initializer.")
var errThisOutsideClass = errors.New("Can't use 'this' outside of a class.")
var errSuperOutsideClass = errors.New("Can't use 'super' outside of a class.")
var errSuperWithoutSuperclass = errors.New("Can't use 'super' in a class with no superclass.")
var errInheritFromSelf = errors.New("A class can't inherit from itself.")

// Runtime errors
var errOperandNumber = errors.New("Operand must be a number.")
var errOperandsNumbers = errors.New("Operands must be numbers.")
var errOperandsAdd = errors.New("Operands must be two numbers or two strings.")
var errOnlyCallable = errors.New("Can only call functions and classes.")
var errInvalidNumberArguments = errors.New("Wrong number of arguments.")
var errUndefinedVar = errors.New("Undefined variable.")
var errUndefinedProp = errors.New("Undefined property.")
var errOnlyInstanceProps = errors.New("Only instances have properties.")
var errOnlyInstanceFields = errors.New("Only instances have fields.")
var errExpectedClass = errors.New("Superclass must be a class.")
var errStackOverflow = errors.New("Stack overflow.")
