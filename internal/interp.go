package internal

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Result reports which kind of error, if any, a run produced
type Result struct {
	HadError        bool
	HadRuntimeError bool
}

// ExitCode maps the result to the process exit code: 64 for compile time
// errors, 70 for runtime errors.
func (r Result) ExitCode() int {
	if r.HadError {
		return 64
	}
	if r.HadRuntimeError {
		return 70
	}
	return 0
}

type options struct {
	logger *logrus.Logger
	errOut io.Writer
}

// Option configures a Session
type Option func(*options)

// WithLogger sets the logger used to trace the pipeline phases
func WithLogger(logger *logrus.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithErrorOutput sets the writer diagnostics are printed to. Defaults to os.Stderr.
func WithErrorOutput(w io.Writer) Option {
	return func(o *options) {
		o.errOut = w
	}
}

func buildOptions(opts []Option) options {
	o := options{errOut: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logrus.New()
		o.logger.SetLevel(logrus.WarnLevel)
	}
	return o
}

// Session keeps one global environment and one resolution table across
// runs, so declarations made by a run are visible to the following ones.
// A Session is not safe for concurrent use.
type Session struct {
	exec    *exec
	printer IPrinter
	opts    options
	log     *logrus.Entry

	hadRuntimeError bool
}

// NewSession creates a session printing program output to p
func NewSession(p IPrinter, opts ...Option) *Session {
	o := buildOptions(opts)
	return &Session{
		exec:    newExec(nil),
		printer: p,
		opts:    o,
		log:     o.logger.WithField("component", "session"),
	}
}

// Run scans, parses, resolves and executes source. Compile time errors
// skip execution. Runtime errors stay reported for the rest of the session.
func (s *Session) Run(source string) Result {
	state := s.front(source)
	if !state.Valid() {
		return Result{HadError: true, HadRuntimeError: s.hadRuntimeError}
	}

	s.log.WithField("phase", "resolve").Debug("resolving")
	newResolver(state, s.exec.locals).resolve(state.stmts)
	if !state.Valid() {
		s.log.WithFields(logrus.Fields{
			"phase":  "resolve",
			"errors": len(state.errors),
		}).Debug("resolution failed")
		return Result{HadError: true, HadRuntimeError: s.hadRuntimeError}
	}

	s.log.WithFields(logrus.Fields{
		"phase":  "run",
		"locals": len(s.exec.locals),
	}).Debug("running")
	s.exec.state = state
	if !s.exec.interpret(state.stmts) {
		s.hadRuntimeError = true
		s.log.WithField("phase", "run").Debug("runtime error")
	}

	return Result{HadRuntimeError: s.hadRuntimeError}
}

// front runs the lexer and the parser
func (s *Session) front(source string) *interpreterState {
	state := newInterpreterState(source, s.printer, s.opts.errOut)

	lexer := &lexer{
		line:  1,
		state: state,
	}
	parser := &parser{
		state: state,
	}

	s.log.WithField("phase", "scan").Debug("scanning")
	lexer.scan()

	s.log.WithFields(logrus.Fields{
		"phase":  "parse",
		"tokens": len(state.tokens),
	}).Debug("parsing")
	parser.parse()

	s.log.WithFields(logrus.Fields{
		"phase":      "parse",
		"statements": len(state.stmts),
		"errors":     len(state.errors),
	}).Debug("parsed")
	return state
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter, opts ...Option) Result {
	return NewSession(p, opts...).Run(source)
}

// PrintTree parses source and prints the syntax tree of every top level
// statement without running it.
func PrintTree(source string, p IPrinter, opts ...Option) Result {
	s := NewSession(p, opts...)
	state := s.front(source)
	if !state.Valid() {
		return Result{HadError: true}
	}
	state.printTree()
	return Result{}
}
