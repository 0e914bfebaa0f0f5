package lambdatron

import (
	_ "embed"
	"io"
	"log"
	"math/rand"
	"os"
	"time"
)

//go:embed stdlib/core.lt
var coreSource string

// EvalOutcome is the result of one Evaluate call: exactly one of Value,
// ReadErr, or EvalErr is set. Err mirrors whichever error occurred, so
// callers that don't care about the family can test it alone.
type EvalOutcome struct {
	Value   *Value
	ReadErr *ReadError
	EvalErr *EvalError
	Err     error
}

func successOutcome(v *Value) EvalOutcome { return EvalOutcome{Value: v} }

func readFailure(e *ReadError) EvalOutcome { return EvalOutcome{ReadErr: e, Err: e} }

func evalFailure(e *EvalError) EvalOutcome { return EvalOutcome{EvalErr: e, Err: e} }

// Interpreter owns the root context (and with it the intern tables), the
// output sink `.print` writes to, and the RNG behind `.rand`. It is
// strictly single-threaded: callers must not share one instance across
// goroutines.
type Interpreter struct {
	root   *Context
	out    io.Writer
	rng    *rand.Rand
	debug  bool
	logger *log.Logger
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithOutput redirects the `.print` sink. The default writes to
// standard output.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) { in.out = w }
}

// WithDebug enables internal debug logging.
func WithDebug(enabled bool) Option {
	return func(in *Interpreter) { in.debug = enabled }
}

// WithRandSeed fixes the seed behind `.rand`, for reproducible runs.
func WithRandSeed(seed int64) Option {
	return func(in *Interpreter) { in.rng = rand.New(rand.NewSource(seed)) }
}

// New builds an interpreter and loads the embedded standard library
// into its root context. A standard-library failure is returned rather
// than panicking, so embedders and the CLI can decide how to exit.
func New(opts ...Option) (*Interpreter, error) {
	in := &Interpreter{
		out:    os.Stdout,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: log.New(os.Stderr, "[lambdatron] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(in)
	}
	in.root = NewRootContext()
	if err := in.loadStandardLibrary(); err != nil {
		return nil, err
	}
	return in, nil
}

// Must is a helper that wraps New and panics on error, for embedders
// that treat a standard-library failure as unrecoverable.
func Must(in *Interpreter, err error) *Interpreter {
	if err != nil {
		panic(err)
	}
	return in
}

func (in *Interpreter) logf(format string, args ...any) {
	if in.debug {
		in.logger.Printf(format, args...)
	}
}

// SetOutput swaps the `.print` sink on a live interpreter.
func (in *Interpreter) SetOutput(w io.Writer) { in.out = w }

func (in *Interpreter) writeOutput(text string) {
	io.WriteString(in.out, text)
}

// Reset discards every binding and interned name, rebuilds the root
// context, and reloads the standard library.
func (in *Interpreter) Reset() {
	in.root = NewRootContext()
	if err := in.loadStandardLibrary(); err != nil {
		// The embedded library is fixed at build time; a failure here is
		// a bug in the library source itself.
		in.logger.Printf("standard library failed to reload: %v", err)
	}
}

func (in *Interpreter) loadStandardLibrary() error {
	in.logf("loading standard library")
	outcome := in.Evaluate(coreSource)
	return outcome.Err
}

// Evaluate runs every top-level form in source against the root
// context, left to right, and returns the last form's value or the
// first failure. A `def` that succeeded before a later failure in the
// same source string persists; there is no rollback.
func (in *Interpreter) Evaluate(source string) EvalOutcome {
	tokens, rerr := lex(source)
	if rerr != nil {
		return readFailure(rerr)
	}
	forms, rerr := parseProgram(tokens, in.root)
	if rerr != nil {
		return readFailure(rerr)
	}
	in.logf("evaluating %d top-level form(s)", len(forms))
	result := Nil
	for _, form := range forms {
		expanded, rerr := expandReaderMacros(form)
		if rerr != nil {
			return readFailure(rerr)
		}
		v, eerr := in.eval(expanded, in.root)
		if eerr != nil {
			return evalFailure(eerr)
		}
		if v.Kind == KindRecurSentinel {
			return evalFailure(recurMisuse("top-level form"))
		}
		result = v
	}
	return successOutcome(result)
}
