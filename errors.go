package lambdatron

import "fmt"

// Pos is a 1-based source location, attached to errors for diagnostics.
type Pos struct {
	Line int
	Col  int
}

// ReadErrorKind enumerates the lexer/parser error variants.
type ReadErrorKind int

const (
	ErrEmptyInput ReadErrorKind = iota
	ErrInvalidCharacter
	ErrInvalidUnicode
	ErrInvalidOctal
	ErrInvalidKeyword
	ErrInvalidDispatchMacro
	ErrInvalidStringEscapeSequence
	ErrNonTerminatedString
	ErrBadStartToken
	ErrMismatchedDelimiter
	ErrMismatchedReaderMacro
	ErrMapKeyValueMismatch
)

var readErrorNames = map[ReadErrorKind]string{
	ErrEmptyInput:                  "EmptyInput",
	ErrInvalidCharacter:            "InvalidCharacter",
	ErrInvalidUnicode:              "InvalidUnicode",
	ErrInvalidOctal:                "InvalidOctal",
	ErrInvalidKeyword:              "InvalidKeyword",
	ErrInvalidDispatchMacro:        "InvalidDispatchMacro",
	ErrInvalidStringEscapeSequence: "InvalidStringEscapeSequence",
	ErrNonTerminatedString:         "NonTerminatedString",
	ErrBadStartToken:               "BadStartToken",
	ErrMismatchedDelimiter:         "MismatchedDelimiter",
	ErrMismatchedReaderMacro:       "MismatchedReaderMacro",
	ErrMapKeyValueMismatch:         "MapKeyValueMismatch",
}

// ReadError is returned by the lexer or parser. It never crosses the
// evaluator boundary as a panic; callers receive it as a plain value
// (errors are values, not panics).
type ReadError struct {
	Kind    ReadErrorKind
	Pos     Pos
	Message string
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("[ReadError %s | Line %d Col %d] %s", readErrorNames[e.Kind], e.Pos.Line, e.Pos.Col, e.Message)
}

func newReadError(kind ReadErrorKind, pos Pos, format string, args ...any) *ReadError {
	return &ReadError{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// EvalErrorKind enumerates the evaluator error variants.
type EvalErrorKind int

const (
	ErrArity EvalErrorKind = iota
	ErrInvalidArgument
	ErrOutOfBounds
	ErrDivideByZero
	ErrInvalidSymbol
	ErrUnbound
	ErrNotEvalable
	ErrRecurMisuse
	ErrCustom
)

var evalErrorNames = map[EvalErrorKind]string{
	ErrArity:           "ArityError",
	ErrInvalidArgument: "InvalidArgumentError",
	ErrOutOfBounds:     "OutOfBoundsError",
	ErrDivideByZero:    "DivideByZeroError",
	ErrInvalidSymbol:   "InvalidSymbolError",
	ErrUnbound:         "UnboundError",
	ErrNotEvalable:     "NotEvalableError",
	ErrRecurMisuse:     "RecurMisuseError",
	ErrCustom:          "CustomError",
}

// EvalError is returned by the evaluator or a built-in/special form. Like
// ReadError, it is a plain value and short-circuits to the outermost
// Evaluate call without unwinding via panic/recover.
type EvalError struct {
	Kind    EvalErrorKind
	Sender  string
	Message string
}

func (e *EvalError) Error() string {
	name := evalErrorNames[e.Kind]
	if e.Sender != "" {
		return fmt.Sprintf("[%s (where: %s)] %s", name, e.Sender, e.Message)
	}
	return fmt.Sprintf("[%s] %s", name, e.Message)
}

func newEvalError(kind EvalErrorKind, sender, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Sender: sender, Message: fmt.Sprintf(format, args...)}
}

func arityError(sender string, got int, want string) *EvalError {
	return newEvalError(ErrArity, sender, "expected %s argument(s), got %d", want, got)
}

func invalidArgError(sender, format string, args ...any) *EvalError {
	return newEvalError(ErrInvalidArgument, sender, format, args...)
}
