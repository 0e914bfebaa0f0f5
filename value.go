package lambdatron

// Kind tags the variant a Value holds.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindChar
	KindStr
	KindKeyword
	KindSymbol
	KindList
	KindVector
	KindMap
	KindFunction
	KindBuiltIn
	KindSpecial
	KindMacro
	KindReaderMacro
	KindRecurSentinel
	KindRegex
)

var kindNames = map[Kind]string{
	KindNil:           "nil",
	KindBool:          "bool",
	KindInt:           "int",
	KindFloat:         "float",
	KindChar:          "char",
	KindStr:           "string",
	KindKeyword:       "keyword",
	KindSymbol:        "symbol",
	KindList:          "list",
	KindVector:        "vector",
	KindMap:           "map",
	KindFunction:      "function",
	KindBuiltIn:       "builtin",
	KindSpecial:       "special",
	KindMacro:         "macro",
	KindReaderMacro:   "reader-macro",
	KindRecurSentinel: "recur",
	KindRegex:         "regex",
}

// ReaderMacroKind enumerates the four reader-macro markers.
type ReaderMacroKind int

const (
	RMQuote ReaderMacroKind = iota
	RMSyntaxQuote
	RMUnquote
	RMUnquoteSplice
)

// consCell is one link of a reference-shared, persistent singly linked
// list. A nil *consCell denotes the empty list.
type consCell struct {
	head *Value
	tail *consCell
}

// Arity is one fixed/variadic signature of a Function or Macro.
type Arity struct {
	Params        []int // interned symbol ids, positional
	Variadic      bool
	VariadicParam int // interned symbol id bound to the trailing args list
	Body          []*Value
}

// Function is a closure: a set of arities plus the lexical context
// captured at the time the `fn` form was evaluated, and an optional
// self-reference name for recursive definitions.
type Function struct {
	Name     string
	NameID   int // interned id of Name, -1 when anonymous
	Arities  []*Arity
	Captured *Context
}

// Macro holds an unhygienic macro's single arity and name. It captures
// no context: expansion runs in the caller's context.
type Macro struct {
	Name          string
	Params        []int
	Variadic      bool
	VariadicParam int
	Body          []*Value
}

// Value is the tagged union threaded through the reader, the syntax-quote
// expander, and the evaluator. Only the fields relevant to Kind are
// meaningful; the rest are zero.
type Value struct {
	Kind Kind

	Bool  bool
	Int   int64
	Float float64
	Char  rune
	Str   string

	// Symbol/Keyword: SymID is the interned identity used for equality;
	// SymName is cached alongside it so printing never needs a context.
	SymID   int
	SymName string

	list *consCell // KindList

	Vector []*Value // KindVector

	m *orderedMap // KindMap

	Fn *Function // KindFunction

	BuiltinName string // KindBuiltIn
	SpecialName string // KindSpecial

	Macro *Macro // KindMacro

	RMKind  ReaderMacroKind // KindReaderMacro
	RMInner *Value

	RecurArgs []*Value // KindRecurSentinel
}

// Nil is the singleton nil value.
var Nil = &Value{Kind: KindNil}

// True and False are the singleton boolean values.
var True = &Value{Kind: KindBool, Bool: true}
var False = &Value{Kind: KindBool, Bool: false}

func boolValue(b bool) *Value {
	if b {
		return True
	}
	return False
}

// IntValue constructs an Int Value.
func IntValue(i int64) *Value { return &Value{Kind: KindInt, Int: i} }

// FloatValue constructs a Float Value.
func FloatValue(f float64) *Value { return &Value{Kind: KindFloat, Float: f} }

// CharValue constructs a Char Value.
func CharValue(r rune) *Value { return &Value{Kind: KindChar, Char: r} }

// StrValue constructs a Str Value.
func StrValue(s string) *Value { return &Value{Kind: KindStr, Str: s} }

// EmptyList is the empty List value, shared by every caller.
var EmptyList = &Value{Kind: KindList, list: nil}

// NewList builds a List value from a slice, head first.
func NewList(items ...*Value) *Value {
	var cell *consCell
	for i := len(items) - 1; i >= 0; i-- {
		cell = &consCell{head: items[i], tail: cell}
	}
	return &Value{Kind: KindList, list: cell}
}

// Cons prepends head onto an existing List value, sharing its tail.
func Cons(head *Value, tail *Value) *Value {
	var tc *consCell
	if tail.Kind == KindList {
		tc = tail.list
	}
	return &Value{Kind: KindList, list: &consCell{head: head, tail: tc}}
}

// Items materializes a List value into a Go slice (for callers that need
// random access or an up-front length).
func (v *Value) Items() []*Value {
	if v.Kind != KindList {
		panic("Items called on non-list Value")
	}
	var out []*Value
	for c := v.list; c != nil; c = c.tail {
		out = append(out, c.head)
	}
	return out
}

// IsEmptyList reports whether v is the empty list.
func (v *Value) IsEmptyList() bool {
	return v.Kind == KindList && v.list == nil
}

// ListHead returns the first element of a non-empty list.
func (v *Value) ListHead() *Value { return v.list.head }

// ListTail returns the rest of a list as a List value (possibly empty).
func (v *Value) ListTail() *Value {
	if v.list == nil {
		return EmptyList
	}
	return &Value{Kind: KindList, list: v.list.tail}
}

// NewVector builds a Vector value.
func NewVector(items ...*Value) *Value {
	cp := make([]*Value, len(items))
	copy(cp, items)
	return &Value{Kind: KindVector, Vector: cp}
}

// NewFunction builds a Function value. nameID is -1 for anonymous
// functions.
func NewFunction(name string, nameID int, arities []*Arity, captured *Context) *Value {
	return &Value{Kind: KindFunction, Fn: &Function{Name: name, NameID: nameID, Arities: arities, Captured: captured}}
}

// NewMacro builds a Macro value.
func NewMacro(m *Macro) *Value { return &Value{Kind: KindMacro, Macro: m} }

// NewBuiltin builds a BuiltIn value referencing a registered primitive.
func NewBuiltin(name string) *Value { return &Value{Kind: KindBuiltIn, BuiltinName: name} }

// NewSpecial builds a Special value referencing a registered special form.
func NewSpecial(name string) *Value { return &Value{Kind: KindSpecial, SpecialName: name} }

// NewReaderMacro builds a ReaderMacro marker value.
func NewReaderMacro(kind ReaderMacroKind, inner *Value) *Value {
	return &Value{Kind: KindReaderMacro, RMKind: kind, RMInner: inner}
}

// NewRecurSentinel builds a RecurSentinel carrying the rebinding values.
func NewRecurSentinel(args []*Value) *Value {
	return &Value{Kind: KindRecurSentinel, RecurArgs: args}
}

// IsTruthy reports the dialect's truthiness rule: everything but nil
// and false is truthy.
func (v *Value) IsTruthy() bool {
	if v.Kind == KindNil {
		return false
	}
	if v.Kind == KindBool {
		return v.Bool
	}
	return true
}

func (v *Value) String() string { return Print(v) }

func (v *Value) typeName() string { return kindNames[v.Kind] }

func wrongType(sender string, v *Value, want string) *EvalError {
	return invalidArgError(sender, "expected %s, got %s", want, v.typeName())
}
