package lambdatron

import "testing"

func mustExpand(t *testing.T, ctx *Context, src string) *Value {
	t.Helper()
	form := mustParseOne(t, ctx, src)
	expanded, err := expandReaderMacros(form)
	if err != nil {
		t.Fatalf("expandReaderMacros(%q) failed: %v", src, err)
	}
	return expanded
}

// containsReaderMacro walks a value tree looking for a surviving
// ReaderMacro node (none may remain after expansion).
func containsReaderMacro(v *Value) bool {
	switch v.Kind {
	case KindReaderMacro:
		return true
	case KindList:
		for c := v.list; c != nil; c = c.tail {
			if containsReaderMacro(c.head) {
				return true
			}
		}
	case KindVector:
		for _, e := range v.Vector {
			if containsReaderMacro(e) {
				return true
			}
		}
	case KindMap:
		for _, kv := range v.MapEntries() {
			if containsReaderMacro(kv[0]) || containsReaderMacro(kv[1]) {
				return true
			}
		}
	}
	return false
}

func TestExpandQuote(t *testing.T) {
	ctx := NewRootContext()
	tests := []struct {
		src  string
		want string
	}{
		{"'a", "(quote a)"},
		{"'(1 2)", "(quote (1 2))"},
		{"'(a 'b)", "(quote (a (quote b)))"},
		{"#'a", "(quote a)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := mustExpand(t, ctx, tt.src)
			if Print(got) != tt.want {
				t.Errorf("expand(%q) = %s, want %s", tt.src, Print(got), tt.want)
			}
		})
	}
}

func TestExpandSyntaxQuote(t *testing.T) {
	ctx := NewRootContext()
	tests := []struct {
		src  string
		want string
	}{
		{"`a", "(quote a)"},
		{"`7", "7"},
		{"`:k", ":k"},
		{"`(a b)", "(.seq (.concat (.list (quote a)) (.list (quote b))))"},
		{"`(a ~b)", "(.seq (.concat (.list (quote a)) (.list b)))"},
		{"`(~@a b)", "(.seq (.concat a (.list (quote b))))"},
		{"`[a]", "(.seq (.concat (.list (quote a))))"},
		{"`(a (b))", "(.seq (.concat (.list (quote a)) (.list (.seq (.concat (.list (quote b)))))))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := mustExpand(t, ctx, tt.src)
			if Print(got) != tt.want {
				t.Errorf("expand(%q) = %s, want %s", tt.src, Print(got), tt.want)
			}
		})
	}
}

func TestExpandIdempotence(t *testing.T) {
	ctx := NewRootContext()
	sources := []string{
		"'a", "''a", "`a", "`(a b c)", "`(a ~b ~@c)", "'(a 'b `c)",
		"``(a ~b)", "``(~~a)", "`(a `(b ~c))",
		"(fn [x] `(inc ~x))",
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			got := mustExpand(t, ctx, src)
			if containsReaderMacro(got) {
				t.Errorf("expand(%q) = %s still contains a reader-macro node", src, Print(got))
			}
		})
	}
}

func TestExpandMismatchedUnquote(t *testing.T) {
	ctx := NewRootContext()
	for _, src := range []string{"~a", "~@a", "(f ~a)", "'(~a)"} {
		t.Run(src, func(t *testing.T) {
			form := mustParseOne(t, ctx, src)
			_, err := expandReaderMacros(form)
			if err == nil {
				t.Fatalf("expand(%q) succeeded, want MismatchedReaderMacro", src)
			}
			if err.Kind != ErrMismatchedReaderMacro {
				t.Errorf("expand(%q) error = %v, want MismatchedReaderMacro", src, readErrorNames[err.Kind])
			}
		})
	}
}

func TestSyntaxQuoteExpansionEvaluates(t *testing.T) {
	// The builder tree a syntax-quote expands to evaluates back to the
	// quoted structure with unquoted values substituted.
	interp := newTestInterp(t)
	outcome := interp.Evaluate("(def a 5) (.first (.rest `(x ~a)))")
	if outcome.Err != nil {
		t.Fatalf("evaluate failed: %v", outcome.Err)
	}
	if outcome.Value.Kind != KindInt || outcome.Value.Int != 5 {
		t.Errorf("got %s, want 5", Print(outcome.Value))
	}
}
