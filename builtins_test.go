package lambdatron

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmeticPromotion(t *testing.T) {
	interp := newTestInterp(t)
	tests := []struct {
		src  string
		want string
	}{
		{"(.+ 1 2)", "3"},
		{"(.+ 1 2.0)", "3.0"},
		{"(.+ 1.5 2)", "3.5"},
		{"(.- 8 6)", "2"},
		{"(.* 2 4)", "8"},
		{"(./ 7 2)", "3"},
		{"(./ -7 2)", "-3"},
		{"(./ 7.0 2)", "3.5"},
		{"(./ 7 2.0)", "3.5"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			require.Equal(t, tt.want, Print(evalOK(t, interp, tt.src)))
		})
	}
}

func TestDivideByZero(t *testing.T) {
	interp := newTestInterp(t)
	for _, src := range []string{"(./ 1 0)", "(./ 1.0 0.0)"} {
		err := evalFail(t, interp, src)
		require.Equal(t, ErrDivideByZero, err.Kind, src)
	}
}

func TestArithmeticArgumentValidation(t *testing.T) {
	interp := newTestInterp(t)
	err := evalFail(t, interp, `(.+ 1 "x")`)
	require.Equal(t, ErrInvalidArgument, err.Kind)
	err = evalFail(t, interp, "(.+ 1)")
	require.Equal(t, ErrArity, err.Kind)
}

func TestComparisons(t *testing.T) {
	interp := newTestInterp(t)
	tests := []struct {
		src  string
		want string
	}{
		{"(.< 1 2)", "true"},
		{"(.< 2 1)", "false"},
		{"(.<= 2 2)", "true"},
		{"(.> 3 2)", "true"},
		{"(.>= 2 3)", "false"},
		{"(.< 1 1.5)", "true"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			require.Equal(t, tt.want, Print(evalOK(t, interp, tt.src)))
		})
	}
}

func TestEqualityTypeSensitivity(t *testing.T) {
	interp := newTestInterp(t)
	// .= requires type match; .== compares numerically across Int/Float.
	require.Equal(t, "false", Print(evalOK(t, interp, "(.= 1 1.0)")))
	require.Equal(t, "true", Print(evalOK(t, interp, "(.== 1 1.0)")))
	require.Equal(t, "true", Print(evalOK(t, interp, "(.= 1 1)")))
	require.Equal(t, "true", Print(evalOK(t, interp, `(.= "a" "a")`)))
	require.Equal(t, "true", Print(evalOK(t, interp, "(.= :k :k)")))
	require.Equal(t, "false", Print(evalOK(t, interp, "(.= :k 'k)")))
	// Lists and vectors compare elementwise.
	require.Equal(t, "true", Print(evalOK(t, interp, "(.= '(1 2) [1 2])")))
	require.Equal(t, "true", Print(evalOK(t, interp, "(.= {:a 1} {:a 1})")))
	require.Equal(t, "false", Print(evalOK(t, interp, "(.= {:a 1} {:a 2})")))
	// Functions compare by identity.
	require.Equal(t, "true", Print(evalOK(t, interp, "(def idf (fn [x] x)) (.= idf idf)")))
	require.Equal(t, "false", Print(evalOK(t, interp, "(.= (fn [x] x) (fn [x] x))")))
	// Regex literals compare by pattern.
	require.Equal(t, "true", Print(evalOK(t, interp, `(.= #"a+" #"a+")`)))
	require.Equal(t, "false", Print(evalOK(t, interp, `(.= #"a+" #"b+")`)))
}

func TestSeqBuiltins(t *testing.T) {
	interp := newTestInterp(t)
	tests := []struct {
		src  string
		want string
	}{
		{"(.seq nil)", "nil"},
		{"(.seq ())", "nil"},
		{"(.seq [])", "nil"},
		{"(.seq '(1 2))", "(1 2)"},
		{"(.seq [1 2])", "(1 2)"},
		{`(.seq "ab")`, `(\a \b)`},
		{"(.seq {:a 1})", "([:a 1])"},
		{"(.first nil)", "nil"},
		{"(.first ())", "nil"},
		{"(.first '(1 2))", "1"},
		{"(.first [1 2])", "1"},
		{"(.first {:a 1})", "[:a 1]"},
		{"(.rest nil)", "()"},
		{"(.rest '(1))", "()"},
		{"(.rest '(1 2 3))", "(2 3)"},
		{"(.next '(1))", "nil"},
		{"(.next '(1 2))", "(2)"},
		{"(.concat '(1 2) [3] nil \"x\")", `(1 2 3 \x)`},
		{"(.concat)", "()"},
		{"(.list 1 2 3)", "(1 2 3)"},
		{"(.list)", "()"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			require.Equal(t, tt.want, Print(evalOK(t, interp, tt.src)))
		})
	}
}

func TestConjPolymorphism(t *testing.T) {
	interp := newTestInterp(t)
	tests := []struct {
		src  string
		want string
	}{
		{"(.conj '(2 3) 1)", "(1 2 3)"},
		{"(.conj [1 2] 3)", "[1 2 3]"},
		{"(.conj {:a 1} [:b 2])", "{:a 1, :b 2}"},
		{"(.conj {:a 1} [:a 2])", "{:a 2}"},
		{"(.conj nil 1)", "(1)"},
		{`(.conj "bc" \a)`, `(\a \b \c)`},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			require.Equal(t, tt.want, Print(evalOK(t, interp, tt.src)))
		})
	}
	err := evalFail(t, interp, "(.conj {:a 1} 2)")
	require.Equal(t, ErrInvalidArgument, err.Kind)
}

func TestReduce(t *testing.T) {
	interp := newTestInterp(t)
	require.Equal(t, "10", Print(evalOK(t, interp, "(.reduce .+ '(1 2 3 4))")))
	require.Equal(t, "20", Print(evalOK(t, interp, "(.reduce .+ 10 '(1 2 3 4))")))
	require.Equal(t, "5", Print(evalOK(t, interp, "(.reduce .+ 5 ())")))
	require.Equal(t, "7", Print(evalOK(t, interp, "(.reduce .+ '(7))")))
	// User functions fold too.
	require.Equal(t, "(3 2 1)", Print(evalOK(t, interp, "(.reduce (fn [acc x] (cons x acc)) () '(1 2 3))")))
}

func TestCountNthStr(t *testing.T) {
	interp := newTestInterp(t)
	require.Equal(t, "0", Print(evalOK(t, interp, "(.count nil)")))
	require.Equal(t, "3", Print(evalOK(t, interp, "(.count '(1 2 3))")))
	require.Equal(t, "2", Print(evalOK(t, interp, "(.count [1 2])")))
	require.Equal(t, "2", Print(evalOK(t, interp, `(.count "ab")`)))
	require.Equal(t, "1", Print(evalOK(t, interp, "(.count {:a 1})")))

	require.Equal(t, "20", Print(evalOK(t, interp, "(.nth '(10 20 30) 1)")))
	require.Equal(t, "99", Print(evalOK(t, interp, "(.nth [1] 5 99)")))
	err := evalFail(t, interp, "(.nth [1] 5)")
	require.Equal(t, ErrOutOfBounds, err.Kind)

	require.Equal(t, `"a1:k"`, Print(evalOK(t, interp, `(.str "a" 1 :k)`)))
	require.Equal(t, `""`, Print(evalOK(t, interp, "(.str nil)")))
}

func TestApplyBuiltin(t *testing.T) {
	interp := newTestInterp(t)
	require.Equal(t, "6", Print(evalOK(t, interp, "(.apply .+ '(2 4))")))
	require.Equal(t, "9", Print(evalOK(t, interp, "(.apply .+ 5 [4])")))
	require.Equal(t, "(1 2 3)", Print(evalOK(t, interp, "(.apply .list 1 '(2 3))")))
}

func TestMetaType(t *testing.T) {
	interp := newTestInterp(t)
	tests := []struct {
		src  string
		want string
	}{
		{"(.meta-type nil)", ":nil"},
		{"(.meta-type 1)", ":int"},
		{"(.meta-type 1.5)", ":float"},
		{`(.meta-type "s")`, ":string"},
		{"(.meta-type :k)", ":keyword"},
		{"(.meta-type 'a)", ":symbol"},
		{"(.meta-type '(1))", ":list"},
		{"(.meta-type [1])", ":vector"},
		{"(.meta-type {})", ":map"},
		{"(.meta-type (fn [x] x))", ":function"},
		{"(.meta-type .+)", ":builtin"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			require.Equal(t, tt.want, Print(evalOK(t, interp, tt.src)))
		})
	}
}

func TestRandRange(t *testing.T) {
	interp := newTestInterp(t)
	for i := 0; i < 20; i++ {
		v := evalOK(t, interp, "(.rand)")
		require.Equal(t, KindFloat, v.Kind)
		require.GreaterOrEqual(t, v.Float, 0.0)
		require.Less(t, v.Float, 1.0)
	}
}

func TestEveryLexableNameIsRegistered(t *testing.T) {
	// The lexer's classification tables and the evaluator's registries
	// must agree, or a token would classify as BuiltIn/Special and then
	// fail dispatch.
	for _, name := range BuiltinNames {
		if _, ok := builtins[name]; !ok {
			t.Errorf("lexable built-in %q has no registered implementation", name)
		}
	}
	for _, name := range SpecialFormNames {
		if _, ok := specialForms[name]; !ok {
			t.Errorf("lexable special form %q has no registered implementation", name)
		}
	}
}

func TestPrintSink(t *testing.T) {
	var sink captureWriter
	interp, err := New(WithOutput(&sink))
	require.NoError(t, err)
	evalOK(t, interp, `(.print "hello ")`)
	evalOK(t, interp, "(.print 42)")
	evalOK(t, interp, "(.print '(1 2))")
	require.Equal(t, "hello 42(1 2)", sink.String())
}
