package lambdatron

func init() {
	registerBuiltin(".+", arithBuiltin(".+",
		func(a, b int64) (int64, *EvalError) { return a + b, nil },
		func(a, b float64) (float64, *EvalError) { return a + b, nil }))
	registerBuiltin(".-", arithBuiltin(".-",
		func(a, b int64) (int64, *EvalError) { return a - b, nil },
		func(a, b float64) (float64, *EvalError) { return a - b, nil }))
	registerBuiltin(".*", arithBuiltin(".*",
		func(a, b int64) (int64, *EvalError) { return a * b, nil },
		func(a, b float64) (float64, *EvalError) { return a * b, nil }))
	registerBuiltin("./", arithBuiltin("./",
		func(a, b int64) (int64, *EvalError) {
			if b == 0 {
				return 0, newEvalError(ErrDivideByZero, "./", "division by zero")
			}
			return a / b, nil
		},
		func(a, b float64) (float64, *EvalError) {
			if b == 0 {
				return 0, newEvalError(ErrDivideByZero, "./", "division by zero")
			}
			return a / b, nil
		}))

	registerBuiltin(".<", compareBuiltin(".<",
		func(a, b int64) bool { return a < b },
		func(a, b float64) bool { return a < b }))
	registerBuiltin(".<=", compareBuiltin(".<=",
		func(a, b int64) bool { return a <= b },
		func(a, b float64) bool { return a <= b }))
	registerBuiltin(".>", compareBuiltin(".>",
		func(a, b int64) bool { return a > b },
		func(a, b float64) bool { return a > b }))
	registerBuiltin(".>=", compareBuiltin(".>=",
		func(a, b int64) bool { return a >= b },
		func(a, b float64) bool { return a >= b }))

	registerBuiltin(".rand", builtinRand)
}

func isNumber(v *Value) bool { return v.Kind == KindInt || v.Kind == KindFloat }

func numericArgs(sender string, args []*Value) (*Value, *Value, *EvalError) {
	if len(args) != 2 {
		return nil, nil, arityError(sender, len(args), "2")
	}
	if !isNumber(args[0]) {
		return nil, nil, wrongType(sender, args[0], "number")
	}
	if !isNumber(args[1]) {
		return nil, nil, wrongType(sender, args[1], "number")
	}
	return args[0], args[1], nil
}

// arithBuiltin wraps a two-argument arithmetic primitive with the
// promotion rule: Int⊕Int stays Int, a Float operand
// promotes the whole operation to Float.
func arithBuiltin(sender string, iop func(a, b int64) (int64, *EvalError), fop func(a, b float64) (float64, *EvalError)) builtinFn {
	return func(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
		a, b, err := numericArgs(sender, args)
		if err != nil {
			return nil, err
		}
		if a.Kind == KindInt && b.Kind == KindInt {
			n, err := iop(a.Int, b.Int)
			if err != nil {
				return nil, err
			}
			return IntValue(n), nil
		}
		f, err := fop(numericValue(a), numericValue(b))
		if err != nil {
			return nil, err
		}
		return FloatValue(f), nil
	}
}

func compareBuiltin(sender string, iop func(a, b int64) bool, fop func(a, b float64) bool) builtinFn {
	return func(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
		a, b, err := numericArgs(sender, args)
		if err != nil {
			return nil, err
		}
		if a.Kind == KindInt && b.Kind == KindInt {
			return boolValue(iop(a.Int, b.Int)), nil
		}
		return boolValue(fop(numericValue(a), numericValue(b))), nil
	}
}

func builtinRand(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) != 0 {
		return nil, arityError(".rand", len(args), "0")
	}
	return FloatValue(in.rng.Float64()), nil
}
