package lambdatron

// eval evaluates a post-reader-expansion value against a context frame.
// Errors are values: every path returns
// (result, nil) or (nil, *EvalError), never a panic.
func (in *Interpreter) eval(v *Value, ctx *Context) (*Value, *EvalError) {
	switch v.Kind {
	case KindSymbol:
		return in.resolveSymbol(v, ctx)
	case KindVector:
		out := make([]*Value, len(v.Vector))
		for i, e := range v.Vector {
			r, err := in.eval(e, ctx)
			if err != nil {
				return nil, err
			}
			if r.Kind == KindRecurSentinel {
				return nil, recurMisuse("vector literal")
			}
			out[i] = r
		}
		return NewVector(out...), nil
	case KindMap:
		var kvs []*Value
		for _, kv := range v.MapEntries() {
			k, err := in.eval(kv[0], ctx)
			if err != nil {
				return nil, err
			}
			val, err := in.eval(kv[1], ctx)
			if err != nil {
				return nil, err
			}
			if k.Kind == KindRecurSentinel || val.Kind == KindRecurSentinel {
				return nil, recurMisuse("map literal")
			}
			kvs = append(kvs, k, val)
		}
		return NewMap(kvs...), nil
	case KindList:
		if v.IsEmptyList() {
			return EmptyList, nil
		}
		return in.evalList(v, ctx)
	default:
		// Nil, Bool, Int, Float, Char, Str, Keyword, BuiltIn, Special,
		// Macro, Function, Regex, RecurSentinel: self-evaluating.
		return v, nil
	}
}

func (in *Interpreter) resolveSymbol(v *Value, ctx *Context) (*Value, *EvalError) {
	b, ok := ctx.Lookup(v.SymID)
	if !ok {
		return nil, newEvalError(ErrInvalidSymbol, "", "unable to resolve symbol '%s'", v.SymName)
	}
	switch b.kind {
	case bindingUnbound:
		return nil, newEvalError(ErrUnbound, "", "symbol '%s' is bound but has no value", v.SymName)
	case bindingMacro:
		return b.macro, nil
	default:
		return b.value, nil
	}
}

func (in *Interpreter) evalList(v *Value, ctx *Context) (*Value, *EvalError) {
	items := v.Items()
	head, err := in.eval(items[0], ctx)
	if err != nil {
		return nil, err
	}
	args := items[1:]

	switch head.Kind {
	case KindSpecial:
		fn, ok := specialForms[head.SpecialName]
		if !ok {
			return nil, newEvalError(ErrNotEvalable, head.SpecialName, "unknown special form")
		}
		return fn(in, ctx, args)
	case KindMacro:
		expansion, err := in.expandMacro(head, args, ctx)
		if err != nil {
			return nil, err
		}
		return in.eval(expansion, ctx)
	case KindBuiltIn, KindFunction:
		// Arity mismatch is syntactically detectable, so it fails before
		// any argument evaluates.
		if head.Kind == KindFunction && selectArity(head.Fn, len(args)) == nil {
			return nil, arityError(fnSender(head.Fn), len(args), arityWant(head.Fn))
		}
		evaled, err := in.evalArgs(args, ctx)
		if err != nil {
			return nil, err
		}
		return in.apply(head, evaled, ctx)
	case KindVector:
		evaled, err := in.evalArgs(args, ctx)
		if err != nil {
			return nil, err
		}
		return indexVector(head, evaled)
	case KindMap:
		evaled, err := in.evalArgs(args, ctx)
		if err != nil {
			return nil, err
		}
		return lookupInMap(head, evaled)
	case KindKeyword, KindSymbol:
		evaled, err := in.evalArgs(args, ctx)
		if err != nil {
			return nil, err
		}
		return lookupByKey(head, evaled)
	default:
		return nil, newEvalError(ErrNotEvalable, "", "%s is not evalable in function position", head.typeName())
	}
}

// evalArgs evaluates call arguments left to right. A RecurSentinel
// produced by an argument is a misuse: `recur` is only legal in tail
// position.
func (in *Interpreter) evalArgs(args []*Value, ctx *Context) ([]*Value, *EvalError) {
	out := make([]*Value, len(args))
	for i, a := range args {
		r, err := in.eval(a, ctx)
		if err != nil {
			return nil, err
		}
		if r.Kind == KindRecurSentinel {
			return nil, recurMisuse("argument position")
		}
		out[i] = r
	}
	return out, nil
}

// evalDo evaluates a body as an implicit do: each form in order, last
// result returned. A RecurSentinel from any non-last form is a misuse.
func (in *Interpreter) evalDo(forms []*Value, ctx *Context) (*Value, *EvalError) {
	result := Nil
	for i, f := range forms {
		r, err := in.eval(f, ctx)
		if err != nil {
			return nil, err
		}
		if r.Kind == KindRecurSentinel && i < len(forms)-1 {
			return nil, recurMisuse("non-tail position of a do body")
		}
		result = r
	}
	return result, nil
}

func recurMisuse(where string) *EvalError {
	return newEvalError(ErrRecurMisuse, "recur", "recur used in %s", where)
}

// apply calls a value with already-evaluated arguments (reachable via
// .apply / .reduce): functions and built-ins, plus vectors, maps,
// keywords and symbols with the same lookup rules as in function
// position. Any other kind is InvalidArgumentError.
func (in *Interpreter) apply(f *Value, args []*Value, ctx *Context) (*Value, *EvalError) {
	switch f.Kind {
	case KindFunction:
		return in.applyFunction(f, args)
	case KindBuiltIn:
		return in.callBuiltin(f.BuiltinName, ctx, args)
	case KindVector:
		return indexVector(f, args)
	case KindMap:
		return lookupInMap(f, args)
	case KindKeyword, KindSymbol:
		return lookupByKey(f, args)
	default:
		return nil, invalidArgError("apply", "%s is not callable", f.typeName())
	}
}

// applyFunction selects the matching arity, binds parameters in a child
// of the captured context, and runs the body with the recur trampoline:
// a RecurSentinel result rebinds the parameters in place and re-enters
// the body (tail-rebind in place, no fresh frame per iteration).
func (in *Interpreter) applyFunction(fv *Value, args []*Value) (*Value, *EvalError) {
	f := fv.Fn
	ar := selectArity(f, len(args))
	if ar == nil {
		return nil, arityError(fnSender(f), len(args), arityWant(f))
	}
	frame := f.Captured.NewChildContext()
	if f.NameID >= 0 {
		frame.Bind(f.NameID, fv)
	}
	if err := bindParams(ar, args, frame, fnSender(f)); err != nil {
		return nil, err
	}
	for {
		res, err := in.evalDo(ar.Body, frame)
		if err != nil {
			return nil, err
		}
		if res.Kind != KindRecurSentinel {
			return res, nil
		}
		if err := bindParams(ar, res.RecurArgs, frame, fnSender(f)); err != nil {
			return nil, err
		}
	}
}

func fnSender(f *Function) string {
	if f.Name != "" {
		return f.Name
	}
	return "fn"
}

// selectArity picks an exact fixed-arity match first, then a variadic
// arity accepting at least its fixed parameter count.
func selectArity(f *Function, n int) *Arity {
	for _, ar := range f.Arities {
		if !ar.Variadic && len(ar.Params) == n {
			return ar
		}
	}
	for _, ar := range f.Arities {
		if ar.Variadic && n >= len(ar.Params) {
			return ar
		}
	}
	return nil
}

func arityWant(f *Function) string {
	switch len(f.Arities) {
	case 0:
		return "0"
	case 1:
		ar := f.Arities[0]
		if ar.Variadic {
			return "at least " + itoa(len(ar.Params))
		}
		return itoa(len(ar.Params))
	default:
		return "a matching arity"
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// bindParams binds (or rebinds) an arity's parameters in frame. For a
// variadic arity the trailing arguments bind as a List.
func bindParams(ar *Arity, args []*Value, frame *Context, sender string) *EvalError {
	if ar.Variadic {
		if len(args) < len(ar.Params) {
			return arityError(sender, len(args), "at least "+itoa(len(ar.Params)))
		}
	} else if len(args) != len(ar.Params) {
		return arityError(sender, len(args), itoa(len(ar.Params)))
	}
	for i, p := range ar.Params {
		frame.Bind(p, args[i])
	}
	if ar.Variadic {
		frame.Bind(ar.VariadicParam, NewList(args[len(ar.Params):]...))
	}
	return nil
}

// indexVector implements vector-in-function-position: one integer
// argument indexes the vector, out-of-range is OutOfBoundsError.
func indexVector(vec *Value, args []*Value) (*Value, *EvalError) {
	if len(args) != 1 {
		return nil, arityError("vector", len(args), "1")
	}
	idx := args[0]
	if idx.Kind != KindInt {
		return nil, wrongType("vector", idx, "int")
	}
	i := idx.Int
	if i < 0 || i >= int64(len(vec.Vector)) {
		return nil, newEvalError(ErrOutOfBounds, "vector", "index %d out of bounds for vector of %d element(s)", i, len(vec.Vector))
	}
	return vec.Vector[i], nil
}

// lookupInMap implements map-in-function-position: one or two arguments,
// the second a default returned on miss.
func lookupInMap(m *Value, args []*Value) (*Value, *EvalError) {
	if len(args) != 1 && len(args) != 2 {
		return nil, arityError("map", len(args), "1 or 2")
	}
	if v, ok := m.MapGet(args[0]); ok {
		return v, nil
	}
	if len(args) == 2 {
		return args[1], nil
	}
	return Nil, nil
}

// lookupByKey implements keyword/symbol-in-function-position: the head
// is a key into the map given as the first argument. Unsupported
// argument types yield nil (or the default).
func lookupByKey(key *Value, args []*Value) (*Value, *EvalError) {
	if len(args) != 1 && len(args) != 2 {
		return nil, arityError(key.SymName, len(args), "1 or 2")
	}
	if args[0].Kind == KindMap {
		if v, ok := args[0].MapGet(key); ok {
			return v, nil
		}
	}
	if len(args) == 2 {
		return args[1], nil
	}
	return Nil, nil
}
