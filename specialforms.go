package lambdatron

// specialFormFn receives its arguments unevaluated.
type specialFormFn func(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError)

var specialForms = map[string]specialFormFn{}

func registerSpecialForm(name string, fn specialFormFn) {
	if _, exists := specialForms[name]; exists {
		panic("special form already registered: " + name)
	}
	specialForms[name] = fn
}

func init() {
	registerSpecialForm("quote", specialQuote)
	registerSpecialForm("if", specialIf)
	registerSpecialForm("do", specialDo)
	registerSpecialForm("def", specialDef)
	registerSpecialForm("let", specialLet)
	registerSpecialForm("fn", specialFn)
	registerSpecialForm("defmacro", specialDefmacro)
	registerSpecialForm("loop", specialLoop)
	registerSpecialForm("recur", specialRecur)
	registerSpecialForm("cons", specialCons)
	registerSpecialForm("first", specialFirst)
	registerSpecialForm("rest", specialRest)
}

func specialQuote(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) != 1 {
		return nil, arityError("quote", len(args), "1")
	}
	return args[0], nil
}

func specialIf(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) != 2 && len(args) != 3 {
		return nil, arityError("if", len(args), "2 or 3")
	}
	test, err := in.eval(args[0], ctx)
	if err != nil {
		return nil, err
	}
	if test.IsTruthy() {
		return in.eval(args[1], ctx)
	}
	if len(args) == 3 {
		return in.eval(args[2], ctx)
	}
	return Nil, nil
}

func specialDo(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	return in.evalDo(args, ctx)
}

func specialDef(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) != 1 && len(args) != 2 {
		return nil, arityError("def", len(args), "1 or 2")
	}
	sym := args[0]
	if sym.Kind != KindSymbol {
		return nil, wrongType("def", sym, "symbol")
	}
	if len(args) == 1 {
		ctx.DefUnbound(sym.SymID)
		return sym, nil
	}
	v, err := in.eval(args[1], ctx)
	if err != nil {
		return nil, err
	}
	if v.Kind == KindRecurSentinel {
		return nil, recurMisuse("def initializer")
	}
	ctx.Def(sym.SymID, v)
	return sym, nil
}

// bindingForms accepts a binding/parameter form as either a vector or a
// list. Syntax-quote rebuilds vector literals as lists, so
// macro-generated let/loop/fn forms arrive list-shaped.
func bindingForms(sender string, v *Value) ([]*Value, *EvalError) {
	switch v.Kind {
	case KindVector:
		return v.Vector, nil
	case KindList:
		return v.Items(), nil
	default:
		return nil, wrongType(sender, v, "vector")
	}
}

// bindPairs evaluates a let/loop binding vector in a child frame,
// sequentially: each initializer sees every binding before it. Returns
// the bound symbol ids in order, for the loop trampoline.
func (in *Interpreter) bindPairs(sender string, bindings *Value, frame *Context) ([]int, *EvalError) {
	forms, err := bindingForms(sender, bindings)
	if err != nil {
		return nil, err
	}
	if len(forms)%2 != 0 {
		return nil, invalidArgError(sender, "binding vector needs an even number of forms, got %d", len(forms))
	}
	ids := make([]int, 0, len(forms)/2)
	for i := 0; i < len(forms); i += 2 {
		sym := forms[i]
		if sym.Kind != KindSymbol {
			return nil, wrongType(sender, sym, "symbol")
		}
		v, err := in.eval(forms[i+1], frame)
		if err != nil {
			return nil, err
		}
		if v.Kind == KindRecurSentinel {
			return nil, recurMisuse(sender + " binding")
		}
		frame.Bind(sym.SymID, v)
		ids = append(ids, sym.SymID)
	}
	return ids, nil
}

func specialLet(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) < 1 {
		return nil, arityError("let", len(args), "at least 1")
	}
	frame := ctx.NewChildContext()
	if _, err := in.bindPairs("let", args[0], frame); err != nil {
		return nil, err
	}
	return in.evalDo(args[1:], frame)
}

func specialLoop(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) < 1 {
		return nil, arityError("loop", len(args), "at least 1")
	}
	frame := ctx.NewChildContext()
	ids, err := in.bindPairs("loop", args[0], frame)
	if err != nil {
		return nil, err
	}
	body := args[1:]
	for {
		res, err := in.evalDo(body, frame)
		if err != nil {
			return nil, err
		}
		if res.Kind != KindRecurSentinel {
			return res, nil
		}
		if len(res.RecurArgs) != len(ids) {
			return nil, arityError("recur", len(res.RecurArgs), itoa(len(ids)))
		}
		for i, id := range ids {
			frame.Rebind(id, res.RecurArgs[i])
		}
	}
}

func specialRecur(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	evaled, err := in.evalArgs(args, ctx)
	if err != nil {
		return nil, err
	}
	return NewRecurSentinel(evaled), nil
}

// parseParamVector turns a [a b & more] vector into an Arity skeleton.
func parseParamVector(sender string, vec *Value) (*Arity, *EvalError) {
	params, err := bindingForms(sender, vec)
	if err != nil {
		return nil, err
	}
	ar := &Arity{VariadicParam: -1}
	for i := 0; i < len(params); i++ {
		p := params[i]
		if p.Kind != KindSymbol {
			return nil, wrongType(sender, p, "symbol")
		}
		if p.SymName == "&" {
			if i != len(params)-2 {
				return nil, invalidArgError(sender, "'&' must be followed by exactly one symbol")
			}
			tail := params[i+1]
			if tail.Kind != KindSymbol {
				return nil, wrongType(sender, tail, "symbol")
			}
			ar.Variadic = true
			ar.VariadicParam = tail.SymID
			break
		}
		ar.Params = append(ar.Params, p.SymID)
	}
	return ar, nil
}

func specialFn(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) < 1 {
		return nil, arityError("fn", len(args), "at least 1")
	}
	name := ""
	nameID := -1
	if args[0].Kind == KindSymbol {
		name = args[0].SymName
		nameID = args[0].SymID
		args = args[1:]
		if len(args) < 1 {
			return nil, arityError("fn", 0, "at least 1 arity")
		}
	}
	var arities []*Arity
	// A list of symbols is a list-shaped parameter form, not an arity.
	isParamList := args[0].Kind == KindList && (args[0].IsEmptyList() || args[0].ListHead().Kind == KindSymbol)
	if args[0].Kind == KindVector || isParamList {
		ar, err := parseParamVector("fn", args[0])
		if err != nil {
			return nil, err
		}
		ar.Body = args[1:]
		arities = append(arities, ar)
	} else {
		for _, form := range args {
			if form.Kind != KindList || form.IsEmptyList() {
				return nil, invalidArgError("fn", "each arity must be a ([params] body...) list")
			}
			items := form.Items()
			ar, err := parseParamVector("fn", items[0])
			if err != nil {
				return nil, err
			}
			ar.Body = items[1:]
			arities = append(arities, ar)
		}
	}
	return NewFunction(name, nameID, arities, ctx), nil
}

func specialDefmacro(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) < 2 {
		return nil, arityError("defmacro", len(args), "at least 2")
	}
	sym := args[0]
	if sym.Kind != KindSymbol {
		return nil, wrongType("defmacro", sym, "symbol")
	}
	ar, err := parseParamVector("defmacro", args[1])
	if err != nil {
		return nil, err
	}
	m := &Macro{
		Name:          sym.SymName,
		Params:        ar.Params,
		Variadic:      ar.Variadic,
		VariadicParam: ar.VariadicParam,
		Body:          args[2:],
	}
	ctx.DefMacro(sym.SymID, NewMacro(m))
	return sym, nil
}

func specialCons(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	evaled, err := in.evalArgs(args, ctx)
	if err != nil {
		return nil, err
	}
	if len(evaled) != 2 {
		return nil, arityError("cons", len(evaled), "2")
	}
	return consOnto("cons", evaled[0], evaled[1])
}

func specialFirst(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	evaled, err := in.evalArgs(args, ctx)
	if err != nil {
		return nil, err
	}
	if len(evaled) != 1 {
		return nil, arityError("first", len(evaled), "1")
	}
	return seqFirst("first", evaled[0])
}

func specialRest(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	evaled, err := in.evalArgs(args, ctx)
	if err != nil {
		return nil, err
	}
	if len(evaled) != 1 {
		return nil, arityError("rest", len(evaled), "1")
	}
	return seqRest("rest", evaled[0])
}
