package lambdatron

// expandMacro runs one macro expansion: parameters
// bind to the unevaluated argument forms in a fresh frame parented on
// the caller's context (macros capture nothing at definition time), the
// body runs as an implicit do, and the resulting form is handed back to
// the evaluator. Because lookup happens at expansion time, redefining a
// symbol a macro body uses changes the macro's behavior; that is a
// documented property of the dialect.
func (in *Interpreter) expandMacro(mv *Value, args []*Value, ctx *Context) (*Value, *EvalError) {
	m := mv.Macro
	frame := ctx.NewChildContext()
	if m.Variadic {
		if len(args) < len(m.Params) {
			return nil, arityError(m.Name, len(args), "at least "+itoa(len(m.Params)))
		}
	} else if len(args) != len(m.Params) {
		return nil, arityError(m.Name, len(args), itoa(len(m.Params)))
	}
	for i, p := range m.Params {
		frame.Bind(p, args[i])
	}
	if m.Variadic {
		frame.Bind(m.VariadicParam, NewList(args[len(m.Params):]...))
	}
	expansion, err := in.evalDo(m.Body, frame)
	if err != nil {
		return nil, err
	}
	if expansion.Kind == KindRecurSentinel {
		return nil, recurMisuse("macro expansion")
	}
	return expansion, nil
}
