package lambdatron

import "strings"

func init() {
	registerBuiltin(".=", builtinEqual)
	registerBuiltin(".==", builtinNumEqual)
	registerBuiltin(".not", builtinNot)
	registerBuiltin(".print", builtinPrint)
	registerBuiltin(".str", builtinStr)
	registerBuiltin(".apply", builtinApply)
	registerBuiltin(".meta-type", builtinMetaType)
}

func builtinEqual(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) != 2 {
		return nil, arityError(".=", len(args), "2")
	}
	return boolValue(structuralEqual(args[0], args[1])), nil
}

func builtinNumEqual(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) != 2 {
		return nil, arityError(".==", len(args), "2")
	}
	if !isNumber(args[0]) {
		return nil, wrongType(".==", args[0], "number")
	}
	if !isNumber(args[1]) {
		return nil, wrongType(".==", args[1], "number")
	}
	return boolValue(numericEqual(args[0], args[1])), nil
}

func builtinNot(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) != 1 {
		return nil, arityError(".not", len(args), "1")
	}
	return boolValue(!args[0].IsTruthy()), nil
}

func builtinPrint(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	var sb strings.Builder
	for _, a := range args {
		sb.WriteString(displayString(a))
	}
	in.writeOutput(sb.String())
	return Nil, nil
}

func builtinStr(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	var sb strings.Builder
	for _, a := range args {
		if a.Kind == KindNil {
			continue
		}
		sb.WriteString(displayString(a))
	}
	return StrValue(sb.String()), nil
}

// builtinApply spreads a trailing collection into a call: (.apply f a b
// coll) calls f with a, b, and coll's elements.
func builtinApply(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) < 2 {
		return nil, arityError(".apply", len(args), "at least 2")
	}
	tail, ok := seqView(args[len(args)-1])
	if !ok {
		return nil, wrongType(".apply", args[len(args)-1], "seqable collection")
	}
	callArgs := make([]*Value, 0, len(args)-2+len(tail))
	callArgs = append(callArgs, args[1:len(args)-1]...)
	callArgs = append(callArgs, tail...)
	return in.apply(args[0], callArgs, ctx)
}

func builtinMetaType(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) != 1 {
		return nil, arityError(".meta-type", len(args), "1")
	}
	return ctx.Keyword(args[0].typeName()), nil
}
