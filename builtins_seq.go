package lambdatron

func init() {
	registerBuiltin(".list", builtinList)
	registerBuiltin(".concat", builtinConcat)
	registerBuiltin(".seq", builtinSeq)
	registerBuiltin(".first", builtinFirst)
	registerBuiltin(".next", builtinNext)
	registerBuiltin(".rest", builtinRest)
	registerBuiltin(".conj", builtinConj)
	registerBuiltin(".reduce", builtinReduce)
	registerBuiltin(".count", builtinCount)
	registerBuiltin(".nth", builtinNth)
}

// seqView flattens a seqable value into its elements: nil and the empty
// collections view as empty, strings as characters, maps as 2-vectors in
// stable order. ok is false for non-seqable kinds.
func seqView(v *Value) ([]*Value, bool) {
	switch v.Kind {
	case KindNil:
		return nil, true
	case KindList:
		return v.Items(), true
	case KindVector:
		return v.Vector, true
	case KindStr:
		var out []*Value
		for _, r := range v.Str {
			out = append(out, CharValue(r))
		}
		return out, true
	case KindMap:
		var out []*Value
		for _, kv := range v.MapEntries() {
			out = append(out, NewVector(kv[0], kv[1]))
		}
		return out, true
	default:
		return nil, false
	}
}

func builtinList(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	return NewList(args...), nil
}

func builtinConcat(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	var out []*Value
	for _, a := range args {
		items, ok := seqView(a)
		if !ok {
			return nil, wrongType(".concat", a, "seqable collection")
		}
		out = append(out, items...)
	}
	return NewList(out...), nil
}

func builtinSeq(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) != 1 {
		return nil, arityError(".seq", len(args), "1")
	}
	v := args[0]
	if v.Kind == KindList && !v.IsEmptyList() {
		return v, nil
	}
	items, ok := seqView(v)
	if !ok {
		return nil, wrongType(".seq", v, "seqable collection")
	}
	if len(items) == 0 {
		return Nil, nil
	}
	return NewList(items...), nil
}

func seqFirst(sender string, v *Value) (*Value, *EvalError) {
	if v.Kind == KindList {
		if v.IsEmptyList() {
			return Nil, nil
		}
		return v.ListHead(), nil
	}
	items, ok := seqView(v)
	if !ok {
		return nil, wrongType(sender, v, "seqable collection")
	}
	if len(items) == 0 {
		return Nil, nil
	}
	return items[0], nil
}

func seqRest(sender string, v *Value) (*Value, *EvalError) {
	if v.Kind == KindList {
		if v.IsEmptyList() {
			return EmptyList, nil
		}
		return v.ListTail(), nil
	}
	items, ok := seqView(v)
	if !ok {
		return nil, wrongType(sender, v, "seqable collection")
	}
	if len(items) <= 1 {
		return EmptyList, nil
	}
	return NewList(items[1:]...), nil
}

func builtinFirst(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) != 1 {
		return nil, arityError(".first", len(args), "1")
	}
	return seqFirst(".first", args[0])
}

func builtinRest(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) != 1 {
		return nil, arityError(".rest", len(args), "1")
	}
	return seqRest(".rest", args[0])
}

func builtinNext(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) != 1 {
		return nil, arityError(".next", len(args), "1")
	}
	rest, err := seqRest(".next", args[0])
	if err != nil {
		return nil, err
	}
	if rest.IsEmptyList() {
		return Nil, nil
	}
	return rest, nil
}

// consOnto implements cons: the collection's seq view with head
// prepended, always a list.
func consOnto(sender string, head, coll *Value) (*Value, *EvalError) {
	if coll.Kind == KindList {
		return Cons(head, coll), nil
	}
	items, ok := seqView(coll)
	if !ok {
		return nil, wrongType(sender, coll, "seqable collection")
	}
	return Cons(head, NewList(items...)), nil
}

func builtinConj(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) != 2 {
		return nil, arityError(".conj", len(args), "2")
	}
	coll, item := args[0], args[1]
	switch coll.Kind {
	case KindList:
		return Cons(item, coll), nil
	case KindVector:
		out := make([]*Value, 0, len(coll.Vector)+1)
		out = append(out, coll.Vector...)
		out = append(out, item)
		return NewVector(out...), nil
	case KindMap:
		if item.Kind != KindVector || len(item.Vector) != 2 {
			return nil, invalidArgError(".conj", "conj onto a map needs a 2-element vector, got %s", Print(item))
		}
		return coll.MapConj(item.Vector[0], item.Vector[1]), nil
	case KindNil:
		return NewList(item), nil
	case KindStr:
		items, _ := seqView(coll)
		return Cons(item, NewList(items...)), nil
	default:
		return nil, wrongType(".conj", coll, "collection")
	}
}

func builtinReduce(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) != 2 && len(args) != 3 {
		return nil, arityError(".reduce", len(args), "2 or 3")
	}
	f := args[0]
	items, ok := seqView(args[len(args)-1])
	if !ok {
		return nil, wrongType(".reduce", args[len(args)-1], "seqable collection")
	}
	var acc *Value
	if len(args) == 3 {
		acc = args[1]
	} else {
		if len(items) == 0 {
			return in.apply(f, nil, ctx)
		}
		acc = items[0]
		items = items[1:]
	}
	for _, item := range items {
		r, err := in.apply(f, []*Value{acc, item}, ctx)
		if err != nil {
			return nil, err
		}
		acc = r
	}
	return acc, nil
}

func builtinCount(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) != 1 {
		return nil, arityError(".count", len(args), "1")
	}
	items, ok := seqView(args[0])
	if !ok {
		return nil, wrongType(".count", args[0], "countable collection")
	}
	return IntValue(int64(len(items))), nil
}

func builtinNth(in *Interpreter, ctx *Context, args []*Value) (*Value, *EvalError) {
	if len(args) != 2 && len(args) != 3 {
		return nil, arityError(".nth", len(args), "2 or 3")
	}
	items, ok := seqView(args[0])
	if !ok {
		return nil, wrongType(".nth", args[0], "indexable collection")
	}
	if args[1].Kind != KindInt {
		return nil, wrongType(".nth", args[1], "int")
	}
	i := args[1].Int
	if i < 0 || i >= int64(len(items)) {
		if len(args) == 3 {
			return args[2], nil
		}
		return nil, newEvalError(ErrOutOfBounds, ".nth", "index %d out of bounds for %d element(s)", i, len(items))
	}
	return items[i], nil
}
