package lambdatron

// expandReaderMacros rewrites every ReaderMacro node in v into a plain
// evaluable form. After a successful pass no ReaderMacro variant
// remains anywhere in the output.
func expandReaderMacros(v *Value) (*Value, *ReadError) {
	return expandRM(v, false)
}

// expandRM walks v outside any syntax-quote. allowUnquote is true while
// an enclosing syntax-quote exists further out: in that case an
// Unquote/UnquoteSplice marker is left intact for the outer pass to
// consume (one `~` cancels one `` ` `` level); at the true top level it
// is a MismatchedReaderMacro error.
func expandRM(v *Value, allowUnquote bool) (*Value, *ReadError) {
	switch v.Kind {
	case KindReaderMacro:
		switch v.RMKind {
		case RMQuote:
			inner, err := expandRM(v.RMInner, allowUnquote)
			if err != nil {
				return nil, err
			}
			return NewList(NewSpecial("quote"), inner), nil
		case RMSyntaxQuote:
			return syntaxQuote(v.RMInner, allowUnquote)
		default: // RMUnquote, RMUnquoteSplice
			if allowUnquote {
				return v, nil
			}
			return nil, newReadError(ErrMismatchedReaderMacro, Pos{}, "'~' outside a syntax-quote")
		}
	case KindList:
		items := v.Items()
		out := make([]*Value, len(items))
		for i, it := range items {
			e, err := expandRM(it, allowUnquote)
			if err != nil {
				return nil, err
			}
			out[i] = e
		}
		return NewList(out...), nil
	case KindVector:
		out := make([]*Value, len(v.Vector))
		for i, it := range v.Vector {
			e, err := expandRM(it, allowUnquote)
			if err != nil {
				return nil, err
			}
			out[i] = e
		}
		return NewVector(out...), nil
	case KindMap:
		var kvs []*Value
		for _, kv := range v.MapEntries() {
			k, err := expandRM(kv[0], allowUnquote)
			if err != nil {
				return nil, err
			}
			val, err := expandRM(kv[1], allowUnquote)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, k, val)
		}
		return NewMap(kvs...), nil
	default:
		return v, nil
	}
}

// syntaxQuote expands `x. allowUnquote reports whether yet another
// syntax-quote encloses this one.
//
// Nested syntax-quotes are handled inner-first: the inner `` ` `` is
// expanded into its .seq/.concat builder tree (with unquote markers one
// level down left intact), and the resulting tree is then syntax-quoted
// by the outer pass, which consumes those markers. The recursion depth
// is the quote depth; each `~` strips exactly one level.
func syntaxQuote(x *Value, allowUnquote bool) (*Value, *ReadError) {
	switch x.Kind {
	case KindReaderMacro:
		switch x.RMKind {
		case RMUnquote:
			// `~y is y itself.
			return expandRM(x.RMInner, allowUnquote)
		case RMUnquoteSplice:
			return nil, newReadError(ErrMismatchedReaderMacro, Pos{}, "'~@' with nothing to splice into")
		case RMSyntaxQuote:
			inner, err := syntaxQuote(x.RMInner, true)
			if err != nil {
				return nil, err
			}
			return syntaxQuote(inner, allowUnquote)
		default: // RMQuote inside syntax-quote: treat as the 2-list (quote x).
			return syntaxQuote(NewList(NewSpecial("quote"), x.RMInner), allowUnquote)
		}
	case KindSymbol:
		return NewList(NewSpecial("quote"), x), nil
	case KindList, KindVector:
		var items []*Value
		if x.Kind == KindList {
			items = x.Items()
		} else {
			items = x.Vector
		}
		slots := make([]*Value, 0, len(items)+1)
		slots = append(slots, NewBuiltin(".concat"))
		for _, ai := range items {
			if ai.Kind == KindReaderMacro && ai.RMKind == RMUnquote {
				y, err := expandRM(ai.RMInner, allowUnquote)
				if err != nil {
					return nil, err
				}
				slots = append(slots, NewList(NewBuiltin(".list"), y))
				continue
			}
			if ai.Kind == KindReaderMacro && ai.RMKind == RMUnquoteSplice {
				y, err := expandRM(ai.RMInner, allowUnquote)
				if err != nil {
					return nil, err
				}
				slots = append(slots, y)
				continue
			}
			e, err := syntaxQuote(ai, allowUnquote)
			if err != nil {
				return nil, err
			}
			slots = append(slots, NewList(NewBuiltin(".list"), e))
		}
		return NewList(NewBuiltin(".seq"), NewList(slots...)), nil
	default:
		// Numbers, strings, keywords, chars, nil, bools, maps: pass through.
		return x, nil
	}
}
