package lambdatron

import "fmt"

func sprintfPtr(tag string, p any) string {
	return fmt.Sprintf("%s:%p", tag, p)
}

// valuesEqual is the same-Kind half of `.=` (see structuralEqual):
// structural equality across all variants, type-sensitive for numbers
// (`=` requires type match, `==` is the numeric cross-type comparison).
func valuesEqual(a, b *Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNil:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindInt:
		return a.Int == b.Int
	case KindFloat:
		return a.Float == b.Float
	case KindChar:
		return a.Char == b.Char
	case KindStr, KindRegex:
		return a.Str == b.Str
	case KindKeyword, KindSymbol:
		return a.SymID == b.SymID
	case KindList:
		ac, bc := a.list, b.list
		for ac != nil && bc != nil {
			if !structuralEqual(ac.head, bc.head) {
				return false
			}
			ac, bc = ac.tail, bc.tail
		}
		return ac == nil && bc == nil
	case KindVector:
		if len(a.Vector) != len(b.Vector) {
			return false
		}
		for i := range a.Vector {
			if !structuralEqual(a.Vector[i], b.Vector[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if a.m.len() != b.m.len() {
			return false
		}
		for _, kv := range a.m.entries() {
			bv, ok := b.m.get(kv[0])
			if !ok || !structuralEqual(kv[1], bv) {
				return false
			}
		}
		return true
	case KindFunction:
		return a.Fn == b.Fn
	case KindMacro:
		return a.Macro == b.Macro
	case KindBuiltIn:
		return a.BuiltinName == b.BuiltinName
	case KindSpecial:
		return a.SpecialName == b.SpecialName
	default:
		return false
	}
}

// crossSeqEqual allows List ≈ Vector elementwise comparison for `.=`.
func crossSeqEqual(a, b *Value) bool {
	var ai, bi []*Value
	switch a.Kind {
	case KindList:
		ai = a.Items()
	case KindVector:
		ai = a.Vector
	default:
		return false
	}
	switch b.Kind {
	case KindList:
		bi = b.Items()
	case KindVector:
		bi = b.Vector
	default:
		return false
	}
	if len(ai) != len(bi) {
		return false
	}
	for i := range ai {
		if !structuralEqual(ai[i], bi[i]) {
			return false
		}
	}
	return true
}

// structuralEqual is `.=` generalized to allow list/vector cross-kind
// comparison (used recursively and by the `.=` built-in's top level).
func structuralEqual(a, b *Value) bool {
	if a.Kind == b.Kind {
		return valuesEqual(a, b)
	}
	if (a.Kind == KindList || a.Kind == KindVector) && (b.Kind == KindList || b.Kind == KindVector) {
		return crossSeqEqual(a, b)
	}
	return false
}

// numericEqual implements `.==`: numeric equality with int/float
// cross-type promotion.
func numericEqual(a, b *Value) bool {
	if a.Kind == KindInt && b.Kind == KindInt {
		return a.Int == b.Int
	}
	return numericValue(a) == numericValue(b)
}

func numericValue(v *Value) float64 {
	if v.Kind == KindInt {
		return float64(v.Int)
	}
	return v.Float
}
