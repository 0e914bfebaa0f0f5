package lambdatron

// orderedMap backs KindMap values: a Go map keyed by a canonical string
// encoding of each key Value (equal keys share a bucket) plus a parallel
// slice recording insertion order, so iteration is stable per instance.
type orderedMap struct {
	order []*Value
	keys  map[string]*Value
	vals  map[string]*Value
}

func newOrderedMap() *orderedMap {
	return &orderedMap{keys: make(map[string]*Value), vals: make(map[string]*Value)}
}

// NewMap builds a Map value from alternating key/value Values.
func NewMap(kvs ...*Value) *Value {
	m := newOrderedMap()
	for i := 0; i+1 < len(kvs); i += 2 {
		m.set(kvs[i], kvs[i+1])
	}
	return &Value{Kind: KindMap, m: m}
}

func (m *orderedMap) set(key, val *Value) {
	k := mapKey(key)
	if _, exists := m.keys[k]; !exists {
		m.order = append(m.order, key)
	}
	m.keys[k] = key
	m.vals[k] = val
}

func (m *orderedMap) get(key *Value) (*Value, bool) {
	v, ok := m.vals[mapKey(key)]
	return v, ok
}

func (m *orderedMap) len() int { return len(m.order) }

// entries returns key/value pairs in stable insertion order.
func (m *orderedMap) entries() [][2]*Value {
	out := make([][2]*Value, 0, len(m.order))
	for _, k := range m.order {
		v := m.vals[mapKey(k)]
		out = append(out, [2]*Value{k, v})
	}
	return out
}

// MapGet looks up a key in a KindMap value.
func (v *Value) MapGet(key *Value) (*Value, bool) {
	return v.m.get(key)
}

// MapLen returns the number of entries in a KindMap value.
func (v *Value) MapLen() int { return v.m.len() }

// MapEntries returns the map's key/value pairs in stable order.
func (v *Value) MapEntries() [][2]*Value { return v.m.entries() }

// MapConj returns a new map with key/value merged in (conj semantics:
// later write wins).
func (v *Value) MapConj(key, val *Value) *Value {
	nm := newOrderedMap()
	for _, kv := range v.m.entries() {
		nm.set(kv[0], kv[1])
	}
	nm.set(key, val)
	return &Value{Kind: KindMap, m: nm}
}

// mapKey produces a canonical string encoding of a Value for use as an
// orderedMap bucket key. Structural variants (list/vector/map) encode
// their contents recursively; identity variants (function/builtin/
// special/macro) encode by Go pointer/name identity.
func mapKey(v *Value) string {
	switch v.Kind {
	case KindNil:
		return "n"
	case KindBool:
		if v.Bool {
			return "b:t"
		}
		return "b:f"
	case KindInt:
		return "i:" + Print(v)
	case KindFloat:
		return "f:" + Print(v)
	case KindChar:
		return "c:" + string(v.Char)
	case KindStr:
		return "s:" + v.Str
	case KindRegex:
		return "re:" + v.Str
	case KindKeyword:
		return "k:" + v.SymName
	case KindSymbol:
		return "y:" + v.SymName
	case KindList:
		// Same encoding as a vector: `.=` treats a list and a vector with
		// equal elements as equal keys.
		s := "v:["
		for c := v.list; c != nil; c = c.tail {
			s += mapKey(c.head) + ","
		}
		return s + "]"
	case KindVector:
		s := "v:["
		for _, e := range v.Vector {
			s += mapKey(e) + ","
		}
		return s + "]"
	case KindMap:
		s := "m:{"
		for _, kv := range v.m.entries() {
			s += mapKey(kv[0]) + "=" + mapKey(kv[1]) + ","
		}
		return s + "}"
	case KindFunction:
		return sprintfPtr("fn", v.Fn)
	case KindBuiltIn:
		return "bi:" + v.BuiltinName
	case KindSpecial:
		return "sp:" + v.SpecialName
	case KindMacro:
		return sprintfPtr("mac", v.Macro)
	default:
		return sprintfPtr("v", v)
	}
}
