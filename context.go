package lambdatron

// bindingKind distinguishes the three states a symbol can be in within a
// frame: Unbound, Literal(Value), BoundMacro(Macro).
type bindingKind int

const (
	bindingLiteral bindingKind = iota
	bindingUnbound
	bindingMacro
)

type binding struct {
	kind  bindingKind
	value *Value
	macro *Value // KindMacro value, when kind == bindingMacro
}

// Context is one lexical frame. Frames form a tree: each child holds a
// back-reference to its parent (a relation, not ownership), and symbol
// lookup walks child, then parent, up to the root. Only the root frame
// owns the intern tables.
type Context struct {
	parent   *Context
	bindings map[int]*binding

	// root-only fields
	symbolIDs    map[string]int
	symbolNames  []string
	keywordIDs   map[string]int
	keywordNames []string
}

// NewRootContext creates the interpreter's root frame, the sole owner of
// the intern tables.
func NewRootContext() *Context {
	return &Context{
		bindings:   make(map[int]*binding),
		symbolIDs:  make(map[string]int),
		keywordIDs: make(map[string]int),
	}
}

// NewChildContext creates a frame whose parent is ctx. Children never
// mutate their parent's bindings map directly; `def` always targets the
// root (see Context.Def), so the child→parent→…→root reference graph
// stays a DAG.
func (ctx *Context) NewChildContext() *Context {
	return &Context{parent: ctx, bindings: make(map[int]*binding)}
}

func (ctx *Context) root() *Context {
	c := ctx
	for c.parent != nil {
		c = c.parent
	}
	return c
}

// InternSymbol returns the interned id for a symbol name, assigning a
// fresh id on first use.
func (ctx *Context) InternSymbol(name string) int {
	root := ctx.root()
	if id, ok := root.symbolIDs[name]; ok {
		return id
	}
	id := len(root.symbolNames)
	root.symbolIDs[name] = id
	root.symbolNames = append(root.symbolNames, name)
	return id
}

// SymbolName resolves an interned symbol id back to its source text.
func (ctx *Context) SymbolName(id int) string {
	root := ctx.root()
	if id < 0 || id >= len(root.symbolNames) {
		return ""
	}
	return root.symbolNames[id]
}

// InternKeyword returns the interned id for a keyword name (without the
// leading ':'), assigning a fresh id on first use.
func (ctx *Context) InternKeyword(name string) int {
	root := ctx.root()
	if id, ok := root.keywordIDs[name]; ok {
		return id
	}
	id := len(root.keywordNames)
	root.keywordIDs[name] = id
	root.keywordNames = append(root.keywordNames, name)
	return id
}

// Symbol interns name and returns the Symbol Value.
func (ctx *Context) Symbol(name string) *Value {
	return &Value{Kind: KindSymbol, SymID: ctx.InternSymbol(name), SymName: name}
}

// Keyword interns name and returns the Keyword Value.
func (ctx *Context) Keyword(name string) *Value {
	return &Value{Kind: KindKeyword, SymID: ctx.InternKeyword(name), SymName: name}
}

// Lookup resolves a symbol id by walking child → parent → … → root.
// ok is false when no frame in the chain has a binding for id; an
// Unbound placeholder from `(def sym)` still counts as found.
func (ctx *Context) Lookup(id int) (b *binding, ok bool) {
	for c := ctx; c != nil; c = c.parent {
		if bnd, found := c.bindings[id]; found {
			return bnd, true
		}
	}
	return nil, false
}

// Def writes a literal binding to the root frame; `def` always targets
// the root no matter how deep the calling frame is.
func (ctx *Context) Def(id int, v *Value) {
	ctx.root().bindings[id] = &binding{kind: bindingLiteral, value: v}
}

// DefUnbound registers id in the root frame as an Unbound placeholder
// (`(def sym)` with no initializer).
func (ctx *Context) DefUnbound(id int) {
	ctx.root().bindings[id] = &binding{kind: bindingUnbound}
}

// DefMacro registers a macro in the root frame (`defmacro`).
func (ctx *Context) DefMacro(id int, m *Value) {
	ctx.root().bindings[id] = &binding{kind: bindingMacro, macro: m}
}

// Bind creates (or overwrites) a literal binding in ctx's own frame —
// used by `let`/`loop`/function application to introduce parameters,
// never reaching past the local frame.
func (ctx *Context) Bind(id int, v *Value) {
	ctx.bindings[id] = &binding{kind: bindingLiteral, value: v}
}

// Rebind overwrites an existing binding in ctx's own frame in place,
// used by the `loop` recur trampoline (specialLoop in specialforms.go)
// to avoid allocating a fresh frame per iteration.
func (ctx *Context) Rebind(id int, v *Value) {
	ctx.bindings[id] = &binding{kind: bindingLiteral, value: v}
}
