// Package lambdatron implements a small Lisp dialect modeled after
// Clojure: a two-phase reader turns source text into a tree of
// self-describing values, a syntax-quote expander rewrites reader
// macros into primitive constructor calls, and a tree-walking
// evaluator runs the result against a lexical environment.
//
// A minimal embedding example:
//
//	interp := lambdatron.Must(lambdatron.New())
//	outcome := interp.Evaluate(`(+ 1 2 3)`)
//	if outcome.Err != nil {
//	    panic(outcome.Err)
//	}
//	fmt.Println(outcome.Value.String()) // 6
//
// The REPL loop, source-file I/O, and the long tail of built-ins beyond
// what the bundled standard library needs are left to callers (see
// cmd/lambdatron for a thin example).
package lambdatron
