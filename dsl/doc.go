// Package dsl holds the parser factories and combinators of reify.
//
// Each factory returns an immutable *reify.Parser carrying the parse
// function, a textual type signature, and sample generators. Combinators
// accept other parsers and wrap them, forming a schema tree at construction
// time; validation then flows top-down through the tree, threading a
// reify.Context that shapes nested error messages.
//
//	schema := dsl.Object().
//		Field("role", dsl.Values([]string{"admin", "guest"})).
//		Field("tags", dsl.Array(dsl.String(), dsl.ArrayOptions{MinLength: reify.Ptr(1)})).
//		Build()
package dsl
