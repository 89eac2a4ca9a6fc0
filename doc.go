// Package reify provides:
//
//   - Runtime validation and type coercion of already-decoded dynamic values
//     (the output of a JSON, YAML, form or query-string decode step)
//   - A stable error model via InvalidInputError (rendered message, status
//     code, nested union errors)
//   - Textual type signatures per parser for documentation and codegen
//   - Sample and random-value generation hooks for mocking and tests
//
// Design policy:
//
//   - Keep only shared plumbing in the root package; factories and
//     combinators live under dsl/.
//   - Parser trees are configuration: build once, share freely, never mutate.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := dsl.Object().
//		Field("name", dsl.String()).
//		Field("age", dsl.Optional(dsl.Int())).
//		Build()
//
//	v, err := user.Parse(decoded, reify.Context{Name: "req.body"})
//	v, err := reify.ParseFrom(user, reify.JSONBytes(data))
package reify
