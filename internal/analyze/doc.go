// Package analyze provides package loading and sum type extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// interfaces annotated with //httperror: directives and the named types
// implementing them.
//
// Directives:
//   - //httperror:sumtype marks an interface as a sum type
//   - //httperror:function Name overrides the generated function name
//   - //httperror:status 404 sets the status code of a case
//   - //httperror:message text sets the message template of a case
package analyze
