// Package descriptor defines the parsed form of an annotated sum type.
//
// Descriptors are produced by the front-ends (internal/analyze for Go source
// directives, internal/config for YAML declarations) and consumed read-only
// by the generation pass.
//
// Key types:
//   - SumType: the sum type name, its kind, type parameters and cases
//   - Case: one alternative with its payload slots, status code and message
//   - Slot: one payload field, read by name in generated code
package descriptor
