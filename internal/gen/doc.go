// Package gen provides deterministic Go code generation for response
// converters.
//
// For every sum type it counts the placeholders of each case message, binds
// the payload slots, builds one switch arm per case and emits the converter
// function. Files are assembled with jennifer and formatted with go/format.
//
// Generated file layout:
//   - "// Code generated by httperror-generator. DO NOT EDIT." header
//   - one converter function, named after the sum type
//   - file name "<snake_case sum type>_response.go"
package gen
