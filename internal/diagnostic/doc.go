// Package diagnostic provides structured errors, warnings and notes
// reported while reading annotations and generating converters.
//
// Key capabilities:
//   - Unknown or malformed directive reports with suggestions
//   - Missing status or message on a case
//   - Placeholder / slot count mismatch warnings (errors in strict mode)
package diagnostic
