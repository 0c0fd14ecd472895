// Package diagnostic provides structured warnings and errors collected while
// loading model schemas.
//
// Key capabilities:
//   - Skipped property warnings (no wire mapping found)
//   - Unsupported type errors
//   - Duplicate field errors
package diagnostic
