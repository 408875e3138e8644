// Package errors provides unified error handling for the cereal pipeline.
// It implements structured error types with machine-readable codes and
// retryable detection so callers branch on error class, not message text.
//
// The pipeline distinguishes two domain error kinds:
//
//   - FETCH_FAILED / TIMEOUT: the dataset source could not be reached or
//     parsed (transport class, retryable by a future caller)
//   - SCHEMA_ERROR: the dataset is missing its identifier column, required
//     numeric columns, or has no rows at all
//
// Use the predicates to classify:
//
//	if errors.IsSchema(err) { ... }
//	if errors.IsFetch(err) { ... }
package errors
