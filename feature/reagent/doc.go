// Package reagent owns reagent identity rows and their stock batches.
//
// Stock-in uses merge-or-create semantics: the reagent is deduplicated by
// name (descriptive columns overwritten wholesale), and incoming stock folds
// into an existing batch only when the full descriptive key matches,
// otherwise a new batch row is created. Stock-out is deduct-or-delete: an
// exact all-or-nothing deduction that deletes the batch once drained.
//
// Each mutating sequence runs inside a single database transaction and
// appends one audit record after commit.
package reagent
