// Package record owns the append-only audit log.
//
// Every mutating inventory operation appends exactly one Record through the
// Recorder. The append is deliberately best-effort: the audit trail never
// fails or rolls back the mutation it describes, a failed write is only
// logged. The package also serves the activity feed (GET /api/records) and an
// xlsx export with optional object-storage archival.
package record
