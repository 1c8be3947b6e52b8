// Package dashboard serves the read-only summary for the front page: the
// most recent audit records and the reagent batches expiring within the next
// 30 days, each annotated with its owning reagent's name and the days left
// until expiry. A batch whose parent reagent row is missing is still listed,
// under a placeholder name, rather than failing the whole call.
package dashboard
