// Package equipment owns equipment assets and their maintenance history.
//
// Registration enforces serial-number uniqueness and the singleton rule
// (serialized assets always have quantity 1). Edits touch only the mutable
// field set; name and serial number are frozen at registration. Maintenance
// logs are append-only. Every mutation runs in one transaction and appends
// one audit record after commit.
package equipment
