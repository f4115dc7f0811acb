// Package catalog persists detected haiku in SQLite keyed by signature.
//
// The Store owns the database connection, schema initialization, and the
// haiku lifecycle: insert-if-absent on detection, random selection of an
// unused record for publishing, and the single published-at transition.
// Duplicate signatures are a silent no-op reported through the inserted
// flag, never an error, which keeps repeated scans idempotent.
//
// Schema changes bump the version in schema.go; users clear the cache to
// adopt the new schema.
package catalog
