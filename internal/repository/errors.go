// Package repository defines a small shared vocabulary next to the
// per-entity repositories.  Lookups signal absence with a per-entity
// sentinel error so handlers can answer 404 without string matching;
// mutations return their affected-row count and leave the 0/1/>1 policy
// to the handler layer.  Any other error is a store failure and is
// propagated unmodified.
package repository

// scanner abstracts *sql.Row and *sql.Rows so each entity can share one
// column-order-sensitive scan routine between its lookups.
type scanner interface {
	Scan(dest ...any) error
}

// dateTimeLayout is the wire format for DATETIME columns.  Timestamps are
// carried as strings end to end; only the contract signature update ever
// generates one inside this package.
const dateTimeLayout = "2006-01-02 15:04:05"
