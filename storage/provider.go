// Package storage persists the budget ledger as a single JSON
// document, either on the local filesystem or in an S3-compatible
// object store. There is no locking or versioning at this layer:
// every store is a full-document replace, and concurrent-write safety
// is the caller's problem (budget.Verify).
package storage

import (
	"context"

	"github.com/budgetme/budgetme/budget"
)

// dataObjectName is the document name under the configured directory
// or bucket.
const dataObjectName = "data.json"

// Provider is a blocking round-trip to wherever the ledger document
// lives.
type Provider interface {
	// Fetch returns the persisted ledger, or (nil, nil) when nothing
	// has been written yet.
	Fetch(ctx context.Context) (*budget.Ledger, error)

	// Store durably replaces the persisted document.
	Store(ctx context.Context, ledger *budget.Ledger) error
}
