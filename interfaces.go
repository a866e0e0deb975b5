package udns

import (
	"context"
	"encoding/json"
)

// ZoneService provides zone operations.
type ZoneService interface {
	// CreatePrimaryZone creates a new primary zone.
	CreatePrimaryZone(ctx context.Context, zoneName string) error

	// ZoneMetadata returns the metadata of a zone.
	ZoneMetadata(ctx context.Context, zoneName string) (*Zone, error)

	// DeleteZone deletes a zone.
	DeleteZone(ctx context.Context, zoneName string) error

	// ZonesOfAccount lists the zones of an account.
	ZonesOfAccount(ctx context.Context, accountName string, opts ...ListOption) (*ZoneList, error)
}

// RecordService provides resource-record operations.
type RecordService interface {
	// Records lists the RRSets of a zone.
	Records(ctx context.Context, zoneName string, opts ...ListOption) ([]RRSet, error)

	// RecordsByType lists the RRSets of a zone restricted to one type.
	RecordsByType(ctx context.Context, zoneName, rtype string, opts ...ListOption) ([]RRSet, error)

	// CreateRecord creates a new RRSet.
	CreateRecord(ctx context.Context, zoneName, rtype, ownerName string, ttl int, rdata ...string) error

	// UpdateRecord replaces an existing RRSet.
	UpdateRecord(ctx context.Context, zoneName, rtype, ownerName string, ttl int, rdata ...string) error

	// DeleteRecord deletes an RRSet.
	DeleteRecord(ctx context.Context, zoneName, rtype, ownerName string) error
}

// Transactor provides client-side write batching.
type Transactor interface {
	// StartTransaction opens a transaction.
	StartTransaction() error

	// CommitTransaction submits the queued writes as one batch call.
	CommitTransaction(ctx context.Context) (json.RawMessage, error)

	// RollbackTransaction discards the queued writes.
	RollbackTransaction() error
}

// Service combines the full operation set of the client.
type Service interface {
	ZoneService
	RecordService
	Transactor
}

// Ensure Client implements all interfaces.
var (
	_ ZoneService   = (*Client)(nil)
	_ RecordService = (*Client)(nil)
	_ Transactor    = (*Client)(nil)
	_ Service       = (*Client)(nil)
)
