package ports

import "github.com/ghtyrant/sinfonia-server/internal/domain"

// CallLog persists an append-only history of dispatched commands.
type CallLog interface {
	Append(rec domain.CallRecord) error

	// List returns records newest-first. limit <= 0 means all.
	List(limit int) ([]domain.CallRecord, error)
}
