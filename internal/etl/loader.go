package etl

import "sales-data-lab/internal/domain"

// Loader persists the cleaned batch to the columnar output. The pipeline
// only needs the row count and destination back; the write itself is an
// all-or-nothing collaborator call.
type Loader interface {
	Load(rows []domain.CleanedOrder) (LoadStats, error)
}

// MemoryLoader keeps the loaded batch in memory. Used by tests and demo
// runs that have no writable destination.
type MemoryLoader struct {
	Rows []domain.CleanedOrder
}

// Load captures rows and reports a memory destination.
func (l *MemoryLoader) Load(rows []domain.CleanedOrder) (LoadStats, error) {
	l.Rows = rows
	return LoadStats{OutputPath: "memory", LoadedRecords: len(rows)}, nil
}
