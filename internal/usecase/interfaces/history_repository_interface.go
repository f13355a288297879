package interfaces

import (
	"context"

	"fabricmeasure/internal/domain/entities"
)

// IHistoryRepository abstracts the local persisted measurement history.
//
// The store is a single serialized collection, read-modify-written wholesale:
//   - List loads the full collection; absent or unparsable storage degrades
//     to an empty collection, never an error (fail-soft).
//   - Append prepends the record and re-persists the whole collection.
//   - Remove filters by id and re-persists; removing an unknown id is a
//     no-op, not an error.
//
// Append/Remove always read the latest persisted snapshot before writing.
// Cross-process concurrent writers are not otherwise guarded; the session
// model assumes a single writer.

type IHistoryRepository interface {
	List(ctx context.Context) ([]entities.HistoryRecord, error)
	Append(ctx context.Context, record entities.HistoryRecord) error
	Remove(ctx context.Context, id string) error
}
