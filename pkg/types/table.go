package types

import "context"

// Table provides uniform CRUD operations for a single entity type.
type Table[T any] interface {
	// List returns every row, joined with its display names, in the
	// table's natural order. An empty table yields an empty, non-nil slice.
	List(ctx context.Context) ([]T, error)

	// Get retrieves the row with the given ID.
	// Returns a *NotFoundError if no row exists with that ID.
	Get(ctx context.Context, id int64) (*T, error)

	// Create validates the required fields of data and inserts it.
	// Returns the generated ID.
	Create(ctx context.Context, data *T) (int64, error)

	// Update replaces every writable column of the row with data.
	// Returns a *NotFoundError if the row does not exist; an update that
	// changes nothing succeeds.
	Update(ctx context.Context, id int64, data *T) error

	// Delete removes the row with the given ID.
	// Returns a *NotFoundError if no row exists with that ID.
	Delete(ctx context.Context, id int64) error
}
