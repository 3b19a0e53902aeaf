package reconcile

import "context"

// Adapter defines the catalog-specific reconciliation logic. Each adapter knows
// how to load one catalog (skills, decorations, armors) from both locations,
// index it by id and compare two versions of an entry.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "skills", "armors").
	Name() string

	// LoadBuiltIndex loads the freshly built catalog indexed by id.
	LoadBuiltIndex(ctx context.Context, location string) (map[string]Item, error)

	// LoadPublishedIndex loads the published catalog indexed by id.
	// A catalog that was never published yields an empty index.
	LoadPublishedIndex(ctx context.Context, location string) (map[string]Item, error)

	// ResolveName returns the display name given the available items.
	// Either item may be nil if not present in that location.
	ResolveName(built, published Item) string

	// CompareFields compares two versions of an entry and returns a list of
	// mismatch descriptions. Both items are guaranteed to be non-nil.
	CompareFields(built, published Item) []string
}
