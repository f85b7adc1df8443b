package domain

import "context"

// CatalogSource is the port the application layer uses to obtain and
// refresh the profile catalog. Implemented by the profilefs adapter (C1+C2).
type CatalogSource interface {
	// Current returns the most recently loaded catalog snapshot.
	Current() *Catalog
	// Reload re-scans the profiles directory and atomically swaps the
	// current snapshot, returning a report of what happened.
	Reload(ctx context.Context) (*ReloadReport, error)
}

// MetadataExporter is the optional §6.5 write-back port (C9).
type MetadataExporter interface {
	Export(ctx context.Context, catalog *Catalog) error
}
