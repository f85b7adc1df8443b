// Package catalogexport implements the optional §6.5 metadata write-back
// (C9): after a successful reload, the catalog's provenance projection is
// persisted to profiles_metadata.json at the profiles-dir root.
package catalogexport

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

const metadataFileName = "profiles_metadata.json"

// Exporter writes the catalog metadata file atomically: write to a temp
// sibling, then rename into place, so readers never observe a partial file.
type Exporter struct {
	dir string
}

func New(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Export implements domain.MetadataExporter.
func (e *Exporter) Export(_ context.Context, catalog *domain.Catalog) error {
	profiles := catalog.All()
	entries := make([]domain.ProfileMetadataEntry, 0, len(profiles))
	for _, p := range profiles {
		entries = append(entries, p.ToMetadataEntry())
	}

	payload := domain.CatalogMetadataFile{
		GeneratedAt: catalog.GeneratedAt(),
		TotalCount:  len(entries),
		Profiles:    entries,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling catalog metadata: %w", err)
	}

	target := filepath.Join(e.dir, metadataFileName)
	tmp, err := os.CreateTemp(e.dir, metadataFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp metadata file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp metadata file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp metadata file: %w", err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming metadata file into place: %w", err)
	}
	return nil
}
