package catalogexport_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelprinc/mcp-prompt-broker/internal/adapters/outbound/catalogexport"
	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

func TestExport_WritesWellFormedMetadataFile(t *testing.T) {
	dir := t.TempDir()
	catalog := domain.NewCatalog([]domain.Profile{
		{Name: "alpha", Description: "first", Domains: []string{"engineering"}},
		{Name: "beta", Description: "second", Fallback: true},
	}, nil, nil)

	e := catalogexport.New(dir)
	require.NoError(t, e.Export(context.Background(), catalog))

	path := filepath.Join(dir, "profiles_metadata.json")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var payload domain.CatalogMetadataFile
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, 2, payload.TotalCount)
	assert.Len(t, payload.Profiles, 2)
	assert.Equal(t, "alpha", payload.Profiles[0].Name)
	assert.Equal(t, "first", payload.Profiles[0].Description)
}

func TestExport_LeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	catalog := domain.NewCatalog(nil, nil, nil)

	e := catalogexport.New(dir)
	require.NoError(t, e.Export(context.Background(), catalog))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "profiles_metadata.json", entries[0].Name())
}

func TestExport_OverwritesAPreviousMetadataFile(t *testing.T) {
	dir := t.TempDir()
	e := catalogexport.New(dir)

	require.NoError(t, e.Export(context.Background(), domain.NewCatalog([]domain.Profile{{Name: "one"}}, nil, nil)))
	require.NoError(t, e.Export(context.Background(), domain.NewCatalog([]domain.Profile{{Name: "one"}, {Name: "two"}}, nil, nil)))

	raw, err := os.ReadFile(filepath.Join(dir, "profiles_metadata.json"))
	require.NoError(t, err)

	var payload domain.CatalogMetadataFile
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, 2, payload.TotalCount)
}
