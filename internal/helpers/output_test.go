package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	require.NoError(t, EnsureOutputDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Empty dir means current directory, nothing to create
	assert.NoError(t, EnsureOutputDir(""))
}

func TestExportPath(t *testing.T) {
	assert.Equal(t, "outbound_access_UserSummary.csv", ExportPath("", "outbound_access", "UserSummary", "csv"))
	assert.Equal(t, filepath.Join("out", "tenant_TenantLookup.csv"), ExportPath("out", "tenant", "TenantLookup", "csv"))
}
