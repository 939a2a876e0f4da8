package kql

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTemplatesLoad(t *testing.T) {
	loader, err := NewTemplateLoader()
	require.NoError(t, err)

	templates := loader.GetTemplates("")
	assert.Len(t, templates, 12)

	seen := make(map[string]bool)
	for _, template := range templates {
		assert.False(t, seen[template.ID], "duplicate template ID %s", template.ID)
		seen[template.ID] = true

		// Every catalog query targets the same outbound population as the
		// Graph-based modules.
		assert.Contains(t, template.Query, "SigninLogs", "template %s", template.ID)
		assert.Contains(t, template.Query, "ResourceTenantId != HomeTenantId", "template %s", template.ID)
		assert.Contains(t, template.Query, "isnotempty(ResourceTenantId)", "template %s", template.ID)
	}
}

func TestGetTemplatesByCategory(t *testing.T) {
	loader, err := NewTemplateLoader()
	require.NoError(t, err)

	tenant := loader.GetTemplates("Tenant")
	require.NotEmpty(t, tenant)
	for _, template := range tenant {
		assert.Equal(t, "Tenant", template.Category)
	}

	assert.Empty(t, loader.GetTemplates("NoSuchCategory"))
}

func TestGetByID(t *testing.T) {
	loader, err := NewTemplateLoader()
	require.NoError(t, err)

	template, ok := loader.GetByID("outbound-by-tenant")
	require.True(t, ok)
	assert.Equal(t, "Tenant", template.Category)
	assert.Contains(t, template.Query, "by ResourceTenantId")

	_, ok = loader.GetByID("does-not-exist")
	assert.False(t, ok)
}

func TestLoadUserTemplates(t *testing.T) {
	dir := t.TempDir()
	custom := `id: custom-query
name: Custom query
description: A user supplied query.
severity: info
category: Custom
query: |
  SigninLogs
  | where ResourceTenantId != HomeTenantId and isnotempty(ResourceTenantId)
  | count
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(custom), 0644))

	loader, err := NewTemplateLoader()
	require.NoError(t, err)
	require.NoError(t, loader.LoadUserTemplates(dir))

	template, ok := loader.GetByID("custom-query")
	require.True(t, ok)
	assert.Equal(t, "Custom", template.Category)
}

func TestLoadUserTemplatesMissingDir(t *testing.T) {
	loader, err := NewTemplateLoader()
	require.NoError(t, err)

	err = loader.LoadUserTemplates(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestValidateTemplate(t *testing.T) {
	err := validateTemplate(&QueryTemplate{Name: "x", Query: "y", Category: "z"})
	assert.Error(t, err)

	err = validateTemplate(&QueryTemplate{ID: "x", Name: "x", Query: "y", Category: "z"})
	assert.NoError(t, err)
}
