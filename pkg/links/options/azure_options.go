package options

import (
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// AzureLookbackDays is the sign-in log lookback window. Graph retains
// interactive sign-in logs for at most 30 days, so values are clamped there.
func AzureLookbackDays() cfg.Param {
	return cfg.NewParam[int]("days", "Lookback window in days (max 30)").
		WithShortcode("d").
		WithDefault(30)
}

// AzureTenantID overrides the own-tenant ID normally resolved from the
// authenticated Graph organization.
func AzureTenantID() cfg.Param {
	return cfg.NewParam[string]("tenant", "Own tenant ID (default: resolved from the authenticated organization)").
		WithShortcode("t")
}

func AzureTenantIDs() cfg.Param {
	return cfg.NewParam[[]string]("tenant-ids", "Tenant IDs to resolve (comma-separated)")
}

func AzureTenantIDFile() cfg.Param {
	return cfg.NewParam[string]("input-file", "File with one tenant ID per line").
		WithShortcode("i")
}

func AzureWorkspaceID() cfg.Param {
	return cfg.NewParam[string]("workspace-id", "Log Analytics workspace ID").
		WithShortcode("w").
		AsRequired()
}

func AzureQueryID() cfg.Param {
	return cfg.NewParam[string]("query-id", "ID of the catalog query to run").
		WithShortcode("q").
		WithDefault("outbound-by-tenant")
}

func AzureQueryCategory() cfg.Param {
	return cfg.NewParam[string]("category", "Category of catalog queries to list").
		WithShortcode("c")
}

func AzureQueryTemplateDir() cfg.Param {
	return cfg.NewParam[string]("template-dir", "Directory containing additional KQL query templates")
}
