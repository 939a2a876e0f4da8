package recon

import (
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/internal/registry"
	"github.com/praetorian-inc/outrider/pkg/links/azure"
	"github.com/praetorian-inc/outrider/pkg/links/options"
	"github.com/praetorian-inc/outrider/pkg/outputters"
)

var AzureKQLQueries = chain.NewModule(
	cfg.NewMetadata(
		"KQL Queries",
		"List the canned SigninLogs queries for Log Analytics and Sentinel, matching the outbound predicate used by the Graph-based modules; optionally export them as .kql files.",
	).WithProperties(map[string]any{
		"id":          "kql-queries",
		"platform":    "azure",
		"opsec_level": "none",
		"authors":     []string{"Praetorian"},
		"references": []string{
			"https://learn.microsoft.com/en-us/azure/azure-monitor/reference/tables/signinlogs",
		},
	}),
).WithLinks(
	azure.NewAzureKQLTemplateLoaderLink,
).WithOutputters(
	outputters.NewKQLConsoleOutputter,
	outputters.NewKQLFileOutputter,
).WithParams(
	options.AzureQueryCategory(),
	options.AzureQueryTemplateDir(),
	options.OutputDir(),
).WithAutoRun()

func init() {
	registry.Register("azure", "recon", "kql-queries", *AzureKQLQueries)
}
