package recon

import (
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/internal/registry"
	"github.com/praetorian-inc/outrider/pkg/links/azure"
	"github.com/praetorian-inc/outrider/pkg/links/options"
	"github.com/praetorian-inc/outrider/pkg/outputters"
)

var AzureOutboundAccess = chain.NewModule(
	cfg.NewMetadata(
		"Outbound Access",
		"Audit which external Entra ID tenants this organization's users have signed into, summarized by tenant, user, application and day, with optional CSV and JSON export.",
	).WithProperties(map[string]any{
		"id":          "outbound-access",
		"platform":    "azure",
		"opsec_level": "stealth",
		"authors":     []string{"Praetorian"},
		"references": []string{
			"https://learn.microsoft.com/en-us/graph/api/signin-list",
			"https://learn.microsoft.com/en-us/entra/identity/monitoring-health/concept-sign-ins",
			"https://learn.microsoft.com/en-us/entra/external-id/cross-tenant-access-overview",
		},
	}),
).WithLinks(
	azure.NewAzureSignInCollectorLink,
	azure.NewAzureOutboundFilterLink,
	azure.NewAzureOutboundReportLink,
).WithOutputters(
	outputters.NewOutboundConsoleOutputter,
	outputters.NewOutboundCSVOutputter,
	outputters.NewRuntimeJSONOutputter,
).WithParams(
	options.AzureLookbackDays(),
	options.AzureTenantID(),
	options.OutputDir(),
	options.ExportBase(),
	options.JSONOutfile(),
	options.JQExpr(),
).WithAutoRun()

func init() {
	registry.Register("azure", "recon", "outbound-access", *AzureOutboundAccess)
}
