package recon

import (
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/internal/registry"
	"github.com/praetorian-inc/outrider/pkg/links/azure"
	"github.com/praetorian-inc/outrider/pkg/links/options"
	"github.com/praetorian-inc/outrider/pkg/outputters"
)

var AzureOutboundLogs = chain.NewModule(
	cfg.NewMetadata(
		"Outbound Logs",
		"Run a canned SigninLogs query from the catalog against a Log Analytics workspace and render the result tables.",
	).WithProperties(map[string]any{
		"id":          "outbound-logs",
		"platform":    "azure",
		"opsec_level": "stealth",
		"authors":     []string{"Praetorian"},
		"references": []string{
			"https://learn.microsoft.com/en-us/azure/azure-monitor/logs/api/overview",
		},
	}),
).WithLinks(
	azure.NewAzureKQLTemplateLoaderLink,
	azure.NewAzureLogAnalyticsQueryLink,
).WithOutputters(
	outputters.NewMarkdownTableConsoleOutputter,
).WithParams(
	options.AzureWorkspaceID(),
	options.AzureQueryID(),
	options.AzureLookbackDays(),
	options.AzureQueryTemplateDir(),
).WithAutoRun()

func init() {
	registry.Register("azure", "recon", "outbound-logs", *AzureOutboundLogs)
}
