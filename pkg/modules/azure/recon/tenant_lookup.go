package recon

import (
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/internal/registry"
	"github.com/praetorian-inc/outrider/pkg/links/azure"
	"github.com/praetorian-inc/outrider/pkg/links/options"
	"github.com/praetorian-inc/outrider/pkg/outputters"
)

var AzureTenantLookup = chain.NewModule(
	cfg.NewMetadata(
		"Tenant Lookup",
		"Resolve tenant IDs through the unauthenticated OpenID discovery endpoint, reporting the issuer, token endpoint and a best-effort cloud region classification.",
	).WithProperties(map[string]any{
		"id":          "tenant-lookup",
		"platform":    "azure",
		"opsec_level": "stealth",
		"authors":     []string{"Praetorian"},
		"references": []string{
			"https://learn.microsoft.com/en-us/entra/identity-platform/v2-protocols-oidc#fetch-the-openid-configuration-document",
		},
	}),
).WithLinks(
	azure.NewAzureTenantIDLoaderLink,
	azure.NewAzureTenantResolverLink,
).WithOutputters(
	outputters.NewLookupConsoleOutputter,
	outputters.NewLookupCSVOutputter,
).WithParams(
	options.AzureTenantIDs(),
	options.AzureTenantIDFile(),
	options.OutputDir(),
	options.ExportBase(),
).WithAutoRun()

func init() {
	registry.Register("azure", "recon", "tenant-lookup", *AzureTenantLookup)
}
