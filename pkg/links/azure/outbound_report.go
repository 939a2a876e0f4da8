package azure

import (
	"fmt"

	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/pkg/outbound"
)

// AzureOutboundReportLink aggregates the filtered outbound events into the
// tenant, user, application and timeline summaries plus run totals.
type AzureOutboundReportLink struct {
	*chain.Base
}

func NewAzureOutboundReportLink(configs ...cfg.Config) chain.Link {
	l := &AzureOutboundReportLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *AzureOutboundReportLink) Params() []cfg.Param {
	return []cfg.Param{}
}

func (l *AzureOutboundReportLink) Process(input any) error {
	batch, ok := input.(OutboundBatch)
	if !ok {
		return fmt.Errorf("expected OutboundBatch, got %T", input)
	}

	report := outbound.Report(batch.OwnTenantID, batch.LookbackDays, batch.Events)
	l.Logger.Debug("built outbound report",
		"tenants", len(report.Tenants),
		"users", len(report.Users),
		"apps", len(report.Apps))

	return l.Send(report)
}
