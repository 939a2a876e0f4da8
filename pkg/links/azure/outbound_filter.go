package azure

import (
	"fmt"

	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/pkg/outbound"
)

// AzureOutboundFilterLink reduces a sign-in batch to cross-tenant events:
// home tenant matches our own, resource tenant is a different, non-empty
// tenant. An empty result is a valid outcome, not an error.
type AzureOutboundFilterLink struct {
	*chain.Base
}

func NewAzureOutboundFilterLink(configs ...cfg.Config) chain.Link {
	l := &AzureOutboundFilterLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *AzureOutboundFilterLink) Params() []cfg.Param {
	return []cfg.Param{}
}

func (l *AzureOutboundFilterLink) Process(input any) error {
	batch, ok := input.(SignInBatch)
	if !ok {
		return fmt.Errorf("expected SignInBatch, got %T", input)
	}

	filtered := outbound.Filter(batch.Events, batch.OwnTenantID)
	l.Logger.Info("filtered outbound events", "total", len(batch.Events), "outbound", len(filtered))

	return l.Send(OutboundBatch{
		OwnTenantID:  batch.OwnTenantID,
		LookbackDays: batch.LookbackDays,
		Events:       filtered,
	})
}
