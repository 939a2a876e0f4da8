package azure

import (
	"fmt"

	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/pkg/discovery"
)

// AzureTenantResolverLink resolves each incoming tenant ID against the
// unauthenticated OpenID discovery endpoint. Lookups are independent: a
// failed ID yields a sentinel result and never aborts the batch.
type AzureTenantResolverLink struct {
	*chain.Base
	resolver *discovery.Resolver
}

func NewAzureTenantResolverLink(configs ...cfg.Config) chain.Link {
	l := &AzureTenantResolverLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *AzureTenantResolverLink) Params() []cfg.Param {
	return []cfg.Param{
		cfg.NewParam[string]("discovery-url", "Base URL of the OpenID discovery host").
			WithDefault(discovery.DefaultEndpoint),
	}
}

func (l *AzureTenantResolverLink) Initialize() error {
	l.resolver = discovery.NewResolver()
	if endpoint, err := cfg.As[string](l.Arg("discovery-url")); err == nil && endpoint != "" {
		l.resolver.Endpoint = endpoint
	}
	return nil
}

func (l *AzureTenantResolverLink) Process(input any) error {
	id, ok := input.(string)
	if !ok {
		return fmt.Errorf("expected tenant ID string, got %T", input)
	}

	result := l.resolver.Resolve(id)
	l.Logger.Debug("resolved tenant", "id", id, "status", result.Status, "region", result.Region)

	return l.Send(result)
}
