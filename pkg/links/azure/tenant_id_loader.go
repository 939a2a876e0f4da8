package azure

import (
	"fmt"

	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/pkg/discovery"
	"github.com/praetorian-inc/outrider/pkg/links/options"
)

// AzureTenantIDLoaderLink emits the tenant IDs to resolve, taken from the
// tenant-ids flag and/or a line-delimited input file. A missing input file is
// a hard error; the resolver downstream never fails on individual IDs.
type AzureTenantIDLoaderLink struct {
	*chain.Base
}

func NewAzureTenantIDLoaderLink(configs ...cfg.Config) chain.Link {
	l := &AzureTenantIDLoaderLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *AzureTenantIDLoaderLink) Params() []cfg.Param {
	return []cfg.Param{
		options.AzureTenantIDs(),
		options.AzureTenantIDFile(),
	}
}

func (l *AzureTenantIDLoaderLink) Process(input any) error {
	ids, _ := cfg.As[[]string](l.Arg("tenant-ids"))

	if file, _ := cfg.As[string](l.Arg("input-file")); file != "" {
		fromFile, err := discovery.ReadIDFile(file)
		if err != nil {
			return err
		}
		ids = append(ids, fromFile...)
	}

	if len(ids) == 0 {
		return fmt.Errorf("no tenant IDs provided; use --tenant-ids or --input-file")
	}

	for _, id := range ids {
		if err := l.Send(id); err != nil {
			return err
		}
	}

	return nil
}
