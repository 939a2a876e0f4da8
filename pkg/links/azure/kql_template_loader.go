package azure

import (
	"fmt"

	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/pkg/kql"
	"github.com/praetorian-inc/outrider/pkg/links/options"
)

// AzureKQLTemplateLoaderLink emits the canned SigninLogs query templates,
// optionally narrowed to a single category or query ID. User templates from
// --template-dir are loaded on top of the embedded set.
type AzureKQLTemplateLoaderLink struct {
	*chain.Base
}

func NewAzureKQLTemplateLoaderLink(configs ...cfg.Config) chain.Link {
	l := &AzureKQLTemplateLoaderLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *AzureKQLTemplateLoaderLink) Params() []cfg.Param {
	return []cfg.Param{
		options.AzureQueryCategory(),
		options.AzureQueryTemplateDir(),
		cfg.NewParam[string]("query-id", "Only emit the template with this ID"),
	}
}

func (l *AzureKQLTemplateLoaderLink) Process(input any) error {
	loader, err := kql.NewTemplateLoader()
	if err != nil {
		return err
	}

	if dir, _ := cfg.As[string](l.Arg("template-dir")); dir != "" {
		if err := loader.LoadUserTemplates(dir); err != nil {
			return err
		}
	}

	if id, _ := cfg.As[string](l.Arg("query-id")); id != "" {
		template, ok := loader.GetByID(id)
		if !ok {
			return fmt.Errorf("no query template with ID %q", id)
		}
		return l.Send(template)
	}

	category, _ := cfg.As[string](l.Arg("category"))
	for _, template := range loader.GetTemplates(category) {
		if err := l.Send(template); err != nil {
			return err
		}
	}

	return nil
}
