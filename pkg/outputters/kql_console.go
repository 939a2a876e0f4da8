package outputters

import (
	"fmt"

	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/internal/message"
	"github.com/praetorian-inc/outrider/pkg/kql"
)

// KQLConsoleOutputter prints each catalog query with its metadata and full
// query text.
type KQLConsoleOutputter struct {
	*chain.BaseOutputter
	count int
}

func NewKQLConsoleOutputter(configs ...cfg.Config) chain.Outputter {
	o := &KQLConsoleOutputter{}
	o.BaseOutputter = chain.NewBaseOutputter(o, configs...)
	return o
}

func (o *KQLConsoleOutputter) Output(val any) error {
	template, ok := val.(*kql.QueryTemplate)
	if !ok {
		return nil
	}
	o.count++

	message.Section("%s (%s)", template.Name, template.ID)
	message.Info("category: %s, severity: %s", template.Category, template.Severity)
	message.Info("%s", template.Description)
	fmt.Println()
	fmt.Println(template.Query)
	return nil
}

func (o *KQLConsoleOutputter) Complete() error {
	if o.count == 0 {
		message.Warning("no catalog queries matched")
	}
	return nil
}

func (o *KQLConsoleOutputter) Params() []cfg.Param {
	return []cfg.Param{}
}
