package outputters

import (
	"fmt"

	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/internal/message"
	"github.com/praetorian-inc/outrider/pkg/types"
)

// LookupConsoleOutputter collects tenant lookup results and prints them as a
// single table once the batch is complete.
type LookupConsoleOutputter struct {
	*chain.BaseOutputter
	results []types.TenantLookupResult
}

func NewLookupConsoleOutputter(configs ...cfg.Config) chain.Outputter {
	o := &LookupConsoleOutputter{}
	o.BaseOutputter = chain.NewBaseOutputter(o, configs...)
	return o
}

func (o *LookupConsoleOutputter) Output(val any) error {
	if result, ok := val.(types.TenantLookupResult); ok {
		o.results = append(o.results, result)
	}
	return nil
}

func (o *LookupConsoleOutputter) Complete() error {
	if len(o.results) == 0 {
		message.Info("no tenant IDs resolved")
		return nil
	}

	fmt.Print(LookupTable(o.results).ToString())
	fmt.Println()

	valid := 0
	for _, r := range o.results {
		if r.Status == types.LookupValid {
			valid++
		}
	}
	message.Success("Resolved %d of %d tenant IDs", valid, len(o.results))
	return nil
}

func (o *LookupConsoleOutputter) Params() []cfg.Param {
	return []cfg.Param{}
}
