package outputters

import (
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/internal/helpers"
	"github.com/praetorian-inc/outrider/internal/message"
	"github.com/praetorian-inc/outrider/pkg/links/options"
	"github.com/praetorian-inc/outrider/pkg/types"
)

// LookupCSVOutputter exports collected tenant lookup results to a single CSV
// file when an output directory is given.
type LookupCSVOutputter struct {
	*chain.BaseOutputter
	results   []types.TenantLookupResult
	outputDir string
	baseName  string
}

func NewLookupCSVOutputter(configs ...cfg.Config) chain.Outputter {
	o := &LookupCSVOutputter{}
	o.BaseOutputter = chain.NewBaseOutputter(o, configs...)
	return o
}

func (o *LookupCSVOutputter) Initialize() error {
	o.outputDir, _ = cfg.As[string](o.Arg("output"))
	o.baseName, _ = cfg.As[string](o.Arg("export-base"))
	if o.baseName == "" {
		o.baseName = "tenant"
	}
	return nil
}

func (o *LookupCSVOutputter) Output(val any) error {
	if result, ok := val.(types.TenantLookupResult); ok {
		o.results = append(o.results, result)
	}
	return nil
}

func (o *LookupCSVOutputter) Complete() error {
	if o.outputDir == "" || len(o.results) == 0 {
		return nil
	}

	if err := helpers.EnsureOutputDir(o.outputDir); err != nil {
		return err
	}

	path := helpers.ExportPath(o.outputDir, o.baseName, "TenantLookup", "csv")
	if err := writeCSV(path, LookupTable(o.results)); err != nil {
		return err
	}
	message.Success("CSV output written to %s", path)
	return nil
}

func (o *LookupCSVOutputter) Params() []cfg.Param {
	return []cfg.Param{
		options.OutputDir(),
		options.ExportBase(),
	}
}
