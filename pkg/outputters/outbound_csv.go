package outputters

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/internal/helpers"
	"github.com/praetorian-inc/outrider/internal/message"
	"github.com/praetorian-inc/outrider/pkg/links/options"
	"github.com/praetorian-inc/outrider/pkg/types"
)

// OutboundCSVOutputter exports each report table to its own CSV file,
// deriving file names by suffixing the export base name. Nothing is written
// unless an output directory is given.
type OutboundCSVOutputter struct {
	*chain.BaseOutputter
	report    *types.OutboundReport
	outputDir string
	baseName  string
}

func NewOutboundCSVOutputter(configs ...cfg.Config) chain.Outputter {
	o := &OutboundCSVOutputter{}
	o.BaseOutputter = chain.NewBaseOutputter(o, configs...)
	return o
}

func (o *OutboundCSVOutputter) Initialize() error {
	o.outputDir, _ = cfg.As[string](o.Arg("output"))
	o.baseName, _ = cfg.As[string](o.Arg("export-base"))
	if o.baseName == "" {
		o.baseName = "outbound_access"
	}
	return nil
}

func (o *OutboundCSVOutputter) Output(val any) error {
	if report, ok := val.(types.OutboundReport); ok {
		o.report = &report
	}
	return nil
}

func (o *OutboundCSVOutputter) Complete() error {
	if o.report == nil || o.outputDir == "" {
		return nil
	}

	if err := helpers.EnsureOutputDir(o.outputDir); err != nil {
		return err
	}

	tables := map[string]types.MarkdownTable{
		"ExternalTenantSummary": TenantTable(o.report.Tenants),
		"UserSummary":           UserTable(o.report.Users),
		"AppSummary":            AppTable(o.report.Apps),
		"Timeline":              TimelineTable(o.report.Timeline),
		"DetailedLogs":          EventsTable(o.report.Events),
	}

	for _, suffix := range []string{"ExternalTenantSummary", "UserSummary", "AppSummary", "Timeline", "DetailedLogs"} {
		path := helpers.ExportPath(o.outputDir, o.baseName, suffix, "csv")
		if err := writeCSV(path, tables[suffix]); err != nil {
			return err
		}
		message.Success("CSV output written to %s", path)
	}

	return nil
}

func (o *OutboundCSVOutputter) Params() []cfg.Param {
	return []cfg.Param{
		options.OutputDir(),
		options.ExportBase(),
	}
}

func writeCSV(path string, table types.MarkdownTable) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(table.Headers); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	return nil
}
