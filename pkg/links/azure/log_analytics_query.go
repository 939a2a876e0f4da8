package azure

import (
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/monitor/azquery"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/internal/helpers"
	"github.com/praetorian-inc/outrider/pkg/kql"
	"github.com/praetorian-inc/outrider/pkg/links/options"
	"github.com/praetorian-inc/outrider/pkg/types"
)

// AzureLogAnalyticsQueryLink executes incoming catalog query templates
// against a Log Analytics workspace and converts each result table into a
// MarkdownTable for the renderer. The query language execution itself is
// entirely server-side; this is a thin client call.
type AzureLogAnalyticsQueryLink struct {
	*chain.Base
	client *azquery.LogsClient
}

func NewAzureLogAnalyticsQueryLink(configs ...cfg.Config) chain.Link {
	l := &AzureLogAnalyticsQueryLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *AzureLogAnalyticsQueryLink) Params() []cfg.Param {
	return []cfg.Param{
		options.AzureWorkspaceID(),
		options.AzureLookbackDays(),
	}
}

func (l *AzureLogAnalyticsQueryLink) Initialize() error {
	cred, err := helpers.GetAzureCredentials()
	if err != nil {
		return err
	}
	client, err := azquery.NewLogsClient(cred, nil)
	if err != nil {
		return fmt.Errorf("failed to create Log Analytics client: %w", err)
	}
	l.client = client
	return nil
}

func (l *AzureLogAnalyticsQueryLink) Process(input any) error {
	template, ok := input.(*kql.QueryTemplate)
	if !ok {
		return fmt.Errorf("expected query template, got %T", input)
	}

	workspaceID, err := cfg.As[string](l.Arg("workspace-id"))
	if err != nil || workspaceID == "" {
		return fmt.Errorf("workspace-id is required")
	}

	days, err := cfg.As[int](l.Arg("days"))
	if err != nil || days < 1 {
		days = MaxLookbackDays
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	l.Logger.Info("running catalog query", "id", template.ID, "workspace", workspaceID, "days", days)

	res, err := l.client.QueryWorkspace(l.Context(), workspaceID, azquery.Body{
		Query:    to.Ptr(template.Query),
		Timespan: to.Ptr(azquery.NewTimeInterval(start, end)),
	}, nil)
	if err != nil {
		return fmt.Errorf("query %s failed: %w", template.ID, err)
	}
	if res.Error != nil {
		return fmt.Errorf("query %s failed: %s", template.ID, res.Error.Message)
	}

	for _, table := range res.Tables {
		if table == nil {
			continue
		}
		if err := l.Send(convertLogsTable(template, table)); err != nil {
			return err
		}
	}

	return nil
}

func convertLogsTable(template *kql.QueryTemplate, table *azquery.Table) types.MarkdownTable {
	out := types.MarkdownTable{TableHeading: template.Name}

	for _, column := range table.Columns {
		if column != nil && column.Name != nil {
			out.Headers = append(out.Headers, *column.Name)
		}
	}

	for _, row := range table.Rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			if cell == nil {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, fmt.Sprintf("%v", cell))
		}
		out.Rows = append(out.Rows, cells)
	}

	return out
}
