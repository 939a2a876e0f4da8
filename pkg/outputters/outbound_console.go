package outputters

import (
	"fmt"

	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/internal/message"
	"github.com/praetorian-inc/outrider/pkg/types"
)

// OutboundConsoleOutputter renders the outbound access report as aligned
// tables followed by the run totals. The totals always print, including for
// the zero-outbound terminal state.
type OutboundConsoleOutputter struct {
	*chain.BaseOutputter
	report *types.OutboundReport
}

func NewOutboundConsoleOutputter(configs ...cfg.Config) chain.Outputter {
	o := &OutboundConsoleOutputter{}
	o.BaseOutputter = chain.NewBaseOutputter(o, configs...)
	return o
}

func (o *OutboundConsoleOutputter) Output(val any) error {
	if report, ok := val.(types.OutboundReport); ok {
		o.report = &report
	}
	return nil
}

func (o *OutboundConsoleOutputter) Complete() error {
	if o.report == nil {
		return nil
	}
	report := o.report

	if report.Totals.OutboundEventCount == 0 {
		message.Info("no outbound access found in the last %d days", report.LookbackDays)
	} else {
		message.Section("Outbound Access Report (last %d days)", report.LookbackDays)
		fmt.Print(TenantTable(report.Tenants).ToString())
		fmt.Println()
		fmt.Print(UserTable(report.Users).ToString())
		fmt.Println()
		fmt.Print(AppTable(report.Apps).ToString())
		fmt.Println()
		fmt.Print(TimelineTable(report.Timeline).ToString())
		fmt.Println()
	}

	message.Success("External tenants accessed: %d", report.Totals.ExternalTenantCount)
	message.Success("Outbound sign-in events:   %d", report.Totals.OutboundEventCount)
	message.Success("Distinct users:            %d", report.Totals.UniqueUserCount)
	message.Success("Distinct applications:     %d", report.Totals.UniqueAppCount)
	return nil
}

func (o *OutboundConsoleOutputter) Params() []cfg.Param {
	return []cfg.Param{}
}
