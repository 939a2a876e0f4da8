package outbound

import (
	"sort"

	"github.com/mpvl/unique"
	"github.com/praetorian-inc/outrider/pkg/types"
)

// Totals computes the closing counters for a run over the filtered outbound
// events. Distinct counts ignore empty values.
func Totals(events []types.SignInEvent) types.RunTotals {
	return types.RunTotals{
		ExternalTenantCount: countDistinct(events, byTenant),
		OutboundEventCount:  len(events),
		UniqueUserCount:     countDistinct(events, byUser),
		UniqueAppCount:      countDistinct(events, byApp),
	}
}

func countDistinct(events []types.SignInEvent, value keyFunc) int {
	var values []string
	for _, event := range events {
		if v := value(event); v != "" {
			values = append(values, v)
		}
	}
	sort.Strings(values)
	unique.Strings(&values)
	return len(values)
}

// Report assembles the complete outbound report for a filtered event list.
func Report(ownTenantID string, lookbackDays int, events []types.SignInEvent) types.OutboundReport {
	return types.OutboundReport{
		OwnTenantID:  ownTenantID,
		LookbackDays: lookbackDays,
		Tenants:      SummarizeByTenant(events),
		Users:        SummarizeByUser(events),
		Apps:         SummarizeByApp(events),
		Timeline:     SummarizeByDay(events),
		Events:       events,
		Totals:       Totals(events),
	}
}
