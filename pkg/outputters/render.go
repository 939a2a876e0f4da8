package outputters

import (
	"strconv"
	"strings"
	"time"

	"github.com/praetorian-inc/outrider/pkg/types"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func joinSamples(samples []string) string {
	return strings.Join(samples, ", ")
}

// TenantTable renders the external tenant summaries.
func TenantTable(summaries []types.TenantSummary) types.MarkdownTable {
	table := types.MarkdownTable{
		TableHeading: "External Tenant Summary",
		Headers:      []string{"External Tenant ID", "Access Count", "Unique Users", "Sample Users", "Unique Apps", "Sample Apps", "Sample Resources", "First Access", "Last Access"},
	}
	for _, s := range summaries {
		table.Rows = append(table.Rows, []string{
			s.ExternalTenantID,
			strconv.Itoa(s.AccessCount),
			strconv.Itoa(s.UniqueUserCount),
			joinSamples(s.SampleUsers),
			strconv.Itoa(s.UniqueAppCount),
			joinSamples(s.SampleApps),
			joinSamples(s.SampleResources),
			formatTime(s.FirstAccess),
			formatTime(s.LastAccess),
		})
	}
	return table
}

// UserTable renders the per-user summaries.
func UserTable(summaries []types.UserSummary) types.MarkdownTable {
	table := types.MarkdownTable{
		TableHeading: "User Summary",
		Headers:      []string{"User Principal Name", "External Tenants", "Access Count", "Sample Tenants", "Sample Apps", "First Access", "Last Access"},
	}
	for _, s := range summaries {
		table.Rows = append(table.Rows, []string{
			s.UserPrincipalName,
			strconv.Itoa(s.ExternalTenantCount),
			strconv.Itoa(s.AccessCount),
			joinSamples(s.SampleTenants),
			joinSamples(s.SampleApps),
			formatTime(s.FirstAccess),
			formatTime(s.LastAccess),
		})
	}
	return table
}

// AppTable renders the per-application summaries.
func AppTable(summaries []types.AppSummary) types.MarkdownTable {
	table := types.MarkdownTable{
		TableHeading: "Application Summary",
		Headers:      []string{"Application", "External Tenants", "Access Count", "Unique Users", "Sample Tenants", "First Access", "Last Access"},
	}
	for _, s := range summaries {
		table.Rows = append(table.Rows, []string{
			s.AppDisplayName,
			strconv.Itoa(s.ExternalTenantCount),
			strconv.Itoa(s.AccessCount),
			strconv.Itoa(s.UniqueUserCount),
			joinSamples(s.SampleTenants),
			formatTime(s.FirstAccess),
			formatTime(s.LastAccess),
		})
	}
	return table
}

// TimelineTable renders the per-day buckets.
func TimelineTable(buckets []types.TimelineBucket) types.MarkdownTable {
	table := types.MarkdownTable{
		TableHeading: "Timeline",
		Headers:      []string{"Day", "Access Count", "Unique Users", "External Tenants"},
	}
	for _, b := range buckets {
		table.Rows = append(table.Rows, []string{
			b.Day.Format("2006-01-02"),
			strconv.Itoa(b.AccessCount),
			strconv.Itoa(b.UniqueUserCount),
			strconv.Itoa(b.ExternalTenantCount),
		})
	}
	return table
}

// EventsTable renders the raw outbound events.
func EventsTable(events []types.SignInEvent) types.MarkdownTable {
	table := types.MarkdownTable{
		TableHeading: "Detailed Logs",
		Headers:      []string{"Timestamp", "User Principal Name", "Resource Tenant ID", "Application", "Resource", "IP Address", "Result Code"},
	}
	for _, e := range events {
		table.Rows = append(table.Rows, []string{
			formatTime(e.CreatedDateTime),
			e.UserPrincipalName,
			e.ResourceTenantID,
			e.AppDisplayName,
			e.ResourceDisplayName,
			e.IPAddress,
			strconv.FormatInt(int64(e.ResultCode), 10),
		})
	}
	return table
}

// LookupTable renders tenant lookup results.
func LookupTable(results []types.TenantLookupResult) types.MarkdownTable {
	table := types.MarkdownTable{
		TableHeading: "Tenant Lookup",
		Headers:      []string{"Tenant ID", "Valid GUID", "Resolved ID", "Issuer", "Region", "Token Endpoint", "Status"},
	}
	for _, r := range results {
		table.Rows = append(table.Rows, []string{
			r.TenantID,
			strconv.FormatBool(r.ValidGUID),
			r.ResolvedID,
			r.Issuer,
			r.Region,
			r.TokenEndpoint,
			r.Status,
		})
	}
	return table
}
