package outbound

import (
	"fmt"
	"testing"
	"time"

	"github.com/praetorian-inc/outrider/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signIn(ts time.Time, user, tenant, app string) types.SignInEvent {
	return types.SignInEvent{
		CreatedDateTime:   ts,
		UserPrincipalName: user,
		HomeTenantID:      "T1",
		ResourceTenantID:  tenant,
		AppDisplayName:    app,
	}
}

func TestSummarizeByTenant(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	events := []types.SignInEvent{
		signIn(base, "u1@contoso.com", "T2", "Teams"),
		signIn(base.Add(time.Hour), "u2@contoso.com", "T2", "SharePoint"),
		signIn(base.Add(2*time.Hour), "u1@contoso.com", "T3", "Teams"),
	}

	summaries := SummarizeByTenant(events)
	require.Len(t, summaries, 2)

	// T2 has the higher access count, so it sorts first
	t2 := summaries[0]
	assert.Equal(t, "T2", t2.ExternalTenantID)
	assert.Equal(t, 2, t2.AccessCount)
	assert.Equal(t, 2, t2.UniqueUserCount)
	assert.Equal(t, []string{"u1@contoso.com", "u2@contoso.com"}, t2.SampleUsers)
	assert.Equal(t, 2, t2.UniqueAppCount)
	assert.Equal(t, base, t2.FirstAccess)
	assert.Equal(t, base.Add(time.Hour), t2.LastAccess)

	t3 := summaries[1]
	assert.Equal(t, "T3", t3.ExternalTenantID)
	assert.Equal(t, 1, t3.AccessCount)
	assert.Equal(t, 1, t3.UniqueUserCount)
}

func TestAccessCountsSumToTotal(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	var events []types.SignInEvent
	for i := 0; i < 50; i++ {
		tenant := fmt.Sprintf("T%d", 2+i%7)
		user := fmt.Sprintf("u%d@contoso.com", i%11)
		events = append(events, signIn(base.Add(time.Duration(i)*time.Minute), user, tenant, "Teams"))
	}

	summaries := SummarizeByTenant(events)

	sum := 0
	for _, s := range summaries {
		sum += s.AccessCount
	}
	assert.Equal(t, len(events), sum)
}

func TestAggregationIsIdempotent(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	var events []types.SignInEvent
	for i := 0; i < 30; i++ {
		events = append(events, signIn(
			base.Add(time.Duration(i)*time.Hour),
			fmt.Sprintf("u%d@contoso.com", i%5),
			fmt.Sprintf("T%d", 2+i%3),
			fmt.Sprintf("app-%d", i%4),
		))
	}

	first := SummarizeByTenant(events)
	second := SummarizeByTenant(events)
	assert.Equal(t, first, second)

	firstUsers := SummarizeByUser(events)
	secondUsers := SummarizeByUser(events)
	assert.Equal(t, firstUsers, secondUsers)
}

func TestSampleListsAreBounded(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	var events []types.SignInEvent
	for i := 0; i < 20; i++ {
		events = append(events, signIn(
			base.Add(time.Duration(i)*time.Minute),
			fmt.Sprintf("u%d@contoso.com", i),
			"T2",
			fmt.Sprintf("app-%d", i),
		))
	}

	summaries := SummarizeByTenant(events)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Len(t, s.SampleUsers, SampleLimit)
	assert.Len(t, s.SampleApps, SampleLimit)
	// Samples are the first distinct values in group order
	assert.Equal(t, []string{"u0@contoso.com", "u1@contoso.com", "u2@contoso.com", "u3@contoso.com", "u4@contoso.com"}, s.SampleUsers)
	assert.Equal(t, 20, s.UniqueUserCount)
}

func TestSummarizeByUserSortsByTenantCount(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	events := []types.SignInEvent{
		signIn(base, "narrow@contoso.com", "T2", "Teams"),
		signIn(base, "narrow@contoso.com", "T2", "Teams"),
		signIn(base, "narrow@contoso.com", "T2", "Teams"),
		signIn(base, "wide@contoso.com", "T2", "Teams"),
		signIn(base, "wide@contoso.com", "T3", "Teams"),
	}

	summaries := SummarizeByUser(events)
	require.Len(t, summaries, 2)
	assert.Equal(t, "wide@contoso.com", summaries[0].UserPrincipalName)
	assert.Equal(t, 2, summaries[0].ExternalTenantCount)
	assert.Equal(t, "narrow@contoso.com", summaries[1].UserPrincipalName)
	assert.Equal(t, 3, summaries[1].AccessCount)
}

func TestSummarizeByDay(t *testing.T) {
	events := []types.SignInEvent{
		signIn(time.Date(2025, 6, 2, 23, 30, 0, 0, time.UTC), "u1@contoso.com", "T2", "Teams"),
		signIn(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), "u1@contoso.com", "T2", "Teams"),
		signIn(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), "u2@contoso.com", "T3", "Teams"),
	}

	buckets := SummarizeByDay(events)
	require.Len(t, buckets, 2)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), buckets[0].Day)
	assert.Equal(t, 2, buckets[0].AccessCount)
	assert.Equal(t, 2, buckets[0].UniqueUserCount)
	assert.Equal(t, 2, buckets[0].ExternalTenantCount)

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), buckets[1].Day)
	assert.Equal(t, 1, buckets[1].AccessCount)
}

func TestTotals(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	events := []types.SignInEvent{
		signIn(base, "u1@contoso.com", "T2", "Teams"),
		signIn(base, "u2@contoso.com", "T2", "SharePoint"),
		signIn(base, "u1@contoso.com", "T3", "Teams"),
	}

	totals := Totals(events)
	assert.Equal(t, 2, totals.ExternalTenantCount)
	assert.Equal(t, 3, totals.OutboundEventCount)
	assert.Equal(t, 2, totals.UniqueUserCount)
	assert.Equal(t, 2, totals.UniqueAppCount)
}

func TestTotalsEmpty(t *testing.T) {
	totals := Totals(nil)
	assert.Equal(t, types.RunTotals{}, totals)
}

func TestReportCombinesAllViews(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	events := []types.SignInEvent{
		signIn(base, "u1@contoso.com", "T2", "Teams"),
		signIn(base, "u2@contoso.com", "T2", "Teams"),
	}

	report := Report("T1", 30, events)
	assert.Equal(t, "T1", report.OwnTenantID)
	assert.Equal(t, 30, report.LookbackDays)
	assert.Len(t, report.Tenants, 1)
	assert.Len(t, report.Users, 2)
	assert.Len(t, report.Apps, 1)
	assert.Len(t, report.Timeline, 1)
	assert.Equal(t, 2, report.Totals.OutboundEventCount)
}
