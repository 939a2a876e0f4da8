package outbound

import (
	"sort"
	"time"

	"github.com/praetorian-inc/outrider/pkg/types"
)

// SampleLimit caps the sample lists carried on each summary. The samples are
// a display truncation in first-seen order, not a ranking.
const SampleLimit = 5

type keyFunc func(types.SignInEvent) string

type group struct {
	key    string
	events []types.SignInEvent
}

// partition splits events into groups keyed by key, preserving both the
// first-seen order of keys and the event order inside each group. This keeps
// aggregation deterministic for a given input list.
func partition(events []types.SignInEvent, key keyFunc) []group {
	index := make(map[string]int)
	var groups []group
	for _, event := range events {
		k := key(event)
		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{key: k})
		}
		groups[i].events = append(groups[i].events, event)
	}
	return groups
}

// firstSeenDistinct returns up to limit distinct values in first-seen order,
// skipping empty strings.
func firstSeenDistinct(events []types.SignInEvent, limit int, value keyFunc) []string {
	seen := make(map[string]bool)
	var out []string
	for _, event := range events {
		v := value(event)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		if len(out) < limit {
			out = append(out, v)
		}
	}
	return out
}

func distinctCount(events []types.SignInEvent, value keyFunc) int {
	seen := make(map[string]bool)
	for _, event := range events {
		if v := value(event); v != "" {
			seen[v] = true
		}
	}
	return len(seen)
}

func timeBounds(events []types.SignInEvent) (first, last time.Time) {
	for _, event := range events {
		if first.IsZero() || event.CreatedDateTime.Before(first) {
			first = event.CreatedDateTime
		}
		if event.CreatedDateTime.After(last) {
			last = event.CreatedDateTime
		}
	}
	return first, last
}

func byUser(e types.SignInEvent) string     { return e.UserPrincipalName }
func byTenant(e types.SignInEvent) string   { return e.ResourceTenantID }
func byApp(e types.SignInEvent) string      { return e.AppDisplayName }
func byResource(e types.SignInEvent) string { return e.ResourceDisplayName }

// SummarizeByTenant aggregates outbound events per external tenant, sorted by
// access count descending with stable ties.
func SummarizeByTenant(events []types.SignInEvent) []types.TenantSummary {
	var summaries []types.TenantSummary
	for _, g := range partition(events, byTenant) {
		first, last := timeBounds(g.events)
		summaries = append(summaries, types.TenantSummary{
			ExternalTenantID: g.key,
			AccessCount:      len(g.events),
			UniqueUserCount:  distinctCount(g.events, byUser),
			SampleUsers:      firstSeenDistinct(g.events, SampleLimit, byUser),
			UniqueAppCount:   distinctCount(g.events, byApp),
			SampleApps:       firstSeenDistinct(g.events, SampleLimit, byApp),
			SampleResources:  firstSeenDistinct(g.events, SampleLimit, byResource),
			FirstAccess:      first,
			LastAccess:       last,
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].AccessCount > summaries[j].AccessCount
	})
	return summaries
}

// SummarizeByUser aggregates outbound events per user, sorted by the number
// of distinct external tenants reached, descending.
func SummarizeByUser(events []types.SignInEvent) []types.UserSummary {
	var summaries []types.UserSummary
	for _, g := range partition(events, byUser) {
		first, last := timeBounds(g.events)
		summaries = append(summaries, types.UserSummary{
			UserPrincipalName:   g.key,
			ExternalTenantCount: distinctCount(g.events, byTenant),
			AccessCount:         len(g.events),
			SampleTenants:       firstSeenDistinct(g.events, SampleLimit, byTenant),
			SampleApps:          firstSeenDistinct(g.events, SampleLimit, byApp),
			FirstAccess:         first,
			LastAccess:          last,
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].ExternalTenantCount > summaries[j].ExternalTenantCount
	})
	return summaries
}

// SummarizeByApp aggregates outbound events per application, sorted by the
// number of distinct external tenants reached, descending.
func SummarizeByApp(events []types.SignInEvent) []types.AppSummary {
	var summaries []types.AppSummary
	for _, g := range partition(events, byApp) {
		first, last := timeBounds(g.events)
		summaries = append(summaries, types.AppSummary{
			AppDisplayName:      g.key,
			ExternalTenantCount: distinctCount(g.events, byTenant),
			AccessCount:         len(g.events),
			UniqueUserCount:     distinctCount(g.events, byUser),
			SampleTenants:       firstSeenDistinct(g.events, SampleLimit, byTenant),
			FirstAccess:         first,
			LastAccess:          last,
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].ExternalTenantCount > summaries[j].ExternalTenantCount
	})
	return summaries
}

// SummarizeByDay buckets outbound events by UTC calendar day, in
// chronological order.
func SummarizeByDay(events []types.SignInEvent) []types.TimelineBucket {
	byDay := func(e types.SignInEvent) string {
		return e.CreatedDateTime.UTC().Format("2006-01-02")
	}
	var buckets []types.TimelineBucket
	for _, g := range partition(events, byDay) {
		day, _ := time.Parse("2006-01-02", g.key)
		buckets = append(buckets, types.TimelineBucket{
			Day:                 day,
			AccessCount:         len(g.events),
			UniqueUserCount:     distinctCount(g.events, byUser),
			ExternalTenantCount: distinctCount(g.events, byTenant),
		})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Day.Before(buckets[j].Day)
	})
	return buckets
}
