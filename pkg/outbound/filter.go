package outbound

import (
	"github.com/praetorian-inc/outrider/pkg/types"
)

// Filter keeps only events where the acting user's home tenant is ownTenantID
// and the resource tenant is a different, non-empty tenant. Surviving events
// keep their original order.
func Filter(events []types.SignInEvent, ownTenantID string) []types.SignInEvent {
	var outbound []types.SignInEvent
	for _, event := range events {
		if event.IsOutbound(ownTenantID) {
			outbound = append(outbound, event)
		}
	}
	return outbound
}
