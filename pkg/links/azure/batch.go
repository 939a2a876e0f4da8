package azure

import (
	"github.com/praetorian-inc/outrider/pkg/types"
)

// SignInBatch is the full fetch result handed from the collector to the
// outbound filter.
type SignInBatch struct {
	OwnTenantID  string
	LookbackDays int
	Events       []types.SignInEvent
}

// OutboundBatch is a SignInBatch reduced to outbound events only.
type OutboundBatch struct {
	OwnTenantID  string
	LookbackDays int
	Events       []types.SignInEvent
}
