package types

import "time"

// SignInEvent is a single Entra ID authentication attempt as returned by the
// sign-in log API. Records are immutable once fetched.
type SignInEvent struct {
	CreatedDateTime     time.Time `json:"createdDateTime"`
	UserPrincipalName   string    `json:"userPrincipalName"`
	HomeTenantID        string    `json:"homeTenantId"`
	ResourceTenantID    string    `json:"resourceTenantId"`
	AppDisplayName      string    `json:"appDisplayName"`
	ResourceDisplayName string    `json:"resourceDisplayName"`
	IPAddress           string    `json:"ipAddress"`
	ResultCode          int32     `json:"resultCode"`
}

// IsOutbound reports whether the event left the boundary of ownTenantID:
// the user belongs to our tenant but authenticated into a different one.
func (e SignInEvent) IsOutbound(ownTenantID string) bool {
	return e.HomeTenantID == ownTenantID &&
		e.ResourceTenantID != ownTenantID &&
		e.ResourceTenantID != ""
}
