package types

// Region classification values for tenant lookups. The classification is a
// best-effort substring heuristic on the issuer URL, not a guaranteed mapping.
const (
	RegionCommercial = "Commercial"
	RegionUSGov      = "US Government"
	RegionUnknown    = "Unknown"
)

// Lookup status values.
const (
	LookupValid   = "Valid"
	LookupInvalid = "Invalid or Not Found"
)

// NotApplicable is the sentinel for fields of a failed lookup.
const NotApplicable = "N/A"

// TenantLookupResult is the outcome of resolving one tenant ID against the
// unauthenticated OpenID discovery endpoint. ResolvedID is the path segment
// extracted from the authorization endpoint; in practice this echoes the GUID
// rather than a friendly name.
type TenantLookupResult struct {
	TenantID      string `json:"tenantId"`
	ValidGUID     bool   `json:"validGuid"`
	ResolvedID    string `json:"resolvedId"`
	Issuer        string `json:"issuer"`
	Region        string `json:"region"`
	TokenEndpoint string `json:"tokenEndpoint"`
	Status        string `json:"status"`
}
