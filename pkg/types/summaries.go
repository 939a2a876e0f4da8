package types

import "time"

// TenantSummary aggregates outbound sign-ins for one external tenant.
type TenantSummary struct {
	ExternalTenantID string    `json:"externalTenantId"`
	AccessCount      int       `json:"accessCount"`
	UniqueUserCount  int       `json:"uniqueUserCount"`
	SampleUsers      []string  `json:"sampleUsers"`
	UniqueAppCount   int       `json:"uniqueAppCount"`
	SampleApps       []string  `json:"sampleApps"`
	SampleResources  []string  `json:"sampleResources"`
	FirstAccess      time.Time `json:"firstAccess"`
	LastAccess       time.Time `json:"lastAccess"`
}

// UserSummary aggregates outbound sign-ins for one user.
type UserSummary struct {
	UserPrincipalName   string    `json:"userPrincipalName"`
	ExternalTenantCount int       `json:"externalTenantCount"`
	AccessCount         int       `json:"accessCount"`
	SampleTenants       []string  `json:"sampleTenants"`
	SampleApps          []string  `json:"sampleApps"`
	FirstAccess         time.Time `json:"firstAccess"`
	LastAccess          time.Time `json:"lastAccess"`
}

// AppSummary aggregates outbound sign-ins for one application.
type AppSummary struct {
	AppDisplayName      string    `json:"appDisplayName"`
	ExternalTenantCount int       `json:"externalTenantCount"`
	AccessCount         int       `json:"accessCount"`
	UniqueUserCount     int       `json:"uniqueUserCount"`
	SampleTenants       []string  `json:"sampleTenants"`
	FirstAccess         time.Time `json:"firstAccess"`
	LastAccess          time.Time `json:"lastAccess"`
}

// TimelineBucket aggregates outbound sign-ins for one UTC calendar day.
type TimelineBucket struct {
	Day                 time.Time `json:"day"`
	AccessCount         int       `json:"accessCount"`
	UniqueUserCount     int       `json:"uniqueUserCount"`
	ExternalTenantCount int       `json:"externalTenantCount"`
}

// RunTotals are the closing counters printed after every report run.
type RunTotals struct {
	ExternalTenantCount int `json:"externalTenantCount"`
	OutboundEventCount  int `json:"outboundEventCount"`
	UniqueUserCount     int `json:"uniqueUserCount"`
	UniqueAppCount      int `json:"uniqueAppCount"`
}

// OutboundReport is the full result of one outbound-access run.
type OutboundReport struct {
	OwnTenantID  string           `json:"ownTenantId"`
	LookbackDays int              `json:"lookbackDays"`
	Tenants      []TenantSummary  `json:"tenants"`
	Users        []UserSummary    `json:"users"`
	Apps         []AppSummary     `json:"apps"`
	Timeline     []TimelineBucket `json:"timeline"`
	Events       []SignInEvent    `json:"events"`
	Totals       RunTotals        `json:"totals"`
}
