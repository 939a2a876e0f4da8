package discovery

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/praetorian-inc/outrider/pkg/types"
)

// DefaultEndpoint is the public cloud login host. Sovereign clouds publish
// their own discovery documents; lookups against them go through the same
// host redirect and still resolve.
const DefaultEndpoint = "https://login.microsoftonline.com"

// openIDConfiguration is the subset of the discovery document we read.
type openIDConfiguration struct {
	Issuer                string `json:"issuer"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
}

// authzTenantPattern extracts the path segment following the login host in
// the authorization endpoint. For Entra ID this echoes the tenant GUID, not
// a friendly name; we report it as the resolved identifier anyway.
var authzTenantPattern = regexp.MustCompile(`login\.microsoftonline\.com/([^/]+)/`)

// Resolver performs unauthenticated tenant lookups against the OpenID
// discovery endpoint.
type Resolver struct {
	Client   *http.Client
	Endpoint string
}

// NewResolver returns a resolver using http.DefaultClient and the public
// cloud endpoint.
func NewResolver() *Resolver {
	return &Resolver{Client: http.DefaultClient, Endpoint: DefaultEndpoint}
}

// Resolve looks up a single tenant ID. It is total: any string is attempted,
// and every failure collapses into a sentinel "Invalid or Not Found" result
// rather than an error, so one bad ID cannot abort a batch.
func (r *Resolver) Resolve(id string) types.TenantLookupResult {
	result := types.TenantLookupResult{
		TenantID:      id,
		ResolvedID:    types.NotApplicable,
		Issuer:        types.NotApplicable,
		Region:        types.RegionUnknown,
		TokenEndpoint: types.NotApplicable,
		Status:        types.LookupInvalid,
	}
	if _, err := uuid.Parse(id); err == nil {
		result.ValidGUID = true
	}

	url := fmt.Sprintf("%s/%s/.well-known/openid-configuration", r.Endpoint, id)
	resp, err := r.Client.Get(url)
	if err != nil {
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result
	}

	var config openIDConfiguration
	if err := json.NewDecoder(resp.Body).Decode(&config); err != nil {
		return result
	}
	if config.Issuer == "" || config.AuthorizationEndpoint == "" {
		return result
	}

	result.Issuer = config.Issuer
	result.TokenEndpoint = config.TokenEndpoint
	result.Status = types.LookupValid
	result.Region = classifyRegion(config.Issuer)

	if m := authzTenantPattern.FindStringSubmatch(config.AuthorizationEndpoint); m != nil {
		result.ResolvedID = m[1]
	}

	return result
}

// ResolveAll resolves each ID independently and collects every result.
func (r *Resolver) ResolveAll(ids []string) []types.TenantLookupResult {
	results := make([]types.TenantLookupResult, 0, len(ids))
	for _, id := range ids {
		results = append(results, r.Resolve(id))
	}
	return results
}

// classifyRegion is a best-effort heuristic: a ".us" substring in the issuer
// marks the US Government cloud. The match is case-sensitive and can false
// positive on issuers that legitimately contain ".us"; kept as-is on purpose.
func classifyRegion(issuer string) string {
	if strings.Contains(issuer, ".us") {
		return types.RegionUSGov
	}
	return types.RegionCommercial
}

// ReadIDFile reads a line-delimited tenant ID file, trimming each line and
// skipping blanks.
func ReadIDFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tenant ID file: %w", err)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tenant ID file: %w", err)
	}
	return ids, nil
}
