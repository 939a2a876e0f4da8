package discovery

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/praetorian-inc/outrider/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownTenant = "31f2f0a1-6e5f-4a2b-9c8d-0123456789ab"

func discoveryServer(t *testing.T, issuer string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != fmt.Sprintf("/%s/.well-known/openid-configuration", knownTenant) {
			http.Error(w, `{"error":"invalid_tenant"}`, http.StatusBadRequest)
			return
		}
		fmt.Fprintf(w, `{
			"issuer": %q,
			"authorization_endpoint": "https://login.microsoftonline.com/%s/oauth2/v2.0/authorize",
			"token_endpoint": "https://login.microsoftonline.com/%s/oauth2/v2.0/token"
		}`, issuer, knownTenant, knownTenant)
	}))
}

func TestResolveValidTenant(t *testing.T) {
	server := discoveryServer(t, "https://sts.windows.net/abc123/")
	defer server.Close()

	r := &Resolver{Client: server.Client(), Endpoint: server.URL}
	result := r.Resolve(knownTenant)

	assert.Equal(t, types.LookupValid, result.Status)
	assert.True(t, result.ValidGUID)
	assert.Equal(t, knownTenant, result.ResolvedID)
	assert.Equal(t, types.RegionCommercial, result.Region)
	assert.Contains(t, result.TokenEndpoint, "/oauth2/v2.0/token")
}

func TestResolveUnknownTenant(t *testing.T) {
	server := discoveryServer(t, "https://sts.windows.net/abc123/")
	defer server.Close()

	r := &Resolver{Client: server.Client(), Endpoint: server.URL}
	result := r.Resolve("not-a-tenant")

	assert.Equal(t, types.LookupInvalid, result.Status)
	assert.False(t, result.ValidGUID)
	assert.Equal(t, types.NotApplicable, result.ResolvedID)
	assert.Equal(t, types.NotApplicable, result.Issuer)
	assert.Equal(t, types.NotApplicable, result.TokenEndpoint)
	assert.Equal(t, types.RegionUnknown, result.Region)
}

func TestResolveUnreachableEndpoint(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // connection refused from here on

	r := &Resolver{Client: http.DefaultClient, Endpoint: server.URL}
	result := r.Resolve(knownTenant)

	assert.Equal(t, types.LookupInvalid, result.Status)
	assert.Equal(t, types.NotApplicable, result.TokenEndpoint)
}

func TestResolveMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	}))
	defer server.Close()

	r := &Resolver{Client: server.Client(), Endpoint: server.URL}
	result := r.Resolve(knownTenant)

	assert.Equal(t, types.LookupInvalid, result.Status)
}

func TestClassifyRegion(t *testing.T) {
	tests := []struct {
		issuer   string
		expected string
	}{
		{"https://sts.windows.net/abc.us/", types.RegionUSGov},
		{"https://sts.windows.net/abc123/", types.RegionCommercial},
		{"https://login.microsoftonline.us/abc/v2.0", types.RegionUSGov},
		// Case-sensitive by design: ".US" does not match
		{"https://sts.windows.net/abc.US/", types.RegionCommercial},
	}

	for _, tt := range tests {
		t.Run(tt.issuer, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyRegion(tt.issuer))
		})
	}
}

func TestResolveAllIsIndependent(t *testing.T) {
	server := discoveryServer(t, "https://sts.windows.net/abc123/")
	defer server.Close()

	r := &Resolver{Client: server.Client(), Endpoint: server.URL}
	results := r.ResolveAll([]string{"bogus", knownTenant, "also-bogus"})

	require.Len(t, results, 3)
	assert.Equal(t, types.LookupInvalid, results[0].Status)
	assert.Equal(t, types.LookupValid, results[1].Status)
	assert.Equal(t, types.LookupInvalid, results[2].Status)
}

func TestReadIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tenants.txt")
	content := "  " + knownTenant + "  \n\nanother-id\n   \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	ids, err := ReadIDFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{knownTenant, "another-id"}, ids)
}

func TestReadIDFileMissing(t *testing.T) {
	_, err := ReadIDFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
