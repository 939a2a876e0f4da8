package helpers

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
)

// GetAzureCredentials returns Azure credentials using DefaultAzureCredential
func GetAzureCredentials() (*azidentity.DefaultAzureCredential, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get Azure credentials: %w", err)
	}
	return cred, nil
}

// NewGraphClient creates a Microsoft Graph client from credentials
func NewGraphClient(cred *azidentity.DefaultAzureCredential) (*msgraphsdk.GraphServiceClient, error) {
	graphClient, err := msgraphsdk.NewGraphServiceClientWithCredentials(cred, []string{"https://graph.microsoft.com/.default"})
	if err != nil {
		return nil, fmt.Errorf("failed to create Graph client: %w", err)
	}
	return graphClient, nil
}

// GetTenantContext resolves the authenticated tenant's ID and display name
// from the Graph organization endpoint. Resolved once per run.
func GetTenantContext(ctx context.Context, graphClient *msgraphsdk.GraphServiceClient) (string, string, error) {
	org, err := graphClient.Organization().Get(ctx, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to get organization details: %w", err)
	}

	tenantID := ""
	tenantName := "Unknown"

	if orgValue := org.GetValue(); len(orgValue) > 0 {
		if id := orgValue[0].GetId(); id != nil {
			tenantID = *id
		}
		if displayName := orgValue[0].GetDisplayName(); displayName != nil {
			tenantName = *displayName
		}
	}

	if tenantID == "" {
		return "", "", fmt.Errorf("organization response did not include a tenant ID")
	}

	return tenantID, tenantName, nil
}
