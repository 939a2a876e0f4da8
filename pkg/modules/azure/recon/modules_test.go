package recon

import (
	"testing"

	"github.com/praetorian-inc/janus-framework/pkg/chain"
)

func checkModule(t *testing.T, module *chain.Module, id string) {
	t.Helper()

	if module == nil {
		t.Fatalf("%s module is nil", id)
	}

	metadata := module.Metadata()
	if metadata == nil {
		t.Fatal("Module metadata is nil")
	}

	props := metadata.Properties()
	if props["id"] != id {
		t.Errorf("Expected id %q, got %v", id, props["id"])
	}

	if props["platform"] != "azure" {
		t.Errorf("Expected platform 'azure', got %v", props["platform"])
	}

	authors, ok := props["authors"].([]string)
	if !ok || len(authors) == 0 {
		t.Error("Module authors not properly set")
	} else if authors[0] != "Praetorian" {
		t.Errorf("Expected first author 'Praetorian', got %s", authors[0])
	}

	references, ok := props["references"].([]string)
	if !ok || len(references) == 0 {
		t.Error("Module references not properly set")
	}
}

func TestAzureOutboundAccessModule(t *testing.T) {
	checkModule(t, AzureOutboundAccess, "outbound-access")
}

func TestAzureTenantLookupModule(t *testing.T) {
	checkModule(t, AzureTenantLookup, "tenant-lookup")
}

func TestAzureKQLQueriesModule(t *testing.T) {
	checkModule(t, AzureKQLQueries, "kql-queries")
}

func TestAzureOutboundLogsModule(t *testing.T) {
	checkModule(t, AzureOutboundLogs, "outbound-logs")
}
