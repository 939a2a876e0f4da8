package jq

import (
	"bytes"
	"testing"
)

func TestApply(t *testing.T) {
	jsonContent := []byte(`{"tenantId": "a-b-c", "accessCount": 12}`)

	testCases := []struct {
		name      string
		expr      string
		expected  []byte
		expectErr bool
	}{
		{
			name:     "valid query",
			expr:     ".accessCount",
			expected: []byte("12"),
		},
		{
			name:      "missing key",
			expr:      ".nonexistent",
			expectErr: true,
		},
		{
			name:     "string field",
			expr:     ".tenantId",
			expected: []byte(`"a-b-c"`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Apply(jsonContent, tc.expr)
			if tc.expectErr {
				if err == nil {
					t.Fatalf("expected error for expr %q, got result %s", tc.expr, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(result, tc.expected) {
				t.Errorf("expected %s, got %s", tc.expected, result)
			}
		})
	}
}
