package azure

import (
	"testing"
	"time"

	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/outrider/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboundFilterLink(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	batch := SignInBatch{
		OwnTenantID:  "T1",
		LookbackDays: 30,
		Events: []types.SignInEvent{
			{CreatedDateTime: ts, UserPrincipalName: "u1@contoso.com", HomeTenantID: "T1", ResourceTenantID: "T2"},
			{CreatedDateTime: ts, UserPrincipalName: "u2@contoso.com", HomeTenantID: "T1", ResourceTenantID: "T1"},
			{CreatedDateTime: ts, UserPrincipalName: "guest@fabrikam.com", HomeTenantID: "T9", ResourceTenantID: "T1"},
		},
	}

	c := chain.NewChain(NewAzureOutboundFilterLink())
	c.Send(batch)
	c.Close()

	out, ok := chain.RecvAs[OutboundBatch](c)
	require.True(t, ok)
	require.NoError(t, c.Error())

	assert.Equal(t, "T1", out.OwnTenantID)
	assert.Equal(t, 30, out.LookbackDays)
	require.Len(t, out.Events, 1)
	assert.Equal(t, "u1@contoso.com", out.Events[0].UserPrincipalName)
}

func TestOutboundFilterLinkEmptyBatch(t *testing.T) {
	c := chain.NewChain(NewAzureOutboundFilterLink())
	c.Send(SignInBatch{OwnTenantID: "T1", LookbackDays: 7})
	c.Close()

	out, ok := chain.RecvAs[OutboundBatch](c)
	require.True(t, ok)
	require.NoError(t, c.Error())
	assert.Empty(t, out.Events)
}

func TestOutboundFilterLinkRejectsWrongType(t *testing.T) {
	c := chain.NewChain(NewAzureOutboundFilterLink())
	c.Send("not a batch")
	c.Close()
	c.Wait()

	assert.Error(t, c.Error())
}
