package azure

import (
	"context"
	"fmt"
	"time"

	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
	"github.com/praetorian-inc/outrider/internal/helpers"
	"github.com/praetorian-inc/outrider/pkg/links/options"
	"github.com/praetorian-inc/outrider/pkg/types"

	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	"github.com/microsoftgraph/msgraph-sdk-go/auditlogs"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
	msgraphcore "github.com/microsoftgraph/msgraph-sdk-go-core"
)

// MaxLookbackDays is the Graph retention limit for interactive sign-in logs.
const MaxLookbackDays = 30

const signInPageSize = int32(999)

// AzureSignInCollectorLink fetches the full sign-in event stream for the
// lookback window, following the Graph continuation cursor until exhausted.
// Any page error aborts the whole fetch; already fetched pages are discarded.
type AzureSignInCollectorLink struct {
	*chain.Base
}

func NewAzureSignInCollectorLink(configs ...cfg.Config) chain.Link {
	l := &AzureSignInCollectorLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *AzureSignInCollectorLink) Params() []cfg.Param {
	return []cfg.Param{
		options.AzureLookbackDays(),
		options.AzureTenantID(),
	}
}

func (l *AzureSignInCollectorLink) Process(input any) error {
	days, err := cfg.As[int](l.Arg("days"))
	if err != nil || days < 1 {
		days = MaxLookbackDays
	}
	if days > MaxLookbackDays {
		l.Logger.Warn("lookback window clamped to Graph retention limit", "requested", days, "max", MaxLookbackDays)
		days = MaxLookbackDays
	}

	cred, err := helpers.GetAzureCredentials()
	if err != nil {
		return err
	}
	graphClient, err := helpers.NewGraphClient(cred)
	if err != nil {
		return err
	}

	ownTenantID, _ := cfg.As[string](l.Arg("tenant"))
	if ownTenantID == "" {
		id, name, err := helpers.GetTenantContext(l.Context(), graphClient)
		if err != nil {
			return err
		}
		ownTenantID = id
		l.Logger.Info("resolved own tenant", "tenant", name, "id", id)
	}

	events, err := l.fetchSignIns(l.Context(), graphClient, days)
	if err != nil {
		return fmt.Errorf("failed to fetch sign-in logs: %w", err)
	}

	l.Logger.Info("collected sign-in events", "count", len(events), "days", days)

	return l.Send(SignInBatch{
		OwnTenantID:  ownTenantID,
		LookbackDays: days,
		Events:       events,
	})
}

func (l *AzureSignInCollectorLink) fetchSignIns(ctx context.Context, graphClient *msgraphsdk.GraphServiceClient, days int) ([]types.SignInEvent, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	requestFilter := fmt.Sprintf("createdDateTime ge %s", since.Format(time.RFC3339))
	top := signInPageSize

	result, err := graphClient.AuditLogs().SignIns().Get(ctx, &auditlogs.SignInsRequestBuilderGetRequestConfiguration{
		QueryParameters: &auditlogs.SignInsRequestBuilderGetQueryParameters{
			Filter: &requestFilter,
			Top:    &top,
		},
	})
	if err != nil {
		return nil, err
	}

	pageIterator, err := msgraphcore.NewPageIterator[models.SignInable](
		result,
		graphClient.GetAdapter(),
		models.CreateSignInCollectionResponseFromDiscriminatorValue)
	if err != nil {
		return nil, fmt.Errorf("failed to create page iterator: %w", err)
	}

	var events []types.SignInEvent
	err = pageIterator.Iterate(ctx, func(signIn models.SignInable) bool {
		if signIn != nil {
			events = append(events, convertSignIn(signIn))
		}
		return true // continue iteration
	})
	if err != nil {
		return nil, err
	}

	return events, nil
}

func convertSignIn(signIn models.SignInable) types.SignInEvent {
	event := types.SignInEvent{}

	if t := signIn.GetCreatedDateTime(); t != nil {
		event.CreatedDateTime = *t
	}
	if v := signIn.GetUserPrincipalName(); v != nil {
		event.UserPrincipalName = *v
	}
	if v := signIn.GetHomeTenantId(); v != nil {
		event.HomeTenantID = *v
	}
	if v := signIn.GetResourceTenantId(); v != nil {
		event.ResourceTenantID = *v
	}
	if v := signIn.GetAppDisplayName(); v != nil {
		event.AppDisplayName = *v
	}
	if v := signIn.GetResourceDisplayName(); v != nil {
		event.ResourceDisplayName = *v
	}
	if v := signIn.GetIpAddress(); v != nil {
		event.IPAddress = *v
	}
	if status := signIn.GetStatus(); status != nil {
		if code := status.GetErrorCode(); code != nil {
			event.ResultCode = *code
		}
	}

	return event
}
