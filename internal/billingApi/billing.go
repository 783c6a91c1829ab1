package billingApi

import (
	"context"
	"fmt"
	"sync"

	billing "cloud.google.com/go/billing/apiv1"
	"cloud.google.com/go/billing/apiv1/billingpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
)

const projectPrefix = "projects/"

// ProjectBillingUpdater is the part of the Cloud Billing API the guard needs.
// *billing.CloudBillingClient satisfies it.
type ProjectBillingUpdater interface {
	UpdateProjectBillingInfo(ctx context.Context, req *billingpb.UpdateProjectBillingInfoRequest, opts ...gax.CallOption) (*billingpb.ProjectBillingInfo, error)
}

var (
	client     *billing.CloudBillingClient
	clientErr  error
	clientOnce sync.Once
)

// Client returns the process-wide billing client, created on first call.
// Options only apply to that first call.
func Client(ctx context.Context, opts ...option.ClientOption) (*billing.CloudBillingClient, error) {
	clientOnce.Do(func() {
		client, clientErr = billing.NewCloudBillingClient(ctx, opts...)
		if clientErr != nil {
			clientErr = fmt.Errorf("billing.NewCloudBillingClient: %w", clientErr)
		}
	})
	return client, clientErr
}

func ProjectName(projectID string) string {
	return fmt.Sprintf("%s%s", projectPrefix, projectID)
}

// DisableBillingRequest detaches the project from its billing account: an
// empty billing account name disables billing.
func DisableBillingRequest(projectID string) *billingpb.UpdateProjectBillingInfoRequest {
	return &billingpb.UpdateProjectBillingInfoRequest{
		Name: ProjectName(projectID),
		ProjectBillingInfo: &billingpb.ProjectBillingInfo{
			BillingAccountName: "",
		},
	}
}
