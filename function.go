// Package billingguard disables billing on the project when a budget alert
// reports a cost above the budget amount.
package billingguard

import (
	"context"
	"sync"

	"gblaquiere.dev/billing-guard/internal/app"
	"gblaquiere.dev/billing-guard/model"
)

var (
	instance    *app.App
	instanceErr error
	once        sync.Once
)

// StopBilling is the Pub/Sub triggered function entry point.
func StopBilling(ctx context.Context, m model.PubSubMessage) error {
	once.Do(func() {
		instance, instanceErr = app.New(context.Background())
	})
	if instanceErr != nil {
		return instanceErr
	}
	return instance.Guard.Handle(ctx, m)
}
