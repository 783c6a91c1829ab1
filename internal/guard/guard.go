package guard

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"unicode/utf8"

	"gblaquiere.dev/billing-guard/internal/billingApi"
	"gblaquiere.dev/billing-guard/internal/guarderrors"
	"gblaquiere.dev/billing-guard/model"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
)

// ProjectIdentity resolves the project whose billing is guarded.
type ProjectIdentity interface {
	ProjectID(ctx context.Context) (string, error)
}

// Guard disables billing on a project when a budget alert reports spend over budget.
// It holds no per-invocation state and is safe for concurrent use.
type Guard struct {
	project ProjectIdentity
	billing billingApi.ProjectBillingUpdater
	logger  *zap.Logger
	dryRun  bool
}

type Option func(*Guard)

func WithLogger(logger *zap.Logger) Option {
	return func(g *Guard) {
		g.logger = logger
	}
}

// WithDryRun logs the disable request instead of sending it.
func WithDryRun(dryRun bool) Option {
	return func(g *Guard) {
		g.dryRun = dryRun
	}
}

func New(project ProjectIdentity, billing billingApi.ProjectBillingUpdater, opts ...Option) *Guard {
	g := &Guard{
		project: project,
		billing: billing,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Guard) Handle(ctx context.Context, m model.PubSubMessage) error {
	data, err := decodeData(m.Data)
	if err != nil {
		return err
	}
	g.logger.Info("Data", zap.String("data", data), zap.String("messageId", m.MessageID))

	alert, err := ParseBudgetAlert(data)
	if err != nil {
		return err
	}

	if !alert.OverBudget() {
		g.logger.Info("No action necessary.",
			zap.Float64("costAmount", alert.CostAmount),
			zap.Float64("budgetAmount", alert.BudgetAmount),
			zap.String("currencyCode", alert.CurrencyCode))
		return nil
	}

	return g.disableBilling(ctx, alert)
}

func (g *Guard) disableBilling(ctx context.Context, alert *model.BudgetAlert) error {
	projectID, err := g.project.ProjectID(ctx)
	if err != nil {
		return guarderrors.New(err, guarderrors.ExternalService)
	}
	req := billingApi.DisableBillingRequest(projectID)

	fields := []zap.Field{
		zap.String("project", req.GetName()),
		zap.String("budget", alert.BudgetDisplayName),
		zap.Stringer("cost", alert.Cost()),
		zap.Stringer("budgetAmount", alert.Budget()),
	}
	if g.dryRun {
		g.logger.Warn("Dry run, billing not disabled", fields...)
		return nil
	}

	info, err := g.billing.UpdateProjectBillingInfo(ctx, req)
	if err != nil {
		g.logger.Error("client.UpdateProjectBillingInfo", append(fields, zap.Error(err))...)
		return guarderrors.New(err, guarderrors.ExternalService)
	}
	g.logger.Info("Billing disabled", append(fields, zap.String("projectBillingInfo", protojson.Format(info)))...)
	return nil
}

func decodeData(data string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", guarderrors.New(err, guarderrors.Decoding)
	}
	if !utf8.Valid(b) {
		return "", guarderrors.New(errors.New("payload is not valid UTF-8"), guarderrors.Decoding)
	}
	return string(b), nil
}

// ParseBudgetAlert reads a budget notification. The two amounts are required,
// other fields are kept when they have the expected type.
func ParseBudgetAlert(data string) (*model.BudgetAlert, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return nil, guarderrors.New(err, guarderrors.Parse)
	}

	cost, err := requiredNumber(fields, model.CostAmountKey)
	if err != nil {
		return nil, err
	}
	budget, err := requiredNumber(fields, model.BudgetAmountKey)
	if err != nil {
		return nil, err
	}

	alert := &model.BudgetAlert{
		CostAmount:   cost,
		BudgetAmount: budget,
	}
	alert.BudgetDisplayName, _ = fields["budgetDisplayName"].(string)
	alert.AlertThresholdExceeded, _ = fields["alertThresholdExceeded"].(float64)
	alert.CostIntervalStart, _ = fields["costIntervalStart"].(string)
	alert.BudgetAmountType, _ = fields["budgetAmountType"].(string)
	alert.CurrencyCode, _ = fields["currencyCode"].(string)
	return alert, nil
}

func requiredNumber(fields map[string]any, key string) (float64, error) {
	v, ok := fields[key]
	if !ok {
		return 0, guarderrors.Newf(guarderrors.MissingField, "%q not found", key)
	}
	n, ok := v.(float64)
	if !ok {
		return 0, guarderrors.Newf(guarderrors.MissingField, "%q is not a number: %v", key, v)
	}
	return n, nil
}
