package model

import (
	"math"

	"google.golang.org/genproto/googleapis/type/money"
)

const (
	CostAmountKey   = "costAmount"
	BudgetAmountKey = "budgetAmount"
)

// BudgetAlert is the decoded budget notification. Only the two amounts drive a
// decision, the rest is informational.
type BudgetAlert struct {
	CostAmount             float64
	BudgetAmount           float64
	BudgetDisplayName      string
	AlertThresholdExceeded float64
	CostIntervalStart      string
	BudgetAmountType       string
	CurrencyCode           string
}

// OverBudget reports whether the spend strictly exceeds the budget.
func (a *BudgetAlert) OverBudget() bool {
	return a.CostAmount > a.BudgetAmount
}

func (a *BudgetAlert) Cost() *money.Money {
	return ToMoney(a.CostAmount, a.CurrencyCode)
}

func (a *BudgetAlert) Budget() *money.Money {
	return ToMoney(a.BudgetAmount, a.CurrencyCode)
}

// ToMoney splits amount into units and nanos (10^-9 of a unit).
func ToMoney(amount float64, currencyCode string) *money.Money {
	units, frac := math.Modf(amount)
	return &money.Money{
		CurrencyCode: currencyCode,
		Units:        int64(units),
		Nanos:        int32(math.Round(frac * 1000000000)),
	}
}
