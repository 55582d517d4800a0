package budget

import (
	"context"
	"time"

	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// PeriodBody selects one budget month of one profile.
type PeriodBody struct {
	UserID      string `json:"userID" required:"true" format:"uuid" doc:"User UUID"`
	ProfileName string `json:"profileName" required:"true" minLength:"1" doc:"Budget profile"`
	Month       int    `json:"month" doc:"Budget month 1-12; out of range values fall back to the current month"`
	Year        int    `json:"year" doc:"Budget year 2020-2050; out of range values fall back to the current year"`
}

type BudgetConfig struct {
	ID                    string `json:"id" doc:"Config UUID"`
	PeriodID              string `json:"periodID,omitempty" doc:"Budget period UUID"`
	MonthlySalary         string `json:"monthlySalary" doc:"Monthly salary"`
	BudgetPercentage      string `json:"budgetPercentage" doc:"Share of the salary that is budgeted"`
	AllocationNeed        string `json:"allocationNeed" doc:"Percentage allocated to needs"`
	AllocationWant        string `json:"allocationWant" doc:"Percentage allocated to wants"`
	AllocationSavings     string `json:"allocationSavings" doc:"Percentage allocated to savings"`
	AllocationInvestments string `json:"allocationInvestments" doc:"Percentage allocated to investments"`
}

func configResponse(cfg *service.BudgetConfig) *BudgetConfig {
	if cfg == nil {
		return nil
	}
	out := &BudgetConfig{
		ID:                    cfg.ID.String(),
		MonthlySalary:         cfg.MonthlySalary.String(),
		BudgetPercentage:      cfg.BudgetPercentage.String(),
		AllocationNeed:        cfg.AllocationNeed.String(),
		AllocationWant:        cfg.AllocationWant.String(),
		AllocationSavings:     cfg.AllocationSavings.String(),
		AllocationInvestments: cfg.AllocationInvestments.String(),
	}
	if cfg.PeriodID.Valid {
		out.PeriodID = cfg.PeriodID.UUID.String()
	}
	return out
}

type Fund struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	AllocatedAmount string `json:"allocatedAmount"`
	InvestedAmount  string `json:"investedAmount"`
}

type Category struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	AllocationType  string `json:"allocationType"`
	AllocationValue string `json:"allocationValue"`
	AllocatedAmount string `json:"allocatedAmount"`
	InvestedAmount  string `json:"investedAmount"`
	Funds           []Fund `json:"funds"`
}

type Portfolio struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	AllocationType        string     `json:"allocationType"`
	AllocationValue       string     `json:"allocationValue"`
	AllocatedAmount       string     `json:"allocatedAmount"`
	InvestedAmount        string     `json:"investedAmount"`
	AllowDirectInvestment bool       `json:"allowDirectInvestment"`
	Categories            []Category `json:"categories"`
}

func portfolioResponse(p service.Portfolio) Portfolio {
	out := Portfolio{
		ID:                    p.ID.String(),
		Name:                  p.Name,
		AllocationType:        p.AllocationType,
		AllocationValue:       p.AllocationValue.String(),
		AllocatedAmount:       p.AllocatedAmount.String(),
		InvestedAmount:        p.InvestedAmount.String(),
		AllowDirectInvestment: p.AllowDirectInvestment,
		Categories:            make([]Category, len(p.Categories)),
	}
	for i, c := range p.Categories {
		cat := Category{
			ID:              c.ID.String(),
			Name:            c.Name,
			AllocationType:  c.AllocationType,
			AllocationValue: c.AllocationValue.String(),
			AllocatedAmount: c.AllocatedAmount.String(),
			InvestedAmount:  c.InvestedAmount.String(),
			Funds:           make([]Fund, len(c.Funds)),
		}
		for j, f := range c.Funds {
			cat.Funds[j] = Fund{
				ID:              f.ID.String(),
				Name:            f.Name,
				AllocatedAmount: f.AllocatedAmount.String(),
				InvestedAmount:  f.InvestedAmount.String(),
			}
		}
		out.Categories[i] = cat
	}
	return out
}

// TransactionSummary is the condensed transaction shape carried in a snapshot.
type TransactionSummary struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Category        string `json:"category"`
	Amount          string `json:"amount"`
	Description     string `json:"description,omitempty"`
	TransactionDate string `json:"transactionDate"`
	Status          string `json:"status"`
}

func summaryResponse(tx service.Transaction) TransactionSummary {
	return TransactionSummary{
		ID:              tx.ID.String(),
		Type:            string(tx.Type),
		Category:        string(tx.Category),
		Amount:          tx.Amount.String(),
		Description:     tx.Description,
		TransactionDate: tx.TransactionDate.Format(time.RFC3339),
		Status:          string(tx.Status),
	}
}
