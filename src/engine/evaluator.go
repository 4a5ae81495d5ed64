package engine

import (
	"context"
)

// Category buckets the evaluator sums for the 50/30/20 split. Education feeds
// the savings bucket and is also judged on its own; "ahorro" alone backs the
// emergency fund and contingency reserve.
var (
	needsCategories   = []string{"vivienda", "comida", "transporte", "salud", "servicios", "deudas"}
	wantsCategories   = []string{"entretenimiento", "restaurantes", "viajes", "lujos"}
	savingsCategories = []string{"ahorro", "inversión", "educación"}
)

const (
	categoryEducation = "educación"
	categoryLuxury    = "lujos"
	categorySavings   = "ahorro"
)

// A month of savings-category spending projected over the ideal fund horizon
// approximates the accumulated liquid fund the emergency rule grades.
const emergencyFundProjectionMonths = 6.0

const (
	DefaultWindowDays = 30
	MinWindowDays     = 1
	MaxWindowDays     = 365
)

// MetricSet holds every scalar the rules consume, scoped to one user and one
// window. Assets and liabilities are snapshots, unaffected by the window.
type MetricSet struct {
	TotalIncome           float64
	TotalExpense          float64
	ExpenseByCategory     map[string]float64
	TotalAssetValue       float64
	TotalAssetMonthlyFlow float64
	TotalLiabilityPayment float64
	TotalLiabilityBalance float64
}

func (m *MetricSet) categorySum(categories []string) float64 {
	var total float64
	for _, category := range categories {
		total += m.ExpenseByCategory[category]
	}
	return total
}

func (m *MetricSet) Needs() float64         { return m.categorySum(needsCategories) }
func (m *MetricSet) Wants() float64         { return m.categorySum(wantsCategories) }
func (m *MetricSet) SavingsBucket() float64 { return m.categorySum(savingsCategories) }
func (m *MetricSet) Education() float64     { return m.ExpenseByCategory[categoryEducation] }
func (m *MetricSet) Luxury() float64        { return m.ExpenseByCategory[categoryLuxury] }
func (m *MetricSet) LiquidSavings() float64 { return m.ExpenseByCategory[categorySavings] }

// EmergencyFund is the liquid savings figure the emergency-fund rule grades:
// the window's savings-category spending times the projection horizon.
func (m *MetricSet) EmergencyFund() float64 {
	return m.LiquidSavings() * emergencyFundProjectionMonths
}

// Evaluator runs the whole rule set against a user's aggregated metrics. It is
// read-only and deterministic: evaluating twice over unchanged records yields
// identical reports.
type Evaluator struct {
	agg *Aggregator
}

func NewEvaluator(source RecordSource) *Evaluator {
	return &Evaluator{agg: NewAggregator(source)}
}

// Metrics gathers every scalar the rules need, one aggregator call per metric.
// It fails fast: the first fetch error aborts the whole evaluation.
func (e *Evaluator) Metrics(ctx context.Context, userID, days int) (*MetricSet, error) {
	m := &MetricSet{ExpenseByCategory: make(map[string]float64)}

	var err error
	if m.TotalIncome, err = e.agg.TotalIncome(ctx, userID, days); err != nil {
		return nil, err
	}
	if m.TotalExpense, err = e.agg.TotalExpense(ctx, userID, days); err != nil {
		return nil, err
	}

	for _, categories := range [][]string{needsCategories, wantsCategories, savingsCategories} {
		for _, category := range categories {
			sum, err := e.agg.ExpenseByCategory(ctx, userID, category, days)
			if err != nil {
				return nil, err
			}
			m.ExpenseByCategory[category] = sum
		}
	}

	if m.TotalAssetValue, err = e.agg.TotalAssetValue(ctx, userID); err != nil {
		return nil, err
	}
	if m.TotalAssetMonthlyFlow, err = e.agg.TotalAssetMonthlyFlow(ctx, userID); err != nil {
		return nil, err
	}
	if m.TotalLiabilityPayment, err = e.agg.TotalLiabilityPayment(ctx, userID); err != nil {
		return nil, err
	}
	if m.TotalLiabilityBalance, err = e.agg.TotalLiabilityBalance(ctx, userID); err != nil {
		return nil, err
	}

	return m, nil
}

// Evaluate runs all eight rules and folds them into a HealthReport.
func (e *Evaluator) Evaluate(ctx context.Context, userID, days int) (*HealthReport, error) {
	m, err := e.Metrics(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	rules := RuleResults{
		BudgetSplit:         Rule503020(m.TotalIncome, m.Needs(), m.Wants(), m.SavingsBucket()),
		DebtLimit:           RuleDebtLimit(m.TotalIncome, m.TotalLiabilityPayment),
		Overspending:        RuleOverspending(m.TotalIncome, m.TotalExpense),
		EmergencyFund:       RuleEmergencyFund(m.TotalIncome, m.EmergencyFund()),
		NoInvestments:       RuleNoInvestments(m.TotalAssetValue, m.TotalAssetMonthlyFlow),
		EducationInvestment: RuleEducationInvestment(m.Education(), m.TotalIncome),
		LuxuryVsEducation:   RuleLuxuryVsEducation(m.Luxury(), m.Education(), m.TotalAssetValue),
		ContingencyReserve:  RuleContingencyReserve(m.TotalIncome, m.LiquidSavings()),
	}

	passed := 0
	for _, compliant := range []bool{
		rules.BudgetSplit.Compliant,
		rules.DebtLimit.Compliant,
		rules.Overspending.Compliant,
		rules.EmergencyFund.Compliant,
		rules.NoInvestments.Compliant,
		rules.EducationInvestment.Compliant,
		rules.LuxuryVsEducation.Compliant,
		rules.ContingencyReserve.Compliant,
	} {
		if compliant {
			passed++
		}
	}
	total := 8

	return &HealthReport{
		UserID: userID,
		Summary: FinancialSummary{
			Income:         m.TotalIncome,
			Expense:        m.TotalExpense,
			Balance:        m.TotalIncome - m.TotalExpense,
			AssetValue:     m.TotalAssetValue,
			LiabilityTotal: m.TotalLiabilityBalance,
			NetWorth:       m.TotalAssetValue - m.TotalLiabilityBalance,
		},
		Rules: rules,
		Score: Score{
			PassedCount: passed,
			TotalCount:  total,
			Percentage:  round2(float64(passed) / float64(total) * 100),
		},
	}, nil
}
