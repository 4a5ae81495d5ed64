package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"finhealth-server/src/models"
)

// newTestEvaluator pins the evaluator's clock like newTestAggregator does.
func newTestEvaluator(source RecordSource, today time.Time) *Evaluator {
	e := NewEvaluator(source)
	e.agg.now = func() time.Time { return today }
	return e
}

func balancedFixture() *fakeSource {
	d := date(2024, 6, 10)
	return &fakeSource{
		incomes: []models.Income{
			{UserID: 7, Amount: 1000, Category: "salario", Date: d},
		},
		expenses: []models.Expense{
			{UserID: 7, Amount: 500, Category: "vivienda", Date: d},
			{UserID: 7, Amount: 140, Category: "entretenimiento", Date: d},
			{UserID: 7, Amount: 160, Category: "lujos", Date: d},
			{UserID: 7, Amount: 120, Category: "ahorro", Date: d},
			{UserID: 7, Amount: 30, Category: "inversión", Date: d},
			{UserID: 7, Amount: 50, Category: "educación", Date: d},
		},
		assets: []models.Asset{
			{UserID: 7, Name: "Fondo indexado", Type: "Inversión", Value: 2000},
		},
		liabilities: []models.Liability{
			{UserID: 7, Name: "Préstamo auto", Type: "Préstamo", TotalAmount: 5000, MonthlyPayment: 300, DueDate: date(2027, 1, 1)},
		},
	}
}

func TestEvaluateComposesReport(t *testing.T) {
	e := newTestEvaluator(balancedFixture(), date(2024, 6, 15))

	report, err := e.Evaluate(context.Background(), 7, 30)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}

	if report.UserID != 7 {
		t.Errorf("report.UserID = %d, want 7", report.UserID)
	}

	summary := report.Summary
	if summary.Income != 1000 || summary.Expense != 1000 || summary.Balance != 0 {
		t.Errorf("summary flows = {%v %v %v}, want {1000 1000 0}", summary.Income, summary.Expense, summary.Balance)
	}
	if summary.AssetValue != 2000 || summary.LiabilityTotal != 5000 {
		t.Errorf("summary snapshots = {%v %v}, want {2000 5000}", summary.AssetValue, summary.LiabilityTotal)
	}
	if summary.NetWorth != -3000 {
		t.Errorf("summary.NetWorth = %v, want -3000 (asset value minus liability balance)", summary.NetWorth)
	}

	rules := report.Rules
	if !rules.BudgetSplit.Compliant {
		t.Errorf("50/30/20 not compliant: %+v", rules.BudgetSplit)
	}
	if p := rules.BudgetSplit.Percentages; p.Needs != 50.0 || p.Wants != 30.0 || p.Savings != 20.0 {
		t.Errorf("50/30/20 percentages = %+v, want {50 30 20}", p)
	}
	// debt is judged on liability payments, not the "deudas" expense category
	if rules.DebtLimit.DebtPercentage != 30.0 || rules.DebtLimit.RiskLevel != RiskMedium {
		t.Errorf("debt limit = {%v %s}, want {30 medio}", rules.DebtLimit.DebtPercentage, rules.DebtLimit.RiskLevel)
	}
	if !rules.Overspending.Compliant || rules.Overspending.Difference != 0 {
		t.Errorf("overspending = {%v %v}, want compliant 0", rules.Overspending.Compliant, rules.Overspending.Difference)
	}
	// fund = 6 x 120 of monthly ahorro, well below 3 months of income
	if rules.EmergencyFund.Level != FundInsufficient || rules.EmergencyFund.Compliant {
		t.Errorf("emergency fund = {%s %v}, want insuficiente non-compliant", rules.EmergencyFund.Level, rules.EmergencyFund.Compliant)
	}
	if !rules.NoInvestments.Compliant {
		t.Error("no-investments should pass with a 2000 asset")
	}
	if !rules.EducationInvestment.Compliant || rules.EducationInvestment.Percentage != 5.0 {
		t.Errorf("education = {%v %v}, want compliant 5%%", rules.EducationInvestment.Compliant, rules.EducationInvestment.Percentage)
	}
	if !rules.LuxuryVsEducation.Compliant {
		t.Error("luxury 160 is covered by education 50 + assets 2000")
	}
	if rules.ContingencyReserve.Compliant {
		t.Error("contingency reserve should fail with 120 liquid against 1000 income")
	}

	if report.Score.PassedCount != 6 || report.Score.TotalCount != 8 {
		t.Errorf("score = %d/%d, want 6/8", report.Score.PassedCount, report.Score.TotalCount)
	}
	if report.Score.Percentage != 75.0 {
		t.Errorf("score percentage = %v, want 75", report.Score.Percentage)
	}
}

func TestEvaluateEmptyUserIsAllWarnings(t *testing.T) {
	e := newTestEvaluator(&fakeSource{}, date(2024, 6, 15))

	report, err := e.Evaluate(context.Background(), 3, 30)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}

	if report.Score.PassedCount != 0 {
		t.Errorf("score passed = %d, want 0", report.Score.PassedCount)
	}
	for name, severity := range map[string]Severity{
		"rule_50_30_20":        report.Rules.BudgetSplit.Severity,
		"debt_limit":           report.Rules.DebtLimit.Severity,
		"overspending":         report.Rules.Overspending.Severity,
		"emergency_fund":       report.Rules.EmergencyFund.Severity,
		"no_investments":       report.Rules.NoInvestments.Severity,
		"education_investment": report.Rules.EducationInvestment.Severity,
		"luxury_vs_education":  report.Rules.LuxuryVsEducation.Severity,
		"contingency_reserve":  report.Rules.ContingencyReserve.Severity,
	} {
		if severity == SeverityDanger {
			t.Errorf("%s severity = danger with no data, want warning", name)
		}
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	e := newTestEvaluator(balancedFixture(), date(2024, 6, 15))

	first, err := e.Evaluate(context.Background(), 7, 30)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	second, err := e.Evaluate(context.Background(), 7, 30)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}

	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(firstJSON, secondJSON) {
		t.Errorf("repeated evaluation differs:\n%s\n%s", firstJSON, secondJSON)
	}
}

func TestEvaluateFailsFastOnFetchError(t *testing.T) {
	fetchErr := errors.New("connection refused")
	e := newTestEvaluator(&fakeSource{err: fetchErr}, date(2024, 6, 15))

	if _, err := e.Evaluate(context.Background(), 7, 30); !errors.Is(err, fetchErr) {
		t.Errorf("Evaluate() error = %v, want the fetch error unchanged", err)
	}
}
