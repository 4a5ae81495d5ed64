package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"finhealth-server/src/models"
)

// fakeSource returns fixed record slices, ignoring the since filter: the
// aggregator must apply the window itself regardless of where the data came
// from.
type fakeSource struct {
	incomes     []models.Income
	expenses    []models.Expense
	assets      []models.Asset
	liabilities []models.Liability
	err         error
}

func (f *fakeSource) IncomesSince(_ context.Context, _ int, _ time.Time) ([]models.Income, error) {
	return f.incomes, f.err
}

func (f *fakeSource) ExpensesSince(_ context.Context, _ int, _ time.Time) ([]models.Expense, error) {
	return f.expenses, f.err
}

func (f *fakeSource) AssetsForUser(_ context.Context, _ int) ([]models.Asset, error) {
	return f.assets, f.err
}

func (f *fakeSource) LiabilitiesForUser(_ context.Context, _ int) ([]models.Liability, error) {
	return f.liabilities, f.err
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// newTestAggregator pins the clock so window math is reproducible.
func newTestAggregator(source RecordSource, today time.Time) *Aggregator {
	agg := NewAggregator(source)
	agg.now = func() time.Time { return today }
	return agg
}

func floatPtr(v float64) *float64 { return &v }

func TestAggregatorWindowBoundary(t *testing.T) {
	today := date(2024, 6, 15)
	source := &fakeSource{
		incomes: []models.Income{
			{UserID: 1, Amount: 100, Category: "salario", Date: date(2024, 5, 16)}, // exactly today-30
			{UserID: 1, Amount: 50, Category: "salario", Date: date(2024, 5, 15)},  // one day too old
			{UserID: 1, Amount: 25, Category: "salario", Date: date(2024, 6, 10)},
		},
	}
	agg := newTestAggregator(source, today)

	total, err := agg.TotalIncome(context.Background(), 1, 30)
	if err != nil {
		t.Fatalf("TotalIncome() error: %v", err)
	}
	if total != 125.0 {
		t.Errorf("TotalIncome() = %v, want 125 (boundary record in, older record out)", total)
	}
}

func TestAggregatorUserScoping(t *testing.T) {
	today := date(2024, 6, 15)
	source := &fakeSource{
		expenses: []models.Expense{
			{UserID: 1, Amount: 200, Category: "comida", Date: date(2024, 6, 1)},
			{UserID: 2, Amount: 999, Category: "comida", Date: date(2024, 6, 1)},
			{UserID: 1, Amount: 100, Category: "vivienda", Date: date(2024, 6, 5)},
		},
	}
	agg := newTestAggregator(source, today)

	total, err := agg.TotalExpense(context.Background(), 1, 30)
	if err != nil {
		t.Fatalf("TotalExpense() error: %v", err)
	}
	if total != 300.0 {
		t.Errorf("TotalExpense() = %v, want 300 (other users excluded)", total)
	}
}

func TestExpenseByCategoryCaseInsensitive(t *testing.T) {
	today := date(2024, 6, 15)
	source := &fakeSource{
		expenses: []models.Expense{
			{UserID: 1, Amount: 300, Category: "Vivienda", Date: date(2024, 6, 1)},
			{UserID: 1, Amount: 200, Category: "vivienda", Date: date(2024, 6, 2)},
			{UserID: 1, Amount: 75, Category: "comida", Date: date(2024, 6, 3)},
		},
	}
	agg := newTestAggregator(source, today)

	total, err := agg.ExpenseByCategory(context.Background(), 1, "vivienda", 30)
	if err != nil {
		t.Fatalf("ExpenseByCategory() error: %v", err)
	}
	if total != 500.0 {
		t.Errorf("ExpenseByCategory() = %v, want 500 (case-insensitive match)", total)
	}
}

func TestAggregatorNoMatchesIsZeroNotError(t *testing.T) {
	agg := newTestAggregator(&fakeSource{}, date(2024, 6, 15))

	total, err := agg.ExpenseByCategory(context.Background(), 1, "viajes", 30)
	if err != nil {
		t.Fatalf("ExpenseByCategory() error: %v", err)
	}
	if total != 0 {
		t.Errorf("ExpenseByCategory() = %v, want 0", total)
	}
}

func TestAssetAggregates(t *testing.T) {
	source := &fakeSource{
		assets: []models.Asset{
			{UserID: 1, Name: "Departamento", Type: "Inmueble", Value: 50000, MonthlyFlow: floatPtr(400)},
			{UserID: 1, Name: "Fondo indexado", Type: "Inversión", Value: 8000, MonthlyFlow: nil},
			{UserID: 1, Name: "Auto", Type: "Vehiculo", Value: 6000, MonthlyFlow: floatPtr(-120)},
		},
	}
	agg := newTestAggregator(source, date(2024, 6, 15))

	value, err := agg.TotalAssetValue(context.Background(), 1)
	if err != nil {
		t.Fatalf("TotalAssetValue() error: %v", err)
	}
	if value != 64000.0 {
		t.Errorf("TotalAssetValue() = %v, want 64000", value)
	}

	flow, err := agg.TotalAssetMonthlyFlow(context.Background(), 1)
	if err != nil {
		t.Fatalf("TotalAssetMonthlyFlow() error: %v", err)
	}
	if flow != 280.0 {
		t.Errorf("TotalAssetMonthlyFlow() = %v, want 280 (nil flow contributes zero)", flow)
	}
}

func TestLiabilityAggregates(t *testing.T) {
	source := &fakeSource{
		liabilities: []models.Liability{
			{UserID: 1, Name: "Hipoteca", Type: "Préstamo", TotalAmount: 40000, MonthlyPayment: 350, DueDate: date(2030, 1, 1)},
			{UserID: 1, Name: "Tarjeta", Type: "Crédito", TotalAmount: 1500, MonthlyPayment: 90, DueDate: date(2025, 3, 1)},
		},
	}
	agg := newTestAggregator(source, date(2024, 6, 15))

	payment, err := agg.TotalLiabilityPayment(context.Background(), 1)
	if err != nil {
		t.Fatalf("TotalLiabilityPayment() error: %v", err)
	}
	if payment != 440.0 {
		t.Errorf("TotalLiabilityPayment() = %v, want 440", payment)
	}

	balance, err := agg.TotalLiabilityBalance(context.Background(), 1)
	if err != nil {
		t.Fatalf("TotalLiabilityBalance() error: %v", err)
	}
	if balance != 41500.0 {
		t.Errorf("TotalLiabilityBalance() = %v, want 41500", balance)
	}
}

func TestAggregatorPropagatesFetchErrors(t *testing.T) {
	fetchErr := errors.New("connection refused")
	agg := newTestAggregator(&fakeSource{err: fetchErr}, date(2024, 6, 15))

	if _, err := agg.TotalIncome(context.Background(), 1, 30); !errors.Is(err, fetchErr) {
		t.Errorf("TotalIncome() error = %v, want the fetch error unchanged", err)
	}
	if _, err := agg.TotalAssetValue(context.Background(), 1); !errors.Is(err, fetchErr) {
		t.Errorf("TotalAssetValue() error = %v, want the fetch error unchanged", err)
	}
}
