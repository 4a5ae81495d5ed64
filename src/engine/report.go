package engine

// Severity ranks a verdict: success is healthy, warning is inconclusive or
// missing data, danger is unhealthy. Missing data is never danger.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Verdict is a single rule's judgment. Rules with extra metrics embed it.
type Verdict struct {
	Compliant bool     `json:"compliant"`
	Message   string   `json:"message"`
	Severity  Severity `json:"severity"`
}

type BudgetPercentages struct {
	Needs   float64 `json:"needs"`
	Wants   float64 `json:"wants"`
	Savings float64 `json:"savings"`
}

type BudgetSplitVerdict struct {
	Verdict
	Percentages BudgetPercentages `json:"percentages"`
}

type DebtLimitVerdict struct {
	Verdict
	DebtPercentage float64 `json:"debt_percentage"`
	RiskLevel      string  `json:"risk_level"`
}

type OverspendingVerdict struct {
	Verdict
	Difference float64 `json:"difference"`
}

type EmergencyFundVerdict struct {
	Verdict
	Level string `json:"level"`
}

type EducationVerdict struct {
	Verdict
	Percentage float64 `json:"percentage"`
}

type RuleResults struct {
	BudgetSplit         BudgetSplitVerdict   `json:"rule_50_30_20"`
	DebtLimit           DebtLimitVerdict     `json:"debt_limit"`
	Overspending        OverspendingVerdict  `json:"overspending"`
	EmergencyFund       EmergencyFundVerdict `json:"emergency_fund"`
	NoInvestments       Verdict              `json:"no_investments"`
	EducationInvestment EducationVerdict     `json:"education_investment"`
	LuxuryVsEducation   Verdict              `json:"luxury_vs_education"`
	ContingencyReserve  Verdict              `json:"contingency_reserve"`
}

type FinancialSummary struct {
	Income         float64 `json:"income"`
	Expense        float64 `json:"expense"`
	Balance        float64 `json:"balance"`
	AssetValue     float64 `json:"asset_value"`
	LiabilityTotal float64 `json:"liability_total"`
	NetWorth       float64 `json:"net_worth"`
}

type Score struct {
	PassedCount int     `json:"passed_count"`
	TotalCount  int     `json:"total_count"`
	Percentage  float64 `json:"percentage"`
}

// HealthReport is the composite result of evaluating every rule for one user
// over one window. It is built per call and never persisted.
type HealthReport struct {
	UserID  int              `json:"user_id"`
	Summary FinancialSummary `json:"financial_summary"`
	Rules   RuleResults      `json:"rules"`
	Score   Score            `json:"score"`
}
