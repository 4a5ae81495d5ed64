package engine

import (
	"fmt"
	"math"
	"strings"
)

// Recommended thresholds for every rule. Kept in one place so tuning a band
// never means hunting through rule bodies.
const (
	needsMinPct   = 45.0
	needsMaxPct   = 55.0
	wantsMinPct   = 25.0
	wantsMaxPct   = 35.0
	savingsMinPct = 15.0
	savingsMaxPct = 25.0

	debtCeilingPct = 40.0
	debtLowRiskPct = 30.0

	educationMinPct = 5.0

	emergencyMinMonths   = 3.0
	emergencyIdealMonths = 6.0

	reserveMonths = 1.0
)

// Emergency fund risk levels and debt risk levels keep the product's Spanish
// vocabulary, as does every message.
const (
	RiskLow    = "bajo"
	RiskMedium = "medio"
	RiskHigh   = "alto"

	FundExcellent    = "excelente"
	FundGood         = "bueno"
	FundInsufficient = "insuficiente"
	FundNoData       = "sin datos"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rule503020 checks the 50/30/20 budget split: needs, wants and savings as a
// share of income must all sit inside their recommended bands at once.
func Rule503020(income, needs, wants, savings float64) BudgetSplitVerdict {
	if income == 0 {
		return BudgetSplitVerdict{
			Verdict: Verdict{
				Compliant: false,
				Message:   "No hay ingresos registrados",
				Severity:  SeverityWarning,
			},
		}
	}

	pctNeeds := round2(needs / income * 100)
	pctWants := round2(wants / income * 100)
	pctSavings := round2(savings / income * 100)

	compliant := pctNeeds >= needsMinPct && pctNeeds <= needsMaxPct &&
		pctWants >= wantsMinPct && pctWants <= wantsMaxPct &&
		pctSavings >= savingsMinPct && pctSavings <= savingsMaxPct

	var deviations []string
	if pctNeeds > needsMaxPct {
		deviations = append(deviations, "gastas demasiado en necesidades")
	} else if pctNeeds < needsMinPct {
		deviations = append(deviations, "destinas muy poco a necesidades")
	}
	if pctWants > wantsMaxPct {
		deviations = append(deviations, "gastas demasiado en deseos")
	} else if pctWants < wantsMinPct {
		deviations = append(deviations, "dedicas muy poco a ocio")
	}
	if pctSavings > savingsMaxPct {
		deviations = append(deviations, "ahorras más de lo recomendado (no es malo, pero rompe el equilibrio)")
	} else if pctSavings < savingsMinPct {
		deviations = append(deviations, "ahorras menos de lo recomendado")
	}

	message := "Cumples con la regla 50/30/20"
	severity := SeveritySuccess
	if !compliant {
		message = strings.Join(deviations, ", ")
		severity = SeverityWarning
	}

	return BudgetSplitVerdict{
		Verdict: Verdict{
			Compliant: compliant,
			Message:   message,
			Severity:  severity,
		},
		Percentages: BudgetPercentages{
			Needs:   pctNeeds,
			Wants:   pctWants,
			Savings: pctSavings,
		},
	}
}

// RuleDebtLimit checks that monthly debt payments stay at or under 40% of
// income, and classifies the risk level of the debt load.
func RuleDebtLimit(income, monthlyDebt float64) DebtLimitVerdict {
	if income == 0 {
		return DebtLimitVerdict{
			Verdict: Verdict{
				Compliant: false,
				Message:   "No hay ingresos registrados",
				Severity:  SeverityWarning,
			},
		}
	}

	pct := round2(monthlyDebt / income * 100)
	compliant := pct <= debtCeilingPct

	risk := RiskLow
	switch {
	case pct > debtCeilingPct:
		risk = RiskHigh
	case pct >= debtLowRiskPct:
		risk = RiskMedium
	}

	severity := SeveritySuccess
	if !compliant {
		severity = SeverityDanger
	}

	return DebtLimitVerdict{
		Verdict: Verdict{
			Compliant: compliant,
			Message:   fmt.Sprintf("Endeudamiento del %.1f%% de tus ingresos", pct),
			Severity:  severity,
		},
		DebtPercentage: pct,
		RiskLevel:      risk,
	}
}

// RuleOverspending flags a deficit: spending more than the income of the same
// window. Difference is signed, negative when in deficit.
func RuleOverspending(income, expense float64) OverspendingVerdict {
	if income == 0 {
		return OverspendingVerdict{
			Verdict: Verdict{
				Compliant: false,
				Message:   "No hay ingresos registrados",
				Severity:  SeverityWarning,
			},
		}
	}

	difference := round2(income - expense)
	compliant := expense <= income

	message := fmt.Sprintf("Ahorro mensual de $%.2f", math.Abs(difference))
	severity := SeveritySuccess
	if !compliant {
		message = fmt.Sprintf("Déficit: gastas $%.2f más de lo que ganas", math.Abs(difference))
		severity = SeverityDanger
	}

	return OverspendingVerdict{
		Verdict: Verdict{
			Compliant: compliant,
			Message:   message,
			Severity:  severity,
		},
		Difference: difference,
	}
}

// RuleEmergencyFund grades the liquid emergency fund against 3 and 6 months of
// income. Missing data is reported apart from an insufficient fund.
func RuleEmergencyFund(income, savings float64) EmergencyFundVerdict {
	if income == 0 || savings == 0 {
		return EmergencyFundVerdict{
			Verdict: Verdict{
				Compliant: false,
				Message:   "No hay ingresos ni ahorros registrados para evaluar el fondo de emergencia",
				Severity:  SeverityWarning,
			},
			Level: FundNoData,
		}
	}

	minimum := income * emergencyMinMonths
	ideal := income * emergencyIdealMonths

	level := FundInsufficient
	severity := SeverityDanger
	switch {
	case savings >= ideal:
		level = FundExcellent
		severity = SeveritySuccess
	case savings >= minimum:
		level = FundGood
		severity = SeverityWarning
	}

	return EmergencyFundVerdict{
		Verdict: Verdict{
			Compliant: savings >= minimum,
			Message:   fmt.Sprintf("Fondo actual $%.2f, mínimo $%.2f, ideal $%.2f", savings, minimum, ideal),
			Severity:  severity,
		},
		Level: level,
	}
}

// RuleNoInvestments checks whether the user holds any assets at all. The
// monthly flow is received but does not affect the verdict yet.
func RuleNoInvestments(assetValue, monthlyFlow float64) Verdict {
	if assetValue > 0 {
		return Verdict{
			Compliant: true,
			Message:   "Tienes activos registrados",
			Severity:  SeveritySuccess,
		}
	}
	return Verdict{
		Compliant: false,
		Message:   "No registras activos ni inversiones",
		Severity:  SeverityWarning,
	}
}

// RuleEducationInvestment recommends putting at least 5% of income into
// education.
func RuleEducationInvestment(educationExpense, income float64) EducationVerdict {
	if income == 0 {
		return EducationVerdict{
			Verdict: Verdict{
				Compliant: false,
				Message:   "No hay ingresos registrados",
				Severity:  SeverityWarning,
			},
		}
	}

	pct := round2(educationExpense / income * 100)
	compliant := pct >= educationMinPct

	message := fmt.Sprintf("Inviertes %.1f%% de tus ingresos en educación", pct)
	severity := SeveritySuccess
	if !compliant {
		message = fmt.Sprintf("Inviertes %.1f%% en educación, recomendado al menos %.0f%%", pct, educationMinPct)
		severity = SeverityDanger
	}

	return EducationVerdict{
		Verdict: Verdict{
			Compliant: compliant,
			Message:   message,
			Severity:  severity,
		},
		Percentage: pct,
	}
}

// RuleLuxuryVsEducation checks financial priorities: luxury spending should
// not exceed education spending plus asset value combined.
func RuleLuxuryVsEducation(luxury, education, assetValue float64) Verdict {
	if luxury == 0 && education == 0 && assetValue == 0 {
		return Verdict{
			Compliant: false,
			Message:   "No hay gastos ni activos registrados para evaluar prioridades financieras",
			Severity:  SeverityWarning,
		}
	}

	if luxury <= education+assetValue {
		return Verdict{
			Compliant: true,
			Message:   "Priorizas la inversión productiva sobre los lujos",
			Severity:  SeveritySuccess,
		}
	}
	return Verdict{
		Compliant: false,
		Message:   "Gastas más en lujos que en educación o activos",
		Severity:  SeverityDanger,
	}
}

// RuleContingencyReserve checks for one month of income in liquid savings to
// absorb minor surprises.
func RuleContingencyReserve(income, liquidSavings float64) Verdict {
	if income == 0 && liquidSavings == 0 {
		return Verdict{
			Compliant: false,
			Message:   "No hay ingresos ni ahorros registrados para evaluar la reserva de imprevistos",
			Severity:  SeverityWarning,
		}
	}

	required := income * reserveMonths
	if liquidSavings >= required {
		return Verdict{
			Compliant: true,
			Message:   fmt.Sprintf("Tienes $%.2f de reserva para imprevistos", liquidSavings),
			Severity:  SeveritySuccess,
		}
	}
	return Verdict{
		Compliant: false,
		Message:   fmt.Sprintf("Te faltan $%.2f para cubrir 1 mes de reserva", required-liquidSavings),
		Severity:  SeverityDanger,
	}
}
