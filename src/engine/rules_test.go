package engine

import (
	"strings"
	"testing"
)

func TestRule503020(t *testing.T) {
	t.Run("balanced split is compliant", func(t *testing.T) {
		v := Rule503020(1000, 500, 300, 200)
		if !v.Compliant {
			t.Fatalf("Rule503020() compliant = false, want true")
		}
		if v.Severity != SeveritySuccess {
			t.Errorf("Rule503020() severity = %s, want success", v.Severity)
		}
		if v.Percentages.Needs != 50.0 || v.Percentages.Wants != 30.0 || v.Percentages.Savings != 20.0 {
			t.Errorf("Rule503020() percentages = %+v, want {50 30 20}", v.Percentages)
		}
	})

	t.Run("no income is a warning, not danger", func(t *testing.T) {
		v := Rule503020(0, 500, 300, 200)
		if v.Compliant {
			t.Error("Rule503020() compliant = true with zero income")
		}
		if v.Severity != SeverityWarning {
			t.Errorf("Rule503020() severity = %s, want warning", v.Severity)
		}
	})

	t.Run("message lists every out-of-range bucket", func(t *testing.T) {
		// needs 70%, wants 10%, savings 20%
		v := Rule503020(1000, 700, 100, 200)
		if v.Compliant {
			t.Error("Rule503020() compliant = true, want false")
		}
		if v.Severity != SeverityWarning {
			t.Errorf("Rule503020() severity = %s, want warning", v.Severity)
		}
		if !strings.Contains(v.Message, "gastas demasiado en necesidades") {
			t.Errorf("Rule503020() message %q missing needs deviation", v.Message)
		}
		if !strings.Contains(v.Message, "dedicas muy poco a ocio") {
			t.Errorf("Rule503020() message %q missing wants deviation", v.Message)
		}
		if strings.Contains(v.Message, "ahorras") {
			t.Errorf("Rule503020() message %q mentions an in-range bucket", v.Message)
		}
	})

	t.Run("percentages rounded to 2 decimals", func(t *testing.T) {
		v := Rule503020(300, 100, 100, 100)
		if v.Percentages.Needs != 33.33 {
			t.Errorf("Rule503020() needs pct = %v, want 33.33", v.Percentages.Needs)
		}
	})
}

func TestRuleDebtLimit(t *testing.T) {
	tests := []struct {
		name      string
		income    float64
		debt      float64
		compliant bool
		pct       float64
		risk      string
		severity  Severity
	}{
		{"over the ceiling", 2000, 900, false, 45.0, RiskHigh, SeverityDanger},
		{"low risk", 2000, 500, true, 25.0, RiskLow, SeveritySuccess},
		{"medium risk still compliant", 2000, 700, true, 35.0, RiskMedium, SeveritySuccess},
		{"exactly at the ceiling", 2000, 800, true, 40.0, RiskMedium, SeveritySuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := RuleDebtLimit(tt.income, tt.debt)
			if v.Compliant != tt.compliant {
				t.Errorf("RuleDebtLimit() compliant = %v, want %v", v.Compliant, tt.compliant)
			}
			if v.DebtPercentage != tt.pct {
				t.Errorf("RuleDebtLimit() pct = %v, want %v", v.DebtPercentage, tt.pct)
			}
			if v.RiskLevel != tt.risk {
				t.Errorf("RuleDebtLimit() risk = %s, want %s", v.RiskLevel, tt.risk)
			}
			if v.Severity != tt.severity {
				t.Errorf("RuleDebtLimit() severity = %s, want %s", v.Severity, tt.severity)
			}
		})
	}

	t.Run("no income", func(t *testing.T) {
		v := RuleDebtLimit(0, 900)
		if v.Compliant || v.Severity != SeverityWarning {
			t.Errorf("RuleDebtLimit() = {%v %s}, want non-compliant warning", v.Compliant, v.Severity)
		}
	})
}

func TestRuleOverspending(t *testing.T) {
	t.Run("deficit", func(t *testing.T) {
		v := RuleOverspending(1000, 1200)
		if v.Compliant {
			t.Error("RuleOverspending() compliant = true in deficit")
		}
		if v.Difference != -200.0 {
			t.Errorf("RuleOverspending() difference = %v, want -200", v.Difference)
		}
		if v.Severity != SeverityDanger {
			t.Errorf("RuleOverspending() severity = %s, want danger", v.Severity)
		}
	})

	t.Run("surplus", func(t *testing.T) {
		v := RuleOverspending(1000, 800)
		if !v.Compliant || v.Difference != 200.0 || v.Severity != SeveritySuccess {
			t.Errorf("RuleOverspending() = {%v %v %s}, want compliant +200 success", v.Compliant, v.Difference, v.Severity)
		}
	})

	t.Run("break-even is compliant", func(t *testing.T) {
		v := RuleOverspending(1000, 1000)
		if !v.Compliant || v.Difference != 0 {
			t.Errorf("RuleOverspending() = {%v %v}, want compliant 0", v.Compliant, v.Difference)
		}
	})

	t.Run("no income", func(t *testing.T) {
		v := RuleOverspending(0, 300)
		if v.Compliant || v.Severity != SeverityWarning {
			t.Errorf("RuleOverspending() = {%v %s}, want non-compliant warning", v.Compliant, v.Severity)
		}
	})
}

func TestRuleEmergencyFund(t *testing.T) {
	t.Run("no savings reads as missing data", func(t *testing.T) {
		v := RuleEmergencyFund(1000, 0)
		if v.Compliant {
			t.Error("RuleEmergencyFund() compliant = true with no savings")
		}
		if v.Level != FundNoData {
			t.Errorf("RuleEmergencyFund() level = %s, want %s", v.Level, FundNoData)
		}
		if v.Severity != SeverityWarning {
			t.Errorf("RuleEmergencyFund() severity = %s, want warning", v.Severity)
		}
		if !strings.Contains(v.Message, "No hay ingresos ni ahorros") {
			t.Errorf("RuleEmergencyFund() message %q should read as missing data", v.Message)
		}
	})

	tests := []struct {
		name      string
		savings   float64
		level     string
		compliant bool
		severity  Severity
	}{
		{"between minimum and ideal", 4000, FundGood, true, SeverityWarning},
		{"at the ideal", 6000, FundExcellent, true, SeveritySuccess},
		{"below minimum", 2000, FundInsufficient, false, SeverityDanger},
		{"exactly the minimum", 3000, FundGood, true, SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := RuleEmergencyFund(1000, tt.savings)
			if v.Level != tt.level {
				t.Errorf("RuleEmergencyFund() level = %s, want %s", v.Level, tt.level)
			}
			if v.Compliant != tt.compliant {
				t.Errorf("RuleEmergencyFund() compliant = %v, want %v", v.Compliant, tt.compliant)
			}
			if v.Severity != tt.severity {
				t.Errorf("RuleEmergencyFund() severity = %s, want %s", v.Severity, tt.severity)
			}
			if strings.Contains(v.Message, "No hay ingresos") {
				t.Errorf("RuleEmergencyFund() message %q should not read as missing data", v.Message)
			}
		})
	}
}

func TestRuleNoInvestments(t *testing.T) {
	if v := RuleNoInvestments(0, 0); v.Compliant || v.Severity != SeverityWarning {
		t.Errorf("RuleNoInvestments(0, 0) = {%v %s}, want non-compliant warning", v.Compliant, v.Severity)
	}
	// flow does not change the verdict, whatever its sign
	if v := RuleNoInvestments(500, -50); !v.Compliant || v.Severity != SeveritySuccess {
		t.Errorf("RuleNoInvestments(500, -50) = {%v %s}, want compliant success", v.Compliant, v.Severity)
	}
	if v := RuleNoInvestments(500, 0); !v.Compliant {
		t.Error("RuleNoInvestments(500, 0) compliant = false, want true")
	}
}

func TestRuleEducationInvestment(t *testing.T) {
	t.Run("meets the 5% floor", func(t *testing.T) {
		v := RuleEducationInvestment(100, 1000)
		if !v.Compliant || v.Percentage != 10.0 || v.Severity != SeveritySuccess {
			t.Errorf("RuleEducationInvestment() = {%v %v %s}, want compliant 10%% success", v.Compliant, v.Percentage, v.Severity)
		}
	})

	t.Run("below the floor", func(t *testing.T) {
		v := RuleEducationInvestment(10, 1000)
		if v.Compliant || v.Percentage != 1.0 || v.Severity != SeverityDanger {
			t.Errorf("RuleEducationInvestment() = {%v %v %s}, want non-compliant 1%% danger", v.Compliant, v.Percentage, v.Severity)
		}
	})

	t.Run("no income", func(t *testing.T) {
		v := RuleEducationInvestment(100, 0)
		if v.Compliant || v.Severity != SeverityWarning {
			t.Errorf("RuleEducationInvestment() = {%v %s}, want non-compliant warning", v.Compliant, v.Severity)
		}
	})
}

func TestRuleLuxuryVsEducation(t *testing.T) {
	t.Run("all zero is missing data", func(t *testing.T) {
		v := RuleLuxuryVsEducation(0, 0, 0)
		if v.Compliant || v.Severity != SeverityWarning {
			t.Errorf("RuleLuxuryVsEducation() = {%v %s}, want non-compliant warning", v.Compliant, v.Severity)
		}
	})

	t.Run("luxury above education plus assets", func(t *testing.T) {
		v := RuleLuxuryVsEducation(200, 50, 100)
		if v.Compliant || v.Severity != SeverityDanger {
			t.Errorf("RuleLuxuryVsEducation() = {%v %s}, want non-compliant danger", v.Compliant, v.Severity)
		}
	})

	t.Run("luxury covered", func(t *testing.T) {
		v := RuleLuxuryVsEducation(100, 50, 100)
		if !v.Compliant || v.Severity != SeveritySuccess {
			t.Errorf("RuleLuxuryVsEducation() = {%v %s}, want compliant success", v.Compliant, v.Severity)
		}
	})
}

func TestRuleContingencyReserve(t *testing.T) {
	t.Run("both zero is missing data", func(t *testing.T) {
		v := RuleContingencyReserve(0, 0)
		if v.Compliant || v.Severity != SeverityWarning {
			t.Errorf("RuleContingencyReserve() = {%v %s}, want non-compliant warning", v.Compliant, v.Severity)
		}
	})

	t.Run("one month covered", func(t *testing.T) {
		v := RuleContingencyReserve(1000, 1500)
		if !v.Compliant || v.Severity != SeveritySuccess {
			t.Errorf("RuleContingencyReserve() = {%v %s}, want compliant success", v.Compliant, v.Severity)
		}
	})

	t.Run("shortfall reported", func(t *testing.T) {
		v := RuleContingencyReserve(1000, 400)
		if v.Compliant || v.Severity != SeverityDanger {
			t.Errorf("RuleContingencyReserve() = {%v %s}, want non-compliant danger", v.Compliant, v.Severity)
		}
		if !strings.Contains(v.Message, "600.00") {
			t.Errorf("RuleContingencyReserve() message %q should report the 600.00 shortfall", v.Message)
		}
	})
}
