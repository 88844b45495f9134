package engine

import (
	"fmt"
	"strings"
)

// Medicare Savings Program income ceilings, % of FPL.
const (
	qmbIncomeCeilingPct  = 100.0
	slmbIncomeCeilingPct = 120.0
	qiIncomeCeilingPct   = 135.0
)

// EvaluateDualEligible classifies dual Medicare/Medicaid coverage, picks the
// payer order, and emits billing instructions. Requires the Medicare
// enrollment extension plus a Medicaid signal (status or explicit scope of
// benefits).
func (e *Engine) EvaluateDualEligible(in RecoveryInput) (DualEligibleResult, error) {
	in, notes := in.normalized()

	enr := in.MedicareEnrollment
	if enr == nil {
		return DualEligibleResult{}, fmt.Errorf("medicare enrollment details are required")
	}
	hasMedicare := enr.PartA || enr.PartB || enr.MedicareAdvantage || enr.PACE
	hasMedicaidSignal := in.MedicaidStatus == MedicaidActive || in.ScopeOfBenefits != ""
	if !hasMedicaidSignal {
		return DualEligibleResult{}, fmt.Errorf("medicaid status or scope of benefits is required")
	}

	var res DualEligibleResult
	res.Notes = notes

	if !hasMedicare {
		res.Category = DualNotDual
		res.PrimaryPayer = "medicaid"
		res.Confidence = 80
		res.Notes = append(res.Notes, "no Medicare enrollment; single-payer Medicaid billing")
		res.BillingInstructions = append(res.BillingInstructions, "Bill the state Medicaid program as primary")
		return res, nil
	}

	res.Category, res.Confidence = e.dualCategory(in)
	res.Notes = append(res.Notes, dualCategoryNote(res.Category))

	// Payer ordering: PACE capitates everything; Medicare Advantage and
	// D-SNP plans replace original Medicare; otherwise Medicare pays first
	// and Medicaid wraps.
	switch {
	case enr.PACE:
		res.PrimaryPayer = "pace"
		res.BillingInstructions = append(res.BillingInstructions,
			"Bill the PACE organization; PACE capitation covers all services")
	case enr.MedicareAdvantage || enr.DSNP:
		res.PrimaryPayer = "medicare_advantage"
		res.SecondaryPayer = "medicaid"
		res.BillingInstructions = append(res.BillingInstructions,
			"Bill the Medicare Advantage plan as primary",
			"Submit the cost-sharing crossover claim to Medicaid")
	default:
		res.PrimaryPayer = "medicare"
		res.SecondaryPayer = "medicaid"
		res.BillingInstructions = append(res.BillingInstructions,
			"Bill original Medicare as primary",
			"Submit the crossover claim to Medicaid for cost sharing")
	}

	if res.Category == DualQMB || res.Category == DualFullDual {
		res.BalanceBillingProhibited = true
		res.BillingInstructions = append(res.BillingInstructions,
			"Do not balance bill the patient for Medicare cost sharing")
		res.Notes = append(res.Notes, "balance billing is prohibited for this category by federal law")
	}
	return res, nil
}

// dualCategory classifies the dual-eligible tier: an explicit scope of
// benefits wins; otherwise income thresholds place the patient into a
// Medicare Savings Program tier.
func (e *Engine) dualCategory(in RecoveryInput) (string, int) {
	switch strings.ToLower(in.ScopeOfBenefits) {
	case "full":
		return DualFullDual, 95
	case "qmb":
		return DualQMB, 95
	case "slmb":
		return DualSLMB, 95
	case "qi":
		return DualQI, 95
	case "partial":
		return DualPartialDual, 95
	}

	if in.MedicaidStatus == MedicaidActive {
		return DualFullDual, 85
	}

	incomePct, known := e.dualIncomePct(in)
	if !known {
		return DualPartialDual, 50
	}
	switch {
	case incomePct <= qmbIncomeCeilingPct:
		return DualQMB, 70
	case incomePct <= slmbIncomeCeilingPct:
		return DualSLMB, 70
	case incomePct <= qiIncomeCeilingPct:
		return DualQI, 70
	default:
		return DualPartialDual, 60
	}
}

func (e *Engine) dualIncomePct(in RecoveryInput) (float64, bool) {
	if in.GrossMonthlyIncome != nil {
		magiIn := MAGIInput{
			GrossAnnualIncome: *in.GrossMonthlyIncome * 12,
			HouseholdSize:     in.HouseholdSize,
			State:             in.State,
		}
		if in.IncomeExclusions != nil {
			magiIn.Exclusions = *in.IncomeExclusions
		}
		return e.CalculateMAGI(magiIn).FPLPercentage, true
	}
	return bracketEstimatePct(in.IncomeBracket)
}

func dualCategoryNote(category string) string {
	switch category {
	case DualFullDual:
		return "full dual: Medicaid covers premiums, cost sharing, and Medicaid-only services"
	case DualQMB:
		return "QMB: Medicaid pays Medicare premiums and all cost sharing"
	case DualSLMB:
		return "SLMB: Medicaid pays the Part B premium only"
	case DualQI:
		return "QI: Medicaid pays the Part B premium only, subject to annual funding"
	default:
		return "partial dual: limited Medicaid assistance with Medicare costs"
	}
}
