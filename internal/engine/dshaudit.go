package engine

import (
	"fmt"
	"math"
)

// dshQualificationThreshold is the DPP above which a hospital qualifies for
// DSH payments. Applied to all facility types in this model.
const dshQualificationThreshold = 0.15

// EvaluateDSHAudit computes the disproportionate patient percentage from
// cost-report day counts and grades audit readiness. Division-by-zero
// denominators yield 0 ratios and a documentation gap, never an error.
func (e *Engine) EvaluateDSHAudit(in DSHAuditInput, fiscalYearNow int) DSHAuditResult {
	var res DSHAuditResult

	res.SSIRatio = safeDivide(float64(in.MedicareSSIDays), float64(in.MedicarePartADays))

	medicaidOnly := float64(in.MedicaidDays - in.DualEligibleDays)
	if medicaidOnly < 0 {
		medicaidOnly = 0
	}
	res.MedicaidRatio = safeDivide(medicaidOnly, float64(in.TotalPatientDays))

	res.DPP = res.SSIRatio + res.MedicaidRatio
	res.QualifiesForDSH = res.DPP > dshQualificationThreshold

	// Hospital-specific payment limit is the uncompensated-care cost.
	res.PaymentLimit = in.UncompensatedCareCost
	res.ExcessPaymentRisk = math.Max(0, in.DSHPaymentsReceived-res.PaymentLimit)

	score := 100
	gap := func(msg string, penalty int) {
		res.DocumentationGaps = append(res.DocumentationGaps, msg)
		score -= penalty
	}

	if in.TotalPatientDays == 0 {
		gap("total patient days not reported", 10)
	}
	if in.MedicarePartADays == 0 {
		gap("Medicare Part A days not reported; SSI ratio unverifiable", 10)
	}
	if in.DualEligibleDays > in.MedicaidDays {
		gap("dual-eligible days exceed Medicaid days; day counts inconsistent", 10)
	}
	if in.UncompensatedCareCost == 0 {
		gap("uncompensated care cost not reported", 10)
		if in.DSHPaymentsReceived > 0 {
			gap("DSH payments received with zero uncompensated care cost", 25)
		}
	}
	if in.ReportedDPP != 0 && math.Abs(in.ReportedDPP-res.DPP) > 0.01 {
		gap(fmt.Sprintf("reported DPP %.4f does not reconcile with computed %.4f", in.ReportedDPP, res.DPP), 10)
	}
	if in.CostReportFiscalYear != 0 && fiscalYearNow-in.CostReportFiscalYear > 2 {
		gap(fmt.Sprintf("cost report fiscal year %d is stale", in.CostReportFiscalYear), 10)
	}

	res.AuditReadinessScore = clampScore(score)
	return res
}
