package engine

import (
	"fmt"
	"math"
	"time"
)

// Orchestrator policy constants. These encode business policy rather than
// regulation; preserve them exactly (see DESIGN.md).
const (
	likelyMedicaidDiscount   = 0.7
	possibleMedicaidDiscount = 0.3
	nominalWriteOffFactor    = 0.1
)

// Evaluator names used in the run bookkeeping.
const (
	evalMedicaid     = "medicaid"
	evalMedicare     = "medicare"
	evalDSHRelevance = "dsh_relevance"
	evalStateProgram = "state_program"
	evalMAGI         = "magi"
	evalMedicareAge  = "medicare_age"
	evalPresumptive  = "presumptive"
	evalRetroactive  = "retroactive"
	evalCharityCare  = "charity_care"
	evalDenial       = "denial"
	evalDualEligible = "dual_eligible"
	evalDSHAudit     = "dsh_audit"
)

// Evaluate runs every applicable pathway evaluator over the encounter and
// reconciles the signals into one ranked, explainable recommendation. The
// four core evaluators always run; optional evaluators run only when their
// input extensions are present, and a failing optional evaluator is recorded
// without aborting the rest of the pipeline.
func (e *Engine) Evaluate(in RecoveryInput) RecoveryResult {
	in, notes := in.normalized()
	if in.AsOf.IsZero() {
		in.AsOf = time.Now()
	}

	res := RecoveryResult{Notes: notes}

	record := func(name string, status RunStatus, detail string) {
		res.EvaluatorRuns = append(res.EvaluatorRuns, EvaluatorRun{Name: name, Status: status, Detail: detail})
		if status == RunFailed {
			res.EngineErrors = append(res.EngineErrors, fmt.Sprintf("%s: %s", name, detail))
		}
	}

	// Core evaluators: always run.
	medicaid := e.EvaluateMedicaid(in)
	res.Medicaid = &medicaid
	record(evalMedicaid, RunOK, "")

	medicare := e.EvaluateMedicare(in)
	res.Medicare = &medicare
	record(evalMedicare, RunOK, "")

	dsh := e.EvaluateDSHRelevance(in)
	res.DSHRelevance = &dsh
	record(evalDSHRelevance, RunOK, "")

	stateProgram := e.EvaluateStateProgram(in)
	res.StateProgram = &stateProgram
	record(evalStateProgram, RunOK, "")

	// Optional evaluators: gated on extension presence.
	if in.GrossMonthlyIncome != nil {
		magiIn := MAGIInput{
			GrossAnnualIncome: *in.GrossMonthlyIncome * 12,
			HouseholdSize:     in.HouseholdSize,
			State:             in.State,
			ApplicantCategory: in.ApplicantCategory,
		}
		if in.IncomeExclusions != nil {
			magiIn.Exclusions = *in.IncomeExclusions
		}
		magi := e.CalculateMAGI(magiIn)
		res.MAGI = &magi
		record(evalMAGI, RunOK, "")
	} else {
		record(evalMAGI, RunSkipped, "gross monthly income not provided")
	}

	if in.DateOfBirth != nil {
		age := e.EvaluateMedicareAge(in)
		res.MedicareAge = &age
		record(evalMedicareAge, RunOK, "")
	} else {
		record(evalMedicareAge, RunSkipped, "date of birth not provided")
	}

	if in.HPE != nil {
		if pres, err := e.EvaluatePresumptive(in); err != nil {
			record(evalPresumptive, RunFailed, err.Error())
		} else {
			res.Presumptive = &pres
			record(evalPresumptive, RunOK, "")
		}
	} else {
		record(evalPresumptive, RunSkipped, "hpe details not provided")
	}

	if in.MedicaidApplicationDate != nil {
		if retro, err := e.EvaluateRetroactiveCoverage(in); err != nil {
			record(evalRetroactive, RunFailed, err.Error())
		} else {
			res.Retroactive = &retro
			record(evalRetroactive, RunOK, "")
		}
	} else {
		record(evalRetroactive, RunSkipped, "medicaid application date not provided")
	}

	if in.FAPPolicy != nil {
		if charity, err := e.EvaluateCharityCare(in); err != nil {
			record(evalCharityCare, RunFailed, err.Error())
		} else {
			res.CharityCare = &charity
			record(evalCharityCare, RunOK, "")
		}
	} else {
		record(evalCharityCare, RunSkipped, "fap policy not provided")
	}

	if in.Denial != nil {
		if denial, err := e.EvaluateDenial(in); err != nil {
			record(evalDenial, RunFailed, err.Error())
		} else {
			res.Denial = &denial
			record(evalDenial, RunOK, "")
		}
	} else {
		record(evalDenial, RunSkipped, "denial details not provided")
	}

	if in.MedicareEnrollment != nil && (in.MedicaidStatus == MedicaidActive || in.ScopeOfBenefits != "") {
		if dual, err := e.EvaluateDualEligible(in); err != nil {
			record(evalDualEligible, RunFailed, err.Error())
		} else {
			res.DualEligible = &dual
			record(evalDualEligible, RunOK, "")
		}
	} else {
		record(evalDualEligible, RunSkipped, "requires medicare enrollment plus a medicaid signal")
	}

	if in.DSHAudit != nil {
		audit := e.EvaluateDSHAudit(*in.DSHAudit, in.AsOf.Year())
		res.DSHAudit = &audit
		record(evalDSHAudit, RunOK, "")
	} else {
		record(evalDSHAudit, RunSkipped, "dsh audit figures not provided")
	}

	res.Projected = e.projectRecovery(in, res)
	res.EstimatedTotalRecovery = res.Projected.Total
	res.PrimaryRecoveryPath = primaryPath(res)
	res.OverallConfidence = overallConfidence(res)

	res.PriorityActions = collectActions(res)
	if len(res.PriorityActions) > 3 {
		res.ImmediateActions = res.PriorityActions[:3]
		res.FollowUpActions = res.PriorityActions[3:]
	} else {
		res.ImmediateActions = res.PriorityActions
	}
	res.DocumentationChecklist = documentationChecklist(res)

	return res
}

// projectRecovery builds the non-double-counted dollar breakdown. Medicaid
// dollars are discounted by certainty; a larger retroactive estimate
// replaces (never stacks on) the Medicaid figure; state program dollars only
// count when Medicaid is not confirmed; the charity write-off covers what
// remains.
func (e *Engine) projectRecovery(in RecoveryInput, res RecoveryResult) ProjectedRecovery {
	var p ProjectedRecovery

	switch res.Medicaid.Status {
	case StatusConfirmed:
		p.Medicaid = res.Medicaid.EstimatedRecovery
	case StatusLikely:
		p.Medicaid = res.Medicaid.EstimatedRecovery * likelyMedicaidDiscount
	case StatusPossible:
		p.Medicaid = res.Medicaid.EstimatedRecovery * possibleMedicaidDiscount
	}

	if res.Retroactive != nil && res.Retroactive.EstimatedRecovery > p.Medicaid {
		p.Medicaid = res.Retroactive.EstimatedRecovery
	}

	if res.Medicaid.Status != StatusConfirmed {
		p.StateProgram = res.StateProgram.EstimatedRecovery
	}

	remaining := math.Max(0, in.TotalCharges-p.Medicaid-p.StateProgram)
	if res.CharityCare != nil && res.CharityCare.FAP.Level != FAPNotEligible {
		// FAP discount is known: write off the discounted share of charges,
		// bounded by what Medicaid/state recovery has not already claimed.
		p.CharityWriteOff = math.Min(in.TotalCharges*res.CharityCare.FAP.DiscountPct/100, remaining)
	} else {
		// Nominal reporting value only; charity write-offs are not cash.
		p.CharityWriteOff = remaining * nominalWriteOffFactor
	}

	p.Medicaid = round2(p.Medicaid)
	p.StateProgram = round2(p.StateProgram)
	p.CharityWriteOff = round2(p.CharityWriteOff)
	p.Total = round2(p.Medicaid + p.StateProgram + p.CharityWriteOff)
	return p
}

// primaryPath picks the single headline pathway by fixed priority.
func primaryPath(res RecoveryResult) string {
	if res.DualEligible != nil && res.DualEligible.Category != DualNotDual {
		return "Dual-eligible billing coordination"
	}
	if res.Medicaid.Status == StatusConfirmed {
		return res.Medicaid.Pathway
	}
	if res.Medicare.Status == MedicareActiveOnDOS {
		return res.Medicare.Pathway
	}
	if res.Presumptive != nil && res.Presumptive.Status == PresumptiveGrantedLikely {
		return res.Presumptive.Pathway
	}
	if res.Medicaid.Status == StatusLikely {
		return res.Medicaid.Pathway
	}
	if res.MedicareAge != nil && res.MedicareAge.Status == MedicareActiveOnDOS {
		return res.MedicareAge.Pathway
	}
	if res.StateProgram.Status == StatusLikely {
		return res.StateProgram.Pathway
	}
	if res.Medicaid.Status == StatusPossible {
		return res.Medicaid.Pathway
	}
	return "Financial assistance screening"
}

// overallConfidence blends the per-pathway confidences. A confirmed,
// high-confidence Medicaid result dominates the blend; otherwise the state
// program signal shares the weight. Income, presumptive, and dual-eligible
// confirmations add bounded boosts.
func overallConfidence(res RecoveryResult) int {
	var blended float64
	if res.Medicaid.Status == StatusConfirmed && res.Medicaid.Confidence >= 90 {
		blended = 0.7*float64(res.Medicaid.Confidence) +
			0.2*float64(res.DSHRelevance.Score) +
			0.1*float64(res.Medicare.Confidence)
	} else {
		blended = 0.4*float64(res.Medicaid.Confidence) +
			0.3*float64(res.StateProgram.Confidence) +
			0.2*float64(res.DSHRelevance.Score) +
			0.1*float64(res.Medicare.Confidence)
	}

	confidence := int(math.Round(blended))
	if res.MAGI != nil && res.MAGI.IsIncomeEligible {
		if res.MAGI.Confidence >= 90 {
			confidence += 10
		} else {
			confidence += 5
		}
	}
	if res.Presumptive != nil && res.Presumptive.Strength == PresumptiveStrong {
		confidence += 5
	}
	if res.DualEligible != nil && res.DualEligible.Category != DualNotDual {
		confidence += 8
	}
	return clampScore(confidence)
}

// collectActions gathers evaluator actions in pathway-priority order and
// deduplicates them.
func collectActions(res RecoveryResult) []string {
	var actions []string
	if res.DualEligible != nil {
		actions = append(actions, res.DualEligible.BillingInstructions...)
	}
	actions = append(actions, res.Medicaid.Actions...)
	actions = append(actions, res.Medicare.Actions...)
	if res.Presumptive != nil {
		actions = append(actions, res.Presumptive.Actions...)
	}
	if res.MedicareAge != nil {
		actions = append(actions, res.MedicareAge.Actions...)
	}
	actions = append(actions, res.StateProgram.Actions...)
	if res.Denial != nil {
		actions = append(actions, res.Denial.Actions...)
	}
	return dedupe(actions)
}

// documentationChecklist aggregates the paperwork the recommended pathways
// will need.
func documentationChecklist(res RecoveryResult) []string {
	var docs []string
	if res.Medicaid.Status != StatusUnlikely {
		docs = append(docs, "Proof of identity", "Proof of income", "Proof of state residency")
	}
	if res.Retroactive != nil && res.Retroactive.IsWithinWindow {
		docs = append(docs, "Medicaid application with retroactive coverage request")
	}
	if res.CharityCare != nil {
		docs = append(docs, "Completed FAP application", "501(r) notification log")
	}
	if res.Denial != nil && res.Denial.Appealable {
		docs = append(docs, "Medical records supporting the appealed service", "Original claim and remittance advice")
	}
	docs = append(docs, res.StateProgram.RequiredDocuments...)
	return dedupe(docs)
}
