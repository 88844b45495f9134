package engine

import "fmt"

// EvaluateDSHRelevance scores how much this encounter supports the
// hospital's Disproportionate Share Hospital position. Additive point
// model, clamped to [0,100]; not a decision tree.
func (e *Engine) EvaluateDSHRelevance(in RecoveryInput) DSHRelevanceResult {
	in, notes := in.normalized()

	var res DSHRelevanceResult
	res.Notes = notes

	score := 0

	// Inpatient days: 3 points per day, capped at 25, flat bonus for long
	// stays. Non-inpatient encounters contribute nothing to patient days.
	if in.EncounterType == EncounterInpatient {
		dayPoints := in.LengthOfStayDays * 3
		if dayPoints > 25 {
			dayPoints = 25
		}
		score += dayPoints
		if in.LengthOfStayDays >= 7 {
			score += 5
			res.Notes = append(res.Notes,
				fmt.Sprintf("extended inpatient stay (%d days) strengthens the patient-day contribution", in.LengthOfStayDays))
		}
	} else {
		res.Notes = append(res.Notes, "non-inpatient encounter is a weak DSH signal (no patient days)")
	}

	// Medicaid fraction contribution.
	if in.MedicaidStatus == MedicaidActive || in.MedicaidStatus == MedicaidPending {
		score += 25
	}

	// SSI fraction contribution.
	switch in.SSIStatus {
	case SSIReceiving, SSIPending, SSILikely:
		score += 20
	}

	// Low-income uninsured support the uncompensated-care picture.
	if in.InsuranceStatus == InsuranceUninsured {
		switch in.IncomeBracket {
		case IncomeBelow100FPL, Income100To138FPL, Income139To200FPL:
			score += 15
		default:
			score += 5
			res.Notes = append(res.Notes, "uninsured above 200% FPL has neutral DSH impact")
		}
	}

	// Facility designation.
	switch in.FacilityType {
	case FacilityDSHDesignated, FacilitySafetyNet:
		score += 10
	}

	res.Score = clampScore(score)
	switch {
	case res.Score >= 60:
		res.Relevance = DSHRelevanceHigh
	case res.Score >= 30:
		res.Relevance = DSHRelevanceMedium
	default:
		res.Relevance = DSHRelevanceLow
	}

	res.AuditReadiness = dshAuditReadiness(in)
	return res
}

// dshAuditReadiness grades the documentation trail: strong needs inpatient
// stay data plus a known Medicaid status, moderate needs insurance and
// income data, anything less is weak.
func dshAuditReadiness(in RecoveryInput) string {
	medicaidKnown := in.MedicaidStatus != MedicaidUnknown && in.MedicaidStatus != ""
	if in.EncounterType == EncounterInpatient && in.LengthOfStayDays > 0 && medicaidKnown {
		return AuditReadinessStrong
	}
	insuranceKnown := in.InsuranceStatus != InsuranceUnknown && in.InsuranceStatus != ""
	incomeKnown := in.IncomeBracket != IncomeUnknown && in.IncomeBracket != ""
	if insuranceKnown && incomeKnown {
		return AuditReadinessModerate
	}
	return AuditReadinessWeak
}
