package engine

import "fmt"

// ValidatePresumptiveInput checks the presumptive-eligibility input contract
// and returns a structured result instead of an error. Callers must check
// Valid before acting on an evaluation.
func ValidatePresumptiveInput(in RecoveryInput) ValidationResult {
	var errs []string
	if in.HPE == nil {
		errs = append(errs, "hpe details are required")
		return ValidationResult{Valid: false, Errors: errs}
	}
	if in.State == "" {
		errs = append(errs, "state is required")
	}
	if in.HPE.ApplicantCategory == "" {
		errs = append(errs, "applicant category is required")
	}
	if in.HPE.AttestedIncomePct < 0 {
		errs = append(errs, "attested income percentage cannot be negative")
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// EvaluatePresumptive determines whether Hospital Presumptive Eligibility
// can grant temporary Medicaid coverage for this encounter.
func (e *Engine) EvaluatePresumptive(in RecoveryInput) (PresumptiveResult, error) {
	if v := ValidatePresumptiveInput(in); !v.Valid {
		return PresumptiveResult{}, fmt.Errorf("invalid presumptive input: %v", v.Errors)
	}
	hpe := *in.HPE

	var res PresumptiveResult
	program := e.ref.HPE.Program(in.State)

	if !program.Available {
		res.Status = PresumptiveUnavailable
		res.Strength = PresumptiveWeak
		res.Confidence = 90
		res.Pathway = "Hospital Presumptive Eligibility not available"
		return res, nil
	}
	res.Available = true

	if !hpe.HospitalQualified {
		res.Status = PresumptiveUnavailable
		res.Strength = PresumptiveWeak
		res.Confidence = 85
		res.Pathway = "Hospital not qualified to make HPE determinations"
		res.Actions = append(res.Actions, "Pursue qualified-entity status with the state Medicaid agency")
		return res, nil
	}

	if !program.Covers(hpe.ApplicantCategory) {
		res.Status = PresumptiveIneligible
		res.Strength = PresumptiveWeak
		res.Confidence = 85
		res.Pathway = fmt.Sprintf("HPE does not cover the %s group in this state", hpe.ApplicantCategory)
		return res, nil
	}

	threshold := e.ref.States.EffectiveThresholdPct(in.State, hpe.ApplicantCategory)
	if threshold == 0 {
		res.Status = PresumptiveIneligible
		res.Strength = PresumptiveWeak
		res.Confidence = 85
		res.Pathway = "No Medicaid group to presume into for this category"
		return res, nil
	}

	if hpe.AttestedIncomePct > threshold {
		res.Status = PresumptiveIneligible
		res.Strength = PresumptiveWeak
		res.Confidence = 75
		res.Pathway = "Attested income exceeds the presumptive threshold"
		res.Notes = append(res.Notes,
			fmt.Sprintf("attested income %.0f%% FPL exceeds the %.0f%% threshold", hpe.AttestedIncomePct, threshold))
		return res, nil
	}

	if hpe.PriorHPEWithinYear {
		// Federal rules limit HPE to one period per 12 months outside pregnancy.
		res.Status = PresumptiveEligible
		res.Strength = PresumptiveModerate
		res.Confidence = 55
		res.Pathway = "HPE possible but a prior period was used within 12 months"
		res.Notes = append(res.Notes, "verify the prior presumptive period before granting")
		res.Actions = append(res.Actions, "Confirm prior HPE usage with the state before determination")
		return res, nil
	}

	res.Status = PresumptiveGrantedLikely
	res.Strength = PresumptiveStrong
	res.Confidence = 85
	res.Pathway = "Hospital Presumptive Eligibility grant expected"
	res.Actions = append(res.Actions,
		"Make the HPE determination and issue temporary coverage",
		"File the full Medicaid application before the presumptive period ends")
	return res, nil
}
