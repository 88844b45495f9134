package engine

import (
	"fmt"
	"time"
)

// Recovery rates by encounter type for retroactive coverage estimates.
var retroRecoveryRates = map[EncounterType]float64{
	EncounterInpatient:   0.45,
	EncounterEmergency:   0.40,
	EncounterOutpatient:  0.35,
	EncounterObservation: 0.38,
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// retroEligibleOnDOS mirrors the Medicaid retroactive income rule: the
// patient must have been eligible (not merely uninsured) on the service
// date for retroactive coverage to attach.
func (e *Engine) retroEligibleOnDOS(in RecoveryInput) bool {
	switch in.MedicaidStatus {
	case MedicaidActive, MedicaidPending:
		return true
	}
	if in.InsuranceStatus != InsuranceUninsured {
		return false
	}
	if e.ref.States.IsExpansion(in.State) {
		return in.IncomeBracket == IncomeBelow100FPL || in.IncomeBracket == Income100To138FPL
	}
	return in.IncomeBracket == IncomeBelow100FPL
}

// EvaluateRetroactiveCoverage tests whether the date of service falls inside
// the state's retroactive Medicaid window relative to the application date.
// A date of service after the application date is a contract violation and
// returns an error rather than a defaulted result.
func (e *Engine) EvaluateRetroactiveCoverage(in RecoveryInput) (RetroactiveResult, error) {
	in, notes := in.normalized()

	if in.MedicaidApplicationDate == nil {
		return RetroactiveResult{}, fmt.Errorf("medicaid application date is required")
	}
	appDate := *in.MedicaidApplicationDate
	if in.DateOfService.After(appDate) {
		return RetroactiveResult{}, fmt.Errorf(
			"date of service %s is after the application date %s; retroactive coverage does not apply",
			in.DateOfService.Format("2006-01-02"), appDate.Format("2006-01-02"))
	}

	window := e.ref.Retro.Window(in.State)

	res := RetroactiveResult{
		WindowDays:     window.Days,
		StateHasWaiver: window.HasWaiver,
		Notes:          notes,
	}

	if window.Days == 0 {
		// Waiver state with no retroactive coverage: coverage can begin no
		// earlier than the application date itself.
		res.CoverageStartDate = appDate
		res.IsWithinWindow = false
		res.Notes = append(res.Notes, "state waiver eliminates retroactive coverage")
	} else {
		res.CoverageStartDate = firstOfMonth(appDate).AddDate(0, -window.Months, 0)
		res.IsWithinWindow = !firstOfMonth(in.DateOfService).Before(res.CoverageStartDate)
	}

	res.EligibleOnDOS = e.retroEligibleOnDOS(in)

	if !res.IsWithinWindow {
		res.Confidence = 0
		res.EstimatedRecovery = 0
		if window.Days > 0 {
			res.Notes = append(res.Notes, "date of service falls outside the retroactive window")
		}
		return res, nil
	}

	confidence := 50
	if res.EligibleOnDOS {
		confidence += 30
	} else {
		confidence -= 20
		res.Notes = append(res.Notes, "eligibility on the date of service is not established")
	}

	// The earlier in the window the DOS falls relative to the application,
	// the cleaner the retroactive claim.
	daysBetween := int(appDate.Sub(in.DateOfService).Hours() / 24)
	switch {
	case daysBetween <= window.Days/3:
		confidence += 15
	case daysBetween <= 2*window.Days/3:
		confidence += 5
	}

	if in.EncounterType == EncounterEmergency || in.EncounterType == EncounterInpatient {
		confidence += 5
	}

	res.Confidence = clampRange(confidence, 0, 95)

	if res.EligibleOnDOS {
		rate := retroRecoveryRates[in.EncounterType]
		res.EstimatedRecovery = in.TotalCharges * rate * float64(res.Confidence) / 100
	}
	return res, nil
}
