package engine

import (
	"fmt"
	"time"
)

// EvaluateMedicare determines whether Medicare was billable on the date of
// service, or whether an SSDI-based future entitlement exists. Active
// coverage on the DOS always takes precedence over any future pathway.
func (e *Engine) EvaluateMedicare(in RecoveryInput) MedicareResult {
	in, notes := in.normalized()

	var res MedicareResult
	res.Notes = notes

	enr := in.MedicareEnrollment
	inpatient := in.EncounterType == EncounterInpatient

	if enr != nil {
		switch {
		case enr.PartA && inpatient:
			res.Status = MedicareActiveOnDOS
			res.Confidence = 95
			res.Pathway = "Medicare Part A active for inpatient stay"
			res.Actions = append(res.Actions, "Bill Medicare Part A as primary payer")
			return res
		case enr.PartB && !inpatient:
			res.Status = MedicareActiveOnDOS
			res.Confidence = 90
			res.Pathway = "Medicare Part B active for outpatient services"
			res.Actions = append(res.Actions, "Bill Medicare Part B as primary payer")
			return res
		case enr.PartB && inpatient && !enr.PartA:
			res.Status = MedicareNotActive
			res.Confidence = 40
			res.Pathway = "Part B only; inpatient stay requires Part A"
			res.Notes = append(res.Notes,
				"Part A enrollment not confirmed; verify entitlement before writing off",
				"Part B may still cover physician services within the stay")
			res.Actions = append(res.Actions, "Verify Medicare Part A entitlement with the MAC")
			return res
		}
	}

	// SSDI-based future entitlement. Medicare begins 24 months after SSDI
	// cash benefits start.
	switch in.SSDIStatus {
	case SSDIReceiving:
		res.Status = MedicareFutureLikely
		res.Confidence = 85
		res.EstimatedWaitMonths = 24
		res.Pathway = "Medicare entitlement expected via SSDI"
	case SSDIPending:
		res.Status = MedicareFutureLikely
		res.Confidence = 60
		res.EstimatedWaitMonths = 36
		res.Pathway = "Medicare entitlement possible pending SSDI approval"
	case SSDILikely:
		if in.DisabilityLikelihood == DisabilityHigh {
			res.Status = MedicareFutureLikely
			res.Confidence = 50
			res.EstimatedWaitMonths = 48
			res.Pathway = "Medicare entitlement possible if SSDI is pursued"
			res.Actions = append(res.Actions, "Refer the patient to a disability advocate for an SSDI filing")
		}
	}

	if res.Status == MedicareFutureLikely {
		res.Actions = append(res.Actions,
			fmt.Sprintf("Calendar a Medicare entitlement review in ~%d months", res.EstimatedWaitMonths))
		res.Notes = append(res.Notes, "Future entitlement does not cover the current date of service")
		return res
	}

	if res.Status == "" {
		res.Status = MedicareUnlikely
		res.Confidence = 10
		res.Pathway = "No Medicare pathway identified"
	}
	return res
}

// EvaluateMedicareAge reports age-based Medicare eligibility from the date
// of birth. Requires DateOfBirth; the orchestrator gates on its presence.
func (e *Engine) EvaluateMedicareAge(in RecoveryInput) MedicareAgeResult {
	var res MedicareAgeResult

	if in.DateOfBirth == nil {
		res.Status = MedicareUnlikely
		res.Confidence = 0
		res.Pathway = "Date of birth not provided"
		return res
	}

	dob := *in.DateOfBirth
	dos := in.DateOfService

	age := dos.Year() - dob.Year()
	if dos.Month() < dob.Month() || (dos.Month() == dob.Month() && dos.Day() < dob.Day()) {
		age--
	}
	res.AgeAtService = age

	switch {
	case age >= 65:
		res.Status = MedicareActiveOnDOS
		res.Confidence = 90
		res.Pathway = "Age-based Medicare eligibility (65+)"
		res.Actions = append(res.Actions,
			"Verify Medicare enrollment; assist with enrollment if never filed")
		res.Notes = append(res.Notes, "Eligibility does not guarantee enrollment; confirm Part A/B status")
	case age >= 64:
		res.Status = MedicareFutureLikely
		res.Confidence = 70
		res.MonthsUntilEligible = monthsUntil65(dob, dos)
		res.Pathway = "Approaching age-based Medicare eligibility"
		res.Actions = append(res.Actions,
			"Schedule Medicare enrollment assistance ahead of the initial enrollment period")
	default:
		res.Status = MedicareUnlikely
		res.Confidence = 90
		res.MonthsUntilEligible = monthsUntil65(dob, dos)
		res.Pathway = "Below Medicare eligibility age"
	}
	return res
}

// monthsUntil65 counts whole months from asOf until the 65th birthday,
// never negative.
func monthsUntil65(dob, asOf time.Time) int {
	turn65 := dob.AddDate(65, 0, 0)
	if !turn65.After(asOf) {
		return 0
	}
	months := (turn65.Year()-asOf.Year())*12 + int(turn65.Month()) - int(asOf.Month())
	if turn65.Day() < asOf.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months
}
