package engine

import (
	"fmt"
	"math"

	"github.com/halcyonrcm/recovery/internal/refdata"
)

// MAGIInput carries the income facts for the MAGI eligibility computation.
// Dollar amounts are annual.
type MAGIInput struct {
	GrossAnnualIncome float64          `json:"gross_annual_income"`
	Exclusions        IncomeExclusions `json:"exclusions"`
	HouseholdSize     int              `json:"household_size"`
	State             string           `json:"state"`
	ApplicantCategory string           `json:"applicant_category,omitempty"`
}

// CalculateMAGI computes Modified Adjusted Gross Income and compares it to
// the state/category threshold. MAGI floors at 0; household sizes below 1
// coerce to 1 with a note; unknown states yield a 0% threshold.
func (e *Engine) CalculateMAGI(in MAGIInput) MAGIResult {
	var notes []string

	if in.HouseholdSize < 1 {
		notes = append(notes, fmt.Sprintf("household size %d coerced to 1", in.HouseholdSize))
		in.HouseholdSize = 1
	}

	gross := in.GrossAnnualIncome
	if gross < 0 {
		notes = append(notes, "negative gross income floored to 0")
		gross = 0
	}

	magi := gross - in.Exclusions.Total()
	if magi < 0 {
		magi = 0
	}

	threshold := e.ref.FPL.Threshold(in.HouseholdSize)
	fplPct := round2(safeDivide(magi, threshold) * 100)

	category := in.ApplicantCategory
	if category == "" {
		category = refdata.CategoryAdult
	}
	effective := e.ref.States.EffectiveThresholdPct(in.State, category)
	if !e.ref.States.Known(in.State) {
		notes = append(notes, fmt.Sprintf("state %q not recognized; no income threshold applies", in.State))
	}

	eligible := effective > 0 && fplPct <= effective

	confidence := 90
	switch {
	case effective == 0 && category == refdata.CategoryAdult && e.ref.States.Known(in.State):
		// Non-expansion adult with no pathway: ineligibility is certain.
		confidence = 95
		notes = append(notes, "no adult Medicaid pathway in this non-expansion state")
	case math.Abs(fplPct-effective) <= 5:
		confidence = 70
		notes = append(notes, "income within 5 FPL points of the threshold; verify with documentation")
	}

	return MAGIResult{
		MAGI:                  magi,
		FPLThreshold:          threshold,
		FPLPercentage:         fplPct,
		EffectiveThresholdPct: effective,
		IsIncomeEligible:      eligible,
		Confidence:            confidence,
		Notes:                 notes,
	}
}
