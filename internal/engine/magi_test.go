package engine

import "testing"

func TestCalculateMAGI_At100PercentFPL(t *testing.T) {
	e := New(nil)

	// Household of 1 earning exactly the FPL threshold is 100% FPL and
	// eligible in an expansion state.
	res := e.CalculateMAGI(MAGIInput{
		GrossAnnualIncome: 15060,
		HouseholdSize:     1,
		State:             "CA",
	})

	if res.FPLPercentage != 100 {
		t.Errorf("FPLPercentage: got %v, want 100", res.FPLPercentage)
	}
	if !res.IsIncomeEligible {
		t.Error("expected income eligibility at 100% FPL in an expansion state")
	}
	if res.EffectiveThresholdPct != 138 {
		t.Errorf("EffectiveThresholdPct: got %v, want 138", res.EffectiveThresholdPct)
	}
	if res.Confidence != 90 {
		t.Errorf("Confidence: got %d, want 90", res.Confidence)
	}
}

func TestCalculateMAGI_Exclusions(t *testing.T) {
	e := New(nil)

	res := e.CalculateMAGI(MAGIInput{
		GrossAnnualIncome: 30000,
		Exclusions: IncomeExclusions{
			ChildSupportReceived: 4000,
			SSIBenefits:          6000,
			VeteransBenefits:     2000,
		},
		HouseholdSize: 2,
		State:         "NY",
	})

	if res.MAGI != 18000 {
		t.Errorf("MAGI: got %v, want 18000", res.MAGI)
	}
	// 18000 / 20440 = 88.06%
	if res.FPLPercentage != 88.06 {
		t.Errorf("FPLPercentage: got %v, want 88.06", res.FPLPercentage)
	}
	if !res.IsIncomeEligible {
		t.Error("expected eligibility well under the expansion threshold")
	}
}

func TestCalculateMAGI_ExclusionsExceedIncome(t *testing.T) {
	e := New(nil)

	res := e.CalculateMAGI(MAGIInput{
		GrossAnnualIncome: 5000,
		Exclusions:        IncomeExclusions{SSIBenefits: 9000},
		HouseholdSize:     1,
		State:             "CA",
	})

	if res.MAGI != 0 {
		t.Errorf("MAGI should floor at 0, got %v", res.MAGI)
	}
}

func TestCalculateMAGI_NegativeIncomeFloorsToZero(t *testing.T) {
	e := New(nil)

	res := e.CalculateMAGI(MAGIInput{
		GrossAnnualIncome: -12000,
		HouseholdSize:     1,
		State:             "CA",
	})

	if res.MAGI != 0 {
		t.Errorf("MAGI: got %v, want 0", res.MAGI)
	}
	if len(res.Notes) == 0 {
		t.Error("expected an explanatory note for negative income")
	}
}

func TestCalculateMAGI_HouseholdSizeCoercion(t *testing.T) {
	e := New(nil)

	res := e.CalculateMAGI(MAGIInput{
		GrossAnnualIncome: 10000,
		HouseholdSize:     0,
		State:             "CA",
	})

	if res.FPLThreshold != 15060 {
		t.Errorf("FPLThreshold: got %v, want household-of-1 threshold 15060", res.FPLThreshold)
	}
	if len(res.Notes) == 0 {
		t.Error("expected a coercion note for household size 0")
	}
}

func TestCalculateMAGI_NearThresholdConfidenceDrop(t *testing.T) {
	e := New(nil)

	// 138% of 15060 is 20782.80; income at ~136% FPL sits within 5 points.
	res := e.CalculateMAGI(MAGIInput{
		GrossAnnualIncome: 20482,
		HouseholdSize:     1,
		State:             "CA",
	})

	if res.Confidence != 70 {
		t.Errorf("Confidence near the threshold: got %d, want 70", res.Confidence)
	}
	if !res.IsIncomeEligible {
		t.Error("expected eligibility just under the threshold")
	}
}

func TestCalculateMAGI_NonExpansionAdult(t *testing.T) {
	e := New(nil)

	res := e.CalculateMAGI(MAGIInput{
		GrossAnnualIncome: 12000,
		HouseholdSize:     1,
		State:             "TX",
		ApplicantCategory: "adult",
	})

	if res.EffectiveThresholdPct != 0 {
		t.Errorf("EffectiveThresholdPct: got %v, want 0", res.EffectiveThresholdPct)
	}
	if res.IsIncomeEligible {
		t.Error("adults have no Medicaid pathway in non-expansion Texas")
	}
	if res.Confidence != 95 {
		t.Errorf("Confidence: got %d, want 95 (certain ineligibility)", res.Confidence)
	}
}

func TestCalculateMAGI_NonExpansionPregnant(t *testing.T) {
	e := New(nil)

	res := e.CalculateMAGI(MAGIInput{
		GrossAnnualIncome: 25000,
		HouseholdSize:     2,
		State:             "TX",
		ApplicantCategory: "pregnant",
	})

	if res.EffectiveThresholdPct != 198 {
		t.Errorf("EffectiveThresholdPct: got %v, want 198", res.EffectiveThresholdPct)
	}
	if !res.IsIncomeEligible {
		t.Errorf("expected eligibility at %v%% FPL under the 198%% pregnancy threshold", res.FPLPercentage)
	}
}

func TestCalculateMAGI_UnknownState(t *testing.T) {
	e := New(nil)

	res := e.CalculateMAGI(MAGIInput{
		GrossAnnualIncome: 10000,
		HouseholdSize:     1,
		State:             "ZZ",
	})

	if res.EffectiveThresholdPct != 0 {
		t.Errorf("unknown state threshold: got %v, want 0", res.EffectiveThresholdPct)
	}
	if res.IsIncomeEligible {
		t.Error("eligibility requires a positive threshold")
	}
}

func TestCalculateMAGI_ConfidenceInRange(t *testing.T) {
	e := New(nil)

	inputs := []MAGIInput{
		{GrossAnnualIncome: 0, HouseholdSize: 1, State: "CA"},
		{GrossAnnualIncome: 1e9, HouseholdSize: 12, State: "TX"},
		{GrossAnnualIncome: -5, HouseholdSize: -5, State: "ZZ"},
	}
	for _, in := range inputs {
		res := e.CalculateMAGI(in)
		if res.Confidence < 0 || res.Confidence > 100 {
			t.Errorf("confidence out of range for %+v: %d", in, res.Confidence)
		}
	}
}
