package engine

import "testing"

func TestEvaluatePresumptive_GrantExpected(t *testing.T) {
	e := New(nil)

	in := baseInput()
	in.HPE = &HPEInput{
		HospitalQualified: true,
		ApplicantCategory: "adult",
		AttestedIncomePct: 90,
	}

	res, err := e.EvaluatePresumptive(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Status != PresumptiveGrantedLikely {
		t.Errorf("Status: got %q, want granted_likely", res.Status)
	}
	if res.Strength != PresumptiveStrong || res.Confidence != 85 {
		t.Errorf("got %q/%d, want strong/85", res.Strength, res.Confidence)
	}
	if !res.Available {
		t.Error("HPE must be available in CA")
	}
	if len(res.Actions) == 0 {
		t.Error("expected determination and follow-up actions")
	}
}

func TestEvaluatePresumptive_HospitalNotQualified(t *testing.T) {
	e := New(nil)

	in := baseInput()
	in.HPE = &HPEInput{
		HospitalQualified: false,
		ApplicantCategory: "adult",
		AttestedIncomePct: 90,
	}

	res, err := e.EvaluatePresumptive(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Status != PresumptiveUnavailable {
		t.Errorf("Status: got %q, want unavailable", res.Status)
	}
	if !res.Available {
		t.Error("the state program itself is still available")
	}
}

func TestEvaluatePresumptive_CategoryNotCovered(t *testing.T) {
	e := New(nil)

	// Texas HPE has no adult group to presume into.
	in := baseInput()
	in.State = "TX"
	in.HPE = &HPEInput{
		HospitalQualified: true,
		ApplicantCategory: "adult",
		AttestedIncomePct: 50,
	}

	res, err := e.EvaluatePresumptive(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Status != PresumptiveIneligible {
		t.Errorf("Status: got %q, want ineligible", res.Status)
	}
}

func TestEvaluatePresumptive_PregnantCoveredInNonExpansionState(t *testing.T) {
	e := New(nil)

	in := baseInput()
	in.State = "TX"
	in.HPE = &HPEInput{
		HospitalQualified: true,
		ApplicantCategory: "pregnant",
		AttestedIncomePct: 150, // under the 198% pregnancy threshold
	}

	res, err := e.EvaluatePresumptive(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Status != PresumptiveGrantedLikely {
		t.Errorf("Status: got %q, want granted_likely", res.Status)
	}
}

func TestEvaluatePresumptive_IncomeAboveThreshold(t *testing.T) {
	e := New(nil)

	in := baseInput()
	in.HPE = &HPEInput{
		HospitalQualified: true,
		ApplicantCategory: "adult",
		AttestedIncomePct: 160, // above the 138% expansion threshold
	}

	res, err := e.EvaluatePresumptive(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Status != PresumptiveIneligible || res.Confidence != 75 {
		t.Errorf("got %q/%d, want ineligible/75", res.Status, res.Confidence)
	}
	if len(res.Notes) == 0 {
		t.Error("expected a threshold comparison note")
	}
}

func TestEvaluatePresumptive_PriorPeriodWithinYear(t *testing.T) {
	e := New(nil)

	in := baseInput()
	in.HPE = &HPEInput{
		HospitalQualified:  true,
		ApplicantCategory:  "adult",
		AttestedIncomePct:  90,
		PriorHPEWithinYear: true,
	}

	res, err := e.EvaluatePresumptive(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Status != PresumptiveEligible {
		t.Errorf("Status: got %q, want eligible", res.Status)
	}
	if res.Strength != PresumptiveModerate || res.Confidence != 55 {
		t.Errorf("got %q/%d, want moderate/55", res.Strength, res.Confidence)
	}
}

func TestValidatePresumptiveInput(t *testing.T) {
	in := baseInput()
	if v := ValidatePresumptiveInput(in); v.Valid {
		t.Error("nil HPE details must not validate")
	}

	in.HPE = &HPEInput{HospitalQualified: true, AttestedIncomePct: -10}
	in.State = ""
	v := ValidatePresumptiveInput(in)
	if v.Valid {
		t.Fatal("expected validation failures")
	}
	if len(v.Errors) != 3 {
		t.Errorf("Errors: got %v, want state, category, and income failures", v.Errors)
	}

	in = baseInput()
	in.HPE = &HPEInput{HospitalQualified: true, ApplicantCategory: "adult", AttestedIncomePct: 90}
	if v := ValidatePresumptiveInput(in); !v.Valid {
		t.Errorf("expected valid input, got errors %v", v.Errors)
	}
}

func TestEvaluatePresumptive_InvalidInput(t *testing.T) {
	e := New(nil)

	in := baseInput()
	in.HPE = &HPEInput{HospitalQualified: true, AttestedIncomePct: 90} // no category

	if _, err := e.EvaluatePresumptive(in); err == nil {
		t.Fatal("expected an error for an invalid input contract")
	}
}
