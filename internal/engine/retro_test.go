package engine

import (
	"strings"
	"testing"
	"time"
)

func TestEvaluateRetroactiveCoverage_WaiverState(t *testing.T) {
	e := New(nil)

	// Arizona eliminated retroactive coverage under an 1115 waiver.
	in := baseInput()
	in.State = "AZ"
	app := date(2025, time.April, 9) // 30 days after the DOS
	in.MedicaidApplicationDate = &app

	res, err := e.EvaluateRetroactiveCoverage(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.WindowDays != 0 {
		t.Errorf("WindowDays: got %d, want 0", res.WindowDays)
	}
	if res.IsWithinWindow {
		t.Error("IsWithinWindow must be false in a waiver state")
	}
	if !res.StateHasWaiver {
		t.Error("StateHasWaiver must be true for AZ")
	}
	if !res.CoverageStartDate.Equal(app) {
		t.Errorf("CoverageStartDate: got %v, want the application date", res.CoverageStartDate)
	}
	if res.Confidence != 0 || res.EstimatedRecovery != 0 {
		t.Errorf("waiver state must yield no recovery, got conf=%d recovery=%v", res.Confidence, res.EstimatedRecovery)
	}
}

func TestEvaluateRetroactiveCoverage_StandardWindow(t *testing.T) {
	e := New(nil)

	in := baseInput() // CA, DOS 2025-03-10, inpatient, charges 100000
	in.IncomeBracket = Income100To138FPL
	app := date(2025, time.April, 15)
	in.MedicaidApplicationDate = &app

	res, err := e.EvaluateRetroactiveCoverage(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.WindowDays != 90 {
		t.Errorf("WindowDays: got %d, want 90", res.WindowDays)
	}
	// Three months back from the first of the application month.
	if !res.CoverageStartDate.Equal(date(2025, time.January, 1)) {
		t.Errorf("CoverageStartDate: got %v, want 2025-01-01", res.CoverageStartDate)
	}
	if !res.IsWithinWindow {
		t.Error("March service must fall inside a January coverage start")
	}
	if !res.EligibleOnDOS {
		t.Error("expansion-bracket income must establish eligibility on the DOS")
	}
	// 50 + 30 eligible + 5 mid-window + 5 inpatient.
	if res.Confidence != 90 {
		t.Errorf("Confidence: got %d, want 90", res.Confidence)
	}
	// 100000 * 0.45 * 0.90
	if res.EstimatedRecovery != 40500 {
		t.Errorf("EstimatedRecovery: got %v, want 40500", res.EstimatedRecovery)
	}
}

func TestEvaluateRetroactiveCoverage_OutsideWindow(t *testing.T) {
	e := New(nil)

	in := baseInput()
	in.DateOfService = date(2024, time.December, 20)
	in.IncomeBracket = IncomeBelow100FPL
	app := date(2025, time.April, 15)
	in.MedicaidApplicationDate = &app

	res, err := e.EvaluateRetroactiveCoverage(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.IsWithinWindow {
		t.Error("December service predates a January coverage start")
	}
	if res.Confidence != 0 || res.EstimatedRecovery != 0 {
		t.Errorf("outside the window: got conf=%d recovery=%v, want zeros", res.Confidence, res.EstimatedRecovery)
	}
	found := false
	for _, n := range res.Notes {
		if strings.Contains(n, "outside the retroactive window") {
			found = true
		}
	}
	if !found {
		t.Error("expected an outside-window note")
	}
}

func TestEvaluateRetroactiveCoverage_NotEligibleOnDOS(t *testing.T) {
	e := New(nil)

	in := baseInput() // above 200% FPL, uninsured
	app := date(2025, time.March, 25)
	in.MedicaidApplicationDate = &app

	res, err := e.EvaluateRetroactiveCoverage(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.EligibleOnDOS {
		t.Error("high income without a Medicaid signal must not establish DOS eligibility")
	}
	// 50 - 20 + 15 early-window + 5 inpatient.
	if res.Confidence != 50 {
		t.Errorf("Confidence: got %d, want 50", res.Confidence)
	}
	if res.EstimatedRecovery != 0 {
		t.Errorf("EstimatedRecovery: got %v, want 0 without DOS eligibility", res.EstimatedRecovery)
	}
}

func TestEvaluateRetroactiveCoverage_NonExpansionBracket(t *testing.T) {
	e := New(nil)

	in := baseInput()
	in.State = "TX"
	in.IncomeBracket = Income100To138FPL // qualifies in CA, not in TX
	app := date(2025, time.April, 15)
	in.MedicaidApplicationDate = &app

	res, err := e.EvaluateRetroactiveCoverage(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.EligibleOnDOS {
		t.Error("100-138% FPL must not establish eligibility in non-expansion Texas")
	}
}

func TestEvaluateRetroactiveCoverage_ShortenedWindow(t *testing.T) {
	e := New(nil)

	// Iowa runs a shortened 60-day window.
	in := baseInput()
	in.State = "IA"
	in.DateOfService = date(2025, time.January, 20)
	in.IncomeBracket = IncomeBelow100FPL
	app := date(2025, time.April, 15)
	in.MedicaidApplicationDate = &app

	res, err := e.EvaluateRetroactiveCoverage(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.WindowDays != 60 {
		t.Errorf("WindowDays: got %d, want 60", res.WindowDays)
	}
	// Two months back from 2025-04-01 is 2025-02-01; a January DOS misses it.
	if res.IsWithinWindow {
		t.Error("January service must fall outside a February coverage start")
	}
}

func TestEvaluateRetroactiveCoverage_DOSAfterApplication(t *testing.T) {
	e := New(nil)

	in := baseInput()
	app := date(2025, time.February, 1) // before the DOS
	in.MedicaidApplicationDate = &app

	if _, err := e.EvaluateRetroactiveCoverage(in); err == nil {
		t.Fatal("expected an error when the DOS is after the application date")
	}
}

func TestEvaluateRetroactiveCoverage_MissingApplicationDate(t *testing.T) {
	e := New(nil)

	if _, err := e.EvaluateRetroactiveCoverage(baseInput()); err == nil {
		t.Fatal("expected an error without an application date")
	}
}

func TestEvaluateRetroactiveCoverage_EarlierServiceNeverScoresHigher(t *testing.T) {
	e := New(nil)

	app := date(2025, time.April, 15)

	confidenceFor := func(dos time.Time) int {
		in := baseInput()
		in.DateOfService = dos
		in.IncomeBracket = IncomeBelow100FPL
		in.MedicaidApplicationDate = &app
		res, err := e.EvaluateRetroactiveCoverage(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return res.Confidence
	}

	recent := confidenceFor(date(2025, time.April, 1))
	mid := confidenceFor(date(2025, time.March, 1))
	early := confidenceFor(date(2025, time.February, 1))

	if recent < mid || mid < early {
		t.Errorf("confidence must not increase with claim age: recent=%d mid=%d early=%d", recent, mid, early)
	}
}
