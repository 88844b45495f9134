package assessment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/halcyonrcm/recovery/internal/engine"
)

// -- Mock Repository --

type mockRepo struct {
	items     map[uuid.UUID]*Assessment
	createErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]*Assessment)}
}

func (m *mockRepo) Create(_ context.Context, a *Assessment) error {
	if m.createErr != nil {
		return m.createErr
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	m.items[a.ID] = a
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Assessment, error) {
	a, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return a, nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.items, id)
	return nil
}

func (m *mockRepo) ListByPatientAccount(_ context.Context, account string, limit, offset int) ([]*Assessment, int, error) {
	var result []*Assessment
	for _, a := range m.items {
		if a.PatientAccount == account {
			result = append(result, a)
		}
	}
	return result, len(result), nil
}

func (m *mockRepo) Search(_ context.Context, filters map[string]string, limit, offset int) ([]*Assessment, int, error) {
	var result []*Assessment
	for _, a := range m.items {
		if state, ok := filters["state"]; ok && a.State != state {
			continue
		}
		result = append(result, a)
	}
	return result, len(result), nil
}

// -- Helpers --

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validInput() engine.RecoveryInput {
	return engine.RecoveryInput{
		State:           "CA",
		DateOfService:   date(2025, time.March, 10),
		EncounterType:   engine.EncounterInpatient,
		TotalCharges:    100000,
		InsuranceStatus: engine.InsuranceUninsured,
		MedicaidStatus:  engine.MedicaidNone,
		SSIStatus:       engine.SSINone,
		SSDIStatus:      engine.SSDINone,
		IncomeBracket:   engine.IncomeAbove200FPL,
		HouseholdSize:   1,
		FacilityType:    engine.FacilityStandard,
	}
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo, nil)
	svc.now = func() time.Time { return date(2025, time.June, 1) }
	return svc
}

// -- Tests --

func TestService_Evaluate_ValidationErrors(t *testing.T) {
	svc := newTestService(newMockRepo())

	tests := []struct {
		name   string
		mutate func(*engine.RecoveryInput)
	}{
		{"missing state", func(in *engine.RecoveryInput) { in.State = "" }},
		{"long state", func(in *engine.RecoveryInput) { in.State = "California" }},
		{"missing date of service", func(in *engine.RecoveryInput) { in.DateOfService = time.Time{} }},
		{"missing encounter type", func(in *engine.RecoveryInput) { in.EncounterType = "" }},
		{"invalid encounter type", func(in *engine.RecoveryInput) { in.EncounterType = "telehealth" }},
		{"negative charges", func(in *engine.RecoveryInput) { in.TotalCharges = -100 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			if _, err := svc.Evaluate(in); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestService_Evaluate_Success(t *testing.T) {
	svc := newTestService(newMockRepo())

	in := validInput()
	in.MedicaidStatus = engine.MedicaidActive

	res, err := svc.Evaluate(in)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if res.Medicaid == nil {
		t.Fatal("expected medicaid result")
	}
	if res.Medicaid.Status != engine.StatusConfirmed {
		t.Errorf("medicaid status: got %q, want confirmed", res.Medicaid.Status)
	}
	if res.EstimatedTotalRecovery <= 0 {
		t.Errorf("expected positive estimated recovery, got %f", res.EstimatedTotalRecovery)
	}
}

func TestService_CreateAssessment(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	in := validInput()
	in.MedicaidStatus = engine.MedicaidActive

	a, err := svc.CreateAssessment(context.Background(), "ACCT-1001", in, "user-42")
	if err != nil {
		t.Fatalf("CreateAssessment() error: %v", err)
	}

	if a.ID == uuid.Nil {
		t.Error("expected assigned ID")
	}
	if a.State != "CA" {
		t.Errorf("state: got %q, want CA", a.State)
	}
	if a.PrimaryPath == nil || *a.PrimaryPath == "" {
		t.Error("expected primary path to be set")
	}
	if a.CreatedBy == nil || *a.CreatedBy != "user-42" {
		t.Error("expected created_by user-42")
	}
	if a.Input.AsOf.IsZero() {
		t.Error("expected as_of to be pinned before persistence")
	}
	if a.OverallConfidence != a.Result.OverallConfidence {
		t.Error("denormalized confidence should match result")
	}
	if _, ok := repo.items[a.ID]; !ok {
		t.Error("expected assessment to be persisted")
	}
}

func TestService_CreateAssessment_MissingAccount(t *testing.T) {
	svc := newTestService(newMockRepo())

	_, err := svc.CreateAssessment(context.Background(), "", validInput(), "")
	if err == nil {
		t.Error("expected error for missing patient account")
	}
}

func TestService_CreateAssessment_RepoError(t *testing.T) {
	repo := newMockRepo()
	repo.createErr = fmt.Errorf("connection refused")
	svc := newTestService(repo)

	_, err := svc.CreateAssessment(context.Background(), "ACCT-1001", validInput(), "")
	if err == nil {
		t.Error("expected repository error to propagate")
	}
}

func TestService_GetAndDeleteAssessment(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	a, err := svc.CreateAssessment(context.Background(), "ACCT-2002", validInput(), "")
	if err != nil {
		t.Fatalf("CreateAssessment() error: %v", err)
	}

	got, err := svc.GetAssessment(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("GetAssessment() error: %v", err)
	}
	if got.PatientAccount != "ACCT-2002" {
		t.Errorf("patient account: got %q, want ACCT-2002", got.PatientAccount)
	}

	if err := svc.DeleteAssessment(context.Background(), a.ID); err != nil {
		t.Fatalf("DeleteAssessment() error: %v", err)
	}
	if _, err := svc.GetAssessment(context.Background(), a.ID); err == nil {
		t.Error("expected not-found after delete")
	}
}

func TestService_ListAssessmentsByPatient(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateAssessment(context.Background(), "ACCT-3003", validInput(), ""); err != nil {
			t.Fatalf("CreateAssessment() error: %v", err)
		}
	}
	if _, err := svc.CreateAssessment(context.Background(), "ACCT-other", validInput(), ""); err != nil {
		t.Fatalf("CreateAssessment() error: %v", err)
	}

	items, total, err := svc.ListAssessmentsByPatient(context.Background(), "ACCT-3003", 20, 0)
	if err != nil {
		t.Fatalf("ListAssessmentsByPatient() error: %v", err)
	}
	if total != 3 || len(items) != 3 {
		t.Errorf("expected 3 assessments, got total=%d len=%d", total, len(items))
	}
}

func TestService_CalculateMAGI(t *testing.T) {
	svc := newTestService(newMockRepo())

	res, err := svc.CalculateMAGI(engine.MAGIInput{
		GrossAnnualIncome: 24000,
		HouseholdSize:     2,
		State:             "CA",
	})
	if err != nil {
		t.Fatalf("CalculateMAGI() error: %v", err)
	}
	if res.MAGI != 24000 {
		t.Errorf("magi: got %f, want 24000", res.MAGI)
	}

	if _, err := svc.CalculateMAGI(engine.MAGIInput{GrossAnnualIncome: 24000, HouseholdSize: 2}); err == nil {
		t.Error("expected error for missing state")
	}
}

func TestService_EvaluatePresumptive_RequiresHPE(t *testing.T) {
	svc := newTestService(newMockRepo())

	if _, err := svc.EvaluatePresumptive(validInput()); err == nil {
		t.Error("expected error without hpe details")
	}
}

func TestService_EvaluateRetroactive_RequiresApplicationDate(t *testing.T) {
	svc := newTestService(newMockRepo())

	if _, err := svc.EvaluateRetroactive(validInput()); err == nil {
		t.Error("expected error without medicaid application date")
	}
}

func TestService_EvaluateDualEligible_RequiresEnrollment(t *testing.T) {
	svc := newTestService(newMockRepo())

	if _, err := svc.EvaluateDualEligible(validInput()); err == nil {
		t.Error("expected error without medicare enrollment")
	}
}

func TestService_EvaluateDenial_RequiresDenial(t *testing.T) {
	svc := newTestService(newMockRepo())

	if _, err := svc.EvaluateDenial(validInput()); err == nil {
		t.Error("expected error without denial details")
	}
}

func TestService_EvaluateDSHAudit(t *testing.T) {
	svc := newTestService(newMockRepo())

	res, err := svc.EvaluateDSHAudit(engine.DSHAuditInput{
		TotalPatientDays:  10000,
		MedicarePartADays: 4000,
		MedicareSSIDays:   800,
		MedicaidDays:      2500,
	}, 0)
	if err != nil {
		t.Fatalf("EvaluateDSHAudit() error: %v", err)
	}
	if res.DPP <= 0 {
		t.Errorf("expected positive DPP, got %f", res.DPP)
	}

	if _, err := svc.EvaluateDSHAudit(engine.DSHAuditInput{}, 2025); err == nil {
		t.Error("expected error for zero patient days")
	}
}
