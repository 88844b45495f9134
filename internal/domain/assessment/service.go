package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/halcyonrcm/recovery/internal/engine"
)

// Service wraps the decision engine with input validation and persistence.
type Service struct {
	repo Repository
	eng  *engine.Engine
	now  func() time.Time
}

func NewService(repo Repository, eng *engine.Engine) *Service {
	if eng == nil {
		eng = engine.New(nil)
	}
	return &Service{repo: repo, eng: eng, now: time.Now}
}

var validEncounterTypes = map[engine.EncounterType]bool{
	engine.EncounterInpatient:   true,
	engine.EncounterOutpatient:  true,
	engine.EncounterEmergency:   true,
	engine.EncounterObservation: true,
}

// validateInput checks the request contract and pins AsOf so the evaluation
// is deterministic from here down.
func (s *Service) validateInput(in *engine.RecoveryInput) error {
	if in.State == "" {
		return fmt.Errorf("state is required")
	}
	if len(in.State) != 2 {
		return fmt.Errorf("state must be a two-letter code: %s", in.State)
	}
	if in.DateOfService.IsZero() {
		return fmt.Errorf("date_of_service is required")
	}
	if in.EncounterType == "" {
		return fmt.Errorf("encounter_type is required")
	}
	if !validEncounterTypes[in.EncounterType] {
		return fmt.Errorf("invalid encounter_type: %s", in.EncounterType)
	}
	if in.TotalCharges < 0 {
		return fmt.Errorf("total_charges must not be negative")
	}
	if in.AsOf.IsZero() {
		in.AsOf = s.now()
	}
	return nil
}

// Evaluate runs the full orchestrator without persisting anything.
func (s *Service) Evaluate(in engine.RecoveryInput) (engine.RecoveryResult, error) {
	if err := s.validateInput(&in); err != nil {
		return engine.RecoveryResult{}, err
	}
	return s.eng.Evaluate(in), nil
}

// CreateAssessment evaluates the input and stores the outcome.
func (s *Service) CreateAssessment(ctx context.Context, patientAccount string, in engine.RecoveryInput, createdBy string) (*Assessment, error) {
	if patientAccount == "" {
		return nil, fmt.Errorf("patient_account is required")
	}
	res, err := s.Evaluate(in)
	if err != nil {
		return nil, err
	}

	a := &Assessment{
		PatientAccount:         patientAccount,
		State:                  in.State,
		Input:                  in,
		Result:                 res,
		OverallConfidence:      res.OverallConfidence,
		EstimatedTotalRecovery: res.EstimatedTotalRecovery,
	}
	if res.PrimaryRecoveryPath != "" {
		p := res.PrimaryRecoveryPath
		a.PrimaryPath = &p
	}
	if createdBy != "" {
		cb := createdBy
		a.CreatedBy = &cb
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) GetAssessment(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) DeleteAssessment(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAssessmentsByPatient(ctx context.Context, account string, limit, offset int) ([]*Assessment, int, error) {
	return s.repo.ListByPatientAccount(ctx, account, limit, offset)
}

func (s *Service) SearchAssessments(ctx context.Context, filters map[string]string, limit, offset int) ([]*Assessment, int, error) {
	return s.repo.Search(ctx, filters, limit, offset)
}

// -- Single-evaluator passthroughs --

func (s *Service) EvaluateMedicaid(in engine.RecoveryInput) (engine.MedicaidResult, error) {
	if err := s.validateInput(&in); err != nil {
		return engine.MedicaidResult{}, err
	}
	return s.eng.EvaluateMedicaid(in), nil
}

func (s *Service) CalculateMAGI(in engine.MAGIInput) (engine.MAGIResult, error) {
	if in.State == "" {
		return engine.MAGIResult{}, fmt.Errorf("state is required")
	}
	return s.eng.CalculateMAGI(in), nil
}

func (s *Service) EvaluatePresumptive(in engine.RecoveryInput) (engine.PresumptiveResult, error) {
	if err := s.validateInput(&in); err != nil {
		return engine.PresumptiveResult{}, err
	}
	return s.eng.EvaluatePresumptive(in)
}

func (s *Service) EvaluateRetroactive(in engine.RecoveryInput) (engine.RetroactiveResult, error) {
	if err := s.validateInput(&in); err != nil {
		return engine.RetroactiveResult{}, err
	}
	return s.eng.EvaluateRetroactiveCoverage(in)
}

func (s *Service) EvaluateCharityCare(in engine.RecoveryInput) (engine.CharityCareResult, error) {
	if err := s.validateInput(&in); err != nil {
		return engine.CharityCareResult{}, err
	}
	return s.eng.EvaluateCharityCare(in)
}

func (s *Service) EvaluateDenial(in engine.RecoveryInput) (engine.DenialResult, error) {
	if err := s.validateInput(&in); err != nil {
		return engine.DenialResult{}, err
	}
	return s.eng.EvaluateDenial(in)
}

func (s *Service) EvaluateDualEligible(in engine.RecoveryInput) (engine.DualEligibleResult, error) {
	if err := s.validateInput(&in); err != nil {
		return engine.DualEligibleResult{}, err
	}
	return s.eng.EvaluateDualEligible(in)
}

func (s *Service) EvaluateDSHAudit(in engine.DSHAuditInput, fiscalYear int) (engine.DSHAuditResult, error) {
	if in.TotalPatientDays <= 0 {
		return engine.DSHAuditResult{}, fmt.Errorf("total_patient_days must be positive")
	}
	if fiscalYear == 0 {
		fiscalYear = s.now().Year()
	}
	return s.eng.EvaluateDSHAudit(in, fiscalYear), nil
}
