package engine

import "time"

// PathwayResult is the shape every evaluator shares: a status, a confidence
// in [0,100], a human-readable pathway label, ordered actions, and audit
// notes. Results are value objects created fresh per call.
type PathwayResult struct {
	Status     string   `json:"status"`
	Confidence int      `json:"confidence"`
	Pathway    string   `json:"pathway"`
	Actions    []string `json:"actions,omitempty"`
	Notes      []string `json:"notes,omitempty"`
}

// Medicaid evaluator statuses.
const (
	StatusConfirmed = "confirmed"
	StatusLikely    = "likely"
	StatusPossible  = "possible"
	StatusUnlikely  = "unlikely"
)

// MedicaidResult is the Medicaid recovery pathway outcome.
type MedicaidResult struct {
	PathwayResult
	EstimatedRecovery float64 `json:"estimated_recovery"`
	TimelineWeeks     string  `json:"timeline_weeks,omitempty"`
}

// Medicare evaluator statuses.
const (
	MedicareActiveOnDOS  = "active_on_dos"
	MedicareFutureLikely = "future_likely"
	MedicareNotActive    = "not_active_on_dos"
	MedicareUnlikely     = "unlikely"
)

// MedicareResult is the Medicare recovery pathway outcome.
type MedicareResult struct {
	PathwayResult
	EstimatedWaitMonths int `json:"estimated_wait_months,omitempty"`
}

// MedicareAgeResult reports age-based Medicare eligibility from DOB.
type MedicareAgeResult struct {
	PathwayResult
	AgeAtService        int `json:"age_at_service"`
	MonthsUntilEligible int `json:"months_until_eligible,omitempty"`
}

// MAGIResult is the income-eligibility computation outcome.
type MAGIResult struct {
	MAGI                  float64  `json:"magi"`
	FPLThreshold          float64  `json:"fpl_threshold"`
	FPLPercentage         float64  `json:"fpl_percentage"`
	EffectiveThresholdPct float64  `json:"effective_threshold_pct"`
	IsIncomeEligible      bool     `json:"is_income_eligible"`
	Confidence            int      `json:"confidence"`
	Notes                 []string `json:"notes,omitempty"`
}

// DSH relevance bands.
const (
	DSHRelevanceHigh   = "high"
	DSHRelevanceMedium = "medium"
	DSHRelevanceLow    = "low"
)

// DSH audit-readiness bands.
const (
	AuditReadinessStrong   = "strong"
	AuditReadinessModerate = "moderate"
	AuditReadinessWeak     = "weak"
)

// DSHRelevanceResult scores how much the encounter supports the hospital's
// DSH position.
type DSHRelevanceResult struct {
	Score          int      `json:"score"`
	Relevance      string   `json:"relevance"`
	AuditReadiness string   `json:"audit_readiness"`
	Notes          []string `json:"notes,omitempty"`
}

// StateProgramResult is the state indigent-care program outcome.
type StateProgramResult struct {
	PathwayResult
	ProgramName       string   `json:"program_name"`
	ProgramType       string   `json:"program_type"`
	RecoveryRate      float64  `json:"recovery_rate"`
	EstimatedRecovery float64  `json:"estimated_recovery"`
	RequiredDocuments []string `json:"required_documents,omitempty"`
}

// RetroactiveResult is the retroactive-coverage window outcome.
type RetroactiveResult struct {
	WindowDays        int       `json:"retroactive_window_days"`
	StateHasWaiver    bool      `json:"state_has_waiver"`
	CoverageStartDate time.Time `json:"coverage_start_date"`
	IsWithinWindow    bool      `json:"is_within_window"`
	EligibleOnDOS     bool      `json:"eligible_on_dos"`
	Confidence        int       `json:"confidence"`
	EstimatedRecovery float64   `json:"estimated_recovery"`
	Notes             []string  `json:"notes,omitempty"`
}

// FAP eligibility levels.
const (
	FAPFree        = "free"
	FAPDiscounted  = "discounted"
	FAPNotEligible = "not_eligible"
)

// Charity-care compliance statuses.
const (
	ComplianceCompliant    = "compliant"
	ComplianceAtRisk       = "at_risk"
	ComplianceNonCompliant = "non_compliant"
)

// FAPEligibility reports the Financial Assistance Policy determination.
type FAPEligibility struct {
	Level             string  `json:"level"`
	DiscountPct       float64 `json:"discount_pct"`
	EstimatedWriteOff float64 `json:"estimated_write_off"`
}

// ECAStatus reports whether Extraordinary Collection Actions are permitted.
type ECAStatus struct {
	Allowed             bool       `json:"allowed"`
	EarliestAllowedDate *time.Time `json:"earliest_allowed_date,omitempty"`
	BlockedActions      []string   `json:"blocked_actions,omitempty"`
	MissingNotices      []string   `json:"missing_notices,omitempty"`
}

// CharityCareResult is the 501(r) compliance and FAP outcome.
type CharityCareResult struct {
	FAP              FAPEligibility `json:"fap"`
	ECA              ECAStatus      `json:"eca_status"`
	ComplianceStatus string         `json:"compliance_status"`
	Notes            []string       `json:"notes,omitempty"`
}

// DSHAuditResult holds the disproportionate-patient-percentage computation
// and audit readiness assessment.
type DSHAuditResult struct {
	SSIRatio            float64  `json:"ssi_ratio"`
	MedicaidRatio       float64  `json:"medicaid_ratio"`
	DPP                 float64  `json:"dpp"`
	QualifiesForDSH     bool     `json:"qualifies_for_dsh"`
	PaymentLimit        float64  `json:"payment_limit"`
	ExcessPaymentRisk   float64  `json:"excess_payment_risk"`
	AuditReadinessScore int      `json:"audit_readiness_score"`
	DocumentationGaps   []string `json:"documentation_gaps,omitempty"`
}

// DenialResult is the denial-appeal analysis outcome.
type DenialResult struct {
	Code                string     `json:"code"`
	Category            string     `json:"category"`
	Description         string     `json:"description"`
	Appealable          bool       `json:"appealable"`
	BaseRecoveryRate    int        `json:"base_recovery_rate"`
	RecoveryProbability int        `json:"recovery_probability"`
	AppealDeadlineDays  int        `json:"appeal_deadline_days"`
	AppealDeadline      *time.Time `json:"appeal_deadline,omitempty"`
	DeadlinePassed      bool       `json:"deadline_passed"`
	Actions             []string   `json:"actions,omitempty"`
	Notes               []string   `json:"notes,omitempty"`
}

// Dual-eligible categories, in decreasing order of benefit scope.
const (
	DualFullDual    = "full_dual"
	DualQMB         = "qmb"
	DualSLMB        = "slmb"
	DualQI          = "qi"
	DualPartialDual = "partial_dual"
	DualNotDual     = "not_dual"
)

// DualEligibleResult classifies dual Medicare/Medicaid coverage and the
// resulting billing order.
type DualEligibleResult struct {
	Category                 string   `json:"category"`
	PrimaryPayer             string   `json:"primary_payer"`
	SecondaryPayer           string   `json:"secondary_payer,omitempty"`
	BillingInstructions      []string `json:"billing_instructions,omitempty"`
	BalanceBillingProhibited bool     `json:"balance_billing_prohibited"`
	Confidence               int      `json:"confidence"`
	Notes                    []string `json:"notes,omitempty"`
}

// Presumptive eligibility statuses.
const (
	PresumptiveGrantedLikely = "granted_likely"
	PresumptiveEligible      = "eligible"
	PresumptiveIneligible    = "ineligible"
	PresumptiveUnavailable   = "unavailable"
)

// Presumptive strength bands.
const (
	PresumptiveStrong   = "strong"
	PresumptiveModerate = "moderate"
	PresumptiveWeak     = "weak"
)

// PresumptiveResult is the Hospital Presumptive Eligibility outcome.
type PresumptiveResult struct {
	PathwayResult
	Available bool   `json:"available"`
	Strength  string `json:"strength"`
}

// ValidationResult is the structured outcome of an input-contract check.
// Callers must check Valid before acting on downstream fields.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// RunStatus discriminates how an evaluator ended inside the orchestrator.
type RunStatus string

const (
	RunOK      RunStatus = "ok"
	RunSkipped RunStatus = "skipped"
	RunFailed  RunStatus = "failed"
)

// EvaluatorRun records one evaluator's disposition for a single orchestrator
// invocation, so "why didn't this run" is inspectable.
type EvaluatorRun struct {
	Name   string    `json:"name"`
	Status RunStatus `json:"status"`
	Detail string    `json:"detail,omitempty"`
}

// ProjectedRecovery is the non-double-counted dollar breakdown. Total is
// always the sum of the three categories; a dollar appears in at most one.
type ProjectedRecovery struct {
	Medicaid        float64 `json:"medicaid"`
	StateProgram    float64 `json:"state_program"`
	CharityWriteOff float64 `json:"charity_write_off"`
	Total           float64 `json:"total"`
}

// RecoveryResult is the aggregate produced by one orchestrator invocation.
// It is constructed once and owned entirely by the caller.
type RecoveryResult struct {
	PrimaryRecoveryPath    string            `json:"primary_recovery_path"`
	OverallConfidence      int               `json:"overall_confidence"`
	EstimatedTotalRecovery float64           `json:"estimated_total_recovery"`
	Projected              ProjectedRecovery `json:"projected_recovery"`

	PriorityActions        []string `json:"priority_actions,omitempty"`
	ImmediateActions       []string `json:"immediate_actions,omitempty"`
	FollowUpActions        []string `json:"follow_up_actions,omitempty"`
	DocumentationChecklist []string `json:"documentation_checklist,omitempty"`

	Medicaid     *MedicaidResult     `json:"medicaid,omitempty"`
	Medicare     *MedicareResult     `json:"medicare,omitempty"`
	DSHRelevance *DSHRelevanceResult `json:"dsh_relevance,omitempty"`
	StateProgram *StateProgramResult `json:"state_program,omitempty"`
	MAGI         *MAGIResult         `json:"magi,omitempty"`
	MedicareAge  *MedicareAgeResult  `json:"medicare_age,omitempty"`
	Presumptive  *PresumptiveResult  `json:"presumptive,omitempty"`
	Retroactive  *RetroactiveResult  `json:"retroactive,omitempty"`
	CharityCare  *CharityCareResult  `json:"charity_care,omitempty"`
	Denial       *DenialResult       `json:"denial,omitempty"`
	DualEligible *DualEligibleResult `json:"dual_eligible,omitempty"`
	DSHAudit     *DSHAuditResult     `json:"dsh_audit,omitempty"`

	EvaluatorRuns []EvaluatorRun `json:"evaluator_runs,omitempty"`
	EngineErrors  []string       `json:"engine_errors,omitempty"`
	Notes         []string       `json:"notes,omitempty"`
}
