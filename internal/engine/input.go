package engine

import "time"

// Encounter types.
type EncounterType string

const (
	EncounterInpatient   EncounterType = "inpatient"
	EncounterOutpatient  EncounterType = "outpatient"
	EncounterEmergency   EncounterType = "emergency"
	EncounterObservation EncounterType = "observation"
)

// Insurance status on the date of service.
type InsuranceStatus string

const (
	InsuranceUninsured    InsuranceStatus = "uninsured"
	InsuranceUnderinsured InsuranceStatus = "underinsured"
	InsuranceInsured      InsuranceStatus = "insured"
	InsuranceUnknown      InsuranceStatus = "unknown"
)

// Medicaid enrollment status on the date of service.
type MedicaidStatus string

const (
	MedicaidActive             MedicaidStatus = "active"
	MedicaidPending            MedicaidStatus = "pending"
	MedicaidRecentlyTerminated MedicaidStatus = "recently_terminated"
	MedicaidNone               MedicaidStatus = "none"
	MedicaidUnknown            MedicaidStatus = "unknown"
)

// SSI benefit status.
type SSIStatus string

const (
	SSIReceiving SSIStatus = "receiving"
	SSIPending   SSIStatus = "pending"
	SSILikely    SSIStatus = "likely"
	SSINone      SSIStatus = "none"
	SSIUnknown   SSIStatus = "unknown"
)

// SSDI benefit status.
type SSDIStatus string

const (
	SSDIReceiving SSDIStatus = "receiving"
	SSDIPending   SSDIStatus = "pending"
	SSDILikely    SSDIStatus = "likely"
	SSDINone      SSDIStatus = "none"
	SSDIUnknown   SSDIStatus = "unknown"
)

// Household income bracket relative to the Federal Poverty Level.
type IncomeBracket string

const (
	IncomeBelow100FPL IncomeBracket = "below_100_fpl"
	Income100To138FPL IncomeBracket = "fpl_100_138"
	Income139To200FPL IncomeBracket = "fpl_139_200"
	IncomeAbove200FPL IncomeBracket = "above_200_fpl"
	IncomeUnknown     IncomeBracket = "unknown"
)

// Household asset bracket.
type AssetBracket string

const (
	AssetsMinimal     AssetBracket = "minimal"
	AssetsModest      AssetBracket = "modest"
	AssetsSubstantial AssetBracket = "substantial"
	AssetsUnknown     AssetBracket = "unknown"
)

// Likelihood that the patient meets the SSA disability standard.
type DisabilityLikelihood string

const (
	DisabilityHigh    DisabilityLikelihood = "high"
	DisabilityMedium  DisabilityLikelihood = "medium"
	DisabilityLow     DisabilityLikelihood = "low"
	DisabilityNone    DisabilityLikelihood = "none"
	DisabilityUnknown DisabilityLikelihood = "unknown"
)

// Facility type of the billing hospital.
type FacilityType string

const (
	FacilityDSHDesignated  FacilityType = "dsh_designated"
	FacilitySafetyNet      FacilityType = "safety_net"
	FacilityPublic         FacilityType = "public"
	FacilityStandard       FacilityType = "standard"
	FacilityCriticalAccess FacilityType = "critical_access"
)

// IncomeExclusions itemizes statutorily excluded income for the MAGI
// calculation. All amounts are annual dollars.
type IncomeExclusions struct {
	ChildSupportReceived float64 `json:"child_support_received"`
	SSIBenefits          float64 `json:"ssi_benefits"`
	WorkersCompensation  float64 `json:"workers_compensation"`
	VeteransBenefits     float64 `json:"veterans_benefits"`
	OtherExemptIncome    float64 `json:"other_exempt_income"`
}

// Total sums the itemized exclusions.
func (e IncomeExclusions) Total() float64 {
	return e.ChildSupportReceived + e.SSIBenefits + e.WorkersCompensation +
		e.VeteransBenefits + e.OtherExemptIncome
}

// MedicareEnrollment holds Part-level enrollment and plan flags.
type MedicareEnrollment struct {
	PartA             bool `json:"part_a"`
	PartB             bool `json:"part_b"`
	PartD             bool `json:"part_d"`
	MedicareAdvantage bool `json:"medicare_advantage"`
	DSNP              bool `json:"dsnp"`
	PACE              bool `json:"pace"`
}

// HPEInput carries the optional presumptive-eligibility extension fields.
type HPEInput struct {
	HospitalQualified  bool   `json:"hospital_qualified"`
	ApplicantCategory  string `json:"applicant_category"`
	AttestedIncomePct  float64 `json:"attested_income_pct"` // attested income as % FPL
	PriorHPEWithinYear bool   `json:"prior_hpe_within_year"`
}

// FAPDiscountTier is one row of a hospital Financial Assistance Policy
// sliding scale: incomes in (MinFPLPct, MaxFPLPct] receive DiscountPct.
type FAPDiscountTier struct {
	MinFPLPct   float64 `json:"min_fpl_pct"`
	MaxFPLPct   float64 `json:"max_fpl_pct"`
	DiscountPct float64 `json:"discount_pct"`
}

// FAPPolicy describes the hospital's 501(r) Financial Assistance Policy.
type FAPPolicy struct {
	FreeCareThresholdPct       float64           `json:"free_care_threshold_pct"`
	DiscountedCareThresholdPct float64           `json:"discounted_care_threshold_pct"`
	DiscountTiers              []FAPDiscountTier `json:"discount_tiers,omitempty"`
}

// NotificationHistory records the 501(r) notices sent on the account.
type NotificationHistory struct {
	PlainLanguageSummarySent bool       `json:"plain_language_summary_sent"`
	FAPApplicationProvided   bool       `json:"fap_application_provided"`
	Notice120DaySentAt       *time.Time `json:"notice_120_day_sent_at,omitempty"`
	WrittenNotice30DaySentAt *time.Time `json:"written_notice_30_day_sent_at,omitempty"`
}

// DenialInput carries the optional claim-denial extension fields.
type DenialInput struct {
	Code                string     `json:"code"`
	Payer               string     `json:"payer"` // medicare, medicaid, commercial
	DenialDate          *time.Time `json:"denial_date,omitempty"`
	StrongDocumentation bool       `json:"strong_documentation"`
	PriorAppealDenied   bool       `json:"prior_appeal_denied"`
}

// DSHAuditInput carries the cost-report figures for the DSH audit evaluator.
type DSHAuditInput struct {
	TotalPatientDays       int     `json:"total_patient_days"`
	MedicarePartADays      int     `json:"medicare_part_a_days"`
	MedicareSSIDays        int     `json:"medicare_ssi_days"`
	MedicaidDays           int     `json:"medicaid_days"`
	DualEligibleDays       int     `json:"dual_eligible_days"`
	UncompensatedCareCost  float64 `json:"uncompensated_care_cost"`
	DSHPaymentsReceived    float64 `json:"dsh_payments_received"`
	ReportedDPP            float64 `json:"reported_dpp"` // DPP from the filed cost report, 0 if not reported
	CostReportFiscalYear   int     `json:"cost_report_fiscal_year"`
}

// RecoveryInput is one billing encounter's facts. The first block is always
// required; pointer fields are optional extensions that activate additional
// evaluators in the orchestrator.
type RecoveryInput struct {
	State                string               `json:"state"`
	DateOfService        time.Time            `json:"date_of_service"`
	EncounterType        EncounterType        `json:"encounter_type"`
	LengthOfStayDays     int                  `json:"length_of_stay_days"`
	TotalCharges         float64              `json:"total_charges"`
	InsuranceStatus      InsuranceStatus      `json:"insurance_status"`
	MedicaidStatus       MedicaidStatus       `json:"medicaid_status"`
	SSIStatus            SSIStatus            `json:"ssi_status"`
	SSDIStatus           SSDIStatus           `json:"ssdi_status"`
	IncomeBracket        IncomeBracket        `json:"income_bracket"`
	HouseholdSize        int                  `json:"household_size"`
	AssetBracket         AssetBracket         `json:"asset_bracket"`
	DisabilityLikelihood DisabilityLikelihood `json:"disability_likelihood"`
	FacilityType         FacilityType         `json:"facility_type"`
	EmergencyService     bool                 `json:"emergency_service"`
	MedicallyNecessary   bool                 `json:"medically_necessary"`

	// Optional extensions.
	DateOfBirth             *time.Time           `json:"date_of_birth,omitempty"`
	GrossMonthlyIncome      *float64             `json:"gross_monthly_income,omitempty"`
	IncomeExclusions        *IncomeExclusions    `json:"income_exclusions,omitempty"`
	ApplicantCategory       string               `json:"applicant_category,omitempty"`
	MedicaidApplicationDate *time.Time           `json:"medicaid_application_date,omitempty"`
	HPE                     *HPEInput            `json:"hpe,omitempty"`
	FAPPolicy               *FAPPolicy           `json:"fap_policy,omitempty"`
	Notifications           *NotificationHistory `json:"notifications,omitempty"`
	AccountOpenedDate       *time.Time           `json:"account_opened_date,omitempty"`
	MedicareEnrollment      *MedicareEnrollment  `json:"medicare_enrollment,omitempty"`
	ScopeOfBenefits         string               `json:"scope_of_benefits,omitempty"`
	Denial                  *DenialInput         `json:"denial,omitempty"`
	DSHAudit                *DSHAuditInput       `json:"dsh_audit,omitempty"`

	// AsOf pins "now" for date comparisons so evaluation is deterministic.
	// The hosting layer defaults it to the current time when zero.
	AsOf time.Time `json:"as_of,omitempty"`
}

// normalized returns a copy with the input invariants enforced: charges
// never negative, household size at least 1. Coercions are reported as notes.
func (in RecoveryInput) normalized() (RecoveryInput, []string) {
	var notes []string
	if in.TotalCharges < 0 {
		notes = append(notes, "total charges were negative; treated as 0")
		in.TotalCharges = 0
	}
	if in.HouseholdSize < 1 {
		notes = append(notes, "household size was below 1; treated as 1")
		in.HouseholdSize = 1
	}
	return in, notes
}
