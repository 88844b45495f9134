package refdata

// Denial categories derived from claim adjustment reason codes.
const (
	DenialCategoryEligibility      = "eligibility"
	DenialCategoryAuthorization    = "authorization"
	DenialCategoryMedicalNecessity = "medical_necessity"
	DenialCategoryCoding           = "coding"
	DenialCategoryTimelyFiling     = "timely_filing"
	DenialCategoryBundling         = "bundling"
	DenialCategoryCoordination     = "coordination_of_benefits"
	DenialCategoryNonCovered       = "non_covered_service"
	DenialCategoryDuplicate        = "duplicate"
	DenialCategoryUnknown          = "unknown"
)

// DenialCode maps a CARC to its appeal characteristics.
type DenialCode struct {
	Code         string
	Category     string
	Description  string
	Appealable   bool
	BaseRecovery int // base appeal recovery rate, percent
}

// DenialCodeTable resolves claim adjustment reason codes.
type DenialCodeTable struct {
	byCode  map[string]DenialCode
	unknown DenialCode
}

var denialCodeTable = DenialCodeTable{
	unknown: DenialCode{
		Category:     DenialCategoryUnknown,
		Description:  "Unrecognized claim adjustment reason code",
		Appealable:   true,
		BaseRecovery: 25,
	},
	byCode: map[string]DenialCode{
		"16":  {Code: "16", Category: DenialCategoryCoding, Description: "Claim lacks information or has submission errors", Appealable: true, BaseRecovery: 65},
		"18":  {Code: "18", Category: DenialCategoryDuplicate, Description: "Exact duplicate claim or service", Appealable: false, BaseRecovery: 10},
		"22":  {Code: "22", Category: DenialCategoryCoordination, Description: "Care may be covered by another payer per coordination of benefits", Appealable: true, BaseRecovery: 55},
		"26":  {Code: "26", Category: DenialCategoryEligibility, Description: "Expenses incurred prior to coverage", Appealable: true, BaseRecovery: 40},
		"27":  {Code: "27", Category: DenialCategoryEligibility, Description: "Expenses incurred after coverage terminated", Appealable: true, BaseRecovery: 45},
		"29":  {Code: "29", Category: DenialCategoryTimelyFiling, Description: "The time limit for filing has expired", Appealable: true, BaseRecovery: 20},
		"45":  {Code: "45", Category: DenialCategoryCoding, Description: "Charge exceeds fee schedule or contracted rate", Appealable: false, BaseRecovery: 5},
		"50":  {Code: "50", Category: DenialCategoryMedicalNecessity, Description: "Non-covered services deemed not medically necessary", Appealable: true, BaseRecovery: 50},
		"96":  {Code: "96", Category: DenialCategoryNonCovered, Description: "Non-covered charge(s)", Appealable: true, BaseRecovery: 30},
		"97":  {Code: "97", Category: DenialCategoryBundling, Description: "Payment included in allowance for another service", Appealable: true, BaseRecovery: 35},
		"109": {Code: "109", Category: DenialCategoryEligibility, Description: "Claim not covered by this payer/contractor", Appealable: true, BaseRecovery: 50},
		"197": {Code: "197", Category: DenialCategoryAuthorization, Description: "Precertification/authorization absent", Appealable: true, BaseRecovery: 55},
		"198": {Code: "198", Category: DenialCategoryAuthorization, Description: "Precertification/authorization exceeded", Appealable: true, BaseRecovery: 45},
		"204": {Code: "204", Category: DenialCategoryNonCovered, Description: "Service not covered under the patient's current benefit plan", Appealable: true, BaseRecovery: 25},
	},
}

// Lookup resolves a CARC; unrecognized codes return a generic appealable
// entry with the submitted code attached.
func (t DenialCodeTable) Lookup(code string) DenialCode {
	if d, ok := t.byCode[code]; ok {
		return d
	}
	d := t.unknown
	d.Code = code
	return d
}

// AppealWindowTable resolves payer-specific appeal filing deadlines in days.
type AppealWindowTable struct {
	byPayer     map[string]int
	defaultDays int
}

var appealWindowTable = AppealWindowTable{
	defaultDays: 90,
	byPayer: map[string]int{
		"medicare":   120,
		"medicaid":   60,
		"commercial": 180,
	},
}

// DeadlineDays returns the appeal filing window for the payer type.
func (t AppealWindowTable) DeadlineDays(payer string) int {
	if d, ok := t.byPayer[payer]; ok {
		return d
	}
	return t.defaultDays
}
