package requests

type MadoPatient struct {
	Name     string `json:"name"`
	DOB      string `json:"dob"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	PHN      string `json:"phn"`
	RegionID string `json:"region_id,omitempty"`
}

type MadoExtracted struct {
	DiseaseName   string `json:"disease_name"`
	ClinicianName string `json:"clinician_name"`
	ClinicianID   string `json:"clinician_id"`
}

type GenerateMado struct {
	EncounterID string         `json:"encounter_id" validate:"required"`
	Patient     *MadoPatient   `json:"patient" validate:"required"`
	Extracted   *MadoExtracted `json:"extracted" validate:"required"`
	RegionID    string         `json:"region_id,omitempty"`
}

type SendMado struct {
	DraftID   string `json:"draft_id" validate:"required"`
	ApproveBy string `json:"approve_by" validate:"required"`
	Transport string `json:"transport" validate:"required,oneof=fax manual"`
}

// MadoDraftForm holds the operator-editable fields of the drafts page.
type MadoDraftForm struct {
	PatientName string
	DOB         string
	PHN         string
	Address     string
	Phone       string
	Disease     string
	RegionID    string
}

type SendFax struct {
	FaxNumber string
	Document  []byte
	FileName  string
	CoverText string
}

type MadoEvent struct {
	EventType     string `json:"event_type"`
	DraftID       string `json:"draft_id"`
	Transport     string `json:"transport"`
	Status        string `json:"status"`
	ProviderJobID string `json:"provider_job_id,omitempty"`
	ApprovedBy    string `json:"approved_by,omitempty"`
	OccurredAt    string `json:"occurred_at"`
}

// MadoDocument carries the canonical MADO form fields rendered into the draft PDF.
type MadoDocument struct {
	DraftID               string
	RegionID              string
	PatientName           string
	DateOfBirth           string
	Address               string
	Phone                 string
	HealthInsuranceNumber string
	ClinicianDeclarant    string
	DiseaseName           string
	DeclarationDate       string
}
