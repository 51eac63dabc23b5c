package responses

import "time"

type DraftMetadata struct {
	ID            string     `json:"id,omitempty"`
	EncounterID   string     `json:"encounter_id,omitempty"`
	PatientHash   string     `json:"patient_hash,omitempty"`
	Disease       string     `json:"disease,omitempty"`
	RegionID      string     `json:"region_id,omitempty"`
	RecipientFax  string     `json:"recipient_fax,omitempty"`
	Transport     string     `json:"transport,omitempty"`
	Status        string     `json:"status,omitempty"`
	S3Key         string     `json:"s3_key,omitempty"`
	CreatedBy     string     `json:"created_by,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	SentAt        *time.Time `json:"sent_at,omitempty"`
	SentBy        string     `json:"sent_by,omitempty"`
	ProviderJobID string     `json:"provider_job_id,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

type Draft struct {
	DraftID       string        `json:"draft_id"`
	PreviewURL    string        `json:"preview_url,omitempty"`
	Metadata      DraftMetadata `json:"metadata"`
	Sent          bool          `json:"sent"`
	ProviderJobID string        `json:"provider_job_id,omitempty"`
}

type SendResult struct {
	DraftID       string `json:"draft_id,omitempty"`
	Sent          bool   `json:"sent"`
	ProviderJobID string `json:"provider_job_id,omitempty"`
	Transport     string `json:"transport,omitempty"`
	DownloadURL   string `json:"download_url,omitempty"`
}

type MadoRecipient struct {
	RegionID string `json:"region_id"`
	Name     string `json:"name,omitempty"`
	FaxMado  string `json:"fax_mado"`
}

type FaxJob struct {
	JobID string
}
