package constvars

const (
	// Generic messages
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Drafts-related messages
	GetDraftsSuccessMessage = "get drafts successfully"
	HealthyMessage          = "ok"
)
