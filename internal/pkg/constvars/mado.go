package constvars

const (
	MadoTransportFax    = "fax"
	MadoTransportManual = "manual"
)

const (
	MadoStatusDraft       = "draft"
	MadoStatusManualReady = "manual_ready"
	MadoStatusSent        = "sent"
	MadoStatusSendFailed  = "send_failed"
)

const (
	MadoGeneratePath = "/mado/generate"
	MadoSendPath     = "/mado/send"
	MadoObjectsPath  = "/mado/objects"
)

const (
	MadoDraftKeyFormat    = "mado/drafts/%s.pdf"
	MadoMetadataKeyFormat = "mado/metadata/%s.json"
	MadoDraftKeyPrefix    = "mado/drafts/"
	MadoSendLockKeyFormat = "mado:send-lock:%s"
)

const (
	MadoDefaultRegionID      = "06"
	MadoDefaultCreatedBy     = "system"
	MadoEncounterIDPrefix    = "enc-"
	MadoDemoApproverID       = "dr-demo"
	MadoDemoClinicianName    = "Dr Demo"
	MadoDemoClinicianID      = "dr-demo"
	MadoFaxCoverTextFormat   = "MADO report: %s"
	MadoPreviewFrameTitle    = "MADO preview"
	MadoPreviewNotAvailable  = "Preview not available. Generate the draft again, or set MADO_PREVIEW_BASE_URL so the backend can serve stored drafts."
	MadoGenerateFallbackText = "generate failed"
	MadoSendFallbackText     = "send failed"
	MadoMissingDraftIDText   = "generate failed: backend returned no draft_id"
)

const (
	MadoNoticeGenerationFailedFormat = "Generation failed: %s"
	MadoNoticeSendFailedFormat       = "Send failed: %s"
	MadoNoticeSendResultFormat       = "Send result: %s"
)

const (
	MadoEventDraftSent        = "mado.draft.sent"
	MadoEventDraftManualReady = "mado.draft.manual_ready"
	MadoEventDraftSendFailed  = "mado.draft.send_failed"
)
