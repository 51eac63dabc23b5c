package views

import (
	"mado-service/internal/pkg/constvars"
	"mado-service/internal/pkg/dto/responses"
	"strings"
)

// PreviewModal is the view model of the draft preview dialog. It holds no
// state of its own; the page decides when it is shown.
type PreviewModal struct {
	DraftID     string
	PreviewURL  string
	Unavailable string
	Sent        bool
}

// NewPreviewModal resolves the preview URL for draft. The backend's preview_url
// wins; otherwise the storage key is joined to previewBaseURL. Returns nil for a nil draft.
func NewPreviewModal(draft *responses.Draft, previewBaseURL string) *PreviewModal {
	if draft == nil {
		return nil
	}

	modal := &PreviewModal{
		DraftID:    draft.DraftID,
		PreviewURL: ResolvePreviewURL(draft, previewBaseURL),
		Sent:       draft.Sent,
	}
	if modal.PreviewURL == "" {
		modal.Unavailable = constvars.MadoPreviewNotAvailable
	}
	return modal
}

func ResolvePreviewURL(draft *responses.Draft, previewBaseURL string) string {
	if draft.PreviewURL != "" {
		return draft.PreviewURL
	}
	if draft.Metadata.S3Key == "" || previewBaseURL == "" {
		return ""
	}
	return strings.TrimRight(previewBaseURL, "/") + "/" + strings.TrimLeft(draft.Metadata.S3Key, "/")
}

func (m *PreviewModal) HasPreview() bool {
	return m.PreviewURL != ""
}

func (m *PreviewModal) FrameTitle() string {
	return constvars.MadoPreviewFrameTitle
}
