package views

import (
	"embed"
	"html/template"
	"io"
	"mado-service/internal/pkg/constvars"
	"mado-service/internal/pkg/dto/requests"
	"mado-service/internal/pkg/dto/responses"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/drafts.html"))

// DraftRow is one entry of the rendered drafts list.
type DraftRow struct {
	DraftID       string
	Disease       string
	Sent          bool
	ProviderJobID string
}

// DraftsPageView is everything the drafts template renders.
type DraftsPageView struct {
	Form           requests.MadoDraftForm
	Drafts         []DraftRow
	Modal          *PreviewModal
	Loading        bool
	Notice         string
	TransportFax   string
	TransportPrint string
}

func NewDraftsPageView(form requests.MadoDraftForm, drafts []responses.Draft, selected *responses.Draft, loading bool, notice, previewBaseURL string) *DraftsPageView {
	rows := make([]DraftRow, 0, len(drafts))
	for _, draft := range drafts {
		rows = append(rows, DraftRow{
			DraftID:       draft.DraftID,
			Disease:       draft.Metadata.Disease,
			Sent:          draft.Sent,
			ProviderJobID: draft.ProviderJobID,
		})
	}

	return &DraftsPageView{
		Form:           form,
		Drafts:         rows,
		Modal:          NewPreviewModal(selected, previewBaseURL),
		Loading:        loading,
		Notice:         notice,
		TransportFax:   constvars.MadoTransportFax,
		TransportPrint: constvars.MadoTransportManual,
	}
}

func RenderDraftsPage(w io.Writer, view *DraftsPageView) error {
	return pageTemplate.Execute(w, view)
}
