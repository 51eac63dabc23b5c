package drafts

import (
	"context"
	"fmt"
	"mado-service/internal/app/contracts"
	"mado-service/internal/pkg/constvars"
	"mado-service/internal/pkg/dto/requests"
	"mado-service/internal/pkg/dto/responses"
	"mado-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// DefaultForm returns the demo values the page starts with.
func DefaultForm() requests.MadoDraftForm {
	return requests.MadoDraftForm{
		PatientName: "Jean Dupont",
		DOB:         "1980-01-01",
		PHN:         "1234567890",
		Address:     "1 Rue Exemple",
		Phone:       "418-555-1212",
		Disease:     "Syphilis",
		RegionID:    constvars.MadoDefaultRegionID,
	}
}

// PageSnapshot is a copy of the page state for rendering.
type PageSnapshot struct {
	Form      requests.MadoDraftForm
	Drafts    []responses.Draft
	Selected  *responses.Draft
	ModalOpen bool
	Loading   bool
	Notice    string
}

// DraftsPage owns one operator's form, drafts list and modal state.
// Backend calls run without holding the lock, so several may be in flight.
// Each list position keeps its own copy of the draft it was generated with;
// byID indexes those copies so a send updates every entry for that id.
type DraftsPage struct {
	client     contracts.MadoClient
	approverID string
	log        *zap.Logger
	now        func() time.Time

	mu         sync.Mutex
	form       requests.MadoDraftForm
	order      []*responses.Draft
	byID       map[string][]*responses.Draft
	selectedID string
	modalOpen  bool
	loading    int
	notice     string
	lastSeen   time.Time
}

func NewDraftsPage(client contracts.MadoClient, approverID string, logger *zap.Logger) *DraftsPage {
	if approverID == "" {
		approverID = constvars.MadoDemoApproverID
	}
	return &DraftsPage{
		client:     client,
		approverID: approverID,
		log:        logger,
		now:        time.Now,
		form:       DefaultForm(),
		byID:       make(map[string][]*responses.Draft),
		lastSeen:   time.Now(),
	}
}

// Generate asks the backend for a new draft built from form. On success the
// draft is prepended to the list; on failure a notice is queued.
func (p *DraftsPage) Generate(ctx context.Context, form requests.MadoDraftForm) {
	requestID := utils.GetRequestID(ctx)

	p.mu.Lock()
	p.form = form
	p.loading++
	p.mu.Unlock()
	defer p.done()

	request := &requests.GenerateMado{
		EncounterID: utils.GenerateEncounterID(p.now()),
		Patient: &requests.MadoPatient{
			Name:     form.PatientName,
			DOB:      form.DOB,
			Address:  form.Address,
			Phone:    form.Phone,
			PHN:      form.PHN,
			RegionID: form.RegionID,
		},
		Extracted: &requests.MadoExtracted{
			DiseaseName:   form.Disease,
			ClinicianName: constvars.MadoDemoClinicianName,
			ClinicianID:   constvars.MadoDemoClinicianID,
		},
		RegionID: form.RegionID,
	}

	draft, err := p.client.GenerateMado(ctx, request)
	if err != nil {
		p.log.Error("DraftsPage.Generate error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		p.setNotice(fmt.Sprintf(constvars.MadoNoticeGenerationFailedFormat, err.Error()))
		return
	}

	entry := *draft

	p.mu.Lock()
	p.byID[entry.DraftID] = append(p.byID[entry.DraftID], &entry)
	p.order = append([]*responses.Draft{&entry}, p.order...)
	count := len(p.order)
	p.mu.Unlock()

	p.log.Info("DraftsPage.Generate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draft.DraftID),
		zap.Int(constvars.LoggingDraftCountKey, count),
	)
}

// Send submits the draft with the given transport. Only the matching entry's
// sent and provider job id change; a failed send changes nothing.
func (p *DraftsPage) Send(ctx context.Context, draftID, transport string) {
	requestID := utils.GetRequestID(ctx)

	p.mu.Lock()
	if len(p.byID[draftID]) == 0 {
		p.notice = fmt.Sprintf(constvars.MadoNoticeSendFailedFormat, fmt.Sprintf(constvars.ErrDevUnknownDraft, draftID))
		p.mu.Unlock()
		return
	}
	p.loading++
	p.mu.Unlock()
	defer p.done()

	result, err := p.client.SendMado(ctx, &requests.SendMado{
		DraftID:   draftID,
		ApproveBy: p.approverID,
		Transport: transport,
	})
	if err != nil {
		p.log.Error("DraftsPage.Send error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draftID),
			zap.Error(err),
		)
		p.setNotice(fmt.Sprintf(constvars.MadoNoticeSendFailedFormat, err.Error()))
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		raw = []byte(err.Error())
	}

	p.mu.Lock()
	for _, entry := range p.byID[draftID] {
		entry.Sent = result.Sent
		entry.ProviderJobID = result.ProviderJobID
	}
	p.notice = fmt.Sprintf(constvars.MadoNoticeSendResultFormat, string(raw))
	p.mu.Unlock()

	p.log.Info("DraftsPage.Send succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
		zap.String(constvars.LoggingTransportKey, transport),
		zap.Bool(constvars.LoggingSuccessKey, result.Sent),
	)
}

// OpenPreview selects a listed draft and opens the modal. It reports whether
// the draft was found.
func (p *DraftsPage) OpenPreview(draftID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.byID[draftID]) == 0 {
		return false
	}
	p.selectedID = draftID
	p.modalOpen = true
	return true
}

func (p *DraftsPage) ClosePreview() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modalOpen = false
}

// Snapshot copies the current state and consumes the pending notice.
func (p *DraftsPage) Snapshot() PageSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snapshot := PageSnapshot{
		Form:      p.form,
		Drafts:    p.listLocked(),
		ModalOpen: p.modalOpen,
		Loading:   p.loading > 0,
		Notice:    p.notice,
	}
	if p.modalOpen {
		if entries := p.byID[p.selectedID]; len(entries) > 0 {
			selected := *entries[len(entries)-1]
			snapshot.Selected = &selected
		}
	}
	p.notice = ""
	return snapshot
}

// Drafts returns the list newest first without touching the notice.
func (p *DraftsPage) Drafts() []responses.Draft {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.listLocked()
}

func (p *DraftsPage) touch(now time.Time) {
	p.mu.Lock()
	p.lastSeen = now
	p.mu.Unlock()
}

func (p *DraftsPage) idleSince() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSeen
}

func (p *DraftsPage) listLocked() []responses.Draft {
	list := make([]responses.Draft, 0, len(p.order))
	for _, entry := range p.order {
		list = append(list, *entry)
	}
	return list
}

func (p *DraftsPage) setNotice(notice string) {
	p.mu.Lock()
	p.notice = notice
	p.mu.Unlock()
}

func (p *DraftsPage) done() {
	p.mu.Lock()
	p.loading--
	p.mu.Unlock()
}
