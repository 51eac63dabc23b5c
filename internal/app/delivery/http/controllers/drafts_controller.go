package controllers

import (
	"mado-service/internal/app/delivery/http/views"
	"mado-service/internal/app/services/core/drafts"
	"mado-service/internal/pkg/constvars"
	"mado-service/internal/pkg/dto/requests"
	"mado-service/internal/pkg/exceptions"
	"mado-service/internal/pkg/utils"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DraftsController struct {
	Log             *zap.Logger
	SessionRegistry *drafts.SessionRegistry
	PreviewBaseUrl  string
}

var (
	draftsControllerInstance *DraftsController
	onceDraftsController     sync.Once
)

func NewDraftsController(logger *zap.Logger, sessionRegistry *drafts.SessionRegistry, previewBaseUrl string) *DraftsController {
	onceDraftsController.Do(func() {
		instance := &DraftsController{
			Log:             logger,
			SessionRegistry: sessionRegistry,
			PreviewBaseUrl:  previewBaseUrl,
		}
		draftsControllerInstance = instance
	})
	return draftsControllerInstance
}

func (ctrl *DraftsController) ShowPage(w http.ResponseWriter, r *http.Request) {
	page, requestID, ok := ctrl.sessionPage(w, r, "ShowPage")
	if !ok {
		return
	}

	snapshot := page.Snapshot()
	view := views.NewDraftsPageView(snapshot.Form, snapshot.Drafts, snapshot.Selected, snapshot.Loading, snapshot.Notice, ctrl.PreviewBaseUrl)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(constvars.StatusOK)
	if err := views.RenderDraftsPage(w, view); err != nil {
		ctrl.Log.Error("DraftsController.ShowPage error rendering template",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func (ctrl *DraftsController) GenerateDraft(w http.ResponseWriter, r *http.Request) {
	page, requestID, ok := ctrl.sessionPage(w, r, "GenerateDraft")
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		ctrl.Log.Error("DraftsController.GenerateDraft error parsing form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseForm(err))
		return
	}

	form := requests.MadoDraftForm{
		PatientName: r.PostFormValue("patient_name"),
		DOB:         r.PostFormValue("dob"),
		PHN:         r.PostFormValue("phn"),
		Address:     r.PostFormValue("address"),
		Phone:       r.PostFormValue("phone"),
		Disease:     r.PostFormValue("disease"),
		RegionID:    r.PostFormValue("region_id"),
	}
	utils.SanitizeMadoDraftForm(&form)

	page.Generate(r.Context(), form)

	http.Redirect(w, r, "/", constvars.StatusSeeOther)
}

func (ctrl *DraftsController) OpenPreview(w http.ResponseWriter, r *http.Request) {
	page, requestID, ok := ctrl.sessionPage(w, r, "OpenPreview")
	if !ok {
		return
	}

	draftID := chi.URLParam(r, "draftID")
	if !page.OpenPreview(draftID) {
		ctrl.Log.Warn("DraftsController.OpenPreview draft not in list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draftID),
		)
	}

	http.Redirect(w, r, "/", constvars.StatusSeeOther)
}

func (ctrl *DraftsController) ClosePreview(w http.ResponseWriter, r *http.Request) {
	page, _, ok := ctrl.sessionPage(w, r, "ClosePreview")
	if !ok {
		return
	}

	page.ClosePreview()

	http.Redirect(w, r, "/", constvars.StatusSeeOther)
}

func (ctrl *DraftsController) SendDraft(w http.ResponseWriter, r *http.Request) {
	page, requestID, ok := ctrl.sessionPage(w, r, "SendDraft")
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		ctrl.Log.Error("DraftsController.SendDraft error parsing form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseForm(err))
		return
	}

	draftID := chi.URLParam(r, "draftID")
	transport := strings.ToLower(strings.TrimSpace(r.PostFormValue("transport")))
	if transport == "" {
		transport = constvars.MadoTransportFax
	}

	page.Send(r.Context(), draftID, transport)

	http.Redirect(w, r, "/", constvars.StatusSeeOther)
}

func (ctrl *DraftsController) ListDrafts(w http.ResponseWriter, r *http.Request) {
	page, requestID, ok := ctrl.sessionPage(w, r, "ListDrafts")
	if !ok {
		return
	}

	list := page.Drafts()

	ctrl.Log.Info("DraftsController.ListDrafts succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDraftCountKey, len(list)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDraftsSuccessMessage, list)
}

func (ctrl *DraftsController) sessionPage(w http.ResponseWriter, r *http.Request, method string) (*drafts.DraftsPage, string, bool) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		ctrl.Log.Error("DraftsController." + method + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return nil, "", false
	}

	sessionID := utils.GetSessionID(r.Context())
	if sessionID == "" {
		ctrl.Log.Error("DraftsController."+method+" sessionID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return nil, "", false
	}

	ctrl.Log.Info("DraftsController."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return ctrl.SessionRegistry.Page(sessionID), requestID, true
}
