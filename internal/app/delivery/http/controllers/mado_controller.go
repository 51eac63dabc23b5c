package controllers

import (
	"io"
	"mado-service/internal/app/contracts"
	"mado-service/internal/pkg/constvars"
	"mado-service/internal/pkg/dto/requests"
	"mado-service/internal/pkg/exceptions"
	"mado-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// MadoController serves the MADO backend API. Failures answer with a
// plain-text body holding the client message.
type MadoController struct {
	Log         *zap.Logger
	MadoUsecase contracts.MadoUsecase
}

var (
	madoControllerInstance *MadoController
	onceMadoController     sync.Once
)

func NewMadoController(logger *zap.Logger, madoUsecase contracts.MadoUsecase) *MadoController {
	onceMadoController.Do(func() {
		instance := &MadoController{
			Log:         logger,
			MadoUsecase: madoUsecase,
		}
		madoControllerInstance = instance
	})
	return madoControllerInstance
}

func (ctrl *MadoController) GenerateMado(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MadoController.GenerateMado called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.GenerateMado)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("MadoController.GenerateMado error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildTextErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("MadoController.GenerateMado validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildTextErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	draft, err := ctrl.MadoUsecase.GenerateDraft(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("MadoController.GenerateMado error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildTextErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MadoController.GenerateMado succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draft.DraftID),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, draft)
}

func (ctrl *MadoController) SendMado(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MadoController.SendMado called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SendMado)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("MadoController.SendMado error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildTextErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeSendMadoRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("MadoController.SendMado validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildTextErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.MadoUsecase.SendDraft(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("MadoController.SendMado error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, request.DraftID),
			zap.Error(err),
		)
		utils.BuildTextErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MadoController.SendMado succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, request.DraftID),
		zap.Bool(constvars.LoggingSuccessKey, result.Sent),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *MadoController) GetDraftObject(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	objectKey := chi.URLParam(r, "*")
	ctrl.Log.Info("MadoController.GetDraftObject called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectKey),
	)

	object, size, err := ctrl.MadoUsecase.OpenDraftObject(r.Context(), objectKey)
	if err != nil {
		utils.BuildTextErrorResponse(ctrl.Log, w, err)
		return
	}
	defer object.Close()

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationPDF)
	w.Header().Set(constvars.HeaderContentLength, strconv.FormatInt(size, 10))
	w.Header().Set(constvars.HeaderContentDisposition, "inline")
	w.WriteHeader(constvars.StatusOK)

	written, err := io.Copy(w, object)
	if err != nil {
		ctrl.Log.Error("MadoController.GetDraftObject error streaming object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingObjectSizeKey, written),
			zap.Error(err),
		)
	}
}
