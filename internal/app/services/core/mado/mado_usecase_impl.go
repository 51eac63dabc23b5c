package mado

import (
	"context"
	"fmt"
	"io"
	"mado-service/internal/app/config"
	"mado-service/internal/app/contracts"
	"mado-service/internal/pkg/constvars"
	"mado-service/internal/pkg/dto/requests"
	"mado-service/internal/pkg/dto/responses"
	"mado-service/internal/pkg/exceptions"
	"mado-service/internal/pkg/utils"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type madoUsecase struct {
	Storage            contracts.Storage
	Renderer           contracts.MadoDocumentRenderer
	RecipientDirectory contracts.RecipientDirectory
	FaxService         contracts.FaxService
	LockerService      contracts.LockerService
	EventPublisher     contracts.MadoEventPublisher
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
	Now                func() time.Time
}

var (
	madoUsecaseInstance contracts.MadoUsecase
	onceMadoUsecase     sync.Once
)

// NewMadoUsecase wires the MADO backend. eventPublisher may be nil, in which
// case status events are skipped.
func NewMadoUsecase(
	storage contracts.Storage,
	renderer contracts.MadoDocumentRenderer,
	recipientDirectory contracts.RecipientDirectory,
	faxService contracts.FaxService,
	lockerService contracts.LockerService,
	eventPublisher contracts.MadoEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.MadoUsecase {
	onceMadoUsecase.Do(func() {
		instance := &madoUsecase{
			Storage:            storage,
			Renderer:           renderer,
			RecipientDirectory: recipientDirectory,
			FaxService:         faxService,
			LockerService:      lockerService,
			EventPublisher:     eventPublisher,
			InternalConfig:     internalConfig,
			Log:                logger,
			Now:                func() time.Time { return time.Now().UTC() },
		}
		madoUsecaseInstance = instance
	})
	return madoUsecaseInstance
}

func (uc *madoUsecase) GenerateDraft(ctx context.Context, request *requests.GenerateMado) (*responses.Draft, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("madoUsecase.GenerateDraft called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEncounterIDKey, request.EncounterID),
	)

	draftID := uuid.NewString()
	regionID := resolveRegionID(request)
	now := uc.Now()

	document := &requests.MadoDocument{
		DraftID:               draftID,
		RegionID:              regionID,
		PatientName:           request.Patient.Name,
		DateOfBirth:           request.Patient.DOB,
		Address:               request.Patient.Address,
		Phone:                 request.Patient.Phone,
		HealthInsuranceNumber: request.Patient.PHN,
		ClinicianDeclarant:    request.Extracted.ClinicianName,
		DiseaseName:           request.Extracted.DiseaseName,
		DeclarationDate:       now.Format(time.RFC3339),
	}

	pdfBytes, err := uc.Renderer.Render(ctx, document)
	if err != nil {
		uc.Log.Error("madoUsecase.GenerateDraft error rendering PDF",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPDFRender(err)
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	pdfKey := utils.GenerateDraftObjectKey(draftID)
	err = uc.Storage.PutObject(ctx, bucketName, pdfKey, pdfBytes, constvars.MIMEApplicationPDF)
	if err != nil {
		uc.Log.Error("madoUsecase.GenerateDraft error storing PDF",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectKey, pdfKey),
			zap.Error(err),
		)
		return nil, err
	}

	recipientFax, err := uc.RecipientDirectory.FindFaxByRegion(ctx, regionID)
	if err != nil {
		uc.Log.Warn("madoUsecase.GenerateDraft recipient lookup failed, continuing without fax",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRegionIDKey, regionID),
			zap.Error(err),
		)
		recipientFax = ""
	}

	createdBy := request.Extracted.ClinicianID
	if createdBy == "" {
		createdBy = constvars.MadoDefaultCreatedBy
	}

	metadata := &responses.DraftMetadata{
		ID:           draftID,
		EncounterID:  request.EncounterID,
		PatientHash:  request.Patient.PHN,
		Disease:      request.Extracted.DiseaseName,
		RegionID:     regionID,
		RecipientFax: recipientFax,
		Transport:    constvars.MadoTransportFax,
		Status:       constvars.MadoStatusDraft,
		S3Key:        pdfKey,
		CreatedBy:    createdBy,
		CreatedAt:    &now,
	}

	err = uc.saveMetadata(ctx, metadata)
	if err != nil {
		uc.Log.Error("madoUsecase.GenerateDraft error storing metadata",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	previewURL, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, pdfKey, uc.presignExpiry())
	if err != nil {
		uc.Log.Error("madoUsecase.GenerateDraft error presigning preview URL",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("madoUsecase.GenerateDraft succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
		zap.String(constvars.LoggingRegionIDKey, regionID),
	)

	return &responses.Draft{
		DraftID:    draftID,
		PreviewURL: previewURL,
		Metadata:   *metadata,
		Sent:       false,
	}, nil
}

func (uc *madoUsecase) SendDraft(ctx context.Context, request *requests.SendMado) (*responses.SendResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("madoUsecase.SendDraft called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, request.DraftID),
		zap.String(constvars.LoggingTransportKey, request.Transport),
	)

	lockKey := utils.GenerateSendLockKey(request.DraftID)
	lockExpiry := time.Duration(uc.InternalConfig.Mado.SendLockExpiryTimeInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockExpiry)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrDraftLocked(nil, request.DraftID)
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Error("madoUsecase.SendDraft error releasing send lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	metadata, err := uc.loadMetadata(ctx, request.DraftID)
	if err != nil {
		uc.Log.Error("madoUsecase.SendDraft error loading metadata",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, request.DraftID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDraftNotFound(nil, request.DraftID)
	}

	if request.Transport == constvars.MadoTransportManual {
		return uc.markManualReady(ctx, request, metadata)
	}
	return uc.sendFax(ctx, request, metadata)
}

func (uc *madoUsecase) markManualReady(ctx context.Context, request *requests.SendMado, metadata *responses.DraftMetadata) (*responses.SendResult, error) {
	requestID := utils.GetRequestID(ctx)

	metadata.Status = constvars.MadoStatusManualReady
	metadata.Transport = constvars.MadoTransportManual
	metadata.SentAt = nil
	if err := uc.saveMetadata(ctx, metadata); err != nil {
		return nil, err
	}

	downloadURL, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, metadata.S3Key, uc.presignExpiry())
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constvars.MadoEventDraftManualReady, request, metadata)

	uc.Log.Info("madoUsecase.SendDraft marked manual_ready",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, request.DraftID),
	)
	return &responses.SendResult{
		DraftID:     request.DraftID,
		Sent:        false,
		Transport:   constvars.MadoTransportManual,
		DownloadURL: downloadURL,
	}, nil
}

func (uc *madoUsecase) sendFax(ctx context.Context, request *requests.SendMado, metadata *responses.DraftMetadata) (*responses.SendResult, error) {
	requestID := utils.GetRequestID(ctx)

	if metadata.RecipientFax == "" {
		return nil, exceptions.ErrRecipientFaxMissing(nil, metadata.RegionID)
	}

	pdfBytes, err := uc.Storage.GetObject(ctx, uc.InternalConfig.Minio.BucketName, metadata.S3Key)
	if err != nil {
		return nil, err
	}

	job, err := uc.FaxService.SendFax(ctx, &requests.SendFax{
		FaxNumber: metadata.RecipientFax,
		Document:  pdfBytes,
		FileName:  path.Base(metadata.S3Key),
		CoverText: fmt.Sprintf(constvars.MadoFaxCoverTextFormat, metadata.Disease),
	})
	if err != nil {
		uc.Log.Error("madoUsecase.SendDraft fax provider error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, request.DraftID),
			zap.Error(err),
		)

		metadata.Status = constvars.MadoStatusSendFailed
		metadata.Notes = err.Error()
		if saveErr := uc.saveMetadata(context.WithoutCancel(ctx), metadata); saveErr != nil {
			uc.Log.Error("madoUsecase.SendDraft error recording send failure",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(saveErr),
			)
		}
		uc.publishEvent(context.WithoutCancel(ctx), constvars.MadoEventDraftSendFailed, request, metadata)
		return nil, exceptions.ErrInterfaxSend(err)
	}

	sentAt := uc.Now()
	metadata.Status = constvars.MadoStatusSent
	metadata.Transport = constvars.MadoTransportFax
	metadata.ProviderJobID = job.JobID
	metadata.SentAt = &sentAt
	metadata.SentBy = request.ApproveBy
	metadata.Notes = ""
	if err := uc.saveMetadata(ctx, metadata); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constvars.MadoEventDraftSent, request, metadata)

	uc.Log.Info("madoUsecase.SendDraft fax sent",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, request.DraftID),
		zap.String(constvars.LoggingProviderJobIDKey, job.JobID),
	)
	return &responses.SendResult{
		DraftID:       request.DraftID,
		Sent:          true,
		ProviderJobID: job.JobID,
	}, nil
}

// OpenDraftObject streams a stored draft PDF. Only keys under the drafts prefix are served.
func (uc *madoUsecase) OpenDraftObject(ctx context.Context, objectKey string) (io.ReadCloser, int64, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("madoUsecase.OpenDraftObject called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectKey),
	)

	cleaned := path.Clean("/" + objectKey)[1:]
	if cleaned != objectKey || !strings.HasPrefix(cleaned, constvars.MadoDraftKeyPrefix) {
		return nil, 0, exceptions.ErrInvalidObjectKey(nil, objectKey)
	}

	object, size, err := uc.Storage.StreamObject(ctx, uc.InternalConfig.Minio.BucketName, cleaned)
	if err != nil {
		uc.Log.Error("madoUsecase.OpenDraftObject error opening object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectKey, cleaned),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrObjectNotFound(nil, cleaned)
	}

	return object, size, nil
}

func (uc *madoUsecase) loadMetadata(ctx context.Context, draftID string) (*responses.DraftMetadata, error) {
	raw, err := uc.Storage.GetObject(ctx, uc.InternalConfig.Minio.BucketName, utils.GenerateMetadataObjectKey(draftID))
	if err != nil {
		return nil, err
	}

	metadata := new(responses.DraftMetadata)
	if err := json.Unmarshal(raw, metadata); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return metadata, nil
}

func (uc *madoUsecase) saveMetadata(ctx context.Context, metadata *responses.DraftMetadata) error {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return uc.Storage.PutObject(ctx, uc.InternalConfig.Minio.BucketName, utils.GenerateMetadataObjectKey(metadata.ID), raw, constvars.MIMEApplicationJSON)
}

func (uc *madoUsecase) publishEvent(ctx context.Context, eventType string, request *requests.SendMado, metadata *responses.DraftMetadata) {
	if uc.EventPublisher == nil {
		return
	}

	event := &requests.MadoEvent{
		EventType:     eventType,
		DraftID:       request.DraftID,
		Transport:     request.Transport,
		Status:        metadata.Status,
		ProviderJobID: metadata.ProviderJobID,
		ApprovedBy:    request.ApproveBy,
		OccurredAt:    uc.Now().Format(time.RFC3339),
	}
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Warn("madoUsecase.publishEvent failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}

func (uc *madoUsecase) presignExpiry() time.Duration {
	return time.Duration(uc.InternalConfig.Mado.PreSignedUrlExpiryTimeInMinutes) * time.Minute
}

func resolveRegionID(request *requests.GenerateMado) string {
	if request.RegionID != "" {
		return request.RegionID
	}
	if request.Patient != nil && request.Patient.RegionID != "" {
		return request.Patient.RegionID
	}
	return constvars.MadoDefaultRegionID
}
