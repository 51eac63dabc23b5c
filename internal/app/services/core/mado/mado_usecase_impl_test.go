package mado

import (
	"context"
	"errors"
	"io"
	"mado-service/internal/app/config"
	"mado-service/internal/pkg/dto/requests"
	"mado-service/internal/pkg/dto/responses"
	"mado-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBucket = "aurascribe"

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type usecaseMocks struct {
	storage    *MockStorage
	renderer   *MockRenderer
	recipients *MockRecipientDirectory
	fax        *MockFaxService
	locker     *MockLockerService
	events     *MockEventPublisher
}

func newTestUsecase() (*madoUsecase, *usecaseMocks) {
	m := &usecaseMocks{
		storage:    new(MockStorage),
		renderer:   new(MockRenderer),
		recipients: new(MockRecipientDirectory),
		fax:        new(MockFaxService),
		locker:     new(MockLockerService),
		events:     new(MockEventPublisher),
	}
	uc := &madoUsecase{
		Storage:            m.storage,
		Renderer:           m.renderer,
		RecipientDirectory: m.recipients,
		FaxService:         m.fax,
		LockerService:      m.locker,
		EventPublisher:     m.events,
		InternalConfig: &config.InternalConfig{
			Mado: config.AppMado{
				PreSignedUrlExpiryTimeInMinutes: 60,
				SendLockExpiryTimeInSeconds:     120,
			},
			Minio: config.AppMinio{BucketName: testBucket},
		},
		Log: zap.NewNop(),
		Now: func() time.Time { return fixedNow },
	}
	return uc, m
}

func generateRequest() *requests.GenerateMado {
	return &requests.GenerateMado{
		EncounterID: "enc-1709294400000",
		Patient: &requests.MadoPatient{
			Name:     "Jean Dupont",
			DOB:      "1980-01-01",
			Address:  "1 Rue Exemple",
			Phone:    "418-555-1212",
			PHN:      "1234567890",
			RegionID: "06",
		},
		Extracted: &requests.MadoExtracted{
			DiseaseName:   "Syphilis",
			ClinicianName: "Dr Demo",
			ClinicianID:   "dr-demo",
		},
		RegionID: "06",
	}
}

func storedMetadata(t *testing.T, metadata responses.DraftMetadata) []byte {
	t.Helper()
	raw, err := json.Marshal(metadata)
	require.NoError(t, err)
	return raw
}

func requireCustomError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	assert.Equal(t, status, customErr.StatusCode)
	assert.Equal(t, message, customErr.ClientMessage)
}

func TestMadoUsecase_GenerateDraft(t *testing.T) {
	t.Run("Stores PDF And Metadata", func(t *testing.T) {
		uc, m := newTestUsecase()
		var rendered *requests.MadoDocument
		var pdfKey, metadataKey string
		var saved responses.DraftMetadata

		m.renderer.On("Render", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { rendered = args.Get(1).(*requests.MadoDocument) }).
			Return([]byte("%PDF"), nil)
		m.storage.On("PutObject", mock.Anything, testBucket, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "mado/drafts/")
		}), []byte("%PDF"), "application/pdf").
			Run(func(args mock.Arguments) { pdfKey = args.String(2) }).
			Return(nil)
		m.recipients.On("FindFaxByRegion", mock.Anything, "06").Return("+15145550106", nil)
		m.storage.On("PutObject", mock.Anything, testBucket, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "mado/metadata/")
		}), mock.Anything, "application/json").
			Run(func(args mock.Arguments) {
				metadataKey = args.String(2)
				require.NoError(t, json.Unmarshal(args.Get(3).([]byte), &saved))
			}).
			Return(nil)
		m.storage.On("GetObjectUrlWithExpiryTime", mock.Anything, testBucket, mock.Anything, time.Hour).
			Return("https://minio.local/presigned", nil)

		draft, err := uc.GenerateDraft(context.Background(), generateRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, draft.DraftID)
		assert.False(t, draft.Sent)
		assert.Equal(t, "https://minio.local/presigned", draft.PreviewURL)
		assert.Equal(t, "mado/drafts/"+draft.DraftID+".pdf", pdfKey)
		assert.Equal(t, "mado/metadata/"+draft.DraftID+".json", metadataKey)

		assert.Equal(t, "Jean Dupont", rendered.PatientName)
		assert.Equal(t, "1234567890", rendered.HealthInsuranceNumber)
		assert.Equal(t, "Dr Demo", rendered.ClinicianDeclarant)
		assert.Equal(t, fixedNow.Format(time.RFC3339), rendered.DeclarationDate)

		assert.Equal(t, draft.DraftID, saved.ID)
		assert.Equal(t, "enc-1709294400000", saved.EncounterID)
		assert.Equal(t, "Syphilis", saved.Disease)
		assert.Equal(t, "06", saved.RegionID)
		assert.Equal(t, "+15145550106", saved.RecipientFax)
		assert.Equal(t, "draft", saved.Status)
		assert.Equal(t, "fax", saved.Transport)
		assert.Equal(t, pdfKey, saved.S3Key)
		assert.Equal(t, "dr-demo", saved.CreatedBy)
		assert.Equal(t, saved, draft.Metadata)
		m.storage.AssertExpectations(t)
	})

	t.Run("PDF Render Failure", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.renderer.On("Render", mock.Anything, mock.Anything).Return(nil, errors.New("font missing"))

		draft, err := uc.GenerateDraft(context.Background(), generateRequest())

		assert.Nil(t, draft)
		requireCustomError(t, err, 500, "PDF fill failed: font missing")
		m.storage.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Recipient Lookup Failure Keeps Going", func(t *testing.T) {
		uc, m := newTestUsecase()
		var saved responses.DraftMetadata
		m.renderer.On("Render", mock.Anything, mock.Anything).Return([]byte("%PDF"), nil)
		m.recipients.On("FindFaxByRegion", mock.Anything, "06").Return("", errors.New("no file"))
		m.storage.On("PutObject", mock.Anything, testBucket, mock.Anything, mock.Anything, "application/pdf").Return(nil)
		m.storage.On("PutObject", mock.Anything, testBucket, mock.Anything, mock.Anything, "application/json").
			Run(func(args mock.Arguments) { require.NoError(t, json.Unmarshal(args.Get(3).([]byte), &saved)) }).
			Return(nil)
		m.storage.On("GetObjectUrlWithExpiryTime", mock.Anything, testBucket, mock.Anything, time.Hour).Return("u", nil)

		_, err := uc.GenerateDraft(context.Background(), generateRequest())

		require.NoError(t, err)
		assert.Empty(t, saved.RecipientFax)
	})
}

func TestResolveRegionID(t *testing.T) {
	tests := []struct {
		name     string
		request  *requests.GenerateMado
		expected string
	}{
		{name: "request region", request: &requests.GenerateMado{RegionID: "03", Patient: &requests.MadoPatient{RegionID: "13"}}, expected: "03"},
		{name: "patient region", request: &requests.GenerateMado{Patient: &requests.MadoPatient{RegionID: "13"}}, expected: "13"},
		{name: "default region", request: &requests.GenerateMado{Patient: &requests.MadoPatient{}}, expected: "06"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveRegionID(tt.request))
		})
	}
}

func expectLock(m *usecaseMocks) {
	m.locker.On("TryLock", mock.Anything, "mado:send-lock:d1", 120*time.Second).Return(true, "lock-1", nil)
	m.locker.On("Unlock", mock.Anything, "mado:send-lock:d1", "lock-1").Return(nil)
}

func draftMetadata(fax string) responses.DraftMetadata {
	createdAt := fixedNow.Add(-time.Hour)
	return responses.DraftMetadata{
		ID:           "d1",
		Disease:      "Syphilis",
		RegionID:     "06",
		RecipientFax: fax,
		Transport:    "fax",
		Status:       "draft",
		S3Key:        "mado/drafts/d1.pdf",
		CreatedBy:    "dr-demo",
		CreatedAt:    &createdAt,
	}
}

func TestMadoUsecase_SendDraft(t *testing.T) {
	faxRequest := &requests.SendMado{DraftID: "d1", ApproveBy: "dr-demo", Transport: "fax"}
	manualRequest := &requests.SendMado{DraftID: "d1", ApproveBy: "dr-demo", Transport: "manual"}

	t.Run("Lock Held", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.locker.On("TryLock", mock.Anything, "mado:send-lock:d1", 120*time.Second).Return(false, "", nil)

		result, err := uc.SendDraft(context.Background(), faxRequest)

		assert.Nil(t, result)
		requireCustomError(t, err, 409, "a send for this draft is already in progress")
		m.locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Draft Not Found", func(t *testing.T) {
		uc, m := newTestUsecase()
		expectLock(m)
		m.storage.On("GetObject", mock.Anything, testBucket, "mado/metadata/d1.json").
			Return(nil, exceptions.ErrMinioGetObject(errors.New("NoSuchKey"), testBucket))

		_, err := uc.SendDraft(context.Background(), faxRequest)

		requireCustomError(t, err, 404, "draft not found")
		m.locker.AssertExpectations(t)
	})

	t.Run("Manual Transport", func(t *testing.T) {
		uc, m := newTestUsecase()
		expectLock(m)
		var saved responses.DraftMetadata
		m.storage.On("GetObject", mock.Anything, testBucket, "mado/metadata/d1.json").Return(storedMetadata(t, draftMetadata("+15145550106")), nil)
		m.storage.On("PutObject", mock.Anything, testBucket, "mado/metadata/d1.json", mock.Anything, "application/json").
			Run(func(args mock.Arguments) { require.NoError(t, json.Unmarshal(args.Get(3).([]byte), &saved)) }).
			Return(nil)
		m.storage.On("GetObjectUrlWithExpiryTime", mock.Anything, testBucket, "mado/drafts/d1.pdf", time.Hour).Return("https://minio.local/download", nil)
		m.events.On("Publish", mock.Anything, mock.MatchedBy(func(e *requests.MadoEvent) bool {
			return e.EventType == "mado.draft.manual_ready" && e.DraftID == "d1"
		})).Return(nil)

		result, err := uc.SendDraft(context.Background(), manualRequest)

		require.NoError(t, err)
		assert.Equal(t, &responses.SendResult{
			DraftID:     "d1",
			Sent:        false,
			Transport:   "manual",
			DownloadURL: "https://minio.local/download",
		}, result)
		assert.Equal(t, "manual_ready", saved.Status)
		assert.Nil(t, saved.SentAt)
		m.fax.AssertNotCalled(t, "SendFax", mock.Anything, mock.Anything)
		m.events.AssertExpectations(t)
		m.locker.AssertExpectations(t)
	})

	t.Run("Recipient Fax Missing", func(t *testing.T) {
		uc, m := newTestUsecase()
		expectLock(m)
		m.storage.On("GetObject", mock.Anything, testBucket, "mado/metadata/d1.json").Return(storedMetadata(t, draftMetadata("")), nil)

		_, err := uc.SendDraft(context.Background(), faxRequest)

		requireCustomError(t, err, 400, "recipient fax not configured for this region")
		m.fax.AssertNotCalled(t, "SendFax", mock.Anything, mock.Anything)
	})

	t.Run("Fax Provider Failure", func(t *testing.T) {
		uc, m := newTestUsecase()
		expectLock(m)
		var saved responses.DraftMetadata
		m.storage.On("GetObject", mock.Anything, testBucket, "mado/metadata/d1.json").Return(storedMetadata(t, draftMetadata("+15145550106")), nil)
		m.storage.On("GetObject", mock.Anything, testBucket, "mado/drafts/d1.pdf").Return([]byte("%PDF"), nil)
		m.fax.On("SendFax", mock.Anything, mock.Anything).Return(nil, errors.New("503 busy"))
		m.storage.On("PutObject", mock.Anything, testBucket, "mado/metadata/d1.json", mock.Anything, "application/json").
			Run(func(args mock.Arguments) { require.NoError(t, json.Unmarshal(args.Get(3).([]byte), &saved)) }).
			Return(nil)
		m.events.On("Publish", mock.Anything, mock.Anything).Return(nil)

		result, err := uc.SendDraft(context.Background(), faxRequest)

		assert.Nil(t, result)
		requireCustomError(t, err, 502, "InterFAX send failed: 503 busy")
		assert.Equal(t, "send_failed", saved.Status)
		assert.Equal(t, "503 busy", saved.Notes)
	})

	t.Run("Fax Sent", func(t *testing.T) {
		uc, m := newTestUsecase()
		expectLock(m)
		var saved responses.DraftMetadata
		var sentFax *requests.SendFax
		m.storage.On("GetObject", mock.Anything, testBucket, "mado/metadata/d1.json").Return(storedMetadata(t, draftMetadata("+15145550106")), nil)
		m.storage.On("GetObject", mock.Anything, testBucket, "mado/drafts/d1.pdf").Return([]byte("%PDF"), nil)
		m.fax.On("SendFax", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sentFax = args.Get(1).(*requests.SendFax) }).
			Return(&responses.FaxJob{JobID: "job-42"}, nil)
		m.storage.On("PutObject", mock.Anything, testBucket, "mado/metadata/d1.json", mock.Anything, "application/json").
			Run(func(args mock.Arguments) { require.NoError(t, json.Unmarshal(args.Get(3).([]byte), &saved)) }).
			Return(nil)
		m.events.On("Publish", mock.Anything, mock.MatchedBy(func(e *requests.MadoEvent) bool {
			return e.EventType == "mado.draft.sent" && e.ProviderJobID == "job-42"
		})).Return(errors.New("broker down"))

		result, err := uc.SendDraft(context.Background(), faxRequest)

		require.NoError(t, err)
		assert.Equal(t, &responses.SendResult{DraftID: "d1", Sent: true, ProviderJobID: "job-42"}, result)
		assert.Equal(t, "+15145550106", sentFax.FaxNumber)
		assert.Equal(t, "MADO report: Syphilis", sentFax.CoverText)
		assert.Equal(t, "d1.pdf", sentFax.FileName)
		assert.Equal(t, "sent", saved.Status)
		assert.Equal(t, "job-42", saved.ProviderJobID)
		assert.Equal(t, "dr-demo", saved.SentBy)
		require.NotNil(t, saved.SentAt)
		assert.True(t, fixedNow.Equal(*saved.SentAt))
		m.locker.AssertExpectations(t)
	})

	t.Run("Without Event Publisher", func(t *testing.T) {
		uc, m := newTestUsecase()
		uc.EventPublisher = nil
		expectLock(m)
		m.storage.On("GetObject", mock.Anything, testBucket, "mado/metadata/d1.json").Return(storedMetadata(t, draftMetadata("")), nil)
		m.storage.On("PutObject", mock.Anything, testBucket, "mado/metadata/d1.json", mock.Anything, "application/json").Return(nil)
		m.storage.On("GetObjectUrlWithExpiryTime", mock.Anything, testBucket, "mado/drafts/d1.pdf", time.Hour).Return("u", nil)

		result, err := uc.SendDraft(context.Background(), manualRequest)

		require.NoError(t, err)
		assert.Equal(t, "u", result.DownloadURL)
	})
}

func TestMadoUsecase_OpenDraftObject(t *testing.T) {
	t.Run("Rejects Keys Outside Drafts", func(t *testing.T) {
		uc, m := newTestUsecase()
		for _, key := range []string{
			"mado/metadata/d1.json",
			"mado/drafts/../metadata/d1.json",
			"/mado/drafts/d1.pdf",
			"",
		} {
			_, _, err := uc.OpenDraftObject(context.Background(), key)
			requireCustomError(t, err, 404, "object not found")
		}
		m.storage.AssertNotCalled(t, "StreamObject", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Streams Draft", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.storage.On("StreamObject", mock.Anything, testBucket, "mado/drafts/d1.pdf").
			Return(io.NopCloser(strings.NewReader("%PDF")), int64(4), nil)

		reader, size, err := uc.OpenDraftObject(context.Background(), "mado/drafts/d1.pdf")

		require.NoError(t, err)
		defer reader.Close()
		content, _ := io.ReadAll(reader)
		assert.Equal(t, int64(4), size)
		assert.Equal(t, "%PDF", string(content))
	})

	t.Run("Missing Object", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.storage.On("StreamObject", mock.Anything, testBucket, "mado/drafts/absent.pdf").
			Return(nil, int64(0), errors.New("NoSuchKey"))

		_, _, err := uc.OpenDraftObject(context.Background(), "mado/drafts/absent.pdf")

		requireCustomError(t, err, 404, "object not found")
	})
}
