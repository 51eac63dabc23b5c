package madoclient

import (
	"bytes"
	"context"
	"io"
	"mado-service/internal/app/contracts"
	"mado-service/internal/pkg/constvars"
	"mado-service/internal/pkg/dto/requests"
	"mado-service/internal/pkg/dto/responses"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// RequestError is returned for every failed backend call. Message is what the
// drafts page shows to the operator.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

type madoClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

// NewMadoClient builds a client for the MADO backend at baseUrl. A zero timeout
// leaves cancellation to the caller's context.
func NewMadoClient(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.MadoClient {
	return &madoClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

func (c *madoClient) GenerateMado(ctx context.Context, request *requests.GenerateMado) (*responses.Draft, error) {
	c.Log.Info("madoClient.GenerateMado called",
		zap.String(constvars.LoggingEncounterIDKey, request.EncounterID),
	)

	draft := new(responses.Draft)
	err := c.post(ctx, constvars.MadoGeneratePath, request, constvars.MadoGenerateFallbackText, draft)
	if err != nil {
		c.Log.Error("madoClient.GenerateMado error", zap.Error(err))
		return nil, err
	}
	if draft.DraftID == "" {
		err = &RequestError{StatusCode: constvars.StatusOK, Message: constvars.MadoMissingDraftIDText}
		c.Log.Error("madoClient.GenerateMado error", zap.Error(err))
		return nil, err
	}

	c.Log.Info("madoClient.GenerateMado succeeded",
		zap.String(constvars.LoggingDraftIDKey, draft.DraftID),
	)
	return draft, nil
}

func (c *madoClient) SendMado(ctx context.Context, request *requests.SendMado) (*responses.SendResult, error) {
	c.Log.Info("madoClient.SendMado called",
		zap.String(constvars.LoggingDraftIDKey, request.DraftID),
		zap.String(constvars.LoggingTransportKey, request.Transport),
	)

	result := new(responses.SendResult)
	err := c.post(ctx, constvars.MadoSendPath, request, constvars.MadoSendFallbackText, result)
	if err != nil {
		c.Log.Error("madoClient.SendMado error", zap.Error(err))
		return nil, err
	}

	c.Log.Info("madoClient.SendMado succeeded",
		zap.String(constvars.LoggingDraftIDKey, request.DraftID),
		zap.Bool(constvars.LoggingSuccessKey, result.Sent),
	)
	return result, nil
}

// post sends body as JSON to path and decodes a 2xx answer into out. Any other
// status fails with the response text, or fallback when the body is empty.
func (c *madoClient) post(ctx context.Context, path string, body interface{}, fallback string, out interface{}) error {
	requestJSON, err := json.Marshal(body)
	if err != nil {
		return &RequestError{Message: err.Error(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+path, bytes.NewBuffer(requestJSON))
	if err != nil {
		return &RequestError{Message: err.Error(), Err: err}
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &RequestError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		message := string(text)
		if message == "" {
			message = fallback
		}
		return &RequestError{StatusCode: resp.StatusCode, Message: message}
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return &RequestError{StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	return nil
}
