package fax

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mado-service/internal/app/contracts"
	"mado-service/internal/pkg/constvars"
	"mado-service/internal/pkg/dto/requests"
	"mado-service/internal/pkg/dto/responses"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const outboundFaxesPath = "/outbound/faxes"

// jobIDFields are checked in order on the provider's JSON answer.
var jobIDFields = []string{"id", "jobId", "faxJobId"}

type interfaxService struct {
	BaseUrl    string
	Username   string
	Password   string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

type Config struct {
	BaseUrl           string
	Username          string
	Password          string
	Timeout           time.Duration
	RequestsPerMinute int
}

// NewInterfaxService builds the InterFAX client. Outbound faxes are throttled to
// RequestsPerMinute; a non-positive value disables the throttle.
func NewInterfaxService(cfg Config, logger *zap.Logger) contracts.FaxService {
	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}

	return &interfaxService{
		BaseUrl:    strings.TrimRight(cfg.BaseUrl, "/"),
		Username:   cfg.Username,
		Password:   cfg.Password,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Limiter:    rate.NewLimiter(limit, 1),
		Log:        logger,
	}
}

func (s *interfaxService) SendFax(ctx context.Context, request *requests.SendFax) (*responses.FaxJob, error) {
	s.Log.Info("interfaxService.SendFax called",
		zap.String(constvars.LoggingFaxNumberKey, request.FaxNumber),
	)

	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, contentType, err := buildFaxForm(request)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.BaseUrl+outboundFaxesPath, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(constvars.HeaderContentType, contentType)
	req.SetBasicAuth(s.Username, s.Password)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text := strings.TrimSpace(string(raw))
		if text == "" {
			text = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("%d %s", resp.StatusCode, text)
	}

	jobID := parseJobID(raw, resp.Header.Get(constvars.HeaderLocation))

	s.Log.Info("interfaxService.SendFax succeeded",
		zap.String(constvars.LoggingProviderJobIDKey, jobID),
	)
	return &responses.FaxJob{JobID: jobID}, nil
}

func buildFaxForm(request *requests.SendFax) (*bytes.Buffer, string, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	fileName := request.FileName
	if fileName == "" {
		fileName = "mado.pdf"
	}

	header := make(textproto.MIMEHeader)
	header.Set(constvars.HeaderContentDisposition, fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	header.Set(constvars.HeaderContentType, constvars.MIMEApplicationPDF)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(request.Document); err != nil {
		return nil, "", err
	}

	if err := writer.WriteField("faxNumber", request.FaxNumber); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("coverText", request.CoverText); err != nil {
		return nil, "", err
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

// parseJobID reads the job id from the JSON answer, then from the Location
// header, and generates one when the provider gave neither.
func parseJobID(raw []byte, location string) string {
	if len(bytes.TrimSpace(raw)) > 0 {
		decoder := json.NewDecoder(bytes.NewReader(raw))
		decoder.UseNumber()

		var payload map[string]interface{}
		if err := decoder.Decode(&payload); err == nil {
			for _, field := range jobIDFields {
				if value, ok := payload[field]; ok && value != nil {
					if id := fmt.Sprint(value); id != "" {
						return id
					}
				}
			}
		}
	}

	if location != "" {
		if id := path.Base(strings.TrimRight(location, "/")); id != "." && id != "/" {
			return id
		}
	}

	return uuid.NewString()
}
