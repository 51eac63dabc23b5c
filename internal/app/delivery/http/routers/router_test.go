package routers

import (
	"context"
	"mado-service/internal/app/config"
	"mado-service/internal/app/delivery/http/controllers"
	"mado-service/internal/app/delivery/http/middlewares"
	"mado-service/internal/app/services/core/drafts"
	"mado-service/internal/pkg/constvars"
	"mado-service/internal/pkg/dto/requests"
	"mado-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockMadoClient struct {
	mock.Mock
}

func (m *MockMadoClient) GenerateMado(ctx context.Context, request *requests.GenerateMado) (*responses.Draft, error) {
	args := m.Called(ctx, request)
	draft, _ := args.Get(0).(*responses.Draft)
	return draft, args.Error(1)
}

func (m *MockMadoClient) SendMado(ctx context.Context, request *requests.SendMado) (*responses.SendResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.SendResult)
	return result, args.Error(1)
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			Env:                         "development",
			Version:                     "v1.0",
			AllowedOrigins:              []string{"*"},
			MaxRequests:                 100,
			RequestBodyLimitInMegabyte:  1,
			SessionIdleTimeoutInMinutes: 60,
		},
	}
}

func newDraftsServer(client *MockMadoClient) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := testConfig()
	registry := drafts.NewSessionRegistry(client, constvars.MadoDemoApproverID, time.Hour, logger)
	draftsController := &controllers.DraftsController{Log: logger, SessionRegistry: registry}

	router := chi.NewRouter()
	SetupDraftsRoutes(router, internalConfig, middlewares.NewMiddlewares(logger, internalConfig), draftsController)
	return router
}

func TestDraftsRoutes_SessionsAreIsolated(t *testing.T) {
	client := new(MockMadoClient)
	client.On("GenerateMado", mock.Anything, mock.Anything).Return(&responses.Draft{DraftID: "d1"}, nil)
	router := newDraftsServer(client)

	form := url.Values{"patient_name": {"Jean Dupont"}, "region_id": {"06"}}
	req := httptest.NewRequest(http.MethodPost, "/drafts", strings.NewReader(form.Encode()))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	withCookie := httptest.NewRequest(http.MethodGet, "/", nil)
	withCookie.AddCookie(cookies[0])
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, withCookie)
	assert.Contains(t, rr.Body.String(), "<strong>d1</strong>")

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotContains(t, rr.Body.String(), "<strong>d1</strong>")
}

func TestDraftsRoutes_Health(t *testing.T) {
	router := newDraftsServer(new(MockMadoClient))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"ok","data":{"version":"v1.0"}}`, rr.Body.String())
	assert.Empty(t, rr.Result().Cookies())
}

func TestMadoRoutes_Mounted(t *testing.T) {
	logger := zap.NewNop()
	internalConfig := testConfig()
	router := chi.NewRouter()
	SetupMadoRoutes(router, internalConfig, middlewares.NewMiddlewares(logger, internalConfig), &controllers.MadoController{Log: logger})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/mado/send", strings.NewReader(`{"draft_id":""}`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "draft_id is required", rr.Body.String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/mado/generate", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
