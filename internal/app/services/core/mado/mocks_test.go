package mado

import (
	"context"
	"io"
	"mado-service/internal/pkg/dto/requests"
	"mado-service/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) PutObject(ctx context.Context, bucketName, objectName string, data []byte, contentType string) error {
	args := m.Called(ctx, bucketName, objectName, data, contentType)
	return args.Error(0)
}

func (m *MockStorage) GetObject(ctx context.Context, bucketName, objectName string) ([]byte, error) {
	args := m.Called(ctx, bucketName, objectName)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockStorage) StreamObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, int64, error) {
	args := m.Called(ctx, bucketName, objectName)
	reader, _ := args.Get(0).(io.ReadCloser)
	return reader, args.Get(1).(int64), args.Error(2)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, document *requests.MadoDocument) ([]byte, error) {
	args := m.Called(ctx, document)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

type MockRecipientDirectory struct {
	mock.Mock
}

func (m *MockRecipientDirectory) FindFaxByRegion(ctx context.Context, regionID string) (string, error) {
	args := m.Called(ctx, regionID)
	return args.String(0), args.Error(1)
}

type MockFaxService struct {
	mock.Mock
}

func (m *MockFaxService) SendFax(ctx context.Context, request *requests.SendFax) (*responses.FaxJob, error) {
	args := m.Called(ctx, request)
	job, _ := args.Get(0).(*responses.FaxJob)
	return job, args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *requests.MadoEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
