package contracts

import (
	"context"
	"io"
	"mado-service/internal/pkg/dto/requests"
	"mado-service/internal/pkg/dto/responses"
)

// MadoClient is the front-end's view of the MADO backend.
type MadoClient interface {
	GenerateMado(ctx context.Context, request *requests.GenerateMado) (*responses.Draft, error)
	SendMado(ctx context.Context, request *requests.SendMado) (*responses.SendResult, error)
}

type MadoUsecase interface {
	GenerateDraft(ctx context.Context, request *requests.GenerateMado) (*responses.Draft, error)
	SendDraft(ctx context.Context, request *requests.SendMado) (*responses.SendResult, error)
	OpenDraftObject(ctx context.Context, objectKey string) (io.ReadCloser, int64, error)
}

type MadoDocumentRenderer interface {
	Render(ctx context.Context, document *requests.MadoDocument) ([]byte, error)
}

type MadoEventPublisher interface {
	Publish(ctx context.Context, event *requests.MadoEvent) error
}

type RecipientDirectory interface {
	FindFaxByRegion(ctx context.Context, regionID string) (string, error)
}
