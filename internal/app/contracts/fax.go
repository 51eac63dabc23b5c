package contracts

import (
	"context"
	"mado-service/internal/pkg/dto/requests"
	"mado-service/internal/pkg/dto/responses"
)

type FaxService interface {
	SendFax(ctx context.Context, request *requests.SendFax) (*responses.FaxJob, error)
}
