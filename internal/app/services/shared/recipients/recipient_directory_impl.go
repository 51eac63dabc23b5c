package recipients

import (
	"context"
	"mado-service/internal/app/contracts"
	"mado-service/internal/pkg/constvars"
	"mado-service/internal/pkg/dto/responses"
	"mado-service/internal/pkg/exceptions"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type recipientDirectory struct {
	FilePath string
	Log      *zap.Logger
}

// NewRecipientDirectory reads public health recipients from a JSON array file.
// The file is read on every lookup so edits apply without a restart.
func NewRecipientDirectory(filePath string, logger *zap.Logger) contracts.RecipientDirectory {
	return &recipientDirectory{
		FilePath: filePath,
		Log:      logger,
	}
}

// FindFaxByRegion returns the MADO fax of the first recipient serving regionID,
// or an empty string when none is listed.
func (d *recipientDirectory) FindFaxByRegion(ctx context.Context, regionID string) (string, error) {
	raw, err := os.ReadFile(d.FilePath)
	if err != nil {
		return "", exceptions.ErrRecipientsDirectoryLoad(err)
	}

	var recipients []responses.MadoRecipient
	if err := json.Unmarshal(raw, &recipients); err != nil {
		return "", exceptions.ErrRecipientsDirectoryLoad(err)
	}

	for _, recipient := range recipients {
		if recipient.RegionID == regionID {
			return recipient.FaxMado, nil
		}
	}

	d.Log.Warn("recipientDirectory.FindFaxByRegion no recipient for region",
		zap.String(constvars.LoggingRegionIDKey, regionID),
	)
	return "", nil
}
