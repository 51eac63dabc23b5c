package utils

import (
	"fmt"
	"mado-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenerateEncounterID is time based and may collide for submissions in the same millisecond.
func GenerateEncounterID(now time.Time) string {
	return fmt.Sprintf("%s%d", constvars.MadoEncounterIDPrefix, now.UnixMilli())
}

func GenerateDraftObjectKey(draftID string) string {
	return fmt.Sprintf(constvars.MadoDraftKeyFormat, draftID)
}

func GenerateMetadataObjectKey(draftID string) string {
	return fmt.Sprintf(constvars.MadoMetadataKeyFormat, draftID)
}

func GenerateSendLockKey(draftID string) string {
	return fmt.Sprintf(constvars.MadoSendLockKeyFormat, draftID)
}
