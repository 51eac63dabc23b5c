package utils

import (
	"mado-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeMadoDraftForm(input *requests.MadoDraftForm) {
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.DOB = strings.TrimSpace(input.DOB)
	input.PHN = strings.TrimSpace(input.PHN)
	input.Address = strings.TrimSpace(input.Address)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Disease = strings.TrimSpace(input.Disease)
	input.RegionID = strings.TrimSpace(input.RegionID)
}

func SanitizeSendMadoRequest(input *requests.SendMado) {
	input.DraftID = strings.TrimSpace(input.DraftID)
	input.ApproveBy = strings.TrimSpace(input.ApproveBy)
	input.Transport = strings.ToLower(strings.TrimSpace(input.Transport))
}
