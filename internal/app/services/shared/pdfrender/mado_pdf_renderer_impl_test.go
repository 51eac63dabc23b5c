package pdfrender

import (
	"bytes"
	"context"
	"mado-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *requests.MadoDocument {
	return &requests.MadoDocument{
		DraftID:               "d1",
		RegionID:              "06",
		PatientName:           "Jean Dupont",
		DateOfBirth:           "1980-01-01",
		Address:               "1 Rue Exemple",
		Phone:                 "418-555-1212",
		HealthInsuranceNumber: "1234567890",
		ClinicianDeclarant:    "Dr Demo",
		DiseaseName:           "Syphilis",
		DeclarationDate:       "2024-01-01T00:00:00Z",
	}
}

func TestMadoPDFRenderer_Render(t *testing.T) {
	t.Run("Writes Fields", func(t *testing.T) {
		renderer := &madoPDFRenderer{compress: false}

		out, err := renderer.Render(context.Background(), sampleDocument())

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
		for _, value := range []string{"Jean Dupont", "1980-01-01", "1234567890", "Syphilis", "Dr Demo"} {
			assert.True(t, bytes.Contains(out, []byte(value)), value)
		}
	})

	t.Run("Compressed Output", func(t *testing.T) {
		out, err := NewMadoPDFRenderer().Render(context.Background(), sampleDocument())

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	})

	t.Run("Nil Document", func(t *testing.T) {
		_, err := NewMadoPDFRenderer().Render(context.Background(), nil)

		assert.Error(t, err)
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewMadoPDFRenderer().Render(ctx, sampleDocument())

		assert.ErrorIs(t, err, context.Canceled)
	})
}
