package pdfrender

import (
	"bytes"
	"context"
	"fmt"
	"mado-service/internal/app/contracts"
	"mado-service/internal/pkg/dto/requests"

	"github.com/go-pdf/fpdf"
)

type field struct {
	label string
	value func(*requests.MadoDocument) string
}

type section struct {
	title  string
	fields []field
}

var madoSections = []section{
	{
		title: "Identification du patient",
		fields: []field{
			{"Nom et prénoms", func(d *requests.MadoDocument) string { return d.PatientName }},
			{"Date de naissance", func(d *requests.MadoDocument) string { return d.DateOfBirth }},
			{"Adresse", func(d *requests.MadoDocument) string { return d.Address }},
			{"Téléphone", func(d *requests.MadoDocument) string { return d.Phone }},
			{"Numéro d'assurance maladie", func(d *requests.MadoDocument) string { return d.HealthInsuranceNumber }},
		},
	},
	{
		title: "Maladie à déclaration obligatoire",
		fields: []field{
			{"Nom de la MADO", func(d *requests.MadoDocument) string { return d.DiseaseName }},
			{"Région sociosanitaire", func(d *requests.MadoDocument) string { return d.RegionID }},
		},
	},
	{
		title: "Déclarant",
		fields: []field{
			{"Clinicien déclarant et coordonnées", func(d *requests.MadoDocument) string { return d.ClinicianDeclarant }},
			{"Date de la déclaration", func(d *requests.MadoDocument) string { return d.DeclarationDate }},
		},
	},
}

type madoPDFRenderer struct {
	compress bool
}

func NewMadoPDFRenderer() contracts.MadoDocumentRenderer {
	return &madoPDFRenderer{compress: true}
}

// Render lays the MADO declaration out on a single A4 page.
func (r *madoPDFRenderer) Render(ctx context.Context, document *requests.MadoDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if document == nil {
		return nil, fmt.Errorf("no document to render")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetTitle("MADO "+document.DraftID, true)
	pdf.SetAuthor(document.ClinicianDeclarant, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Déclaration de maladie à déclaration obligatoire (MADO)"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr("Référence du brouillon : "+document.DraftID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, s := range madoSections {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(0, 8, tr(s.title), "1", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		for _, f := range s.fields {
			pdf.CellFormat(70, 8, tr(f.label), "1", 0, "L", false, 0, "")
			pdf.MultiCell(0, 8, tr(f.value(document)), "1", "L", false)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
