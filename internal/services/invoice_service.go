package services

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"gymdesk-backend/internal/models"
	"gymdesk-backend/internal/renewal"

	"github.com/go-pdf/fpdf"
)

const pdfDate = "02 Jan 2006"

type pdfRow struct {
	label string
	value string
}

func newDocument(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreator(CurrentSettings().GymName, true)
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	return pdf
}

func writeHeading(pdf *fpdf.Fpdf, tr func(string) string, heading, subheading string) {
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr(CurrentSettings().GymName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, tr(heading), "", 1, "L", false, 0, "")
	if subheading != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr(subheading), "", 1, "L", false, 0, "")
	}
	y := pdf.GetY() + 3
	pdf.Line(20, y, 190, y)
	pdf.Ln(8)
}

func writeRows(pdf *fpdf.Fpdf, tr func(string) string, rows []pdfRow) {
	for _, r := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(55, 8, tr(r.label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 8, tr(r.value), "", "L", false)
	}
}

func renderPDF(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func formatMonths(n int) string {
	if n == 1 {
		return "1 month"
	}
	return strconv.Itoa(n) + " months"
}

// GenerateInvoicePDF renders a one-page invoice for the member's current plan.
func GenerateInvoicePDF(m models.Member, issuedAt time.Time) ([]byte, error) {
	pdf := newDocument(fmt.Sprintf("Invoice %d", m.SerialNumber))
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	writeHeading(pdf, tr, "Membership Invoice", fmt.Sprintf("Invoice No. %d    Date: %s", m.SerialNumber, issuedAt.Format(pdfDate)))

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Bill To", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr(m.Name), "", 1, "L", false, 0, "")
	if m.Address != "" {
		pdf.MultiCell(0, 7, tr(m.Address), "", "L", false)
	}
	if m.Phone != "" {
		pdf.CellFormat(0, 7, tr(m.Phone), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	reference := "UTR"
	if m.PaymentMode == models.PaymentModeCash {
		reference = "Received By"
	}
	amount := m.Amount
	if d, err := models.ParseAmount(m.Amount); err == nil {
		amount = d.StringFixed(2)
	}
	writeRows(pdf, tr, []pdfRow{
		{"Plan", formatMonths(m.Duration)},
		{"Plan Start", m.PlanStart().Format(pdfDate)},
		{"Valid Upto", renewal.ValidUpto(m).Format(pdfDate)},
		{"Payment Mode", string(m.PaymentMode)},
		{reference, m.PaymentReference()},
	})

	pdf.Ln(4)
	pdf.SetFillColor(230, 243, 255)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(55, 10, "Amount Paid", "1", 0, "L", true, 0, "")
	pdf.CellFormat(0, 10, tr("Rs. "+amount), "1", 1, "R", true, 0, "")

	pdf.Ln(12)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "This is a computer generated invoice.", "", 1, "C", false, 0, "")

	return renderPDF(pdf)
}

// GenerateRegistrationPDF renders the registration details sheet sent to new
// members.
func GenerateRegistrationPDF(m models.Member) ([]byte, error) {
	pdf := newDocument("Registration Details")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	writeHeading(pdf, tr, "Registration Details", "")
	writeRows(pdf, tr, []pdfRow{
		{"Member No.", strconv.FormatInt(m.SerialNumber, 10)},
		{"Name", m.Name},
		{"Email", m.Email},
		{"Age", strconv.Itoa(m.Age)},
		{"Gender", string(m.Gender)},
		{"Phone", m.Phone},
		{"Date of Joining", m.DOJ.Format(pdfDate)},
		{"Plan", formatMonths(m.Duration)},
		{"Valid Upto", renewal.ValidUpto(m).Format(pdfDate)},
	})

	return renderPDF(pdf)
}

func InvoiceFilename(m models.Member) string {
	return fmt.Sprintf("invoice-%d.pdf", m.SerialNumber)
}
