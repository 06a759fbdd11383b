package services

import (
	"bytes"
	"fmt"
	"time"

	"gymdesk-backend/internal/models"
	"gymdesk-backend/internal/renewal"

	"github.com/xuri/excelize/v2"
)

const (
	membersSheet = "Members"
	exportDate   = "2006-01-02"
)

var MembersExportHeader = []string{
	"Serial No",
	"Name",
	"Email",
	"Phone",
	"Gender",
	"Duration",
	"Amount",
	"Payment Mode",
	"Date of Joining",
	"Plan Started",
	"Valid Upto",
	"Verified",
}

var membersExportWidths = []float64{10, 28, 30, 16, 10, 10, 12, 14, 16, 16, 16, 10}

// GenerateMembersExcel renders members as an xlsx workbook with a bold,
// frozen header row.
func GenerateMembersExcel(members []models.Member) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(membersSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]interface{}, len(MembersExportHeader))
	for i, h := range MembersExportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(membersSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(MembersExportHeader))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(membersSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, width := range membersExportWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(membersSheet, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, m := range members {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := memberExportRow(m)
		if err := f.SetSheetRow(membersSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(membersSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func memberExportRow(m models.Member) []interface{} {
	verified := "No"
	if m.Verified {
		verified = "Yes"
	}
	var amount interface{} = m.Amount
	if d, err := models.ParseAmount(m.Amount); err == nil {
		amount = d.InexactFloat64()
	}
	return []interface{}{
		m.SerialNumber,
		m.Name,
		m.Email,
		m.Phone,
		string(m.Gender),
		m.Duration,
		amount,
		string(m.PaymentMode),
		formatExportDate(m.DOJ),
		formatExportDate(m.PlanStart()),
		renewal.ValidUpto(m).Format(exportDate),
		verified,
	}
}

func formatExportDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(exportDate)
}

// MembersExportFilename names a workbook after the export date.
func MembersExportFilename(now time.Time) string {
	return fmt.Sprintf("members-%s.xlsx", now.Format(exportDate))
}
