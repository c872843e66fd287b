package infra

// pdf.go — PDF report generation using go-pdf/fpdf.
// Two consumers:
//   - the reports endpoints (?format=pdf) render into a byte buffer for download
//   - the report worker writes the post-generation payroll run PDF to disk so
//     the email worker can attach it

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// RenderPayrollReportPDF renders a payroll period report as an A4 PDF.
func RenderPayrollReportPDF(report *dto.PayrollReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 8, "Payroll Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, report.Period.ProjectName+" ("+report.Period.ProjectCode+")", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, report.Period.Location, "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5,
		fmt.Sprintf("%s: %s to %s (%d days)",
			report.Period.PeriodType, report.Period.StartDate, report.Period.EndDate, report.Period.DaysInPeriod),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ──────────────────────────────────────────────────────────
	colName := contentW * 0.28
	colPos := contentW * 0.18
	colRate := contentW * 0.15
	colDays := contentW * 0.10
	colHours := contentW * 0.12
	colTotal := contentW * 0.17

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(colName, 7, "Employee", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colPos, 7, "Position", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colRate, 7, "Rate/Day", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colDays, 7, "Days", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colHours, 7, "Hours", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colTotal, 7, "Amount", "1", 1, "R", true, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range report.Rows {
		name := row.FullName
		if len(name) > 32 {
			name = name[:31] + "…"
		}
		pdf.CellFormat(colName, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colPos, 6, row.Position, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colRate, 6, row.RatePerDay.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colDays, 6, fmt.Sprintf("%d", row.DaysWorked), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colHours, 6, row.TotalHours.StringFixed(1), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, 6, row.TotalAmount.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	// ── Summary ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colName+colPos+colRate, 7,
		fmt.Sprintf("Total (%d employees)", report.Summary.TotalEmployees), "1", 0, "L", false, 0, "")
	pdf.CellFormat(colDays, 7, fmt.Sprintf("%d", report.Summary.TotalDaysWorked), "1", 0, "C", false, 0, "")
	pdf.CellFormat(colHours, 7, "", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, 7, report.Summary.TotalAmount.StringFixed(2), "1", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "Generated "+time.Now().Format("02/01/2006 15:04"), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render payroll report: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderInventoryReportPDF renders the current inventory of a project as an A4 PDF.
func RenderInventoryReportPDF(report *dto.InventoryReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 8, "Inventory Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, report.ProjectName+" ("+report.ProjectCode+")", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, report.Location, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	colItem := contentW * 0.30
	colCat := contentW * 0.18
	colQty := contentW * 0.12
	colUnit := contentW * 0.10
	colPrice := contentW * 0.14
	colValue := contentW * 0.16

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(colItem, 7, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colCat, 7, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colQty, 7, "Quantity", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colUnit, 7, "Unit", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colPrice, 7, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colValue, 7, "Value", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range report.Rows {
		name := row.ItemName
		if len(name) > 34 {
			name = name[:33] + "…"
		}
		pdf.CellFormat(colItem, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colCat, 6, row.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, 6, row.Quantity.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colUnit, 6, row.Unit, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colPrice, 6, row.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colValue, 6, row.TotalValue.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colItem+colCat, 7,
		fmt.Sprintf("Total (%d items)", report.Summary.TotalItems), "1", 0, "L", false, 0, "")
	pdf.CellFormat(colQty, 7, report.Summary.TotalQuantity.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(colUnit+colPrice, 7, "", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colValue, 7, report.Summary.TotalValue.StringFixed(2), "1", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "Generated "+report.GeneratedAt, "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render inventory report: %w", err)
	}
	return buf.Bytes(), nil
}

// GeneratePayrollRunPDF writes the summary PDF of a completed payroll run to
// storagePath and returns the file path. Used by the report worker.
func GeneratePayrollRunPDF(project *model.Project, periodStart, periodEnd time.Time, payrolls []model.Payroll, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("payroll_%s_%s.pdf", project.ProjectCode, periodEnd.Format("2006-01-02"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 8, "Payroll Run", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, project.ProjectName+" ("+project.ProjectCode+")", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5,
		periodStart.Format("02/01/2006")+" to "+periodEnd.Format("02/01/2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	colName := contentW * 0.36
	colRate := contentW * 0.16
	colDays := contentW * 0.12
	colGross := contentW * 0.18
	colStatus := contentW * 0.18

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(colName, 7, "Employee", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colRate, 7, "Rate/Day", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colDays, 7, "Days", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colGross, 7, "Net Pay", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colStatus, 7, "Status", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	total := decimal.Zero
	for _, p := range payrolls {
		name := ""
		if p.Employee != nil {
			name = p.Employee.FullName
		}
		if len(name) > 40 {
			name = name[:39] + "…"
		}
		pdf.CellFormat(colName, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colRate, 6, p.RatePerDay.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colDays, 6, fmt.Sprintf("%d", p.TotalDays), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colGross, 6, p.NetAmount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colStatus, 6, p.Status, "1", 1, "C", false, 0, "")
		total = total.Add(p.NetAmount)
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colName+colRate+colDays, 7,
		fmt.Sprintf("Total (%d employees)", len(payrolls)), "1", 0, "L", false, 0, "")
	pdf.CellFormat(colGross, 7, total.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(colStatus, 7, "", "1", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
