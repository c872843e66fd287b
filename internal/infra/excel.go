package infra

// excel.go — XLSX report generation using excelize. Mirrors the PDF renderers:
// one sheet per report, bold header row, summary row at the bottom.

import (
	"bytes"
	"fmt"

	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"

	"github.com/xuri/excelize/v2"
)

// RenderPayrollReportExcel renders a payroll period report as an XLSX workbook.
func RenderPayrollReportExcel(report *dto.PayrollReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payroll"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: style: %w", err)
	}

	f.SetCellValue(sheet, "A1", "Payroll Report")
	f.SetCellValue(sheet, "A2", report.Period.ProjectName+" ("+report.Period.ProjectCode+")")
	f.SetCellValue(sheet, "A3", fmt.Sprintf("%s: %s to %s (%d days)",
		report.Period.PeriodType, report.Period.StartDate, report.Period.EndDate, report.Period.DaysInPeriod))
	f.SetCellStyle(sheet, "A1", "A1", boldStyle)

	headers := []string{"Employee", "Position", "Rate/Day", "Days Worked", "Total Hours", "Amount"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	row := 6
	for _, r := range report.Rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.FullName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Position)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.RatePerDay.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.DaysWorked)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.TotalHours.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.TotalAmount.InexactFloat64())
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("Total (%d employees)", report.Summary.TotalEmployees))
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), report.Summary.TotalDaysWorked)
	f.SetCellValue(sheet, fmt.Sprintf("F%d", row), report.Summary.TotalAmount.InexactFloat64())
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), boldStyle)

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "F", 14)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: write payroll report: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPayrollExportExcel renders generated payroll snapshots for a period
// as an XLSX workbook (GET /v1/payroll/export).
func RenderPayrollExportExcel(start, end string, payrolls []model.Payroll) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payroll Export"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: style: %w", err)
	}

	f.SetCellValue(sheet, "A1", "Payroll Export")
	f.SetCellValue(sheet, "A2", start+" to "+end)
	f.SetCellStyle(sheet, "A1", "A1", boldStyle)

	headers := []string{"Employee", "Position", "Rate/Day", "Days", "Hours", "Gross", "Deductions", "Net", "Status", "Paid Date"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	row := 5
	for i := range payrolls {
		p := &payrolls[i]
		name, position := "", ""
		if p.Employee != nil {
			name = p.Employee.FullName
			position = p.Employee.Position
		}
		paidDate := ""
		if p.PaidDate != nil {
			paidDate = p.PaidDate.Format("2006-01-02")
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), position)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.RatePerDay.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.TotalDays)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.TotalHours.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), p.GrossAmount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), p.Deductions.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), p.NetAmount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), p.Status)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), paidDate)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "J", 13)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: write payroll export: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderInventoryReportExcel renders a project inventory report as an XLSX workbook.
func RenderInventoryReportExcel(report *dto.InventoryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventory"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: style: %w", err)
	}

	f.SetCellValue(sheet, "A1", "Inventory Report")
	f.SetCellValue(sheet, "A2", report.ProjectName+" ("+report.ProjectCode+")")
	f.SetCellValue(sheet, "A3", "Generated "+report.GeneratedAt)
	f.SetCellStyle(sheet, "A1", "A1", boldStyle)

	headers := []string{"Item", "Category", "Quantity", "Unit", "Unit Price", "Value"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	row := 6
	for _, r := range report.Rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.ItemName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Category)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Quantity.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.UnitPrice.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.TotalValue.InexactFloat64())
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("Total (%d items)", report.Summary.TotalItems))
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), report.Summary.TotalQuantity.InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("F%d", row), report.Summary.TotalValue.InexactFloat64())
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), boldStyle)

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "F", 14)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: write inventory report: %w", err)
	}
	return buf.Bytes(), nil
}
