package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"lagam-golang/internal/service/report"
)

type PerformanceSource interface {
	PerformanceReport(ctx context.Context, filter report.DateFilter, scope report.Scope) (*report.PerformanceReport, error)
}

type GenerateExcelService struct {
	source PerformanceSource
}

func NewGenerateService(source PerformanceSource) *GenerateExcelService {
	return &GenerateExcelService{source: source}
}

// GenerateExcel renders the performance report as a workbook with one
// sheet for operators and one for teams.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, filter report.DateFilter, scope report.Scope) ([]byte, error) {
	result, err := g.source.PerformanceReport(ctx, filter, scope)
	if err != nil {
		return nil, fmt.Errorf("fetch data: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	operatorSheet := "Operators"
	teamSheet := "Teams"
	f.SetSheetName("Sheet1", operatorSheet)
	if _, err := f.NewSheet(teamSheet); err != nil {
		return nil, fmt.Errorf("create team sheet: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{"Name", "Units Produced", "Std Time Earned (min)", "Actual Time (min)", "Performance %", "OLE %"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(operatorSheet, cell, name)
		f.SetCellValue(teamSheet, cell, name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(operatorSheet, "A1", lastCol, headerStyle)
	f.SetCellStyle(teamSheet, "A1", lastCol, headerStyle)

	for i, op := range result.Operators {
		row := i + 2
		f.SetCellValue(operatorSheet, fmt.Sprintf("A%d", row), op.Name)
		f.SetCellValue(operatorSheet, fmt.Sprintf("B%d", row), op.UnitsProduced)
		f.SetCellValue(operatorSheet, fmt.Sprintf("C%d", row), op.StdTimeEarned)
		f.SetCellValue(operatorSheet, fmt.Sprintf("D%d", row), op.ActualTime)
		f.SetCellValue(operatorSheet, fmt.Sprintf("E%d", row), op.Performance)
		f.SetCellValue(operatorSheet, fmt.Sprintf("F%d", row), op.OLE)
	}

	for i, team := range result.Teams {
		row := i + 2
		f.SetCellValue(teamSheet, fmt.Sprintf("A%d", row), team.Name)
		f.SetCellValue(teamSheet, fmt.Sprintf("B%d", row), team.UnitsProduced)
		f.SetCellValue(teamSheet, fmt.Sprintf("C%d", row), team.StdTimeEarned)
		f.SetCellValue(teamSheet, fmt.Sprintf("D%d", row), team.ActualTime)
		f.SetCellValue(teamSheet, fmt.Sprintf("E%d", row), team.Performance)
		f.SetCellValue(teamSheet, fmt.Sprintf("F%d", row), team.OLE)
	}

	f.SetColWidth(operatorSheet, "A", "A", 28)
	f.SetColWidth(operatorSheet, "B", "F", 18)
	f.SetColWidth(teamSheet, "A", "A", 28)
	f.SetColWidth(teamSheet, "B", "F", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
