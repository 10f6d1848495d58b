package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/werb210/ocr-reconciler/internal/insights"
)

// Service is a tiny façade over the insights service that produces XLSX
// bytes for reviewer downloads.
type Service struct {
	insights *insights.Service
	logger   *slog.Logger
}

func NewService(svc *insights.Service, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{insights: svc, logger: logger}
}

// ExportInsightsXLSX returns an XLSX workbook (as bytes) with one row per
// insight row, in the same category/label order the UI shows.
func (s *Service) ExportInsightsXLSX(ctx context.Context, applicationID string) ([]byte, error) {
	start := time.Now()

	payload, err := s.insights.GetInsights(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("compute insights: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "OCR Insights"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Category",
		"Field",
		"Document",
		"Value",
		"Conflict",
		"Other Document Values",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, group := range payload.Categories {
		for _, r := range group.Rows {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}

			write(1, string(group.Category))
			write(2, r.Label)
			write(3, r.DocumentName)
			write(4, r.Value)
			if r.Conflict {
				write(5, "CONFLICT")
			} else {
				write(5, "")
			}
			// same rendering contract the UI uses
			if len(r.ComparisonValues) > 0 {
				write(6, strings.Join(r.ComparisonValues, ", "))
			} else {
				write(6, "—")
			}

			row++
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 18) // category
	_ = f.SetColWidth(sheet, "B", "B", 26) // field label
	_ = f.SetColWidth(sheet, "C", "C", 32) // document
	_ = f.SetColWidth(sheet, "D", "D", 24) // value
	_ = f.SetColWidth(sheet, "E", "E", 12) // conflict
	_ = f.SetColWidth(sheet, "F", "F", 48) // comparison values

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"application_id", applicationID,
		"rows", row-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
