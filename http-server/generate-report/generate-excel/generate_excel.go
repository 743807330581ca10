package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"lagam-golang/internal/service/report"
)

type GenerateExcelHandler interface {
	GenerateExcel(ctx context.Context, filter report.DateFilter, scope report.Scope) ([]byte, error)
}

// GenerateReportExcel streams the performance report as a workbook.
// Same from/to parameters as the report endpoints, defaulting to the
// current month.
func GenerateReportExcel(log *slog.Logger, gen GenerateExcelHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GenerateReportExcel"

		fromStr := r.URL.Query().Get("from")
		toStr := r.URL.Query().Get("to")

		now := time.Now()
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to := now

		var err error
		if fromStr != "" {
			if from, err = time.Parse("2006-01-02", fromStr); err != nil {
				http.Error(w, "invalid from date", http.StatusBadRequest)
				return
			}
		}
		if toStr != "" {
			if to, err = time.Parse("2006-01-02", toStr); err != nil {
				http.Error(w, "invalid to date", http.StatusBadRequest)
				return
			}
		}

		scope := report.Scope{
			TeamID:     r.URL.Query().Get("team_id"),
			OperatorID: r.URL.Query().Get("operator_id"),
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, err := gen.GenerateExcel(ctx, report.Range(from, to), scope)
		if err != nil {
			log.Error("failed to generate excel", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("OLE_Report_%s.xlsx", time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
