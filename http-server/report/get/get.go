package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"lagam-golang/internal/service/report"
)

type PerformanceProvider interface {
	PerformanceReport(ctx context.Context, filter report.DateFilter, scope report.Scope) (*report.PerformanceReport, error)
}

// parseFilter resolves the date query parameters into an inclusive
// interval: date= for a single day, month= for a calendar month,
// from=/to= for a range. Defaults to the current month.
func parseFilter(r *http.Request) (report.DateFilter, bool) {
	q := r.URL.Query()

	if dateStr := q.Get("date"); dateStr != "" {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return report.DateFilter{}, false
		}
		return report.Day(d), true
	}

	if monthStr := q.Get("month"); monthStr != "" {
		m, err := time.Parse("2006-01", monthStr)
		if err != nil {
			return report.DateFilter{}, false
		}
		return report.Month(m), true
	}

	fromStr := q.Get("from")
	toStr := q.Get("to")
	if fromStr != "" || toStr != "" {
		now := time.Now()
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to := now
		var err error
		if fromStr != "" {
			if from, err = time.Parse("2006-01-02", fromStr); err != nil {
				return report.DateFilter{}, false
			}
		}
		if toStr != "" {
			if to, err = time.Parse("2006-01-02", toStr); err != nil {
				return report.DateFilter{}, false
			}
		}
		return report.Range(from, to), true
	}

	return report.Month(time.Now()), true
}

func parseScope(r *http.Request) report.Scope {
	return report.Scope{
		TeamID:     r.URL.Query().Get("team_id"),
		OperatorID: r.URL.Query().Get("operator_id"),
	}
}

// GetPerformanceReport is the detailed OLE report: per-operator and
// per-team metrics with task history, sorted by OLE descending.
func GetPerformanceReport(log *slog.Logger, provider PerformanceProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.get.GetPerformanceReport"

		filter, ok := parseFilter(r)
		if !ok {
			http.Error(w, "invalid date filter", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := provider.PerformanceReport(ctx, filter, parseScope(r))
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to build performance report")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, result)
	}
}

// GetPerformanceAnalysis serves the analysis dashboard. It is a thin
// caller of the same aggregation as GetPerformanceReport; order=asc
// reverses the default OLE-descending sort.
func GetPerformanceAnalysis(log *slog.Logger, provider PerformanceProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.get.GetPerformanceAnalysis"

		filter, ok := parseFilter(r)
		if !ok {
			http.Error(w, "invalid date filter", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := provider.PerformanceReport(ctx, filter, parseScope(r))
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to build performance analysis")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if r.URL.Query().Get("order") == "asc" {
			reverseOperators(result.Operators)
			reverseTeams(result.Teams)
		}

		render.JSON(w, r, result)
	}
}

func reverseOperators(s []report.OperatorPerformance) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseTeams(s []report.TeamPerformance) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
