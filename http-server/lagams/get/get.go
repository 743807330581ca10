package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"lagam-golang/internal/service/production"
	"lagam-golang/internal/storage"
)

type LagamProvider interface {
	GetLagams(ctx context.Context) ([]storage.Lagam, error)
	GetLagam(ctx context.Context, lagamID string) (*storage.Lagam, error)
	GetTasks(ctx context.Context) ([]storage.ProductionTask, error)
}

type LagamSummary struct {
	storage.Lagam
	Status storage.LagamStatus `json:"status"`
}

type LagamDetails struct {
	storage.Lagam
	Status   storage.LagamStatus                `json:"status"`
	Sections []production.SectionReconciliation `json:"sections"`
}

// GetLagams lists every lagam for the dashboard. The status here is
// the cheap total-produced approximation, good enough for a list view;
// the detail endpoint derives the authoritative one.
func GetLagams(log *slog.Logger, provider LagamProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lagams.get.GetLagams"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		lagams, err := provider.GetLagams(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load lagams")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		tasks, err := provider.GetTasks(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load tasks")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		summaries := make([]LagamSummary, 0, len(lagams))
		for _, lagam := range lagams {
			summaries = append(summaries, LagamSummary{
				Lagam:  lagam,
				Status: production.DisplayStatus(lagam, tasks),
			})
		}

		render.JSON(w, r, summaries)
	}
}

// GetLagam returns one lagam with its authoritative status and the
// reconciliation of every blueprint section.
func GetLagam(log *slog.Logger, provider LagamProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lagams.get.GetLagam"

		lagamID := chi.URLParam(r, "lagamId")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		lagam, err := provider.GetLagam(ctx, lagamID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Lagam not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load lagam")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		tasks, err := provider.GetTasks(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load tasks")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		details := LagamDetails{
			Lagam:    *lagam,
			Status:   production.Status(*lagam, tasks),
			Sections: make([]production.SectionReconciliation, 0, len(lagam.ProductionBlueprint)),
		}
		for _, section := range lagam.ProductionBlueprint {
			details.Sections = append(details.Sections, production.ReconcileSection(*lagam, section.SectionName, tasks))
		}

		render.JSON(w, r, details)
	}
}

// GetSectionStatus reconciles a single section, named by the "section"
// query parameter.
func GetSectionStatus(log *slog.Logger, provider LagamProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lagams.get.GetSectionStatus"

		lagamID := chi.URLParam(r, "lagamId")
		sectionName := r.URL.Query().Get("section")
		if sectionName == "" {
			http.Error(w, "section is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		lagam, err := provider.GetLagam(ctx, lagamID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Lagam not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load lagam")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if _, ok := lagam.Section(sectionName); !ok {
			http.Error(w, "Section not found", http.StatusNotFound)
			return
		}
		tasks, err := provider.GetTasks(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load tasks")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, production.ReconcileSection(*lagam, sectionName, tasks))
	}
}

// GetAvailableQuantity reports per-size headroom for scheduling in a
// section; exclude_task carves out the task being edited.
func GetAvailableQuantity(log *slog.Logger, provider LagamProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lagams.get.GetAvailableQuantity"

		lagamID := chi.URLParam(r, "lagamId")
		sectionName := r.URL.Query().Get("section")
		excludeTaskID := r.URL.Query().Get("exclude_task")
		if sectionName == "" {
			http.Error(w, "section is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		lagam, err := provider.GetLagam(ctx, lagamID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Lagam not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load lagam")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		tasks, err := provider.GetTasks(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load tasks")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, production.AvailableQuantity(*lagam, sectionName, tasks, excludeTaskID))
	}
}
