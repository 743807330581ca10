package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"lagam-golang/internal/storage"
)

type TaskProvider interface {
	GetTasks(ctx context.Context) ([]storage.ProductionTask, error)
	GetTask(ctx context.Context, id string) (*storage.ProductionTask, error)
}

// GetTasks lists production tasks, optionally narrowed by lagam_id,
// section, date or member query parameters.
func GetTasks(log *slog.Logger, provider TaskProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tasks.get.GetTasks"

		lagamID := r.URL.Query().Get("lagam_id")
		section := r.URL.Query().Get("section")
		date := r.URL.Query().Get("date")
		member := r.URL.Query().Get("member")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tasks, err := provider.GetTasks(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load tasks")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		filtered := make([]storage.ProductionTask, 0, len(tasks))
		for _, t := range tasks {
			if lagamID != "" && t.LagamID != lagamID {
				continue
			}
			if section != "" && t.SectionName != section {
				continue
			}
			if date != "" && t.Date != date {
				continue
			}
			if member != "" && t.TeamMemberID != member {
				continue
			}
			filtered = append(filtered, t)
		}

		render.JSON(w, r, filtered)
	}
}

func GetTask(log *slog.Logger, provider TaskProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tasks.get.GetTask"

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		task, err := provider.GetTask(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Task not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load task")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, task)
	}
}
