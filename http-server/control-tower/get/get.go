package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"lagam-golang/internal/service/production"
	"lagam-golang/internal/storage"
)

type ControlTowerProvider interface {
	GetTasks(ctx context.Context) ([]storage.ProductionTask, error)
	GetLagams(ctx context.Context) ([]storage.Lagam, error)
}

type TaskProgress struct {
	storage.ProductionTask
	Objective  int     `json:"objective"`
	Attainment float64 `json:"attainment"`
}

// GetControlTower returns the day's tasks with their slot objective
// and attainment, for the live floor view. Defaults to today.
func GetControlTower(log *slog.Logger, provider ControlTowerProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.control-tower.get.GetControlTower"

		date := r.URL.Query().Get("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tasks, err := provider.GetTasks(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load tasks")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		lagams, err := provider.GetLagams(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load lagams")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		progress := make([]TaskProgress, 0, len(tasks))
		for _, task := range tasks {
			if task.Date != date {
				continue
			}
			progress = append(progress, TaskProgress{
				ProductionTask: task,
				Objective:      production.Objective(task, lagams),
				Attainment:     production.Attainment(task, lagams),
			})
		}

		render.JSON(w, r, progress)
	}
}
