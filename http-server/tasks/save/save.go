package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"lagam-golang/internal/service/production"
	"lagam-golang/internal/storage"
)

type TaskSaver interface {
	GetLagam(ctx context.Context, lagamID string) (*storage.Lagam, error)
	GetTasks(ctx context.Context) ([]storage.ProductionTask, error)
	SaveTask(ctx context.Context, task storage.ProductionTask) error
}

// SaveTask schedules work for a lagam section. Creation is gated on
// the authoritative lagam status and on per-size headroom: scheduling
// more than the remaining allocation for any size is rejected, never
// clamped.
func SaveTask(log *slog.Logger, saver TaskSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tasks.save.SaveTask"

		var req storage.ProductionTask
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.LagamID == "" || req.SectionName == "" {
			http.Error(w, "lagamId and sectionName are required", http.StatusBadRequest)
			return
		}
		if req.Status == "" {
			req.Status = storage.TaskPending
		}
		if !req.Status.Valid() {
			http.Error(w, "unknown task status", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		lagam, err := saver.GetLagam(ctx, req.LagamID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Lagam not found", http.StatusNotFound)
				return
			}
			log.Error("failed to load lagam", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		section, ok := lagam.Section(req.SectionName)
		if !ok {
			http.Error(w, "Section not found in lagam blueprint", http.StatusBadRequest)
			return
		}

		tasks, err := saver.GetTasks(ctx)
		if err != nil {
			log.Error("failed to load tasks", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if production.Status(*lagam, tasks) == storage.LagamCompleted {
			http.Error(w, "Lagam is already completed", http.StatusConflict)
			return
		}

		if err := production.ValidateTaskQuantities(*lagam, req.SectionName, tasks, "", req.SizeQuantities); err != nil {
			var qerr *production.QuantityError
			if errors.As(err, &qerr) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		req.ID = storage.NewTaskID()
		req.RecomputeTotals()
		if len(req.OperationStatus) != len(section.PlannedOperations) {
			req.OperationStatus = make([]bool, len(section.PlannedOperations))
		}

		if err := saver.SaveTask(ctx, req); err != nil {
			log.Error("failed to save task", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("task created",
			slog.String("taskId", req.ID),
			slog.String("lagamId", req.LagamID),
			slog.String("section", req.SectionName),
		)

		render.JSON(w, r, req)
	}
}
