package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"lagam-golang/internal/service/production"
	"lagam-golang/internal/storage"
)

type TaskUpdater interface {
	GetLagam(ctx context.Context, lagamID string) (*storage.Lagam, error)
	GetTask(ctx context.Context, id string) (*storage.ProductionTask, error)
	GetTasks(ctx context.Context) ([]storage.ProductionTask, error)
	UpdateTask(ctx context.Context, task storage.ProductionTask) error
}

// UpdateTask replaces a task. The headroom check excludes the task's
// own current allocation, so shrinking or reshuffling within the
// remaining headroom is always possible.
func UpdateTask(log *slog.Logger, updater TaskUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tasks.update.UpdateTask"

		id := chi.URLParam(r, "id")

		var req storage.ProductionTask
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}
		req.ID = id
		if !req.Status.Valid() {
			http.Error(w, "unknown task status", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		existing, err := updater.GetTask(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Task not found", http.StatusNotFound)
				return
			}
			log.Error("failed to load task", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if req.LagamID == "" {
			req.LagamID = existing.LagamID
		}
		if req.SectionName == "" {
			req.SectionName = existing.SectionName
		}

		lagam, err := updater.GetLagam(ctx, req.LagamID)
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

		tasks, err := updater.GetTasks(ctx)
		if err != nil {
			log.Error("failed to load tasks", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if err := production.ValidateTaskQuantities(*lagam, req.SectionName, tasks, id, req.SizeQuantities); err != nil {
			var qerr *production.QuantityError
			if errors.As(err, &qerr) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		req.RecomputeTotals()
		if len(req.OperationStatus) != len(section.PlannedOperations) {
			checklist := make([]bool, len(section.PlannedOperations))
			copy(checklist, req.OperationStatus)
			req.OperationStatus = checklist
		}

		if err := updater.UpdateTask(ctx, req); err != nil {
			log.Error("failed to update task", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, req)
	}
}

type ChecklistRequest struct {
	OperationStatus []bool `json:"operationStatus"`
}

// UpdateTaskChecklist flips the per-operation done flags without
// touching quantities.
func UpdateTaskChecklist(log *slog.Logger, updater TaskUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tasks.update.UpdateTaskChecklist"

		id := chi.URLParam(r, "id")

		var req ChecklistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		task, err := updater.GetTask(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Task not found", http.StatusNotFound)
				return
			}
			log.Error("failed to load task", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		task.OperationStatus = req.OperationStatus
		if err := updater.UpdateTask(ctx, *task); err != nil {
			log.Error("failed to update checklist", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, task)
	}
}
