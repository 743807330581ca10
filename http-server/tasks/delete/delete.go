package delete

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

type TaskDeleter interface {
	DeleteTask(ctx context.Context, id string) error
}

func DeleteTask(log *slog.Logger, deleter TaskDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tasks.delete.DeleteTask"

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteTask(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Task not found", http.StatusNotFound)
				return
			}
			log.Error("failed to delete task", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]string{"status": "deleted"})
	}
}
