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

type LagamDeleter interface {
	DeleteLagam(ctx context.Context, lagamID string) error
}

// DeleteLagam removes a lagam; the store cascades to its production
// tasks.
func DeleteLagam(log *slog.Logger, deleter LagamDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lagams.delete.DeleteLagam"

		lagamID := chi.URLParam(r, "lagamId")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteLagam(ctx, lagamID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Lagam not found", http.StatusNotFound)
				return
			}
			log.Error("failed to delete lagam", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("lagam deleted", slog.String("lagamId", lagamID))

		render.JSON(w, r, map[string]string{"status": "deleted"})
	}
}
