package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"lagam-golang/internal/storage"
)

type LagamUpdater interface {
	UpdateLagam(ctx context.Context, lagam storage.Lagam) error
}

// UpdateLagam replaces a production order. totalQuantity is recomputed
// from the size breakdown on every write.
func UpdateLagam(log *slog.Logger, updater LagamUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lagams.update.UpdateLagam"

		lagamID := chi.URLParam(r, "lagamId")

		var req storage.Lagam
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		seen := make(map[string]bool, len(req.ProductionBlueprint))
		for _, section := range req.ProductionBlueprint {
			if seen[section.SectionName] {
				http.Error(w, fmt.Sprintf("duplicate section %q", section.SectionName), http.StatusBadRequest)
				return
			}
			seen[section.SectionName] = true
		}

		req.LagamID = lagamID
		req.ProductInfo.RecomputeTotal()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateLagam(ctx, req); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Lagam not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update lagam", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, req)
	}
}
