package save

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"lagam-golang/internal/storage"
)

type LagamSaver interface {
	SaveLagam(ctx context.Context, lagam storage.Lagam) error
}

// SaveLagam creates a production order. The id is assigned here and
// totalQuantity is recomputed from the size breakdown, never trusted
// from the request.
func SaveLagam(log *slog.Logger, saver LagamSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lagams.save.SaveLagam"

		var req storage.Lagam
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.ProductInfo.ProductName == "" {
			http.Error(w, "product name is required", http.StatusBadRequest)
			return
		}
		if len(req.ProductionBlueprint) == 0 {
			http.Error(w, "at least one blueprint section is required", http.StatusBadRequest)
			return
		}
		seen := make(map[string]bool, len(req.ProductionBlueprint))
		for _, section := range req.ProductionBlueprint {
			if section.SectionName == "" {
				http.Error(w, "section name is required", http.StatusBadRequest)
				return
			}
			if seen[section.SectionName] {
				http.Error(w, fmt.Sprintf("duplicate section %q", section.SectionName), http.StatusBadRequest)
				return
			}
			seen[section.SectionName] = true
		}

		req.LagamID = storage.NewLagamID()
		req.ProductInfo.RecomputeTotal()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveLagam(ctx, req); err != nil {
			log.Error("failed to save lagam", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("lagam created", slog.String("lagamId", req.LagamID))

		render.JSON(w, r, req)
	}
}
