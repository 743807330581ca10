package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"lagam-golang/internal/storage"
)

type CatalogSaver interface {
	SaveCatalogSection(ctx context.Context, section storage.CatalogSection) error
}

// SaveCatalogSectionAdmin creates a catalog section with its ordered
// operation list. Admin panel only.
func SaveCatalogSectionAdmin(log *slog.Logger, saver CatalogSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.save.SaveCatalogSectionAdmin"

		var req storage.CatalogSection
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Seccion == "" {
			http.Error(w, "seccion is required", http.StatusBadRequest)
			return
		}
		for i, operation := range req.Operaciones {
			if operation.Descripcion == "" {
				http.Error(w, "operation description is required", http.StatusBadRequest)
				return
			}
			if operation.Tiempo < 0 {
				log.Warn("negative standard time", slog.String("op", op), slog.Int("index", i))
				http.Error(w, "tiempo must not be negative", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveCatalogSection(ctx, req); err != nil {
			log.Error("failed to save catalog section", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Could not create section", http.StatusConflict)
			return
		}

		render.JSON(w, r, req)
	}
}
