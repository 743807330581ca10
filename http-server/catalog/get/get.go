package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"lagam-golang/internal/storage"
)

type CatalogProvider interface {
	GetCatalogSections(ctx context.Context) ([]storage.CatalogSection, error)
	GetCatalogSection(ctx context.Context, seccion string) (*storage.CatalogSection, error)
}

func GetCatalogSections(log *slog.Logger, provider CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.get.GetCatalogSections"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		sections, err := provider.GetCatalogSections(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load catalog")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, sections)
	}
}

// GetCatalogSection resolves a section by its name from the "seccion"
// query parameter.
func GetCatalogSection(log *slog.Logger, provider CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.get.GetCatalogSection"

		seccion := r.URL.Query().Get("seccion")
		if seccion == "" {
			http.Error(w, "seccion is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		section, err := provider.GetCatalogSection(ctx, seccion)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Section not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load catalog section")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, section)
	}
}
