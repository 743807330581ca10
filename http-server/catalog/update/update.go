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

	"lagam-golang/internal/storage"
)

type CatalogUpdater interface {
	UpdateCatalogSection(ctx context.Context, seccion string, section storage.CatalogSection) error
	DeleteCatalogSection(ctx context.Context, seccion string) error
}

func UpdateCatalogSectionAdmin(log *slog.Logger, updater CatalogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.update.UpdateCatalogSectionAdmin"

		seccion := chi.URLParam(r, "seccion")

		var req storage.CatalogSection
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateCatalogSection(ctx, seccion, req); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Section not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update catalog section", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, req)
	}
}

func DeleteCatalogSectionAdmin(log *slog.Logger, updater CatalogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.update.DeleteCatalogSectionAdmin"

		seccion := chi.URLParam(r, "seccion")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.DeleteCatalogSection(ctx, seccion); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Section not found", http.StatusNotFound)
				return
			}
			log.Error("failed to delete catalog section", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]string{"status": "deleted"})
	}
}
