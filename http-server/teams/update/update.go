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

type TeamUpdater interface {
	UpdateTeam(ctx context.Context, team storage.Team) error
}

type Request struct {
	Name      string   `json:"name"`
	MemberIDs []string `json:"memberIds"`
}

func UpdateTeam(log *slog.Logger, updater TeamUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.teams.update.UpdateTeam"

		id := chi.URLParam(r, "id")

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		if dup := duplicateMember(req.MemberIDs); dup != "" {
			http.Error(w, fmt.Sprintf("duplicate member %s", dup), http.StatusBadRequest)
			return
		}

		team := storage.Team{
			ID:        id,
			Name:      req.Name,
			MemberIDs: req.MemberIDs,
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateTeam(ctx, team); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Team not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update team", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, team)
	}
}

func duplicateMember(ids []string) string {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return id
		}
		seen[id] = true
	}
	return ""
}
