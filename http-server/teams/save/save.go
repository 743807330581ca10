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

type TeamSaver interface {
	SaveTeam(ctx context.Context, team storage.Team) error
}

type Request struct {
	Name      string   `json:"name"`
	MemberIDs []string `json:"memberIds"`
}

// SaveTeam creates a team. Member ids are ordered and must be unique;
// the model does not enforce that, so it is checked here.
func SaveTeam(log *slog.Logger, saver TeamSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.teams.save.SaveTeam"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		if dup := duplicateMember(req.MemberIDs); dup != "" {
			http.Error(w, fmt.Sprintf("duplicate member %s", dup), http.StatusBadRequest)
			return
		}

		team := storage.Team{
			ID:        storage.NewTeamID(),
			Name:      req.Name,
			MemberIDs: req.MemberIDs,
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveTeam(ctx, team); err != nil {
			log.Error("failed to save team", slog.String("op", op), slog.String("error", err.Error()))
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
