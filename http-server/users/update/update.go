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
	"golang.org/x/crypto/bcrypt"

	"lagam-golang/internal/storage"
)

type UserUpdater interface {
	GetUser(ctx context.Context, id string) (*storage.User, error)
	UpdateUser(ctx context.Context, user storage.User) error
}

type ProfileRequest struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	EmployeeID string       `json:"employeeId"`
	AvatarURL  string       `json:"avatarUrl"`
	Role       storage.Role `json:"role"`
}

// UpdateUserProfile replaces everything but the password hash, which
// the store preserves when the update carries none.
func UpdateUserProfile(log *slog.Logger, updater UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.users.update.UpdateUserProfile"

		id := chi.URLParam(r, "id")

		var req ProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}
		if !req.Role.Valid() {
			http.Error(w, "unknown role", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user := storage.User{
			ID:         id,
			Name:       req.Name,
			Email:      req.Email,
			EmployeeID: req.EmployeeID,
			AvatarURL:  req.AvatarURL,
			Role:       req.Role,
		}

		if err := updater.UpdateUser(ctx, user); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "User not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update user", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, user.Public())
	}
}

type PasswordRequest struct {
	Password string `json:"password"`
}

func UpdateUserPassword(log *slog.Logger, updater UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.users.update.UpdateUserPassword"

		id := chi.URLParam(r, "id")

		var req PasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}
		if req.Password == "" {
			http.Error(w, "password is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := updater.GetUser(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "User not found", http.StatusNotFound)
				return
			}
			log.Error("failed to load user", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		user.PasswordHash = string(hash)

		if err := updater.UpdateUser(ctx, *user); err != nil {
			log.Error("failed to update password", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}
