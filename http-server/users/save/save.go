package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"

	"lagam-golang/internal/storage"
)

type UserSaver interface {
	SaveUser(ctx context.Context, user storage.User) error
	GetUserCredentials(ctx context.Context, email string) (*storage.User, error)
}

type SignupRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	EmployeeID string `json:"employeeId"`
}

// SignupUser registers a new operator. The password is stored only as
// a bcrypt hash.
func SignupUser(log *slog.Logger, saver UserSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.users.save.SignupUser"

		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Name == "" || req.Email == "" || req.Password == "" {
			http.Error(w, "name, email and password are required", http.StatusBadRequest)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		user := storage.User{
			ID:           storage.NewUserID(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hash),
			EmployeeID:   req.EmployeeID,
			Role:         storage.RoleOperator,
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveUser(ctx, user); err != nil {
			log.Error("failed to save user", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Could not create user", http.StatusConflict)
			return
		}

		render.JSON(w, r, user.Public())
	}
}

type CreateUserRequest struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Password   string       `json:"password"`
	EmployeeID string       `json:"employeeId"`
	AvatarURL  string       `json:"avatarUrl"`
	Role       storage.Role `json:"role"`
}

// SaveUserAdmin creates a user with an explicit role from the admin
// panel.
func SaveUserAdmin(log *slog.Logger, saver UserSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.users.save.SaveUserAdmin"

		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		if !req.Role.Valid() {
			http.Error(w, "unknown role", http.StatusBadRequest)
			return
		}

		user := storage.User{
			ID:         storage.NewUserID(),
			Name:       req.Name,
			Email:      req.Email,
			EmployeeID: req.EmployeeID,
			AvatarURL:  req.AvatarURL,
			Role:       req.Role,
		}
		if req.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Error("failed to hash password", slog.String("op", op), slog.String("error", err.Error()))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			user.PasswordHash = string(hash)
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveUser(ctx, user); err != nil {
			log.Error("failed to save user", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Could not create user", http.StatusConflict)
			return
		}

		render.JSON(w, r, user.Public())
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func LoginUser(log *slog.Logger, saver UserSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.users.save.LoginUser"

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := saver.GetUserCredentials(ctx, req.Email)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Invalid credentials", http.StatusUnauthorized)
				return
			}
			log.Error("failed to load credentials", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		render.JSON(w, r, user.Public())
	}
}
