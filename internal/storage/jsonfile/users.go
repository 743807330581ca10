package jsonfile

import (
	"context"
	"fmt"

	"lagam-golang/internal/storage"
)

// GetUsers returns every user with the password hash stripped.
func (s *Storage) GetUsers(ctx context.Context) ([]storage.User, error) {
	const op = "storage.jsonfile.GetUsers"

	var users []storage.User
	if err := s.readAll(usersFile, &users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	public := make([]storage.User, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public, nil
}

func (s *Storage) GetUser(ctx context.Context, id string) (*storage.User, error) {
	const op = "storage.jsonfile.GetUser"

	var users []storage.User
	if err := s.readAll(usersFile, &users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, u := range users {
		if u.ID == id {
			pub := u.Public()
			return &pub, nil
		}
	}
	return nil, fmt.Errorf("%s: user %s: %w", op, id, storage.ErrNotFound)
}

// GetUserCredentials is the only read path that keeps the password
// hash; it exists for the login flow alone.
func (s *Storage) GetUserCredentials(ctx context.Context, email string) (*storage.User, error) {
	const op = "storage.jsonfile.GetUserCredentials"

	var users []storage.User
	if err := s.readAll(usersFile, &users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, u := range users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%s: email %s: %w", op, email, storage.ErrNotFound)
}

func (s *Storage) SaveUser(ctx context.Context, user storage.User) error {
	const op = "storage.jsonfile.SaveUser"

	var users []storage.User
	if err := s.readAll(usersFile, &users); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, u := range users {
		if u.ID == user.ID {
			return fmt.Errorf("%s: user %s already exists", op, user.ID)
		}
		if user.Email != "" && u.Email == user.Email {
			return fmt.Errorf("%s: email %s already taken", op, user.Email)
		}
	}

	users = append(users, user)
	if err := s.writeAll(usersFile, users); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateUser replaces the stored record. An empty PasswordHash on the
// update keeps the existing hash, so profile edits cannot wipe a
// password.
func (s *Storage) UpdateUser(ctx context.Context, user storage.User) error {
	const op = "storage.jsonfile.UpdateUser"

	var users []storage.User
	if err := s.readAll(usersFile, &users); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, u := range users {
		if u.ID != user.ID {
			continue
		}
		if user.PasswordHash == "" {
			user.PasswordHash = u.PasswordHash
		}
		users[i] = user
		if err := s.writeAll(usersFile, users); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}
	return fmt.Errorf("%s: user %s: %w", op, user.ID, storage.ErrNotFound)
}

// DeleteUser removes the user and purges their membership from every
// team.
func (s *Storage) DeleteUser(ctx context.Context, id string) error {
	const op = "storage.jsonfile.DeleteUser"

	var users []storage.User
	if err := s.readAll(usersFile, &users); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	kept := users[:0]
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return fmt.Errorf("%s: user %s: %w", op, id, storage.ErrNotFound)
	}
	if err := s.writeAll(usersFile, kept); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var teams []storage.Team
	if err := s.readAll(teamsFile, &teams); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	changed := false
	for i, t := range teams {
		members := t.MemberIDs[:0]
		for _, m := range t.MemberIDs {
			if m == id {
				changed = true
				continue
			}
			members = append(members, m)
		}
		teams[i].MemberIDs = members
	}
	if changed {
		if err := s.writeAll(teamsFile, teams); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}
