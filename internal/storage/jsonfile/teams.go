package jsonfile

import (
	"context"
	"fmt"

	"lagam-golang/internal/storage"
)

func (s *Storage) GetTeams(ctx context.Context) ([]storage.Team, error) {
	const op = "storage.jsonfile.GetTeams"

	var teams []storage.Team
	if err := s.readAll(teamsFile, &teams); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return teams, nil
}

func (s *Storage) GetTeam(ctx context.Context, id string) (*storage.Team, error) {
	const op = "storage.jsonfile.GetTeam"

	var teams []storage.Team
	if err := s.readAll(teamsFile, &teams); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, t := range teams {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%s: team %s: %w", op, id, storage.ErrNotFound)
}

func (s *Storage) SaveTeam(ctx context.Context, team storage.Team) error {
	const op = "storage.jsonfile.SaveTeam"

	var teams []storage.Team
	if err := s.readAll(teamsFile, &teams); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, t := range teams {
		if t.ID == team.ID {
			return fmt.Errorf("%s: team %s already exists", op, team.ID)
		}
	}

	teams = append(teams, team)
	if err := s.writeAll(teamsFile, teams); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) UpdateTeam(ctx context.Context, team storage.Team) error {
	const op = "storage.jsonfile.UpdateTeam"

	var teams []storage.Team
	if err := s.readAll(teamsFile, &teams); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, t := range teams {
		if t.ID != team.ID {
			continue
		}
		teams[i] = team
		if err := s.writeAll(teamsFile, teams); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}
	return fmt.Errorf("%s: team %s: %w", op, team.ID, storage.ErrNotFound)
}

func (s *Storage) DeleteTeam(ctx context.Context, id string) error {
	const op = "storage.jsonfile.DeleteTeam"

	var teams []storage.Team
	if err := s.readAll(teamsFile, &teams); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	kept := teams[:0]
	found := false
	for _, t := range teams {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return fmt.Errorf("%s: team %s: %w", op, id, storage.ErrNotFound)
	}
	if err := s.writeAll(teamsFile, kept); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
