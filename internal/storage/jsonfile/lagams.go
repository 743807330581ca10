package jsonfile

import (
	"context"
	"fmt"
	"sort"

	"lagam-golang/internal/storage"
)

// GetLagams returns every lagam, newest first. Lagam ids embed their
// creation timestamp, so the lexicographic order of the suffix is the
// creation order.
func (s *Storage) GetLagams(ctx context.Context) ([]storage.Lagam, error) {
	const op = "storage.jsonfile.GetLagams"

	var lagams []storage.Lagam
	if err := s.readAll(lagamsFile, &lagams); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sort.SliceStable(lagams, func(i, j int) bool {
		return lagams[i].LagamID > lagams[j].LagamID
	})
	return lagams, nil
}

func (s *Storage) GetLagam(ctx context.Context, lagamID string) (*storage.Lagam, error) {
	const op = "storage.jsonfile.GetLagam"

	var lagams []storage.Lagam
	if err := s.readAll(lagamsFile, &lagams); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, l := range lagams {
		if l.LagamID == lagamID {
			return &l, nil
		}
	}
	return nil, fmt.Errorf("%s: lagam %s: %w", op, lagamID, storage.ErrNotFound)
}

func (s *Storage) SaveLagam(ctx context.Context, lagam storage.Lagam) error {
	const op = "storage.jsonfile.SaveLagam"

	var lagams []storage.Lagam
	if err := s.readAll(lagamsFile, &lagams); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, l := range lagams {
		if l.LagamID == lagam.LagamID {
			return fmt.Errorf("%s: lagam %s already exists", op, lagam.LagamID)
		}
	}

	lagams = append(lagams, lagam)
	if err := s.writeAll(lagamsFile, lagams); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) UpdateLagam(ctx context.Context, lagam storage.Lagam) error {
	const op = "storage.jsonfile.UpdateLagam"

	var lagams []storage.Lagam
	if err := s.readAll(lagamsFile, &lagams); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, l := range lagams {
		if l.LagamID != lagam.LagamID {
			continue
		}
		lagams[i] = lagam
		if err := s.writeAll(lagamsFile, lagams); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}
	return fmt.Errorf("%s: lagam %s: %w", op, lagam.LagamID, storage.ErrNotFound)
}

// DeleteLagam removes the lagam and cascades to every production task
// that references it.
func (s *Storage) DeleteLagam(ctx context.Context, lagamID string) error {
	const op = "storage.jsonfile.DeleteLagam"

	var lagams []storage.Lagam
	if err := s.readAll(lagamsFile, &lagams); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	kept := lagams[:0]
	found := false
	for _, l := range lagams {
		if l.LagamID == lagamID {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return fmt.Errorf("%s: lagam %s: %w", op, lagamID, storage.ErrNotFound)
	}
	if err := s.writeAll(lagamsFile, kept); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var tasks []storage.ProductionTask
	if err := s.readAll(tasksFile, &tasks); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	remaining := tasks[:0]
	for _, t := range tasks {
		if t.LagamID == lagamID {
			continue
		}
		remaining = append(remaining, t)
	}
	if len(remaining) != len(tasks) {
		if err := s.writeAll(tasksFile, remaining); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}
