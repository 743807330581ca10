package jsonfile

import (
	"context"
	"fmt"

	"lagam-golang/internal/storage"
)

func (s *Storage) GetTasks(ctx context.Context) ([]storage.ProductionTask, error) {
	const op = "storage.jsonfile.GetTasks"

	var tasks []storage.ProductionTask
	if err := s.readAll(tasksFile, &tasks); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tasks, nil
}

func (s *Storage) GetTask(ctx context.Context, id string) (*storage.ProductionTask, error) {
	const op = "storage.jsonfile.GetTask"

	var tasks []storage.ProductionTask
	if err := s.readAll(tasksFile, &tasks); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, t := range tasks {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%s: task %s: %w", op, id, storage.ErrNotFound)
}

func (s *Storage) SaveTask(ctx context.Context, task storage.ProductionTask) error {
	const op = "storage.jsonfile.SaveTask"

	var tasks []storage.ProductionTask
	if err := s.readAll(tasksFile, &tasks); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, t := range tasks {
		if t.ID == task.ID {
			return fmt.Errorf("%s: task %s already exists", op, task.ID)
		}
	}

	tasks = append(tasks, task)
	if err := s.writeAll(tasksFile, tasks); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) UpdateTask(ctx context.Context, task storage.ProductionTask) error {
	const op = "storage.jsonfile.UpdateTask"

	var tasks []storage.ProductionTask
	if err := s.readAll(tasksFile, &tasks); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, t := range tasks {
		if t.ID != task.ID {
			continue
		}
		tasks[i] = task
		if err := s.writeAll(tasksFile, tasks); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}
	return fmt.Errorf("%s: task %s: %w", op, task.ID, storage.ErrNotFound)
}

func (s *Storage) DeleteTask(ctx context.Context, id string) error {
	const op = "storage.jsonfile.DeleteTask"

	var tasks []storage.ProductionTask
	if err := s.readAll(tasksFile, &tasks); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	kept := tasks[:0]
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return fmt.Errorf("%s: task %s: %w", op, id, storage.ErrNotFound)
	}
	if err := s.writeAll(tasksFile, kept); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
