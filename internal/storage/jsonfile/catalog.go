package jsonfile

import (
	"context"
	"fmt"

	"lagam-golang/internal/storage"
)

func (s *Storage) GetCatalogSections(ctx context.Context) ([]storage.CatalogSection, error) {
	const op = "storage.jsonfile.GetCatalogSections"

	var sections []storage.CatalogSection
	if err := s.readAll(catalogFile, &sections); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sections, nil
}

func (s *Storage) GetCatalogSection(ctx context.Context, seccion string) (*storage.CatalogSection, error) {
	const op = "storage.jsonfile.GetCatalogSection"

	var sections []storage.CatalogSection
	if err := s.readAll(catalogFile, &sections); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, sec := range sections {
		if sec.Seccion == seccion {
			return &sec, nil
		}
	}
	return nil, fmt.Errorf("%s: section %s: %w", op, seccion, storage.ErrNotFound)
}

func (s *Storage) SaveCatalogSection(ctx context.Context, section storage.CatalogSection) error {
	const op = "storage.jsonfile.SaveCatalogSection"

	var sections []storage.CatalogSection
	if err := s.readAll(catalogFile, &sections); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, sec := range sections {
		if sec.Seccion == section.Seccion {
			return fmt.Errorf("%s: section %s already exists", op, section.Seccion)
		}
	}

	sections = append(sections, section)
	if err := s.writeAll(catalogFile, sections); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) UpdateCatalogSection(ctx context.Context, seccion string, section storage.CatalogSection) error {
	const op = "storage.jsonfile.UpdateCatalogSection"

	var sections []storage.CatalogSection
	if err := s.readAll(catalogFile, &sections); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, sec := range sections {
		if sec.Seccion != seccion {
			continue
		}
		sections[i] = section
		if err := s.writeAll(catalogFile, sections); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}
	return fmt.Errorf("%s: section %s: %w", op, seccion, storage.ErrNotFound)
}

func (s *Storage) DeleteCatalogSection(ctx context.Context, seccion string) error {
	const op = "storage.jsonfile.DeleteCatalogSection"

	var sections []storage.CatalogSection
	if err := s.readAll(catalogFile, &sections); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	kept := sections[:0]
	found := false
	for _, sec := range sections {
		if sec.Seccion == seccion {
			found = true
			continue
		}
		kept = append(kept, sec)
	}
	if !found {
		return fmt.Errorf("%s: section %s: %w", op, seccion, storage.ErrNotFound)
	}
	if err := s.writeAll(catalogFile, kept); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
